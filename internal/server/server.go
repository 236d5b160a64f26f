package server

import (
	"crypto/ed25519"
	"expvar"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lojasmm/definebot/internal/discord"
	"github.com/lojasmm/definebot/internal/observability"
)

// NewRouter mounts the interactions webhook behind signature verification,
// plus the liveness and expvar endpoints.
func NewRouter(key ed25519.PublicKey, handler discord.InteractionHandler, log *slog.Logger) http.Handler {
	webhook := discord.NewWebhookHandler(handler, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(observability.LoggingMiddleware(log))
	r.Use(middleware.Recoverer)

	r.Get("/", health)
	r.Get("/health", health)
	r.Method(http.MethodGet, "/debug/vars", expvar.Handler())

	r.With(discord.Verify(key, log)).Post("/interactions", webhook.HandleInteraction)

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
