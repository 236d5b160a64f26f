package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lojasmm/definebot/internal/observability"
)

// InteractionHandler produces the single response for a verified interaction.
// It must never return nil.
type InteractionHandler interface {
	Handle(ctx context.Context, in *Interaction) *InteractionResponse
}

type WebhookHandler struct {
	handler InteractionHandler
	log     *slog.Logger
}

func NewWebhookHandler(handler InteractionHandler, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{handler: handler, log: log}
}

// HandleInteraction decodes an interaction and writes the handler's response.
// It must be mounted behind Verify.
func (h *WebhookHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	var in Interaction
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Warn("webhook: failed to decode interaction", "error", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	observability.Interactions.Add(in.Type.String(), 1)

	resp := h.handler.Handle(r.Context(), &in)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("webhook: failed to write response", "error", err, "interaction_id", in.ID)
	}
}
