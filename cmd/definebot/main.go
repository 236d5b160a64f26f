package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lojasmm/definebot/internal/cache"
	"github.com/lojasmm/definebot/internal/config"
	"github.com/lojasmm/definebot/internal/define"
	"github.com/lojasmm/definebot/internal/discord"
	"github.com/lojasmm/definebot/internal/mw"
	"github.com/lojasmm/definebot/internal/observability"
	"github.com/lojasmm/definebot/internal/server"
	"github.com/lojasmm/definebot/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := observability.New(cfg.LogLevel)

	db, err := store.NewBoltStore(filepath.Join(cfg.DataDir, "definebot.db"))
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer db.Close()

	mwClient := mw.NewClient(cfg.DictionaryURL, cfg.SiteURL, cfg.MWAPIKey, cfg.UpstreamTimeout)
	results := cache.New(mwClient)
	builder := define.NewBuilder(results, cfg.SiteURL)
	router := define.NewRouter(builder, results, mwClient, logger)

	if cfg.CanRegister() {
		dc := discord.NewClient(cfg.DiscordAPI, cfg.AppID, cfg.BotToken)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			_ = define.Register(ctx, dc, db, logger)
		}()
	} else {
		logger.Warn("definebot: DISCORD_APP_ID or DISCORD_BOT_TOKEN not set, skipping command registration")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewRouter(cfg.PublicKey, router, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("definebot: listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("definebot: shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	logger.Info("definebot: stopped")
}
