package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mccmmj/cafe-inventory/internal/config"
	"github.com/mccmmj/cafe-inventory/internal/infra"
	"github.com/mccmmj/cafe-inventory/internal/repository"
	"github.com/mccmmj/cafe-inventory/internal/router"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
	"github.com/mccmmj/cafe-inventory/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.SheetDBAPIID == "" {
		log.Fatal().Msg("SHEETDB_API_ID is required")
	}

	store := sheetdb.New(cfg.SheetDBBaseURL, cfg.SheetDBAPIID, cfg.SheetDBAPIKey)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Low-stock digest poller — the only background activity.
	mailer := infra.NewMailer(cfg)
	alerts := worker.NewStockAlertWorker(
		repository.NewInventoryRepository(store),
		repository.NewPreferencesRepository(store),
		mailer,
		time.Duration(cfg.AlertPollSeconds)*time.Second,
	)
	alerts.Start(ctx)

	r := router.New(cfg, store, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("cafe-inventory backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
