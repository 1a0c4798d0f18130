package main

import (
	"context"
	"hotelier/config"
	"hotelier/di"
	"hotelier/helper"
	"hotelier/shared/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const otelShutdownTimeout = 5 * time.Second

// @title Hotelier Report API
// @version 1.0
// @description Occupancy, revenue and dashboard aggregation over hotel reservations and expenses.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Auto migration failed")
		}
	}

	app := di.InitializeService()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return app.Listener.Start(groupCtx) })
	group.Go(func() error { return app.HTTP.Serve(groupCtx) })

	err := group.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if otelErr := app.Otel.Shutdown(shutdownCtx); otelErr != nil {
		log.Error().Err(otelErr).Msg("Failed to flush traces")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Service stopped with error")
	}
}
