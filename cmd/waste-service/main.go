package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waste-service/internal/config"
	"waste-service/internal/db"
	httphandler "waste-service/internal/http"
	"waste-service/internal/logger"
	"waste-service/internal/repository"
	"waste-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			appLogger.Error().Err(err).Msg("failed to close database")
		}
	}()

	vehicleRepo := repository.NewVehicleRepository(database)
	wastePointRepo := repository.NewWastePointRepository(database)
	startEndPointRepo := repository.NewStartEndPointRepository(database)

	handler := httphandler.NewHandler(
		service.NewVehicleService(vehicleRepo),
		service.NewWastePointService(wastePointRepo),
		service.NewStartEndPointService(startEndPointRepo),
		service.NewCountService(vehicleRepo, wastePointRepo),
		appLogger,
	)
	router := httphandler.NewRouter(handler, appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", addr).Msg("starting waste service")
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("failed to start server")
			_ = db.Close(database)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
