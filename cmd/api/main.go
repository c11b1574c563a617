package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"flashcardapp/internal/adapter/database"
	httpadapter "flashcardapp/internal/adapter/http"
	"flashcardapp/internal/adapter/telemetry"
	"flashcardapp/pkg/config"
	"flashcardapp/pkg/logger"
)

func main() {
	cfg := config.Load()

	appLogger, err := logger.New(cfg.Log, cfg.Telemetry.ServiceName)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer appLogger.Sync()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", zap.Error(err))
		appLogger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger *logger.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.NewContainer(ctx, cfg.Telemetry, cfg.Environment, appLogger)

	if err != nil {
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := tel.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Failed to shut down telemetry", zap.Error(err))
		}
	}()

	if cfg.Telemetry.MetricsEnabled {
		tel.ServeMetrics(cfg.Telemetry.MetricsPort)
	}

	metrics := tel.AppMetrics
	metrics.StartSystemMetrics(ctx, 15*time.Second)

	appLogger.Info("Attempting to connect to db", zap.String("driver", cfg.Database.Driver))

	db, err := database.Open(ctx, cfg.Database, cfg.Log.SQL)

	if err != nil {
		return err
	}

	defer db.Close()

	db.Metrics = metrics

	appLogger.Info("Connected to db!", zap.Bool("migrated", cfg.Database.Migrate))

	return httpadapter.StartServer(ctx, cfg, db, appLogger, metrics)
}
