package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nthnyvllflrs/ascent-erp/internal/server"
	"github.com/nthnyvllflrs/ascent-erp/pkg/config"
	"github.com/nthnyvllflrs/ascent-erp/pkg/database"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting ascent-erp",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	m := metrics.New(appConfig.Metrics.Prefix, prometheus.DefaultRegisterer)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	db, err := database.InitDB(appConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close(db)
	log.Info("Database connection established")

	e := server.New(server.Deps{
		Config:   appConfig,
		DB:       db,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Starting server", zap.String("port", appConfig.Server.Port))
		if err := e.Start(":" + appConfig.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server", zap.Duration("timeout", appConfig.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
