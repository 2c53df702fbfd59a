// Package main runs the Mergington activities HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mergington/activities/config"
	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/seed"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	backend, err := app.OpenBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open backend", zap.Error(err))
	}
	defer backend.Close()

	if cfg.Seed.OnStart {
		if _, err := seed.Run(ctx, backend.Activities, backend.Teachers, seed.Options{}, logger); err != nil {
			logger.Fatal("seed", zap.Error(err))
		}
	}

	router := app.NewRouter(backend, app.RouterOptions{
		JWTSecret:          cfg.Session.Secret,
		SessionTTL:         cfg.Session.TTL(),
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}, cfg.Store.Timeout(), logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Server.Port),
			zap.String("store", cfg.Store.Driver),
			zap.String("sessions", cfg.Session.Store),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
