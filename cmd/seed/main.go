// Package main loads the initial activities and teacher accounts into the configured store and exits.
package main

import (
	"context"
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
	if cfg.Store.Driver == config.DriverMemory {
		logger.Fatal("seeding the in-memory store has no lasting effect; set STORE_DRIVER=postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backend, err := app.OpenBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open backend", zap.Error(err))
	}
	defer backend.Close()

	res, err := seed.Run(ctx, backend.Activities, backend.Teachers, seed.Options{}, logger)
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	logger.Info("done", zap.Int("activities", res.Activities), zap.Int("teachers", res.Teachers))
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
