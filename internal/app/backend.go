// Package app wires configuration into stores, services and the HTTP router.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mergington/activities/config"
	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/auth"
	"github.com/mergington/activities/pkg/database"
	"github.com/mergington/activities/pkg/redis"
)

// Backend holds the opened stores. Activities is already bounded by the store timeout.
type Backend struct {
	Activities activities.Store
	Teachers   auth.TeacherStore
	Sessions   auth.SessionStore

	closers []func()
}

// Close releases pools and clients in reverse open order.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// OpenBackend connects the configured activity, teacher and session stores.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	b := &Backend{}
	ok := false
	defer func() {
		if !ok {
			b.Close()
		}
	}()

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, pool.Close)
		b.Activities = activities.NewRepository(pool)
		b.Teachers = auth.NewRepository(pool)
	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		b.Activities = activities.NewMemoryStore()
		b.Teachers = auth.NewMemoryRepository()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	b.Activities = activities.WithTimeout(b.Activities, cfg.Store.Timeout())

	switch cfg.Session.Store {
	case config.DriverRedis:
		rdb, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Store.Timeout(),
		}, logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = rdb.Close() })
		b.Sessions = auth.NewRedisSessionStore(rdb)
	default:
		b.Sessions = auth.NewMemorySessionStore(10 * time.Minute)
	}

	ok = true
	return b, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), database.PoolOptions{
		MaxConns:       int32(cfg.Database.MaxConns),
		ConnectTimeout: 5 * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.Migrate(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return pool, nil
}
