package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore records live sessions so that logout can revoke a token before it expires.
type SessionStore interface {
	Create(ctx context.Context, id, username string, ttl time.Duration) error
	// Lookup returns the username owning the session, or "" when it does not exist.
	Lookup(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions in Redis with native key expiry, shared across instances.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, id, username string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+id, username, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Lookup(ctx context.Context, id string) (string, error) {
	username, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get session: %w", err)
	}
	return username, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

// MemorySessionStore keeps sessions in process memory; sessions are lost on restart.
type MemorySessionStore struct {
	cache *gocache.Cache
}

// NewMemorySessionStore creates an in-process session store that purges expired entries every cleanup interval.
func NewMemorySessionStore(cleanup time.Duration) *MemorySessionStore {
	return &MemorySessionStore{cache: gocache.New(gocache.NoExpiration, cleanup)}
}

func (s *MemorySessionStore) Create(_ context.Context, id, username string, ttl time.Duration) error {
	s.cache.Set(sessionKeyPrefix+id, username, ttl)
	return nil
}

func (s *MemorySessionStore) Lookup(_ context.Context, id string) (string, error) {
	v, ok := s.cache.Get(sessionKeyPrefix + id)
	if !ok {
		return "", nil
	}
	username, _ := v.(string)
	return username, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.cache.Delete(sessionKeyPrefix + id)
	return nil
}
