// pkg/memcache/store.go
package memcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store keeps short-lived values keyed by id. Every Save refreshes the TTL.
type Store[T any] interface {
	Save(ctx context.Context, id string, value T) error
	Get(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
}

type memoryStore[T any] struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMemoryStore keeps values in process. Values are stored as JSON so
// callers never share mutable state with the cache.
func NewMemoryStore[T any](ttl time.Duration) Store[T] {
	return &memoryStore[T]{
		cache: cache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

func (s *memoryStore[T]) Save(_ context.Context, id string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", id, err)
	}
	s.cache.Set(id, data, s.ttl)
	return nil
}

func (s *memoryStore[T]) Get(_ context.Context, id string) (T, error) {
	var value T
	raw, ok := s.cache.Get(id)
	if !ok {
		return value, ErrMiss
	}
	if err := json.Unmarshal(raw.([]byte), &value); err != nil {
		return value, fmt.Errorf("decoding %s: %w", id, err)
	}
	return value, nil
}

func (s *memoryStore[T]) Delete(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

type redisStore[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore[T any](client *redis.Client, prefix string, ttl time.Duration) Store[T] {
	return &redisStore[T]{client: client, prefix: prefix, ttl: ttl}
}

func (s *redisStore[T]) key(id string) string {
	return s.prefix + id
}

func (s *redisStore[T]) Save(ctx context.Context, id string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", id, err)
	}
	return s.client.Set(ctx, s.key(id), data, s.ttl).Err()
}

func (s *redisStore[T]) Get(ctx context.Context, id string) (T, error) {
	var value T
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return value, ErrMiss
	}
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decoding %s: %w", id, err)
	}
	return value, nil
}

func (s *redisStore[T]) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}
