// internal/domain/cart/redis_storage.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage persists cart snapshots in Redis. Every save refreshes the
// TTL so an active cart never expires under the shopper.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage creates a Redis-backed cart storage
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: client,
		ttl:    ttl,
	}
}

// Load reads the snapshot bytes for a key, nil when the slot is empty
func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	return data, nil
}

// Save writes the snapshot bytes for a key
func (s *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}

	return nil
}

// Delete removes the snapshot slot entirely
func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}

	return nil
}

var _ Storage = (*RedisStorage)(nil)
