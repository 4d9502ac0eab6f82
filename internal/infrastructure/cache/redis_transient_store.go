package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/packetery/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "packetery:transient:"

// RedisTransientStore implements TransientStore using Redis.
// Selections and flash messages survive restarts and are shared between instances.
type RedisTransientStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisTransientStore creates a new Redis-based transient store
func NewRedisTransientStore(cfg RedisConfig) (*RedisTransientStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTransientStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}, nil
}

// NewRedisTransientStoreWithClient creates a store with an existing Redis client
func NewRedisTransientStoreWithClient(client *redis.Client, keyPrefix string) *RedisTransientStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisTransientStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Set stores value with a TTL
func (s *RedisTransientStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set transient %s: %w", key, err)
	}
	return nil
}

// Get reads a value, redis.Nil maps to ErrNotFound
func (s *RedisTransientStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transient %s: %w", key, err)
	}
	return value, nil
}

// Delete removes a value
func (s *RedisTransientStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete transient %s: %w", key, err)
	}
	return nil
}

// Push appends to a list and refreshes the TTL in one MULTI/EXEC
func (s *RedisTransientStore) Push(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	fullKey := s.keyPrefix + key
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, fullKey, value)
		pipe.Expire(ctx, fullKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push transient %s: %w", key, err)
	}
	return nil
}

// Drain reads and removes a list atomically
func (s *RedisTransientStore) Drain(ctx context.Context, key string) ([][]byte, error) {
	fullKey := s.keyPrefix + key
	var values *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, fullKey, 0, -1)
		pipe.Del(ctx, fullKey)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to drain transient %s: %w", key, err)
	}

	out := make([][]byte, 0, len(values.Val()))
	for _, v := range values.Val() {
		out = append(out, []byte(v))
	}
	return out, nil
}

// Close closes the Redis client
func (s *RedisTransientStore) Close() error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (s *RedisTransientStore) GetClient() *redis.Client {
	return s.client
}

// Ensure RedisTransientStore implements TransientStore
var _ shared.TransientStore = (*RedisTransientStore)(nil)
