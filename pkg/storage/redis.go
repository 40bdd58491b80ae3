package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/agrolink/agrolink/pkg/logger"
)

// RedisStore implements Store on top of a Redis instance. Namespaces map
// directly to Redis keys.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Logger.Info().
		Str("addr", cfg.Addr).
		Int("db", cfg.DB).
		Msg("Connected to Redis storage")

	return &RedisStore{client: client}, nil
}

// Load reads the blob stored under namespace
func (s *RedisStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	blob, err := s.client.Get(ctx, namespace).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", namespace, err)
	}
	return blob, nil
}

// Save writes the blob under namespace with no expiry
func (s *RedisStore) Save(ctx context.Context, namespace string, blob []byte) error {
	if err := s.client.Set(ctx, namespace, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", namespace, err)
	}
	return nil
}

// Delete removes the namespace key
func (s *RedisStore) Delete(ctx context.Context, namespace string) error {
	if err := s.client.Del(ctx, namespace).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", namespace, err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
