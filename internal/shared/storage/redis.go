package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seatwise/internal/shared/config"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "seatwise:doc:"

// redisStore keeps each document as a single JSON string value
type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and returns a document store backed by it
func NewRedisStore(cfg config.RedisConfig) (DocumentStore, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,

		// Connection pool settings
		PoolSize:     10,
		MinIdleConns: 5,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisStore{client: rdb}, nil
}

// NewRedisStoreFromClient wraps an existing client, reusing its connection pool
func NewRedisStoreFromClient(client *redis.Client) DocumentStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("document %s: %w: %v", key, ErrCorrupt, err)
	}

	return nil
}

func (s *redisStore) Put(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}

	// Documents have no expiry; they persist until deleted
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
