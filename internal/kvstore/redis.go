package kvstore

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pancasting/internal/errors"
	redisclient "github.com/KirkDiggler/pancasting/internal/redis"
)

// RedisConfig holds the configuration for the Redis store
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix namespaces every key, e.g. "pancast:"
	KeyPrefix string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisStore struct {
	client redisclient.Client
	prefix string
}

// NewRedis creates a Redis-backed store. Values are stored without expiry.
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisStore{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
	}, nil
}

var _ Store = (*redisStore)(nil)

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}

	result, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NotFoundf("key %s not found", key)
		}
		slog.ErrorContext(ctx, "failed to read key from redis",
			"key", key,
			"error", err)
		return "", errors.Wrapf(err, "failed to get key %s", key)
	}

	return result, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set key %s", key)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
