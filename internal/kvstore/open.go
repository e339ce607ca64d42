package kvstore

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pancasting/internal/config"
	"github.com/KirkDiggler/pancasting/internal/errors"
	redisclient "github.com/KirkDiggler/pancasting/internal/redis"
)

// Open builds the backend selected by cfg
func Open(ctx context.Context, cfg config.Storage) (Store, error) {
	slog.DebugContext(ctx, "opening key-value store", "backend", cfg.Backend)

	switch cfg.Backend {
	case config.BackendMemory, "":
		return NewMemory(), nil
	case config.BackendRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "redis at %s is unreachable", cfg.RedisAddr)
		}
		return NewRedis(&RedisConfig{Client: client, KeyPrefix: "pancast:"})
	case config.BackendBolt:
		return OpenBolt(cfg.BoltPath)
	case config.BackendSQLite:
		return OpenSQLite(cfg.SQLitePath)
	default:
		return nil, errors.InvalidArgumentf("unknown storage backend: %s", cfg.Backend)
	}
}
