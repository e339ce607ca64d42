// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pancasting/internal/kvstore"
	"github.com/KirkDiggler/pancasting/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr
}

// CreateTestRedisStore returns a Redis backed key-value store on top of
// miniredis. The server is closed when the test ends.
func CreateTestRedisStore(t *testing.T) (kvstore.Store, *miniredis.Miniredis) {
	t.Helper()

	client, mr := CreateTestRedisClient(t)

	store, err := kvstore.NewRedis(&kvstore.RedisConfig{Client: client})
	require.NoError(t, err, "failed to create redis store")

	return store, mr
}
