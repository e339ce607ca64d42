package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pancasting/internal/config"
	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/kvstore"
	"github.com/KirkDiggler/pancasting/internal/redis"
)

// BackendTestSuite runs the same behavior checks against every backend
type BackendTestSuite struct {
	suite.Suite
	open  func(t *testing.T) kvstore.Store
	store kvstore.Store
	ctx   context.Context
}

func (s *BackendTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.open(s.T())
}

func (s *BackendTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *BackendTestSuite) TestSetThenGet() {
	s.Require().NoError(s.store.Set(s.ctx, "char-1", `{"id":"char-1"}`))

	value, err := s.store.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(`{"id":"char-1"}`, value)
}

func (s *BackendTestSuite) TestSetOverwrites() {
	s.Require().NoError(s.store.Set(s.ctx, "char-1", "first"))
	s.Require().NoError(s.store.Set(s.ctx, "char-1", "second"))

	value, err := s.store.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("second", value)
}

func (s *BackendTestSuite) TestMissingKeyIsNotFound() {
	_, err := s.store.Get(s.ctx, "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *BackendTestSuite) TestDelete() {
	s.Require().NoError(s.store.Set(s.ctx, kvstore.GenerationKey("abc"), "{}"))
	s.Require().NoError(s.store.Delete(s.ctx, kvstore.GenerationKey("abc")))

	_, err := s.store.Get(s.ctx, kvstore.GenerationKey("abc"))
	s.True(errors.IsNotFound(err))

	s.Run("deleting an absent key is fine", func() {
		s.NoError(s.store.Delete(s.ctx, "never-set"))
	})
}

func (s *BackendTestSuite) TestEmptyKeyRejected() {
	_, err := s.store.Get(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.IsInvalidArgument(s.store.Set(s.ctx, "", "x")))
	s.True(errors.IsInvalidArgument(s.store.Delete(s.ctx, "")))
}

func TestMemoryBackend(t *testing.T) {
	suite.Run(t, &BackendTestSuite{
		open: func(t *testing.T) kvstore.Store { return kvstore.NewMemory() },
	})
}

func TestRedisBackend(t *testing.T) {
	suite.Run(t, &BackendTestSuite{
		open: func(t *testing.T) kvstore.Store {
			mr := miniredis.RunT(t)
			client, err := redis.NewClient(mr.Addr(), nil)
			if err != nil {
				t.Fatalf("failed to create redis client: %v", err)
			}
			store, err := kvstore.NewRedis(&kvstore.RedisConfig{Client: client, KeyPrefix: "test:"})
			if err != nil {
				t.Fatalf("failed to create redis store: %v", err)
			}
			return store
		},
	})
}

func TestBoltBackend(t *testing.T) {
	suite.Run(t, &BackendTestSuite{
		open: func(t *testing.T) kvstore.Store {
			store, err := kvstore.OpenBolt(filepath.Join(t.TempDir(), "pancast.db"))
			if err != nil {
				t.Fatalf("failed to open bolt store: %v", err)
			}
			return store
		},
	})
}

func TestSQLiteBackend(t *testing.T) {
	suite.Run(t, &BackendTestSuite{
		open: func(t *testing.T) kvstore.Store {
			store, err := kvstore.OpenSQLite(filepath.Join(t.TempDir(), "pancast.sqlite"))
			if err != nil {
				t.Fatalf("failed to open sqlite store: %v", err)
			}
			return store
		},
	})
}

type OpenTestSuite struct {
	suite.Suite
}

func TestOpenSuite(t *testing.T) {
	suite.Run(t, new(OpenTestSuite))
}

func (s *OpenTestSuite) TestOpen() {
	ctx := context.Background()

	s.Run("memory", func() {
		store, err := kvstore.Open(ctx, config.Storage{Backend: config.BackendMemory})
		s.Require().NoError(err)
		s.NoError(store.Close())
	})

	s.Run("redis", func() {
		mr := miniredis.RunT(s.T())
		store, err := kvstore.Open(ctx, config.Storage{Backend: config.BackendRedis, RedisAddr: mr.Addr()})
		s.Require().NoError(err)
		s.Require().NoError(store.Set(ctx, "k", "v"))
		s.True(mr.Exists("pancast:k"))
		s.NoError(store.Close())
	})

	s.Run("bolt", func() {
		store, err := kvstore.Open(ctx, config.Storage{
			Backend:  config.BackendBolt,
			BoltPath: filepath.Join(s.T().TempDir(), "open.db"),
		})
		s.Require().NoError(err)
		s.NoError(store.Close())
	})

	s.Run("unknown backend", func() {
		_, err := kvstore.Open(ctx, config.Storage{Backend: "etcd"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OpenTestSuite) TestKeys() {
	s.Equal("char-1", kvstore.CharacterKey("char-1"))
	s.Equal("generation_sess-1", kvstore.GenerationKey("sess-1"))
	s.Equal("history_char-1", kvstore.HistoryKey("char-1"))
}
