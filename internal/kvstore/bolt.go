package kvstore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/KirkDiggler/pancasting/internal/errors"
)

var boltBucket = []byte("pancast")

type boltStore struct {
	db *bbolt.DB
}

// OpenBolt opens a BoltDB-backed store at path, creating the file and bucket
// if needed.
func OpenBolt(path string) (Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt db %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bolt bucket")
	}

	return &boltStore{db: db}, nil
}

var _ Store = (*boltStore)(nil)

func (b *boltStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "context done")
	}

	var value string
	found := false
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		// raw is only valid inside the transaction
		value = string(raw)
		found = true
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to get key %s", key)
	}
	if !found {
		return "", errors.NotFoundf("key %s not found", key)
	}

	return value, nil
}

func (b *boltStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context done")
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return errors.Wrapf(err, "failed to set key %s", key)
	}
	return nil
}

func (b *boltStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}
	return nil
}

func (b *boltStore) Close() error {
	if b.db == nil {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close bolt db: %w", err)
	}
	return nil
}
