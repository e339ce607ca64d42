// Package kvstore defines the durable string key-value contract used to
// persist characters and generation sessions, with memory, Redis, bbolt and
// SQLite implementations.
package kvstore

//go:generate mockgen -destination=mock/mock_store.go -package=kvstoremock github.com/KirkDiggler/pancasting/internal/kvstore Store

import (
	"context"
)

const (
	generationKeyPrefix = "generation_"
	historyKeyPrefix    = "history_"

	// Error messages
	errKeyEmpty = "key cannot be empty"
)

// Store is a string key to string value store
type Store interface {
	// Get returns the value stored under key
	// Returns errors.NotFound if the key is absent
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	// Returns errors.InvalidArgument for an empty key
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying handle
	Close() error
}

// CharacterKey is the storage key of a character. Characters are keyed by
// their id alone.
func CharacterKey(characterID string) string {
	return characterID
}

// GenerationKey is the storage key of a generation session
func GenerationKey(sessionID string) string {
	return generationKeyPrefix + sessionID
}

// HistoryKey is the storage key of a character's rolling history cache
func HistoryKey(characterID string) string {
	return historyKeyPrefix + characterID
}
