// Package store is the sole mutation authority for the Character aggregate.
//
// Every mutation is copy-on-write: the current character is cloned, the
// clone is changed and stamped, then it replaces the current pointer.
// References handed out earlier never change underneath the caller.
// Operations that need a character are no-ops when none is loaded.
//
// A Store is not safe for concurrent use.
package store

import (
	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/kvstore"
	"github.com/KirkDiggler/pancasting/internal/pkg/clock"
	"github.com/KirkDiggler/pancasting/internal/pkg/idgen"
)

// Config holds the dependencies for a Store
type Config struct {
	KV          kvstore.Store
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.KV == nil {
		vb.RequiredField("KV")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Store owns the current character and its session flags
type Store struct {
	kv    kvstore.Store
	idGen idgen.Generator
	clock clock.Clock

	current   *character.Character
	isLoading bool
	errMsg    string
	err       error
	unsaved   bool
}

// New creates a Store with no character loaded
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid store config")
	}

	return &Store{
		kv:    cfg.KV,
		idGen: cfg.IDGenerator,
		clock: cfg.Clock,
	}, nil
}

// Current returns the loaded character, or nil. Treat it as read-only.
func (s *Store) Current() *character.Character {
	return s.current
}

// CreateNewCharacter makes an empty character with a fresh id the current
// one and marks it unsaved
func (s *Store) CreateNewCharacter(name string) *character.Character {
	c := character.New(s.idGen.Generate(), name, s.now())
	s.current = c
	s.unsaved = true
	return c
}

// LoadCharacter replaces the current character wholesale and marks it saved
func (s *Store) LoadCharacter(c *character.Character) {
	if c == nil {
		s.ResetCharacter()
		return
	}
	next := c.Clone()
	s.current = next
	s.unsaved = false
	s.ClearError()
}

// RestoreCharacter makes a copy of c current without touching the error
// message. The restored character counts as unsaved.
func (s *Store) RestoreCharacter(c *character.Character) {
	if c == nil {
		return
	}
	s.current = c.Clone()
	s.unsaved = true
}

// ResetCharacter drops the current character
func (s *Store) ResetCharacter() {
	s.current = nil
	s.unsaved = false
}

// CloneCharacter returns a copy of the current character under a fresh id.
// The current character is left alone.
func (s *Store) CloneCharacter() (*character.Character, bool) {
	if s.current == nil {
		return nil, false
	}
	c := s.current.Clone()
	now := s.now()
	c.ID = s.idGen.Generate()
	c.CreatedAt = now
	c.LastModified = now
	return c, true
}

// IsLoading reports whether a persistence call is in flight
func (s *Store) IsLoading() bool {
	return s.isLoading
}

// SetLoading sets the loading flag
func (s *Store) SetLoading(loading bool) {
	s.isLoading = loading
}

// ErrorMessage returns the last recorded error, or "" when there is none
func (s *Store) ErrorMessage() string {
	return s.errMsg
}

// Err returns the coded error behind ErrorMessage, or nil when there is
// none. Messages set through SetError come back as Internal.
func (s *Store) Err() error {
	if s.errMsg == "" {
		return nil
	}
	if s.err != nil {
		return s.err
	}
	return errors.Internal(s.errMsg)
}

// SetError records a user-visible error message
func (s *Store) SetError(msg string) {
	s.errMsg = msg
	s.err = nil
}

// ClearError clears the recorded error
func (s *Store) ClearError() {
	s.errMsg = ""
	s.err = nil
}

// fail records msg for ErrorMessage and cause, wrapped under msg, for Err
func (s *Store) fail(msg string, cause error) {
	s.errMsg = msg
	s.err = nil
	if cause != nil {
		s.err = errors.Wrap(cause, msg)
	}
}

// HasUnsavedChanges reports whether the character changed since the last
// save or load
func (s *Store) HasUnsavedChanges() bool {
	return s.unsaved
}

// MarkSaved clears the unsaved flag
func (s *Store) MarkSaved() {
	s.unsaved = false
}

// MarkUnsaved sets the unsaved flag
func (s *Store) MarkUnsaved() {
	s.unsaved = true
}

// mutate applies fn to a clone of the current character and swaps it in
func (s *Store) mutate(fn func(c *character.Character)) {
	_ = s.mutateE(func(c *character.Character) error {
		fn(c)
		return nil
	})
}

// mutateE is mutate for changes that can fail. On error nothing changes.
func (s *Store) mutateE(fn func(c *character.Character) error) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		return true, fn(c)
	})
}

// mutateChanged is mutate for changes that may find nothing to change
func (s *Store) mutateChanged(fn func(c *character.Character) bool) {
	_ = s.mutateIf(func(c *character.Character) (bool, error) {
		return fn(c), nil
	})
}

// mutateIf swaps in the changed clone only when fn reports a change and
// no error. Otherwise the current character, its modification time and the
// unsaved flag stay as they were.
func (s *Store) mutateIf(fn func(c *character.Character) (bool, error)) error {
	if s.current == nil {
		return nil
	}
	next := s.current.Clone()
	changed, err := fn(next)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	next.LastModified = s.now()
	s.current = next
	s.unsaved = true
	return nil
}

func (s *Store) now() int64 {
	return s.clock.Now().UnixMilli()
}
