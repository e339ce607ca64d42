// Package history implements a bounded, linear undo/redo timeline of state
// snapshots. Creating a snapshot after an undo discards the redo branch.
//
// A Timeline is not safe for concurrent use.
package history

import (
	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/pkg/clock"
	"github.com/KirkDiggler/pancasting/internal/pkg/idgen"
)

// DefaultMaxSize is used when Config.MaxSize is zero
const DefaultMaxSize = 50

// Snapshot is an immutable, timestamped copy of state
type Snapshot[T any] struct {
	ID          string `json:"id"`
	Timestamp   int64  `json:"timestamp"`
	Description string `json:"description"`
	State       T      `json:"state"`
}

// Config configures a Timeline
type Config[T any] struct {
	// MaxSize bounds the number of entries kept. Zero means DefaultMaxSize.
	MaxSize int

	// Copy returns an independent copy of a state value. It is applied when
	// a snapshot is stored and again whenever one is handed out.
	Copy func(T) T

	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures the configuration is usable
func (c *Config[T]) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Copy == nil {
		vb.RequiredField("Copy")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.MaxSize < 0 {
		vb.InvalidField("MaxSize", "must not be negative")
	}

	return vb.Build()
}

// Timeline is a list of snapshots plus a cursor. The cursor is -1 when the
// timeline is empty.
type Timeline[T any] struct {
	entries []Snapshot[T]
	current int
	maxSize int
	copy    func(T) T
	idGen   idgen.Generator
	clock   clock.Clock
}

// New creates an empty timeline
func New[T any](cfg *Config[T]) (*Timeline[T], error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid history config")
	}

	maxSize := cfg.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	return &Timeline[T]{
		current: -1,
		maxSize: maxSize,
		copy:    cfg.Copy,
		idGen:   cfg.IDGenerator,
		clock:   cfg.Clock,
	}, nil
}

// CreateSnapshot drops every entry after the cursor, appends a copy of
// state and moves the cursor to it. The oldest entry is evicted once the
// timeline exceeds its maximum size.
func (t *Timeline[T]) CreateSnapshot(description string, state T) Snapshot[T] {
	snap := Snapshot[T]{
		ID:          t.idGen.Generate(),
		Timestamp:   t.clock.Now().UnixMilli(),
		Description: description,
		State:       t.copy(state),
	}

	t.entries = append(t.entries[:t.current+1], snap)
	t.current = len(t.entries) - 1

	if over := len(t.entries) - t.maxSize; over > 0 {
		t.entries = append([]Snapshot[T](nil), t.entries[over:]...)
		t.current -= over
	}

	return t.out(snap)
}

// Undo moves the cursor back one entry and returns it. The boolean is false
// when there is nothing to undo.
func (t *Timeline[T]) Undo() (Snapshot[T], bool) {
	if !t.CanUndo() {
		return Snapshot[T]{}, false
	}
	t.current--
	return t.out(t.entries[t.current]), true
}

// Redo moves the cursor forward one entry and returns it. The boolean is
// false when there is nothing to redo.
func (t *Timeline[T]) Redo() (Snapshot[T], bool) {
	if !t.CanRedo() {
		return Snapshot[T]{}, false
	}
	t.current++
	return t.out(t.entries[t.current]), true
}

// JumpToEntry moves the cursor directly to index
func (t *Timeline[T]) JumpToEntry(index int) (Snapshot[T], bool) {
	if index < 0 || index >= len(t.entries) {
		return Snapshot[T]{}, false
	}
	t.current = index
	return t.out(t.entries[index]), true
}

// Current returns the entry under the cursor
func (t *Timeline[T]) Current() (Snapshot[T], bool) {
	if t.current < 0 {
		return Snapshot[T]{}, false
	}
	return t.out(t.entries[t.current]), true
}

// Clear empties the timeline
func (t *Timeline[T]) Clear() {
	t.entries = nil
	t.current = -1
}

// CanUndo reports whether Undo would move the cursor
func (t *Timeline[T]) CanUndo() bool {
	return t.current > 0
}

// CanRedo reports whether Redo would move the cursor
func (t *Timeline[T]) CanRedo() bool {
	return t.current < len(t.entries)-1
}

// Entries returns copies of every snapshot, oldest first
func (t *Timeline[T]) Entries() []Snapshot[T] {
	out := make([]Snapshot[T], len(t.entries))
	for i, e := range t.entries {
		out[i] = t.out(e)
	}
	return out
}

// CurrentIndex returns the cursor, -1 when empty
func (t *Timeline[T]) CurrentIndex() int {
	return t.current
}

// Len returns the number of entries
func (t *Timeline[T]) Len() int {
	return len(t.entries)
}

// MaxSize returns the configured bound
func (t *Timeline[T]) MaxSize() int {
	return t.maxSize
}

func (t *Timeline[T]) out(s Snapshot[T]) Snapshot[T] {
	s.State = t.copy(s.State)
	return s
}
