// Package generation drives one character through a PanCasting generation
// session. It owns the character store, the step engine and a
// character-level undo timeline, and keeps the three in step.
//
// An Orchestrator is not safe for concurrent use.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/history"
	"github.com/KirkDiggler/pancasting/internal/kvstore"
	"github.com/KirkDiggler/pancasting/internal/pkg/clock"
	"github.com/KirkDiggler/pancasting/internal/pkg/idgen"
	"github.com/KirkDiggler/pancasting/internal/progress"
	"github.com/KirkDiggler/pancasting/internal/services/conversion"
	"github.com/KirkDiggler/pancasting/internal/store"
	"github.com/KirkDiggler/pancasting/internal/tables"
)

// HistoryCacheSize is how many snapshot descriptions Finish persists
const HistoryCacheSize = 10

// Config holds the dependencies for the generation orchestrator
type Config struct {
	Store       *store.Store
	Engine      *progress.Engine
	Converter   *conversion.Service
	KV          kvstore.Store
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// MaxHistorySize bounds the character timeline. Zero means the
	// history default.
	MaxHistorySize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Converter == nil {
		vb.RequiredField("Converter")
	}
	if c.KV == nil {
		vb.RequiredField("KV")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.MaxHistorySize < 0 {
		vb.InvalidField("MaxHistorySize", "must not be negative")
	}

	return vb.Build()
}

// HistoryEntry is one line of the persisted history cache
type HistoryEntry struct {
	ID          string `json:"id"`
	Timestamp   int64  `json:"timestamp"`
	Description string `json:"description"`
}

// HistoryCache is what Finish stores under history_<characterId>
type HistoryCache struct {
	CharacterID string         `json:"characterId"`
	SessionID   string         `json:"sessionId"`
	SavedAt     int64          `json:"savedAt"`
	Entries     []HistoryEntry `json:"entries"`
}

// Orchestrator is the explicit session object tying store, engine and
// history together
type Orchestrator struct {
	store     *store.Store
	engine    *progress.Engine
	converter *conversion.Service
	kv        kvstore.Store
	clock     clock.Clock
	timeline  *history.Timeline[*character.Character]
}

// New creates an orchestrator. No session is active until Begin.
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generation config")
	}

	timeline, err := history.New(&history.Config[*character.Character]{
		MaxSize:     cfg.MaxHistorySize,
		Copy:        (*character.Character).Clone,
		IDGenerator: cfg.IDGenerator,
		Clock:       cfg.Clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character history")
	}

	return &Orchestrator{
		store:     cfg.Store,
		engine:    cfg.Engine,
		converter: cfg.Converter,
		kv:        cfg.KV,
		clock:     cfg.Clock,
		timeline:  timeline,
	}, nil
}

// Store returns the underlying character store
func (o *Orchestrator) Store() *store.Store {
	return o.store
}

// Engine returns the underlying step engine
func (o *Orchestrator) Engine() *progress.Engine {
	return o.engine
}

// Current returns the character being generated, or nil
func (o *Orchestrator) Current() *character.Character {
	return o.store.Current()
}

// Begin creates a new character and starts a generation session for it.
// Any previous character history is discarded. The returned character is a
// copy; changes go through Apply.
func (o *Orchestrator) Begin(ctx context.Context, name string, mode progress.Mode) (*character.Character, error) {
	if !mode.Valid() {
		return nil, errors.InvalidArgumentf("unknown generation mode: %s", mode)
	}

	c := o.store.CreateNewCharacter(name)
	if err := o.engine.StartGeneration(c.ID, mode); err != nil {
		o.store.ResetCharacter()
		return nil, errors.Wrap(err, "failed to start generation")
	}

	o.timeline.Clear()
	o.snapshot(fmt.Sprintf("Created character %s", name))

	slog.InfoContext(ctx, "generation started",
		"character_id", c.ID,
		"session_id", o.engine.SessionID(),
		"mode", string(mode))
	return o.store.Current().Clone(), nil
}

// Apply runs a store mutation and snapshots the result under description
func (o *Orchestrator) Apply(description string, mutate func(s *store.Store)) error {
	if err := o.requireCharacter(); err != nil {
		return err
	}
	if mutate == nil {
		return errors.InvalidArgument("mutation is required")
	}

	mutate(o.store)
	o.snapshot(description)
	return nil
}

// RecordTableResult appends a generation log record for a table result
// produced while working on stepID
func (o *Orchestrator) RecordTableResult(stepID string, result *tables.Result) (character.GenerationStep, error) {
	if err := o.requireCharacter(); err != nil {
		return character.GenerationStep{}, err
	}
	if result == nil {
		return character.GenerationStep{}, errors.InvalidArgument("table result is required")
	}
	step, ok := o.step(stepID)
	if !ok {
		return character.GenerationStep{}, errors.NotFoundf("generation step %s not found", stepID)
	}

	record := result.Step()
	if record.TableName == "" {
		record.TableName = step.Title
	}
	o.store.AddGenerationStep(record)

	log := o.store.Current().GenerationHistory
	recorded := log[len(log)-1]
	o.snapshot(fmt.Sprintf("%s: %s", step.Title, result.Entry.Result))
	return recorded, nil
}

// Resolve asks resolver for an entry of tableID given the character so far
// and records it against stepID. An empty stepID is looked up from the
// catalog's table lists.
func (o *Orchestrator) Resolve(ctx context.Context, stepID, tableID string, resolver tables.Resolver) (*tables.Result, error) {
	if err := o.requireCharacter(); err != nil {
		return nil, err
	}
	if resolver == nil {
		return nil, errors.InvalidArgument("resolver is required")
	}
	if stepID == "" {
		id, ok := progress.StepForTable(o.engine.Steps(), tableID)
		if !ok {
			return nil, errors.NotFoundf("no generation step uses table %s", tableID)
		}
		stepID = id
	}
	if _, ok := o.step(stepID); !ok {
		return nil, errors.NotFoundf("generation step %s not found", stepID)
	}

	result, err := resolver.Resolve(ctx, tableID, o.store.Current().Clone())
	if err != nil {
		slog.ErrorContext(ctx, "table resolution failed",
			"table_id", tableID,
			"step_id", stepID,
			"error", err)
		return nil, errors.Wrapf(err, "failed to resolve table %s", tableID)
	}
	if result == nil {
		return nil, errors.Internalf("table %s returned no result", tableID)
	}
	if result.TableID == "" {
		result.TableID = tableID
	}

	if _, err := o.RecordTableResult(stepID, result); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "table resolved",
		"table_id", tableID,
		"step_id", stepID,
		"manual", result.Manual)
	return result, nil
}

// CompleteStep marks stepID complete in the engine and snapshots the
// character
func (o *Orchestrator) CompleteStep(stepID string) error {
	if err := o.requireCharacter(); err != nil {
		return err
	}
	if step, ok := o.step(stepID); ok && step.Completed && !step.Skipped {
		return nil
	}
	if err := o.engine.CompleteStep(stepID); err != nil {
		return err
	}
	step, _ := o.step(stepID)
	o.snapshot(fmt.Sprintf("Completed %s", step.Title))
	return nil
}

// SkipStep skips an optional step and logs the skip in the character's
// generation history. Skipping twice logs once.
func (o *Orchestrator) SkipStep(stepID string) error {
	if err := o.requireCharacter(); err != nil {
		return err
	}
	if step, ok := o.step(stepID); ok && step.Skipped {
		return nil
	}
	if err := o.engine.SkipStep(stepID); err != nil {
		return err
	}
	step, _ := o.step(stepID)
	o.store.AddGenerationStep(character.GenerationStep{
		TableName: step.Title,
		Skipped:   true,
	})
	o.snapshot(fmt.Sprintf("Skipped %s", step.Title))
	return nil
}

// Undo restores the previous character snapshot
func (o *Orchestrator) Undo() bool {
	snap, ok := o.timeline.Undo()
	if !ok {
		return false
	}
	o.store.RestoreCharacter(snap.State)
	return true
}

// Redo restores the next character snapshot
func (o *Orchestrator) Redo() bool {
	snap, ok := o.timeline.Redo()
	if !ok {
		return false
	}
	o.store.RestoreCharacter(snap.State)
	return true
}

// JumpToHistory restores the snapshot at index
func (o *Orchestrator) JumpToHistory(index int) bool {
	snap, ok := o.timeline.JumpToEntry(index)
	if !ok {
		return false
	}
	o.store.RestoreCharacter(snap.State)
	return true
}

// CanUndo reports whether Undo would change anything
func (o *Orchestrator) CanUndo() bool {
	return o.timeline.CanUndo()
}

// CanRedo reports whether Redo would change anything
func (o *Orchestrator) CanRedo() bool {
	return o.timeline.CanRedo()
}

// History returns the character snapshots, oldest first
func (o *Orchestrator) History() []history.Snapshot[*character.Character] {
	return o.timeline.Entries()
}

// Finish ends the generation session, saves the character and persists
// the last HistoryCacheSize snapshot descriptions
func (o *Orchestrator) Finish(ctx context.Context) error {
	if err := o.requireCharacter(); err != nil {
		return err
	}

	if err := o.engine.EndGeneration(ctx); err != nil {
		return errors.Wrap(err, "failed to end generation")
	}
	if !o.store.SaveCharacter(ctx) {
		return errors.Wrap(o.store.Err(), "failed to finish generation")
	}

	c := o.store.Current()
	if err := o.saveHistoryCache(ctx, c.ID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "generation finished",
		"character_id", c.ID,
		"session_id", o.engine.SessionID(),
		"snapshots", o.timeline.Len())
	return nil
}

// LoadHistoryCache reads the history cache Finish wrote for characterID
func (o *Orchestrator) LoadHistoryCache(ctx context.Context, characterID string) (*HistoryCache, error) {
	data, err := o.kv.Get(ctx, kvstore.HistoryKey(characterID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load history for character %s", characterID)
	}

	var cache HistoryCache
	if err := json.Unmarshal([]byte(data), &cache); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "history for character %s is malformed", characterID)
	}
	return &cache, nil
}

// Export converts the current character for edition tag
func (o *Orchestrator) Export(ctx context.Context, tag string, opts conversion.ExportOptions) (*conversion.ExportResult, error) {
	if err := o.requireCharacter(); err != nil {
		return nil, err
	}
	return o.converter.ExportCharacter(ctx, o.store.Current(), tag, opts)
}

func (o *Orchestrator) saveHistoryCache(ctx context.Context, characterID string) error {
	entries := o.timeline.Entries()
	if len(entries) > HistoryCacheSize {
		entries = entries[len(entries)-HistoryCacheSize:]
	}

	cache := HistoryCache{
		CharacterID: characterID,
		SessionID:   o.engine.SessionID(),
		SavedAt:     o.clock.Now().UnixMilli(),
		Entries:     make([]HistoryEntry, len(entries)),
	}
	for i, e := range entries {
		cache.Entries[i] = HistoryEntry{
			ID:          e.ID,
			Timestamp:   e.Timestamp,
			Description: e.Description,
		}
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return errors.Wrap(err, "failed to encode history cache")
	}
	if err := o.kv.Set(ctx, kvstore.HistoryKey(characterID), string(data)); err != nil {
		slog.ErrorContext(ctx, "failed to persist history cache",
			"character_id", characterID,
			"error", err)
		return errors.Wrapf(err, "failed to persist history for character %s", characterID)
	}
	return nil
}

func (o *Orchestrator) snapshot(description string) {
	if c := o.store.Current(); c != nil {
		o.timeline.CreateSnapshot(description, c)
	}
}

func (o *Orchestrator) step(id string) (progress.Step, bool) {
	for _, s := range o.engine.Steps() {
		if s.ID == id {
			return s, true
		}
	}
	return progress.Step{}, false
}

func (o *Orchestrator) requireCharacter() error {
	if o.store.Current() == nil {
		return errors.FailedPrecondition("no character loaded")
	}
	return nil
}
