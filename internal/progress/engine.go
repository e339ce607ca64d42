// Package progress sequences the generation wizard: a fixed, ordered step
// catalog with dependency gating, completion and skip tracking, navigation,
// step-level undo/redo and session persistence.
//
// An Engine is not safe for concurrent use.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/history"
	"github.com/KirkDiggler/pancasting/internal/kvstore"
	"github.com/KirkDiggler/pancasting/internal/pkg/clock"
	"github.com/KirkDiggler/pancasting/internal/pkg/idgen"
)

// Config holds the dependencies for an Engine
type Config struct {
	KV             kvstore.Store
	IDGenerator    idgen.Generator
	Clock          clock.Clock
	MaxHistorySize int

	// Catalog overrides DefaultCatalog
	Catalog []Step
}

// Validate ensures all required dependencies are provided and the catalog
// is consistent
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
	if c.MaxHistorySize < 0 {
		vb.InvalidField("MaxHistorySize", "must not be negative")
	}

	seen := make(map[string]bool, len(c.Catalog))
	for _, step := range c.Catalog {
		if step.ID == "" {
			vb.RequiredField("Catalog.ID")
			continue
		}
		if seen[step.ID] {
			vb.Fieldf("Catalog", "duplicate step id %s", step.ID)
		}
		seen[step.ID] = true
	}
	for _, step := range c.Catalog {
		for _, dep := range step.Dependencies {
			if !seen[dep] {
				vb.Fieldf("Catalog", "step %s depends on unknown step %s", step.ID, dep)
			}
		}
	}

	return vb.Build()
}

// Engine tracks progress through the step catalog
type Engine struct {
	kv      kvstore.Store
	idGen   idgen.Generator
	clock   clock.Clock
	catalog []Step
	history *history.Timeline[State]
	state   State
}

// NewEngine creates an engine positioned at the first step with no session
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid progress config")
	}

	catalog := cfg.Catalog
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}

	timeline, err := history.New(&history.Config[State]{
		MaxSize:     cfg.MaxHistorySize,
		Copy:        State.Copy,
		IDGenerator: cfg.IDGenerator,
		Clock:       cfg.Clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create step history")
	}

	return &Engine{
		kv:      cfg.KV,
		idGen:   cfg.IDGenerator,
		clock:   cfg.Clock,
		catalog: copySteps(catalog),
		history: timeline,
		state:   newState(catalog),
	}, nil
}

// State returns a copy of the current progress state
func (e *Engine) State() State {
	return e.state.Copy()
}

// Steps returns a copy of the steps with their current flags
func (e *Engine) Steps() []Step {
	return copySteps(e.state.Steps)
}

// SessionID returns the active session id, or "" when none is running
func (e *Engine) SessionID() string {
	return e.state.SessionID
}

// Mode returns the generation mode
func (e *Engine) Mode() Mode {
	return e.state.Mode
}

// CurrentStep returns the step under the cursor
func (e *Engine) CurrentStep() (Step, bool) {
	if e.state.CurrentIndex < 0 || e.state.CurrentIndex >= len(e.state.Steps) {
		return Step{}, false
	}
	return copySteps(e.state.Steps[e.state.CurrentIndex : e.state.CurrentIndex+1])[0], true
}

// NextStep advances the cursor unless it is on the last step. Gating is
// reported by CanProceedToNextStep and is not enforced here.
func (e *Engine) NextStep() bool {
	if e.state.CurrentIndex >= len(e.state.Steps)-1 {
		return false
	}
	e.state.CurrentIndex++
	e.snapshot(fmt.Sprintf("Advanced to %s", e.state.Steps[e.state.CurrentIndex].Title))
	return true
}

// PreviousStep moves the cursor back unless it is on the first step
func (e *Engine) PreviousStep() bool {
	if e.state.CurrentIndex <= 0 {
		return false
	}
	e.state.CurrentIndex--
	e.snapshot(fmt.Sprintf("Returned to %s", e.state.Steps[e.state.CurrentIndex].Title))
	return true
}

// JumpToStep moves the cursor to index
func (e *Engine) JumpToStep(index int) bool {
	if index < 0 || index >= len(e.state.Steps) {
		return false
	}
	e.state.CurrentIndex = index
	e.snapshot(fmt.Sprintf("Jumped to %s", e.state.Steps[index].Title))
	return true
}

// JumpToStepID moves the cursor to the step with the given id
func (e *Engine) JumpToStepID(id string) bool {
	return e.JumpToStep(e.state.stepIndex(id))
}

// CompleteStep marks step id completed and no longer skipped. Completing
// a completed step changes nothing.
func (e *Engine) CompleteStep(id string) error {
	i := e.state.stepIndex(id)
	if i < 0 {
		return errors.NotFoundf("step %s not found", id).WithMeta("step_id", id)
	}
	step := &e.state.Steps[i]
	if step.Completed && !step.Skipped {
		return nil
	}

	step.Completed = true
	step.Skipped = false
	e.state.SkippedSteps = without(e.state.SkippedSteps, id)
	if !e.state.isCompleted(id) {
		e.state.CompletedSteps = append(e.state.CompletedSteps, id)
	}
	e.snapshot(fmt.Sprintf("Completed %s", step.Title))
	return nil
}

// SkipStep marks step id skipped. Required steps cannot be skipped.
func (e *Engine) SkipStep(id string) error {
	i := e.state.stepIndex(id)
	if i < 0 {
		return errors.NotFoundf("step %s not found", id).WithMeta("step_id", id)
	}
	step := &e.state.Steps[i]
	if step.Required {
		return errors.FailedPreconditionf("step %s is required and cannot be skipped", id).
			WithMeta("step_id", id)
	}
	if step.Skipped {
		return nil
	}

	step.Skipped = true
	step.Completed = false
	e.state.CompletedSteps = without(e.state.CompletedSteps, id)
	e.state.SkippedSteps = append(e.state.SkippedSteps, id)
	e.snapshot(fmt.Sprintf("Skipped %s", step.Title))
	return nil
}

// UncompleteStep clears both flags of step id
func (e *Engine) UncompleteStep(id string) error {
	i := e.state.stepIndex(id)
	if i < 0 {
		return errors.NotFoundf("step %s not found", id).WithMeta("step_id", id)
	}
	step := &e.state.Steps[i]
	if !step.Completed && !step.Skipped {
		return nil
	}

	step.Completed = false
	step.Skipped = false
	e.state.CompletedSteps = without(e.state.CompletedSteps, id)
	e.state.SkippedSteps = without(e.state.SkippedSteps, id)
	e.snapshot(fmt.Sprintf("Reopened %s", step.Title))
	return nil
}

// SetMode changes how results are chosen
func (e *Engine) SetMode(mode Mode) error {
	if !mode.Valid() {
		return errors.InvalidArgumentf("unknown generation mode: %s", mode).WithMeta("mode", string(mode))
	}
	if e.state.Mode == mode {
		return nil
	}
	e.state.Mode = mode
	e.snapshot(fmt.Sprintf("Switched to %s mode", mode))
	return nil
}

// CanProceedToNextStep reports whether the current step is settled and the
// next step's dependencies are all completed
func (e *Engine) CanProceedToNextStep() bool {
	current, ok := e.CurrentStep()
	if !ok {
		return false
	}
	if current.Required && !current.Completed && !current.Skipped {
		return false
	}
	next := e.state.CurrentIndex + 1
	if next >= len(e.state.Steps) {
		return false
	}
	return e.state.dependenciesMet(e.state.Steps[next])
}

// AvailableSteps returns every step whose dependencies are completed,
// regardless of position
func (e *Engine) AvailableSteps() []Step {
	var out []Step
	for _, step := range e.state.Steps {
		if e.state.dependenciesMet(step) {
			out = append(out, step)
		}
	}
	return copySteps(out)
}

// IsComplete reports whether the cursor is on the last step and that step
// is completed
func (e *Engine) IsComplete() bool {
	last := len(e.state.Steps) - 1
	return last >= 0 && e.state.CurrentIndex == last && e.state.Steps[last].Completed
}

// Progress is a point-in-time progress report
type Progress struct {
	Total              int            `json:"total"`
	Completed          int            `json:"completed"`
	Skipped            int            `json:"skipped"`
	CurrentIndex       int            `json:"currentIndex"`
	Percent            float64        `json:"percent"`
	EstimatedRemaining *time.Duration `json:"estimatedRemaining,omitempty"`
}

// Progress reports counts and a time estimate. The estimate is the average
// time per completed step times the steps still open, and is nil until a
// session has started and a step has been completed.
func (e *Engine) Progress() Progress {
	p := Progress{
		Total:        len(e.state.Steps),
		Completed:    len(e.state.CompletedSteps),
		Skipped:      len(e.state.SkippedSteps),
		CurrentIndex: e.state.CurrentIndex,
	}
	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
	}

	if p.Completed > 0 && e.state.StartedAt > 0 {
		elapsed := time.Duration(e.clock.Now().UnixMilli()-e.state.StartedAt) * time.Millisecond
		open := p.Total - p.Completed - p.Skipped
		remaining := elapsed / time.Duration(p.Completed) * time.Duration(open)
		p.EstimatedRemaining = &remaining
	}
	return p
}

// ValidationResult is the outcome of ValidateGeneration
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateGeneration fails for every required step that is not completed.
// Optional steps that were neither completed nor skipped only warn.
func (e *Engine) ValidateGeneration() *ValidationResult {
	result := &ValidationResult{Errors: []string{}, Warnings: []string{}}
	for _, step := range e.state.Steps {
		completed := e.state.isCompleted(step.ID)
		switch {
		case step.Required && !completed:
			result.Errors = append(result.Errors, fmt.Sprintf("Required step not completed: %s", step.ID))
		case !step.Required && !completed && !step.Skipped:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Optional step not addressed: %s", step.ID))
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

// StartGeneration begins a fresh session for characterID. Step flags are
// reset and history is cleared.
func (e *Engine) StartGeneration(characterID string, mode Mode) error {
	if !mode.Valid() {
		return errors.InvalidArgumentf("unknown generation mode: %s", mode).WithMeta("mode", string(mode))
	}

	e.state = newState(e.catalog)
	e.state.SessionID = e.idGen.Generate()
	e.state.CharacterID = characterID
	e.state.Mode = mode
	e.state.StartedAt = e.clock.Now().UnixMilli()

	e.history.Clear()
	e.snapshot("Started generation")
	return nil
}

// EndGeneration stamps the end time and persists the session under
// generation_<sessionId>
func (e *Engine) EndGeneration(ctx context.Context) error {
	if e.state.SessionID == "" {
		return errors.FailedPrecondition("no generation session in progress")
	}

	e.state.EndedAt = e.clock.Now().UnixMilli()
	e.snapshot("Ended generation")

	data, err := json.Marshal(e.state)
	if err != nil {
		return errors.Wrap(err, "failed to encode generation session")
	}
	if err := e.kv.Set(ctx, kvstore.GenerationKey(e.state.SessionID), string(data)); err != nil {
		slog.ErrorContext(ctx, "failed to persist generation session",
			"session_id", e.state.SessionID,
			"error", err)
		return errors.Wrapf(err, "failed to persist generation session %s", e.state.SessionID)
	}

	slog.InfoContext(ctx, "generation session ended",
		"session_id", e.state.SessionID,
		"character_id", e.state.CharacterID,
		"completed", len(e.state.CompletedSteps),
		"skipped", len(e.state.SkippedSteps))
	return nil
}

// LoadSession restores a persisted session. History restarts from it.
func (e *Engine) LoadSession(ctx context.Context, sessionID string) error {
	data, err := e.kv.Get(ctx, kvstore.GenerationKey(sessionID))
	if err != nil {
		return errors.Wrapf(err, "failed to load generation session %s", sessionID)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "generation session %s is malformed", sessionID)
	}
	if state.CompletedSteps == nil {
		state.CompletedSteps = []string{}
	}
	if state.SkippedSteps == nil {
		state.SkippedSteps = []string{}
	}

	e.state = state
	e.history.Clear()
	e.snapshot("Loaded generation session")
	return nil
}

// ResetGeneration drops the session and returns to the fresh catalog
func (e *Engine) ResetGeneration() {
	e.state = newState(e.catalog)
	e.history.Clear()
}

// Undo restores the previous step state
func (e *Engine) Undo() bool {
	snap, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.state = snap.State
	return true
}

// Redo restores the next step state
func (e *Engine) Redo() bool {
	snap, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.state = snap.State
	return true
}

// CanUndo reports whether Undo would change anything
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would change anything
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// History returns the step-level snapshots, oldest first
func (e *Engine) History() []history.Snapshot[State] {
	return e.history.Entries()
}

func (e *Engine) snapshot(description string) {
	e.history.CreateSnapshot(description, e.state)
}
