package progress

import (
	"slices"
)

// Mode is how table results are chosen during a session
type Mode string

// Generation modes
const (
	ModeGuided Mode = "guided"
	ModeManual Mode = "manual"
	ModeRandom Mode = "random"
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	switch m {
	case ModeGuided, ModeManual, ModeRandom:
		return true
	}
	return false
}

// State is the step-progress state of a session. It is what the engine
// snapshots and persists.
type State struct {
	SessionID      string   `json:"sessionId,omitempty"`
	CharacterID    string   `json:"characterId,omitempty"`
	Mode           Mode     `json:"mode"`
	Steps          []Step   `json:"steps"`
	CurrentIndex   int      `json:"currentIndex"`
	CompletedSteps []string `json:"completedSteps"`
	SkippedSteps   []string `json:"skippedSteps"`
	StartedAt      int64    `json:"startedAt,omitempty"`
	EndedAt        int64    `json:"endedAt,omitempty"`
}

// Copy returns an independent copy of s
func (s State) Copy() State {
	s.Steps = copySteps(s.Steps)
	s.CompletedSteps = slices.Clone(s.CompletedSteps)
	s.SkippedSteps = slices.Clone(s.SkippedSteps)
	return s
}

func newState(catalog []Step) State {
	return State{
		Mode:           ModeGuided,
		Steps:          copySteps(catalog),
		CompletedSteps: []string{},
		SkippedSteps:   []string{},
	}
}

func (s *State) stepIndex(id string) int {
	return slices.IndexFunc(s.Steps, func(step Step) bool { return step.ID == id })
}

func (s *State) isCompleted(id string) bool {
	return slices.Contains(s.CompletedSteps, id)
}

func (s *State) dependenciesMet(step Step) bool {
	for _, dep := range step.Dependencies {
		if !s.isCompleted(dep) {
			return false
		}
	}
	return true
}

func without(ids []string, id string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
}
