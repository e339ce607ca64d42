// Package tables defines the contract of the table resolution collaborator.
// Table content and dice rolling live outside this module.
package tables

import (
	"context"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
)

//go:generate mockgen -destination=mock/mock_resolver.go -package=tablesmock github.com/KirkDiggler/pancasting/internal/tables Resolver

// Result is the entry a table produced for a character
type Result struct {
	TableID   string `json:"tableId"`
	TableName string `json:"tableName,omitempty"`

	// Roll is nil when the entry was chosen by hand
	Roll             *int            `json:"roll,omitempty"`
	ModifiersApplied []string        `json:"modifiersApplied,omitempty"`
	Entry            character.Entry `json:"entry"`
	Manual           bool            `json:"manual,omitempty"`
}

// Resolver produces a table entry given a table id and the character so
// far. Implementations may consult the character's active modifiers.
type Resolver interface {
	Resolve(ctx context.Context, tableID string, c *character.Character) (*Result, error)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(ctx context.Context, tableID string, c *character.Character) (*Result, error)

// Resolve calls f
func (f ResolverFunc) Resolve(ctx context.Context, tableID string, c *character.Character) (*Result, error) {
	return f(ctx, tableID, c)
}

// Step converts r into a generation log record
func (r *Result) Step() character.GenerationStep {
	return character.GenerationStep{
		TableID:          r.TableID,
		TableName:        r.TableName,
		RollResult:       r.Roll,
		ModifiersApplied: r.ModifiersApplied,
		SelectedEntry:    r.Entry,
		ManualSelection:  r.Manual || r.Roll == nil,
	}
}
