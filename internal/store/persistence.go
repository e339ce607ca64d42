package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/kvstore"
)

// SaveCharacter writes the current character under its id. Failures are
// recorded in ErrorMessage and reported as false.
func (s *Store) SaveCharacter(ctx context.Context) bool {
	if s.current == nil {
		s.fail("No character to save", errors.FailedPrecondition("no character loaded"))
		return false
	}

	s.isLoading = true
	defer func() { s.isLoading = false }()

	data, err := json.Marshal(s.current)
	if err != nil {
		s.fail(fmt.Sprintf("Failed to save character: %v", err), err)
		return false
	}

	if err := s.kv.Set(ctx, kvstore.CharacterKey(s.current.ID), string(data)); err != nil {
		slog.ErrorContext(ctx, "failed to save character",
			"character_id", s.current.ID,
			"error", err)
		s.fail(fmt.Sprintf("Failed to save character: %s", errors.GetMessage(err)), err)
		return false
	}

	slog.DebugContext(ctx, "character saved", "character_id", s.current.ID)
	s.unsaved = false
	s.ClearError()
	return true
}

// LoadCharacterByID reads character id from storage and makes it current.
// A missing key returns false without recording an error.
func (s *Store) LoadCharacterByID(ctx context.Context, id string) bool {
	s.isLoading = true
	defer func() { s.isLoading = false }()

	data, err := s.kv.Get(ctx, kvstore.CharacterKey(id))
	if err != nil {
		if errors.IsNotFound(err) {
			return false
		}
		slog.ErrorContext(ctx, "failed to load character",
			"character_id", id,
			"error", err)
		s.fail(fmt.Sprintf("Failed to load character: %s", errors.GetMessage(err)), err)
		return false
	}

	c, err := decode(data)
	if err != nil {
		slog.WarnContext(ctx, "stored character is malformed",
			"character_id", id,
			"error", err)
		s.fail(fmt.Sprintf("Failed to load character: %v", err), err)
		return false
	}

	s.LoadCharacter(c)
	return true
}

// DeleteCharacter removes character id from storage. If it is the current
// character it is dropped too.
func (s *Store) DeleteCharacter(ctx context.Context, id string) bool {
	if err := s.kv.Delete(ctx, kvstore.CharacterKey(id)); err != nil {
		slog.ErrorContext(ctx, "failed to delete character",
			"character_id", id,
			"error", err)
		s.fail(fmt.Sprintf("Failed to delete character: %s", errors.GetMessage(err)), err)
		return false
	}
	if s.current != nil && s.current.ID == id {
		s.ResetCharacter()
	}
	return true
}

// ExportCharacter returns the current character as indented JSON, or ""
// when none is loaded
func (s *Store) ExportCharacter() string {
	if s.current == nil {
		return ""
	}
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		s.fail(fmt.Sprintf("Failed to export character: %v", err), err)
		return ""
	}
	return string(data)
}

// ImportCharacter parses data and makes it the current, unsaved character.
// On failure the current character is left untouched.
func (s *Store) ImportCharacter(data string) bool {
	c, err := decode(data)
	if err != nil {
		s.fail(fmt.Sprintf("Failed to import character: %v", err), err)
		return false
	}
	if c.ID == "" {
		c.ID = s.idGen.Generate()
	}

	s.current = c
	s.unsaved = true
	s.ClearError()
	return true
}

func decode(data string) (*character.Character, error) {
	var c character.Character
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid character JSON")
	}
	c.Normalize()
	return &c, nil
}
