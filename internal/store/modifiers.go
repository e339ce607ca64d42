package store

import (
	"maps"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
)

// AddModifier adds delta to key, creating it when absent
func (s *Store) AddModifier(key string, delta int) {
	s.mutate(func(c *character.Character) {
		c.ActiveModifiers[key] += delta
	})
}

// UpdateModifier sets key to value
func (s *Store) UpdateModifier(key string, value int) {
	s.mutate(func(c *character.Character) {
		c.ActiveModifiers[key] = value
	})
}

// RemoveModifier deletes key. The five core modifiers are reset to zero
// instead so they are always present.
func (s *Store) RemoveModifier(key string) {
	s.mutate(func(c *character.Character) {
		if character.IsCoreModifier(key) {
			c.ActiveModifiers[key] = 0
			return
		}
		delete(c.ActiveModifiers, key)
	})
}

// ActiveModifiers returns a copy of the modifier map, or nil when no
// character is loaded
func (s *Store) ActiveModifiers() map[string]int {
	if s.current == nil {
		return nil
	}
	return maps.Clone(s.current.ActiveModifiers)
}

// CalculateTotalModifier returns the value of key. An empty key sums every
// active modifier.
func (s *Store) CalculateTotalModifier(key string) int {
	if s.current == nil {
		return 0
	}
	if key != "" {
		return s.current.ActiveModifiers[key]
	}
	total := 0
	for _, v := range s.current.ActiveModifiers {
		total += v
	}
	return total
}
