// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/pancasting/internal/entities/character"
)

// DefaultCreatedAt is the timestamp stamped on built characters
const DefaultCreatedAt int64 = 1700000000000

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	c *character.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		c: character.New("char-test-123", "Test Character", DefaultCreatedAt),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.c.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.c.Name = name
	return b
}

// WithAge sets the character age
func (b *CharacterBuilder) WithAge(age int) *CharacterBuilder {
	b.c.Age = age
	return b
}

// WithLevel sets an explicit level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.c.Level = &level
	return b
}

// WithRace sets race and subrace
func (b *CharacterBuilder) WithRace(name, subrace string) *CharacterBuilder {
	b.c.Race = character.Race{Name: name, Subrace: subrace}
	return b
}

// WithCulture sets the culture and keeps cuMod in sync
func (b *CharacterBuilder) WithCulture(name string, cuMod int) *CharacterBuilder {
	b.c.Culture = character.Culture{Name: name, CuMod: cuMod}
	b.c.ActiveModifiers[character.ModifierCulture] = cuMod
	return b
}

// WithOccupation appends an occupation
func (b *CharacterBuilder) WithOccupation(name, kind string, years int) *CharacterBuilder {
	b.c.Occupations = append(b.c.Occupations, character.Occupation{
		ID:    "occ-" + name,
		Name:  name,
		Type:  kind,
		Years: years,
	})
	return b
}

// WithSkill appends a skill
func (b *CharacterBuilder) WithSkill(name string, rank int) *CharacterBuilder {
	b.c.Skills = append(b.c.Skills, character.Skill{Name: name, Rank: rank})
	return b
}

// WithTrait appends a trait to the given bucket
func (b *CharacterBuilder) WithTrait(bucket character.TraitBucket, name string) *CharacterBuilder {
	if traits := b.c.PersonalityTraits.Bucket(bucket); traits != nil {
		*traits = append(*traits, character.Trait{Name: name})
	}
	return b
}

// WithValue appends a value
func (b *CharacterBuilder) WithValue(name string) *CharacterBuilder {
	b.c.Values = append(b.c.Values, character.Value{Name: name})
	return b
}

// WithEvent appends an event to its category's list
func (b *CharacterBuilder) WithEvent(category character.EventCategory, result string) *CharacterBuilder {
	events := b.c.Events(category)
	b.c.SetEvents(category, append(events, character.Event{
		ID:          "evt-" + result,
		Category:    category,
		Result:      result,
		Description: result,
		Timestamp:   DefaultCreatedAt,
	}))
	return b
}

// Build returns an independent copy of the built character
func (b *CharacterBuilder) Build() *character.Character {
	return b.c.Clone()
}
