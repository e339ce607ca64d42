package testutils

import (
	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/testutils/builders"
)

// Fixture ids and names shared across packages
const (
	TestCharacterID   = "char-test-001"
	TestCharacterName = "Thorin Oakenshield"
)

// CreateTestCharacter creates a bare character with sensible defaults
func CreateTestCharacter(name string) *character.Character {
	return builders.NewCharacterBuilder().
		WithID(TestCharacterID).
		WithName(name).
		Build()
}

// CreateMilitaryCharacter creates a human veteran whose history points
// clearly at the Fighter archetype.
func CreateMilitaryCharacter() *character.Character {
	return builders.NewCharacterBuilder().
		WithID(TestCharacterID).
		WithName(TestCharacterName).
		WithAge(32).
		WithRace("Human", "").
		WithCulture("Civilized", 4).
		WithOccupation("Soldier", "Military", 6).
		WithOccupation("Mercenary", "Military", 3).
		WithOccupation("Guard", "Military", 2).
		WithSkill("Swordsmanship", 3).
		WithSkill("Shield", 2).
		WithSkill("Tactics", 2).
		WithEvent(character.EventCategoryYouth, "Apprenticed to the town watch").
		WithEvent(character.EventCategoryAdulthood, "Fought in a border war").
		Build()
}

// CreateScholarCharacter creates an elven scholar with arcane leanings
func CreateScholarCharacter() *character.Character {
	return builders.NewCharacterBuilder().
		WithID("char-test-002").
		WithName("Elaria Moonwhisper").
		WithAge(120).
		WithRace("Elf", "High").
		WithOccupation("Scholar", "Academic", 40).
		WithOccupation("Librarian", "Academic", 20).
		WithSkill("Arcane Lore", 4).
		WithSkill("History", 3).
		WithTrait(character.TraitNeutral, "Curious").
		WithValue("Knowledge").
		Build()
}
