package conversion

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
)

type LookupTestSuite struct {
	suite.Suite
}

func TestLookupSuite(t *testing.T) {
	suite.Run(t, new(LookupTestSuite))
}

func (s *LookupTestSuite) TestMatchSkill() {
	testCases := []struct {
		name     string
		vocab    []skillDef
		input    string
		expected string
		found    bool
	}{
		{"exact name", skills5e, "stealth", "Stealth", true},
		{"keyword", skills5e, "Horse Riding", "Animal Handling", true},
		{"longest keyword wins", skills5e, "Interrogation by threat", "Intimidation", true},
		{"unknown", skills5e, "Basket weaving", "", false},
		{"empty", skills5e, "  ", "", false},
		{"3.5 craft", skills35, "Blacksmithing", "Craft", true},
		{"3.5 knowledge", skills35, "Heraldry", "Knowledge", true},
		{"3.5 move silently", skills35, "Sneaking", "Move Silently", true},
		{"keyword inside a word", skills5e, "Nursing", "", false},
		{"keyword mid word", skills5e, "Collaboration", "", false},
		{"forging is not forgery", skills5e, "Weapon Forging", "", false},
		{"forgery", skills5e, "Document forgery", "Deception", true},
		{"3.5 forging is craft", skills35, "Weapon Forging", "Craft", true},
		{"3.5 block is not a lock", skills35, "Shield Block", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			def, ok := matchSkill(tc.vocab, tc.input)
			s.Assert().Equal(tc.found, ok)
			s.Assert().Equal(tc.expected, def.Name)
		})
	}
}

func (s *LookupTestSuite) TestMapSkillsKeepsHighestRank() {
	mapped := mapSkills(skills5e, []character.Skill{
		{Name: "Hunting", Rank: 2},
		{Name: "Tracking", Rank: 5},
		{Name: "Arcane theory", Rank: 1},
	})

	s.Require().Len(mapped, 2)
	s.Assert().Equal("Arcana", mapped[0].def.Name)
	s.Assert().Equal("Survival", mapped[1].def.Name)
	s.Assert().Equal(5, mapped[1].rank)
	s.Assert().Equal("Tracking", mapped[1].source)
}

func (s *LookupTestSuite) TestMapSkillsDropsUnrelatedNames() {
	mapped := mapSkills(skills5e, []character.Skill{
		{Name: "Nursing", Rank: 3},
		{Name: "Weapon Forging", Rank: 3},
		{Name: "Collaboration", Rank: 3},
	})
	s.Assert().Empty(mapped)
}

func (s *LookupTestSuite) TestLookupRace() {
	testCases := []struct {
		input string
		trait string
		found bool
	}{
		{"Human", "Extra Language", true},
		{"high elf", "Fey Ancestry", true},
		{"Half-Elf", "Skill Versatility", true},
		{"Hill Dwarf", "Stonecunning", true},
		{"Lizardfolk", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			def, ok := lookupRace(races5e, tc.input)
			s.Assert().Equal(tc.found, ok)
			if tc.found {
				s.Assert().Contains(def.Traits, tc.trait)
			}
		})
	}
}

func (s *LookupTestSuite) TestAbilityModifier() {
	s.Assert().Equal(0, AbilityModifier(10))
	s.Assert().Equal(0, AbilityModifier(11))
	s.Assert().Equal(-1, AbilityModifier(9))
	s.Assert().Equal(-4, AbilityModifier(3))
	s.Assert().Equal(5, AbilityModifier(20))
}

func (s *LookupTestSuite) TestNormalizeAbility() {
	for _, key := range []string{"str", "STR", "Strength", " strength "} {
		a, ok := normalizeAbility(key)
		s.Assert().True(ok, key)
		s.Assert().Equal(AbilityStrength, a)
	}
	_, ok := normalizeAbility("luck")
	s.Assert().False(ok)
}
