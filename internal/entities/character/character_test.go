package character_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
)

type CharacterTestSuite struct {
	suite.Suite
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) TestNewDefaults() {
	c := character.New("char_1", "Aria", 1000)

	s.Assert().Equal("char_1", c.ID)
	s.Assert().Equal("Aria", c.Name)
	s.Assert().Empty(c.Race.Name)
	s.Assert().Equal(int64(1000), c.CreatedAt)
	s.Assert().NotNil(c.YouthEvents)
	s.Assert().Empty(c.YouthEvents)
	s.Assert().NotNil(c.Skills)
	s.Assert().NotNil(c.PersonalityTraits.Exotic)
	s.Assert().NotNil(c.DnDIntegration.AbilityModifiers)
	s.Assert().Len(c.ActiveModifiers, 5)
	for _, key := range character.CoreModifiers {
		s.Assert().Equal(0, c.ActiveModifiers[key], key)
	}
}

func (s *CharacterTestSuite) TestCloneIsIndependent() {
	c := character.New("char_1", "Aria", 1000)
	c.Skills = append(c.Skills, character.Skill{Name: "Swimming", Rank: 2})
	c.ActiveModifiers[character.ModifierCulture] = 3

	clone := c.Clone()
	s.Require().Equal(c, clone)

	clone.Skills[0].Rank = 9
	clone.ActiveModifiers[character.ModifierCulture] = -1
	clone.Race.Traits = append(clone.Race.Traits, "Darkvision")

	s.Assert().Equal(2, c.Skills[0].Rank)
	s.Assert().Equal(3, c.ActiveModifiers[character.ModifierCulture])
	s.Assert().Empty(c.Race.Traits)
}

func (s *CharacterTestSuite) TestEventsByCategory() {
	c := character.New("char_1", "Aria", 0)
	c.SetEvents(character.EventCategoryAdulthood, []character.Event{{ID: "e1", Result: "Went to war"}})

	s.Assert().Len(c.Events(character.EventCategoryAdulthood), 1)
	s.Assert().Empty(c.Events(character.EventCategoryYouth))
	s.Assert().Nil(c.Events("elderly"))
	s.Assert().False(character.EventCategory("elderly").Valid())
}

func (s *CharacterTestSuite) TestEffectiveLevel() {
	c := character.New("char_1", "Aria", 0)
	s.Assert().Equal(1, c.EffectiveLevel())

	lvl := 7
	c.Level = &lvl
	s.Assert().Equal(7, c.EffectiveLevel())
}
