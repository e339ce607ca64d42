package conversion_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pancasting/internal/services/conversion"
	"github.com/KirkDiggler/pancasting/internal/testutils"
	"github.com/KirkDiggler/pancasting/internal/testutils/builders"
)

type Dnd35ConverterTestSuite struct {
	suite.Suite
	converter conversion.Converter
}

func TestDnd35ConverterSuite(t *testing.T) {
	suite.Run(t, new(Dnd35ConverterTestSuite))
}

func (s *Dnd35ConverterTestSuite) SetupTest() {
	s.converter = conversion.New35Converter()
}

func (s *Dnd35ConverterTestSuite) TestMaxSkillRanks() {
	s.Assert().Equal(4, conversion.MaxSkillRanks(1))
	s.Assert().Equal(8, conversion.MaxSkillRanks(5))
	s.Assert().Equal(23, conversion.MaxSkillRanks(20))
	s.Assert().Equal(4, conversion.MaxSkillRanks(0))
}

func (s *Dnd35ConverterTestSuite) TestConvertMilitaryCharacter() {
	sheet := s.converter.Convert(testutils.CreateMilitaryCharacter())

	s.Assert().Equal(conversion.Edition35, sheet.Edition)
	s.Assert().Equal(4, sheet.MaxSkillRanks)
	s.Assert().Zero(sheet.ProficiencyBonus)
	s.Assert().Nil(sheet.Background)
	s.Assert().Equal("Fighter", sheet.SuggestedClass)
	s.Assert().Contains(sheet.RacialTraits, "Bonus Feat")

	s.Require().NotNil(sheet.Combat)
	s.Assert().Equal("Fighter", sheet.Combat.Class)
	s.Assert().Equal(1, sheet.Combat.BaseAttackBonus)
	s.Assert().Equal(2, sheet.Combat.Fortitude)
	s.Assert().Equal(0, sheet.Combat.Reflex)
	s.Assert().Equal(0, sheet.Combat.Will)
}

func (s *Dnd35ConverterTestSuite) TestConvertScholar() {
	sheet := s.converter.Convert(testutils.CreateScholarCharacter())

	s.Assert().Equal("Wizard", sheet.SuggestedClass)
	s.Assert().Equal("High", sheet.Subrace)

	// both lore skills collapse onto Knowledge
	s.Require().Len(sheet.Skills, 1)
	s.Assert().Equal("Knowledge", sheet.Skills[0].Name)
	s.Assert().Equal("Arcane Lore", sheet.Skills[0].Source)
	s.Assert().Equal(4, sheet.Skills[0].Ranks)

	s.Assert().Equal(11, sheet.Score(conversion.AbilityIntelligence))
	s.Assert().Equal(12, sheet.Score(conversion.AbilityDexterity))
	s.Assert().Equal(8, sheet.Score(conversion.AbilityConstitution))

	s.Require().NotNil(sheet.Combat)
	s.Assert().Equal(0, sheet.Combat.BaseAttackBonus)
	s.Assert().Equal(2, sheet.Combat.Will)
	s.Assert().Equal(-1, sheet.Combat.Fortitude)
}

func (s *Dnd35ConverterTestSuite) TestConvertClampsRanks() {
	c := builders.NewCharacterBuilder().WithSkill("Climbing", 6).Build()

	sheet := s.converter.Convert(c)

	s.Require().Len(sheet.Skills, 1)
	s.Assert().Equal("Climb", sheet.Skills[0].Name)
	s.Assert().Equal(4, sheet.Skills[0].Ranks)
	s.Assert().Equal(4, sheet.Skills[0].Bonus)
}

func (s *Dnd35ConverterTestSuite) TestConvertWithoutFittingClass() {
	sheet := s.converter.Convert(builders.NewCharacterBuilder().WithLevel(6).Build())

	s.Assert().Empty(sheet.SuggestedClass)
	s.Require().NotNil(sheet.Combat)
	s.Assert().Equal(3, sheet.Combat.BaseAttackBonus)
	s.Assert().Equal(2, sheet.Combat.Fortitude)
}

func (s *Dnd35ConverterTestSuite) TestValidate() {
	s.Run("ranks above maximum", func() {
		c := builders.NewCharacterBuilder().WithSkill("Climbing", 6).Build()

		report := s.converter.Validate(c)

		s.Assert().True(report.IsValid)
		s.Assert().Contains(report.Warnings, "Skill Climbing has 6 ranks; the maximum at this level is 4")
		s.Assert().Nil(report.LevelAppropriate)
	})

	s.Run("ranks allowed at higher level", func() {
		c := builders.NewCharacterBuilder().WithLevel(3).WithSkill("Climbing", 6).Build()

		report := s.converter.Validate(c)

		s.Assert().Empty(report.Warnings)
	})

	s.Run("missing name", func() {
		report := s.converter.Validate(builders.NewCharacterBuilder().WithName("").Build())

		s.Assert().False(report.IsValid)
		s.Assert().Equal(conversion.Edition35, report.Edition)
	})
}

func (s *Dnd35ConverterTestSuite) TestDoesNotSupportFiveEOnlyCapabilities() {
	_, ok := s.converter.(conversion.BackgroundSuggester)
	s.Assert().False(ok)
	_, ok = s.converter.(conversion.StatsGenerator)
	s.Assert().False(ok)
}

func (s *Dnd35ConverterTestSuite) TestRenderText() {
	text := s.converter.RenderText(s.converter.Convert(testutils.CreateMilitaryCharacter()))

	s.Assert().Regexp(`^=== D&D 3\.5 Edition Character Sheet ===\n`, text)
	s.Assert().Contains(text, "Name: "+testutils.TestCharacterName)
	s.Assert().Contains(text, "Race: Human")
	s.Assert().Contains(text, "Max Skill Ranks: 4")
	s.Assert().Contains(text, "Base Attack Bonus: +1")
	s.Assert().Contains(text, "Saves: Fort +2, Ref +0, Will +0")
}
