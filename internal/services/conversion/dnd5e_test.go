package conversion_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/services/conversion"
	"github.com/KirkDiggler/pancasting/internal/testutils"
	"github.com/KirkDiggler/pancasting/internal/testutils/builders"
)

type Dnd5eConverterTestSuite struct {
	suite.Suite
	converter conversion.Converter
}

func TestDnd5eConverterSuite(t *testing.T) {
	suite.Run(t, new(Dnd5eConverterTestSuite))
}

func (s *Dnd5eConverterTestSuite) SetupTest() {
	s.converter = conversion.New5eConverter()
}

func (s *Dnd5eConverterTestSuite) TestProficiencyBonus() {
	testCases := []struct {
		level    int
		expected int
	}{
		{0, 2},
		{1, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{13, 5},
		{17, 6},
		{20, 6},
	}

	for _, tc := range testCases {
		s.Assert().Equal(tc.expected, conversion.ProficiencyBonus(tc.level), "level %d", tc.level)
	}
}

func (s *Dnd5eConverterTestSuite) TestConvertMilitaryCharacter() {
	c := testutils.CreateMilitaryCharacter()

	sheet := s.converter.Convert(c)

	s.Assert().Equal(conversion.Edition5e, sheet.Edition)
	s.Assert().Equal(testutils.TestCharacterName, sheet.Name)
	s.Assert().Equal("Human", sheet.Race)
	s.Assert().Equal(1, sheet.Level)
	s.Assert().Equal(2, sheet.ProficiencyBonus)
	s.Assert().Equal("Fighter", sheet.SuggestedClass)
	s.Require().NotNil(sheet.Background)
	s.Assert().Equal("Soldier", sheet.Background.Name)
	s.Assert().Contains(sheet.RacialTraits, "Extra Language")

	// human adjustments apply to every ability
	for _, a := range sheet.AbilityScores {
		s.Assert().Equal(11, a.Score, a.Ability)
		s.Assert().Equal(0, a.Modifier, a.Ability)
	}
	s.Assert().Nil(sheet.Combat)
	s.Assert().Zero(sheet.MaxSkillRanks)
}

func (s *Dnd5eConverterTestSuite) TestConvertMapsSkills() {
	c := builders.NewCharacterBuilder().
		WithRace("Elf", "Wood").
		WithSkill("Tracking", 2).
		WithSkill("Hunting", 4).
		WithSkill("Lookout duty", 1).
		WithSkill("Basket weaving", 3).
		Build()

	sheet := s.converter.Convert(c)

	s.Require().Len(sheet.Skills, 2)
	s.Assert().Equal("Perception", sheet.Skills[0].Name)
	s.Assert().Equal("Survival", sheet.Skills[1].Name)
	s.Assert().Equal("Hunting", sheet.Skills[1].Source)
	s.Assert().True(sheet.Skills[1].Proficient)

	// two wisdom skills raise wisdom to 12
	s.Assert().Equal(12, sheet.Score(conversion.AbilityWisdom))
	s.Assert().Equal(12, sheet.Score(conversion.AbilityDexterity))
	s.Assert().Equal(1+2, sheet.Skills[1].Bonus)
	s.Assert().Equal(10+3, sheet.PassivePerception)
}

func (s *Dnd5eConverterTestSuite) TestConvertDropsUnrelatedSkills() {
	c := builders.NewCharacterBuilder().
		WithSkill("Nursing", 3).
		WithSkill("Weapon Forging", 3).
		WithSkill("Collaboration", 3).
		Build()

	sheet := s.converter.Convert(c)

	s.Assert().Empty(sheet.Skills)
	for _, a := range sheet.AbilityScores {
		s.Assert().Equal(10, a.Score, a.Ability)
	}
}

func (s *Dnd5eConverterTestSuite) TestConvertUsesIntegrationModifiers() {
	c := builders.NewCharacterBuilder().Build()
	c.DnDIntegration.AbilityModifiers = map[string]int{"strength": 4, "CHA": -10}
	c.DnDIntegration.BackgroundFeatures = []string{"Noble Patron"}

	sheet := s.converter.Convert(c)

	s.Assert().Equal(14, sheet.Score(conversion.AbilityStrength))
	s.Assert().Equal(2, sheet.Modifier(conversion.AbilityStrength))
	s.Assert().Equal(3, sheet.Score(conversion.AbilityCharisma))
	s.Assert().Equal(-4, sheet.Modifier(conversion.AbilityCharisma))
	s.Assert().Contains(sheet.SpecialAbilities, "Noble Patron")
}

func (s *Dnd5eConverterTestSuite) TestConvertDoesNotMutateSource() {
	c := testutils.CreateMilitaryCharacter()
	before := c.Clone()

	_ = s.converter.Convert(c)
	_ = s.converter.SuggestClasses(c)
	_ = s.converter.Validate(c)

	s.Assert().Equal(before, c)
}

func (s *Dnd5eConverterTestSuite) TestSuggestClasses() {
	c := testutils.CreateMilitaryCharacter()

	classes := s.converter.SuggestClasses(c)

	s.Require().Len(classes, 12)
	s.Assert().Equal("Fighter", classes[0].Name)
	s.Assert().GreaterOrEqual(classes[0].Suitability, 70)
	s.Assert().Equal(10, classes[0].HitDie)
	s.Assert().NotEmpty(classes[0].Reasons)
	for i := 1; i < len(classes); i++ {
		s.Assert().LessOrEqual(classes[i].Suitability, classes[i-1].Suitability)
	}
}

func (s *Dnd5eConverterTestSuite) TestSuggestClassesScholar() {
	classes := s.converter.SuggestClasses(testutils.CreateScholarCharacter())

	s.Require().NotEmpty(classes)
	s.Assert().Equal("Wizard", classes[0].Name)
}

func (s *Dnd5eConverterTestSuite) TestSuggestBackgrounds() {
	bs, ok := s.converter.(conversion.BackgroundSuggester)
	s.Require().True(ok)

	backgrounds := bs.SuggestBackgrounds(testutils.CreateMilitaryCharacter())

	s.Require().NotEmpty(backgrounds)
	s.Assert().Equal("Soldier", backgrounds[0].Name)
	s.Assert().NotEmpty(backgrounds[0].SkillProficiencies)
	s.Assert().NotEmpty(backgrounds[0].Feature)
}

func (s *Dnd5eConverterTestSuite) TestSuggestionsDoNotShareCatalogSlices() {
	c := testutils.CreateMilitaryCharacter()
	bs, ok := s.converter.(conversion.BackgroundSuggester)
	s.Require().True(ok)

	classes := s.converter.SuggestClasses(c)
	s.Require().NotEmpty(classes[0].PrimaryAbilities)
	wantAbilities := append([]string(nil), classes[0].PrimaryAbilities...)
	classes[0].PrimaryAbilities[0] = "luck"

	backgrounds := bs.SuggestBackgrounds(c)
	s.Require().NotEmpty(backgrounds[0].SkillProficiencies)
	wantSkills := append([]string(nil), backgrounds[0].SkillProficiencies...)
	backgrounds[0].SkillProficiencies[0] = "Juggling"

	s.Assert().Equal(wantAbilities, s.converter.SuggestClasses(c)[0].PrimaryAbilities)
	s.Assert().Equal(wantSkills, bs.SuggestBackgrounds(c)[0].SkillProficiencies)
}

func (s *Dnd5eConverterTestSuite) TestValidate() {
	s.Run("valid military character", func() {
		report := s.converter.Validate(testutils.CreateMilitaryCharacter())

		s.Assert().True(report.IsValid)
		s.Assert().Empty(report.Errors)
		s.Require().NotNil(report.LevelAppropriate)
		s.Assert().True(*report.LevelAppropriate)
	})

	s.Run("missing name", func() {
		c := builders.NewCharacterBuilder().WithName("  ").Build()

		report := s.converter.Validate(c)

		s.Assert().False(report.IsValid)
		s.Assert().Contains(report.Errors, "Character name is required")
		s.Assert().Contains(report.Warnings, "Character has no skills")
	})

	s.Run("level out of range", func() {
		c := builders.NewCharacterBuilder().WithLevel(21).Build()

		report := s.converter.Validate(c)

		s.Assert().False(report.IsValid)
		s.Assert().Contains(report.Errors, "Level must be between 1 and 20")
	})

	s.Run("level too high for background", func() {
		c := builders.NewCharacterBuilder().WithLevel(9).Build()

		report := s.converter.Validate(c)

		s.Require().NotNil(report.LevelAppropriate)
		s.Assert().False(*report.LevelAppropriate)
		s.Assert().Contains(report.Warnings, "Level 9 seems high for the character's background")
	})

	s.Run("very young", func() {
		c := builders.NewCharacterBuilder().WithAge(8).WithSkill("Climbing", 1).Build()

		report := s.converter.Validate(c)

		s.Assert().True(report.IsValid)
		s.Assert().Contains(report.Warnings, "Character is very young (8) for an adventurer")
	})
}

func (s *Dnd5eConverterTestSuite) TestGenerateUnifiedStats() {
	sg, ok := s.converter.(conversion.StatsGenerator)
	s.Require().True(ok)

	c := testutils.CreateMilitaryCharacter()
	c.Skills = append(c.Skills, character.Skill{Name: "Climbing", Rank: 2})

	stats := sg.GenerateUnifiedStats(c)

	s.Assert().Equal(2, stats.ProficiencyBonus)
	s.Assert().Len(stats.AbilityScores, 6)
	s.Assert().Len(stats.SkillBonuses, 18)
	// strength 12 from human +1 and one athletics skill
	s.Assert().Equal(12, stats.AbilityScores[conversion.AbilityStrength])
	s.Assert().Equal(1+2, stats.SavingThrows[conversion.AbilityStrength])
	s.Assert().Equal(1+2, stats.SkillBonuses["Athletics"])
	s.Assert().Equal(0, stats.SkillBonuses["Arcana"])
}

func (s *Dnd5eConverterTestSuite) TestRenderText() {
	c := testutils.CreateMilitaryCharacter()

	text := s.converter.RenderText(s.converter.Convert(c))

	s.Assert().Regexp(`^=== D&D 5th Edition Character Sheet ===\n`, text)
	s.Assert().Contains(text, "Name: "+testutils.TestCharacterName)
	s.Assert().Contains(text, "Race: Human")
	s.Assert().Contains(text, "Suggested Class: Fighter")
	s.Assert().Contains(text, "Proficiency Bonus: +2")
}
