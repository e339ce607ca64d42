package conversion

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/services/suggestion"
)

const (
	maxAbilityScore5e = 20
	maxLevel5e        = 20
	passiveBase       = 10
	banner5e          = "=== D&D 5th Edition Character Sheet ==="
)

type dnd5eConverter struct{}

// New5eConverter returns the 5th edition converter
func New5eConverter() Converter {
	return &dnd5eConverter{}
}

var (
	_ Converter           = (*dnd5eConverter)(nil)
	_ BackgroundSuggester = (*dnd5eConverter)(nil)
	_ StatsGenerator      = (*dnd5eConverter)(nil)
)

// ProficiencyBonus is floor((level-1)/4)+2. Levels below 1 count as 1.
func ProficiencyBonus(level int) int {
	return floorDiv(max(level, 1)-1, 4) + 2
}

func (d *dnd5eConverter) Edition() Edition {
	return Edition5e
}

func (d *dnd5eConverter) Convert(c *character.Character) *Sheet {
	mapped := mapSkills(skills5e, c.Skills)
	race, known := lookupRace(races5e, c.Race.Name)

	sheet := baseSheet(Edition5e, c)
	sheet.AbilityScores = deriveAbilities(c, mapped, race.Abilities, maxAbilityScore5e)
	if known {
		sheet.RacialTraits = slices.Clone(race.Traits)
	}
	sheet.ProficiencyBonus = ProficiencyBonus(sheet.Level)

	sheet.Skills = make([]SheetSkill, 0, len(mapped))
	for _, m := range mapped {
		sheet.Skills = append(sheet.Skills, SheetSkill{
			Name:       m.def.Name,
			Ability:    m.def.Ability,
			Proficient: true,
			Bonus:      d.skillBonus(c, sheet, m.def, true),
			Source:     m.source,
		})
	}
	sheet.PassivePerception = passiveBase + d.perception(c, sheet)

	if classes := d.SuggestClasses(c); classes[0].Suitability > 0 {
		sheet.SuggestedClass = classes[0].Name
	}
	if bgs := d.SuggestBackgrounds(c); bgs[0].Suitability > 0 {
		sheet.Background = &Background{
			Name:               bgs[0].Name,
			Feature:            bgs[0].Feature,
			SkillProficiencies: slices.Clone(bgs[0].SkillProficiencies),
		}
	}
	sheet.SpecialAbilities = append(sheet.SpecialAbilities, c.DnDIntegration.BackgroundFeatures...)

	return sheet
}

func (d *dnd5eConverter) SuggestClasses(c *character.Character) []ClassSuggestion {
	return suggestFrom(classes5e, suggestion.ScoreAll(c, rubrics(classes5e)))
}

func (d *dnd5eConverter) SuggestBackgrounds(c *character.Character) []BackgroundSuggestion {
	scored := make([]suggestion.Result, len(backgrounds5e))
	for i, bg := range backgrounds5e {
		scored[i] = suggestion.Score(c, bg.Rubric)
	}
	suggestion.Rank(scored)

	byName := make(map[string]backgroundDef, len(backgrounds5e))
	for _, bg := range backgrounds5e {
		byName[bg.Rubric.Name] = bg
	}

	out := make([]BackgroundSuggestion, len(scored))
	for i, r := range scored {
		bg := byName[r.Name]
		out[i] = BackgroundSuggestion{
			Result:             r,
			SkillProficiencies: slices.Clone(bg.SkillProficiencies),
			Feature:            bg.Feature,
		}
	}
	return out
}

// Validate adds a level range check and a level-appropriateness finding.
// A character is level-appropriate when its occupations plus adult and
// miscellaneous events reach one per proficiency tier above the first.
func (d *dnd5eConverter) Validate(c *character.Character) *ValidationReport {
	r := newReport(Edition5e)
	commonValidation(c, r)

	level := c.EffectiveLevel()
	if c.Level != nil && (*c.Level < 1 || *c.Level > maxLevel5e) {
		r.Errors = append(r.Errors, fmt.Sprintf("Level must be between 1 and %d", maxLevel5e))
	}

	experience := len(c.Occupations) + len(c.AdulthoodEvents) + len(c.MiscellaneousEvents)
	appropriate := experience >= ProficiencyBonus(level)-1
	r.LevelAppropriate = &appropriate
	if !appropriate {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Level %d seems high for the character's background", level))
	}

	r.IsValid = len(r.Errors) == 0
	return r
}

func (d *dnd5eConverter) GenerateUnifiedStats(c *character.Character) *UnifiedStats {
	sheet := d.Convert(c)
	stats := &UnifiedStats{
		AbilityScores:     make(map[string]int, len(Abilities)),
		AbilityModifiers:  make(map[string]int, len(Abilities)),
		ProficiencyBonus:  sheet.ProficiencyBonus,
		SavingThrows:      make(map[string]int, len(Abilities)),
		SkillBonuses:      make(map[string]int, len(skills5e)),
		PassivePerception: sheet.PassivePerception,
	}

	var saves []string
	if sheet.SuggestedClass != "" {
		for _, def := range classes5e {
			if def.Rubric.Name == sheet.SuggestedClass {
				saves = def.PrimaryAbilities
			}
		}
	}

	for _, a := range sheet.AbilityScores {
		stats.AbilityScores[a.Ability] = a.Score
		stats.AbilityModifiers[a.Ability] = a.Modifier
		stats.SavingThrows[a.Ability] = a.Modifier
		if slices.Contains(saves, a.Ability) {
			stats.SavingThrows[a.Ability] += sheet.ProficiencyBonus
		}
	}

	for _, def := range skills5e {
		stats.SkillBonuses[def.Name] = d.skillBonus(c, sheet, def, proficient(sheet, def.Name))
	}
	return stats
}

func (d *dnd5eConverter) RenderText(sheet *Sheet) string {
	w := newTextWriter(banner5e, sheet)
	w.field("proficiency bonus", fmt.Sprintf("%+d", sheet.ProficiencyBonus))
	w.field("passive perception", fmt.Sprintf("%d", sheet.PassivePerception))
	w.abilities()
	w.skills(func(s SheetSkill) string {
		return fmt.Sprintf("%-16s (%s) %+d", s.Name, s.Ability, s.Bonus)
	})
	if sheet.Background != nil {
		w.section("background")
		w.line(fmt.Sprintf("%s: %s", sheet.Background.Name, sheet.Background.Feature))
		w.list("skill proficiencies", sheet.Background.SkillProficiencies)
	}
	w.personality()
	w.common()
	return w.String()
}

// skillBonus is ability modifier, plus proficiency when proficient, plus
// any recorded rule-system skill bonus
func (d *dnd5eConverter) skillBonus(c *character.Character, sheet *Sheet, def skillDef, isProficient bool) int {
	bonus := sheet.Modifier(def.Ability) + c.DnDIntegration.SkillBonuses[def.Name]
	if isProficient {
		bonus += sheet.ProficiencyBonus
	}
	return bonus
}

func (d *dnd5eConverter) perception(c *character.Character, sheet *Sheet) int {
	for _, def := range skills5e {
		if def.Name == "Perception" {
			return d.skillBonus(c, sheet, def, proficient(sheet, def.Name))
		}
	}
	return sheet.Modifier(AbilityWisdom)
}

func proficient(sheet *Sheet, name string) bool {
	for _, s := range sheet.Skills {
		if s.Name == name {
			return s.Proficient
		}
	}
	return false
}
