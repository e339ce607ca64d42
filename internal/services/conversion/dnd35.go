package conversion

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/services/suggestion"
)

const (
	maxAbilityScore35 = 25
	banner35          = "=== D&D 3.5 Edition Character Sheet ==="

	saveFortitude = "fortitude"
	saveReflex    = "reflex"
	saveWill      = "will"
)

type dnd35Converter struct{}

// New35Converter returns the 3.5 edition converter
func New35Converter() Converter {
	return &dnd35Converter{}
}

var _ Converter = (*dnd35Converter)(nil)

// MaxSkillRanks is the class-skill rank cap, level+3
func MaxSkillRanks(level int) int {
	return max(level, 1) + 3
}

// baseAttackBonus is level, 3/4 level or 1/2 level by progression
func baseAttackBonus(p progression, level int) int {
	switch p {
	case progressionFull:
		return level
	case progressionMedium:
		return level * 3 / 4
	default:
		return level / 2
	}
}

// baseSave is 2+level/2 for good saves and level/3 otherwise
func baseSave(good bool, level int) int {
	if good {
		return 2 + level/2
	}
	return level / 3
}

func (d *dnd35Converter) Edition() Edition {
	return Edition35
}

func (d *dnd35Converter) Convert(c *character.Character) *Sheet {
	mapped := mapSkills(skills35, c.Skills)
	race, known := lookupRace(races35, c.Race.Name)

	sheet := baseSheet(Edition35, c)
	sheet.AbilityScores = deriveAbilities(c, mapped, race.Abilities, maxAbilityScore35)
	if known {
		sheet.RacialTraits = slices.Clone(race.Traits)
	}
	sheet.MaxSkillRanks = MaxSkillRanks(sheet.Level)

	sheet.Skills = make([]SheetSkill, 0, len(mapped))
	for _, m := range mapped {
		ranks := min(max(m.rank, 0), sheet.MaxSkillRanks)
		sheet.Skills = append(sheet.Skills, SheetSkill{
			Name:    m.def.Name,
			Ability: m.def.Ability,
			Ranks:   ranks,
			Bonus:   ranks + sheet.Modifier(m.def.Ability) + c.DnDIntegration.SkillBonuses[m.def.Name],
			Source:  m.source,
		})
	}

	sheet.Combat = d.combat(c, sheet)
	if sheet.Combat.Class != "" {
		sheet.SuggestedClass = sheet.Combat.Class
	}
	sheet.SpecialAbilities = append(sheet.SpecialAbilities, c.DnDIntegration.BackgroundFeatures...)

	return sheet
}

// combat derives base attack and saves from the best-fitting class. With
// no fitting class the poor progressions apply.
func (d *dnd35Converter) combat(c *character.Character, sheet *Sheet) *Combat {
	level := sheet.Level
	def := classDef{BaseAttack: progressionPoor}

	if top := d.SuggestClasses(c)[0]; top.Suitability > 0 {
		for _, cd := range classes35 {
			if cd.Rubric.Name == top.Name {
				def = cd
			}
		}
	}

	good := func(save string) bool { return slices.Contains(def.GoodSaves, save) }
	return &Combat{
		Class:           def.Rubric.Name,
		BaseAttackBonus: baseAttackBonus(def.BaseAttack, level),
		Fortitude:       baseSave(good(saveFortitude), level) + sheet.Modifier(AbilityConstitution),
		Reflex:          baseSave(good(saveReflex), level) + sheet.Modifier(AbilityDexterity),
		Will:            baseSave(good(saveWill), level) + sheet.Modifier(AbilityWisdom),
	}
}

func (d *dnd35Converter) SuggestClasses(c *character.Character) []ClassSuggestion {
	return suggestFrom(classes35, suggestion.ScoreAll(c, rubrics(classes35)))
}

// Validate adds a warning for every skill whose ranks exceed level+3
func (d *dnd35Converter) Validate(c *character.Character) *ValidationReport {
	r := newReport(Edition35)
	commonValidation(c, r)

	limit := MaxSkillRanks(c.EffectiveLevel())
	for _, s := range c.Skills {
		if s.Rank > limit {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("Skill %s has %d ranks; the maximum at this level is %d", s.Name, s.Rank, limit))
		}
	}

	r.IsValid = len(r.Errors) == 0
	return r
}

func (d *dnd35Converter) RenderText(sheet *Sheet) string {
	w := newTextWriter(banner35, sheet)
	w.field("max skill ranks", fmt.Sprintf("%d", sheet.MaxSkillRanks))
	if sheet.Combat != nil {
		w.field("base attack bonus", fmt.Sprintf("%+d", sheet.Combat.BaseAttackBonus))
		w.field("saves", fmt.Sprintf("Fort %+d, Ref %+d, Will %+d",
			sheet.Combat.Fortitude, sheet.Combat.Reflex, sheet.Combat.Will))
	}
	w.abilities()
	w.skills(func(s SheetSkill) string {
		return fmt.Sprintf("%-18s (%s) %d ranks, %+d", s.Name, s.Ability, s.Ranks, s.Bonus)
	})
	w.personality()
	w.common()
	return w.String()
}
