package conversion

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
)

// deriveAbilities starts every ability at 10, then applies +1 per mapped
// skill governed by it (at most +4), the character's recorded ability
// modifiers and the racial adjustments, clamped to [3, maxScore].
func deriveAbilities(c *character.Character, mapped []mappedSkill, racial map[string]int, maxScore int) []AbilityScore {
	scores := make(map[string]int, len(Abilities))
	for _, a := range Abilities {
		scores[a] = baseAbilityScore
	}

	fromSkills := make(map[string]int, len(Abilities))
	for _, m := range mapped {
		if fromSkills[m.def.Ability] < maxSkillAbilityBonus {
			fromSkills[m.def.Ability]++
		}
	}
	for a, bonus := range fromSkills {
		scores[a] += bonus
	}

	for key, v := range c.DnDIntegration.AbilityModifiers {
		if a, ok := normalizeAbility(key); ok {
			scores[a] += v
		}
	}
	for a, v := range racial {
		scores[a] += v
	}

	out := make([]AbilityScore, len(Abilities))
	for i, a := range Abilities {
		score := min(max(scores[a], minAbilityScore), maxScore)
		out[i] = AbilityScore{
			Ability:  a,
			Name:     abilityNames[a],
			Score:    score,
			Modifier: AbilityModifier(score),
		}
	}
	return out
}

// baseSheet fills the edition-independent parts of a sheet
func baseSheet(edition Edition, c *character.Character) *Sheet {
	s := &Sheet{
		Edition:          edition,
		Name:             c.Name,
		Race:             c.Race.Name,
		Subrace:          c.Race.Subrace,
		Culture:          c.Culture.Name,
		SocialStatus:     c.SocialStatus.Name,
		Age:              c.Age,
		Level:            c.EffectiveLevel(),
		Alignment:        c.Alignment,
		RacialTraits:     []string{},
		Languages:        append([]string{}, c.DnDIntegration.Languages...),
		Equipment:        append([]string{}, c.DnDIntegration.Equipment...),
		SpecialAbilities: append([]string{}, c.DnDIntegration.SpecialAbilities...),
		Occupations:      occupationLines(c),
		History:          historyLines(c),
		Personality:      personality(c),
	}
	for _, item := range c.SpecialItems {
		s.Equipment = append(s.Equipment, item.Name)
	}
	return s
}

func occupationLines(c *character.Character) []string {
	out := make([]string, 0, len(c.Occupations)+len(c.Apprenticeships))
	for _, o := range c.Occupations {
		line := o.Name
		if o.Years > 0 {
			line = fmt.Sprintf("%s (%d years)", o.Name, o.Years)
		}
		out = append(out, line)
	}
	for _, a := range c.Apprenticeships {
		out = append(out, fmt.Sprintf("Apprentice %s", a.Trade))
	}
	return out
}

func historyLines(c *character.Character) []string {
	out := []string{}
	for _, category := range []character.EventCategory{
		character.EventCategoryYouth,
		character.EventCategoryAdulthood,
		character.EventCategoryMiscellaneous,
	} {
		for _, e := range c.Events(category) {
			if e.Result != "" {
				out = append(out, e.Result)
			}
		}
	}
	return out
}

// personality maps traits, values and relationships onto trait, ideal,
// bond and flaw text
func personality(c *character.Character) Personality {
	p := Personality{
		Traits: []string{},
		Ideals: []string{},
		Bonds:  []string{},
		Flaws:  []string{},
	}

	for _, t := range c.PersonalityTraits.Lightside {
		p.Traits = append(p.Traits, t.Name)
	}
	for _, t := range c.PersonalityTraits.Neutral {
		p.Traits = append(p.Traits, t.Name)
	}
	for _, t := range c.PersonalityTraits.Exotic {
		p.Traits = append(p.Traits, t.Name)
	}
	p.Traits = append(p.Traits, c.DnDIntegration.Traits...)

	for _, v := range c.Values {
		p.Ideals = append(p.Ideals, v.Name)
	}

	if c.Family.Head != "" {
		p.Bonds = append(p.Bonds, fmt.Sprintf("Family: %s", c.Family.Head))
	}
	for _, r := range c.Relationships {
		p.Bonds = append(p.Bonds, bond(r.Name, r.Type))
	}
	for _, n := range c.Companions {
		p.Bonds = append(p.Bonds, bond(n.Name, "companion"))
	}
	for _, n := range c.Rivals {
		p.Bonds = append(p.Bonds, bond(n.Name, "rival"))
	}

	for _, t := range c.PersonalityTraits.Darkside {
		p.Flaws = append(p.Flaws, t.Name)
	}
	p.Flaws = append(p.Flaws, c.DnDIntegration.Flaws...)
	return p
}

func bond(name, kind string) string {
	if kind == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.ToLower(kind))
}

// commonValidation adds the checks shared by both editions
func commonValidation(c *character.Character, r *ValidationReport) {
	if strings.TrimSpace(c.Name) == "" {
		r.Errors = append(r.Errors, "Character name is required")
	}
	if c.Age > 0 && c.Age < minAdventuringAge {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Character is very young (%d) for an adventurer", c.Age))
	}
	if len(c.Skills) == 0 {
		r.Warnings = append(r.Warnings, "Character has no skills")
	}
}

const minAdventuringAge = 12

func newReport(edition Edition) *ValidationReport {
	return &ValidationReport{Edition: edition, Errors: []string{}, Warnings: []string{}}
}
