package conversion

import (
	"strings"

	"github.com/KirkDiggler/pancasting/internal/services/suggestion"
)

// Ability keys
const (
	AbilityStrength     = "str"
	AbilityDexterity    = "dex"
	AbilityConstitution = "con"
	AbilityIntelligence = "int"
	AbilityWisdom       = "wis"
	AbilityCharisma     = "cha"
)

// Abilities lists the ability keys in sheet order
var Abilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[string]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

const (
	baseAbilityScore     = 10
	minAbilityScore      = 3
	maxSkillAbilityBonus = 4
)

// AbilityScore is one row of the ability block
type AbilityScore struct {
	Ability  string `json:"ability"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Modifier int    `json:"modifier"`
}

// SheetSkill is a character skill mapped onto the edition vocabulary
type SheetSkill struct {
	Name       string `json:"name"`
	Ability    string `json:"ability"`
	Ranks      int    `json:"ranks,omitempty"`
	Proficient bool   `json:"proficient,omitempty"`
	Bonus      int    `json:"bonus"`
	Source     string `json:"source"`
}

// Personality is the character's personality in sheet terms
type Personality struct {
	Traits []string `json:"traits"`
	Ideals []string `json:"ideals"`
	Bonds  []string `json:"bonds"`
	Flaws  []string `json:"flaws"`
}

// Background is a 5e background
type Background struct {
	Name               string   `json:"name"`
	Feature            string   `json:"feature"`
	SkillProficiencies []string `json:"skillProficiencies"`
}

// Combat holds 3.5 base attack and save figures
type Combat struct {
	Class           string `json:"class,omitempty"`
	BaseAttackBonus int    `json:"baseAttackBonus"`
	Fortitude       int    `json:"fortitude"`
	Reflex          int    `json:"reflex"`
	Will            int    `json:"will"`
}

// Sheet is an edition-specific character sheet. Fields only one edition
// uses are left empty by the other.
type Sheet struct {
	Edition        Edition `json:"edition"`
	Name           string  `json:"name"`
	Race           string  `json:"race"`
	Subrace        string  `json:"subrace,omitempty"`
	Culture        string  `json:"culture,omitempty"`
	SocialStatus   string  `json:"socialStatus,omitempty"`
	Age            int     `json:"age,omitempty"`
	Level          int     `json:"level"`
	Alignment      string  `json:"alignment,omitempty"`
	SuggestedClass string  `json:"suggestedClass,omitempty"`

	AbilityScores    []AbilityScore `json:"abilityScores"`
	Skills           []SheetSkill   `json:"skills"`
	RacialTraits     []string       `json:"racialTraits"`
	Languages        []string       `json:"languages"`
	Equipment        []string       `json:"equipment"`
	SpecialAbilities []string       `json:"specialAbilities"`
	Occupations      []string       `json:"occupations"`
	History          []string       `json:"history"`
	Personality      Personality    `json:"personality"`

	// 5e
	ProficiencyBonus  int         `json:"proficiencyBonus,omitempty"`
	PassivePerception int         `json:"passivePerception,omitempty"`
	Background        *Background `json:"background,omitempty"`

	// 3.5
	MaxSkillRanks int     `json:"maxSkillRanks,omitempty"`
	Combat        *Combat `json:"combat,omitempty"`
}

// Modifier returns the modifier of ability, or 0 when absent
func (s *Sheet) Modifier(ability string) int {
	for _, a := range s.AbilityScores {
		if a.Ability == ability {
			return a.Modifier
		}
	}
	return 0
}

// Score returns the score of ability, or 0 when absent
func (s *Sheet) Score(ability string) int {
	for _, a := range s.AbilityScores {
		if a.Ability == ability {
			return a.Score
		}
	}
	return 0
}

// ClassSuggestion is a ranked class fit
type ClassSuggestion struct {
	suggestion.Result
	HitDie           int      `json:"hitDie"`
	PrimaryAbilities []string `json:"primaryAbilities"`
}

// BackgroundSuggestion is a ranked background fit
type BackgroundSuggestion struct {
	suggestion.Result
	SkillProficiencies []string `json:"skillProficiencies"`
	Feature            string   `json:"feature"`
}

// ValidationReport lists problems converting a character. Warnings do not
// make it invalid.
type ValidationReport struct {
	Edition  Edition  `json:"edition"`
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`

	// LevelAppropriate is only reported by 5e
	LevelAppropriate *bool `json:"levelAppropriate,omitempty"`
}

// UnifiedStats is a flat 5e stat block
type UnifiedStats struct {
	AbilityScores     map[string]int `json:"abilityScores"`
	AbilityModifiers  map[string]int `json:"abilityModifiers"`
	ProficiencyBonus  int            `json:"proficiencyBonus"`
	SavingThrows      map[string]int `json:"savingThrows"`
	SkillBonuses      map[string]int `json:"skillBonuses"`
	PassivePerception int            `json:"passivePerception"`
}

// AbilityModifier is floor((score-10)/2)
func AbilityModifier(score int) int {
	return floorDiv(score-10, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// normalizeAbility accepts "str", "STR", "Strength" and the like
func normalizeAbility(key string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if len(k) < 3 {
		return "", false
	}
	k = k[:3]
	_, ok := abilityNames[k]
	return k, ok
}
