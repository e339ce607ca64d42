// Package suggestion scores how well a character fits a class or
// background archetype. Scores depend only on the character's occupations,
// skills and personality traits, so they are deterministic.
package suggestion

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
)

// Scoring weights and caps. The total is clamped to MaxScore.
const (
	OccupationPoints  = 20
	OccupationCap     = 60
	SkillPoints       = 10
	MaxSkillRankBonus = 5
	SkillCap          = 30
	TraitPoints       = 5
	TraitCap          = 15
	MaxScore          = 100
)

// Potential is a coarse label for a score
type Potential string

// Potential labels
const (
	PotentialExcellent Potential = "Excellent"
	PotentialGood      Potential = "Good"
	PotentialFair      Potential = "Fair"
	PotentialPoor      Potential = "Poor"
)

// PotentialFor labels score
func PotentialFor(score int) Potential {
	switch {
	case score >= 80:
		return PotentialExcellent
	case score >= 60:
		return PotentialGood
	case score >= 40:
		return PotentialFair
	default:
		return PotentialPoor
	}
}

// Rubric lists the lowercase keywords that make a character fit an
// archetype. A keyword matches when it appears anywhere in the
// occupation name or type, skill name or trait name.
type Rubric struct {
	Name        string
	Occupations []string
	Skills      []string
	Traits      []string
}

// Result is the score of one archetype
type Result struct {
	Name        string    `json:"name"`
	Suitability int       `json:"suitability"`
	Potential   Potential `json:"potential"`
	Reasons     []string  `json:"reasons"`
}

// Score rates c against rubric
func Score(c *character.Character, rubric Rubric) Result {
	reasons := []string{}

	occupation := 0
	for _, o := range c.Occupations {
		if matches(rubric.Occupations, o.Name, o.Type) {
			occupation += OccupationPoints
			reasons = append(reasons, fmt.Sprintf("Occupation: %s", o.Name))
		}
	}

	skill := 0
	for _, s := range c.Skills {
		if matches(rubric.Skills, s.Name) {
			skill += SkillPoints + min(max(s.Rank, 0), MaxSkillRankBonus)
			reasons = append(reasons, fmt.Sprintf("Skill: %s (rank %d)", s.Name, s.Rank))
		}
	}

	trait := 0
	for _, t := range c.AllTraits() {
		if matches(rubric.Traits, t.Name) {
			trait += TraitPoints
			reasons = append(reasons, fmt.Sprintf("Trait: %s", t.Name))
		}
	}

	total := min(occupation, OccupationCap) + min(skill, SkillCap) + min(trait, TraitCap)
	total = min(total, MaxScore)

	return Result{
		Name:        rubric.Name,
		Suitability: total,
		Potential:   PotentialFor(total),
		Reasons:     reasons,
	}
}

// ScoreAll rates c against every rubric and ranks the results
func ScoreAll(c *character.Character, rubrics []Rubric) []Result {
	results := make([]Result, len(rubrics))
	for i, r := range rubrics {
		results[i] = Score(c, r)
	}
	Rank(results)
	return results
}

// Rank sorts results by suitability, highest first. Ties keep their input
// order.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Suitability > results[j].Suitability
	})
}

func matches(keywords []string, fields ...string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		for _, k := range keywords {
			if HasKeyword(field, k) {
				return true
			}
		}
	}
	return false
}

// HasKeyword reports whether keyword occurs in text at the start of a word,
// ignoring case. Any rune that is not a letter or digit separates words, so
// "lock" matches "Lock picking" and "Open-lock" but not "Shield Block".
func HasKeyword(text, keyword string) bool {
	t := strings.ToLower(text)
	k := strings.ToLower(keyword)
	if k == "" {
		return false
	}

	for i := 0; i <= len(t)-len(k); {
		j := strings.Index(t[i:], k)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(t[:at])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		i = at + 1
	}
	return false
}
