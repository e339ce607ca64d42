package store

import (
	"fmt"
	"strings"
)

const errNoCharacterLoaded = "No character loaded"

// ValidationResult is the outcome of ValidateCharacter. Warnings never
// make a character invalid.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateCharacter checks the current character
func (s *Store) ValidateCharacter() *ValidationResult {
	result := &ValidationResult{Errors: []string{}, Warnings: []string{}}

	c := s.current
	if c == nil {
		result.Errors = append(result.Errors, errNoCharacterLoaded)
		return result
	}

	if strings.TrimSpace(c.Name) == "" {
		result.Errors = append(result.Errors, "Character name is required")
	}
	if c.Age < 0 || c.Age > 200 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Character age %d seems unusual", c.Age))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// TotalEvents counts youth, adulthood and miscellaneous events
func (s *Store) TotalEvents() int {
	if s.current == nil {
		return 0
	}
	c := s.current
	return len(c.YouthEvents) + len(c.AdulthoodEvents) + len(c.MiscellaneousEvents)
}

// TotalSkills counts skills
func (s *Store) TotalSkills() int {
	if s.current == nil {
		return 0
	}
	return len(s.current.Skills)
}

// TotalOccupations counts occupations
func (s *Store) TotalOccupations() int {
	if s.current == nil {
		return 0
	}
	return len(s.current.Occupations)
}

// Summary is a one-line description of the current character
func (s *Store) Summary() string {
	c := s.current
	if c == nil {
		return errNoCharacterLoaded
	}

	name := c.Name
	if name == "" {
		name = "Unnamed"
	}
	race := c.Race.Name
	if race == "" {
		race = "unknown race"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s", name, race)
	if c.Culture.Name != "" {
		fmt.Fprintf(&b, " of %s culture", c.Culture.Name)
	}
	if c.Age > 0 {
		fmt.Fprintf(&b, ", age %d", c.Age)
	}
	fmt.Fprintf(&b, " (%d events, %d occupations, %d skills)",
		s.TotalEvents(), s.TotalOccupations(), s.TotalSkills())
	return b.String()
}
