// Package character defines the PanCasting character aggregate: heritage,
// life events, occupations, personality, contacts, possessions, modifiers
// and the generation log.
package character

import (
	"encoding/json"
	"fmt"
)

// Modifier keys. Every character carries all five.
const (
	ModifierCulture      = "cuMod"
	ModifierSocialStatus = "solMod"
	ModifierTitle        = "tiMod"
	ModifierBirth        = "biMod"
	ModifierLegitimacy   = "legitMod"
)

// CoreModifiers lists the modifier keys in display order
var CoreModifiers = []string{
	ModifierCulture,
	ModifierSocialStatus,
	ModifierTitle,
	ModifierBirth,
	ModifierLegitimacy,
}

// IsCoreModifier reports whether key is one of the five named modifiers
func IsCoreModifier(key string) bool {
	for _, k := range CoreModifiers {
		if k == key {
			return true
		}
	}
	return false
}

// Character is the root aggregate built up by a generation session.
// Timestamps are Unix milliseconds.
type Character struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Level        *int   `json:"level,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
	LastModified int64  `json:"lastModified"`

	Race               Race               `json:"race"`
	Culture            Culture            `json:"culture"`
	SocialStatus       SocialStatus       `json:"socialStatus"`
	BirthCircumstances BirthCircumstances `json:"birthCircumstances"`
	Family             Family             `json:"family"`

	YouthEvents         []Event `json:"youthEvents"`
	AdulthoodEvents     []Event `json:"adulthoodEvents"`
	MiscellaneousEvents []Event `json:"miscellaneousEvents"`

	Occupations     []Occupation     `json:"occupations"`
	Apprenticeships []Apprenticeship `json:"apprenticeships"`
	Hobbies         []Hobby          `json:"hobbies"`
	Skills          []Skill          `json:"skills"`

	Values            []Value           `json:"values"`
	Alignment         string            `json:"alignment"`
	PersonalityTraits PersonalityTraits `json:"personalityTraits"`

	NPCs          []NPC          `json:"npcs"`
	Companions    []NPC          `json:"companions"`
	Rivals        []NPC          `json:"rivals"`
	Relationships []Relationship `json:"relationships"`

	Gifts        []Gift        `json:"gifts"`
	Legacies     []Legacy      `json:"legacies"`
	SpecialItems []SpecialItem `json:"specialItems"`

	ActiveModifiers   map[string]int   `json:"activeModifiers"`
	GenerationHistory []GenerationStep `json:"generationHistory"`
	DnDIntegration    DnDIntegration   `json:"dndIntegration"`
}

// New returns the empty template character: every collection present and
// empty, heritage unknown, all modifiers zero.
func New(id, name string, now int64) *Character {
	c := &Character{
		ID:           id,
		Name:         name,
		CreatedAt:    now,
		LastModified: now,
	}
	c.Normalize()
	return c
}

// Normalize replaces nil collections with empty ones and fills in missing
// modifier keys. Decoding JSON written by older versions relies on it.
func (c *Character) Normalize() {
	if c.YouthEvents == nil {
		c.YouthEvents = []Event{}
	}
	if c.AdulthoodEvents == nil {
		c.AdulthoodEvents = []Event{}
	}
	if c.MiscellaneousEvents == nil {
		c.MiscellaneousEvents = []Event{}
	}
	if c.Occupations == nil {
		c.Occupations = []Occupation{}
	}
	if c.Apprenticeships == nil {
		c.Apprenticeships = []Apprenticeship{}
	}
	if c.Hobbies == nil {
		c.Hobbies = []Hobby{}
	}
	if c.Skills == nil {
		c.Skills = []Skill{}
	}
	if c.Values == nil {
		c.Values = []Value{}
	}
	c.PersonalityTraits.normalize()
	if c.NPCs == nil {
		c.NPCs = []NPC{}
	}
	if c.Companions == nil {
		c.Companions = []NPC{}
	}
	if c.Rivals == nil {
		c.Rivals = []NPC{}
	}
	if c.Relationships == nil {
		c.Relationships = []Relationship{}
	}
	if c.Gifts == nil {
		c.Gifts = []Gift{}
	}
	if c.Legacies == nil {
		c.Legacies = []Legacy{}
	}
	if c.SpecialItems == nil {
		c.SpecialItems = []SpecialItem{}
	}
	if c.GenerationHistory == nil {
		c.GenerationHistory = []GenerationStep{}
	}
	if c.ActiveModifiers == nil {
		c.ActiveModifiers = make(map[string]int, len(CoreModifiers))
	}
	for _, key := range CoreModifiers {
		if _, ok := c.ActiveModifiers[key]; !ok {
			c.ActiveModifiers[key] = 0
		}
	}
	c.DnDIntegration.normalize()
}

// Clone returns a fully independent copy. Mutating the copy never affects
// the original, which is what history snapshots depend on.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		// every field is a plain JSON-encodable value
		panic(fmt.Sprintf("character: marshal for clone: %v", err))
	}
	var out Character
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("character: unmarshal for clone: %v", err))
	}
	out.Normalize()
	return &out
}

// EffectiveLevel returns Level, or 1 when unset
func (c *Character) EffectiveLevel() int {
	if c.Level == nil || *c.Level < 1 {
		return 1
	}
	return *c.Level
}

// Events returns the event collection for category, or nil for an unknown
// category
func (c *Character) Events(category EventCategory) []Event {
	switch category {
	case EventCategoryYouth:
		return c.YouthEvents
	case EventCategoryAdulthood:
		return c.AdulthoodEvents
	case EventCategoryMiscellaneous:
		return c.MiscellaneousEvents
	default:
		return nil
	}
}

// SetEvents replaces the event collection for category
func (c *Character) SetEvents(category EventCategory, events []Event) {
	switch category {
	case EventCategoryYouth:
		c.YouthEvents = events
	case EventCategoryAdulthood:
		c.AdulthoodEvents = events
	case EventCategoryMiscellaneous:
		c.MiscellaneousEvents = events
	}
}

// AllTraits returns every personality trait across the four buckets
func (c *Character) AllTraits() []Trait {
	p := c.PersonalityTraits
	out := make([]Trait, 0, len(p.Lightside)+len(p.Neutral)+len(p.Darkside)+len(p.Exotic))
	out = append(out, p.Lightside...)
	out = append(out, p.Neutral...)
	out = append(out, p.Darkside...)
	out = append(out, p.Exotic...)
	return out
}

// FindSkill returns the index of the skill named name, or -1
func (c *Character) FindSkill(name string) int {
	for i, s := range c.Skills {
		if s.Name == name {
			return i
		}
	}
	return -1
}
