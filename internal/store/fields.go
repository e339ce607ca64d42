package store

import (
	"dario.cat/mergo"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
)

// UpdateCharacter merges the non-zero fields of patch into the current
// character. The id never changes. Heritage modifiers present in the patch
// are copied into the active modifiers.
func (s *Store) UpdateCharacter(patch character.Character) error {
	return s.mutateE(func(c *character.Character) error {
		id := c.ID
		if err := mergo.Merge(c, patch, mergo.WithOverride); err != nil {
			return errors.Wrap(err, "failed to merge character fields")
		}
		c.ID = id

		if patch.Culture != (character.Culture{}) {
			syncCulture(c)
		}
		if patch.SocialStatus != (character.SocialStatus{}) {
			syncSocialStatus(c)
		}
		if patch.BirthCircumstances != (character.BirthCircumstances{}) {
			syncBirth(c)
		}
		c.Normalize()
		return nil
	})
}

// UpdateRace replaces the race
func (s *Store) UpdateRace(race character.Race) {
	s.mutate(func(c *character.Character) {
		c.Race = race
	})
}

// UpdateCulture replaces the culture and syncs cuMod
func (s *Store) UpdateCulture(culture character.Culture) {
	s.mutate(func(c *character.Character) {
		c.Culture = culture
		syncCulture(c)
	})
}

// UpdateSocialStatus replaces the social status and syncs solMod and tiMod
func (s *Store) UpdateSocialStatus(status character.SocialStatus) {
	s.mutate(func(c *character.Character) {
		c.SocialStatus = status
		syncSocialStatus(c)
	})
}

// UpdateBirthCircumstances replaces the birth circumstances and syncs biMod
// and legitMod
func (s *Store) UpdateBirthCircumstances(birth character.BirthCircumstances) {
	s.mutate(func(c *character.Character) {
		c.BirthCircumstances = birth
		syncBirth(c)
	})
}

// UpdateFamily replaces the family
func (s *Store) UpdateFamily(family character.Family) {
	s.mutate(func(c *character.Character) {
		c.Family = family
	})
}

// UpdatePersonality replaces all four trait buckets
func (s *Store) UpdatePersonality(traits character.PersonalityTraits) {
	s.mutate(func(c *character.Character) {
		c.PersonalityTraits = traits
		c.Normalize()
	})
}

// SetAlignment sets the alignment
func (s *Store) SetAlignment(alignment string) {
	s.mutate(func(c *character.Character) {
		c.Alignment = alignment
	})
}

// AddValue appends a value
func (s *Store) AddValue(v character.Value) {
	s.mutate(func(c *character.Character) {
		c.Values = append(c.Values, v)
	})
}

// RemoveValue removes the value at index
func (s *Store) RemoveValue(index int) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Values, ok = removeAt(c.Values, index)
		return ok
	})
}

// AddPersonalityTrait appends trait to bucket. Unknown buckets are ignored.
func (s *Store) AddPersonalityTrait(bucket character.TraitBucket, trait character.Trait) {
	s.mutate(func(c *character.Character) {
		if b := c.PersonalityTraits.Bucket(bucket); b != nil {
			*b = append(*b, trait)
		}
	})
}

// RemovePersonalityTrait removes the trait at index from bucket
func (s *Store) RemovePersonalityTrait(bucket character.TraitBucket, index int) {
	s.mutateChanged(func(c *character.Character) bool {
		b := c.PersonalityTraits.Bucket(bucket)
		if b == nil {
			return false
		}
		var ok bool
		*b, ok = removeAt(*b, index)
		return ok
	})
}

// UpdateDnDIntegration merges the non-zero fields of patch
func (s *Store) UpdateDnDIntegration(patch character.DnDIntegration) error {
	return s.mutateE(func(c *character.Character) error {
		if err := mergo.Merge(&c.DnDIntegration, patch, mergo.WithOverride); err != nil {
			return errors.Wrap(err, "failed to merge rule-system fields")
		}
		return nil
	})
}

func syncCulture(c *character.Character) {
	c.ActiveModifiers[character.ModifierCulture] = c.Culture.CuMod
}

func syncSocialStatus(c *character.Character) {
	c.ActiveModifiers[character.ModifierSocialStatus] = c.SocialStatus.SolMod
	c.ActiveModifiers[character.ModifierTitle] = c.SocialStatus.TiMod
}

func syncBirth(c *character.Character) {
	c.ActiveModifiers[character.ModifierBirth] = c.BirthCircumstances.BiMod
	c.ActiveModifiers[character.ModifierLegitimacy] = c.BirthCircumstances.LegitMod
}
