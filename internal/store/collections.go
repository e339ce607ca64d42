package store

import (
	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
)

// AddEvent appends e to the collection matching its category. A missing id
// or timestamp is filled in.
func (s *Store) AddEvent(e character.Event) error {
	if !e.Category.Valid() {
		return errors.InvalidArgumentf("unknown event category: %s", e.Category).
			WithMeta("category", string(e.Category))
	}
	if e.ID == "" {
		e.ID = s.idGen.Generate()
	}
	if e.Timestamp == 0 {
		e.Timestamp = s.now()
	}
	return s.mutateE(func(c *character.Character) error {
		c.SetEvents(e.Category, append(c.Events(e.Category), e))
		return nil
	})
}

// RemoveEvent removes event id from category
func (s *Store) RemoveEvent(category character.EventCategory, id string) {
	s.mutateChanged(func(c *character.Character) bool {
		events, ok := removeByID(c.Events(category), id)
		if ok {
			c.SetEvents(category, events)
		}
		return ok
	})
}

// UpdateEvent merges patch into event id. The event stays in its category.
func (s *Store) UpdateEvent(category character.EventCategory, id string, patch character.Event) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		events := c.Events(category)
		patch.Category = category
		ok, err := updateByID(events, id, patch)
		if err != nil {
			return false, errors.Wrapf(err, "failed to update event %s", id)
		}
		return ok, nil
	})
}

// AddOccupation appends an occupation
func (s *Store) AddOccupation(o character.Occupation) {
	if o.ID == "" {
		o.ID = s.idGen.Generate()
	}
	s.mutate(func(c *character.Character) {
		c.Occupations = append(c.Occupations, o)
	})
}

// RemoveOccupation removes occupation id
func (s *Store) RemoveOccupation(id string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Occupations, ok = removeByID(c.Occupations, id)
		return ok
	})
}

// UpdateOccupation merges patch into occupation id
func (s *Store) UpdateOccupation(id string, patch character.Occupation) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateByID(c.Occupations, id, patch)
		return ok, wrapUpdate(err, "occupation", id)
	})
}

// AddApprenticeship appends an apprenticeship
func (s *Store) AddApprenticeship(a character.Apprenticeship) {
	if a.ID == "" {
		a.ID = s.idGen.Generate()
	}
	s.mutate(func(c *character.Character) {
		c.Apprenticeships = append(c.Apprenticeships, a)
	})
}

// RemoveApprenticeship removes apprenticeship id
func (s *Store) RemoveApprenticeship(id string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Apprenticeships, ok = removeByID(c.Apprenticeships, id)
		return ok
	})
}

// UpdateApprenticeship merges patch into apprenticeship id
func (s *Store) UpdateApprenticeship(id string, patch character.Apprenticeship) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateByID(c.Apprenticeships, id, patch)
		return ok, wrapUpdate(err, "apprenticeship", id)
	})
}

// AddSkill appends a skill, or raises the rank of an existing skill with
// the same name. A lower rank never replaces a higher one.
func (s *Store) AddSkill(skill character.Skill) {
	s.mutate(func(c *character.Character) {
		i := c.FindSkill(skill.Name)
		if i < 0 {
			c.Skills = append(c.Skills, skill)
			return
		}
		if skill.Rank > c.Skills[i].Rank {
			c.Skills[i].Rank = skill.Rank
		}
	})
}

// RemoveSkill removes the skill called name
func (s *Store) RemoveSkill(name string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Skills, ok = removeAt(c.Skills, c.FindSkill(name))
		return ok
	})
}

// UpdateSkill merges patch into the skill called name. The name is kept.
func (s *Store) UpdateSkill(name string, patch character.Skill) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		patch.Name = ""
		ok, err := updateAt(c.Skills, c.FindSkill(name), patch)
		return ok, wrapUpdate(err, "skill", name)
	})
}

// AddHobby appends a hobby
func (s *Store) AddHobby(h character.Hobby) {
	s.mutate(func(c *character.Character) {
		c.Hobbies = append(c.Hobbies, h)
	})
}

// RemoveHobby removes the hobby at index
func (s *Store) RemoveHobby(index int) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Hobbies, ok = removeAt(c.Hobbies, index)
		return ok
	})
}

// UpdateHobby merges patch into the hobby at index
func (s *Store) UpdateHobby(index int, patch character.Hobby) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateAt(c.Hobbies, index, patch)
		return ok, wrapUpdate(err, "hobby", index)
	})
}

// AddNPC appends a general contact
func (s *Store) AddNPC(n character.NPC) {
	n = s.withNPCID(n)
	s.mutate(func(c *character.Character) {
		c.NPCs = append(c.NPCs, n)
	})
}

// RemoveNPC removes contact id
func (s *Store) RemoveNPC(id string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.NPCs, ok = removeByID(c.NPCs, id)
		return ok
	})
}

// UpdateNPC merges patch into contact id
func (s *Store) UpdateNPC(id string, patch character.NPC) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateByID(c.NPCs, id, patch)
		return ok, wrapUpdate(err, "npc", id)
	})
}

// AddCompanion appends a companion
func (s *Store) AddCompanion(n character.NPC) {
	n = s.withNPCID(n)
	s.mutate(func(c *character.Character) {
		c.Companions = append(c.Companions, n)
	})
}

// RemoveCompanion removes companion id
func (s *Store) RemoveCompanion(id string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Companions, ok = removeByID(c.Companions, id)
		return ok
	})
}

// UpdateCompanion merges patch into companion id
func (s *Store) UpdateCompanion(id string, patch character.NPC) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateByID(c.Companions, id, patch)
		return ok, wrapUpdate(err, "companion", id)
	})
}

// AddRival appends a rival
func (s *Store) AddRival(n character.NPC) {
	n = s.withNPCID(n)
	s.mutate(func(c *character.Character) {
		c.Rivals = append(c.Rivals, n)
	})
}

// RemoveRival removes rival id
func (s *Store) RemoveRival(id string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Rivals, ok = removeByID(c.Rivals, id)
		return ok
	})
}

// UpdateRival merges patch into rival id
func (s *Store) UpdateRival(id string, patch character.NPC) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateByID(c.Rivals, id, patch)
		return ok, wrapUpdate(err, "rival", id)
	})
}

// AddRelationship appends a relationship
func (s *Store) AddRelationship(r character.Relationship) {
	if r.ID == "" {
		r.ID = s.idGen.Generate()
	}
	s.mutate(func(c *character.Character) {
		c.Relationships = append(c.Relationships, r)
	})
}

// RemoveRelationship removes relationship id
func (s *Store) RemoveRelationship(id string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Relationships, ok = removeByID(c.Relationships, id)
		return ok
	})
}

// UpdateRelationship merges patch into relationship id
func (s *Store) UpdateRelationship(id string, patch character.Relationship) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateByID(c.Relationships, id, patch)
		return ok, wrapUpdate(err, "relationship", id)
	})
}

// AddGift appends a gift
func (s *Store) AddGift(g character.Gift) {
	s.mutate(func(c *character.Character) {
		c.Gifts = append(c.Gifts, g)
	})
}

// RemoveGift removes the gift at index
func (s *Store) RemoveGift(index int) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Gifts, ok = removeAt(c.Gifts, index)
		return ok
	})
}

// AddLegacy appends a legacy
func (s *Store) AddLegacy(l character.Legacy) {
	s.mutate(func(c *character.Character) {
		c.Legacies = append(c.Legacies, l)
	})
}

// RemoveLegacy removes the legacy at index
func (s *Store) RemoveLegacy(index int) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.Legacies, ok = removeAt(c.Legacies, index)
		return ok
	})
}

// AddSpecialItem appends a special item
func (s *Store) AddSpecialItem(item character.SpecialItem) {
	if item.ID == "" {
		item.ID = s.idGen.Generate()
	}
	s.mutate(func(c *character.Character) {
		c.SpecialItems = append(c.SpecialItems, item)
	})
}

// RemoveSpecialItem removes special item id
func (s *Store) RemoveSpecialItem(id string) {
	s.mutateChanged(func(c *character.Character) bool {
		var ok bool
		c.SpecialItems, ok = removeByID(c.SpecialItems, id)
		return ok
	})
}

// UpdateSpecialItem merges patch into special item id
func (s *Store) UpdateSpecialItem(id string, patch character.SpecialItem) error {
	return s.mutateIf(func(c *character.Character) (bool, error) {
		ok, err := updateByID(c.SpecialItems, id, patch)
		return ok, wrapUpdate(err, "special item", id)
	})
}

// AddGenerationStep appends a record to the generation log. Id, step
// number and timestamp are filled in when missing.
func (s *Store) AddGenerationStep(step character.GenerationStep) {
	if step.ID == "" {
		step.ID = s.idGen.Generate()
	}
	if step.Timestamp == 0 {
		step.Timestamp = s.now()
	}
	s.mutate(func(c *character.Character) {
		if step.StepNumber == 0 {
			step.StepNumber = len(c.GenerationHistory) + 1
		}
		c.GenerationHistory = append(c.GenerationHistory, step)
	})
}

// UpdateGenerationStepNotes sets the notes of log record id. Notes are the
// only mutable part of a record.
func (s *Store) UpdateGenerationStepNotes(id, notes string) {
	s.mutateChanged(func(c *character.Character) bool {
		i := indexByID(c.GenerationHistory, id)
		if i < 0 {
			return false
		}
		c.GenerationHistory[i].Notes = notes
		return true
	})
}

func (s *Store) withNPCID(n character.NPC) character.NPC {
	if n.ID == "" {
		n.ID = s.idGen.Generate()
	}
	return n
}

func wrapUpdate(err error, kind string, key any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "failed to update %s %v", kind, key)
}
