package conversion

import (
	"sort"
	"strings"
)

type raceDef struct {
	Traits    []string
	Abilities map[string]int
}

var races5e = map[string]raceDef{
	"human": {
		Traits: []string{"Versatile: +1 to every ability score", "Extra Language"},
		Abilities: map[string]int{
			AbilityStrength: 1, AbilityDexterity: 1, AbilityConstitution: 1,
			AbilityIntelligence: 1, AbilityWisdom: 1, AbilityCharisma: 1,
		},
	},
	"dwarf": {
		Traits:    []string{"Darkvision", "Dwarven Resilience", "Stonecunning"},
		Abilities: map[string]int{AbilityConstitution: 2},
	},
	"elf": {
		Traits:    []string{"Darkvision", "Keen Senses", "Fey Ancestry", "Trance"},
		Abilities: map[string]int{AbilityDexterity: 2},
	},
	"halfling": {
		Traits:    []string{"Lucky", "Brave", "Halfling Nimbleness"},
		Abilities: map[string]int{AbilityDexterity: 2},
	},
	"gnome": {
		Traits:    []string{"Darkvision", "Gnome Cunning"},
		Abilities: map[string]int{AbilityIntelligence: 2},
	},
	"half-elf": {
		Traits:    []string{"Darkvision", "Fey Ancestry", "Skill Versatility"},
		Abilities: map[string]int{AbilityCharisma: 2},
	},
	"half-orc": {
		Traits:    []string{"Darkvision", "Menacing", "Relentless Endurance", "Savage Attacks"},
		Abilities: map[string]int{AbilityStrength: 2, AbilityConstitution: 1},
	},
	"dragonborn": {
		Traits:    []string{"Draconic Ancestry", "Breath Weapon", "Damage Resistance"},
		Abilities: map[string]int{AbilityStrength: 2, AbilityCharisma: 1},
	},
	"tiefling": {
		Traits:    []string{"Darkvision", "Hellish Resistance", "Infernal Legacy"},
		Abilities: map[string]int{AbilityCharisma: 2, AbilityIntelligence: 1},
	},
}

var races35 = map[string]raceDef{
	"human": {
		Traits: []string{"Bonus Feat", "Extra Skill Points"},
	},
	"dwarf": {
		Traits:    []string{"Darkvision 60 ft.", "Stonecunning", "Stability", "+2 saves against poison"},
		Abilities: map[string]int{AbilityConstitution: 2, AbilityCharisma: -2},
	},
	"elf": {
		Traits:    []string{"Low-Light Vision", "Immunity to sleep effects", "Keen Senses"},
		Abilities: map[string]int{AbilityDexterity: 2, AbilityConstitution: -2},
	},
	"gnome": {
		Traits:    []string{"Low-Light Vision", "Small", "+2 saves against illusions"},
		Abilities: map[string]int{AbilityConstitution: 2, AbilityStrength: -2},
	},
	"halfling": {
		Traits:    []string{"Small", "+1 on all saving throws", "+2 saves against fear"},
		Abilities: map[string]int{AbilityDexterity: 2, AbilityStrength: -2},
	},
	"half-elf": {
		Traits: []string{"Low-Light Vision", "Immunity to sleep effects", "Elven Blood"},
	},
	"half-orc": {
		Traits:    []string{"Darkvision 60 ft.", "Orc Blood"},
		Abilities: map[string]int{AbilityStrength: 2, AbilityIntelligence: -2, AbilityCharisma: -2},
	},
}

// lookupRace finds the entry for a free-text race name. "High Elf" finds
// "elf"; "Half-Elf" finds "half-elf" before "elf". Unknown races return
// false.
func lookupRace(table map[string]raceDef, name string) (raceDef, bool) {
	n := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	if n == "" {
		return raceDef{}, false
	}
	if def, ok := table[n]; ok {
		return def, true
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		if strings.HasSuffix(n, "-"+k) {
			return table[k], true
		}
	}
	return raceDef{}, false
}
