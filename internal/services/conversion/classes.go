package conversion

import (
	"slices"

	"github.com/KirkDiggler/pancasting/internal/services/suggestion"
)

type progression int

const (
	progressionPoor progression = iota
	progressionMedium
	progressionFull
)

type classDef struct {
	Rubric           suggestion.Rubric
	HitDie           int
	PrimaryAbilities []string

	// 3.5 only
	BaseAttack progression
	GoodSaves  []string
}

var (
	rubricBarbarian = suggestion.Rubric{
		Name:        "Barbarian",
		Occupations: []string{"barbarian", "tribal", "raider", "berserk", "nomad", "reaver"},
		Skills:      []string{"axe", "brawl", "surviv", "athlet", "wrestl"},
		Traits:      []string{"wrathful", "angry", "fierce", "reckless", "violent"},
	}
	rubricBard = suggestion.Rubric{
		Name:        "Bard",
		Occupations: []string{"bard", "minstrel", "entertain", "actor", "jester", "musician", "storyteller"},
		Skills:      []string{"music", "sing", "perform", "storytell", "instrument", "lore", "danc"},
		Traits:      []string{"charming", "witty", "flamboy", "outgoing", "gregarious"},
	}
	rubricCleric = suggestion.Rubric{
		Name:        "Cleric",
		Occupations: []string{"priest", "acolyte", "cleric", "temple", "clergy", "missionary"},
		Skills:      []string{"relig", "theolog", "heal", "pray", "medic"},
		Traits:      []string{"pious", "devout", "faith", "compassion", "merciful"},
	}
	rubricDruid = suggestion.Rubric{
		Name:        "Druid",
		Occupations: []string{"druid", "herbalist", "shepherd", "forester", "farmer"},
		Skills:      []string{"nature", "herb", "animal", "farm", "weather"},
		Traits:      []string{"calm", "patient", "reverent", "wild"},
	}
	rubricFighter = suggestion.Rubric{
		Name:        "Fighter",
		Occupations: []string{"soldier", "military", "mercenary", "guard", "warrior", "militia", "sellsword", "gladiator", "man-at-arms"},
		Skills:      []string{"sword", "axe", "spear", "shield", "weapon", "combat", "fight", "tactic", "archery"},
		Traits:      []string{"brave", "disciplin", "loyal", "courag", "tough"},
	}
	rubricMonk = suggestion.Rubric{
		Name:        "Monk",
		Occupations: []string{"monk", "monaster", "ascetic", "hermit"},
		Skills:      []string{"meditat", "unarmed", "martial", "acrobat", "tumbl"},
		Traits:      []string{"disciplin", "serene", "humble", "patient"},
	}
	rubricPaladin = suggestion.Rubric{
		Name:        "Paladin",
		Occupations: []string{"knight", "templar", "crusader", "paladin", "squire"},
		Skills:      []string{"relig", "heraldry", "riding", "lance"},
		Traits:      []string{"honorable", "honest", "righteous", "just", "zealous"},
	}
	rubricRanger = suggestion.Rubric{
		Name:        "Ranger",
		Occupations: []string{"hunter", "trapper", "ranger", "scout", "guide", "forester"},
		Skills:      []string{"track", "bow", "surviv", "hunt", "stealth", "forag"},
		Traits:      []string{"independent", "watchful", "solitary", "observant"},
	}
	rubricRogue = suggestion.Rubric{
		Name:        "Rogue",
		Occupations: []string{"thief", "burglar", "smuggler", "spy", "pickpocket", "assassin", "fence", "bandit"},
		Skills:      []string{"stealth", "sneak", "lock", "pickpocket", "sleight", "forger", "disguise"},
		Traits:      []string{"cunning", "sly", "greedy", "deceit", "opportun"},
	}
	rubricSorcerer = suggestion.Rubric{
		Name:        "Sorcerer",
		Occupations: []string{"sorcer", "noble", "courtier", "hedge mage"},
		Skills:      []string{"magic", "spell", "persua", "etiquette"},
		Traits:      []string{"confident", "proud", "arrogant", "passionate"},
	}
	rubricWarlock = suggestion.Rubric{
		Name:        "Warlock",
		Occupations: []string{"occult", "cultist", "fortune", "witch"},
		Skills:      []string{"occult", "arcan", "decei", "intimidat"},
		Traits:      []string{"ambitious", "secretive", "obsess", "vengeful"},
	}
	rubricWizard = suggestion.Rubric{
		Name:        "Wizard",
		Occupations: []string{"scribe", "scholar", "sage", "wizard", "alchemist", "librarian", "apprentice mage", "teacher"},
		Skills:      []string{"arcan", "magic", "spell", "lore", "history", "alchem", "research", "literacy"},
		Traits:      []string{"curious", "studious", "intellig", "methodical"},
	}
)

var classes5e = []classDef{
	{Rubric: rubricBarbarian, HitDie: 12, PrimaryAbilities: []string{AbilityStrength}},
	{Rubric: rubricBard, HitDie: 8, PrimaryAbilities: []string{AbilityCharisma}},
	{Rubric: rubricCleric, HitDie: 8, PrimaryAbilities: []string{AbilityWisdom}},
	{Rubric: rubricDruid, HitDie: 8, PrimaryAbilities: []string{AbilityWisdom}},
	{Rubric: rubricFighter, HitDie: 10, PrimaryAbilities: []string{AbilityStrength, AbilityDexterity}},
	{Rubric: rubricMonk, HitDie: 8, PrimaryAbilities: []string{AbilityDexterity, AbilityWisdom}},
	{Rubric: rubricPaladin, HitDie: 10, PrimaryAbilities: []string{AbilityStrength, AbilityCharisma}},
	{Rubric: rubricRanger, HitDie: 10, PrimaryAbilities: []string{AbilityDexterity, AbilityWisdom}},
	{Rubric: rubricRogue, HitDie: 8, PrimaryAbilities: []string{AbilityDexterity}},
	{Rubric: rubricSorcerer, HitDie: 6, PrimaryAbilities: []string{AbilityCharisma}},
	{Rubric: rubricWarlock, HitDie: 8, PrimaryAbilities: []string{AbilityCharisma}},
	{Rubric: rubricWizard, HitDie: 6, PrimaryAbilities: []string{AbilityIntelligence}},
}

var classes35 = []classDef{
	{Rubric: rubricBarbarian, HitDie: 12, PrimaryAbilities: []string{AbilityStrength},
		BaseAttack: progressionFull, GoodSaves: []string{saveFortitude}},
	{Rubric: rubricBard, HitDie: 6, PrimaryAbilities: []string{AbilityCharisma},
		BaseAttack: progressionMedium, GoodSaves: []string{saveReflex, saveWill}},
	{Rubric: rubricCleric, HitDie: 8, PrimaryAbilities: []string{AbilityWisdom},
		BaseAttack: progressionMedium, GoodSaves: []string{saveFortitude, saveWill}},
	{Rubric: rubricDruid, HitDie: 8, PrimaryAbilities: []string{AbilityWisdom},
		BaseAttack: progressionMedium, GoodSaves: []string{saveFortitude, saveWill}},
	{Rubric: rubricFighter, HitDie: 10, PrimaryAbilities: []string{AbilityStrength},
		BaseAttack: progressionFull, GoodSaves: []string{saveFortitude}},
	{Rubric: rubricMonk, HitDie: 8, PrimaryAbilities: []string{AbilityWisdom, AbilityDexterity},
		BaseAttack: progressionMedium, GoodSaves: []string{saveFortitude, saveReflex, saveWill}},
	{Rubric: rubricPaladin, HitDie: 10, PrimaryAbilities: []string{AbilityStrength, AbilityCharisma},
		BaseAttack: progressionFull, GoodSaves: []string{saveFortitude}},
	{Rubric: rubricRanger, HitDie: 8, PrimaryAbilities: []string{AbilityDexterity, AbilityWisdom},
		BaseAttack: progressionFull, GoodSaves: []string{saveFortitude, saveReflex}},
	{Rubric: rubricRogue, HitDie: 6, PrimaryAbilities: []string{AbilityDexterity},
		BaseAttack: progressionMedium, GoodSaves: []string{saveReflex}},
	{Rubric: rubricSorcerer, HitDie: 4, PrimaryAbilities: []string{AbilityCharisma},
		BaseAttack: progressionPoor, GoodSaves: []string{saveWill}},
	{Rubric: rubricWizard, HitDie: 4, PrimaryAbilities: []string{AbilityIntelligence},
		BaseAttack: progressionPoor, GoodSaves: []string{saveWill}},
}

func suggestFrom(catalog []classDef, scored []suggestion.Result) []ClassSuggestion {
	byName := make(map[string]classDef, len(catalog))
	for _, def := range catalog {
		byName[def.Rubric.Name] = def
	}

	out := make([]ClassSuggestion, len(scored))
	for i, r := range scored {
		def := byName[r.Name]
		out[i] = ClassSuggestion{
			Result:           r,
			HitDie:           def.HitDie,
			PrimaryAbilities: slices.Clone(def.PrimaryAbilities),
		}
	}
	return out
}

func rubrics(catalog []classDef) []suggestion.Rubric {
	out := make([]suggestion.Rubric, len(catalog))
	for i, def := range catalog {
		out[i] = def.Rubric
	}
	return out
}
