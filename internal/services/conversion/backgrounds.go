package conversion

import (
	"github.com/KirkDiggler/pancasting/internal/services/suggestion"
)

type backgroundDef struct {
	Rubric             suggestion.Rubric
	SkillProficiencies []string
	Feature            string
}

var backgrounds5e = []backgroundDef{
	{
		Rubric: suggestion.Rubric{
			Name:        "Acolyte",
			Occupations: []string{"priest", "acolyte", "temple", "clergy", "monk"},
			Skills:      []string{"relig", "pray", "theolog"},
			Traits:      []string{"pious", "devout", "faith"},
		},
		SkillProficiencies: []string{"Insight", "Religion"},
		Feature:            "Shelter of the Faithful",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Charlatan",
			Occupations: []string{"con artist", "swindler", "gambler", "fortune"},
			Skills:      []string{"decei", "forger", "disguise", "bluff"},
			Traits:      []string{"cunning", "deceit", "charming"},
		},
		SkillProficiencies: []string{"Deception", "Sleight of Hand"},
		Feature:            "False Identity",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Criminal",
			Occupations: []string{"thief", "smuggler", "bandit", "burglar", "fence", "assassin"},
			Skills:      []string{"stealth", "lock", "sneak"},
			Traits:      []string{"greedy", "ruthless", "sly"},
		},
		SkillProficiencies: []string{"Deception", "Stealth"},
		Feature:            "Criminal Contact",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Entertainer",
			Occupations: []string{"minstrel", "bard", "actor", "jester", "dancer", "musician"},
			Skills:      []string{"music", "sing", "perform", "danc"},
			Traits:      []string{"charming", "flamboy", "outgoing"},
		},
		SkillProficiencies: []string{"Acrobatics", "Performance"},
		Feature:            "By Popular Demand",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Folk Hero",
			Occupations: []string{"farmer", "peasant", "laborer", "shepherd", "miller"},
			Skills:      []string{"farm", "animal", "labor"},
			Traits:      []string{"brave", "kind", "humble"},
		},
		SkillProficiencies: []string{"Animal Handling", "Survival"},
		Feature:            "Rustic Hospitality",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Guild Artisan",
			Occupations: []string{"craft", "artisan", "smith", "blacksmith", "merchant", "guild", "carpenter", "weaver"},
			Skills:      []string{"craft", "smith", "blacksmith", "barter", "haggl"},
			Traits:      []string{"diligent", "industrious", "meticulous"},
		},
		SkillProficiencies: []string{"Insight", "Persuasion"},
		Feature:            "Guild Membership",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Hermit",
			Occupations: []string{"hermit", "recluse", "ascetic"},
			Skills:      []string{"herb", "medic", "meditat"},
			Traits:      []string{"solitary", "patient", "reclusive"},
		},
		SkillProficiencies: []string{"Medicine", "Religion"},
		Feature:            "Discovery",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Noble",
			Occupations: []string{"noble", "courtier", "lord", "lady", "diplomat", "heir"},
			Skills:      []string{"etiquette", "heraldry", "diplomac", "riding"},
			Traits:      []string{"proud", "arrogant", "refined"},
		},
		SkillProficiencies: []string{"History", "Persuasion"},
		Feature:            "Position of Privilege",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Outlander",
			Occupations: []string{"hunter", "trapper", "guide", "nomad", "ranger"},
			Skills:      []string{"surviv", "track", "hunt", "forag"},
			Traits:      []string{"independent", "wander", "restless"},
		},
		SkillProficiencies: []string{"Athletics", "Survival"},
		Feature:            "Wanderer",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Sage",
			Occupations: []string{"scribe", "scholar", "sage", "librarian", "teacher", "alchemist"},
			Skills:      []string{"lore", "history", "research", "literacy", "arcan"},
			Traits:      []string{"curious", "studious", "intellig"},
		},
		SkillProficiencies: []string{"Arcana", "History"},
		Feature:            "Researcher",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Sailor",
			Occupations: []string{"sailor", "fisher", "pirate", "navigator", "deckhand"},
			Skills:      []string{"swim", "sail", "navigat", "rope"},
			Traits:      []string{"adventur", "boister"},
		},
		SkillProficiencies: []string{"Athletics", "Perception"},
		Feature:            "Ship's Passage",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Soldier",
			Occupations: []string{"soldier", "military", "mercenary", "guard", "militia", "knight"},
			Skills:      []string{"sword", "shield", "tactic", "weapon", "spear"},
			Traits:      []string{"disciplin", "loyal", "brave"},
		},
		SkillProficiencies: []string{"Athletics", "Intimidation"},
		Feature:            "Military Rank",
	},
	{
		Rubric: suggestion.Rubric{
			Name:        "Urchin",
			Occupations: []string{"beggar", "urchin", "street", "orphan"},
			Skills:      []string{"pickpocket", "sneak", "hiding"},
			Traits:      []string{"scrappy", "wary", "resourceful"},
		},
		SkillProficiencies: []string{"Sleight of Hand", "Stealth"},
		Feature:            "City Secrets",
	},
}
