package conversion

import (
	"strings"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/services/suggestion"
)

// skillDef is one entry of an edition's fixed skill vocabulary. Keywords
// are lowercase fragments of free-text skill names that map onto it.
type skillDef struct {
	Name     string
	Ability  string
	Keywords []string
}

var skills5e = []skillDef{
	{"Acrobatics", AbilityDexterity, []string{"acrobat", "tumbl", "balanc", "juggl"}},
	{"Animal Handling", AbilityWisdom, []string{"animal", "horse", "riding", "husbandry", "falconry", "herding"}},
	{"Arcana", AbilityIntelligence, []string{"arcan", "magic", "spell", "ritual"}},
	{"Athletics", AbilityStrength, []string{"athlet", "climb", "swim", "jump", "wrestl", "brawl", "labor"}},
	{"Deception", AbilityCharisma, []string{"decei", "lying", "bluff", "con artist", "disguise", "forger"}},
	{"History", AbilityIntelligence, []string{"history", "lore", "heraldry", "geneal"}},
	{"Insight", AbilityWisdom, []string{"insight", "empath", "sense motive", "read people"}},
	{"Intimidation", AbilityCharisma, []string{"intimidat", "threat", "interrogat"}},
	{"Investigation", AbilityIntelligence, []string{"investig", "search", "research", "deduc"}},
	{"Medicine", AbilityWisdom, []string{"medic", "heal", "herb", "surgery", "first aid", "physick"}},
	{"Nature", AbilityIntelligence, []string{"nature", "farm", "botan", "agricult", "weather"}},
	{"Perception", AbilityWisdom, []string{"percep", "spot", "listen", "watch", "notice", "lookout"}},
	{"Performance", AbilityCharisma, []string{"perform", "music", "sing", "danc", "acting", "storytell", "instrument"}},
	{"Persuasion", AbilityCharisma, []string{"persua", "diplomac", "negotiat", "barter", "haggl", "oratory", "etiquette"}},
	{"Religion", AbilityIntelligence, []string{"relig", "theolog", "pray", "liturg"}},
	{"Sleight of Hand", AbilityDexterity, []string{"sleight", "pickpocket", "pick pocket", "lockpick"}},
	{"Stealth", AbilityDexterity, []string{"stealth", "sneak", "hiding", "shadow"}},
	{"Survival", AbilityWisdom, []string{"surviv", "track", "hunt", "forag", "trap", "wilderness", "navigat"}},
}

var skills35 = []skillDef{
	{"Appraise", AbilityIntelligence, []string{"apprais", "assay", "valuation"}},
	{"Balance", AbilityDexterity, []string{"balanc"}},
	{"Bluff", AbilityCharisma, []string{"bluff", "lying", "decei", "con artist"}},
	{"Climb", AbilityStrength, []string{"climb"}},
	{"Concentration", AbilityConstitution, []string{"concentrat", "meditat"}},
	{"Craft", AbilityIntelligence, []string{"craft", "smith", "blacksmith", "forging", "carpent", "weav", "brew", "cook", "leather", "pottery", "mason", "tailor", "baking"}},
	{"Decipher Script", AbilityIntelligence, []string{"decipher", "cipher", "literacy", "reading"}},
	{"Diplomacy", AbilityCharisma, []string{"diplomac", "negotiat", "persua", "etiquette", "oratory"}},
	{"Disable Device", AbilityIntelligence, []string{"disable", "trapping", "traps"}},
	{"Disguise", AbilityCharisma, []string{"disguise"}},
	{"Escape Artist", AbilityDexterity, []string{"escape", "contort"}},
	{"Forgery", AbilityIntelligence, []string{"forger"}},
	{"Gather Information", AbilityCharisma, []string{"gather information", "rumor", "gossip", "carous"}},
	{"Handle Animal", AbilityCharisma, []string{"animal", "husbandry", "falconry", "herding"}},
	{"Heal", AbilityWisdom, []string{"heal", "medic", "herb", "surgery", "first aid", "physick"}},
	{"Hide", AbilityDexterity, []string{"hiding", "stealth", "camoufl"}},
	{"Intimidate", AbilityCharisma, []string{"intimidat", "threat", "interrogat"}},
	{"Jump", AbilityStrength, []string{"jump", "leap"}},
	{"Knowledge", AbilityIntelligence, []string{"knowledge", "lore", "history", "heraldry", "geograph", "nobility", "relig", "theolog", "arcan", "nature", "engineer", "architect"}},
	{"Listen", AbilityWisdom, []string{"listen", "hearing"}},
	{"Move Silently", AbilityDexterity, []string{"move silently", "sneak", "silent"}},
	{"Open Lock", AbilityDexterity, []string{"open lock", "lockpick", "pick lock"}},
	{"Perform", AbilityCharisma, []string{"perform", "music", "sing", "danc", "acting", "storytell", "instrument"}},
	{"Profession", AbilityWisdom, []string{"profession", "sail", "farm", "fish", "mining", "herd", "merchant", "barter", "haggl"}},
	{"Ride", AbilityDexterity, []string{"riding", "horse"}},
	{"Search", AbilityIntelligence, []string{"search", "investig", "research"}},
	{"Sense Motive", AbilityWisdom, []string{"sense motive", "insight", "empath", "read people"}},
	{"Sleight of Hand", AbilityDexterity, []string{"sleight", "pickpocket", "pick pocket", "juggl"}},
	{"Spellcraft", AbilityIntelligence, []string{"spell", "magic", "ritual"}},
	{"Spot", AbilityWisdom, []string{"spot", "watch", "notice", "lookout", "percep"}},
	{"Survival", AbilityWisdom, []string{"surviv", "track", "hunt", "forag", "wilderness", "navigat"}},
	{"Swim", AbilityStrength, []string{"swim"}},
	{"Tumble", AbilityDexterity, []string{"tumbl", "acrobat"}},
	{"Use Magic Device", AbilityCharisma, []string{"magic device", "wand"}},
	{"Use Rope", AbilityDexterity, []string{"rope", "knot"}},
}

// matchSkill maps a free-text skill name onto vocab. An exact name match
// wins; otherwise the longest keyword found at a word start wins, earlier
// entries breaking ties. Unmatched names return false.
func matchSkill(vocab []skillDef, name string) (skillDef, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return skillDef{}, false
	}

	best, bestLen := -1, 0
	for i, def := range vocab {
		if strings.ToLower(def.Name) == n {
			return def, true
		}
		for _, k := range def.Keywords {
			if len(k) > bestLen && suggestion.HasKeyword(n, k) {
				best, bestLen = i, len(k)
			}
		}
	}
	if best < 0 {
		return skillDef{}, false
	}
	return vocab[best], true
}

// mappedSkill is a vocabulary skill with the best character skill behind it
type mappedSkill struct {
	def    skillDef
	rank   int
	source string
}

// mapSkills maps every character skill onto vocab, keeping the highest
// rank per vocabulary entry, in vocabulary order
func mapSkills(vocab []skillDef, skills []character.Skill) []mappedSkill {
	byName := make(map[string]*mappedSkill)
	for _, s := range skills {
		def, ok := matchSkill(vocab, s.Name)
		if !ok {
			continue
		}
		if m, exists := byName[def.Name]; exists {
			if s.Rank > m.rank {
				m.rank = s.Rank
				m.source = s.Name
			}
			continue
		}
		byName[def.Name] = &mappedSkill{def: def, rank: s.Rank, source: s.Name}
	}

	out := make([]mappedSkill, 0, len(byName))
	for _, def := range vocab {
		if m, ok := byName[def.Name]; ok {
			out = append(out, *m)
		}
	}
	return out
}
