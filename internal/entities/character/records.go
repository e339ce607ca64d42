package character

// EventCategory tags an event with the collection it belongs to
type EventCategory string

// Event categories
const (
	EventCategoryYouth         EventCategory = "youth"
	EventCategoryAdulthood     EventCategory = "adulthood"
	EventCategoryMiscellaneous EventCategory = "miscellaneous"
)

// Valid reports whether c is a known category
func (c EventCategory) Valid() bool {
	switch c {
	case EventCategoryYouth, EventCategoryAdulthood, EventCategoryMiscellaneous:
		return true
	}
	return false
}

// Event is one significant happening in the character's life
type Event struct {
	ID          string        `json:"id"`
	Category    EventCategory `json:"category"`
	TableID     string        `json:"tableId,omitempty"`
	Result      string        `json:"result"`
	Description string        `json:"description,omitempty"`
	Effects     []string      `json:"effects"`
	Age         *int          `json:"age,omitempty"`
	Timestamp   int64         `json:"timestamp"`
}

// Occupation is a job held by the character
type Occupation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Years       int    `json:"years,omitempty"`
	SkillLevel  int    `json:"skillLevel,omitempty"`
	Description string `json:"description,omitempty"`
	TableID     string `json:"tableId,omitempty"`
}

// Apprenticeship is training under a master
type Apprenticeship struct {
	ID          string `json:"id"`
	Master      string `json:"master,omitempty"`
	Trade       string `json:"trade"`
	Years       int    `json:"years,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	Description string `json:"description,omitempty"`
}

// Hobby is addressed by index
type Hobby struct {
	Name        string `json:"name"`
	Interest    string `json:"interest,omitempty"`
	SkillLevel  int    `json:"skillLevel,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill is unique by Name within a character
type Skill struct {
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	Source      string `json:"source,omitempty"`
	Description string `json:"description,omitempty"`
}

// Value is something the character holds dear
type Value struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Strength    int    `json:"strength,omitempty"`
}

// Trait is a single personality trait
type Trait struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Strength    int    `json:"strength,omitempty"`
}

// TraitBucket names one of the four personality trait groups
type TraitBucket string

// Trait buckets
const (
	TraitLightside TraitBucket = "lightside"
	TraitNeutral   TraitBucket = "neutral"
	TraitDarkside  TraitBucket = "darkside"
	TraitExotic    TraitBucket = "exotic"
)

// PersonalityTraits groups traits by bucket
type PersonalityTraits struct {
	Lightside []Trait `json:"lightside"`
	Neutral   []Trait `json:"neutral"`
	Darkside  []Trait `json:"darkside"`
	Exotic    []Trait `json:"exotic"`
}

func (p *PersonalityTraits) normalize() {
	if p.Lightside == nil {
		p.Lightside = []Trait{}
	}
	if p.Neutral == nil {
		p.Neutral = []Trait{}
	}
	if p.Darkside == nil {
		p.Darkside = []Trait{}
	}
	if p.Exotic == nil {
		p.Exotic = []Trait{}
	}
}

// Bucket returns a pointer to the slice for bucket, or nil if unknown
func (p *PersonalityTraits) Bucket(bucket TraitBucket) *[]Trait {
	switch bucket {
	case TraitLightside:
		return &p.Lightside
	case TraitNeutral:
		return &p.Neutral
	case TraitDarkside:
		return &p.Darkside
	case TraitExotic:
		return &p.Exotic
	default:
		return nil
	}
}

// NPC is used for general contacts, companions and rivals alike
type NPC struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Relation    string `json:"relation,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	Attitude    string `json:"attitude,omitempty"`
	Description string `json:"description,omitempty"`
}

// Relationship is a tie of love, friendship, enmity and so on
type Relationship struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Strength    int    `json:"strength,omitempty"`
	Description string `json:"description,omitempty"`
}

// Gift is addressed by index
type Gift struct {
	Name        string `json:"name"`
	Giver       string `json:"giver,omitempty"`
	Description string `json:"description,omitempty"`
}

// Legacy is addressed by index
type Legacy struct {
	Name        string `json:"name"`
	Source      string `json:"source,omitempty"`
	Description string `json:"description,omitempty"`
}

// SpecialItem is a notable possession
type SpecialItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Powers      []string `json:"powers"`
}

// Entry is the table entry chosen for a step
type Entry struct {
	Result      string   `json:"result"`
	Description string   `json:"description,omitempty"`
	Effects     []string `json:"effects"`
}

// GenerationStep records one table roll or manual selection. Records are
// append-only; only Notes may change afterwards.
type GenerationStep struct {
	ID               string   `json:"id"`
	StepNumber       int      `json:"stepNumber"`
	TableID          string   `json:"tableId"`
	TableName        string   `json:"tableName,omitempty"`
	RollResult       *int     `json:"rollResult,omitempty"`
	ModifiersApplied []string `json:"modifiersApplied"`
	SelectedEntry    Entry    `json:"selectedEntry"`
	Timestamp        int64    `json:"timestamp"`
	Notes            string   `json:"notes,omitempty"`
	Skipped          bool     `json:"skipped,omitempty"`
	ManualSelection  bool     `json:"manualSelection,omitempty"`
}

// StartingResources is coin and kit the character begins play with
type StartingResources struct {
	Gold  int      `json:"gold"`
	Items []string `json:"items"`
}

// DnDIntegration holds rule-system adjustments gathered during generation
type DnDIntegration struct {
	AbilityModifiers   map[string]int    `json:"abilityModifiers"`
	SkillBonuses       map[string]int    `json:"skillBonuses"`
	StartingResources  StartingResources `json:"startingResources"`
	Languages          []string          `json:"languages"`
	Traits             []string          `json:"traits"`
	Flaws              []string          `json:"flaws"`
	Equipment          []string          `json:"equipment"`
	SpecialAbilities   []string          `json:"specialAbilities"`
	BackgroundFeatures []string          `json:"backgroundFeatures"`
}

func (d *DnDIntegration) normalize() {
	if d.AbilityModifiers == nil {
		d.AbilityModifiers = map[string]int{}
	}
	if d.SkillBonuses == nil {
		d.SkillBonuses = map[string]int{}
	}
	if d.StartingResources.Items == nil {
		d.StartingResources.Items = []string{}
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}
	if d.Traits == nil {
		d.Traits = []string{}
	}
	if d.Flaws == nil {
		d.Flaws = []string{}
	}
	if d.Equipment == nil {
		d.Equipment = []string{}
	}
	if d.SpecialAbilities == nil {
		d.SpecialAbilities = []string{}
	}
	if d.BackgroundFeatures == nil {
		d.BackgroundFeatures = []string{}
	}
}
