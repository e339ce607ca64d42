package progress

// Step ids of the default catalog
const (
	StepHeritage      = "heritage"
	StepYouth         = "youth"
	StepOccupations   = "occupations"
	StepAdulthood     = "adulthood"
	StepPersonality   = "personality"
	StepMiscellaneous = "miscellaneous"
	StepContacts      = "contacts"
	StepSpecialItems  = "special-items"
)

// Step is one unit of the generation wizard. Only Completed and Skipped
// change during a session.
type Step struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Required     bool     `json:"required"`
	Completed    bool     `json:"completed"`
	Skipped      bool     `json:"skipped"`
	Order        int      `json:"order"`
	TableIDs     []string `json:"tableIds"`
	Dependencies []string `json:"dependencies"`
}

// DefaultCatalog returns a fresh copy of the standard life-stage steps
func DefaultCatalog() []Step {
	return []Step{
		{
			ID:          StepHeritage,
			Title:       "Heritage & Birth",
			Description: "Race, culture, social status and the circumstances of birth",
			Category:    "heritage",
			Required:    true,
			Order:       0,
			TableIDs:    []string{"101", "102", "103", "104", "105", "106"},
		},
		{
			ID:           StepYouth,
			Title:        "Youth Events",
			Description:  "Significant events of childhood and adolescence",
			Category:     "youth",
			Required:     true,
			Order:        1,
			TableIDs:     []string{"207", "208", "209", "210", "211", "212", "213", "214", "215"},
			Dependencies: []string{StepHeritage},
		},
		{
			ID:           StepOccupations,
			Title:        "Occupations",
			Description:  "Jobs, apprenticeships, hobbies and the skills they teach",
			Category:     "occupations",
			Required:     true,
			Order:        2,
			TableIDs:     []string{"419", "420", "421", "422", "423", "424"},
			Dependencies: []string{StepYouth},
		},
		{
			ID:           StepAdulthood,
			Title:        "Adulthood Events",
			Description:  "Significant events after coming of age",
			Category:     "adulthood",
			Required:     true,
			Order:        3,
			TableIDs:     []string{"217", "218", "219", "220", "221"},
			Dependencies: []string{StepYouth},
		},
		{
			ID:           StepPersonality,
			Title:        "Personality",
			Description:  "Values, alignment and personality traits",
			Category:     "personality",
			Required:     true,
			Order:        4,
			TableIDs:     []string{"318", "319", "320", "321"},
			Dependencies: []string{StepHeritage},
		},
		{
			ID:           StepMiscellaneous,
			Title:        "Miscellaneous Events",
			Description:  "Unusual happenings, crimes, romance and the like",
			Category:     "miscellaneous",
			Order:        5,
			TableIDs:     []string{"544", "545", "546", "547", "548"},
			Dependencies: []string{StepAdulthood},
		},
		{
			ID:           StepContacts,
			Title:        "Contacts & Relationships",
			Description:  "Companions, rivals and other NPCs",
			Category:     "contacts",
			Order:        6,
			TableIDs:     []string{"750", "751", "752", "753"},
			Dependencies: []string{StepHeritage},
		},
		{
			ID:          StepSpecialItems,
			Title:       "Special Items",
			Description: "Gifts, legacies and unusual possessions",
			Category:    "items",
			Order:       7,
			TableIDs:    []string{"854", "855", "863"},
		},
	}
}

func copySteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		s.TableIDs = append([]string(nil), s.TableIDs...)
		s.Dependencies = append([]string(nil), s.Dependencies...)
		out[i] = s
	}
	return out
}

// StepForTable returns the id of the step covering tableID
func StepForTable(steps []Step, tableID string) (string, bool) {
	for _, s := range steps {
		for _, t := range s.TableIDs {
			if t == tableID {
				return s.ID, true
			}
		}
	}
	return "", false
}
