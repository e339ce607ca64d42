package character

// Race is the character's people
type Race struct {
	Name        string   `json:"name"`
	Subrace     string   `json:"subrace,omitempty"`
	Description string   `json:"description,omitempty"`
	Traits      []string `json:"traits"`
}

// Culture is the society the character was raised in
type Culture struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	NativeEnvironment string `json:"nativeEnvironment,omitempty"`
	CuMod             int    `json:"cuMod"`
}

// SocialStatus is the family's standing within its culture
type SocialStatus struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Wealth      string `json:"wealth,omitempty"`
	Title       string `json:"title,omitempty"`
	SolMod      int    `json:"solMod"`
	TiMod       int    `json:"tiMod"`
}

// BirthCircumstances covers legitimacy, birth order and unusual births
type BirthCircumstances struct {
	Legitimate       bool   `json:"legitimate"`
	LegitimacyReason string `json:"legitimacyReason,omitempty"`
	BirthOrder       string `json:"birthOrder,omitempty"`
	Place            string `json:"place,omitempty"`
	UnusualBirth     string `json:"unusualBirth,omitempty"`
	Description      string `json:"description,omitempty"`
	BiMod            int    `json:"biMod"`
	LegitMod         int    `json:"legitMod"`
}

// Sibling is a brother or sister
type Sibling struct {
	Name     string `json:"name,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Relation string `json:"relation,omitempty"`
}

// Family describes who raised the character
type Family struct {
	Head        string    `json:"head,omitempty"`
	Members     []string  `json:"members"`
	Siblings    []Sibling `json:"siblings"`
	Description string    `json:"description,omitempty"`
}
