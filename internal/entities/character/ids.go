package character

// GetID and SetID let the store address entity-like records generically.

func (e Event) GetID() string {
	return e.ID
}

func (e *Event) SetID(id string) {
	e.ID = id
}

func (o Occupation) GetID() string {
	return o.ID
}

func (o *Occupation) SetID(id string) {
	o.ID = id
}

func (a Apprenticeship) GetID() string {
	return a.ID
}

func (a *Apprenticeship) SetID(id string) {
	a.ID = id
}

func (n NPC) GetID() string {
	return n.ID
}

func (n *NPC) SetID(id string) {
	n.ID = id
}

func (r Relationship) GetID() string {
	return r.ID
}

func (r *Relationship) SetID(id string) {
	r.ID = id
}

func (s SpecialItem) GetID() string {
	return s.ID
}

func (s *SpecialItem) SetID(id string) {
	s.ID = id
}

func (g GenerationStep) GetID() string {
	return g.ID
}

func (g *GenerationStep) SetID(id string) {
	g.ID = id
}
