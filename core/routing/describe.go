package routing

// Description is a read-only view of an entry point for documentation
// and discovery surfaces. It carries no behavior, only declared facts.
type Description struct {
	Name   string             `json:"name"`
	Doc    string             `json:"doc,omitempty"`
	Groups [][]ArgDescription `json:"groups"`
}

// ArgDescription describes one declared argument.
type ArgDescription struct {
	Name       string `json:"name"`
	TypeLabel  string `json:"type"`
	Doc        string `json:"doc,omitempty"`
	Arity      int    `json:"arity"`
	HasDefault bool   `json:"has_default"`
}

// Describe returns the introspection view of the entry point. The result
// is built fresh on every call and detached from the descriptor.
func (ep *EntryPoint) Describe() Description {
	groups := make([][]ArgDescription, len(ep.groups))
	for gi, sigs := range ep.groups {
		groups[gi] = make([]ArgDescription, len(sigs))
		for ai, sig := range sigs {
			groups[gi][ai] = ArgDescription{
				Name:       sig.Name,
				TypeLabel:  sig.TypeLabel,
				Doc:        sig.Doc,
				Arity:      sig.Reader.Arity(),
				HasDefault: sig.HasDefault(),
			}
		}
	}

	return Description{
		Name:   ep.name,
		Doc:    ep.doc,
		Groups: groups,
	}
}
