package resolver

import "github.com/API4KBs/kmdp-models-sub004/vocabulary"

// ConceptDescriptor is a term projected with its ancestors and closure.
// Both are empty unless the term has the closure capability.
type ConceptDescriptor struct {
	Term      *vocabulary.Term   `json:"term"`
	Ancestors []*vocabulary.Term `json:"ancestors,omitempty"`
	Closure   []*vocabulary.Term `json:"closure,omitempty"`
}

// ToConcept projects t.
func ToConcept(t *vocabulary.Term) ConceptDescriptor {
	cd := ConceptDescriptor{Term: t}
	if t != nil && t.HasClosure() {
		cd.Ancestors = t.Ancestors()
		cd.Closure = t.Closure()
	}
	return cd
}

// HasClosure reports whether the projected term carries closure data.
func (cd ConceptDescriptor) HasClosure() bool {
	return cd.Term != nil && cd.Term.HasClosure()
}

// Includes reports whether other is the term itself or one of its
// transitive ancestors.
func (cd ConceptDescriptor) Includes(other *vocabulary.Term) bool {
	if cd.Term == nil || other == nil {
		return false
	}
	if cd.Term.SameAs(other) {
		return true
	}
	for _, a := range cd.Closure {
		if a.SameAs(other) {
			return true
		}
	}
	return false
}

// Concept resolves id and projects the result.
func (r *Resolver) Concept(kind vocabulary.Kind, id vocabulary.Identifier) (ConceptDescriptor, bool) {
	result, ok := r.Resolve(kind, id)
	if !ok {
		return ConceptDescriptor{}, false
	}
	return ToConcept(result.Term), true
}
