package representation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

// Descriptor describes how a knowledge artifact is encoded. Every facet is
// optional; Lexicon is compared as a set.
type Descriptor struct {
	Language      *vocabulary.Term   `json:"language,omitempty"`
	Profile       *vocabulary.Term   `json:"profile,omitempty"`
	Serialization *vocabulary.Term   `json:"serialization,omitempty"`
	Format        *vocabulary.Term   `json:"format,omitempty"`
	Lexicon       []*vocabulary.Term `json:"lexicon,omitempty"`
}

// IsZero reports whether no facet is set.
func (d Descriptor) IsZero() bool {
	return d.Language == nil && d.Profile == nil && d.Serialization == nil &&
		d.Format == nil && len(d.Lexicon) == 0
}

// Equal compares facets by identity and lexicons as sets.
func (d Descriptor) Equal(other Descriptor) bool {
	return sameTerm(d.Language, other.Language) &&
		sameTerm(d.Profile, other.Profile) &&
		sameTerm(d.Serialization, other.Serialization) &&
		sameTerm(d.Format, other.Format) &&
		sameLexicon(d.Lexicon, other.Lexicon)
}

func sameTerm(a, b *vocabulary.Term) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind() == b.Kind() && a.UUID() == b.UUID()
}

func sameLexicon(a, b []*vocabulary.Term) bool {
	left, right := lexiconSet(a), lexiconSet(b)
	if len(left) != len(right) {
		return false
	}
	for id := range left {
		if !right[id] {
			return false
		}
	}
	return true
}

func lexiconSet(terms []*vocabulary.Term) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(terms))
	for _, t := range terms {
		if t != nil {
			set[t.UUID()] = true
		}
	}
	return set
}

// Validate checks every facet tag against the reserved separators.
func (d Descriptor) Validate() error {
	facets := []struct {
		name string
		term *vocabulary.Term
	}{
		{"language", d.Language},
		{"profile", d.Profile},
		{"serialization", d.Serialization},
		{"format", d.Format},
	}
	for _, f := range facets {
		if f.term == nil {
			continue
		}
		if err := vocabulary.ValidateTag(f.term.Tag()); err != nil {
			return errors.WrapInvalid(fmt.Errorf("%s: %w", f.name, err), "Descriptor", "Validate", "facet validation")
		}
	}
	for i, t := range d.Lexicon {
		if t == nil {
			continue
		}
		if err := vocabulary.ValidateTag(t.Tag()); err != nil {
			return errors.WrapInvalid(fmt.Errorf("lexicon %d: %w", i, err), "Descriptor", "Validate", "facet validation")
		}
	}
	return nil
}

// key identifies a descriptor for memoization. Tags are part of the key
// since series versions share their UUID. Lexicon order is kept, as it is
// the order Encode writes.
func (d Descriptor) key() string {
	id := func(t *vocabulary.Term) string {
		if t == nil {
			return ""
		}
		return t.Tag() + "@" + t.UUID().String()
	}

	lex := make([]string, 0, len(d.Lexicon))
	for _, t := range d.Lexicon {
		if t != nil {
			lex = append(lex, id(t))
		}
	}

	return strings.Join([]string{
		id(d.Language), id(d.Profile), id(d.Serialization), id(d.Format), strings.Join(lex, ","),
	}, "|")
}
