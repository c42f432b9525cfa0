package vocabulary

import (
	"fmt"
	"strings"

	"github.com/API4KBs/kmdp-models-sub004/errors"
)

// Kind partitions the catalogue. Tags are unique within a kind only.
type Kind string

const (
	KindLanguage      Kind = "language"
	KindProfile       Kind = "profile"
	KindSerialization Kind = "serialization"
	KindFormat        Kind = "format"
	KindLexicon       Kind = "lexicon"
	KindConcept       Kind = "concept"
)

// Kinds lists the built-in kinds in a stable order.
var Kinds = []Kind{KindLanguage, KindProfile, KindSerialization, KindFormat, KindLexicon, KindConcept}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.WrapInvalid(fmt.Errorf("%w: unknown kind %q", errors.ErrInvalidCatalogue, name),
		"vocabulary", "ParseKind", "kind lookup")
}
