package vocabulary

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/API4KBs/kmdp-models-sub004/errors"
)

// BaseURI is the root of identifiers minted by this module.
const BaseURI = "https://terms.kmdp.org/"

// TermNamespace seeds the name-based UUIDs of terms built without WithUUID.
var TermNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(BaseURI))

// ReservedSeparators may not appear in a tag.
const ReservedSeparators = "/[]+{},"

// Term is an immutable versioned semantic identifier.
type Term struct {
	kind       Kind
	tag        string
	id         uuid.UUID
	uri        string
	version    string
	label      string
	referent   string
	namespace  string
	hasClosure bool
	ancestors  []*Term
	closure    []*Term
}

// Option is a functional option for configuring a term.
type Option func(*Term)

// WithUUID sets the identity; otherwise a name-based UUID over kind, tag and
// version is used.
func WithUUID(id uuid.UUID) Option {
	return func(t *Term) {
		t.id = id
	}
}

// WithURI sets the resource URI.
func WithURI(uri string) Option {
	return func(t *Term) {
		t.uri = uri
	}
}

// WithVersion sets the version tag.
func WithVersion(version string) Option {
	return func(t *Term) {
		t.version = version
	}
}

// WithLabel sets the display label. Defaults to the tag.
func WithLabel(label string) Option {
	return func(t *Term) {
		t.label = label
	}
}

// WithReferent sets the URI of the thing the term denotes.
func WithReferent(uri string) Option {
	return func(t *Term) {
		t.referent = uri
	}
}

// WithNamespace sets the namespace URI. For a concrete version of a series
// this is the versioned namespace, the key used by series resolution.
func WithNamespace(uri string) Option {
	return func(t *Term) {
		t.namespace = uri
	}
}

// WithAncestors gives the term the closure capability. Ancestors must be
// built before the term; the order given is kept.
func WithAncestors(ancestors ...*Term) Option {
	return func(t *Term) {
		t.hasClosure = true
		t.ancestors = append([]*Term(nil), ancestors...)
	}
}

// ValidateTag checks a tag against the grammar's reserved separators.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", errors.ErrInvalidTag)
	}
	for _, r := range tag {
		if strings.ContainsRune(ReservedSeparators, r) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q contains reserved character %q", errors.ErrInvalidTag, tag, r)
		}
	}
	return nil
}

// NewTerm builds a term of the given kind.
func NewTerm(kind Kind, tag string, opts ...Option) (*Term, error) {
	if kind == "" {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: empty kind", errors.ErrInvalidTag),
			"vocabulary", "NewTerm", "kind validation")
	}
	if err := ValidateTag(tag); err != nil {
		return nil, errors.WrapInvalid(err, "vocabulary", "NewTerm", "tag validation")
	}

	t := &Term{kind: kind, tag: tag}
	for _, opt := range opts {
		opt(t)
	}

	if t.id == uuid.Nil {
		t.id = uuid.NewSHA1(TermNamespace, []byte(string(kind)+"/"+tag+"/"+t.version))
	}
	if t.label == "" {
		t.label = tag
	}

	for i, a := range t.ancestors {
		if a == nil {
			return nil, errors.WrapInvalid(fmt.Errorf("%w: nil ancestor at %d for %q", errors.ErrUnknownTerm, i, tag),
				"vocabulary", "NewTerm", "ancestor validation")
		}
	}
	t.closure = computeClosure(t.ancestors)

	return t, nil
}

// MustTerm is NewTerm for statically declared catalogues; it panics on error.
func MustTerm(kind Kind, tag string, opts ...Option) *Term {
	t, err := NewTerm(kind, tag, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// computeClosure walks ancestors breadth-first, nearest first, keeping the
// first occurrence of each UUID.
func computeClosure(ancestors []*Term) []*Term {
	if len(ancestors) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]bool)
	var closure []*Term
	queue := append([]*Term(nil), ancestors...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next.id] {
			continue
		}
		seen[next.id] = true
		closure = append(closure, next)
		queue = append(queue, next.ancestors...)
	}
	return closure
}

func (t *Term) Kind() Kind { return t.kind }
func (t *Term) Tag() string { return t.tag }
func (t *Term) UUID() uuid.UUID { return t.id }
func (t *Term) URI() string { return t.uri }
func (t *Term) Version() string { return t.version }
func (t *Term) Label() string { return t.label }
func (t *Term) Referent() string { return t.referent }
func (t *Term) Namespace() string { return t.namespace }
func (t *Term) HasClosure() bool { return t.hasClosure }
func (t *Term) Ancestors() []*Term { return append([]*Term(nil), t.ancestors...) }
func (t *Term) Closure() []*Term { return append([]*Term(nil), t.closure...) }
func (t *Term) IsSnapshot() bool { return IsSnapshot(t.version) }
func (t *Term) String() string { return string(t.kind) + ":" + t.tag }

// BaseTag returns the tag truncated at the first "-".
func (t *Term) BaseTag() string {
	base, _, _ := strings.Cut(t.tag, "-")
	return base
}

// TagVersion returns the part of the tag after the first "-", if any.
func (t *Term) TagVersion() string {
	_, version, _ := strings.Cut(t.tag, "-")
	return version
}

// SameAs reports whether two terms share an identity.
func (t *Term) SameAs(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.kind == other.kind && t.id == other.id && t.version == other.version
}

// Identifier returns the resolution token of this term.
func (t *Term) Identifier() Identifier {
	return Identifier{Namespace: t.namespace, UUID: t.id, Version: t.version}
}

// MarshalJSON renders the term with ancestors and closure as tags.
func (t *Term) MarshalJSON() ([]byte, error) {
	tags := func(terms []*Term) []string {
		out := make([]string, 0, len(terms))
		for _, a := range terms {
			out = append(out, a.tag)
		}
		return out
	}

	view := struct {
		Kind      Kind      `json:"kind"`
		Tag       string    `json:"tag"`
		UUID      uuid.UUID `json:"uuid"`
		URI       string    `json:"uri,omitempty"`
		Version   string    `json:"version,omitempty"`
		Label     string    `json:"label"`
		Referent  string    `json:"referent,omitempty"`
		Namespace string    `json:"namespace,omitempty"`
		Ancestors []string  `json:"ancestors,omitempty"`
		Closure   []string  `json:"closure,omitempty"`
	}{
		Kind:      t.kind,
		Tag:       t.tag,
		UUID:      t.id,
		URI:       t.uri,
		Version:   t.version,
		Label:     t.label,
		Referent:  t.referent,
		Namespace: t.namespace,
	}
	if t.hasClosure {
		view.Ancestors = tags(t.ancestors)
		view.Closure = tags(t.closure)
	}
	return json.Marshal(view)
}

// IsSnapshot reports whether a version tag is a floating pre-release marker.
func IsSnapshot(version string) bool {
	return strings.Contains(version, "-")
}

// Identifier is the (namespace, uuid, version) token resolved against the
// catalogue.
type Identifier struct {
	Namespace string
	UUID      uuid.UUID
	Version   string
}

// VersionedNamespace applies Version to Namespace as a trailing segment.
func (id Identifier) VersionedNamespace() string {
	if id.Version == "" {
		return id.Namespace
	}
	return ApplyVersion(id.Namespace, id.Version)
}
