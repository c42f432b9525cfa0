package catalogue

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/API4KBs/kmdp-models-sub004/config"
	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

// Load parses data and applies it to reg.
func Load(reg *vocabulary.Registry, data []byte) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return doc.Apply(reg)
}

// LoadFile reads a catalogue document from path and applies it to reg.
func LoadFile(reg *vocabulary.Registry, path string) error {
	data, err := config.SafeReadFile(path, ".yaml", ".yml", ".json")
	if err != nil {
		return errors.WrapInvalid(err, "catalogue", "LoadFile", "read "+path)
	}
	if err := Load(reg, data); err != nil {
		return errors.Wrap(err, "catalogue", "LoadFile", "load "+path)
	}
	return nil
}

// Apply registers the document's terms, then its series, in order. It stops
// at the first error; entries before it stay registered.
func (d *Document) Apply(reg *vocabulary.Registry) error {
	for i, spec := range d.Terms {
		t, err := spec.build(reg)
		if err != nil {
			return errors.Wrap(err, "Document", "Apply", fmt.Sprintf("terms[%d]", i))
		}
		if err := reg.Register(t); err != nil {
			return errors.Wrap(err, "Document", "Apply", fmt.Sprintf("terms[%d]", i))
		}
	}

	for i, spec := range d.Series {
		if err := spec.apply(reg); err != nil {
			return errors.Wrap(err, "Document", "Apply", fmt.Sprintf("series[%d]", i))
		}
	}
	return nil
}

// Len returns the number of declared terms and series versions.
func (d *Document) Len() int {
	n := len(d.Terms)
	for _, s := range d.Series {
		n += len(s.Versions)
	}
	return n
}

func (s TermSpec) build(reg *vocabulary.Registry) (*vocabulary.Term, error) {
	kind, err := vocabulary.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}

	opts := []vocabulary.Option{
		vocabulary.WithLabel(s.Label),
		vocabulary.WithVersion(s.Version),
		vocabulary.WithURI(s.URI),
		vocabulary.WithReferent(s.Referent),
		vocabulary.WithNamespace(s.Namespace),
	}
	if s.UUID != "" {
		id, err := parseUUID(s.UUID)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vocabulary.WithUUID(id))
	}
	if s.Ancestors != nil {
		ancestors := make([]*vocabulary.Term, 0, len(*s.Ancestors))
		for _, tag := range *s.Ancestors {
			a, ok := reg.Lookup(kind, tag)
			if !ok {
				return nil, errors.WrapInvalid(fmt.Errorf("%w: ancestor %s %q of %q", errors.ErrUnknownTerm, kind, tag, s.Tag),
					"TermSpec", "build", "ancestor lookup")
			}
			ancestors = append(ancestors, a)
		}
		opts = append(opts, vocabulary.WithAncestors(ancestors...))
	}

	return vocabulary.NewTerm(kind, s.Tag, opts...)
}

func (s SeriesSpec) apply(reg *vocabulary.Registry) error {
	kind, err := vocabulary.ParseKind(s.Kind)
	if err != nil {
		return err
	}

	if existing, ok := reg.LookupVariant(kind, s.Tag); ok {
		if !existing.IsSeries() {
			return errors.WrapInvalid(fmt.Errorf("%w: %s %q is not a series", errors.ErrUnknownSeries, kind, s.Tag),
				"SeriesSpec", "apply", "series lookup")
		}
		owner := existing.Term()
		for _, v := range s.Versions {
			t, err := s.version(owner, v, s.namespaceOr(owner.Namespace()))
			if err != nil {
				return err
			}
			if err := reg.AddVersion(kind, owner.UUID(), t); err != nil {
				return err
			}
		}
		return nil
	}

	if s.Namespace == "" {
		return errors.WrapInvalid(fmt.Errorf("%w: series %q has no namespace", errors.ErrInvalidCatalogue, s.Tag),
			"SeriesSpec", "apply", "namespace check")
	}

	opts := []vocabulary.Option{
		vocabulary.WithLabel(s.Label),
		vocabulary.WithURI(s.URI),
		vocabulary.WithReferent(s.Referent),
		vocabulary.WithNamespace(s.Namespace),
	}
	if s.UUID != "" {
		id, err := parseUUID(s.UUID)
		if err != nil {
			return err
		}
		opts = append(opts, vocabulary.WithUUID(id))
	}
	owner, err := vocabulary.NewTerm(kind, s.Tag, opts...)
	if err != nil {
		return err
	}

	versions := make([]*vocabulary.Term, 0, len(s.Versions))
	for _, v := range s.Versions {
		t, err := s.version(owner, v, s.Namespace)
		if err != nil {
			return err
		}
		versions = append(versions, t)
	}
	return reg.RegisterSeries(owner, versions...)
}

func (s SeriesSpec) namespaceOr(fallback string) string {
	if s.Namespace != "" {
		return s.Namespace
	}
	return fallback
}

func (s SeriesSpec) version(owner *vocabulary.Term, v VersionSpec, namespace string) (*vocabulary.Term, error) {
	ns := vocabulary.ApplyVersion(namespace, v.Version)

	tag := v.Tag
	if tag == "" {
		tag = owner.Tag() + "-" + v.Version
	}
	label := v.Label
	if label == "" {
		label = owner.Label() + " " + v.Version
	}
	uri := v.URI
	if uri == "" {
		uri = ns
	}

	return vocabulary.NewTerm(owner.Kind(), tag,
		vocabulary.WithUUID(owner.UUID()),
		vocabulary.WithVersion(v.Version),
		vocabulary.WithLabel(label),
		vocabulary.WithURI(uri),
		vocabulary.WithReferent(owner.Referent()),
		vocabulary.WithNamespace(ns))
}

func parseUUID(text string) (uuid.UUID, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrInvalidCatalogue, err),
			"catalogue", "parseUUID", "uuid parse")
	}
	return id, nil
}
