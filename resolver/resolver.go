package resolver

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

// Catalogue is the read contract of the resolver. *vocabulary.Registry
// satisfies it.
type Catalogue interface {
	Lookup(kind vocabulary.Kind, tag string) (*vocabulary.Term, bool)
	LookupByUUID(kind vocabulary.Kind, id uuid.UUID) (*vocabulary.Variant, bool)
	Variants(kind vocabulary.Kind) []*vocabulary.Variant
}

// Outcome is the terminal state of a resolution.
type Outcome int

const (
	NotFound Outcome = iota
	FoundEntity
	FoundVersion
	FoundDefault
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case FoundEntity:
		return "found_entity"
	case FoundVersion:
		return "found_version"
	case FoundDefault:
		return "found_default"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is a resolved term and how it was found.
type Result struct {
	Term    *vocabulary.Term `json:"term"`
	Outcome Outcome          `json:"outcome"`
}

// Resolver resolves identifiers against a catalogue. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	catalogue Catalogue
	logger    *slog.Logger
	metrics   *metric.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for fallbacks and ambiguity reports.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records resolution outcomes.
func WithMetrics(metrics *metric.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = metrics
	}
}

// New creates a resolver over catalogue.
func New(catalogue Catalogue, opts ...Option) *Resolver {
	r := &Resolver{
		catalogue: catalogue,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve finds the term of kind identified by id. An identifier without a
// namespace is matched against the namespace of the series it names.
func (r *Resolver) Resolve(kind vocabulary.Kind, id vocabulary.Identifier) (Result, bool) {
	start := time.Now()

	entry, ok := r.catalogue.LookupByUUID(kind, id.UUID)
	if !ok {
		return r.finish(kind, Result{Outcome: NotFound}, start)
	}
	if !entry.IsSeries() || id.Version == "" {
		return r.finish(kind, Result{Term: entry.Term(), Outcome: FoundEntity}, start)
	}

	if id.Namespace == "" {
		id.Namespace = entry.Term().Namespace()
	}
	target := vocabulary.NormalizeURI(id.VersionedNamespace())
	for _, v := range entry.Versions() {
		if vocabulary.NormalizeURI(v.Namespace()) == target {
			return r.finish(kind, Result{Term: v, Outcome: FoundVersion}, start)
		}
	}

	if vocabulary.IsSnapshot(id.Version) {
		if latest, ok := entry.Latest(); ok {
			r.logger.Debug("Snapshot version resolved to latest",
				"kind", kind, "series", entry.Term().Tag(), "requested", id.Version, "resolved", latest.Version())
			return r.finish(kind, Result{Term: latest, Outcome: FoundDefault}, start)
		}
	}

	return r.finish(kind, Result{Outcome: NotFound}, start)
}

// ResolveURI resolves the identifier carried by uri, a UUID or a tag, at the
// given version.
func (r *Resolver) ResolveURI(kind vocabulary.Kind, uri, version string) (Result, bool) {
	start := time.Now()
	key := vocabulary.ExtractIdentifier(uri)
	if key == "" {
		return r.finish(kind, Result{Outcome: NotFound}, start)
	}

	id, err := uuid.Parse(key)
	if err != nil {
		t, ok := r.catalogue.Lookup(kind, key)
		if !ok {
			return r.finish(kind, Result{Outcome: NotFound}, start)
		}
		id = t.UUID()
	}
	return r.Resolve(kind, vocabulary.Identifier{UUID: id, Version: version})
}

func (r *Resolver) finish(kind vocabulary.Kind, result Result, start time.Time) (Result, bool) {
	if r.metrics != nil {
		r.metrics.RecordResolution(kind.String(), result.Outcome.String())
		r.metrics.RecordDuration("resolver", "resolve", time.Since(start))
	}
	return result, result.Outcome != NotFound
}

// VersionOf returns the version fragment under which single terms of kind
// are published below baseURI. Series are skipped since they own many
// versions by construction. Terms published under more than one version is
// a catalogue defect, reported as a fatal-class ErrAmbiguousVersion.
func (r *Resolver) VersionOf(kind vocabulary.Kind, baseURI string) (string, bool, error) {
	base := vocabulary.NormalizeURI(baseURI)
	if base == "" {
		return "", false, nil
	}

	var versions []string
	seen := make(map[string]bool)
	for _, entry := range r.catalogue.Variants(kind) {
		if entry.IsSeries() {
			continue
		}
		ns := vocabulary.NormalizeURI(entry.Term().Namespace())
		if !strings.HasPrefix(ns, base+"/") && !strings.HasPrefix(ns, base+":") {
			continue
		}
		version := vocabulary.StripVersion(ns, base)
		if version == "" || seen[version] {
			continue
		}
		seen[version] = true
		versions = append(versions, version)
	}

	switch len(versions) {
	case 0:
		return "", false, nil
	case 1:
		return versions[0], true, nil
	}

	err := errors.WrapFatal(fmt.Errorf("%w: %s has versions %s", errors.ErrAmbiguousVersion, baseURI, strings.Join(versions, ", ")),
		"Resolver", "VersionOf", "version lookup")
	r.logger.Error("Ambiguous catalogue version", "kind", kind, "base", baseURI, "versions", versions)
	if r.metrics != nil {
		r.metrics.RecordError("resolver", errors.ErrorFatal.String())
	}
	return "", false, err
}
