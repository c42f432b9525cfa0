package vocabulary

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/API4KBs/kmdp-models-sub004/errors"
)

// Registry indexes terms per kind by tag and by UUID, in registration order.
//
// A registry is built by a single owner and then frozen. Writes after Freeze
// fail with ErrRegistryFrozen; reads are safe from any goroutine.
type Registry struct {
	mu     sync.RWMutex
	frozen bool
	kinds  []Kind
	order  map[Kind][]*Variant
	byTag  map[Kind]map[string]*Variant
	byUUID map[Kind]map[uuid.UUID]*Variant
}

// NewRegistry creates an empty, writable registry.
func NewRegistry() *Registry {
	return &Registry{
		order:  make(map[Kind][]*Variant),
		byTag:  make(map[Kind]map[string]*Variant),
		byUUID: make(map[Kind]map[uuid.UUID]*Variant),
	}
}

// Register adds a single term.
func (r *Registry) Register(t *Term) error {
	if t == nil {
		return errors.WrapInvalid(fmt.Errorf("%w: nil term", errors.ErrUnknownTerm),
			"Registry", "Register", "term validation")
	}
	return r.add(Single(t), "Register")
}

// MustRegister registers every term, panicking on the first error.
func (r *Registry) MustRegister(terms ...*Term) {
	for _, t := range terms {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
}

// RegisterSeries adds a series term with its initial versions, oldest first.
func (r *Registry) RegisterSeries(t *Term, versions ...*Term) error {
	if t == nil {
		return errors.WrapInvalid(fmt.Errorf("%w: nil series term", errors.ErrUnknownTerm),
			"Registry", "RegisterSeries", "term validation")
	}
	for _, v := range versions {
		if err := checkVersion(t, v); err != nil {
			return errors.WrapInvalid(err, "Registry", "RegisterSeries", "version validation")
		}
	}
	return r.add(Series(t, versions...), "RegisterSeries")
}

// AddVersion appends a version to an already registered series.
func (r *Registry) AddVersion(kind Kind, series uuid.UUID, version *Term) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.WrapFatal(errors.ErrRegistryFrozen, "Registry", "AddVersion", "registry write")
	}

	entry, ok := r.byUUID[kind][series]
	if !ok || !entry.series {
		return errors.WrapInvalid(fmt.Errorf("%w: %s %s", errors.ErrUnknownSeries, kind, series),
			"Registry", "AddVersion", "series lookup")
	}
	if err := checkVersion(entry.term, version); err != nil {
		return errors.WrapInvalid(err, "Registry", "AddVersion", "version validation")
	}

	entry.versions = append(entry.versions, version)
	return nil
}

func checkVersion(series, version *Term) error {
	if version == nil {
		return fmt.Errorf("%w: nil version of %s", errors.ErrUnknownTerm, series)
	}
	if version.kind != series.kind {
		return fmt.Errorf("%w: version %s has kind %s, series %s has kind %s",
			errors.ErrUnknownSeries, version, version.kind, series, series.kind)
	}
	return nil
}

func (r *Registry) add(entry *Variant, method string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.WrapFatal(errors.ErrRegistryFrozen, "Registry", method, "registry write")
	}

	t := entry.term
	if _, dup := r.byTag[t.kind][t.tag]; dup {
		return errors.WrapInvalid(fmt.Errorf("%w: tag %q already registered as %s", errors.ErrDuplicateTerm, t.tag, t.kind),
			"Registry", method, "tag index")
	}
	if _, dup := r.byUUID[t.kind][t.id]; dup {
		return errors.WrapInvalid(fmt.Errorf("%w: uuid %s already registered as %s", errors.ErrDuplicateTerm, t.id, t.kind),
			"Registry", method, "uuid index")
	}

	if _, seen := r.order[t.kind]; !seen {
		r.kinds = append(r.kinds, t.kind)
		r.byTag[t.kind] = make(map[string]*Variant)
		r.byUUID[t.kind] = make(map[uuid.UUID]*Variant)
	}
	r.order[t.kind] = append(r.order[t.kind], entry)
	r.byTag[t.kind][t.tag] = entry
	r.byUUID[t.kind][t.id] = entry
	return nil
}

// Freeze makes the registry read-only. It is idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup returns the term registered under tag.
func (r *Registry) Lookup(kind Kind, tag string) (*Term, bool) {
	entry, ok := r.LookupVariant(kind, tag)
	if !ok {
		return nil, false
	}
	return entry.term, true
}

// LookupVariant returns the entry registered under tag.
func (r *Registry) LookupVariant(kind Kind, tag string) (*Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byTag[kind][tag]
	return entry, ok
}

// LookupByUUID returns the entry whose owning term has the given UUID.
func (r *Registry) LookupByUUID(kind Kind, id uuid.UUID) (*Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byUUID[kind][id]
	return entry, ok
}

// AllOfKind returns the owning terms of a kind in registration order.
func (r *Registry) AllOfKind(kind Kind) []*Term {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.order[kind]
	terms := make([]*Term, 0, len(entries))
	for _, entry := range entries {
		terms = append(terms, entry.term)
	}
	return terms
}

// Variants returns the entries of a kind in registration order.
func (r *Registry) Variants(kind Kind) []*Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Variant(nil), r.order[kind]...)
}

// Kinds returns the kinds present, in order of first registration.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Kind(nil), r.kinds...)
}

// Len returns the number of entries of a kind. Series versions are not
// counted separately.
func (r *Registry) Len(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order[kind])
}
