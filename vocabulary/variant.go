package vocabulary

// Variant is a catalogue entry: a single term, or a series owning an ordered
// list of versioned terms.
type Variant struct {
	term     *Term
	series   bool
	versions []*Term
}

// Single wraps a term that has no versions.
func Single(t *Term) *Variant {
	return &Variant{term: t}
}

// Series wraps a term owning the given versions, oldest first. The series
// term itself may appear among them.
func Series(t *Term, versions ...*Term) *Variant {
	return &Variant{
		term:     t,
		series:   true,
		versions: append([]*Term(nil), versions...),
	}
}

// Term returns the term that owns this entry.
func (v *Variant) Term() *Term {
	return v.term
}

// IsSeries reports whether the entry owns versions.
func (v *Variant) IsSeries() bool {
	return v.series
}

// Versions returns a copy of the version list in registration order.
func (v *Variant) Versions() []*Term {
	return append([]*Term(nil), v.versions...)
}

// Latest returns the most recently registered version.
func (v *Variant) Latest() (*Term, bool) {
	if len(v.versions) == 0 {
		return nil, false
	}
	return v.versions[len(v.versions)-1], true
}

// VersionByTag returns the version whose version tag equals tag.
func (v *Variant) VersionByTag(tag string) (*Term, bool) {
	for _, t := range v.versions {
		if t.version == tag {
			return t, true
		}
	}
	return nil, false
}
