// Package vocabulary provides the term model shared by the representation
// codec and the resolver: versioned semantic identifiers, the series that own
// their versioned variants, the catalogue that indexes them, and the URI
// helpers that attach version fragments to namespaces.
//
// # Terms
//
// A Term is an immutable value object identified by a UUID and, within its
// Kind, by a compact tag (its notation in encoded strings):
//
//	dmn, _ := vocabulary.NewTerm(vocabulary.KindLanguage, "dmn-v13",
//	    vocabulary.WithVersion("1.3"),
//	    vocabulary.WithLabel("DMN 1.3"),
//	    vocabulary.WithURI("https://www.omg.org/spec/DMN/1.3/"))
//
// Tags must not contain the separators reserved by the representation
// grammar: / [ ] + { } , and whitespace. The part of a tag before the first
// "-" is its base tag, the rest is its tag version ("dmn" and "v13" above).
//
// Terms built with WithAncestors carry the closure capability: their
// transitive ancestor set is computed once, at construction.
//
// # Series
//
// A Variant is either a single Term or a series: a Term owning an ordered list
// of versioned Terms. Versions are appended while the registry is built and
// the order is preserved, so "the most recent version" is always the last one
// registered.
//
// # Registry
//
// The Registry is the catalogue read by the codec and the resolver. It is
// populated explicitly (see package known for the default catalogue),
// then frozen; after Freeze it is read-only and safe for concurrent readers.
//
//	reg := vocabulary.NewRegistry()
//	_ = reg.Register(dmn)
//	reg.Freeze()
//	t, ok := reg.Lookup(vocabulary.KindLanguage, "dmn-v13")
//
// # URI Versioning
//
// ApplyVersion inserts a version as a new URI segment:
//
//	vocabulary.ApplyVersion("http://a/x/y#f", "1.0.0")           // http://a/x/y/1.0.0#f
//	vocabulary.ApplyVersionAt("http://a/x/y/z/w/", "1.0.0", -1)  // http://a/x/y/z/1.0.0/w/
//	vocabulary.ApplyVersionAt("urn:xid:aaa:bbb:ccc", "1.0.0", 0) // urn:xid:1.0.0:aaa:bbb:ccc
//
// StripVersion recovers the fragment given the base URI, ExtractIdentifier
// turns a dereferenceable URI into a lookup key, and NormalizeURI gives the
// comparison form of namespace identifiers.
package vocabulary
