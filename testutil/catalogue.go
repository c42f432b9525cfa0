package testutil

import (
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

// Fixture namespaces and versions
const (
	SchemeNamespace = "http://example.org/scheme/"
	SchemeV1        = "1.0.0"
	SchemeV2        = "2.0.0"
	SchemeSnapshot  = "3.0.0-SNAPSHOT"

	LegacyNamespace = "http://example.org/legacy/"
	LegacyV1        = "1.0.0"
	LegacyV2        = "2.0.0"

	CurrentNamespace = "http://example.org/current/"
	CurrentVersion   = "7"
)

// Catalogue returns a new frozen fixture registry.
func Catalogue() *vocabulary.Registry {
	reg := vocabulary.NewRegistry()

	reg.MustRegister(
		language("alpha-v1", "1.0.0"),
		language("alpha-v10", "10.0.0"),
		language("alpha-v2", "2.0.0"),
		language("beta", ""),

		vocabulary.MustTerm(vocabulary.KindProfile, "strict"),
		vocabulary.MustTerm(vocabulary.KindProfile, "lax"),

		vocabulary.MustTerm(vocabulary.KindSerialization, "xml"),
		vocabulary.MustTerm(vocabulary.KindSerialization, "json"),
		vocabulary.MustTerm(vocabulary.KindSerialization, "alpha-v2-compact"),

		vocabulary.MustTerm(vocabulary.KindFormat, "txt"),
		vocabulary.MustTerm(vocabulary.KindFormat, "xml-v1", vocabulary.WithVersion("1")),

		vocabulary.MustTerm(vocabulary.KindLexicon, "lex-a"),
		vocabulary.MustTerm(vocabulary.KindLexicon, "lex-b"),
		vocabulary.MustTerm(vocabulary.KindLexicon, "lex-c"),
	)

	scheme := vocabulary.MustTerm(vocabulary.KindConcept, "scheme",
		vocabulary.WithNamespace(SchemeNamespace),
		vocabulary.WithURI(SchemeNamespace))
	if err := reg.RegisterSeries(scheme, schemeVersion(scheme, SchemeV1)); err != nil {
		panic(err)
	}
	if err := reg.AddVersion(vocabulary.KindConcept, scheme.UUID(), schemeVersion(scheme, SchemeV2)); err != nil {
		panic(err)
	}

	current := vocabulary.ApplyVersion(CurrentNamespace, CurrentVersion)
	root := concept("root", current)
	child := concept("child", current, root)
	reg.MustRegister(
		root,
		child,
		concept("grandchild", current, child),
		concept("legacy-a", vocabulary.ApplyVersion(LegacyNamespace, LegacyV1)),
		concept("legacy-b", vocabulary.ApplyVersion(LegacyNamespace, LegacyV2)),
	)

	reg.Freeze()
	return reg
}

func language(tag, version string) *vocabulary.Term {
	return vocabulary.MustTerm(vocabulary.KindLanguage, tag, vocabulary.WithVersion(version))
}

func schemeVersion(series *vocabulary.Term, version string) *vocabulary.Term {
	ns := vocabulary.ApplyVersion(SchemeNamespace, version)
	return vocabulary.MustTerm(vocabulary.KindConcept, series.Tag()+"-"+version,
		vocabulary.WithUUID(series.UUID()),
		vocabulary.WithVersion(version),
		vocabulary.WithNamespace(ns),
		vocabulary.WithURI(ns))
}

func concept(tag, namespace string, ancestors ...*vocabulary.Term) *vocabulary.Term {
	return vocabulary.MustTerm(vocabulary.KindConcept, tag,
		vocabulary.WithNamespace(namespace),
		vocabulary.WithURI(namespace+"#"+tag),
		vocabulary.WithAncestors(ancestors...))
}

// MustLookup returns the fixture term registered under tag, panicking if it
// is missing.
func MustLookup(reg *vocabulary.Registry, kind vocabulary.Kind, tag string) *vocabulary.Term {
	t, ok := reg.Lookup(kind, tag)
	if !ok {
		panic("testutil: no " + string(kind) + " " + tag)
	}
	return t
}
