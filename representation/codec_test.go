package representation

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
	fixtures "github.com/API4KBs/kmdp-models-sub004/testutil"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary/known"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name           string
		descriptor     Descriptor
		includeVersion bool
		expected       string
	}{
		{name: "empty", descriptor: Descriptor{}, includeVersion: true, expected: "model/"},
		{name: "language", descriptor: Descriptor{Language: known.DMN13}, includeVersion: true, expected: "model/dmn-v13"},
		{name: "language unversioned", descriptor: Descriptor{Language: known.DMN13}, includeVersion: false, expected: "model/dmn"},
		{
			name:           "serialization",
			descriptor:     Descriptor{Language: known.DMN13, Serialization: known.XMLSerialization},
			includeVersion: true,
			expected:       "model/dmn-v13+xml",
		},
		{
			name:           "language prefix elided",
			descriptor:     Descriptor{Language: known.OWL2, Serialization: known.OWLManchester},
			includeVersion: true,
			expected:       "model/owl-v2+manchester",
		},
		{
			name:           "language prefix elided without version",
			descriptor:     Descriptor{Language: known.OWL2, Serialization: known.OWLManchester},
			includeVersion: false,
			expected:       "model/owl+manchester",
		},
		{
			name:           "foreign prefix kept",
			descriptor:     Descriptor{Language: known.DMN13, Serialization: known.OWLManchester},
			includeVersion: true,
			expected:       "model/dmn-v13+owl-v2-manchester",
		},
		{
			name:           "serialization wins over format",
			descriptor:     Descriptor{Language: known.BPMN2, Serialization: known.XMLSerialization, Format: known.XML11},
			includeVersion: true,
			expected:       "model/bpmn-v2+xml",
		},
		{
			name:           "format only",
			descriptor:     Descriptor{Format: known.JSON1},
			includeVersion: true,
			expected:       "model/+json-v1",
		},
		{
			name: "every facet",
			descriptor: Descriptor{
				Language:      known.OWL2,
				Profile:       known.OWL2EL,
				Serialization: known.Turtle,
				Lexicon:       []*vocabulary.Term{known.SNOMEDCT, known.LOINC},
			},
			includeVersion: true,
			expected:       "model/owl-v2[owl2-el]+turtle+{snomed-ct,loinc}",
		},
		{name: "unversioned language", descriptor: Descriptor{Language: known.HTML}, includeVersion: false, expected: "model/html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Encode(tt.descriptor, tt.includeVersion)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
			assert.True(t, Matches(text))
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	d := Descriptor{Language: known.CMMN11, Lexicon: []*vocabulary.Term{known.ICD10, known.PCV}}
	first := MustEncode(d, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MustEncode(d, true))
	}
}

func TestEncode_GrammarViolationIsFatal(t *testing.T) {
	// a zero term has an empty tag, which yields "[]"
	d := Descriptor{Profile: &vocabulary.Term{}}

	_, err := Encode(d, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrGrammarViolation)
	assert.True(t, errors.IsFatal(err))
	assert.False(t, errors.IsInvalid(err))

	assert.Panics(t, func() { MustEncode(d, true) })
	assert.Error(t, d.Validate())
}

func TestDecode_Known(t *testing.T) {
	codec := NewCodec(known.Catalogue())

	d, ok := codec.Decode("model/owl-v2[owl2-el]+manchester+{snomed-ct,loinc}")
	require.True(t, ok)
	assert.Same(t, known.OWL2, d.Language)
	assert.Same(t, known.OWL2EL, d.Profile)
	assert.Same(t, known.OWLManchester, d.Serialization)
	assert.Nil(t, d.Format)
	assert.Equal(t, []*vocabulary.Term{known.SNOMEDCT, known.LOINC}, d.Lexicon)

	d, ok = codec.Decode("model/fhir-r4+json-v1")
	require.True(t, ok)
	assert.Same(t, known.FHIRR4, d.Language)
	assert.Nil(t, d.Serialization)
	assert.Same(t, known.JSON1, d.Format)
}

func TestDecode_LanguagePrefixFallback(t *testing.T) {
	codec := NewCodec(fixtures.Catalogue())

	d, ok := codec.Decode("model/alpha+xml")
	require.True(t, ok)
	require.NotNil(t, d.Language)
	assert.Equal(t, "alpha-v10", d.Language.Tag(), "highest precedence, not first registered")

	d, ok = codec.Decode("model/beta")
	require.True(t, ok)
	require.NotNil(t, d.Language)
	assert.Equal(t, "beta", d.Language.Tag(), "unversioned languages match themselves")

	d, ok = codec.Decode("model/dmn")
	require.True(t, ok)
	assert.Nil(t, d.Language)

	d, ok = NewCodec(known.Catalogue()).Decode("model/dmn")
	require.True(t, ok)
	assert.Same(t, known.DMN13, d.Language)
}

func TestDecode_Malformed(t *testing.T) {
	codec := NewCodec(fixtures.Catalogue())
	for _, text := range fixtures.MalformedDescriptors {
		d, ok := codec.Decode(text)
		assert.False(t, ok, "%q", text)
		assert.True(t, d.IsZero())
	}

	_, err := codec.DecodeStrict("model/a/b")
	assert.ErrorIs(t, err, errors.ErrNoGrammarMatch)
	assert.True(t, errors.IsInvalid(err))
}

// Unresolvable tokens drop silently while encode violations are fatal.
func TestDecode_SilentDrop(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	codec := NewCodec(fixtures.Catalogue(), WithMetrics(registry.CoreMetrics()))

	d, err := codec.DecodeStrict("model/alpha-v9[none]+zip+{lex-a,nope,lex-b}")
	require.NoError(t, err)

	assert.Nil(t, d.Language)
	assert.Nil(t, d.Profile)
	assert.Nil(t, d.Serialization)
	require.NotNil(t, d.Format)
	assert.Equal(t, "txt", d.Format.Tag(), "unknown code defaults to plain text")
	require.Len(t, d.Lexicon, 2)
	assert.Equal(t, "lex-a", d.Lexicon[0].Tag())
	assert.Equal(t, "lex-b", d.Lexicon[1].Tag())

	dropped := registry.CoreMetrics().DroppedTokens
	assert.Equal(t, 1.0, testutil.ToFloat64(dropped.WithLabelValues("language")))
	assert.Equal(t, 1.0, testutil.ToFloat64(dropped.WithLabelValues("profile")))
	assert.Equal(t, 1.0, testutil.ToFloat64(dropped.WithLabelValues("lexicon")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.CoreMetrics().CodecOperations.WithLabelValues("decode", "ok")))
}

func TestDecode_DefaultFormat(t *testing.T) {
	d, ok := NewCodec(fixtures.Catalogue(), WithDefaultFormat("xml-v1")).Decode("model/+zip")
	require.True(t, ok)
	assert.Equal(t, "xml-v1", d.Format.Tag())

	empty := vocabulary.NewRegistry()
	d, ok = NewCodec(empty).Decode("model/+zip")
	require.True(t, ok)
	assert.Same(t, known.TXT, d.Format, "built-in plain text when the catalogue has none")
}

func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		catalogue *vocabulary.Registry
	}{
		{name: "fixture", catalogue: fixtures.Catalogue()},
		{name: "default", catalogue: known.Catalogue()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewCodec(tt.catalogue)
			for _, d := range descriptorsOf(tt.catalogue) {
				text, err := codec.Encode(d, true)
				require.NoError(t, err)
				assert.True(t, Matches(text), text)

				decoded, ok := codec.Decode(text)
				require.True(t, ok, text)
				assert.True(t, d.Equal(decoded), "round trip of %s", text)

				unversioned := MustEncode(decoded, false)
				language := unversioned[len(Prefix):]
				if end := indexAny(language, "[+"); end >= 0 {
					language = language[:end]
				}
				assert.NotContains(t, language, "-", unversioned)
			}
		})
	}
}

func TestCodec_TextRoundTrip(t *testing.T) {
	codec := NewCodec(fixtures.Catalogue())
	for _, text := range fixtures.ValidDescriptors {
		d, ok := codec.Decode(text)
		require.True(t, ok, text)
		assert.Equal(t, text, MustEncode(d, true))
	}
}

func TestCodec_EncodeRecordsErrors(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	codec := NewCodec(fixtures.Catalogue(), WithMetrics(registry.CoreMetrics()))

	_, err := codec.Encode(Descriptor{Format: &vocabulary.Term{}}, true)
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.CoreMetrics().ErrorsTotal.WithLabelValues("codec", "fatal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.CoreMetrics().CodecOperations.WithLabelValues("encode", "error")))
}

func TestDescriptor_Equal(t *testing.T) {
	a := Descriptor{Language: known.DMN12, Lexicon: []*vocabulary.Term{known.LOINC, known.RxNorm}}
	b := Descriptor{Language: known.DMN12, Lexicon: []*vocabulary.Term{known.RxNorm, known.LOINC}}
	c := Descriptor{Language: known.DMN11, Lexicon: []*vocabulary.Term{known.RxNorm, known.LOINC}}
	d := Descriptor{Language: known.DMN12, Lexicon: []*vocabulary.Term{known.RxNorm}}

	assert.True(t, a.Equal(b), "lexicon compares as a set")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, Descriptor{}.Equal(Descriptor{}))
	assert.True(t, Descriptor{}.IsZero())
	assert.NoError(t, a.Validate())
}

// descriptorsOf builds descriptors from catalogue tokens: every language alone
// and with each serialization, every format, every profile, and a lexicon set.
func descriptorsOf(cat *vocabulary.Registry) []Descriptor {
	var out []Descriptor
	languages := cat.AllOfKind(vocabulary.KindLanguage)
	profiles := cat.AllOfKind(vocabulary.KindProfile)
	lexicon := cat.AllOfKind(vocabulary.KindLexicon)

	out = append(out, Descriptor{}, Descriptor{Lexicon: lexicon})
	for _, lang := range languages {
		out = append(out, Descriptor{Language: lang})
		for _, ser := range cat.AllOfKind(vocabulary.KindSerialization) {
			out = append(out, Descriptor{Language: lang, Serialization: ser, Lexicon: lexicon})
		}
		for _, f := range cat.AllOfKind(vocabulary.KindFormat) {
			out = append(out, Descriptor{Language: lang, Format: f})
		}
		for _, p := range profiles {
			out = append(out, Descriptor{Language: lang, Profile: p})
		}
	}
	return out
}

func indexAny(s, chars string) int {
	for i, r := range s {
		for _, c := range chars {
			if r == c {
				return i
			}
		}
	}
	return -1
}
