package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	fixtures "github.com/API4KBs/kmdp-models-sub004/testutil"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary/known"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeCatalogue(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEncode(t *testing.T) {
	out, err := execute(t, "encode", "--language", "owl-v2", "--profile", "owl2-el",
		"--serialization", "turtle", "--lexicon", "snomed-ct,loinc")
	require.NoError(t, err)

	var result struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "model/owl-v2[owl2-el]+turtle+{snomed-ct,loinc}", result.Text)
}

func TestEncode_NoVersion(t *testing.T) {
	out, err := execute(t, "encode", "--language", "dmn-v13", "--serialization", "xml", "--no-version")
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "model/dmn+xml"`)
}

func TestEncode_UnknownTag(t *testing.T) {
	_, err := execute(t, "encode", "--language", "klingon")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownTerm)
	assert.True(t, errors.IsInvalid(err))
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "model/dmn-v13+xml", "model/a/b")
	require.NoError(t, err)

	var results []struct {
		Text       string `json:"text"`
		Matched    bool   `json:"matched"`
		Descriptor struct {
			Language      *struct{ Tag string } `json:"language"`
			Serialization *struct{ Tag string } `json:"serialization"`
		} `json:"descriptor"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.True(t, results[0].Matched)
	require.NotNil(t, results[0].Descriptor.Language)
	assert.Equal(t, "dmn-v13", results[0].Descriptor.Language.Tag)
	require.NotNil(t, results[0].Descriptor.Serialization)
	assert.Equal(t, "xml", results[0].Descriptor.Serialization.Tag)

	assert.False(t, results[1].Matched)
	assert.Nil(t, results[1].Descriptor.Language)
}

func TestDecode_Strict(t *testing.T) {
	_, err := execute(t, "decode", "--strict", "model/a/b")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoGrammarMatch)
}

func TestURI(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "apply", args: []string{"uri", "apply", "http://example.org/a/b", "1.0.0"}, expected: "http://example.org/a/b/1.0.0"},
		{name: "apply at position", args: []string{"uri", "apply", "http://example.org/a/b", "1.0.0", "--position", "0"}, expected: "http://example.org/1.0.0/a/b"},
		{name: "apply urn", args: []string{"uri", "apply", "urn:uuid:abc", "v2"}, expected: "urn:uuid:abc:v2"},
		{name: "apply before last", args: []string{"uri", "apply", "http://example.org/a/b", "1.0.0", "--position", "-1"}, expected: "http://example.org/a/1.0.0/b"},
		{name: "strip", args: []string{"uri", "strip", "http://example.org/a/b/1.0.0", "http://example.org/a/b"}, expected: "1.0.0"},
		{name: "id", args: []string{"uri", "id", "http://example.org/a#foo"}, expected: "foo"},
		{name: "normalize", args: []string{"uri", "normalize", "HTTP://Example.ORG/a/"}, expected: "http://example.org/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			var result uriResult
			require.NoError(t, json.Unmarshal([]byte(out), &result))
			assert.Equal(t, tt.expected, result.Result)
		})
	}
}

type resolveOutput struct {
	Term *struct {
		Tag     string `json:"tag"`
		Version string `json:"version"`
	} `json:"term"`
	Outcome string `json:"outcome"`
}

func TestResolve(t *testing.T) {
	series := known.AssetType.UUID().String()

	tests := []struct {
		name    string
		args    []string
		tag     string
		outcome string
	}{
		{
			name:    "entity by uri",
			args:    []string{"--uri", known.AssetTypeNamespace + "decision-model"},
			tag:     "decision-model",
			outcome: "found_entity",
		},
		{
			name:    "series version",
			args:    []string{"--uuid", series, "--version", known.AssetTypeV1},
			tag:     "assettype-" + known.AssetTypeV1,
			outcome: "found_version",
		},
		{
			name:    "snapshot falls back to latest",
			args:    []string{"--uuid", series, "--version", "20300101-SNAPSHOT"},
			tag:     "assettype-" + known.AssetTypeV2,
			outcome: "found_default",
		},
		{
			name:    "unknown version",
			args:    []string{"--uuid", series, "--version", "19990101"},
			outcome: "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"resolve", "--kind", "concept"}, tt.args...)...)
			require.NoError(t, err)

			var result resolveOutput
			require.NoError(t, json.Unmarshal([]byte(out), &result))
			assert.Equal(t, tt.outcome, result.Outcome)
			if tt.tag == "" {
				assert.Nil(t, result.Term)
				return
			}
			require.NotNil(t, result.Term)
			assert.Equal(t, tt.tag, result.Term.Tag)
		})
	}
}

func TestResolve_RequiresIdentifier(t *testing.T) {
	_, err := execute(t, "resolve", "--kind", "concept")
	require.Error(t, err)

	_, err = execute(t, "resolve", "--uuid", "not-a-uuid")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestConcept(t *testing.T) {
	out, err := execute(t, "concept", "--uri", known.AssetTypeNamespace+"clinical-decision-rule")
	require.NoError(t, err)

	var result struct {
		Ancestors []struct{ Tag string } `json:"ancestors"`
		Closure   []struct{ Tag string } `json:"closure"`
		Outcome   string                 `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "found_entity", result.Outcome)
	assert.Len(t, result.Ancestors, 2)

	closure := make([]string, 0, len(result.Closure))
	for _, c := range result.Closure {
		closure = append(closure, c.Tag)
	}
	assert.Contains(t, closure, "decision-model")
	assert.Contains(t, closure, "knowledge-asset")
}

func TestCatalogue_ExtraDocument(t *testing.T) {
	path := writeCatalogue(t, "extra.yaml", fixtures.CatalogueYAML)

	out, err := execute(t, "--catalogue", path, "catalogue", "list", "--kind", "concept")
	require.NoError(t, err)
	assert.Contains(t, out, `"tag": "bottom"`)
	assert.Contains(t, out, `"tag": "doc-scheme-2"`)

	out, err = execute(t, "--catalogue", path, "decode", "model/gamma+txt")
	require.NoError(t, err)
	assert.Contains(t, out, `"tag": "gamma-v1"`)
}

func TestCatalogue_Validate(t *testing.T) {
	good := writeCatalogue(t, "good.yaml", fixtures.CatalogueYAML)
	bad := writeCatalogue(t, "bad.yaml", "terms:\n  - kind: nonsense\n    tag: x\n")

	out, err := execute(t, "catalogue", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)

	out, err = execute(t, "catalogue", "validate", good, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCatalogue)

	var results []validation
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.NotEmpty(t, results[1].Error)
}

func TestCatalogue_Schema(t *testing.T) {
	out, err := execute(t, "catalogue", "schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats", "model/dmn-v13+xml", "model/dmn-v13+xml", "model/klingon+xml")
	require.NoError(t, err)

	var report statsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, len(known.Languages()), report.Catalogue["language"])
	require.NotNil(t, report.Decode)
	assert.Equal(t, int64(1), report.Decode.Hits)
	assert.Equal(t, int64(2), report.Decode.Misses)

	dropped := report.Metrics["kmdp_codec_dropped_tokens_total"]
	require.Len(t, dropped, 1)
	assert.Equal(t, "language", dropped[0].Labels["kind"])
	assert.Equal(t, float64(1), dropped[0].Value)

	processed := report.Metrics["kmdp_decode_pool_processed_total"]
	require.Len(t, processed, 1)
	assert.Equal(t, float64(3), processed[0].Value)
}

func TestDecode_KeepsOrder(t *testing.T) {
	args := []string{"decode", "--workers", "4"}
	for _, tag := range []string{"dmn-v11", "dmn-v12", "dmn-v13", "bpmn-v2", "cmmn-v11", "owl-v2", "fhir-r4", "html"} {
		args = append(args, "model/"+tag)
	}
	out, err := execute(t, args...)
	require.NoError(t, err)

	var results []encodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(args)-3)
	for i, r := range results {
		assert.Equal(t, args[i+3], r.Text)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "uri", "id", "urn:a:b")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}
