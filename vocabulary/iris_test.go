package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVersion(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "trailing slash kept", uri: "http://a/", expected: "http://a/1.0.0/"},
		{name: "bare authority", uri: "http://a", expected: "http://a/1.0.0"},
		{name: "fragment kept", uri: "http://a/x/y#f", expected: "http://a/x/y/1.0.0#f"},
		{name: "deep path", uri: "http://a/x/y/z/w", expected: "http://a/x/y/z/w/1.0.0"},
		{name: "relative path", uri: "x/y", expected: "x/y/1.0.0"},
		{name: "absolute path", uri: "/x/y/", expected: "/x/y/1.0.0/"},
		{name: "empty fragment", uri: "http://a/x#", expected: "http://a/x/1.0.0#"},
		{name: "file scheme", uri: "file:///x/y", expected: "file:///x/y/1.0.0"},
		{name: "urn", uri: "urn:xid:aaa", expected: "urn:xid:aaa:1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyVersion(tt.uri, "1.0.0"))
		})
	}
}

func TestApplyVersionAt(t *testing.T) {
	const uri = "http://a/x/y/z/w/"

	tests := []struct {
		name     string
		position int
		expected string
	}{
		{name: "first segment", position: 0, expected: "http://a/1.0.0/x/y/z/w/"},
		{name: "second segment", position: 1, expected: "http://a/x/1.0.0/y/z/w/"},
		{name: "before last", position: -1, expected: "http://a/x/y/z/1.0.0/w/"},
		{name: "negative count equals length", position: -4, expected: "http://a/1.0.0/x/y/z/w/"},
		{name: "at length appends", position: 4, expected: "http://a/x/y/z/w/1.0.0/"},
		{name: "too large appends", position: 999, expected: "http://a/x/y/z/w/1.0.0/"},
		{name: "too negative appends", position: -999, expected: "http://a/x/y/z/w/1.0.0/"},
		{name: "append position", position: AppendPosition, expected: "http://a/x/y/z/w/1.0.0/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyVersionAt(uri, "1.0.0", tt.position))
		})
	}
}

func TestApplyVersionAt_Opaque(t *testing.T) {
	const urn = "urn:xid:aaa:bbb:ccc"

	assert.Equal(t, "urn:xid:1.0.0:aaa:bbb:ccc", ApplyVersionAt(urn, "1.0.0", 0))
	assert.Equal(t, "urn:xid:aaa:bbb:1.0.0:ccc", ApplyVersionAt(urn, "1.0.0", 2))
	assert.Equal(t, "urn:xid:aaa:bbb:1.0.0:ccc", ApplyVersionAt(urn, "1.0.0", -1))
	assert.Equal(t, "urn:xid:aaa:bbb:ccc:1.0.0", ApplyVersionAt(urn, "1.0.0", 999))
	assert.Equal(t, "urn:xid:aaa:bbb:ccc:1.0.0", ApplyVersionAt(urn, "1.0.0", -999))
	assert.Equal(t, "URN:xid:1.0.0:aaa", ApplyVersionAt("URN:xid:aaa", "1.0.0", 0))
}

func TestApplyVersionWith_Separator(t *testing.T) {
	assert.Equal(t, "a.b.1.0.c", ApplyVersionWith("a.b.c", "1.0", -1, "."))
	assert.Equal(t, "a.b.c.1.0", ApplyVersionWith("a.b.c", "1.0", AppendPosition, "."))
	// empty separator falls back to "/"
	assert.Equal(t, "http://a/x/v1", ApplyVersionWith("http://a/x", "v1", AppendPosition, ""))
	// urns ignore the separator
	assert.Equal(t, "urn:xid:v1:aaa", ApplyVersionWith("urn:xid:aaa", "v1", 0, "."))
}

func TestStripVersion(t *testing.T) {
	tests := []struct {
		name     string
		full     string
		base     string
		expected string
	}{
		{name: "base without separator", full: "http://a/x/1.0.0/", base: "http://a/x", expected: "1.0.0"},
		{name: "base with separator", full: "http://a/x/1.0.0/", base: "http://a/x/", expected: "1.0.0"},
		{name: "no trailing separator", full: "http://a/x/1.0.0", base: "http://a/x/", expected: "1.0.0"},
		{name: "fragment dropped", full: "http://a/x/1.0.0#f", base: "http://a/x", expected: "1.0.0"},
		{name: "shared digit prefix realigned", full: "http://a/x/10/", base: "http://a/x/1", expected: "10"},
		{name: "differing version realigned", full: "http://a/x/2.0.0", base: "http://a/x/1.0.0", expected: "2.0.0"},
		{name: "urn", full: "urn:xid:aaa:1.0.0", base: "urn:xid:aaa", expected: "1.0.0"},
		{name: "identical", full: "http://a/x", base: "http://a/x", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripVersion(tt.full, tt.base))
		})
	}
}

func TestStripVersion_InvertsApplyVersion(t *testing.T) {
	bases := []string{"http://a/x", "http://a/x/", "https://terms.kmdp.org/taxonomy/assettype/"}
	for _, base := range bases {
		assert.Equal(t, "20190801", StripVersion(ApplyVersion(base, "20190801"), base), base)
	}
}

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "fragment wins", uri: "http://a/x/y#dmn-v13", expected: "dmn-v13"},
		{name: "last path segment", uri: "https://terms.kmdp.org/lang/dmn-v13", expected: "dmn-v13"},
		{name: "trailing slash", uri: "https://terms.kmdp.org/lang/dmn-v13/", expected: "dmn-v13"},
		{name: "urn", uri: "urn:uuid:6c0a7a0e-1f30-4c6e-9d62-9f5f2f0b8f4e", expected: "6c0a7a0e-1f30-4c6e-9d62-9f5f2f0b8f4e"},
		{name: "urn with fragment", uri: "urn:xid:aaa#bbb", expected: "bbb"},
		{name: "bare token", uri: "dmn-v13", expected: "dmn-v13"},
		{name: "query ignored", uri: "http://a/x/owl2?format=ttl", expected: "owl2"},
		{name: "empty", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractIdentifier(tt.uri))
		})
	}
}

func TestNormalizeURI(t *testing.T) {
	assert.Equal(t, "http://a/x/20190801", NormalizeURI("HTTP://A/x/20190801/"))
	assert.Equal(t, "http://a/x", NormalizeURI(" http://a/x# "))
	assert.Equal(t, "urn:xid:aaa", NormalizeURI("urn:XID:aaa"))
	assert.Equal(t, "http://a/X", NormalizeURI("http://a/X"), "path case is significant")

	assert.True(t, SameNamespace("https://terms.kmdp.org/x/1/", "https://TERMS.kmdp.org/x/1"))
	assert.False(t, SameNamespace("https://terms.kmdp.org/x/1", "https://terms.kmdp.org/x/2"))
}

func TestIdentifier_VersionedNamespace(t *testing.T) {
	id := Identifier{Namespace: "https://terms.kmdp.org/x/", Version: "20190801"}
	assert.Equal(t, "https://terms.kmdp.org/x/20190801/", id.VersionedNamespace())

	id.Version = ""
	assert.Equal(t, "https://terms.kmdp.org/x/", id.VersionedNamespace())
}
