package vocabulary

import (
	"math"
	"net/url"
	"strings"
)

// AppendPosition inserts the version after the last segment.
const AppendPosition = math.MaxInt

// DefaultSeparator delimits path segments of hierarchical URIs.
const DefaultSeparator = "/"

// ApplyVersion appends version as a new trailing segment of uri.
//
// Example:
//
//	ApplyVersion("http://a/x/y/z/w#frag", "1.0.0") // "http://a/x/y/z/w/1.0.0#frag"
func ApplyVersion(uri, version string) string {
	return ApplyVersionWith(uri, version, AppendPosition, DefaultSeparator)
}

// ApplyVersionAt inserts version as a new segment at position.
//
// Positions count the segments after the authority, from 0. A negative
// position -k inserts before the k-th segment from the end. Positions out of
// range in either direction append.
//
// Examples:
//
//	ApplyVersionAt("http://a/x/y/z/w/", "1.0.0", 0)      // "http://a/1.0.0/x/y/z/w/"
//	ApplyVersionAt("http://a/x/y/z/w/", "1.0.0", -1)     // "http://a/x/y/z/1.0.0/w/"
//	ApplyVersionAt("urn:xid:aaa:bbb:ccc", "1.0.0", 2)    // "urn:xid:aaa:bbb:1.0.0:ccc"
func ApplyVersionAt(uri, version string, position int) string {
	return ApplyVersionWith(uri, version, position, DefaultSeparator)
}

// ApplyVersionWith is ApplyVersionAt with a custom segment separator.
//
// URNs always use ":" and keep their "urn:<nid>" prefix. Hierarchical URIs
// keep their authority, leading and trailing separators, and fragment.
func ApplyVersionWith(uri, version string, position int, separator string) string {
	if isURN(uri) {
		return applyOpaque(uri, version, position)
	}
	if separator == "" {
		separator = DefaultSeparator
	}
	return applyHierarchical(uri, version, position, separator)
}

func isURN(uri string) bool {
	return len(uri) >= 4 && strings.EqualFold(uri[:4], "urn:")
}

func applyOpaque(uri, version string, position int) string {
	parts := strings.Split(uri, ":")
	keep := min(2, len(parts))

	out := append([]string(nil), parts[:keep]...)
	out = append(out, insertSegment(parts[keep:], version, position)...)
	return strings.Join(out, ":")
}

func applyHierarchical(uri, version string, position int, sep string) string {
	base, fragment, hasFragment := strings.Cut(uri, "#")
	authority, path := splitAuthority(base, sep)

	leading := strings.HasPrefix(path, sep)
	trailing := strings.HasSuffix(path, sep)
	path = strings.TrimSuffix(strings.TrimPrefix(path, sep), sep)

	var segments []string
	if path != "" {
		segments = strings.Split(path, sep)
	}
	segments = insertSegment(segments, version, position)

	var b strings.Builder
	b.WriteString(authority)
	if leading || authority != "" {
		b.WriteString(sep)
	}
	b.WriteString(strings.Join(segments, sep))
	if trailing {
		b.WriteString(sep)
	}
	if hasFragment {
		b.WriteString("#")
		b.WriteString(fragment)
	}
	return b.String()
}

// splitAuthority separates "scheme://host" from the path. Only slash
// separated URIs have an authority.
func splitAuthority(base, sep string) (string, string) {
	if sep != "/" {
		return "", base
	}
	i := strings.Index(base, "://")
	if i < 0 {
		return "", base
	}
	j := strings.Index(base[i+3:], "/")
	if j < 0 {
		return base, ""
	}
	return base[:i+3+j], base[i+3+j:]
}

func insertSegment(segments []string, version string, position int) []string {
	n := len(segments)
	at := n
	switch {
	case position >= 0 && position < n:
		at = position
	case position < 0 && n+position >= 0:
		at = n + position
	}

	out := make([]string, 0, n+1)
	out = append(out, segments[:at]...)
	out = append(out, version)
	return append(out, segments[at:]...)
}

// StripVersion returns the version fragment of full given the unversioned
// base it was built from: the text after their common prefix, realigned to a
// segment boundary, without surrounding separators or fragment.
//
// Example:
//
//	StripVersion("http://a/x/1.0.0/", "http://a/x") // "1.0.0"
func StripVersion(full, base string) string {
	n := 0
	for n < len(full) && n < len(base) && full[n] == base[n] {
		n++
	}

	atBoundary := n == 0 || n == len(full) || isSeparator(full[n]) || isSeparator(full[n-1])
	if n < len(base) || !atBoundary {
		n = strings.LastIndexAny(full[:n], "/:#") + 1
	}

	rest, _, _ := strings.Cut(full[n:], "#")
	return strings.Trim(rest, "/:")
}

func isSeparator(c byte) bool {
	return c == '/' || c == ':' || c == '#'
}

// ExtractIdentifier returns the lookup key of a URI: its fragment if any,
// otherwise the last ":" delimited part of a URN, otherwise the last path
// segment.
//
// Example:
//
//	ExtractIdentifier("https://terms.kmdp.org/lang/dmn-v13") // "dmn-v13"
func ExtractIdentifier(uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return ""
	}

	base, fragment, hasFragment := strings.Cut(uri, "#")
	if hasFragment && fragment != "" {
		return fragment
	}
	if isURN(base) {
		return base[strings.LastIndex(base, ":")+1:]
	}

	if u, err := url.Parse(base); err == nil && (u.Scheme != "" || u.Host != "") {
		if u.Opaque != "" {
			return u.Opaque[strings.LastIndex(u.Opaque, ":")+1:]
		}
		base = u.Path
	}
	base = strings.TrimRight(base, "/")
	return base[strings.LastIndex(base, "/")+1:]
}

// NormalizeURI returns the comparison form of a namespace URI: scheme and
// host lowercased, trailing "/" and empty fragment removed. Unparseable
// input is only trimmed.
func NormalizeURI(uri string) string {
	uri = strings.TrimSpace(uri)
	u, err := url.Parse(uri)
	if err != nil {
		return strings.TrimRight(uri, "/#")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Opaque != "" && u.Scheme == "urn" {
		nid, rest, _ := strings.Cut(u.Opaque, ":")
		u.Opaque = strings.ToLower(nid) + ":" + rest
		u.Opaque = strings.TrimSuffix(u.Opaque, ":")
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	return strings.TrimRight(u.String(), "#")
}

// SameNamespace compares two namespace URIs in their normalized form.
func SameNamespace(a, b string) bool {
	return NormalizeURI(a) == NormalizeURI(b)
}
