package representation

import (
	"regexp"
	"strings"
	"sync"
)

// Prefix opens every encoded descriptor.
const Prefix = "model/"

// GrammarPattern is the anchored descriptor grammar. Capture groups, in order:
// language tag, language version, bracketed profile, "+" prefixed
// serialization-or-format code, braced lexicon list.
const GrammarPattern = `^model/` +
	`(?:([^/\[\]+{},\s-]+)(?:-([^/\[\]+{},\s]+))?)?` +
	`(\[[^/\[\]+{},\s]+\])?` +
	`(\+[^/\[\]+{},\s]+)?` +
	`(\+\{[^/\[\]+{}\s]+\})?$`

var (
	grammarOnce sync.Once
	grammar     *regexp.Regexp
)

// Grammar returns the compiled descriptor grammar.
func Grammar() *regexp.Regexp {
	grammarOnce.Do(func() {
		grammar = regexp.MustCompile(GrammarPattern)
	})
	return grammar
}

// Matches reports whether text is a well-formed descriptor string.
func Matches(text string) bool {
	return Grammar().MatchString(text)
}

// segments are the captured groups of a descriptor string with structural
// punctuation removed.
type segments struct {
	language string
	version  string
	profile  string
	code     string
	lexicon  []string
}

// versionedLanguage recomposes the language tag as written.
func (s segments) versionedLanguage() string {
	if s.version == "" {
		return s.language
	}
	return s.language + "-" + s.version
}

func parse(text string) (segments, bool) {
	m := Grammar().FindStringSubmatch(text)
	if m == nil {
		return segments{}, false
	}

	s := segments{
		language: strings.TrimSpace(m[1]),
		version:  strings.TrimSpace(m[2]),
		profile:  strings.Trim(strings.TrimSpace(m[3]), "[]"),
		code:     strings.TrimPrefix(strings.TrimSpace(m[4]), "+"),
	}

	lex := strings.TrimPrefix(strings.TrimSpace(m[5]), "+")
	lex = strings.TrimSuffix(strings.TrimPrefix(lex, "{"), "}")
	for _, tag := range strings.Split(lex, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			s.lexicon = append(s.lexicon, tag)
		}
	}
	return s, true
}
