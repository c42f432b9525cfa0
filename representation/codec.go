package representation

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary/known"
)

// Catalogue is the read contract the codec resolves tokens against.
// *vocabulary.Registry satisfies it.
type Catalogue interface {
	Lookup(kind vocabulary.Kind, tag string) (*vocabulary.Term, bool)
	AllOfKind(kind vocabulary.Kind) []*vocabulary.Term
}

// Encode renders d as a descriptor string. With includeVersion false the
// language tag is truncated at its first "-".
func Encode(d Descriptor, includeVersion bool) (string, error) {
	var b strings.Builder
	b.WriteString(Prefix)

	if d.Language != nil {
		if includeVersion {
			b.WriteString(d.Language.Tag())
		} else {
			b.WriteString(d.Language.BaseTag())
		}
	}

	if d.Profile != nil {
		b.WriteString("[")
		b.WriteString(d.Profile.Tag())
		b.WriteString("]")
	}

	switch {
	case d.Serialization != nil:
		b.WriteString("+")
		b.WriteString(serializationCode(d.Serialization, d.Language))
	case d.Format != nil:
		b.WriteString("+")
		b.WriteString(d.Format.Tag())
	}

	lexicon := make([]string, 0, len(d.Lexicon))
	for _, t := range d.Lexicon {
		if t != nil {
			lexicon = append(lexicon, t.Tag())
		}
	}
	if len(lexicon) > 0 {
		b.WriteString("+{")
		b.WriteString(strings.Join(lexicon, ","))
		b.WriteString("}")
	}

	text := b.String()
	if !Matches(text) {
		return "", errors.WrapFatal(fmt.Errorf("%w: %q", errors.ErrGrammarViolation, text),
			"representation", "Encode", "grammar check")
	}
	return text, nil
}

// MustEncode is Encode for descriptors known to be well formed.
func MustEncode(d Descriptor, includeVersion bool) string {
	text, err := Encode(d, includeVersion)
	if err != nil {
		panic(err)
	}
	return text
}

// serializationCode drops the "<languageTag>-" prefix of language specific
// serializations.
func serializationCode(ser, lang *vocabulary.Term) string {
	tag := ser.Tag()
	if lang == nil {
		return tag
	}
	return strings.TrimPrefix(tag, lang.Tag()+"-")
}

// Codec decodes descriptor strings against a catalogue.
type Codec struct {
	catalogue     Catalogue
	defaultFormat string
	logger        *slog.Logger
	metrics       *metric.Metrics
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger used for dropped tokens.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records codec operations and dropped tokens.
func WithMetrics(metrics *metric.Metrics) Option {
	return func(c *Codec) {
		c.metrics = metrics
	}
}

// WithDefaultFormat sets the format tag used when the code segment resolves
// to nothing. Defaults to plain text.
func WithDefaultFormat(tag string) Option {
	return func(c *Codec) {
		if tag != "" {
			c.defaultFormat = tag
		}
	}
}

// NewCodec creates a codec over catalogue.
func NewCodec(catalogue Catalogue, opts ...Option) *Codec {
	c := &Codec{
		catalogue:     catalogue,
		defaultFormat: known.DefaultFormatTag,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode is the package level Encode with logging and metrics.
func (c *Codec) Encode(d Descriptor, includeVersion bool) (string, error) {
	start := time.Now()
	text, err := Encode(d, includeVersion)
	if err != nil {
		c.logger.Error("Representation encode violated grammar", "error", err)
		c.record("encode", "error", start)
		if c.metrics != nil {
			c.metrics.RecordError("codec", errors.Classify(err).String())
		}
		return "", err
	}
	c.record("encode", "ok", start)
	return text, nil
}

// Decode parses text and resolves its tokens. Text that does not match the
// grammar yields false; unresolvable tokens are dropped.
func (c *Codec) Decode(text string) (Descriptor, bool) {
	start := time.Now()

	s, ok := parse(text)
	if !ok {
		c.record("decode", "no_match", start)
		return Descriptor{}, false
	}

	var d Descriptor
	if s.language != "" {
		d.Language = c.resolveLanguage(s)
		if d.Language == nil {
			c.dropped(vocabulary.KindLanguage, s.versionedLanguage())
		}
	}

	if s.profile != "" {
		d.Profile = c.lookup(vocabulary.KindProfile, s.profile)
	}

	if s.code != "" {
		d.Serialization, d.Format = c.resolveCode(s.code, d.Language)
	}

	for _, tag := range s.lexicon {
		if t := c.lookup(vocabulary.KindLexicon, tag); t != nil {
			d.Lexicon = append(d.Lexicon, t)
		}
	}

	c.record("decode", "ok", start)
	return d, true
}

// DecodeStrict is Decode with a non-matching text reported as an
// invalid-class ErrNoGrammarMatch.
func (c *Codec) DecodeStrict(text string) (Descriptor, error) {
	d, ok := c.Decode(text)
	if !ok {
		return Descriptor{}, errors.WrapInvalid(fmt.Errorf("%w: %q", errors.ErrNoGrammarMatch, text),
			"Codec", "DecodeStrict", "grammar match")
	}
	return d, nil
}

// resolveLanguage looks up the versioned tag exactly. An unversioned tag
// selects, among the entries equal to it or prefixed by "tag-", the one with
// the highest version precedence; ties keep registration order.
func (c *Codec) resolveLanguage(s segments) *vocabulary.Term {
	if s.version != "" {
		t, _ := c.catalogue.Lookup(vocabulary.KindLanguage, s.versionedLanguage())
		return t
	}

	var best *vocabulary.Term
	for _, t := range c.catalogue.AllOfKind(vocabulary.KindLanguage) {
		if t.Tag() != s.language && !strings.HasPrefix(t.Tag(), s.language+"-") {
			continue
		}
		if best == nil || semver.Compare(canonicalVersion(t.Version()), canonicalVersion(best.Version())) > 0 {
			best = t
		}
	}
	return best
}

// canonicalVersion prepares a version tag for semver comparison. Tags that
// are not semantic versions compare lowest.
func canonicalVersion(version string) string {
	if version == "" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// resolveCode tries the code as a serialization, bare and with the language
// prefix the encoder elides, then as a format, then the default format.
func (c *Codec) resolveCode(code string, lang *vocabulary.Term) (*vocabulary.Term, *vocabulary.Term) {
	candidates := []string{code}
	if lang != nil {
		candidates = append(candidates, lang.Tag()+"-"+code, lang.BaseTag()+"-"+code)
	}
	for _, tag := range candidates {
		if t, ok := c.catalogue.Lookup(vocabulary.KindSerialization, tag); ok {
			return t, nil
		}
	}

	if t, ok := c.catalogue.Lookup(vocabulary.KindFormat, code); ok {
		return nil, t
	}

	c.logger.Debug("Representation code resolved to default format", "code", code, "format", c.defaultFormat)
	if t, ok := c.catalogue.Lookup(vocabulary.KindFormat, c.defaultFormat); ok {
		return nil, t
	}
	return nil, known.TXT
}

func (c *Codec) lookup(kind vocabulary.Kind, tag string) *vocabulary.Term {
	t, ok := c.catalogue.Lookup(kind, tag)
	if !ok {
		c.dropped(kind, tag)
		return nil
	}
	return t
}

func (c *Codec) dropped(kind vocabulary.Kind, tag string) {
	c.logger.Debug("Dropped unresolvable representation token", "kind", kind, "tag", tag)
	if c.metrics != nil {
		c.metrics.RecordDroppedToken(kind.String())
	}
}

func (c *Codec) record(operation, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCodecOperation(operation, status)
	c.metrics.RecordDuration("codec", operation, time.Since(start))
}
