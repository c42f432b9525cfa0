package representation

import (
	"fmt"
	"strconv"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
	"github.com/API4KBs/kmdp-models-sub004/pkg/cache"
)

type decoded struct {
	descriptor Descriptor
	ok         bool
}

// MemoCodec memoizes a Codec in both directions. Negative decode results are
// cached too. Encode errors are not cached.
type MemoCodec struct {
	codec   *Codec
	decodes cache.Cache[decoded]
	encodes cache.Cache[string]
}

// NewMemoCodec wraps codec with caches built from config. A non-nil registry
// exports cache metrics under the codec_decode and codec_encode components.
func NewMemoCodec(codec *Codec, config cache.Config, registry *metric.MetricsRegistry) (*MemoCodec, error) {
	decodes, err := cache.New(config, cache.WithMetrics[decoded](registry, "codec_decode"))
	if err != nil {
		return nil, errors.Wrap(err, "MemoCodec", "NewMemoCodec", "decode cache creation")
	}
	encodes, err := cache.New(config, cache.WithMetrics[string](registry, "codec_encode"))
	if err != nil {
		return nil, errors.Wrap(err, "MemoCodec", "NewMemoCodec", "encode cache creation")
	}

	return &MemoCodec{codec: codec, decodes: decodes, encodes: encodes}, nil
}

// Decode returns the memoized result of Codec.Decode.
func (m *MemoCodec) Decode(text string) (Descriptor, bool) {
	if hit, ok := m.decodes.Get(text); ok {
		return hit.descriptor, hit.ok
	}

	d, ok := m.codec.Decode(text)
	if _, err := m.decodes.Set(text, decoded{descriptor: d, ok: ok}); err != nil {
		m.codec.logger.Debug("Decode memo skipped", "error", err)
	}
	return d, ok
}

// DecodeStrict is Decode with a non-matching text reported as an
// invalid-class ErrNoGrammarMatch.
func (m *MemoCodec) DecodeStrict(text string) (Descriptor, error) {
	d, ok := m.Decode(text)
	if !ok {
		return Descriptor{}, errors.WrapInvalid(fmt.Errorf("%w: %q", errors.ErrNoGrammarMatch, text),
			"MemoCodec", "DecodeStrict", "grammar match")
	}
	return d, nil
}

// Encode returns the memoized result of Codec.Encode.
func (m *MemoCodec) Encode(d Descriptor, includeVersion bool) (string, error) {
	key := d.key() + "|" + strconv.FormatBool(includeVersion)
	if text, ok := m.encodes.Get(key); ok {
		return text, nil
	}

	text, err := m.codec.Encode(d, includeVersion)
	if err != nil {
		return "", err
	}
	if _, err := m.encodes.Set(key, text); err != nil {
		m.codec.logger.Debug("Encode memo skipped", "error", err)
	}
	return text, nil
}

// DecodeStats returns the decode cache statistics, nil when caching is
// disabled.
func (m *MemoCodec) DecodeStats() *cache.Statistics {
	return m.decodes.Stats()
}

// EncodeStats returns the encode cache statistics, nil when caching is
// disabled.
func (m *MemoCodec) EncodeStats() *cache.Statistics {
	return m.encodes.Stats()
}
