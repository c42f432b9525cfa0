package representation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
	"github.com/API4KBs/kmdp-models-sub004/pkg/cache"
	fixtures "github.com/API4KBs/kmdp-models-sub004/testutil"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

func TestMemoCodec_Decode(t *testing.T) {
	catalogue := fixtures.NewMockCatalogue(fixtures.Catalogue())
	memo, err := NewMemoCodec(NewCodec(catalogue), cache.DefaultConfig(), nil)
	require.NoError(t, err)

	first, ok := memo.Decode("model/alpha-v2[strict]+xml+{lex-a}")
	require.True(t, ok)
	calls := catalogue.Calls()
	assert.Positive(t, calls)

	second, ok := memo.Decode("model/alpha-v2[strict]+xml+{lex-a}")
	require.True(t, ok)
	assert.True(t, first.Equal(second))
	assert.Equal(t, calls, catalogue.Calls(), "served from the memo")

	_, ok = memo.Decode("model/a/b")
	assert.False(t, ok)
	_, ok = memo.Decode("model/a/b")
	assert.False(t, ok, "negative results are memoized")

	stats := memo.DecodeStats()
	require.NotNil(t, stats)
	assert.Equal(t, int64(2), stats.Hits())
	assert.Equal(t, int64(2), stats.Misses())
}

func TestMemoCodec_DecodeStrict(t *testing.T) {
	memo, err := NewMemoCodec(NewCodec(fixtures.Catalogue()), cache.DefaultConfig(), nil)
	require.NoError(t, err)

	d, err := memo.DecodeStrict("model/beta+json")
	require.NoError(t, err)
	assert.Equal(t, "beta", d.Language.Tag())

	_, err = memo.DecodeStrict("not a tag")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoGrammarMatch)
	assert.True(t, errors.IsInvalid(err))
}

func TestMemoCodec_Encode(t *testing.T) {
	reg := fixtures.Catalogue()
	memo, err := NewMemoCodec(NewCodec(reg), cache.DefaultConfig(), metric.NewMetricsRegistry())
	require.NoError(t, err)

	d := Descriptor{
		Language:      fixtures.MustLookup(reg, vocabulary.KindLanguage, "alpha-v2"),
		Serialization: fixtures.MustLookup(reg, vocabulary.KindSerialization, "alpha-v2-compact"),
	}

	versioned, err := memo.Encode(d, true)
	require.NoError(t, err)
	assert.Equal(t, "model/alpha-v2+compact", versioned)

	unversioned, err := memo.Encode(d, false)
	require.NoError(t, err)
	assert.Equal(t, "model/alpha+compact", unversioned, "flag is part of the memo key")

	again, err := memo.Encode(d, true)
	require.NoError(t, err)
	assert.Equal(t, versioned, again)
	assert.Equal(t, int64(1), memo.EncodeStats().Hits())

	_, err = memo.Encode(Descriptor{Profile: &vocabulary.Term{}}, true)
	assert.Error(t, err)
	_, err = memo.Encode(Descriptor{Profile: &vocabulary.Term{}}, true)
	assert.Error(t, err, "errors are not memoized")
}

func TestMemoCodec_LexiconOrderIsKept(t *testing.T) {
	reg := fixtures.Catalogue()
	memo, err := NewMemoCodec(NewCodec(reg), cache.DefaultConfig(), nil)
	require.NoError(t, err)

	a := fixtures.MustLookup(reg, vocabulary.KindLexicon, "lex-a")
	b := fixtures.MustLookup(reg, vocabulary.KindLexicon, "lex-b")

	ab, err := memo.Encode(Descriptor{Lexicon: []*vocabulary.Term{a, b}}, true)
	require.NoError(t, err)
	ba, err := memo.Encode(Descriptor{Lexicon: []*vocabulary.Term{b, a}}, true)
	require.NoError(t, err)

	assert.Equal(t, "model/+{lex-a,lex-b}", ab)
	assert.Equal(t, "model/+{lex-b,lex-a}", ba)
}

func TestMemoCodec_Disabled(t *testing.T) {
	config := cache.DefaultConfig()
	config.Enabled = false

	memo, err := NewMemoCodec(NewCodec(fixtures.Catalogue()), config, nil)
	require.NoError(t, err)

	_, ok := memo.Decode("model/beta")
	assert.True(t, ok)
	assert.Nil(t, memo.DecodeStats())
}

func TestMemoCodec_InvalidConfig(t *testing.T) {
	config := cache.DefaultConfig()
	config.MaxSize = 0

	_, err := NewMemoCodec(NewCodec(fixtures.Catalogue()), config, nil)
	assert.Error(t, err)
}
