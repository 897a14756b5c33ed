package lazyjson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwell/lazyjson/internal/streamtest"
)

func TestDocumentParseAndRoot(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1,"b":[1,2,3]}`))
	require.NoError(t, err)
	v, err := doc.Root()
	require.NoError(t, err)
	_, ok := v.(*Object)
	require.True(t, ok)
}

func TestDocumentAtWalksPath(t *testing.T) {
	doc, err := Parse([]byte(`{"a":{"b":[10,20,30]}}`))
	require.NoError(t, err)
	v, err := doc.At(Key("a"), Key("b"), Index(2))
	require.NoError(t, err)
	n, ok := v.(*Number)
	require.True(t, ok)
	i, err := n.ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(20), i)
}

func TestDocumentAtWithCachePromotion(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1}`), WithCachePromotion(true))
	require.NoError(t, err)
	v1, err := doc.At(Key("a"))
	require.NoError(t, err)
	v2, err := doc.At(Key("a"))
	require.NoError(t, err)
	require.Same(t, v1, v2)
}

func TestDocumentParseStream(t *testing.T) {
	raw := []byte(`{"a":1,"b":2}`)
	r := streamtest.NewChunkReader(raw, 3)
	doc := ParseStream(r, WithStreamChunkSize(3))
	v, err := doc.At(Key("b"))
	require.NoError(t, err)
	n := v.(*Number)
	i, err := n.ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(2), i)
}

func TestDocumentValidateRejectsDeepNesting(t *testing.T) {
	doc, err := Parse([]byte(`[[[[[1]]]]]`), WithMaxDepth(3))
	require.NoError(t, err)
	err = doc.Validate()
	require.Error(t, err)
}

func TestDocumentValidateAcceptsShallowNesting(t *testing.T) {
	doc, err := Parse([]byte(`{"a":[1,2,{"b":3}]}`), WithMaxDepth(10))
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
}
