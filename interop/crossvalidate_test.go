package interop_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/shardwell/lazyjson"
	"github.com/shardwell/lazyjson/interop"
)

// TestCrossValidateAgainstJSONIterator mirrors the teacher's own
// benchmarks_test.go pattern of decoding the same payload with a
// third-party JSON library for comparison (there: sonic/jsoniter as
// speed baselines; here: jsoniter as a correctness oracle), promoted
// from a benchmark to a structural-equality check of Materialize's
// output.
func TestCrossValidateAgainstJSONIterator(t *testing.T) {
	docs := []string{
		`{"Image":{"Width":800,"Height":600,"IDs":[116,943,234,38793]}}`,
		`{"foo": [1, 2, 3, "four"]}`,
		`{"a":1,"b":[1,2,3],"c":{"nested":true,"null":null}}`,
		`[1,2.5,-3,"s",true,false,null,[1,2],{"k":"v"}]`,
	}

	for _, doc := range docs {
		doc := doc
		t.Run(doc, func(t *testing.T) {
			v, err := lazyjson.Value(lazyjson.NewBuffer([]byte(doc)))
			require.NoError(t, err)

			got, err := interop.Materialize(v)
			require.NoError(t, err)

			var want any
			require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(doc, &want))

			requireStructurallyEqual(t, want, got)
		})
	}
}

// requireStructurallyEqual compares jsoniter's plain map[string]any
// output against interop's order-preserving OrderedMap, ignoring key
// order (jsoniter does not preserve it) while still checking every key
// and value.
func requireStructurallyEqual(t *testing.T, want, got any) {
	t.Helper()
	switch w := want.(type) {
	case map[string]any:
		g, ok := got.(*interop.OrderedMap)
		require.True(t, ok, "expected *interop.OrderedMap, got %T", got)
		require.Equal(t, len(w), g.Len())
		for k, wv := range w {
			gv, ok := g.Get(k)
			require.True(t, ok, "missing key %q", k)
			requireStructurallyEqual(t, wv, gv)
		}
	case []any:
		g, ok := got.([]any)
		require.True(t, ok, "expected []any, got %T", got)
		require.Equal(t, len(w), len(g))
		for i := range w {
			requireStructurallyEqual(t, w[i], g[i])
		}
	case float64:
		switch gv := got.(type) {
		case int64:
			require.Equal(t, w, float64(gv))
		case float64:
			require.Equal(t, w, gv)
		default:
			t.Fatalf("unexpected numeric type %T", got)
		}
	default:
		require.Equal(t, want, got)
	}
}
