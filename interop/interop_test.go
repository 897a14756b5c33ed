package interop_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwell/lazyjson"
	"github.com/shardwell/lazyjson/interop"
)

func TestMaterializeOrderPreserved(t *testing.T) {
	src := lazyjson.NewBuffer([]byte(`{"z":1,"a":2,"m":3}`))
	v, err := lazyjson.Value(src)
	require.NoError(t, err)

	m, err := interop.Materialize(v)
	require.NoError(t, err)

	om, ok := m.(*interop.OrderedMap)
	require.True(t, ok)
	require.Equal(t, []string{"z", "a", "m"}, om.Keys())
}

func TestMaterializeScalarsAndNull(t *testing.T) {
	src := lazyjson.NewBuffer([]byte(`[1, 1.5, "s", true, false, null]`))
	v, err := lazyjson.Value(src)
	require.NoError(t, err)

	m, err := interop.Materialize(v)
	require.NoError(t, err)

	arr, ok := m.([]any)
	require.True(t, ok)
	require.Equal(t, int64(1), arr[0])
	require.Equal(t, 1.5, arr[1])
	require.Equal(t, "s", arr[2])
	require.Equal(t, true, arr[3])
	require.Equal(t, false, arr[4])
	require.Nil(t, arr[5])
}

func TestRoundtripEncodesWithSonic(t *testing.T) {
	src := lazyjson.NewBuffer([]byte(`{"a":1,"b":[1,2,3],"c":"s","d":null}`))
	v, err := lazyjson.Value(src)
	require.NoError(t, err)

	out, err := interop.Roundtrip(v)
	require.NoError(t, err)

	src2 := lazyjson.NewBuffer(out)
	v2, err := lazyjson.Value(src2)
	require.NoError(t, err)
	m2, err := interop.Materialize(v2)
	require.NoError(t, err)
	reparsed := m2.(*interop.OrderedMap).AsMap()

	require.Equal(t, int64(1), reparsed["a"])
	require.Equal(t, "s", reparsed["c"])
	require.Nil(t, reparsed["d"])
}

func TestMaterializeRoundTripSum(t *testing.T) {
	src := lazyjson.NewBuffer([]byte(`{"Image":{"Width":800,"Height":600,"IDs":[116,943,234,38793]}}`))
	v, err := lazyjson.ValueAt(src, lazyjson.Key("Image"), lazyjson.Key("IDs"))
	require.NoError(t, err)

	arr := v.(*lazyjson.Array)
	it := arr.Iter()
	sum := int64(0)
	for {
		elem, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		n, err := elem.(*lazyjson.Number).ToInt64()
		require.NoError(t, err)
		sum += n
	}
	require.Equal(t, int64(40086), sum)
}

func TestMaterializeLargeIntegerStaysExact(t *testing.T) {
	src := lazyjson.NewBuffer([]byte(`[18446744073709551615, 123456789012345678901234567890]`))
	v, err := lazyjson.Value(src)
	require.NoError(t, err)

	m, err := interop.Materialize(v)
	require.NoError(t, err)

	arr, ok := m.([]any)
	require.True(t, ok)

	// Exactly uint64.MaxUint64: too wide for int64, but still exact as
	// a uint64, so it must not collapse into a lossy float64.
	require.Equal(t, uint64(18446744073709551615), arr[0])

	// Too wide even for uint64: must materialize as *big.Int with its
	// exact decimal value preserved, not a rounded float64.
	want, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	got, ok := arr[1].(*big.Int)
	require.True(t, ok)
	require.Equal(t, 0, want.Cmp(got))
}
