// Package interop is the interoperability shim spec.md §1 describes as
// an external collaborator, out of the core's scope but with its
// contract given: converting lazy handles into the host language's
// native collection and number types for callers that want eager
// materialisation. lazyjson itself never builds this tree implicitly;
// interop.Materialize is the opt-in conversion.
package interop

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/shardwell/lazyjson"
)

// OrderedMap is the map type Materialize returns for a JSON object,
// resolving spec.md §9's open question in favour of preserving
// declaration order (property test 2) rather than committing to Go's
// unordered map[string]any.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]any)}
}

// Set appends key (or overwrites its value in place if already present,
// matching the "last one wins, iterated in order" shadowing rule of
// spec.md §4.C.iii).
func (m *OrderedMap) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value bound to key and whether it was present.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in declaration order.
func (m *OrderedMap) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// AsMap returns a plain map[string]any for callers that accept losing
// declaration order.
func (m *OrderedMap) AsMap() map[string]any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the map as a JSON object with members in
// declaration order, so re-encoding a materialised document does not
// scramble member order the way encoding a plain Go map would.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	out := append([]byte(nil), '{')
	for i, k := range m.keys {
		if i > 0 {
			out = append(out, ',')
		}
		kb, err := sonic.Marshal(k)
		if err != nil {
			return nil, err
		}
		out = append(out, kb...)
		out = append(out, ':')
		vb, err := sonic.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		out = append(out, vb...)
	}
	out = append(out, '}')
	return out, nil
}

// Materialize eagerly converts a lazy handle tree (as returned by
// lazyjson.Value/ValueAt) into native Go values: *lazyjson.Object
// becomes *OrderedMap, *lazyjson.Array becomes []any, *lazyjson.String
// becomes string, *lazyjson.Number becomes int64 when it converts
// exactly, float64 for any float form (a big.Float parse included), and
// uint64 or *big.Int for an integer too wide for int64, and
// bool/lazyjson.Null pass through as bool/nil.
func Materialize(v any) (any, error) {
	switch t := v.(type) {
	case *lazyjson.Object:
		out := NewOrderedMap()
		err := t.ForEach(func(key *lazyjson.String, value any) error {
			k, err := key.Decode()
			if err != nil {
				return err
			}
			mv, err := Materialize(value)
			if err != nil {
				return err
			}
			out.Set(k, mv)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	case *lazyjson.Array:
		var out []any
		it := t.Iter()
		for {
			elem, ok, err := it.Next()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			mv, err := Materialize(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, mv)
		}
		if out == nil {
			out = []any{}
		}
		return out, nil
	case *lazyjson.String:
		return t.Decode()
	case *lazyjson.Number:
		return materializeNumber(t), nil
	case bool:
		return t, nil
	case lazyjson.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("interop: unrecognised value %T", v)
	}
}

// Roundtrip materialises v (a handle tree from lazyjson.Value/ValueAt)
// and re-encodes it to JSON text with sonic, exercising property test 3
// ("parsing then re-serialising should produce an equivalent document
// when both are materialised eagerly"). sonic plays the same role here
// that it plays as a benchmark decode baseline in the teacher's own
// test suite, just on the encode side: a fast, widely-used encoder to
// cross-check against rather than hand-rolling a serialiser.
func Roundtrip(v any) ([]byte, error) {
	m, err := Materialize(v)
	if err != nil {
		return nil, err
	}
	return sonic.Marshal(m)
}

func materializeNumber(n *lazyjson.Number) any {
	if i, err := n.ToInt64(); err == nil {
		return i
	}
	if n.IsFloat() {
		f, _ := n.ToFloat64()
		return f
	}
	// Not an int64 and not a float: numUint64 or numBigInt, an exact
	// integer too wide for int64. Keep it exact rather than widening to
	// a lossy float64.
	bi := n.ToBigInt()
	if bi.IsUint64() {
		return bi.Uint64()
	}
	return bi
}
