package lazyjson

import (
	"math"
	"math/big"
	"strconv"
)

// numKind tags which representation of Number is authoritative.
type numKind uint8

const (
	numInt64 numKind = iota
	numUint64
	numBigInt
	numFloat64
	numBigFloat
)

// Number is a lazily-parsed JSON number. It is a tagged union over
// {int64, uint64, big.Int, float64, big.Float}; the lazy parse walks
// the number's text once and picks the narrowest representation that
// holds it exactly, widening only as needed, in the fixed order of
// spec.md §9: narrow signed integer -> wide (uint64) integer ->
// arbitrary-precision integer -> narrow float -> arbitrary-precision
// float, with a "-0" special case detected before any widening.
type Number struct {
	src  Source
	off  int
	end  int
	text []byte

	kind numKind
	i64  int64
	u64  uint64
	big  *big.Int
	f64  float64
	bigF *big.Float
}

func newNumber(src Source, offset int) (*Number, error) {
	end, err := endOfNumber(src, offset)
	if err != nil {
		return nil, err
	}
	text := sourceSlice(src, offset, end)
	n := &Number{src: src, off: offset, end: end, text: text}
	if err := n.parse(); err != nil {
		return nil, err
	}
	return n, nil
}

// AsText returns the verbatim JSON text of the number.
func (n *Number) AsText() []byte {
	return n.text
}

func (n *Number) parse() error {
	text := n.text
	i := 0
	neg := false
	if i < len(text) && text[i] == '-' {
		neg = true
		i++
	}
	digitsStart := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	intDigits := text[digitsStart:i]

	hasFrac := i < len(text) && text[i] == '.'
	if hasFrac {
		j := i + 1
		for j < len(text) && isDigit(text[j]) {
			j++
		}
		i = j
	}
	hasExp := i < len(text) && (text[i] == 'e' || text[i] == 'E')

	// -0 special case, checked before any widening: a bare zero integer
	// with a negative sign and no fraction/exponent is negative-zero
	// float, distinct from integer zero.
	if neg && !hasFrac && !hasExp && isAllZero(intDigits) {
		n.kind = numFloat64
		n.f64 = math.Copysign(0, -1)
		return nil
	}

	if !hasFrac && !hasExp {
		return n.parseInteger(neg, intDigits)
	}

	// Decimal or exponent form: delegate to the platform float parser
	// first (cheap, handles the overwhelming majority of values),
	// falling back to arbitrary precision only when that parse loses
	// information relative to the captured text.
	if f, err := strconv.ParseFloat(string(text), 64); err == nil && !lossyFloat(text, f) {
		n.kind = numFloat64
		n.f64 = f
		return nil
	}

	bf, _, err := big.ParseFloat(string(text), 10, 200, big.ToNearestEven)
	if err != nil {
		return newParseError(n.src, n.off, ErrUnexpectedByte, "invalid number literal")
	}
	n.kind = numBigFloat
	n.bigF = bf
	return nil
}

// lossyFloat reports whether text carries more precision than float64
// can hold, triggering the arbitrary-precision float fallback of
// spec.md §4.F step 4. float64 only guarantees an exact value for up
// to 17 significant decimal digits; reformatting f and reparsing it
// (the previous approach) can never detect this, since FormatFloat's
// shortest representation is defined to round-trip to f by
// construction regardless of how much precision the original text
// carried. A nonzero literal that underflowed to 0 also counts as
// lossy, since the platform parser reports no error for underflow.
func lossyFloat(text []byte, f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return true
	}
	if f == 0 && significantDigits(text) > 0 {
		return true
	}
	return significantDigits(text) > 17
}

// significantDigits counts the significant decimal digits in a
// number's mantissa, excluding sign, decimal point and any exponent,
// and stripping leading and trailing zeros that carry no precision
// ("100" and "0.001" both count as a single significant digit).
func significantDigits(text []byte) int {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++
	}
	digits := make([]byte, 0, len(text))
	for i < len(text) && text[i] != 'e' && text[i] != 'E' {
		if text[i] != '.' {
			digits = append(digits, text[i])
		}
		i++
	}
	start := 0
	for start < len(digits)-1 && digits[start] == '0' {
		start++
	}
	digits = digits[start:]
	end := len(digits)
	for end > 0 && digits[end-1] == '0' {
		end--
	}
	return end
}

func isAllZero(digits []byte) bool {
	if len(digits) == 0 {
		return true
	}
	for _, d := range digits {
		if d != '0' {
			return false
		}
	}
	return true
}

func (n *Number) parseInteger(neg bool, digits []byte) error {
	if len(digits) == 0 {
		digits = []byte{'0'}
	}
	var mag uint64
	overflow := false
	for _, d := range digits {
		v := uint64(d - '0')
		if mag > (math.MaxUint64-v)/10 {
			overflow = true
			break
		}
		mag = mag*10 + v
	}
	if !overflow {
		if neg {
			if mag <= 1<<63 {
				n.kind = numInt64
				n.i64 = -int64(mag)
				if mag == 1<<63 {
					n.i64 = math.MinInt64
				}
				return nil
			}
		} else {
			if mag <= math.MaxInt64 {
				n.kind = numInt64
				n.i64 = int64(mag)
				return nil
			}
			n.kind = numUint64
			n.u64 = mag
			return nil
		}
	}
	bi := new(big.Int)
	bi.SetString(string(digits), 10)
	if neg {
		bi.Neg(bi)
	}
	n.kind = numBigInt
	n.big = bi
	return nil
}

// ToInt64 converts the number to an int64, failing with
// InexactConversionError if the value is not an exact integer in
// range.
func (n *Number) ToInt64() (int64, error) {
	switch n.kind {
	case numInt64:
		return n.i64, nil
	case numUint64:
		if n.u64 > math.MaxInt64 {
			return 0, &InexactConversionError{Kind: "int64", Text: string(n.text)}
		}
		return int64(n.u64), nil
	case numBigInt:
		if n.big.IsInt64() {
			return n.big.Int64(), nil
		}
		return 0, &InexactConversionError{Kind: "int64", Text: string(n.text)}
	case numFloat64:
		if n.f64 != math.Trunc(n.f64) || n.f64 < math.MinInt64 || n.f64 > math.MaxInt64 {
			return 0, &InexactConversionError{Kind: "int64", Text: string(n.text)}
		}
		return int64(n.f64), nil
	case numBigFloat:
		i, acc := n.bigF.Int(nil)
		if acc != big.Exact || !i.IsInt64() {
			return 0, &InexactConversionError{Kind: "int64", Text: string(n.text)}
		}
		return i.Int64(), nil
	}
	return 0, &InexactConversionError{Kind: "int64", Text: string(n.text)}
}

// ToFloat64 converts the number to a float64, rounding to the nearest
// representable value. A magnitude outside float64's range saturates
// to +/-Inf (or to 0 for a nonzero value too small to represent), and
// that saturated value is returned together with an
// InexactConversionError, the way the platform's own float parser
// pairs +/-Inf with a range error.
func (n *Number) ToFloat64() (float64, error) {
	switch n.kind {
	case numInt64:
		return float64(n.i64), nil
	case numUint64:
		return float64(n.u64), nil
	case numBigInt:
		f := new(big.Float).SetInt(n.big)
		v, _ := f.Float64()
		if math.IsInf(v, 0) {
			return v, &InexactConversionError{Kind: "float64", Text: string(n.text)}
		}
		return v, nil
	case numFloat64:
		return n.f64, nil
	case numBigFloat:
		v, _ := n.bigF.Float64()
		if math.IsInf(v, 0) || (v == 0 && n.bigF.Sign() != 0) {
			return v, &InexactConversionError{Kind: "float64", Text: string(n.text)}
		}
		return v, nil
	}
	return 0, nil
}

// ToBigInt converts the number to an arbitrary-precision integer,
// truncating any fractional part.
func (n *Number) ToBigInt() *big.Int {
	switch n.kind {
	case numInt64:
		return big.NewInt(n.i64)
	case numUint64:
		return new(big.Int).SetUint64(n.u64)
	case numBigInt:
		return new(big.Int).Set(n.big)
	case numFloat64:
		bi, _ := big.NewFloat(n.f64).Int(nil)
		return bi
	case numBigFloat:
		bi, _ := n.bigF.Int(nil)
		return bi
	}
	return new(big.Int)
}

// ToBigFloat converts the number to an arbitrary-precision float.
func (n *Number) ToBigFloat() *big.Float {
	switch n.kind {
	case numInt64:
		return new(big.Float).SetInt64(n.i64)
	case numUint64:
		return new(big.Float).SetUint64(n.u64)
	case numBigInt:
		return new(big.Float).SetInt(n.big)
	case numFloat64:
		return big.NewFloat(n.f64)
	case numBigFloat:
		return new(big.Float).Copy(n.bigF)
	}
	return new(big.Float)
}

// IsFloat reports whether the number was parsed in float form (including
// negative zero), as opposed to an integer form.
func (n *Number) IsFloat() bool {
	return n.kind == numFloat64 || n.kind == numBigFloat
}

func wrapNumber(bf *big.Float) *Number {
	return &Number{kind: numBigFloat, bigF: bf, text: []byte(bf.Text('g', -1))}
}

// Add returns n + other, promoting both through big.Float so that
// mixed integer/float operands combine without loss beyond the
// precision carried by either operand.
func (n *Number) Add(other *Number) *Number {
	return wrapNumber(new(big.Float).Add(n.ToBigFloat(), other.ToBigFloat()))
}

// Sub returns n - other.
func (n *Number) Sub(other *Number) *Number {
	return wrapNumber(new(big.Float).Sub(n.ToBigFloat(), other.ToBigFloat()))
}

// Mul returns n * other.
func (n *Number) Mul(other *Number) *Number {
	return wrapNumber(new(big.Float).Mul(n.ToBigFloat(), other.ToBigFloat()))
}

// Div returns n / other.
func (n *Number) Div(other *Number) *Number {
	return wrapNumber(new(big.Float).Quo(n.ToBigFloat(), other.ToBigFloat()))
}

// Cmp compares n and other numerically, returning -1, 0, or +1.
func (n *Number) Cmp(other *Number) int {
	return n.ToBigFloat().Cmp(other.ToBigFloat())
}
