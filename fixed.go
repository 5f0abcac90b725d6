package fixed

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Fixed type is a representation of a signed Q21.10 binary fixed-point number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Fixed is a struct with a single int32 field, the raw value.
// The numeric value of a fixed-point number is raw / 2^[FracBits].
// For example, a raw value of 1536 represents the value 1.5.
//
// Arithmetic never allocates and never reports overflow.
// Results that do not fit into 32 bits wrap around silently.
type Fixed struct {
	raw int32 // the raw value, scaled by 2^FracBits
}

const (
	FracBits  = 10                         // number of fractional bits
	IntBits   = 32 - FracBits              // number of integer bits, including the sign bit
	FracMask  = int32(1<<FracBits - 1)     // mask of the fractional part of a raw value
	IntMask   = ^FracMask                  // mask of the integer part of a raw value
	FracRange = int32(1 << FracBits)       // raw value of 1
	MinInt    = -1 << (IntBits - 1)        // minimum representable integer
	MaxInt    = 1<<(IntBits-1) - 1         // maximum representable integer
	halfUnit  = int32(1 << (FracBits - 1)) // raw value of 0.5
)

var (
	Zero     = Fixed{}                    // 0
	One      = Fixed{raw: FracRange}      // 1
	Two      = Fixed{raw: 2 * FracRange}  // 2
	Ten      = Fixed{raw: 10 * FracRange} // 10
	MinValue = Fixed{raw: -1 << 31}       // -2097152
	MaxValue = Fixed{raw: 1<<31 - 1}      // 2097151.999023
	Epsilon  = Fixed{raw: 1}              // 0.000977, the smallest positive value
)

var (
	errInvalidFixed    = errors.New("invalid fixed-point number")
	errFixedOverflow   = errors.New("fixed-point overflow")
	errInvalidArgument = errors.New("invalid argument")
	errDomain          = errors.New("argument out of domain")
)

// New returns a fixed-point number with the given raw value.
// The numeric value of the result is raw / 2^[FracBits].
func New(raw int32) Fixed {
	return Fixed{raw: raw}
}

// FromInt returns a fixed-point number equal to v.
// If v lies outside of [[MinInt], [MaxInt]], the result wraps around.
func FromInt[T constraints.Integer](v T) Fixed {
	return Fixed{raw: int32(v) << FracBits}
}

// FromFloat returns a fixed-point number approximately equal to v.
// Only four digits after the decimal point are taken into account,
// so the result may differ from v by more than [Epsilon].
// This is a convenience for literals and tests, never use it on a
// path that has to be reproducible across machines.
// NaN, infinities and values out of range produce undefined results.
func FromFloat[T constraints.Float](v T) Fixed {
	const m = 10_000
	return Fixed{raw: quoRaw(int64(float64(v)*m), m)}
}

// Mix returns a fixed-point number equal to integer + numerator / denominator.
// The sign of the fraction follows the sign of the integer.
//
// Mix returns an error if numerator or denominator is negative.
// Mix panics with a runtime error if denominator is 0.
func Mix(integer, numerator, denominator int) (Fixed, error) {
	if numerator < 0 || denominator < 0 {
		return Fixed{}, fmt.Errorf("Mix(%v, %v, %v) failed: ratio must be positive: %w", integer, numerator, denominator, errInvalidArgument)
	}
	frac := int32(int64(FracRange)*int64(numerator)/int64(denominator)) & FracMask
	if integer < 0 {
		frac = -frac
	}
	return Fixed{raw: int32(integer)<<FracBits + frac}, nil
}

// Ratio returns numerator / denominator rounded to the nearest
// fixed-point number.
//
// Ratio panics with a runtime error if denominator is 0.
func Ratio(numerator, denominator int) Fixed {
	return Fixed{raw: quoRaw(int64(numerator), int64(denominator))}
}

// quoRaw calculates n * 2^FracBits / d rounded to nearest.
// The quotient is computed at double scale and then halved.
func quoRaw(n, d int64) int32 {
	return int32(((n<<(FracBits+1))/d + 1) >> 1)
}

// Raw returns the raw value of d.
func (d Fixed) Raw() int32 {
	return d.raw
}

// Int returns the integer part of d.
// The fractional part is discarded, so the result is truncated towards zero.
// Also see method [Fixed.Floor].
func (d Fixed) Int() int {
	if d.raw > 0 {
		return int(d.raw >> FracBits)
	}
	return int((d.raw + FracMask) >> FracBits)
}

// Float64 returns the nearest float64 value for d.
// Every fixed-point number is exactly representable as float64.
func (d Fixed) Float64() float64 {
	return float64(d.raw>>FracBits) + float64(d.raw&FracMask)/float64(FracRange)
}

// Float32 returns the nearest float32 value for d.
func (d Fixed) Float32() float32 {
	return float32(d.Float64())
}

// IsZero returns true if d == 0.
func (d Fixed) IsZero() bool {
	return d.raw == 0
}

// IsNeg returns true if d < 0.
func (d Fixed) IsNeg() bool {
	return d.raw < 0
}

// IsPos returns true if d > 0.
func (d Fixed) IsPos() bool {
	return d.raw > 0
}

// IsInt returns true if the fractional part of d is zero.
func (d Fixed) IsInt() bool {
	return d.raw&FracMask == 0
}

// Neg returns d with opposite sign.
// The negation of [MinValue] wraps around to [MinValue].
func (d Fixed) Neg() Fixed {
	return Fixed{raw: -d.raw}
}

// Add returns the sum of d and e, wrapping around on overflow.
func (d Fixed) Add(e Fixed) Fixed {
	return Fixed{raw: d.raw + e.raw}
}

// Sub returns the difference of d and e, wrapping around on overflow.
func (d Fixed) Sub(e Fixed) Fixed {
	return Fixed{raw: d.raw - e.raw}
}

// Mul returns the product of d and e rounded to the nearest fixed-point number,
// ties are rounded up.
// The product is computed in 64 bits and wraps around when narrowed.
func (d Fixed) Mul(e Fixed) Fixed {
	return Fixed{raw: int32((int64(d.raw)*int64(e.raw) + int64(halfUnit)) >> FracBits)}
}

// Quo returns the quotient of d and e rounded to the nearest fixed-point number.
//
// Quo panics with a runtime error if e is 0.
// Callers are expected to guard divisions, Quo itself does not branch.
func (d Fixed) Quo(e Fixed) Fixed {
	return Fixed{raw: quoRaw(int64(d.raw), int64(e.raw))}
}

// Rem returns the remainder of d and e.
// The sign of the remainder follows the sign of d.
//
// Rem panics with a runtime error if e is 0.
func (d Fixed) Rem(e Fixed) Fixed {
	return Fixed{raw: d.raw % e.raw}
}

// Lsh returns d shifted left by n bits, i.e. multiplied by 2^n.
func (d Fixed) Lsh(n uint) Fixed {
	return Fixed{raw: d.raw << n}
}

// Rsh returns d arithmetically shifted right by n bits, i.e. divided by 2^n
// and rounded towards negative infinity.
func (d Fixed) Rsh(n uint) Fixed {
	return Fixed{raw: d.raw >> n}
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Fixed) Cmp(e Fixed) int {
	switch {
	case d.raw < e.raw:
		return -1
	case d.raw > e.raw:
		return 1
	}
	return 0
}

// Less returns true if d < e.
func (d Fixed) Less(e Fixed) bool {
	return d.raw < e.raw
}

// Parse converts a string to a fixed-point number rounded to the nearest
// representable value, ties are rounded away from zero.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Parse does not use floating-point arithmetic, the result is exact up
// to the final rounding.
//
// Parse returns an error:
//   - if the string does not represent a valid number;
//   - if the number lies outside of [[MinValue], [MaxValue]].
func Parse(s string) (Fixed, error) {
	var (
		pos      int
		width    int
		neg      bool
		whole    uint64
		frac     uint64
		scale    uint64
		hasdigit bool
	)

	width = len(s)
	scale = 1

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hasdigit = true
		whole = whole*10 + uint64(s[pos]-'0')
		if whole > 1<<(IntBits-1) {
			return Fixed{}, fmt.Errorf("parsing %q: %w", s, errFixedOverflow)
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasdigit = true
			// Digits beyond 18 cannot move the rounding by a full unit
			// unless they decide a tie, so only a sticky bit is kept.
			if scale < 1e18 {
				frac = frac*10 + uint64(s[pos]-'0')
				scale *= 10
			} else if s[pos] != '0' {
				frac |= 1
			}
			pos++
		}
	}

	if pos != width {
		return Fixed{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], errInvalidFixed)
	}
	if !hasdigit {
		return Fixed{}, fmt.Errorf("parsing %q: no digits: %w", s, errInvalidFixed)
	}

	// Rounding, frac / scale is in [0, 1), so hi < scale
	hi, lo := bits.Mul64(frac, uint64(FracRange))
	q, r := bits.Div64(hi, lo, scale)
	if r >= scale-r {
		q++
	}

	mag := whole<<FracBits + q
	switch {
	case !neg && mag > 1<<31-1:
		return Fixed{}, fmt.Errorf("parsing %q: %w", s, errFixedOverflow)
	case neg && mag > 1<<31:
		return Fixed{}, fmt.Errorf("parsing %q: %w", s, errFixedOverflow)
	}
	if neg {
		return Fixed{raw: int32(-int64(mag))}, nil
	}
	return Fixed{raw: int32(mag)}, nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fixed-point number.
// The fractional part is rounded half up to 6 digits and trailing zeros
// are removed. Negative numbers are rendered as a minus sign followed by
// the absolute value:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Fixed) String() string {
	return string(d.appendText(make([]byte, 0, 16)))
}

func (d Fixed) appendText(buf []byte) []byte {
	if d.raw < 0 {
		buf = append(buf, '-')
	}

	// Integer part
	whole := d.Int()
	if whole < 0 {
		whole = -whole
	}
	buf = strconv.AppendInt(buf, int64(whole), 10)

	// Fractional part
	frac := uint64(d.raw & FracMask)
	if frac == 0 {
		return buf
	}
	if d.raw < 0 {
		frac = uint64(FracRange) - frac
	}
	frac = (frac*1_000_000 + uint64(halfUnit)) >> FracBits

	var digs [6]byte
	for i := len(digs) - 1; i >= 0; i-- {
		digs[i] = byte(frac%10) + '0'
		frac /= 10
	}
	n := len(digs)
	for n > 0 && digs[n-1] == '0' {
		n--
	}
	buf = append(buf, '.')
	return append(buf, digs[:n]...)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Fixed) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fixed.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Fixed) MarshalText() ([]byte, error) {
	return d.appendText(nil), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [Parse], integers are converted
// with [FromInt] and floats with [FromFloat].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Fixed) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		if value < MinInt || value > MaxInt {
			return fmt.Errorf("converting %v: %w", value, errFixedOverflow)
		}
		*d = FromInt(value)
	case float64:
		if value < MinInt || value > MaxInt {
			return fmt.Errorf("converting %v: %w", value, errFixedOverflow)
		}
		*d = FromFloat(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, Fixed{}, errInvalidFixed)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Fixed) Value() (driver.Value, error) {
	return d.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -123.456
//	%q:    "-123.456"
//	%f:     -123.456055
//	%d:     -123
//
// Width and flags are supported for all verbs.
// Precision is only supported for %f verb and defaults to 6.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Fixed) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprintf(state, fmt.FormatString(state, 's'), d.String())
	case 'q':
		fmt.Fprintf(state, fmt.FormatString(state, 'q'), d.String())
	case 'f', 'F':
		fmt.Fprintf(state, fmt.FormatString(state, verb), d.Float64())
	case 'd':
		fmt.Fprintf(state, fmt.FormatString(state, 'd'), d.Int())
	default:
		fmt.Fprintf(state, "%%!%c(fixed.Fixed=%s)", verb, d.String())
	}
}
