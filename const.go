package fixed

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Const type is a representation of a signed Q32.32 binary fixed-point number.
// It is used to author and validate the numeric constants consumed by the
// transcendental functions and to narrow them into [Fixed] with a single,
// well-defined rounding step.
//
// Const supports only the operations needed for authoring tables:
// construction, comparison, negation and conversions.
type Const struct {
	raw int64 // the raw value, scaled by 2^32
}

const (
	constFracBits = 32
	constOne      = int64(1) << constFracBits
	constFracMask = constOne - 1

	// narrowBits is the number of fractional bits discarded by [Const.Fixed].
	narrowBits = constFracBits - FracBits
)

var errConstOverflow = errors.New("constant overflow")

// NewConst returns a constant nearest to v.
// The fractional part of v is rounded half up to 32 bits.
//
// NewConst returns an error if v is NaN or lies outside of [-2^31, 2^31).
func NewConst(v float64) (Const, error) {
	if math.IsNaN(v) || v < math.MinInt32 || v >= math.MaxInt32+1 {
		return Const{}, fmt.Errorf("NewConst(%v) failed: %w", v, errConstOverflow)
	}
	floor := math.Floor(v)
	// The explicit conversion prevents the multiplication and the
	// addition from being fused.
	frac := float64((v-floor)*(1<<constFracBits)) + 0.5
	return Const{raw: int64(floor)<<constFracBits + int64(frac)}, nil
}

// ConstFromInt returns a constant equal to v.
func ConstFromInt(v int32) Const {
	return Const{raw: int64(v) << constFracBits}
}

// ConstFromRaw returns a constant with the given raw value.
// The numeric value of the result is raw / 2^32.
func ConstFromRaw(raw int64) Const {
	return Const{raw: raw}
}

// Raw returns the raw value of c.
func (c Const) Raw() int64 {
	return c.raw
}

// Fixed narrows c into a fixed-point number.
// Half a unit of the last [Fixed] place is added before the discarded
// bits are shifted out, so the result is the nearest fixed-point number
// with ties rounded towards positive infinity.
// Every table value used by this package goes through this conversion.
func (c Const) Fixed() Fixed {
	return Fixed{raw: int32((c.raw + 1<<(narrowBits-1)) >> narrowBits)}
}

// Int returns the integer part of c, truncated towards zero.
func (c Const) Int() int64 {
	if c.raw > 0 {
		return c.raw >> constFracBits
	}
	return (c.raw + constFracMask) >> constFracBits
}

// Float64 returns the nearest float64 value for c.
func (c Const) Float64() float64 {
	return float64(c.raw>>constFracBits) + float64(uint32(c.raw))/float64(constOne)
}

// Neg returns c with opposite sign.
func (c Const) Neg() Const {
	return Const{raw: -c.raw}
}

// Cmp compares c and e numerically and returns:
//
//	-1 if c < e
//	 0 if c == e
//	+1 if c > e
func (c Const) Cmp(e Const) int {
	switch {
	case c.raw < e.raw:
		return -1
	case c.raw > e.raw:
		return 1
	}
	return 0
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a constant with up to 9 digits after
// the decimal point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Const) String() string {
	mag := uint64(c.raw)
	if c.raw < 0 {
		mag = -mag
	}
	whole := mag >> constFracBits
	frac := (mag&uint64(constFracMask)*1_000_000_000 + uint64(constOne>>1)) >> constFracBits
	if frac == 1_000_000_000 {
		whole++
		frac = 0
	}

	buf := make([]byte, 0, 24)
	if c.raw < 0 && (whole != 0 || frac != 0) {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, whole, 10)
	if frac == 0 {
		return string(buf)
	}

	var digs [9]byte
	for i := len(digs) - 1; i >= 0; i-- {
		digs[i] = byte(frac%10) + '0'
		frac /= 10
	}
	n := len(digs)
	for n > 0 && digs[n-1] == '0' {
		n--
	}
	buf = append(buf, '.')
	buf = append(buf, digs[:n]...)
	return string(buf)
}
