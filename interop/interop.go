// Package interop converts fixed-point numbers to and from the types of
// [golang.org/x/image/math/fixed], which use 6 or 12 fractional bits.
//
// Narrowing conversions round half up in raw terms.
// Widening conversions are exact.
// Values that do not fit into the destination wrap around.
//
// [golang.org/x/image/math/fixed]: https://pkg.go.dev/golang.org/x/image/math/fixed
package interop

import (
	"github.com/govalues/fixed"
	imgfixed "golang.org/x/image/math/fixed"
)

const (
	shift26_6  = fixed.FracBits - 6  // fractional bits dropped by Int26_6
	shift52_12 = 12 - fixed.FracBits // fractional bits added by Int52_12
)

// ToInt26_6 returns the nearest [imgfixed.Int26_6] to d.
// Ties are rounded towards positive infinity.
func ToInt26_6(d fixed.Fixed) imgfixed.Int26_6 {
	return imgfixed.Int26_6((d.Raw() + 1<<(shift26_6-1)) >> shift26_6)
}

// FromInt26_6 returns a fixed-point number equal to v.
// Values outside of [[fixed.MinValue] / 16, [fixed.MaxValue] / 16] wrap around.
func FromInt26_6(v imgfixed.Int26_6) fixed.Fixed {
	return fixed.New(int32(v) << shift26_6)
}

// ToInt52_12 returns an [imgfixed.Int52_12] equal to d.
func ToInt52_12(d fixed.Fixed) imgfixed.Int52_12 {
	return imgfixed.Int52_12(int64(d.Raw()) << shift52_12)
}

// FromInt52_12 returns the nearest fixed-point number to v.
// Ties are rounded towards positive infinity.
func FromInt52_12(v imgfixed.Int52_12) fixed.Fixed {
	return fixed.New(int32((int64(v) + 1<<(shift52_12-1)) >> shift52_12))
}

// ToPoint26_6 returns the nearest [imgfixed.Point26_6] to (x, y).
func ToPoint26_6(x, y fixed.Fixed) imgfixed.Point26_6 {
	return imgfixed.Point26_6{X: ToInt26_6(x), Y: ToInt26_6(y)}
}

// FromPoint26_6 returns the coordinates of p.
func FromPoint26_6(p imgfixed.Point26_6) (x, y fixed.Fixed) {
	return FromInt26_6(p.X), FromInt26_6(p.Y)
}

// Rotate26_6 rotates p around the origin by angle degrees, counterclockwise
// in a y-up coordinate system.
// The rotation is computed with [fixed.Fixed.Sin] and [fixed.Fixed.Cos],
// so the result is the same on every platform.
func Rotate26_6(p imgfixed.Point26_6, angle fixed.Fixed) imgfixed.Point26_6 {
	x, y := FromPoint26_6(p)
	sin, cos := angle.Sin(), angle.Cos()
	return ToPoint26_6(
		x.Mul(cos).Sub(y.Mul(sin)),
		x.Mul(sin).Add(y.Mul(cos)),
	)
}
