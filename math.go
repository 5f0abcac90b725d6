package fixed

import "fmt"

// Abs returns the absolute value of d.
// The absolute value of [MinValue] wraps around to [MinValue].
func (d Fixed) Abs() Fixed {
	if d.raw < 0 {
		return Fixed{raw: -d.raw}
	}
	return d
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Fixed) Sign() int {
	switch {
	case d.raw < 0:
		return -1
	case d.raw > 0:
		return 1
	}
	return 0
}

// Floor returns the greatest integer value less than or equal to d.
func (d Fixed) Floor() Fixed {
	return Fixed{raw: d.raw & IntMask}
}

// Ceil returns the least integer value greater than or equal to d.
func (d Fixed) Ceil() Fixed {
	return Fixed{raw: (d.raw + FracMask) & IntMask}
}

// Trunc returns the integer value of d rounded towards zero.
func (d Fixed) Trunc() Fixed {
	if d.raw < 0 {
		return d.Ceil()
	}
	return d.Floor()
}

// Round returns the nearest integer value to d.
// Ties are rounded towards positive infinity, so 2.5 becomes 3
// and -2.5 becomes -2.
func (d Fixed) Round() Fixed {
	return Fixed{raw: (d.raw + halfUnit) & IntMask}
}

// Min returns the minimum of d and e.
func (d Fixed) Min(e Fixed) Fixed {
	if d.raw < e.raw {
		return d
	}
	return e
}

// Max returns the maximum of d and e.
func (d Fixed) Max(e Fixed) Fixed {
	if d.raw > e.raw {
		return d
	}
	return e
}

// Sqrt returns the square root of d rounded to the nearest fixed-point number.
//
// Sqrt returns an error if d is negative.
func (d Fixed) Sqrt() (Fixed, error) {
	switch {
	case d.raw < 0:
		return Fixed{}, fmt.Errorf("%v.Sqrt() failed: square root of negative number: %w", d, errDomain)
	case d.raw == 0:
		return Zero, nil
	}
	// Two extra bits below the last place allow rounding the root.
	r := sqrtU64(uint64(d.raw) << (FracBits + 2))
	return Fixed{raw: int32(r+1) >> 1}, nil
}

// Cos returns the cosine of d, where d is an angle in degrees.
// Any angle is accepted, the result is periodic with a period of 360.
func (d Fixed) Cos() Fixed {
	return cosRaw(int64(d.raw))
}

// Sin returns the sine of d, where d is an angle in degrees.
// Any angle is accepted, the result is periodic with a period of 360.
func (d Fixed) Sin() Fixed {
	return cosRaw(int64(d.raw) - 90<<FracBits)
}

// Tan returns the tangent of d, where d is an angle in degrees.
//
// Tan panics with a runtime error if the cosine of d evaluates to 0.
func (d Fixed) Tan() Fixed {
	return d.Sin().Quo(d.Cos())
}

// cosRaw calculates the cosine of an angle given as a raw value in degrees.
// The angle is reduced to one period before the lookup, so the
// interpolation never sees an angle outside of [0, 360).
func cosRaw(raw int64) Fixed {
	raw %= 360 << FracBits
	if raw < 0 {
		raw = -raw
	}
	const step = 1 << interpBits
	t := raw & (step - 1)
	i := int(raw >> interpBits)
	if t == 0 {
		return cosLookup(i)
	}
	v1 := int64(cosLookup(i).raw)
	v2 := int64(cosLookup(i + 1).raw)
	return Fixed{raw: int32((v1*(step-t) + v2*t + step>>1) >> interpBits)}
}

// cosLookup returns the cosine of i / 2^quarterSineRes degrees using
// the symmetries of the quarter-sine table.
func cosLookup(i int) Fixed {
	const (
		q1 = 90 << quarterSineRes
		q2 = 180 << quarterSineRes
		q3 = 270 << quarterSineRes
		q4 = 360 << quarterSineRes
	)
	qs := tab().quarterSine
	i %= q4
	switch {
	case i < q1:
		return qs[q1-i]
	case i < q2:
		return qs[i-q1].Neg()
	case i < q3:
		return qs[q1-(i-q2)].Neg()
	default:
		return qs[i-q3]
	}
}

// Atan2 returns the angle in degrees between the positive x axis and
// the ray from the origin to the point (x, y).
// The result lies in [-180, 180].
//
// Atan2 returns an error if both x and y are 0.
func Atan2(y, x Fixed) (Fixed, error) {
	if x.raw == 0 && y.raw == 0 {
		return Fixed{}, fmt.Errorf("Atan2(%v, %v) failed: angle of zero vector: %w", y, x, errDomain)
	}

	var angle Fixed

	// Rotation into the right half-plane
	if x.raw < 0 {
		switch {
		case y.raw < 0:
			x, y = y.Neg(), x
			angle = FromInt(-90)
		case y.raw > 0:
			x, y = y, x.Neg()
			angle = FromInt(90)
		default:
			angle = FromInt(180)
		}
	}

	// Vectoring
	cordic := tab().cordic
	for i := 0; i < cordicIters; i++ {
		switch {
		case y.raw > 0:
			x, y = x.Add(y.Rsh(uint(i))), y.Sub(x.Rsh(uint(i)))
			angle = angle.Add(cordic[i])
		case y.raw < 0:
			x, y = x.Sub(y.Rsh(uint(i))), y.Add(x.Rsh(uint(i)))
			angle = angle.Sub(cordic[i])
		default:
			return angle, nil
		}
	}
	return angle, nil
}

// Atan returns the arctangent of d in degrees.
func (d Fixed) Atan() Fixed {
	f, err := Atan2(d, One)
	if err != nil {
		panic(fmt.Sprintf("%v.Atan() failed: %v", d, err)) // unexpected by design
	}
	return f
}

// Asin returns the arcsine of d in degrees.
//
// Asin returns an error if d lies outside of [-1, 1].
func (d Fixed) Asin() (Fixed, error) {
	c, err := One.Add(d).Mul(One.Sub(d)).Sqrt()
	if err != nil {
		return Fixed{}, fmt.Errorf("%v.Asin() failed: %w", d, err)
	}
	return Atan2(d, c)
}

// Acos returns the arccosine of d in degrees.
//
// Acos returns an error if d lies outside of [-1, 1].
func (d Fixed) Acos() (Fixed, error) {
	s, err := One.Add(d).Mul(One.Sub(d)).Sqrt()
	if err != nil {
		return Fixed{}, fmt.Errorf("%v.Acos() failed: %w", d, err)
	}
	return Atan2(s, d)
}

// Exp returns e raised to the power of d.
func (d Fixed) Exp() Fixed {
	f, err := E.Pow(d)
	if err != nil {
		panic(fmt.Sprintf("%v.Exp() failed: %v", d, err)) // unexpected by design
	}
	return f
}

// Pow returns d raised to the power of exp.
//
// If exp is an integer, the result is computed by repeated squaring
// with [Fixed.Mul], every intermediate product is rounded.
// Negative integer exponents use the reciprocal of d.
// Otherwise the result is 2^(exp × log₂(d)), where the fractional power of
// two is evaluated as a Taylor series at 32 fractional bits.
//
// Pow returns an error if exp is not an integer and d is not positive.
// Pow panics with a runtime error if d is 0 and exp is a negative integer.
func (d Fixed) Pow(exp Fixed) (Fixed, error) {
	// Special cases
	if d == One || exp.IsZero() {
		return One, nil
	}

	// Integer exponent
	if exp.IsInt() {
		return d.powInt(int(exp.raw >> FracBits)), nil
	}

	// Fractional exponent
	l, err := d.Log2()
	if err != nil {
		return Fixed{}, fmt.Errorf("%v.Pow(%v) failed: %w", d, exp, err)
	}
	exp = exp.Mul(l)
	n := (exp.raw + halfUnit) >> FracBits
	var factor Fixed
	if n < 0 {
		factor = One.Rsh(uint(-n))
	} else {
		factor = One.Lsh(uint(n))
	}

	t := tab()
	x := (int64(exp.raw-n<<FracBits)*t.ln2Const.raw + int64(halfUnit)) >> FracBits
	if x == 0 {
		return factor, nil
	}
	frac := expm1Q32(x, t.invFact)
	return Fixed{raw: int32(mulQ32(int64(factor.raw), frac) + int64(factor.raw))}, nil
}

// powInt calculates d^n by binary exponentiation.
func (d Fixed) powInt(n int) Fixed {
	if n < 0 {
		d = One.Quo(d)
		n = -n
	}
	f := One
	for n > 0 {
		if n&1 != 0 {
			f = f.Mul(d)
		}
		d = d.Mul(d)
		n >>= 1
	}
	return f
}

// Log2 returns the binary logarithm of d.
//
// Log2 returns an error if d is not positive.
func (d Fixed) Log2() (Fixed, error) {
	if d.raw <= 0 {
		return Fixed{}, fmt.Errorf("%v.Log2() failed: logarithm of non-positive number: %w", d, errDomain)
	}
	return Fixed{raw: log2Raw(uint32(d.raw))}, nil
}

// Log returns the natural logarithm of d.
//
// Log returns an error if d is not positive.
func (d Fixed) Log() (Fixed, error) {
	l, err := d.Log2()
	if err != nil {
		return Fixed{}, err
	}
	return l.Mul(tab().ln2), nil
}

// Log10 returns the decimal logarithm of d.
//
// Log10 returns an error if d is not positive.
func (d Fixed) Log10() (Fixed, error) {
	l, err := d.Log2()
	if err != nil {
		return Fixed{}, err
	}
	return l.Mul(tab().log10of2), nil
}

// LogBase returns the logarithm of d to the given base.
// Bases 2, [E] and 10 are delegated to [Fixed.Log2], [Fixed.Log] and
// [Fixed.Log10], other bases compute log₂(d) / log₂(base).
//
// LogBase returns an error if d or base is not positive.
// LogBase panics with a runtime error if base is 1.
func (d Fixed) LogBase(base Fixed) (Fixed, error) {
	switch base {
	case Two:
		return d.Log2()
	case E:
		return d.Log()
	case Ten:
		return d.Log10()
	}
	l, err := d.Log2()
	if err != nil {
		return Fixed{}, err
	}
	b, err := base.Log2()
	if err != nil {
		return Fixed{}, fmt.Errorf("%v.LogBase(%v) failed: %w", d, base, err)
	}
	return l.Quo(b), nil
}
