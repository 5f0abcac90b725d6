package fixed

import "fmt"

// MustNewConst is like [NewConst] but panics if the value is out of range.
// It simplifies safe initialization of global variables holding constants.
func MustNewConst(v float64) Const {
	c, err := NewConst(v)
	if err != nil {
		panic(fmt.Sprintf("MustNewConst(%v) failed: %v", v, err))
	}
	return c
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fixed-point numbers.
func MustParse(s string) Fixed {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustMix is like [Mix] but panics if the ratio is negative.
func MustMix(integer, numerator, denominator int) Fixed {
	d, err := Mix(integer, numerator, denominator)
	if err != nil {
		panic(fmt.Sprintf("MustMix(%v, %v, %v) failed: %v", integer, numerator, denominator, err))
	}
	return d
}

// MustSqrt is like [Fixed.Sqrt] but panics if d is negative.
func (d Fixed) MustSqrt() Fixed {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", d, err))
	}
	return f
}

// MustAtan2 is like [Atan2] but panics if both x and y are 0.
func MustAtan2(y, x Fixed) Fixed {
	f, err := Atan2(y, x)
	if err != nil {
		panic(fmt.Sprintf("MustAtan2(%v, %v) failed: %v", y, x, err))
	}
	return f
}

// MustAsin is like [Fixed.Asin] but panics if d lies outside of [-1, 1].
func (d Fixed) MustAsin() Fixed {
	f, err := d.Asin()
	if err != nil {
		panic(fmt.Sprintf("MustAsin(%v) failed: %v", d, err))
	}
	return f
}

// MustAcos is like [Fixed.Acos] but panics if d lies outside of [-1, 1].
func (d Fixed) MustAcos() Fixed {
	f, err := d.Acos()
	if err != nil {
		panic(fmt.Sprintf("MustAcos(%v) failed: %v", d, err))
	}
	return f
}

// MustPow is like [Fixed.Pow] but panics if computing error.
func (d Fixed) MustPow(exp Fixed) Fixed {
	f, err := d.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v, %v) failed: %v", d, exp, err))
	}
	return f
}

// MustLog2 is like [Fixed.Log2] but panics if d is not positive.
func (d Fixed) MustLog2() Fixed {
	f, err := d.Log2()
	if err != nil {
		panic(fmt.Sprintf("MustLog2(%v) failed: %v", d, err))
	}
	return f
}

// MustLog is like [Fixed.Log] but panics if d is not positive.
func (d Fixed) MustLog() Fixed {
	f, err := d.Log()
	if err != nil {
		panic(fmt.Sprintf("MustLog(%v) failed: %v", d, err))
	}
	return f
}

// MustLog10 is like [Fixed.Log10] but panics if d is not positive.
func (d Fixed) MustLog10() Fixed {
	f, err := d.Log10()
	if err != nil {
		panic(fmt.Sprintf("MustLog10(%v) failed: %v", d, err))
	}
	return f
}

// MustLogBase is like [Fixed.LogBase] but panics if computing error.
func (d Fixed) MustLogBase(base Fixed) Fixed {
	f, err := d.LogBase(base)
	if err != nil {
		panic(fmt.Sprintf("MustLogBase(%v, %v) failed: %v", d, base, err))
	}
	return f
}
