package fixed

import "modernc.org/mathutil"

// maxSqrtIters bounds the Newton iteration in sqrtU64.
// Starting above the root, the iteration converges in far fewer steps
// for any 64-bit input.
const maxSqrtIters = 64

// sqrtU64 calculates ⌊√n⌋ using integer Newton iteration.
// The iteration starts from a power of two that is not less than the root
// and stops as soon as the next iterate does not decrease.
func sqrtU64(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := uint64(1) << ((mathutil.BitLenUint64(n) + 1) / 2)
	for i := 0; i < maxSqrtIters; i++ {
		y := (x + n/x) >> 1
		if y >= x {
			break
		}
		x = y
	}
	return x
}

// log2Raw calculates log₂(x / 2^FracBits) scaled by 2^FracBits for x > 0.
// The argument is normalized into [1, 2), then every squaring step
// yields one bit of the fraction.
func log2Raw(x uint32) int32 {
	var y int32
	for x < 1<<FracBits {
		x <<= 1
		y -= 1 << FracBits
	}
	for x >= 2<<FracBits {
		x >>= 1
		y += 1 << FracBits
	}
	z := uint64(x)
	b := int32(1 << (FracBits - 1))
	for i := 0; i < FracBits; i++ {
		z = (z * z) >> FracBits
		if z >= 2<<FracBits {
			z >>= 1
			y += b
		}
		b >>= 1
	}
	return y
}

// mulQ32 calculates x * y / 2^32 rounded half up, where x and y are
// Q32.32 values.
// The product must fit into 64 bits, so |x| * |y| < 2^63.
func mulQ32(x, y int64) int64 {
	return (x*y + 1<<(constFracBits-1)) >> constFracBits
}

// expm1Q32 calculates e^x - 1 using the Taylor series with coefficients
// taken from the inverse factorial table, where x is a Q32.32 value with
// |x| ≤ 1/2.
// Every product is rounded back to 32 fractional bits.
func expm1Q32(x int64, invFact []Const) int64 {
	sum, term := x, x
	for k := 2; k < len(invFact); k++ {
		if term == 0 {
			break
		}
		term = mulQ32(term, x)
		sum += mulQ32(term, invFact[k].raw)
	}
	return sum
}
