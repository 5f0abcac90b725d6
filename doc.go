/*
Package fixed implements immutable binary fixed-point numbers and a library
of transcendental functions computed with integer arithmetic only.
It is specifically designed for simulations and lockstep networked systems,
where every machine has to produce bit-identical results.

# Representation

[Fixed] is a struct with a single int32 field, the raw value.
The numerical value of a fixed-point number is calculated as raw / 2^10.
In other words, the format is Q21.10: a sign bit, 21 integer bits
and 10 fractional bits.

	| Property              | Value                  |
	| --------------------- | ---------------------- |
	| Fractional bits       | 10                     |
	| Resolution            | 1/1024 ≈ 0.000977      |
	| Minimum               | -2097152               |
	| Maximum               | 2097151.999023         |
	| Integer range         | [-2^21, 2^21 - 1]      |

Every value has exactly one representation, so fixed-point numbers can be
compared with == and used as map keys.

[Const] is a secondary Q32.32 type used to author the constant tables.
Every table value is converted into [Fixed] exactly once, using the
rounding rule of [Const.Fixed].

# Conversions

The package provides methods for converting fixed-point numbers:

  - from/to raw value:
    [New], [Fixed.Raw].
  - from/to string:
    [Parse], [Fixed.String], [Fixed.Format].
  - from/to integers:
    [FromInt], [Mix], [Ratio], [Fixed.Int].
  - from/to floats:
    [FromFloat], [Fixed.Float64], [Fixed.Float32].

[FromFloat] is a lossy convenience, it only considers four digits after
the decimal point. Results that must be reproducible should be built from
integers, ratios or strings instead.

# Operations

Arithmetic is carried out on the raw values:

  - [Fixed.Add], [Fixed.Sub], [Fixed.Neg], [Fixed.Lsh], [Fixed.Rsh]:
    plain 32-bit integer arithmetic.
  - [Fixed.Mul]: 64-bit product with half a unit added before the
    fractional bits are shifted out.
  - [Fixed.Quo], [Ratio]: 64-bit quotient at double scale, incremented and
    halved, which rounds to nearest.
  - [Fixed.Rem]: integer remainder, the sign follows the dividend.

There is no overflow detection.
Results that do not fit into 32 bits wrap around, exactly like int32.

# Transcendental functions

All angles are in degrees.

  - [Fixed.Sin], [Fixed.Cos], [Fixed.Tan]:
    a table of sines for every quarter of a degree between 0 and 90,
    extended to the full circle by symmetry and linearly interpolated.
  - [Atan2], [Fixed.Atan], [Fixed.Asin], [Fixed.Acos]:
    CORDIC vectoring with 12 iterations.
  - [Fixed.Sqrt]: integer Newton iteration with two extra bits for rounding.
  - [Fixed.Log2], [Fixed.Log], [Fixed.Log10], [Fixed.LogBase]:
    bit-by-bit extraction of the binary logarithm by repeated squaring.
  - [Fixed.Pow], [Fixed.Exp]:
    exact repeated squaring for integer exponents, otherwise a power of two
    times a Taylor series evaluated at 32 fractional bits.

The constant tables are built once, on the first call to any function that
needs them, and are never modified afterwards.

# Errors

Arithmetic methods never return errors.
Errors are returned in the following cases:

  - Domain error.
    [Fixed.Sqrt] of a negative number, [Fixed.Log2] of a non-positive
    number, [Atan2] of (0, 0), [Fixed.Asin] and [Fixed.Acos] outside of
    [-1, 1], [Mix] with a negative ratio and [NewConst] out of range.

Division by zero is not an error.
[Fixed.Quo], [Fixed.Rem], [Fixed.Tan] and [Ratio] panic with the runtime
integer divide error, the same way int32 division does.
*/
package fixed
