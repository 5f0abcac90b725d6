package fixed_test

import (
	"fmt"
	"math"

	"github.com/govalues/fixed"
)

type walker struct {
	x, y, heading fixed.Fixed
}

func (w *walker) step(speed, turn fixed.Fixed) {
	w.x = w.x.Add(speed.Mul(w.heading.Cos()))
	w.y = w.y.Add(speed.Mul(w.heading.Sin()))
	w.heading = w.heading.Add(turn)
}

// This example moves a walker along a circle: 48 steps of length 1.5,
// turning by 7.5 degrees after every step.
// Every machine running this code ends up with exactly the same position,
// which is what lockstep simulations rely on.
func Example_lockstepSimulation() {
	speed := fixed.MustParse("1.5")
	turn := fixed.MustParse("7.5")

	var w walker
	for i := 0; i < 48; i++ {
		w.step(speed, turn)
	}
	fmt.Println(w.x, w.y, w.heading)
	fmt.Println(w.x.Raw(), w.y.Raw())
	// Output:
	// 0.009766 0.009766 360
	// 10 10
}

func ExampleNew() {
	fmt.Println(fixed.New(1536))
	fmt.Println(fixed.New(-1))
	// Output:
	// 1.5
	// -0.000977
}

func ExampleFromInt() {
	fmt.Println(fixed.FromInt(-7))
	fmt.Println(fixed.FromInt(uint8(200)))
	// Output:
	// -7
	// 200
}

func ExampleFromFloat() {
	fmt.Println(fixed.FromFloat(1.25))
	fmt.Println(fixed.FromFloat(math.Pi))
	fmt.Println(fixed.FromFloat(float32(-0.5)))
	// Output:
	// 1.25
	// 3.141602
	// -0.5
}

func ExampleMix() {
	fmt.Println(fixed.Mix(1, 1, 2))
	fmt.Println(fixed.Mix(-1, 1, 4))
	fmt.Println(fixed.Mix(0, -1, 2))
	// Output:
	// 1.5 <nil>
	// -1.25 <nil>
	// 0 Mix(0, -1, 2) failed: ratio must be positive: invalid argument
}

func ExampleRatio() {
	fmt.Println(fixed.Ratio(1, 3))
	fmt.Println(fixed.Ratio(355, 113))
	// Output:
	// 0.333008
	// 3.141602
}

func ExampleParse() {
	fmt.Println(fixed.Parse("-1.5"))
	fmt.Println(fixed.Parse("0.1"))
	fmt.Println(fixed.Parse("3000000"))
	// Output:
	// -1.5 <nil>
	// 0.099609 <nil>
	// 0 parsing "3000000": fixed-point overflow
}

func ExampleMustParse() {
	fmt.Println(fixed.MustParse("3.14159265"))
	// Output:
	// 3.141602
}

func ExampleFixed_String() {
	d := fixed.MustParse("-12.34")
	fmt.Println(d.String())
	// Output:
	// -12.339844
}

func ExampleFixed_Raw() {
	d := fixed.MustParse("-1.5")
	fmt.Println(d.Raw())
	// Output:
	// -1536
}

func ExampleFixed_Int() {
	fmt.Println(fixed.MustParse("2.75").Int())
	fmt.Println(fixed.MustParse("-2.75").Int())
	// Output:
	// 2
	// -2
}

func ExampleFixed_Float64() {
	d := fixed.MustParse("0.1")
	fmt.Println(d.Float64())
	// Output:
	// 0.099609375
}

func ExampleFixed_Format() {
	d := fixed.MustParse("-12.34")
	fmt.Printf("%v\n", d)
	fmt.Printf("%.2f\n", d)
	fmt.Printf("%d\n", d)
	fmt.Printf("%q\n", d)
	// Output:
	// -12.339844
	// -12.34
	// -12
	// "-12.339844"
}

func ExampleFixed_MarshalText() {
	d := fixed.MustParse("1.5")
	b, err := d.MarshalText()
	fmt.Println(string(b), err)
	// Output:
	// 1.5 <nil>
}

func ExampleFixed_UnmarshalText() {
	var d fixed.Fixed
	err := d.UnmarshalText([]byte("-0.25"))
	fmt.Println(d, err)
	// Output:
	// -0.25 <nil>
}

func ExampleFixed_Scan() {
	var d fixed.Fixed
	err := d.Scan("1.5")
	fmt.Println(d, err)
	err = d.Scan(int64(-3))
	fmt.Println(d, err)
	// Output:
	// 1.5 <nil>
	// -3 <nil>
}

func ExampleFixed_Value() {
	d := fixed.MustParse("1.5")
	fmt.Println(d.Value())
	// Output:
	// 1.5 <nil>
}

func ExampleFixed_Add() {
	d := fixed.MustParse("1.5")
	e := fixed.MustParse("-2.25")
	fmt.Println(d.Add(e))
	// Output:
	// -0.75
}

func ExampleFixed_Sub() {
	d := fixed.MustParse("1.5")
	e := fixed.MustParse("-2.25")
	fmt.Println(d.Sub(e))
	// Output:
	// 3.75
}

func ExampleFixed_Mul() {
	d := fixed.MustParse("1.5")
	e := fixed.MustParse("-2.25")
	fmt.Println(d.Mul(e))
	// Output:
	// -3.375
}

func ExampleFixed_Quo() {
	d := fixed.MustParse("1.5")
	e := fixed.MustParse("-2.25")
	fmt.Println(d.Quo(e))
	// Output:
	// -0.666016
}

func ExampleFixed_Rem() {
	d := fixed.MustParse("5.5")
	e := fixed.MustParse("2")
	fmt.Println(d.Rem(e))
	// Output:
	// 1.5
}

func ExampleFixed_Cmp() {
	d := fixed.MustParse("-2")
	e := fixed.MustParse("1.5")
	fmt.Println(d.Cmp(d))
	fmt.Println(d.Cmp(e))
	fmt.Println(e.Cmp(d))
	// Output:
	// 0
	// -1
	// 1
}

func ExampleFixed_Floor() {
	fmt.Println(fixed.MustParse("2.5").Floor())
	fmt.Println(fixed.MustParse("-2.5").Floor())
	// Output:
	// 2
	// -3
}

func ExampleFixed_Ceil() {
	fmt.Println(fixed.MustParse("2.5").Ceil())
	fmt.Println(fixed.MustParse("-2.5").Ceil())
	// Output:
	// 3
	// -2
}

func ExampleFixed_Trunc() {
	fmt.Println(fixed.MustParse("2.5").Trunc())
	fmt.Println(fixed.MustParse("-2.5").Trunc())
	// Output:
	// 2
	// -2
}

func ExampleFixed_Round() {
	fmt.Println(fixed.MustParse("2.5").Round())
	fmt.Println(fixed.MustParse("-2.5").Round())
	// Output:
	// 3
	// -2
}

func ExampleFixed_Sqrt() {
	fmt.Println(fixed.MustParse("2").Sqrt())
	fmt.Println(fixed.MustParse("-1").Sqrt())
	// Output:
	// 1.414063 <nil>
	// 0 -1.Sqrt() failed: square root of negative number: argument out of domain
}

func ExampleFixed_Sin() {
	fmt.Println(fixed.FromInt(30).Sin())
	fmt.Println(fixed.FromInt(-90).Sin())
	// Output:
	// 0.5
	// -1
}

func ExampleFixed_Cos() {
	fmt.Println(fixed.FromInt(60).Cos())
	fmt.Println(fixed.FromInt(180).Cos())
	// Output:
	// 0.5
	// -1
}

func ExampleFixed_Tan() {
	fmt.Println(fixed.FromInt(45).Tan())
	// Output:
	// 1
}

func ExampleAtan2() {
	fmt.Println(fixed.Atan2(fixed.FromInt(3), fixed.FromInt(4)))
	fmt.Println(fixed.Atan2(fixed.FromInt(1), fixed.FromInt(-1)))
	fmt.Println(fixed.Atan2(fixed.Zero, fixed.Zero))
	// Output:
	// 36.886719 <nil>
	// 135 <nil>
	// 0 Atan2(0, 0) failed: angle of zero vector: argument out of domain
}

func ExampleFixed_Atan() {
	fmt.Println(fixed.One.Atan())
	// Output:
	// 45
}

func ExampleFixed_Asin() {
	fmt.Println(fixed.MustParse("0.5").Asin())
	// Output:
	// 30.011719 <nil>
}

func ExampleFixed_Acos() {
	fmt.Println(fixed.MustParse("0.5").Acos())
	// Output:
	// 59.988281 <nil>
}

func ExampleFixed_Pow() {
	fmt.Println(fixed.Two.Pow(fixed.Ten))
	fmt.Println(fixed.Two.Pow(fixed.MustParse("0.5")))
	fmt.Println(fixed.MustParse("1.5").Pow(fixed.FromInt(-2)))
	// Output:
	// 1024 <nil>
	// 1.414063 <nil>
	// 0.445313 <nil>
}

func ExampleFixed_Exp() {
	fmt.Println(fixed.One.Exp())
	fmt.Println(fixed.One.Neg().Exp())
	// Output:
	// 2.71875
	// 0.368164
}

func ExampleFixed_Log2() {
	fmt.Println(fixed.FromInt(8).Log2())
	fmt.Println(fixed.Ten.Log2())
	// Output:
	// 3 <nil>
	// 3.321289 <nil>
}

func ExampleFixed_Log() {
	fmt.Println(fixed.E.Log())
	// Output:
	// 1 <nil>
}

func ExampleFixed_Log10() {
	fmt.Println(fixed.FromInt(1000).Log10())
	// Output:
	// 2.99707 <nil>
}

func ExampleFixed_LogBase() {
	fmt.Println(fixed.FromInt(81).LogBase(fixed.FromInt(3)))
	// Output:
	// 4.001953 <nil>
}

func ExampleNewConst() {
	c, err := fixed.NewConst(math.Pi)
	fmt.Println(c, err)
	fmt.Println(c.Fixed())
	// Output:
	// 3.141592654 <nil>
	// 3.141602
}

func ExampleQuarterSine() {
	qs := fixed.QuarterSine()
	fmt.Println(len(qs), qs[0], qs[120], qs[360])
	// Output:
	// 361 0 0.5 1
}

func ExampleCordicAngles() {
	ca := fixed.CordicAngles()
	fmt.Println(len(ca), ca[0], ca[1])
	// Output:
	// 12 45 26.56543
}
