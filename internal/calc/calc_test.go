package calc

import (
	"errors"
	"slices"
	"testing"

	"github.com/govalues/fixed"
)

func TestEval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input, want string
		}{
			{"1.5", "1.5"},
			{"pi", "3.141602"},
			{"neg E", "-2.71875"},
			{"- 5 3", "2"},
			{"- 3 5", "-2"},
			{"/ 1 3", "0.333008"},
			{"% 5.5 2", "1.5"},
			{"* 10 + 1.25 sin 30", "17.5"},
			{"max 1 min 5 3", "3"},
			{"floor -2.5", "-3"},
			{"ceil -2.5", "-2"},
			{"round 2.5", "3"},
			{"trunc -2.5", "-2"},
			{"abs -7", "7"},
			{"cos 60", "0.5"},
			{"tan 45", "1"},
			{"atan 1", "45"},
			{"atan2 1 -1", "135"},
			{"asin 0.5", "30.011719"},
			{"acos 1", "0"},
			{"sqrt 2", "1.414063"},
			{"pow 2 10", "1024"},
			{"pow 2 0.5", "1.414063"},
			{"pow 1.5 -2", "0.445313"},
			{"exp 1", "2.71875"},
			{"ln e", "1"},
			{"log2 8", "3"},
			{"log10 1000", "2.99707"},
			{"log 8 2", "3"},
			{"log 81 3", "4.001953"},
		}
		for _, tt := range tests {
			got, err := Eval(tt.input)
			if err != nil {
				t.Errorf("Eval(%q) failed: %v", tt.input, err)
				continue
			}
			want := fixed.MustParse(tt.want)
			if got != want {
				t.Errorf("Eval(%q) = %q, want %q", tt.input, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"no tokens":         "",
			"blank":             "   ",
			"unknown token":     "foo",
			"missing operand":   "+ 1",
			"extra operand":     "1 2",
			"negative sqrt":     "sqrt -1",
			"log of zero":       "ln 0",
			"asin out of range": "asin 2",
			"zero vector":       "atan2 0 0",
			"overflow":          "+ 1 3000000",
		}
		for name, input := range tests {
			_, err := Eval(input)
			if err == nil {
				t.Errorf("Eval(%q) did not fail (%v)", input, name)
			}
			if errors.Is(err, ErrDivisionByZero) {
				t.Errorf("Eval(%q) failed with %v, want another error (%v)", input, err, name)
			}
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		tests := []string{
			"/ 1 0",
			"% 1 0",
			"tan 90",
			"tan -270",
			"pow 0 -1",
			"log 8 1",
		}
		for _, input := range tests {
			_, err := Eval(input)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("Eval(%q) failed with %v, want %v", input, err, ErrDivisionByZero)
			}
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := Apply("atan2", fixed.FromInt(3), fixed.FromInt(4))
		if err != nil {
			t.Fatalf("Apply(atan2) failed: %v", err)
		}
		want := fixed.MustAtan2(fixed.FromInt(3), fixed.FromInt(4))
		if got != want {
			t.Errorf("Apply(atan2) = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := Apply("nope", fixed.One); err == nil {
			t.Errorf("Apply(nope) did not fail")
		}
		if _, err := Apply("sin", fixed.One, fixed.One); err == nil {
			t.Errorf("Apply(sin) with 2 operands did not fail")
		}
		if _, err := Apply("pow", fixed.One); err == nil {
			t.Errorf("Apply(pow) with 1 operand did not fail")
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		tests := []struct {
			name string
			args []fixed.Fixed
		}{
			{"/", []fixed.Fixed{fixed.One, fixed.Zero}},
			{"%", []fixed.Fixed{fixed.One, fixed.Zero}},
			{"%", []fixed.Fixed{fixed.MinValue, fixed.Zero}},
			{"tan", []fixed.Fixed{fixed.FromInt(90)}},
		}
		for _, tt := range tests {
			got, err := Apply(tt.name, tt.args...)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("Apply(%q, %v) failed with %v, want %v", tt.name, tt.args, err, ErrDivisionByZero)
				continue
			}
			if got != fixed.Zero {
				t.Errorf("Apply(%q, %v) = %q, want %q", tt.name, tt.args, got, fixed.Zero)
			}
		}
	})
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(operators) {
		t.Errorf("len(Names()) = %v, want %v", len(names), len(operators))
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
	for _, name := range names {
		if _, ok := Arity(name); !ok {
			t.Errorf("Arity(%q) returned false", name)
		}
	}
	if _, ok := Arity("pi"); ok {
		t.Errorf("Arity(%q) returned true", "pi")
	}
}

func FuzzEval(f *testing.F) {
	for _, s := range []string{"+ 1 2", "sin 30", "/ 1 0", "pow -2 0.5", "log 8 1"} {
		f.Add(s)
	}

	f.Fuzz(
		func(t *testing.T, input string) {
			// Eval must report errors and never panic.
			_, _ = Eval(input)
		},
	)
}
