// Package calc evaluates expressions written in prefix (Polish) notation,
// such as "* 10 + 1.25 sin 30".
//
// Operands are fixed-point numbers in canonical form or one of the
// constants "pi" and "e".
// Operators are applied to the operands that follow them.
package calc

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/govalues/fixed"
	"github.com/samber/lo"
)

// ErrDivisionByZero is returned when an operator divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

type operator struct {
	arity int
	apply func(args []fixed.Fixed) (fixed.Fixed, error)
}

func unary(f func(fixed.Fixed) fixed.Fixed) operator {
	return operator{1, func(args []fixed.Fixed) (fixed.Fixed, error) {
		return f(args[0]), nil
	}}
}

func unaryErr(f func(fixed.Fixed) (fixed.Fixed, error)) operator {
	return operator{1, func(args []fixed.Fixed) (fixed.Fixed, error) {
		return f(args[0])
	}}
}

func binary(f func(fixed.Fixed, fixed.Fixed) fixed.Fixed) operator {
	return operator{2, func(args []fixed.Fixed) (fixed.Fixed, error) {
		return f(args[0], args[1]), nil
	}}
}

func binaryErr(f func(fixed.Fixed, fixed.Fixed) (fixed.Fixed, error)) operator {
	return operator{2, func(args []fixed.Fixed) (fixed.Fixed, error) {
		return f(args[0], args[1])
	}}
}

var operators = map[string]operator{
	// Binary
	"+":     binary(fixed.Fixed.Add),
	"-":     binary(fixed.Fixed.Sub),
	"*":     binary(fixed.Fixed.Mul),
	"/":     binary(fixed.Fixed.Quo),
	"%":     binary(fixed.Fixed.Rem),
	"min":   binary(fixed.Fixed.Min),
	"max":   binary(fixed.Fixed.Max),
	"pow":   binaryErr(fixed.Fixed.Pow),
	"atan2": binaryErr(fixed.Atan2),
	"log":   binaryErr(fixed.Fixed.LogBase),

	// Unary
	"neg":   unary(fixed.Fixed.Neg),
	"abs":   unary(fixed.Fixed.Abs),
	"floor": unary(fixed.Fixed.Floor),
	"ceil":  unary(fixed.Fixed.Ceil),
	"round": unary(fixed.Fixed.Round),
	"trunc": unary(fixed.Fixed.Trunc),
	"sin":   unary(fixed.Fixed.Sin),
	"cos":   unary(fixed.Fixed.Cos),
	"tan":   unary(fixed.Fixed.Tan),
	"atan":  unary(fixed.Fixed.Atan),
	"exp":   unary(fixed.Fixed.Exp),
	"sqrt":  unaryErr(fixed.Fixed.Sqrt),
	"asin":  unaryErr(fixed.Fixed.Asin),
	"acos":  unaryErr(fixed.Fixed.Acos),
	"ln":    unaryErr(fixed.Fixed.Log),
	"log2":  unaryErr(fixed.Fixed.Log2),
	"log10": unaryErr(fixed.Fixed.Log10),
}

var constants = map[string]fixed.Fixed{
	"pi": fixed.Pi,
	"e":  fixed.E,
}

// Names returns the sorted names of all operators.
func Names() []string {
	names := lo.Keys(operators)
	slices.Sort(names)
	return names
}

// Arity returns the number of operands taken by the operator.
// The second result is false if there is no such operator.
func Arity(name string) (int, bool) {
	op, ok := operators[name]
	return op.arity, ok
}

// Apply applies the operator to the arguments.
// Division by zero is reported as [ErrDivisionByZero] instead of a panic.
func Apply(name string, args ...fixed.Fixed) (d fixed.Fixed, err error) {
	op, ok := operators[name]
	if !ok {
		return fixed.Fixed{}, fmt.Errorf("unknown operator %q", name)
	}
	if len(args) != op.arity {
		return fixed.Fixed{}, fmt.Errorf("operator %q takes %v operands, got %v", name, op.arity, len(args))
	}
	defer func() {
		if r := recover(); r != nil {
			if !isDivideByZero(r) {
				panic(r)
			}
			d, err = fixed.Fixed{}, fmt.Errorf("evaluating %v %v: %w", name, joinArgs(args), ErrDivisionByZero)
		}
	}()
	return op.apply(args)
}

func isDivideByZero(r any) bool {
	err, ok := r.(runtime.Error)
	return ok && strings.Contains(err.Error(), "divide by zero")
}

func joinArgs(args []fixed.Fixed) string {
	return strings.Join(lo.Map(args, func(d fixed.Fixed, _ int) string { return d.String() }), " ")
}

// Eval evaluates the expression.
func Eval(input string) (fixed.Fixed, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return fixed.Fixed{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return fixed.Fixed{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return fixed.Fixed{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(strings.ToLower(input))
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]fixed.Fixed, error) {
	stack := make([]fixed.Fixed, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if op, ok := operators[token]; ok {
			stack, err = processOperator(stack, token, op.arity)
		} else {
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []fixed.Fixed, token string, arity int) ([]fixed.Fixed, error) {
	if len(stack) < arity {
		return nil, fmt.Errorf("not enough operands")
	}
	args := make([]fixed.Fixed, arity)
	for i := range args {
		args[i] = stack[len(stack)-1-i]
	}
	stack = stack[:len(stack)-arity]
	result, err := Apply(token, args...)
	if err != nil {
		return nil, err
	}
	return append(stack, result), nil
}

func processOperand(stack []fixed.Fixed, token string) ([]fixed.Fixed, error) {
	if d, ok := constants[token]; ok {
		return append(stack, d), nil
	}
	d, err := fixed.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
