// Package vectors generates and verifies test vectors.
//
// A test vector records the raw arguments of a function together with its
// raw result or the class of its error.
// Vectors generated on one platform and verified on another detect any
// divergence between them.
package vectors

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/govalues/fixed"
	"github.com/govalues/fixed/internal/calc"
	"github.com/govalues/fixed/internal/config"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Version is the version of the file format.
const Version = 1

// Error classes.
const (
	ClassDomain         = "domain"
	ClassDivisionByZero = "division by zero"
	ClassUnknown        = "unknown function"
)

type File struct {
	Version  int    `yaml:"version"`
	FracBits int    `yaml:"frac_bits"`
	Cases    []Case `yaml:"cases"`
}

type Case struct {
	Func   string  `yaml:"func"`
	Args   []int32 `yaml:"args,flow"`
	Result int32   `yaml:"result"`
	Error  string  `yaml:"error,omitempty"`
}

func (c Case) String() string {
	args := lo.Map(c.Args, func(raw int32, _ int) fixed.Fixed { return fixed.New(raw) })
	if c.Error != "" {
		return fmt.Sprintf("%v%v = error(%v)", c.Func, args, c.Error)
	}
	return fmt.Sprintf("%v%v = %v", c.Func, args, fixed.New(c.Result))
}

// Mismatch describes a case whose recomputed result differs from the
// recorded one.
type Mismatch struct {
	Want Case
	Got  Case
	Diff string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("got %v, want %v", m.Got, m.Want)
}

// Evaluate applies the function to the raw arguments.
func Evaluate(name string, args []int32) Case {
	c := Case{Func: name, Args: args}
	arity, ok := calc.Arity(name)
	if !ok || arity != len(args) {
		c.Error = ClassUnknown
		return c
	}
	d, err := calc.Apply(name, lo.Map(args, func(raw int32, _ int) fixed.Fixed { return fixed.New(raw) })...)
	switch {
	case errors.Is(err, calc.ErrDivisionByZero):
		c.Error = ClassDivisionByZero
	case err != nil:
		c.Error = ClassDomain
	default:
		c.Result = d.Raw()
	}
	return c
}

// Generate evaluates every configured function over the sweep.
// Binary functions take the sweep argument first and the operand second.
func Generate(cfg *config.Config) (*File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generating vectors: %w", err)
	}
	sweep := cfg.Sweep.Args()
	f := &File{
		Version:  Version,
		FracBits: fixed.FracBits,
		Cases:    make([]Case, 0, len(sweep)*len(cfg.Sweep.Functions)),
	}
	for _, name := range cfg.Sweep.Functions {
		arity, _ := calc.Arity(name)
		for _, x := range sweep {
			args := []int32{x.Raw()}
			if arity == 2 {
				args = append(args, cfg.Sweep.Operand.Raw())
			}
			f.Cases = append(f.Cases, Evaluate(name, args))
		}
	}
	return f, nil
}

// Verify recomputes every case and returns the ones that differ.
func Verify(f *File) []Mismatch {
	var mismatches []Mismatch
	for _, want := range f.Cases {
		got := Evaluate(want.Func, want.Args)
		if diff := cmp.Diff(want, got); diff != "" {
			mismatches = append(mismatches, Mismatch{Want: want, Got: got, Diff: diff})
		}
	}
	return mismatches
}

// Write encodes the file as YAML.
func Write(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode vectors: %w", err)
	}
	return enc.Close()
}

// Read decodes a YAML file written by [Write].
func Read(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode vectors: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("unsupported vectors version %v, want %v", f.Version, Version)
	}
	if f.FracBits != fixed.FracBits {
		return nil, fmt.Errorf("vectors have %v fractional bits, want %v", f.FracBits, fixed.FracBits)
	}
	return &f, nil
}
