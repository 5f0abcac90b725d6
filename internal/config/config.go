// Package config loads the settings of the test vector generator.
//
// A configuration file looks like this:
//
//	[sweep]
//	start = "-360"
//	stop = "360"
//	step = "0.25"
//	operand = "2"
//	functions = ["sin", "cos", "pow"]
//
//	[output]
//	path = "vectors.yaml"
//
// Numbers are written as strings in the canonical form of [fixed.Parse].
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/govalues/fixed"
	"github.com/govalues/fixed/internal/calc"
	"github.com/samber/lo"
)

// MaxPoints is the maximum number of arguments in a sweep.
const MaxPoints = 1 << 20

type Config struct {
	Sweep  SweepConfig  `toml:"sweep"`
	Output OutputConfig `toml:"output"`
}

// SweepConfig describes the arguments passed to every function.
// Binary functions receive the sweep argument first and Operand second.
type SweepConfig struct {
	Start     fixed.Fixed `toml:"start"`
	Stop      fixed.Fixed `toml:"stop"`
	Step      fixed.Fixed `toml:"step"`
	Operand   fixed.Fixed `toml:"operand"`
	Functions []string    `toml:"functions"`
}

type OutputConfig struct {
	Path string `toml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults(toml.MetaData{})
	return &cfg
}

// Load reads the configuration from a TOML file.
// Environment variables in path are expanded.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("failed to parse config: unknown keys %v", keys)
	}

	cfg.applyDefaults(md)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultFunctions returns the names of all unary operators.
func DefaultFunctions() []string {
	return lo.Filter(calc.Names(), func(name string, _ int) bool {
		arity, _ := calc.Arity(name)
		return arity == 1
	})
}

func (c *Config) applyDefaults(md toml.MetaData) {
	if !md.IsDefined("sweep", "start") {
		c.Sweep.Start = fixed.FromInt(-360)
	}
	if !md.IsDefined("sweep", "stop") {
		c.Sweep.Stop = fixed.FromInt(360)
	}
	if !md.IsDefined("sweep", "step") {
		c.Sweep.Step = fixed.MustParse("0.25")
	}
	if !md.IsDefined("sweep", "operand") {
		c.Sweep.Operand = fixed.Two
	}
	if !md.IsDefined("sweep", "functions") {
		c.Sweep.Functions = DefaultFunctions()
	}

	if c.Output.Path == "" {
		c.Output.Path = "vectors.yaml"
	}
}

// Validate checks that the sweep is finite and the functions exist.
func (c *Config) Validate() error {
	s := c.Sweep
	if !s.Step.IsPos() {
		return fmt.Errorf("invalid sweep: step %v is not positive", s.Step)
	}
	if s.Stop.Less(s.Start) {
		return fmt.Errorf("invalid sweep: stop %v is less than start %v", s.Stop, s.Start)
	}
	if n := s.Points(); n > MaxPoints {
		return fmt.Errorf("invalid sweep: %v points, at most %v allowed", n, MaxPoints)
	}
	if len(s.Functions) == 0 {
		return fmt.Errorf("invalid sweep: no functions")
	}
	unknown := lo.Filter(s.Functions, func(name string, _ int) bool {
		_, ok := calc.Arity(name)
		return !ok
	})
	if len(unknown) > 0 {
		return fmt.Errorf("invalid sweep: unknown functions %v", strings.Join(unknown, ", "))
	}
	return nil
}

// Points returns the number of arguments in the sweep.
func (s SweepConfig) Points() int64 {
	if s.Step.Raw() <= 0 || s.Stop.Less(s.Start) {
		return 0
	}
	return (int64(s.Stop.Raw())-int64(s.Start.Raw()))/int64(s.Step.Raw()) + 1
}

// Args returns the arguments of the sweep in ascending order.
func (s SweepConfig) Args() []fixed.Fixed {
	n := s.Points()
	args := make([]fixed.Fixed, n)
	for i := range args {
		args[i] = fixed.New(int32(int64(s.Start.Raw()) + int64(i)*int64(s.Step.Raw())))
	}
	return args
}
