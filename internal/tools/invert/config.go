// SPDX-License-Identifier: MIT

// Package invert implements the gjinv command: it reads or generates a
// square matrix, inverts it by Gauss–Jordan elimination and prints the result.
package invert

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/luciusluo/matrix-inverse/internal/platform/config"
)

// Config holds gjinv configuration. Environment variables provide the
// defaults; flags override them.
type Config struct {
	Input           string  `env:"GJINV_INPUT"`
	Random          int     `env:"GJINV_RANDOM"`
	Seed            uint    `env:"GJINV_SEED" envDefault:"1"`
	Min             float64 `env:"GJINV_MIN" envDefault:"0"`
	Max             float64 `env:"GJINV_MAX" envDefault:"10"`
	Epsilon         float64 `env:"GJINV_EPS" envDefault:"0"`
	PartialPivoting bool    `env:"GJINV_PARTIAL_PIVOTING"`
	Verify          bool    `env:"GJINV_VERIFY"`
	Precision       int     `env:"GJINV_PRECISION" envDefault:"6"`
}

// ParseConfig parses flags into a Config. A single positional argument is
// accepted as the input path when -in is not given.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Input, "in", cfg.Input, "input file, one matrix row per line ('-' or empty for stdin)")
	fs.IntVar(&cfg.Random, "random", cfg.Random, "invert a random NxN matrix instead of reading input (0 = off)")
	fs.UintVar(&cfg.Seed, "seed", cfg.Seed, "xorshift96 seed for -random")
	fs.Float64Var(&cfg.Min, "min", cfg.Min, "lower bound of random entries")
	fs.Float64Var(&cfg.Max, "max", cfg.Max, "upper bound of random entries")
	fs.Float64Var(&cfg.Epsilon, "eps", cfg.Epsilon, "pivot zero threshold (|v| <= eps counts as zero)")
	fs.BoolVar(&cfg.PartialPivoting, "partial", cfg.PartialPivoting, "pick the largest pivot in the leftmost nonzero column")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "print the residual max|A*inv(A) - I|")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "digits after the decimal point in the output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if cfg.Input != "" {
			return Config{}, errors.New("input given both as -in and as an argument")
		}
		cfg.Input = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected at most one input path, got %d", fs.NArg())
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Random < 0 {
		return fmt.Errorf("-random must be >= 0, got %d", c.Random)
	}
	if c.Random > 0 && c.Input != "" {
		return errors.New("-random cannot be combined with an input path")
	}
	if c.Seed > math.MaxUint32 {
		return fmt.Errorf("-seed must fit in 32 bits, got %d", c.Seed)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("-eps must be finite and >= 0, got %v", c.Epsilon)
	}
	if c.Precision < 0 {
		return fmt.Errorf("-precision must be >= 0, got %d", c.Precision)
	}
	return nil
}

// seed narrows the validated seed to the generator's word size; rng maps 0
// to rng.DefaultSeed.
func (c Config) seed() uint32 { return uint32(c.Seed) }
