// SPDX-License-Identifier: MIT

package invert

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/luciusluo/matrix-inverse/gaussjordan"
	"github.com/luciusluo/matrix-inverse/matrix"
	"github.com/luciusluo/matrix-inverse/rng"
)

// Run executes the gjinv command. stdin is read when cfg.Input is empty or
// "-" and no random matrix is requested. The inverse goes to out; progress
// and the instability warning go to logger.
func Run(cfg Config, stdin io.Reader, out io.Writer, logger *log.Logger) error {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	a, err := loadMatrix(cfg, stdin, logger)
	if err != nil {
		return err
	}
	if cfg.Random > 0 {
		if _, err = fmt.Fprintln(out, "A ="); err != nil {
			return err
		}
		if err = matrix.Print(out, a, cfg.Precision); err != nil {
			return err
		}
		if _, err = fmt.Fprintln(out, "inv(A) ="); err != nil {
			return err
		}
	}

	inv, rep, err := gaussjordan.InverseWithReport(a, cfg.options()...)
	if err != nil {
		return fmt.Errorf("invert %dx%d matrix: %w", a.Rows(), a.Cols(), err)
	}
	logger.Printf("inverted %dx%d matrix: %d row swaps, min pivot %.3g", a.Rows(), a.Cols(), rep.Swaps, rep.MinPivot)
	if rep.Unstable {
		logger.Printf("warning: smallest pivot %.3g is below %.3g, the inverse may be inaccurate", rep.MinPivot, gaussjordan.DefaultInstabilityThreshold)
	}

	if err = matrix.Print(out, inv, cfg.Precision); err != nil {
		return err
	}

	if cfg.Verify {
		residual, err := Residual(a, inv)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if _, err = fmt.Fprintf(out, "residual max|A*inv(A) - I| = %.3e\n", residual); err != nil {
			return err
		}
	}
	return nil
}

// Residual returns max|A·inv − I|.
func Residual(a, inv matrix.Matrix) (float64, error) {
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return 0, err
	}
	id, err := matrix.NewIdentity(prod.Rows())
	if err != nil {
		return 0, err
	}
	return matrix.MaxAbsDiff(prod, id)
}

func loadMatrix(cfg Config, stdin io.Reader, logger *log.Logger) (*matrix.Dense, error) {
	if cfg.Random > 0 {
		a, err := matrix.NewRandom(cfg.Random, cfg.Random, cfg.Min, cfg.Max, rng.NewRand(cfg.seed()))
		if err != nil {
			return nil, fmt.Errorf("generate matrix: %w", err)
		}
		logger.Printf("generated random %dx%d matrix in [%g, %g) with seed %d", cfg.Random, cfg.Random, cfg.Min, cfg.Max, cfg.Seed)
		return a, nil
	}

	in := stdin
	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		return nil, fmt.Errorf("no input: %w", matrix.ErrNilMatrix)
	}

	a, err := ReadMatrix(in)
	if err != nil {
		return nil, err
	}
	logger.Printf("read %dx%d matrix", a.Rows(), a.Cols())
	return a, nil
}

func (c Config) options() []gaussjordan.Option {
	var opts []gaussjordan.Option
	if c.Epsilon > 0 {
		opts = append(opts, gaussjordan.WithEpsilon(c.Epsilon))
	}
	if c.PartialPivoting {
		opts = append(opts, gaussjordan.WithPartialPivoting())
	}
	return opts
}
