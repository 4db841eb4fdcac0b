// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Render matrices with gonum's aligned formatter (Format, Print).
//   - Convert to and from gonum dense matrices so results can be cross-checked
//     against an independent linear-algebra implementation.
//
// Notes:
//   - The adapter reads through Block.At; gonum's contract is to panic on
//     out-of-range access, and the adapter follows it (indices come from Dims).

package matrix

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

const (
	opFormat    = "Format"
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// gonumView exposes a Block as a read-only mat.Matrix.
type gonumView struct{ b Block }

var _ mat.Matrix = gonumView{}

func (g gonumView) Dims() (r, c int) { return g.b.Rows(), g.b.Cols() }

func (g gonumView) At(i, j int) float64 {
	v, err := g.b.At(i, j)
	if err != nil {
		panic(err) // gonum contract: out-of-range At panics
	}

	return v
}

func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// Format renders m as aligned rows using gonum's formatter with the given
// number of digits after the decimal point (negative → DefaultPrecision).
//
// Errors:
//   - ErrNilMatrix for a nil block.
//
// Complexity: O(r*c).
func Format(m Block, precision int) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opFormat, err)
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	return fmt.Sprintf("%.*f", precision, mat.Formatted(gonumView{m}, mat.Squeeze())), nil
}

// Print writes Format(m, precision) followed by a newline to w.
func Print(w io.Writer, m Block, precision int) error {
	s, err := Format(m, precision)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)

	return err
}

// ToGonum copies m into a fresh *mat.Dense.
// Complexity: O(r*c).
func ToGonum(m Block) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions) // mat.NewDense panics on zero dims
	}
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	out.Copy(gonumView{m})

	return out, nil
}

// FromGonum copies any mat.Matrix into a fresh *Dense (numeric policy applies).
//
// Errors:
//   - ErrNilMatrix for nil input; ErrInvalidDimensions for an empty matrix;
//     ErrNaNInf for non-finite entries.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	if err = out.Apply(func(i, j int, _ float64) float64 { return src.At(i, j) }); err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return out, nil
}
