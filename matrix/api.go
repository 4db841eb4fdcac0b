// SPDX-License-Identifier: MIT
// Package matrix — constructors & block utilities.
//
// Purpose:
//   - Provide thin, well-documented entry points for allocating matrices with
//     neutral or generated contents.
//   - Provide CopyBlock, the sub-block copy consumed by the elimination core
//     (augmentation and inverse extraction).
//
// Determinism & Policy:
//   - Constructors never use hidden randomness; NewRandom draws only from the
//     *rand.Rand it is given.
//   - Validation is performed once at the boundary; loops run without re-checks.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Operation tags for constructors and block utilities.
const (
	opCopyBlock   = "CopyBlock"
	opNewFromRows = "NewFromRows"
	opNewDiagonal = "NewDiagonal"
	opNewRandom   = "NewRandom"
)

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols *Dense with every element set to 1.
// Complexity: O(r*c).
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal builds the len(diag)×len(diag) matrix with diag on its main
// diagonal and zeros elsewhere.
//
// Errors:
//   - ErrInvalidDimensions for an empty vector; ErrNaNInf for non-finite entries.
//
// Complexity: O(n^2).
func NewDiagonal(diag []float64) (*Dense, error) {
	n := len(diag)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewDiagonal, err)
	}
	for i, v := range diag {
		if err = D.Set(i, i, v); err != nil {
			return nil, matrixErrorf(opNewDiagonal, err)
		}
	}

	return D, nil
}

// NewFromRows builds a *Dense from a slice of equally long rows (copied).
// MAIN DESCRIPTION:
//   - Convenient literal-style construction for tests, examples and parsers.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf for non-finite entries (numeric policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opNewFromRows, err)
			}
		}
	}

	return m, nil
}

// NewRandom returns a rows×cols *Dense with entries drawn uniformly from
// [lo, hi) using rng. The caller owns rng; no global source is touched, so
// equal seeds reproduce equal matrices.
//
// Policy: lo > hi is normalized by swapping; non-finite bounds are rejected.
//
// Errors:
//   - ErrNilMatrix when rng is nil (reused sentinel for "nil argument").
//   - ErrNaNInf for non-finite bounds; ErrInvalidDimensions for bad shape.
//
// Complexity: O(r*c).
func NewRandom(rows, cols int, lo, hi float64, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		return nil, matrixErrorf(opNewRandom, ErrNilMatrix)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, matrixErrorf(opNewRandom, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewRandom, err)
	}
	span := hi - lo
	if err = m.Apply(func(_, _ int, _ float64) float64 {
		return lo + rng.Float64()*span
	}); err != nil {
		return nil, matrixErrorf(opNewRandom, err)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// A *Dense (or a view of one) also passes on its numeric policy.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike(m Block) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	switch src := m.(type) {
	case *Dense:
		return newDenseWithPolicy(src.r, src.c, src.validateNaNInf)
	case *MatrixView:
		return newDenseWithPolicy(src.r, src.c, src.base.validateNaNInf)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Block utilities ----------

// CopyBlock copies the rows×cols sub-block at the origin of src into the
// origin of dst. To address an offset block, pass a View of either side.
// MAIN DESCRIPTION:
//   - The "copy a sub-block" collaborator of the elimination core.
//
// Implementation:
//   - Stage 1: validate non-nil operands and that the block fits both sides.
//   - Stage 2: fast-path when both are *Dense (row-slice copy), otherwise
//     fall back to At/Set with fixed i→j order.
//
// Behavior highlights:
//   - src is never mutated; dst cells outside the block are untouched.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (block larger than an operand or negative),
//     plus any Set error of dst (numeric policy).
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func CopyBlock(dst, src Block, rows, cols int) error {
	if dst == nil || src == nil {
		return matrixErrorf(opCopyBlock, ErrNilMatrix)
	}
	if rows < 0 || cols < 0 ||
		rows > src.Rows() || cols > src.Cols() ||
		rows > dst.Rows() || cols > dst.Cols() {
		return matrixErrorf(opCopyBlock, fmt.Errorf("%dx%d block: %w", rows, cols, ErrBadShape))
	}

	var i int
	// Fast path: *Dense with *Dense → copy row prefixes.
	if dd, okD := dst.(*Dense); okD {
		if sd, okS := src.(*Dense); okS {
			for i = 0; i < rows; i++ {
				copy(dd.data[i*dd.c:i*dd.c+cols], sd.data[i*sd.c:i*sd.c+cols])
			}

			return nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		j   int
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(opCopyBlock, err)
			}
			if err = dst.Set(i, j, v); err != nil {
				return matrixErrorf(opCopyBlock, err)
			}
		}
	}

	return nil
}
