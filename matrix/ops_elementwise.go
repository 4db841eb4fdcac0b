// SPDX-License-Identifier: MIT
// Package matrix - element-wise comparisons used by inversion checks.
//
// Purpose:
//   - AllClose: tolerance-based equality for invariance tests (A·A⁻¹ ≈ I).
//   - MaxAbsDiff: the residual reported by the CLI verifier.
//
// Determinism:
//   - Fixed flat order on *Dense, fixed i→j order in the fallback.

package matrix

import "math"

const (
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances are rejected.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Block, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind AllClose. A NaN on either side
// compares false because every comparison with NaN is false.
func closeEnough(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// MaxAbsDiff returns max_{i,j} |a[i,j] − b[i,j]| for identically shaped operands.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxAbsDiff(a, b Block) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var worst float64
	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				worst = math.Max(worst, math.Abs(da.data[idx]-db.data[idx]))
			}

			return worst, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			worst = math.Max(worst, math.Abs(av-bv))
		}
	}

	return worst, nil
}
