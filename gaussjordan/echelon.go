// SPDX-License-Identifier: MIT
// Package gaussjordan - augmentation & forward elimination (REF).
//
// Purpose:
//   - Build the augmented buffer [A | I] and reduce it to row echelon form.
//
// Pivot policy:
//   - Leftmost column holding a nonzero entry among the unfinished rows,
//     then the topmost such row (or the largest magnitude with
//     WithPartialPivoting). Only the first N columns are searched.
//
// Row-operation policy:
//   - Every swap, normalization and elimination acts on all 2N columns,
//     so the right block tracks the product of the applied elementary matrices.

package gaussjordan

import (
	"fmt"
	"math"

	"github.com/luciusluo/matrix-inverse/matrix"
)

// Augment returns the N×2N buffer [A | I] for a square N×N input.
// MAIN DESCRIPTION:
//   - Left block (columns 0..N-1) is a copy of a; right block is I_N.
//
// Implementation:
//   - Stage 1: reject nil/non-square input before any allocation.
//   - Stage 2: NewZeros(N, 2N), CopyBlock a into the left block.
//   - Stage 3: write the identity diagonal through a view of the right block.
//   - Stage 4: reject non-finite entries (the fast copy path bypasses Set).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(N^2), Space O(N^2).
func Augment(a matrix.Block) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, gjErrorf(opAugment, err)
	}
	n := a.Rows()

	aug, err := matrix.NewZeros(n, 2*n)
	if err != nil {
		return nil, gjErrorf(opAugment, err)
	}
	if err = matrix.CopyBlock(aug, a, n, n); err != nil {
		return nil, gjErrorf(opAugment, err)
	}

	right, err := aug.View(0, n, n, n)
	if err != nil {
		return nil, gjErrorf(opAugment, err)
	}
	for i := 0; i < n; i++ {
		if err = right.Set(i, i, 1.0); err != nil {
			return nil, gjErrorf(opAugment, err)
		}
	}

	aug.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = fmt.Errorf("entry (%d,%d): %w", i, j, matrix.ErrNaNInf)
			return false
		}
		return true
	})
	if err != nil {
		return nil, gjErrorf(opAugment, err)
	}

	return aug, nil
}

// EchelonForm augments a and reduces [A | I] to row echelon form.
// MAIN DESCRIPTION:
//   - Returns the REF buffer (N×2N) and the pivots in assignment order.
//
// Implementation (for i = 0..N-1):
//   - Stage 1: select the pivot (leftmost column, then topmost row).
//   - Stage 2: swap it into row i across the full width.
//   - Stage 3: divide row i by the pivot value (pivot becomes exactly 1).
//   - Stage 4: eliminate the pivot column in every row below.
//   - Stage 5: stop once no nonzero entry remains below row i.
//
// Behavior highlights:
//   - The caller's matrix is copied, never mutated.
//   - Rank deficiency is reported as ErrSingular instead of producing a
//     partially reduced buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (from Augment).
//   - ErrSingular when fewer than N pivots exist.
//
// Complexity:
//   - Time O(N^3), Space O(N^2).
func EchelonForm(a matrix.Block, opts ...Option) (*matrix.Dense, []Pivot, error) {
	o := gatherOptions(opts...)

	aug, err := Augment(a)
	if err != nil {
		return nil, nil, gjErrorf(opEchelonForm, err)
	}
	var rep Report
	if err = reduceEchelon(aug, o, &rep); err != nil {
		return nil, nil, gjErrorf(opEchelonForm, err)
	}

	return aug, rep.Pivots, nil
}

// reduceEchelon runs the forward pass in place on an N×2N buffer and fills
// rep with pivots, swap count and the smallest raw pivot magnitude.
func reduceEchelon(aug *matrix.Dense, o Options, rep *Report) error {
	n := aug.Rows()
	rep.Pivots = make([]Pivot, 0, n)
	rep.MinPivot = math.Inf(1)

	var (
		i, j   int
		pr, pc int
		found  bool
		row    []float64
		below  []float64
		pivot  float64
		ratio  float64
		err    error
	)
	for i = 0; i < n; i++ {
		// Stage 1: pivot selection.
		pr, pc, found = selectPivot(aug, i, o)
		if !found {
			return singularAt(i)
		}

		// Stage 2: bring the pivot row up.
		if pr != i {
			if err = aug.SwapRows(i, pr); err != nil {
				return err
			}
			rep.Swaps++
		}

		// Stage 3: normalize.
		row, _ = aug.RowView(i)
		pivot = row[pc]
		rep.MinPivot = math.Min(rep.MinPivot, math.Abs(pivot))
		if err = aug.DivRow(i, pivot); err != nil {
			return err
		}
		rep.Pivots = append(rep.Pivots, Pivot{Row: i, Col: pc})

		// Stage 4: eliminate below. row[pc] is exactly 1 here.
		for j = i + 1; j < n; j++ {
			below, _ = aug.RowView(j)
			if below[pc] == 0 {
				continue
			}
			ratio = below[pc] / row[pc]
			if err = aug.AddScaledRow(j, i, -ratio, 0); err != nil {
				return err
			}
		}

		// Stage 5: early termination.
		if !hasNonzeroBelow(aug, i, o.eps) {
			break
		}
	}

	if len(rep.Pivots) < n {
		return singularAt(len(rep.Pivots))
	}

	return nil
}

// selectPivot finds the leftmost column in [0, N) holding an entry with
// |v| > eps in rows [i, N), and the pivot row within that column: the
// topmost one, or the largest magnitude under partial pivoting.
// Complexity: O(N^2) worst case.
func selectPivot(aug *matrix.Dense, i int, o Options) (pivotRow, pivotCol int, found bool) {
	n := aug.Rows()
	var r, c int
	var v, best float64
	var row []float64

	for c = 0; c < n; c++ {
		pivotRow, best = -1, 0
		for r = i; r < n; r++ {
			row, _ = aug.RowView(r)
			v = math.Abs(row[c])
			if v <= o.eps {
				continue
			}
			if pivotRow < 0 {
				pivotRow, best = r, v
				if !o.partialPivoting {
					break // topmost wins
				}
				continue
			}
			if v > best {
				pivotRow, best = r, v
			}
		}
		if pivotRow >= 0 {
			return pivotRow, c, true
		}
	}

	return -1, -1, false
}

// hasNonzeroBelow reports whether any row strictly below i has an entry
// with |v| > eps within the first N columns.
func hasNonzeroBelow(aug *matrix.Dense, i int, eps float64) bool {
	n := aug.Rows()
	var row []float64
	for r := i + 1; r < n; r++ {
		row, _ = aug.RowView(r)
		for c := 0; c < n; c++ {
			if math.Abs(row[c]) > eps {
				return true
			}
		}
	}

	return false
}
