// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"

	"github.com/luciusluo/matrix-inverse/matrix"
)

// BackEliminate turns an N×2N row echelon buffer into reduced row echelon
// form in place by clearing every entry above each pivot.
// MAIN DESCRIPTION:
//   - Works from the last pivot row to the first inside a shrinking window
//     [0..rowBound] × [0..colBound], both bounds starting at N-1 and
//     decremented together.
//
// Implementation (until rowBound < 0):
//   - Stage 1: scan rows rowBound..0 upward and, in each row, columns
//     0..colBound left to right; the first nonzero entry is the pivot.
//   - Stage 2: for each row above the pivot row subtract
//     (a[r][pc] / a[pr][pc]) · pivotRow over columns pc..2N-1.
//   - Stage 3: shrink both bounds.
//
// Behavior highlights:
//   - Columns left of the pivot are skipped: they are zero in the pivot row.
//   - Requires the staircase produced by EchelonForm; an empty window means
//     the precondition does not hold.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when the buffer is not N×2N;
//     ErrSingular when a window holds no pivot.
//
// Complexity:
//   - Time O(N^3), Space O(1).
func BackEliminate(aug *matrix.Dense) error {
	n, err := augmentedOrder(aug)
	if err != nil {
		return gjErrorf(opBackEliminate, err)
	}

	var (
		r, c          int
		pr, pc        int
		row, pivotRow []float64
		ratio         float64
	)
	rowBound, colBound := n-1, n-1
	for rowBound >= 0 {
		// Stage 1: locate the pivot inside the window.
		pr, pc = -1, -1
	scan:
		for r = rowBound; r >= 0; r-- {
			row, _ = aug.RowView(r)
			for c = 0; c <= colBound; c++ {
				if row[c] != 0 {
					pr, pc = r, c
					break scan
				}
			}
		}
		if pr < 0 {
			return gjErrorf(opBackEliminate, singularAt(rowBound))
		}

		// Stage 2: clear the pivot column above the pivot row.
		pivotRow, _ = aug.RowView(pr)
		for r = pr - 1; r >= 0; r-- {
			row, _ = aug.RowView(r)
			if row[pc] == 0 {
				continue
			}
			ratio = row[pc] / pivotRow[pc]
			if err = aug.AddScaledRow(r, pr, -ratio, pc); err != nil {
				return gjErrorf(opBackEliminate, err)
			}
		}

		// Stage 3: shrink the window.
		rowBound--
		colBound--
	}

	return nil
}

// ExtractInverse copies the right block (columns N..2N-1) of a fully reduced
// N×2N buffer into a fresh N×N matrix. The buffer is left untouched.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when the buffer is not N×2N.
//
// Complexity: O(N^2).
func ExtractInverse(aug *matrix.Dense) (*matrix.Dense, error) {
	n, err := augmentedOrder(aug)
	if err != nil {
		return nil, gjErrorf(opExtract, err)
	}
	right, err := aug.View(0, n, n, n)
	if err != nil {
		return nil, gjErrorf(opExtract, err)
	}
	inv, err := matrix.ZerosLike(right)
	if err != nil {
		return nil, gjErrorf(opExtract, err)
	}
	if err = matrix.CopyBlock(inv, right, n, n); err != nil {
		return nil, gjErrorf(opExtract, err)
	}

	return inv, nil
}

// augmentedOrder returns N for an N×2N buffer.
func augmentedOrder(aug *matrix.Dense) (int, error) {
	if err := matrix.ValidateNotNil(aug); err != nil {
		return 0, err
	}
	if aug.Cols() != 2*aug.Rows() {
		return 0, fmt.Errorf("buffer is %dx%d, want Nx2N: %w", aug.Rows(), aug.Cols(), matrix.ErrDimensionMismatch)
	}

	return aug.Rows(), nil
}
