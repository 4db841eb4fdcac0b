// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"

	"github.com/luciusluo/matrix-inverse/matrix"
)

// Operation tags for uniform error wrapping.
const (
	opAugment       = "Augment"
	opEchelonForm   = "EchelonForm"
	opBackEliminate = "BackEliminate"
	opExtract       = "ExtractInverse"
	opInverse       = "Inverse"
)

// Pivot is the (row, column) position of a leading 1 in the left block of
// an augmented matrix. Pivots are produced in strictly increasing row and
// column order.
type Pivot struct {
	Row int // pivot row after any swap
	Col int // pivot column within the original N columns
}

// Report describes one inversion run.
type Report struct {
	// Pivots in the order the echelon pass assigned them.
	Pivots []Pivot

	// Swaps counts row exchanges performed by the echelon pass.
	Swaps int

	// MinPivot is the smallest absolute pivot value before normalization.
	MinPivot float64

	// Unstable is set when MinPivot < the instability threshold. The result
	// is still returned; large cancellation error is likely.
	Unstable bool
}

// gjErrorf wraps err with an operation tag, preserving the sentinel via %w.
func gjErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// singularAt builds the ErrSingular error for a missing pivot at step i.
func singularAt(i int) error {
	return fmt.Errorf("no pivot for row %d: %w", i, matrix.ErrSingular)
}
