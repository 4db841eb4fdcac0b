// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage, the kernels and
// the elimination core. Errors and numeric defaults live in dedicated files
// (errors.go, options.go).
package matrix

// Block is the minimal readable/writable 2-D surface: a Dense, or a no-copy
// MatrixView window into one. CopyBlock and the validators accept Block so
// sub-blocks of an augmented buffer can be addressed without copying.
//
// Complexity notes: all methods are expected O(1).
type Block interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf under the
	// finite-only numeric policy.
	Set(i, j int, v float64) error
}

// Matrix represents a two-dimensional mutable array of float64 values that
// owns its storage and can be deep-copied.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	Block

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
