// Package gaussjordan inverts square matrices by Gauss–Jordan elimination
// on the augmented matrix [A | I].
//
// The work happens in three forward-only stages:
//
//	EchelonForm    [A | I]  → row echelon form (pivots normalized to 1)
//	BackEliminate  REF      → reduced row echelon form, in place
//	ExtractInverse [I | B]  → B = A⁻¹ (fresh N×N copy)
//
// Inverse composes them. Every row operation spans the full 2N width, so
// the right block accumulates the inverse while the left block is reduced
// to the identity.
//
// Pivot choice is the leftmost nonzero column, then the topmost row; there
// is no magnitude-based row choice unless WithPartialPivoting is given.
// Singular input is reported as matrix.ErrSingular; tiny pivots are not an
// error but are flagged through Report.Unstable by InverseWithReport.
//
// Example:
//
//	a, _ := matrix.NewFromRows([][]float64{{7, 9, 3}, {4, 6, 8}, {5, 2, 5}})
//	inv, err := gaussjordan.Inverse(a)
package gaussjordan
