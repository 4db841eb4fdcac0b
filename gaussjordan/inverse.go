// SPDX-License-Identifier: MIT

package gaussjordan

import "github.com/luciusluo/matrix-inverse/matrix"

// Inverse returns A⁻¹ for a square, invertible A.
// MAIN DESCRIPTION:
//   - Augment → EchelonForm pass → BackEliminate → ExtractInverse.
//
// Behavior highlights:
//   - The input is copied once into the augmented buffer and never mutated.
//   - Singular input fails with ErrSingular rather than returning garbage.
//
// Errors (match with errors.Is):
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (checked before any
//     allocation), matrix.ErrNaNInf, matrix.ErrSingular.
//
// Complexity:
//   - Time O(N^3), Space O(N^2).
func Inverse(a matrix.Block, opts ...Option) (*matrix.Dense, error) {
	inv, _, err := InverseWithReport(a, opts...)

	return inv, err
}

// InverseWithReport is Inverse plus a Report of the elimination: pivots,
// swap count and the smallest raw pivot magnitude. A Report marked
// Unstable still carries a valid (if inaccurate) inverse.
func InverseWithReport(a matrix.Block, opts ...Option) (*matrix.Dense, Report, error) {
	o := gatherOptions(opts...)
	var rep Report

	aug, err := Augment(a)
	if err != nil {
		return nil, Report{}, gjErrorf(opInverse, err)
	}
	if err = reduceEchelon(aug, o, &rep); err != nil {
		return nil, Report{}, gjErrorf(opInverse, err)
	}
	if err = BackEliminate(aug); err != nil {
		return nil, Report{}, gjErrorf(opInverse, err)
	}
	inv, err := ExtractInverse(aug)
	if err != nil {
		return nil, Report{}, gjErrorf(opInverse, err)
	}
	rep.Unstable = rep.MinPivot < o.instabilityThreshold

	return inv, rep, nil
}
