// Package matrixinverse inverts square matrices by Gauss–Jordan elimination
// on the augmented matrix [A | I].
//
// 🚀 What is inside?
//
//		• Dense storage: bounds-checked row-major matrices, no-copy views and
//		  full-width row kernels (swap, scale, add a multiple)
//		• Elimination: row echelon form, reduced row echelon form, extraction
//		• Reports: pivots, row swaps and a small-pivot instability flag
//		• Randomness: an explicit-state xorshift96 generator for test matrices
//		• CLI: gjinv reads or generates a matrix and prints its inverse
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/      — Matrix/Block interfaces, Dense, constructors, CopyBlock, kernels, gonum interop
//	gaussjordan/ — Augment, EchelonForm, BackEliminate, ExtractInverse, Inverse
//	rng/         — Marsaglia xorshift96 (math/rand.Source64)
//	cmd/gjinv/   — command-line front end
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{7, 9, 3}, {4, 6, 8}, {5, 2, 5}})
//	inv, err := gaussjordan.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) {
//		// no inverse exists
//	}
//
//	go get github.com/luciusluo/matrix-inverse
package matrixinverse
