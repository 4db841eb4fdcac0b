// Package matrix provides the dense storage and utility layer used by the
// Gauss–Jordan inversion core.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 buffer with bounds-checked At/Set, no-copy
//     views, and full-width row kernels (SwapRows, ScaleRow, AddScaledRow).
//   - Constructors: NewZeros, NewOnes, NewIdentity, NewDiagonal, NewFromRows
//     and NewRandom (driven by a caller-owned *rand.Rand).
//   - CopyBlock for sub-block copies between matrices and views.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, AllClose, MaxAbsDiff.
//   - Format/Print and ToGonum/FromGonum for interop with gonum's mat package.
//
// All failures are reported through the sentinel errors in errors.go and are
// matched with errors.Is. Nothing in this package panics on user input.
package matrix
