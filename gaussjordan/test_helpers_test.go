// SPDX-License-Identifier: MIT
// Package gaussjordan_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (explicit literals and seeded
//     well-conditioned random matrices) for the elimination tests.
//   • Keep all data finite unless a test targets the numeric policy.

package gaussjordan_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luciusluo/matrix-inverse/matrix"
	"github.com/luciusluo/matrix-inverse/rng"
)

// tol is the absolute tolerance for identity/round-trip checks.
const tol = matrix.DefaultEpsilon

// hide wraps a Block to hide its concrete type from the *Dense fast paths.
type hide struct{ matrix.Block }

// fixedBlock is a read-only Block returning v everywhere (Set is refused).
type fixedBlock struct {
	n int
	v float64
}

func (f fixedBlock) Rows() int                    { return f.n }
func (f fixedBlock) Cols() int                    { return f.n }
func (f fixedBlock) At(_, _ int) (float64, error) { return f.v, nil }
func (f fixedBlock) Set(_, _ int, _ float64) error {
	return matrix.ErrOutOfRange
}

func posInf() float64 { return math.Inf(1) }

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Block, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// WellConditioned returns A = MᵀM + n·I for a seeded random M in [-1,1).
// The shift keeps the smallest eigenvalue ≥ n, so A is safely invertible.
func WellConditioned(t testing.TB, n int, seed uint32) *matrix.Dense {
	t.Helper()
	M, err := matrix.NewRandom(n, n, -1, 1, rng.NewRand(seed))
	require.NoError(t, err)
	Mt, err := matrix.Transpose(M)
	require.NoError(t, err)
	PD, err := matrix.Mul(Mt, M)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	shift, err := matrix.Scale(I, float64(n))
	require.NoError(t, err)
	A, err := matrix.Add(PD, shift)
	require.NoError(t, err)

	return A.(*matrix.Dense)
}

// RequireIdentityProduct asserts a·b ≈ I within tol.
func RequireIdentityProduct(t testing.TB, a, b matrix.Matrix) {
	t.Helper()
	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(a.Rows())
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, I, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "product is not identity:\n%v", prod)
}

// RequireInverseLaw asserts both A·A⁻¹ ≈ I and A⁻¹·A ≈ I.
func RequireInverseLaw(t testing.TB, a, inv matrix.Matrix) {
	t.Helper()
	RequireIdentityProduct(t, a, inv)
	RequireIdentityProduct(t, inv, a)
}
