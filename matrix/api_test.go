// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciusluo/matrix-inverse/matrix"
	"github.com/luciusluo/matrix-inverse/rng"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	ones, err := matrix.NewOnes(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, ones)

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	D, err := matrix.NewDiagonal([]float64{2, -3})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 0}, {0, -3}}, D)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiagonal([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	CompareExact(t, src, m)

	// Rows are copied, not aliased.
	src[0][0] = 100
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewFromRows([][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewRandom(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewRandom(4, 5, 0, 10, rng.NewRand(9))
	require.NoError(t, err)
	a.Do(func(i, j int, v float64) bool {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 10.0)
		return true
	})

	// Same seed, same matrix.
	b, err := matrix.NewRandom(4, 5, 0, 10, rng.NewRand(9))
	require.NoError(t, err)
	CompareClose(t, a, b, 0, 0)

	// Swapped bounds are normalized.
	c, err := matrix.NewRandom(4, 5, 10, 0, rng.NewRand(9))
	require.NoError(t, err)
	CompareClose(t, a, c, 0, 0)

	_, err = matrix.NewRandom(2, 2, 0, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.NewRandom(2, 2, math.NaN(), 1, rng.NewRand(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewRandom(0, 2, 0, 1, rng.NewRand(1))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestZerosLike(t *testing.T) {
	t.Parallel()

	src := RandFilledDense(t, 3, 2, 4)
	z, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, z)

	v, err := src.View(1, 0, 2, 2)
	require.NoError(t, err)
	z, err = matrix.ZerosLike(v)
	require.NoError(t, err)
	assert.Equal(t, 2, z.Rows())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCopyBlock(t *testing.T) {
	t.Parallel()

	src := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	t.Run("dense fast path", func(t *testing.T) {
		dst := MustDense(t, 3, 3)
		require.NoError(t, matrix.CopyBlock(dst, src, 2, 2))
		CompareExact(t, [][]float64{{1, 2, 0}, {4, 5, 0}, {0, 0, 0}}, dst)
	})

	t.Run("fallback matches", func(t *testing.T) {
		dst := MustDense(t, 3, 3)
		require.NoError(t, matrix.CopyBlock(hide{dst}, hide{src}, 2, 2))
		CompareExact(t, [][]float64{{1, 2, 0}, {4, 5, 0}, {0, 0, 0}}, dst)
	})

	t.Run("into a view", func(t *testing.T) {
		dst := MustDense(t, 2, 6)
		right, err := dst.View(0, 3, 2, 3)
		require.NoError(t, err)
		require.NoError(t, matrix.CopyBlock(right, src, 2, 3))
		CompareExact(t, [][]float64{{0, 0, 0, 1, 2, 3}, {0, 0, 0, 4, 5, 6}}, dst)
	})

	t.Run("errors", func(t *testing.T) {
		dst := MustDense(t, 2, 2)
		require.ErrorIs(t, matrix.CopyBlock(nil, src, 1, 1), matrix.ErrNilMatrix)
		require.ErrorIs(t, matrix.CopyBlock(dst, nil, 1, 1), matrix.ErrNilMatrix)
		require.ErrorIs(t, matrix.CopyBlock(dst, src, 2, 3), matrix.ErrBadShape)
		require.ErrorIs(t, matrix.CopyBlock(dst, src, 3, 1), matrix.ErrBadShape)
		require.ErrorIs(t, matrix.CopyBlock(dst, src, -1, 1), matrix.ErrBadShape)
	})
}
