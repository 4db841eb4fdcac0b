// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/luciusluo/matrix-inverse/matrix"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, -0.5, 10, 2})

	s, err := matrix.Format(m, 2)
	require.NoError(t, err)
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "-0.50")
	assert.Contains(t, lines[1], "10.00")
	assert.Equal(t, utf8.RuneCountInString(lines[0]), utf8.RuneCountInString(lines[1]), "columns are aligned")

	// Negative precision falls back to DefaultPrecision.
	s, err = matrix.Format(m, -1)
	require.NoError(t, err)
	assert.Contains(t, s, "-0.500000")

	_, err = matrix.Format(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.NoError(t, matrix.Print(&buf, I, 0))
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 2)
}

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	m := RandFilledDense(t, 3, 4, 77)
	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	CompareClose(t, m, back, 0, 0)

	// Views go through the same adapter.
	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	gv, err := matrix.ToGonum(v)
	require.NoError(t, err)
	assert.Equal(t, MustAt(t, m, 2, 2), gv.At(1, 1))
}

func TestGonum_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
