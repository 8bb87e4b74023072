// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			t.Parallel()
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {0, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rows, cols := m.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.False(t, m.IsSquare())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}

	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.Zero(t, MustAt(t, m, 0, 0), "rejected writes must not modify storage")
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	MustSet(t, cp, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, cp, 0, 0))
}

func TestDense_RawRow(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.RawRow(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	require.Equal(t, 3.0, MustAt(t, m, 1, 0), "RawRow must return a copy")

	_, err = m.RawRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Slice(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	s, err := m.Slice(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, "[5, 6]\n[8, 9]\n", s.String())

	MustSet(t, s, 0, 0, -1)
	require.Equal(t, 5.0, MustAt(t, m, 1, 1), "Slice must copy")

	for _, w := range [][4]int{{0, 0, 0, 1}, {0, 0, 4, 1}, {2, 2, 2, 1}, {-1, 0, 1, 1}} {
		_, err = m.Slice(w[0], w[1], w[2], w[3])
		require.ErrorIs(t, err, matrix.ErrBadShape, "Slice%v", w)
	}
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 0.5}, {-3, 1e-20}})
	require.Equal(t, "[1, 0.5]\n[-3, 1e-20]\n", m.String())
}

// TestHelpers_InterfaceHiding_Fallback ensures that a wrapper hiding the
// concrete type forces the interface path and yields identical results.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 3, 4, 1)
	b := RandFilledDense(t, 3, 4, 2)
	c := RandFilledDense(t, 4, 2, 3)

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, 0)

	fast, err = matrix.Mul(a, c)
	require.NoError(t, err)
	slow, err = matrix.Mul(hide{a}, hide{c})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, tolTight)

	fast, err = matrix.Transpose(a)
	require.NoError(t, err)
	slow, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, 0)
}
