// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4 + 1e-10}})

	cases := []struct {
		name       string
		rtol, atol float64
		want       bool
	}{
		{"exact", 0, 0, false},
		{"atol", 0, 1e-9, true},
		{"rtol", 1e-9, 0, true},
		{"negative tolerances are normalized", -1e-9, 0, true},
		{"too tight", 1e-12, 1e-12, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ok, err := matrix.AllClose(a, b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}

	ok, err := matrix.AllClose(hide{a}, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, -2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3.5, 4}})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 4.0, d)

	_, err = matrix.MaxAbsDiff(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
