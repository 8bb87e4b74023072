// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

// TestRefine_SquaresTheResidual perturbs an exact inverse and checks that one
// Newton–Schulz step contracts the error quadratically: I - m·X1 = (I - m·X0)².
func TestRefine_SquaresTheResidual(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	exact, err := matrix.DirectInverse(m)
	require.NoError(t, err)

	const eps = 1e-4
	x0 := exact.Clone().(*matrix.Dense)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			MustSet(t, x0, i, j, MustAt(t, x0, i, j)+eps*float64(j-1))
		}
	}
	before := Residual(t, m, x0)
	require.Greater(t, before, eps)

	x1, err := matrix.Refine_TestOnly(m, x0)
	require.NoError(t, err)
	after := Residual(t, m, x1)
	require.Less(t, after, before*before*10)
	require.Less(t, after, 1e-6)
}

func TestLUFactors_SingularThreshold(t *testing.T) {
	t.Parallel()

	f, err := matrix.LU(MustFromRows(t, [][]float64{{2, 0}, {0, 1e-3}}))
	require.NoError(t, err)
	require.Equal(t, 2.0, matrix.LUScale_TestOnly(f))

	require.False(t, f.Singular(0))
	require.False(t, f.Singular(1e-4)) // 1e-3 > 2e-4
	require.True(t, f.Singular(6e-4))  // 1e-3 <= 1.2e-3
}
