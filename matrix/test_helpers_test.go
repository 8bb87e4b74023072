// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

// Tolerances shared by the numeric tests.
const (
	tolResidual = 1e-9  // M·M⁻¹ ≈ I, Q·R ≈ M, QᵀQ ≈ I
	tolTight    = 1e-12 // exact-in-theory identities computed in float64
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return d
}

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return I
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1) values.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// WellConditioned returns a random n×n matrix made strictly diagonally dominant
// by adding n to the diagonal, which keeps its condition number small.
func WellConditioned(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n))
	}

	return m
}

// CompareClose asserts AllClose(a, b, rtol, atol) holds.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	if !ok {
		diff, _ := matrix.MaxAbsDiff(a, b)
		t.Fatalf("AllClose=false (rtol=%g, atol=%g, max|Δ|=%g)", rtol, atol, diff)
	}
}

// Residual returns max|m·x - I|.
func Residual(t *testing.T, m, x matrix.Matrix) float64 {
	t.Helper()
	prod, err := matrix.Mul(m, x)
	require.NoError(t, err)
	d, err := matrix.MaxAbsDiff(prod, MustIdentity(t, m.Rows()))
	require.NoError(t, err)

	return d
}
