// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the dense kernels.
// This file intentionally contains ONLY domain-facing types. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Every kernel in this package accepts a Matrix and returns a fresh *Dense;
// *Dense operands unlock flat-slice fast paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// LUFactors holds a partially pivoted LU factorization P·A = L·U of a square matrix.
//   - lu stores L strictly below the diagonal (unit diagonal implied) and U on/above it.
//   - perm[i] is the original row placed at row i after pivoting.
//   - sign is +1 or -1 depending on the parity of row swaps.
//   - scale is max|A[i,j]|, kept for relative singularity checks.
type LUFactors struct {
	n     int
	lu    []float64 // row-major n*n, combined L\U
	perm  []int     // row permutation
	sign  float64   // (-1)^swaps
	scale float64   // max absolute entry of the factorized matrix
}

// Size returns the order n of the factorized matrix.
func (f *LUFactors) Size() int { return f.n }

// Sign returns +1 for an even number of row swaps and -1 otherwise.
func (f *LUFactors) Sign() float64 { return f.sign }

// Pivots returns a copy of U's diagonal in pivoted order.
func (f *LUFactors) Pivots() []float64 {
	out := make([]float64, f.n)
	for i := 0; i < f.n; i++ {
		out[i] = f.lu[i*f.n+i]
	}

	return out
}

// Perm returns a copy of the row permutation.
func (f *LUFactors) Perm() []int {
	out := make([]int, f.n)
	copy(out, f.perm)

	return out
}
