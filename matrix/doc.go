// SPDX-License-Identifier: MIT

// Package matrix is the numeric core of mtrxmaths: a dense float64 matrix
// value type and the kernels that operate on it.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with safe accessors (At/Set return errors,
//     never panic) and copy-based windows (Slice).
//   - Element-wise Add/Sub, Mul, Transpose and Scale.
//   - LU with partial pivoting, Determinant, and Inverse refined by exactly one
//     Newton–Schulz step (DirectInverse returns the unrefined first pass).
//   - Divide (a·b⁻¹) and ReverseDivide (b⁻¹·a).
//   - Householder QR returning a full orthogonal Q and an R whose strictly
//     sub-diagonal entries are exactly 0.0 (EconomyQR for the reduced form).
//
// Every kernel returns a freshly allocated *Dense; operands are never mutated,
// nothing is cached, and nothing is printed. Failures are reported through the
// sentinels in errors.go and can be matched with errors.Is.
//
// Singularity is a relative pivot test, |u_kk| <= tol·max|a_ij|, with
// tol = DefaultSingularTol unless overridden by WithSingularTol.
package matrix
