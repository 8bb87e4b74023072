// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, LU factorization with partial pivoting, determinant,
// refined inversion and Householder QR. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; operands are never mutated.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for an exactly zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opScale         = "Scale"
	opLU            = "LU"
	opDeterminant   = "Determinant"
	opInverse       = "Inverse"
	opDirectInverse = "DirectInverse"
	opQR            = "QR"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Inverse: LU: ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
// The returned value must be treated as read-only by callers.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range src.data {
		res.data[idx] = src.data[idx] * alpha
	}

	return res, nil
}

// LU computes the factorization P·A = L·U with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a flat working buffer.
//   - Stage 2: For k=0..n-1 pick the row with the largest |A[i,k]| (i ≥ k, first
//     maximum wins), swap it into place, record parity, then eliminate below the pivot.
//
// Behavior highlights:
//   - Never fails on singular input: a zero column leaves a zero pivot in U and the
//     factorization continues, so Determinant can report exactly 0.0.
//   - Multipliers are stored in place below the diagonal (unit L implied).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed k→i→j order; ties in pivot magnitude resolve to the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := src.r
	f := &LUFactors{
		n:    n,
		lu:   make([]float64, n*n),
		perm: make([]int, n),
		sign: 1,
	}
	copy(f.lu, src.data)

	var (
		i, j, k        int
		p              int     // pivot row
		maxAbs, absVal float64 // pivot search
		pivot, factor  float64
		a              = f.lu
	)
	for i = 0; i < n; i++ {
		f.perm[i] = i
	}
	for idx := range a {
		if absVal = math.Abs(a[idx]); absVal > f.scale {
			f.scale = absVal
		}
	}

	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p = k
		maxAbs = math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if absVal = math.Abs(a[i*n+k]); absVal > maxAbs {
				maxAbs, p = absVal, i
			}
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		pivot = a[k*n+k]
		if pivot == ZeroPivot {
			continue // whole sub-column is zero; nothing to eliminate
		}
		for i = k + 1; i < n; i++ {
			factor = a[i*n+k] / pivot
			a[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}

	return f, nil
}

// Determinant returns det(P·A) = sign · Π u_kk.
func (f *LUFactors) Determinant() float64 {
	det := f.sign
	for k := 0; k < f.n; k++ {
		det *= f.lu[k*f.n+k]
	}

	return det
}

// Singular reports whether any pivot satisfies |u_kk| <= tol * max|a_ij|.
// An exactly zero pivot is singular for every tol; an all-zero matrix is singular.
func (f *LUFactors) Singular(tol float64) bool {
	threshold := tol * f.scale
	var u float64
	for k := 0; k < f.n; k++ {
		u = math.Abs(f.lu[k*f.n+k])
		if u == ZeroPivot || u <= threshold {
			return true
		}
	}

	return false
}

// inverse solves A·X = I column by column from the factors.
// Precondition: no zero pivot (checked by callers via Singular).
func (f *LUFactors) inverse() (*Dense, error) {
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		col, i, k int
		sum       float64
		x         = make([]float64, n)
		a         = f.lu
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L·y = P·e_col (y stored in x).
		for i = 0; i < n; i++ {
			if f.perm[i] == col {
				sum = 1.0
			} else {
				sum = ZeroSum
			}
			for k = 0; k < i; k++ {
				sum -= a[i*n+k] * x[k]
			}
			x[i] = sum
		}
		// Backward substitution: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = x[i]
			for k = i + 1; k < n; k++ {
				sum -= a[i*n+k] * x[k]
			}
			x[i] = sum / a[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Determinant returns det(m) from a partially pivoted LU factorization.
// A result of exactly 0.0 is a valid answer, not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m Matrix) (float64, error) {
	f, err := LU(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Determinant(), nil
}

// DirectInverse returns the inverse computed straight from the LU factors,
// without the refinement step applied by Inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
func DirectInverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	x0, err := directInverse(m, o)
	if err != nil {
		return nil, matrixErrorf(opDirectInverse, err)
	}

	return x0, nil
}

func directInverse(m Matrix, o Options) (*Dense, error) {
	f, err := LU(m)
	if err != nil {
		return nil, err
	}
	if f.Singular(o.singularTol) {
		return nil, fmt.Errorf("det=%g: %w", f.Determinant(), ErrSingular)
	}

	return f.inverse()
}

// Inverse computes m⁻¹ from a partially pivoted LU factorization followed by
// exactly one Newton–Schulz refinement step.
// Implementation:
//   - Stage 1: ValidateSquare(m); LU(m); reject singular factors (see Options).
//   - Stage 2: X0 = U⁻¹·L⁻¹·P by column-wise triangular solves.
//   - Stage 3: X1 = (2·I − X0·m)·X0, always applied once, no convergence check.
//   - Stage 4: reject non-finite entries when the numeric policy is on.
//
// Behavior highlights:
//   - The refinement shrinks the residual m·X − I for well-conditioned inputs.
//   - One two-sided inverse is returned; no separate left/right variant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrNaNInf.
//
// Complexity:
//   - Time O(n^3) (LU + n solves + two products), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	x0, err := directInverse(m, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	x1, err := refine(m, x0)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if o.validateNaNInf {
		for idx, v := range x1.data {
			if isNonFinite(v) {
				return nil, matrixErrorf(opInverse, denseErrorf(ctxAt, idx/x1.c, idx%x1.c, ErrNaNInf))
			}
		}
	}

	return x1, nil
}

// refine applies one Newton–Schulz step X1 = (2·I − X0·m)·X0.
func refine(m Matrix, x0 *Dense) (*Dense, error) {
	n := x0.r
	product, err := Mul(x0, m)
	if err != nil {
		return nil, err
	}
	twoI, err := NewIdentity(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		twoI.data[i*n+i] = 2.0
	}
	correction, err := Sub(twoI, product)
	if err != nil {
		return nil, err
	}

	return Mul(correction, x0)
}

// QR computes a Householder factorization m = Q·R for any rows×cols input.
// Implementation:
//   - Stage 1: Validate m (not nil); copy A; init the reflector accumulator H to I(rows).
//   - Stage 2: For k=0..min(rows-1, cols)-1 build the reflector of column k and apply it
//     to A and to H (H·m becomes upper triangular).
//   - Stage 3: Q = Hᵀ (full rows×rows, orthogonal), R = Qᵀ·m.
//   - Stage 4: force every strictly sub-diagonal entry of R to exactly 0.0.
//
// Behavior highlights:
//   - Q is the full (not economy) factor; slice Q[:, :cols] and R[:cols, :] for the
//     reduced form (see Dense.Slice).
//   - Zero columns are skipped; no sign canonicalization of diag(R).
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(rows^2*cols), Space O(rows^2 + rows*cols).
func QR(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	rows, cols := src.r, src.c
	a := make([]float64, len(src.data))
	copy(a, src.data)
	h, err := NewIdentity(rows)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	steps := rows - 1
	if cols < steps {
		steps = cols
	}
	v := make([]float64, rows)
	var (
		i, j, k    int
		norm, beta float64
		alpha, tau float64
		sum, aik   float64
	)
	for k = 0; k < steps; k++ {
		// Norm of A[k:rows, k].
		norm = NormZero
		for i = k; i < rows; i++ {
			aik = a[i*cols+k]
			norm += aik * aik
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // zero column
		}

		// alpha = -sign(A[k,k]) * norm avoids cancellation in v[k].
		alpha = -math.Copysign(norm, a[k*cols+k])
		for i = 0; i < k; i++ {
			v[i] = 0
		}
		for i = k; i < rows; i++ {
			v[i] = a[i*cols+k]
		}
		v[k] -= alpha

		beta = NormZero
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// Reflect the remaining columns of A.
		for j = k; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * a[i*cols+j]
			}
			for i = k; i < rows; i++ {
				a[i*cols+j] -= tau * v[i] * sum
			}
		}
		// Accumulate the reflector into H.
		for j = 0; j < rows; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * h.data[i*rows+j]
			}
			for i = k; i < rows; i++ {
				h.data[i*rows+j] -= tau * v[i] * sum
			}
		}
	}

	q, err := Transpose(h)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	// Qᵀ == h, so R = h·m.
	r, err := Mul(h, src)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i = 1; i < rows; i++ {
		for j = 0; j < i && j < cols; j++ {
			r.data[i*cols+j] = 0.0
		}
	}

	return q, r, nil
}
