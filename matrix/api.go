// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed by the central validators; facades only compose or forward.

package matrix

const (
	opDivide        = "Divide"
	opReverseDivide = "ReverseDivide"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Division (inverse-based) ----------

// Divide computes a · b⁻¹ (right division).
// Implementation:
//   - Stage 1: ValidateDivideCompatible(a, b): b square, a.Cols == b.Rows.
//   - Stage 2: Inverse(b, opts...) (refined), then Mul(a, b⁻¹).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (b), ErrDimensionMismatch, ErrSingular, ErrNaNInf.
//
// Complexity:
//   - Time O(n^3 + r*n^2) for a r×n and b n×n.
func Divide(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateDivideCompatible(a, b); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	inv, err := Inverse(b, opts...)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	res, err := Mul(a, inv)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return res, nil
}

// ReverseDivide computes b⁻¹ · a (left division).
// Implementation:
//   - Stage 1: ValidateReverseDivideCompatible(a, b): b square, b.Cols == a.Rows.
//   - Stage 2: Inverse(b, opts...) (refined), then Mul(b⁻¹, a).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (b), ErrDimensionMismatch, ErrSingular, ErrNaNInf.
func ReverseDivide(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateReverseDivideCompatible(a, b); err != nil {
		return nil, matrixErrorf(opReverseDivide, err)
	}
	inv, err := Inverse(b, opts...)
	if err != nil {
		return nil, matrixErrorf(opReverseDivide, err)
	}
	res, err := Mul(inv, a)
	if err != nil {
		return nil, matrixErrorf(opReverseDivide, err)
	}

	return res, nil
}

// ---------- Reduced factors ----------

// EconomyQR returns the reduced factors of QR(m) for rows ≥ cols:
// Q₁ = Q[:, :cols] (rows×cols) and R₁ = R[:cols, :] (cols×cols).
// For rows < cols the full factors are returned unchanged.
func EconomyQR(m Matrix) (*Dense, *Dense, error) {
	q, r, err := QR(m)
	if err != nil {
		return nil, nil, err
	}
	rows, cols := r.Shape()
	if rows <= cols {
		return q, r, nil
	}
	q1, err := q.Slice(0, 0, rows, cols)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	r1, err := r.Slice(0, 0, cols, cols)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q1, r1, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Delegates to the elementwise kernel.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// MaxAbsDiff returns max|a[i,j] - b[i,j]| for identical shapes.
func MaxAbsDiff(a, b Matrix) (float64, error) { return ewMaxAbsDiff(a, b) }
