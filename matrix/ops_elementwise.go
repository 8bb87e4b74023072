// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels.
//
// Purpose:
//   - Tolerance-based comparisons used by tests, residual checks and callers that
//     verify factorization quality (Q·R ≈ A, A·A⁻¹ ≈ I).
//
// Determinism:
//   - Fixed flat traversal; early exit on the first violation in AllClose.

package matrix

import "math"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1) for *Dense operands.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// ewMaxAbsDiff returns the largest absolute element-wise difference.
func ewMaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	da, err := toDense(a)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	db, err := toDense(b)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}

	var worst, d float64
	for idx := range da.data {
		if d = math.Abs(da.data[idx] - db.data[idx]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
