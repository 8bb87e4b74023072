// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - The divisor of Divide/ReverseDivide is checked for squareness before the
//    inner dimension, so a non-square divisor reports ErrNonSquare.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense is also rejected.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Inputs: two Matrix values (nil is rejected).
// Return: nil, ErrNilMatrix or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols() == b.Rows() for a×b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDivideCompatible checks the operands of a · b⁻¹:
// b must be square and a.Cols() must equal b.Rows().
//
// Errors: ErrNilMatrix, ErrNonSquare (b), ErrDimensionMismatch.
// Complexity: O(1).
func ValidateDivideCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateDivideCompatible", err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf("ValidateDivideCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateDivideCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateReverseDivideCompatible checks the operands of b⁻¹ · a:
// b must be square and b.Cols() must equal a.Rows().
//
// Errors: ErrNilMatrix, ErrNonSquare (b), ErrDimensionMismatch.
// Complexity: O(1).
func ValidateReverseDivideCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateReverseDivideCompatible", err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf("ValidateReverseDivideCompatible", err)
	}
	if b.Cols() != a.Rows() {
		return validatorErrorf("ValidateReverseDivideCompatible", ErrDimensionMismatch)
	}

	return nil
}
