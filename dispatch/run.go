// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

// Options carries the knobs Run forwards to the numeric core.
type Options struct {
	// Algebra is passed to Inverse, Divide and ReverseDivide (singular tolerance,
	// NaN/Inf policy).
	Algebra []matrix.Option
	// Economy makes QR return the reduced factors Q[:, :cols], R[:cols, :].
	Economy bool
}

// Validate checks the operand count and the shape preconditions of op.
// Implementation:
//   - Stage 1: op must be known; len(operands) must equal op.Arity().
//   - Stage 2: shape rules per operation:
//     Add/Subtract same shape; Multiply a.Cols == b.Rows;
//     Divide b square and a.Cols == b.Rows; ReverseDivide b square and b.Cols == a.Rows.
//     Unary operations only require a non-nil operand; squareness for Invert and
//     Determinant is enforced by the engine itself.
//
// Errors:
//   - ErrUnknownOp, ErrArity, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNonSquare.
func Validate(op Op, operands ...matrix.Matrix) error {
	if !op.Valid() {
		return fmt.Errorf("op %d: %w", int(op), ErrUnknownOp)
	}
	if len(operands) != op.Arity() {
		return dispatchErrorf(op, fmt.Errorf("got %d, want %d: %w", len(operands), op.Arity(), ErrArity))
	}

	var err error
	switch op {
	case Add, Subtract:
		err = matrix.ValidateSameShape(operands[0], operands[1])
	case Multiply:
		err = matrix.ValidateMulCompatible(operands[0], operands[1])
	case Divide:
		err = matrix.ValidateDivideCompatible(operands[0], operands[1])
	case ReverseDivide:
		err = matrix.ValidateReverseDivideCompatible(operands[0], operands[1])
	default:
		err = matrix.ValidateNotNil(operands[0])
	}
	if err != nil {
		return dispatchErrorf(op, err)
	}

	return nil
}

// Run validates the operands and executes op.
//
// Behavior highlights:
//   - Operands are never mutated.
//   - Singular and non-square failures surface as the matrix sentinels.
//
// Errors:
//   - everything Validate reports, plus the engine errors of the operation.
func Run(op Op, operands []matrix.Matrix, opts Options) (Result, error) {
	if err := Validate(op, operands...); err != nil {
		return Result{}, err
	}

	var (
		res Result
		err error
	)
	switch op {
	case Add:
		res.Matrix, err = matrix.Add(operands[0], operands[1])
	case Subtract:
		res.Matrix, err = matrix.Sub(operands[0], operands[1])
	case Multiply:
		res.Matrix, err = matrix.Mul(operands[0], operands[1])
	case Divide:
		res.Matrix, err = matrix.Divide(operands[0], operands[1], opts.Algebra...)
	case ReverseDivide:
		res.Matrix, err = matrix.ReverseDivide(operands[0], operands[1], opts.Algebra...)
	case Invert:
		res.Matrix, err = matrix.Inverse(operands[0], opts.Algebra...)
	case Transpose:
		res.Matrix, err = matrix.Transpose(operands[0])
	case Determinant:
		res.Kind = KindScalar
		res.Scalar, err = matrix.Determinant(operands[0])
	case QR:
		res.Kind = KindFactors
		if opts.Economy {
			res.Q, res.R, err = matrix.EconomyQR(operands[0])
		} else {
			res.Q, res.R, err = matrix.QR(operands[0])
		}
	case Info:
		res.Kind = KindDims
		res.Rows, res.Cols = operands[0].Rows(), operands[0].Cols()
	}
	if err != nil {
		return Result{}, dispatchErrorf(op, err)
	}

	return res, nil
}
