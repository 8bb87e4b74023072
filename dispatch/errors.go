// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
)

// Sentinel errors. Shape problems are reported with the matrix package
// sentinels (matrix.ErrDimensionMismatch, matrix.ErrNonSquare, …).
var (
	// ErrUnknownOp indicates an Op outside the table or an unrecognized token.
	ErrUnknownOp = errors.New("dispatch: unknown operation")

	// ErrArity indicates the wrong number of operands for the operation.
	ErrArity = errors.New("dispatch: wrong number of operands")
)

// dispatchErrorf tags err with the operation name.
func dispatchErrorf(op Op, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
