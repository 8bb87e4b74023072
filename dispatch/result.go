// SPDX-License-Identifier: MIT

package dispatch

import (
	"io"

	"github.com/katalvlaran/mtrxmaths/matrix"
	"github.com/katalvlaran/mtrxmaths/textio"
)

// Kind tags which field of a Result is populated.
type Kind int

const (
	// KindMatrix: Result.Matrix.
	KindMatrix Kind = iota
	// KindScalar: Result.Scalar (determinant).
	KindScalar
	// KindFactors: Result.Q and Result.R.
	KindFactors
	// KindDims: Result.Rows and Result.Cols.
	KindDims
)

// Result is the outcome of Run. Only the fields selected by Kind are meaningful.
type Result struct {
	Kind       Kind
	Matrix     *matrix.Dense
	Scalar     float64
	Q, R       *matrix.Dense
	Rows, Cols int
}

// Write presents the result on w. name labels KindDims output ("name: RxC").
// Factors are written as Q, a blank line, then R, so each block parses back on
// its own.
func (r Result) Write(w io.Writer, name string, opts ...textio.Option) error {
	switch r.Kind {
	case KindScalar:
		return textio.FormatScalar(w, r.Scalar, opts...)
	case KindFactors:
		if err := textio.FormatMatrix(w, r.Q, opts...); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}

		return textio.FormatMatrix(w, r.R, opts...)
	case KindDims:
		return textio.FormatInfo(w, name, r.Rows, r.Cols)
	default:
		return textio.FormatMatrix(w, r.Matrix, opts...)
	}
}
