// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

// Precision is the number of significant digits printed per value; 17 digits
// round-trip every float64.
const Precision = 17

const (
	entryGap   = ' '
	rowBreak   = '\n'
	localeVerb = "%.17g" // keep in sync with Precision
)

// Option configures the presenter.
type Option func(*options)

type options struct {
	printer *message.Printer // nil ⇒ fixed, locale-free strconv output
}

// WithLocale renders values through a golang.org/x/text/message printer for
// tag (locale decimal and grouping separators). Output produced this way is for
// display only; Parse always expects the fixed format.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.printer = message.NewPrinter(tag) }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// formatValue renders v with Precision significant digits.
func (o options) formatValue(v float64) string {
	if o.printer != nil {
		return o.printer.Sprintf(localeVerb, v)
	}

	return strconv.FormatFloat(v, 'g', Precision, 64)
}

// FormatMatrix writes m with one row per line and entries separated by a single space.
// No column alignment is applied.
//
// Errors:
//   - matrix.ErrNilMatrix, or the first write error from w.
func FormatMatrix(w io.Writer, m matrix.Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)

	rows, cols := m.Rows(), m.Cols()
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if j > 0 {
				_ = bw.WriteByte(entryGap)
			}
			_, _ = bw.WriteString(o.formatValue(v))
		}
		_ = bw.WriteByte(rowBreak)
	}

	return bw.Flush()
}

// FormatScalar writes v followed by a newline.
func FormatScalar(w io.Writer, v float64, opts ...Option) error {
	o := gatherOptions(opts...)
	_, err := io.WriteString(w, o.formatValue(v)+string(rowBreak))

	return err
}

// FormatInfo writes "name: RxC" followed by a newline.
func FormatInfo(w io.Writer, name string, rows, cols int) error {
	_, err := fmt.Fprintf(w, "%s: %dx%d\n", name, rows, cols)

	return err
}
