// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Structural parse failures. Each is returned wrapped with the line number
// (and token, where relevant); match with errors.Is.
var (
	// ErrEmptyMatrix indicates that no row-bearing line precedes the first blank line or EOF.
	ErrEmptyMatrix = errors.New("textio: empty matrix")

	// ErrRowLengthMismatch indicates a row whose entry count differs from the first row.
	ErrRowLengthMismatch = errors.New("textio: row length mismatch")

	// ErrMalformedNumber indicates a token that is not a finite real number.
	ErrMalformedNumber = errors.New("textio: malformed number")
)

// ResourceError reports that a stream could not be opened or read.
// It is distinct from the structural errors above: the text was never seen.
type ResourceError struct {
	Name string // source name ("-" for standard input)
	Op   string // "open", "read" or "close"
	Err  error  // underlying OS error
}

// Error implements error.
func (e *ResourceError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("textio: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("textio: %s %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap exposes the underlying OS error to errors.Is / errors.As.
func (e *ResourceError) Unwrap() error { return e.Err }

// NotFound reports whether the resource does not exist.
func (e *ResourceError) NotFound() bool { return errors.Is(e.Err, fs.ErrNotExist) }
