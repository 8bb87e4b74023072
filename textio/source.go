// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

// StdinName is the command-line argument that selects standard input.
const StdinName = "-"

// Source is a stream a matrix can be read from.
type Source interface {
	// Name identifies the source in messages ("-" for standard input).
	Name() string
	// Open returns a fresh stream; the caller closes it.
	Open() (io.ReadCloser, error)
}

// FileSource reads a named file.
type FileSource struct {
	Path string
}

// Name returns the file path.
func (s FileSource) Name() string { return s.Path }

// Open opens the file; failures are *ResourceError with Op "open".
func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &ResourceError{Name: s.Path, Op: "open", Err: unwrapPathError(err)}
	}

	return f, nil
}

// StdinSource reads standard input. Reader overrides os.Stdin when set.
type StdinSource struct {
	Reader io.Reader
}

// Name returns StdinName.
func (s StdinSource) Name() string { return StdinName }

// Open returns a non-closing view of the reader: closing must not close stdin.
func (s StdinSource) Open() (io.ReadCloser, error) {
	if s.Reader != nil {
		return io.NopCloser(s.Reader), nil
	}

	return io.NopCloser(os.Stdin), nil
}

// SourceFor maps a command-line argument to a Source: "-" selects standard
// input, anything else is a file path.
func SourceFor(arg string) Source {
	if arg == StdinName {
		return StdinSource{}
	}

	return FileSource{Path: arg}
}

// Load opens src, parses one matrix from it and closes it.
//
// Errors:
//   - *ResourceError for open/read/close failures (Name filled from src).
//   - Parse's structural errors, prefixed with the source name.
func Load(src Source) (*matrix.Dense, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, named(src, err)
	}

	m, err := Parse(rc)
	closeErr := rc.Close()
	if err != nil {
		return nil, named(src, err)
	}
	if closeErr != nil {
		return nil, &ResourceError{Name: src.Name(), Op: "close", Err: closeErr}
	}

	return m, nil
}

// named attaches the source name to err.
func named(src Source, err error) error {
	var re *ResourceError
	if errors.As(err, &re) {
		if re.Name == "" {
			re.Name = src.Name()
		}

		return re
	}

	return fmt.Errorf("%s: %w", src.Name(), err)
}

// unwrapPathError drops the *fs.PathError layer: ResourceError already carries
// the operation and the name.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}

	return err
}
