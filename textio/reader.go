// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/mtrxmaths/matrix"
)

const (
	commentMark = '#'
	entrySep    = ','
)

// numberPattern is the accepted entry syntax: plain decimal or scientific
// notation. Tokens are screened before strconv.ParseFloat, which also accepts
// Go literal forms such as 0x1p-2 and 1_0.
var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Parse reads one matrix from r.
// Implementation:
//   - Stage 1: read line by line (no length limit); stop at the first blank line or EOF.
//   - Stage 2: skip comment lines; split every other line into entries and parse them.
//   - Stage 3: the first row fixes the column count; build the Dense.
//
// Behavior highlights:
//   - No partial result: any bad line fails the whole parse.
//   - Input after the terminating blank line is ignored.
//   - An inline '#' after entries is not a comment; it fails as a malformed number.
//
// Errors:
//   - ErrEmptyMatrix, ErrRowLengthMismatch, ErrMalformedNumber (wrapped with the line number).
//   - *ResourceError (Op "read") when r fails.
//
// Complexity:
//   - Time O(len(input)), Space O(rows*cols).
func Parse(r io.Reader) (*matrix.Dense, error) {
	br := bufio.NewReader(r)

	var (
		rows   [][]float64
		cols   int
		lineNo int
	)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, &ResourceError{Op: "read", Err: readErr}
		}
		if line == "" && readErr != nil {
			break // EOF with nothing pending
		}
		lineNo++

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break // blank line terminates the matrix
		}
		if trimmed[0] == commentMark {
			if readErr != nil {
				break
			}
			continue
		}

		row, err := parseRow(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(rows) == 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("line %d: %d entries, want %d: %w", lineNo, len(row), cols, ErrRowLengthMismatch)
		}
		rows = append(rows, row)

		if readErr != nil {
			break // last line had no trailing newline
		}
	}

	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}

	return matrix.NewDenseFromRows(rows)
}

// parseRow splits a trimmed, non-empty, non-comment line into finite values.
func parseRow(line string) ([]float64, error) {
	tokens, err := splitEntries(line)
	if err != nil {
		return nil, err
	}
	row := make([]float64, len(tokens))
	for i, tok := range tokens {
		if !numberPattern.MatchString(tok) {
			return nil, fmt.Errorf("entry %d %q: %w", i+1, tok, ErrMalformedNumber)
		}
		v, perr := strconv.ParseFloat(tok, 64)
		if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("entry %d %q: %w", i+1, tok, ErrMalformedNumber)
		}
		row[i] = v
	}

	return row, nil
}

// splitEntries tokenizes a row. Entries are separated by whitespace and/or one
// comma; whitespace around the comma is consumed with it. A comma at the very
// end of the line is accepted. A comma before the first entry or directly after
// another comma is reported as a malformed entry.
func splitEntries(line string) ([]string, error) {
	var (
		tokens    []string
		sawComma  bool // a separator comma is pending since the last entry
		i, start  int
		r         rune
		size      int
		isBreakAt = func(r rune) bool { return r == entrySep || unicode.IsSpace(r) }
	)
	for i < len(line) {
		r, size = utf8.DecodeRuneInString(line[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == entrySep:
			if len(tokens) == 0 || sawComma {
				return nil, fmt.Errorf("entry %d %q: %w", len(tokens)+1, string(entrySep), ErrMalformedNumber)
			}
			sawComma = true
			i += size
		default:
			start = i
			for i < len(line) {
				r, size = utf8.DecodeRuneInString(line[i:])
				if isBreakAt(r) {
					break
				}
				i += size
			}
			tokens = append(tokens, line[start:i])
			sawComma = false
		}
	}

	return tokens, nil
}
