// SPDX-License-Identifier: MIT

// Package textio converts between plain text and matrix.Dense values.
//
// Input grammar (Parse):
//
//   - one matrix per stream, one row per line (\n or \r\n);
//   - entries separated by whitespace and/or a single comma, so
//     "1 2, 3", "1, 2 3" and "1,2,3" are the same row; a trailing comma is
//     tolerated, a leading or doubled comma is not;
//   - a line whose first non-blank character is '#' is a comment;
//   - the first blank line (or end of stream) ends the matrix;
//   - numbers are plain decimal or scientific notation (1.5, -2, .5, 3e10) and must be finite;
//     hex floats and digit underscores are malformed.
//
// Output (FormatMatrix, FormatScalar) prints every value with 17 significant
// digits, entries separated by one space and rows by a newline, so that
// Parse(FormatMatrix(m)) reproduces m. Locale-aware display is opt-in via
// WithLocale and never used for parsing.
//
// Streams come from a Source: a named file, or standard input when the
// command-line argument is "-" (see SourceFor).
package textio
