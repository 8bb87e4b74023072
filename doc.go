// SPDX-License-Identifier: MIT

// Package mtrxmaths is a small numeric engine for elementary dense-matrix
// operations on matrices read from plain text.
//
// Layout:
//
//   - matrix  : the Dense value type; Add/Sub/Mul/Transpose; LU, Determinant,
//     Inverse (LU + one Newton–Schulz step), Divide/ReverseDivide; Householder QR.
//   - textio  : strict text → matrix parsing, file/stdin sources, and the
//     17-significant-digit presenter.
//   - dispatch: operation table (tokens, operand counts), shape validation and
//     execution.
//   - config  : .env / environment defaults for the command.
//   - cmd/mtrxmaths: the command-line front end.
//
// Quick start:
//
//	m, err := textio.Load(textio.SourceFor("m.txt"))
//	if err != nil { ... }
//	inv, err := matrix.Inverse(m)
//	if errors.Is(err, matrix.ErrSingular) { ... }
//	_ = textio.FormatMatrix(os.Stdout, inv)
//
// The engine is synchronous and stateless: every call allocates its result,
// operands are never mutated, and nothing is printed by the core packages.
package mtrxmaths
