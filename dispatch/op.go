// SPDX-License-Identifier: MIT
// Package dispatch maps command tokens to matrix operations, checks operand
// counts and shapes, and runs the operation on the numeric core.
//
// Design:
//   • Op is a closed enum; opTable is the single source of truth for tokens,
//     operand counts and help text.
//   • No I/O happens here except Result.Write, which delegates to textio.
//
// Determinism:
//   • Ops() and the token lookup follow the table order.
package dispatch

// Op enumerates the supported operations.
type Op int

// Enum values (stable ordering; also the usage-text order).
const (
	Add           Op = iota // a + b
	Subtract                // a - b
	Multiply                // a · b
	Divide                  // a · b⁻¹
	ReverseDivide           // b⁻¹ · a
	Invert                  // a⁻¹
	Determinant             // det(a)
	Transpose               // aᵀ
	QR                      // a = Q·R
	Info                    // rows × cols
	opCount
)

// opSpec describes one operation: its command tokens, operand count and help line.
type opSpec struct {
	short string // single-letter flag, without "-"
	long  string // long flag, without "--"
	arity int
	help  string
}

// opTable is indexed by Op.
var opTable = [opCount]opSpec{
	Add:           {short: "a", long: "add", arity: 2, help: "Addition"},
	Subtract:      {short: "s", long: "subtract", arity: 2, help: "Subtraction"},
	Multiply:      {short: "m", long: "multiply", arity: 2, help: "Multiplication"},
	Divide:        {short: "d", long: "divide", arity: 2, help: "Division"},
	ReverseDivide: {short: "r", long: "reverseDivide", arity: 2, help: "Reverse division"},
	Invert:        {short: "i", long: "invert", arity: 1, help: "Inversion"},
	Determinant:   {short: "D", long: "determinant", arity: 1, help: "Determinant"},
	Transpose:     {short: "t", long: "transpose", arity: 1, help: "Transpose"},
	QR:            {short: "Q", long: "qr", arity: 1, help: "QR decomposition"},
	Info:          {short: "q", long: "query", arity: 1, help: "Info"},
}

// Ops returns every operation in table order.
func Ops() []Op {
	out := make([]Op, 0, opCount)
	for op := Op(0); op < opCount; op++ {
		out = append(out, op)
	}

	return out
}

// Valid reports whether op is a known operation.
func (op Op) Valid() bool { return op >= 0 && op < opCount }

// String returns the long token (e.g. "reverseDivide"), or "unknown".
func (op Op) String() string {
	if !op.Valid() {
		return "unknown"
	}

	return opTable[op].long
}

// Short returns the single-letter flag name (without the dash).
func (op Op) Short() string {
	if !op.Valid() {
		return ""
	}

	return opTable[op].short
}

// Help returns the one-line description used in usage text.
func (op Op) Help() string {
	if !op.Valid() {
		return ""
	}

	return opTable[op].help
}

// Arity returns the number of matrix operands op consumes (1 or 2; 0 if unknown).
func (op Op) Arity() int {
	if !op.Valid() {
		return 0
	}

	return opTable[op].arity
}

// Lookup resolves a command token ("-a", "--add", …) to its Op.
// Tokens are case-sensitive: "-d" is Divide, "-D" is Determinant.
func Lookup(token string) (Op, bool) {
	for op := Op(0); op < opCount; op++ {
		s := opTable[op]
		if token == "-"+s.short || token == "--"+s.long {
			return op, true
		}
	}

	return 0, false
}
