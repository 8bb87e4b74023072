// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Singularity policy: Inverse treats the partially pivoted LU as singular when
//     a pivot satisfies |u_kk| <= singularTol * max|a_ij|. A zero pivot is always
//     singular. WithSingularTol(0) reduces the check to the exact-zero
//     pivot test; a determinant that underflows to 0 with non-zero pivots
//     is still invertible.
//   - The threshold scales with the single largest entry, so a badly scaled
//     but well-conditioned matrix such as diag(1e20, 1) is rejected by default.
//   - Numeric policy: validateNaNInf makes Inverse fail with ErrNaNInf instead of
//     returning a matrix with overflowed entries.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTol is the relative pivot threshold used by Inverse.
	// It is a small multiple of float64 machine epsilon (≈2.2e-16).
	DefaultSingularTol = 1e-14

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularTolInvalid = "matrix: WithSingularTol: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	singularTol    float64 // >= 0; DefaultSingularTol
	validateNaNInf bool    // DefaultValidateNaNInf
}

// SingularTol returns the effective relative pivot tolerance.
func (o Options) SingularTol() float64 { return o.singularTol }

// ValidateNaNInf reports whether non-finite results are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithSingularTol sets the relative pivot tolerance used for singularity detection.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - tol = 0 ⇒ only an exactly zero pivot is singular. Determinant may still
//     underflow to 0.0 for an invertible matrix.
//   - Larger tol rejects more ill-conditioned inputs.
func WithSingularTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation of results (use with care).
// Inverse then returns whatever the refinement step produced, overflow included.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions builds an Options value from defaults and setters.
// Stable for a given sequence of opts; last writer wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		singularTol:    DefaultSingularTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
