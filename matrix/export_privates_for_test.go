// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED kernels to matrix_test ONLY, so the refinement step and
//     the singularity threshold can be verified without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.
//
// Provided Surface:
//   - Refine_TestOnly: one Newton–Schulz step on a caller-supplied X0.
//   - LUScale_TestOnly: the max|a_ij| recorded by LU.
//   - panic message exports to avoid "magic strings" in tests.

// Refine_TestOnly forwards to the private refine kernel.
func Refine_TestOnly(m Matrix, x0 *Dense) (*Dense, error) {
	return refine(m, x0)
}

// LUScale_TestOnly returns the magnitude the relative pivot test is scaled by.
func LUScale_TestOnly(f *LUFactors) float64 { return f.scale }

// Panic message exports to avoid "magic strings" in tests.
const PanicSingularTolInvalid_TestOnly = panicSingularTolInvalid
