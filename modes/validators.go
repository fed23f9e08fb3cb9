// SPDX-License-Identifier: MIT
// Package: modes
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep builders/solver minimal by delegating scalar/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Scalar scans run in fixed index order and fail on the first violation.
//
// Note:
//   - Each composite validator follows a fixed sequence (nil → shape → values).
//   - Validators report the offending index through validatorErrorf so the
//     caller sees which parameter failed without losing errors.Is matching.

package modes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with positional context.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// validatePositiveFinite scans vals in index order and returns the first
// violation: a non-finite entry maps to ErrNaNInf, a non-positive entry to
// the supplied sentinel (ErrNonPositiveMass or ErrNonPositiveSpring).
//
// Inputs: vals — scalar sequence; label — parameter name for context;
// nonPositive — sentinel to report for entries ≤ 0.
// Complexity: O(len(vals)). Space: O(1).
func validatePositiveFinite(vals []float64, label string, nonPositive error) error {
	for i, v := range vals {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("%s[%d]=%v", label, i, v), ErrNaNInf)
		}
		if v <= 0 {
			return validatorErrorf(fmt.Sprintf("%s[%d]=%v", label, i, v), nonPositive)
		}
	}

	return nil
}

// validatePair checks the (K, M) operand pair of the generalized solve:
// both non-nil, both of matching dimension n ≥ 1. Symmetry is carried by the
// mat.Symmetric type contract; definiteness of M is established later by the
// Cholesky factorization itself.
//
// Returns the shared dimension n on success.
// Errors: ErrNilMatrix, ErrEmptySystem, ErrDimensionMismatch.
// Complexity: O(1).
func validatePair(k, m mat.Symmetric) (int, error) {
	if k == nil {
		return 0, validatorErrorf("stiffness", ErrNilMatrix)
	}
	if m == nil {
		return 0, validatorErrorf("mass", ErrNilMatrix)
	}

	n := k.SymmetricDim()
	if n < 1 {
		return 0, validatorErrorf("stiffness", ErrEmptySystem)
	}
	if m.SymmetricDim() != n {
		return 0, validatorErrorf(
			fmt.Sprintf("stiffness %d×%d vs mass %d×%d", n, n, m.SymmetricDim(), m.SymmetricDim()),
			ErrDimensionMismatch,
		)
	}

	return n, nil
}

// validateParticleIndex checks 0 ≤ i < n for particle addressing in the
// SpringSystem builder. Complexity: O(1).
func validateParticleIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("particle %d of %d", i, n), ErrIndexOutOfRange)
	}

	return nil
}
