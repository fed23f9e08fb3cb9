// SPDX-License-Identifier: MIT
// Package modes: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the modes
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package modes

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "modes: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape/size -> physical validity (positivity, finiteness)
// -> definiteness (singular mass) -> numerical convergence.

var (
	// ErrNilMatrix indicates that a nil matrix (or nil Result) was passed
	// where a concrete operand is required.
	ErrNilMatrix = errors.New("modes: nil matrix")

	// ErrEmptySystem is returned when a system with zero particles is
	// requested (empty mass sequence, or particle count n < 1).
	ErrEmptySystem = errors.New("modes: system must contain at least one particle")

	// ErrNonPositiveMass signals a mass value ≤ 0. A zero or negative mass
	// makes the mass matrix indefinite and the physics meaningless, so it is
	// rejected at construction time rather than surfacing later as a
	// singular factorization.
	ErrNonPositiveMass = errors.New("modes: mass must be > 0")

	// ErrNonPositiveSpring signals a spring constant ≤ 0. Springs only pull
	// back; a non-positive constant breaks positive semi-definiteness of the
	// stiffness matrix.
	ErrNonPositiveSpring = errors.New("modes: spring constant must be > 0")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g. a spring count that does not equal n−1 for a declared chain of n
	// particles, or K and M of different dimension.
	ErrDimensionMismatch = errors.New("modes: dimension mismatch")

	// ErrIndexOutOfRange indicates that a particle or mode index is outside
	// valid bounds. Public indexers MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("modes: index out of range")

	// ErrSelfCoupling is returned when a spring is attached from a particle
	// to itself; self-loops carry no restoring force between coordinates.
	ErrSelfCoupling = errors.New("modes: spring endpoints must be distinct")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (masses, spring constants).
	ErrNaNInf = errors.New("modes: NaN or Inf encountered")

	// ErrSingularMass indicates that the mass matrix is not symmetric
	// positive-definite, so its Cholesky factorization — and with it the
	// generalized eigenproblem — is ill-posed.
	ErrSingularMass = errors.New("modes: mass matrix is not positive-definite")

	// ErrEigenFailed indicates that the underlying symmetric eigensolver
	// failed to converge, or that a requested post-solve residual check
	// found a mode violating K·v = λ·M·v within tolerance.
	ErrEigenFailed = errors.New("modes: eigen decomposition failed")
)
