// SPDX-License-Identifier: MIT

// Package modes: functional configuration for the normal-mode solver and its
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package modes

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by zero-snapping
	// and residual verification. Relative to the Frobenius norm of K.
	DefaultEpsilon = 1e-9

	// DefaultZeroSnap rounds eigenvalues with |λ| ≤ eps·max(1, ‖K‖F) to
	// exactly 0. Free-translation modes then report a clean ω² = 0 instead
	// of factorization noise on the order of machine epsilon.
	DefaultZeroSnap = true

	// DefaultSignConvention flips each mode shape so that its
	// largest-magnitude component is positive. Eigenvector sign is
	// mathematically arbitrary; fixing it keeps runs comparable.
	DefaultSignConvention = true

	// DefaultResidualCheck controls whether Solve verifies
	// ‖K·v − λ·M·v‖ ≤ eps·max(1, ‖K‖F)·‖v‖ for every mode before returning.
	DefaultResidualCheck = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "modes: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps        float64 // >= 0; DefaultEpsilon
	snapZero   bool    // DefaultZeroSnap
	signCanon  bool    // DefaultSignConvention
	residCheck bool    // DefaultResidualCheck
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by zero-snapping and
// residual verification.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Inputs:
//   - eps: non-negative finite tolerance, relative to ‖K‖F.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - 1e-9 suits well-conditioned double-precision systems; widen it only
//     when masses or spring constants span many orders of magnitude.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithZeroSnap enables snapping of near-zero eigenvalues to exactly 0
// (the default). Applies to |λ| ≤ eps·max(1, ‖K‖F).
//
// Complexity: Time O(1), Space O(1).
func WithZeroSnap() Option {
	return func(o *Options) { o.snapZero = true }
}

// WithNoZeroSnap disables zero-snapping: eigenvalues are reported exactly
// as the eigensolver produced them, including tiny negative values on the
// zero mode caused by floating-point noise.
//
// Complexity: Time O(1), Space O(1).
//
// AI-Hints:
//   - Use when you want to inspect the raw numerical quality of the solve;
//     pair with Residual for a quantitative picture.
func WithNoZeroSnap() Option {
	return func(o *Options) { o.snapZero = false }
}

// WithSignConvention enables the canonical sign rule (the default): each
// shape column is flipped so its largest-magnitude component is positive.
//
// Complexity: Time O(1), Space O(1).
func WithSignConvention() Option {
	return func(o *Options) { o.signCanon = true }
}

// WithNoSignConvention keeps the raw eigenvector signs as returned by the
// underlying eigensolver. Only the component ratios within a column remain
// meaningful; signs may differ across library versions.
//
// Complexity: Time O(1), Space O(1).
func WithNoSignConvention() Option {
	return func(o *Options) { o.signCanon = false }
}

// WithResidualCheck makes Solve verify every returned (λ, v) pair against
// K·v = λ·M·v before returning; a violation surfaces as ErrEigenFailed.
// Implementation:
//   - Stage 1: set residCheck=true; the check itself runs inside Solve.
//
// Complexity:
//   - Time O(1) to set; the check later is O(n³) over all modes.
//
// AI-Hints:
//   - Intended for ingest of externally supplied K/M where conditioning is
//     unknown; for builder-constructed chains the property tests already
//     pin the residual down.
func WithResidualCheck() Option {
	return func(o *Options) { o.residCheck = true }
}

// WithNoResidualCheck disables post-solve residual verification (default).
//
// Complexity: Time O(1), Space O(1).
func WithNoResidualCheck() Option {
	return func(o *Options) { o.residCheck = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for all public facades.
// Implementation:
//   - Stage 1: start from the documented Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:        DefaultEpsilon,
		snapZero:   DefaultZeroSnap,
		signCanon:  DefaultSignConvention,
		residCheck: DefaultResidualCheck,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
