// SPDX-License-Identifier: MIT
// Package modes: the generalized eigensolve K·v = ω²·M·v.
//
// Purpose:
//   - Reduce the symmetric-definite pencil (K, M) to a standard symmetric
//     eigenproblem through the Cholesky factor of M and solve it with the
//     library eigensolver.
//   - Never form M⁻¹·K: the explicit inverse amplifies conditioning error,
//     while the triangular reduction below is the stable classical route
//     (the same one LAPACK's dsygv takes).

package modes

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMass      = "MassMatrix"
	opStiffness = "ChainStiffness"
	opConnect   = "Connect"
	opSolve     = "Solve"
	opResidual  = "Residual"
	opMode      = "Mode"
)

// modesErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
//
// Complexity: Time O(1), Space O(1).
func modesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve computes all normal modes of the system described by the stiffness
// matrix K and the mass matrix M: every (λ, v) with K·v = λ·M·v, λ = ω².
//
// Implementation:
//   - Stage 1: validate the pair (non-nil, matching dimension n ≥ 1) and
//     factorize M = L·Lᵀ (Cholesky). Failure means M is not
//     positive-definite — a physically meaningless system.
//   - Stage 2: reduce to the standard symmetric problem
//     C = L⁻¹·K·L⁻ᵀ  via two triangular solves (Z = L⁻¹·K, C = L⁻¹·Zᵀ),
//     symmetrize C against round-off, and run the symmetric eigensolver.
//   - Stage 3: back-transform each eigenvector (Lᵀ·V = Y), normalize every
//     column to unit Euclidean norm, then apply the configured policies:
//     zero-snapping of |λ| ≤ eps·max(1, ‖K‖F), canonical signs, and the
//     optional residual check.
//
// Behavior highlights:
//   - Eigenvalues are returned in ascending order (the eigensolver's native
//     order), giving a deterministic, documented layout.
//   - The whole computation stays in real arithmetic; no complex residue
//     can appear, so no imaginary-part filtering is needed.
//   - Inputs are never mutated; identical inputs produce identical Results.
//
// Inputs:
//   - k   : symmetric stiffness matrix (n×n, positive semi-definite).
//   - m   : symmetric positive-definite mass matrix (n×n); builders return
//     a *mat.DiagDense which satisfies mat.Symmetric directly.
//   - opts: functional options (see options.go). Zero options = defaults.
//
// Returns:
//   - *Result: ascending ω² plus unit-norm shape columns, column i ↔ Omega2[i].
//
// Errors:
//   - ErrNilMatrix          — k or m is nil.
//   - ErrEmptySystem        — dimension < 1.
//   - ErrDimensionMismatch  — k and m of different dimension.
//   - ErrSingularMass       — M not positive-definite (Cholesky failed).
//   - ErrEigenFailed        — eigensolver did not converge, or the optional
//     residual check found a violating mode.
//
// Determinism:
//   - Fixed pipeline and ascending eigenvalue order; stable across runs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - For chains from the builders, the defaults are right; reach for
//     WithResidualCheck when K/M come from external, unvetted sources.
//   - ω (not ω²) is math.Sqrt(Omega2[i]) — safe after zero-snapping since
//     no snapped value is negative.
func Solve(k, m mat.Symmetric, opts ...Option) (*Result, error) {
	opt := gatherOptions(opts...)

	n, err := validatePair(k, m)
	if err != nil {
		return nil, modesErrorf(opSolve, err)
	}

	// Stage 1: Cholesky factorization M = L·Lᵀ.
	var chol mat.Cholesky
	if ok := chol.Factorize(m); !ok {
		return nil, modesErrorf(opSolve, ErrSingularMass)
	}
	l := mat.NewTriDense(n, mat.Lower, nil)
	chol.LTo(l)

	// Stage 2: reduce to C = L⁻¹·K·L⁻ᵀ.
	// Z = L⁻¹·K, then C = L⁻¹·Zᵀ (Zᵀ = K·L⁻ᵀ because K is symmetric).
	var z, c mat.Dense
	if err = z.Solve(l, k); err != nil && !isConditionErr(err) {
		return nil, modesErrorf(opSolve, ErrSingularMass)
	}
	if err = c.Solve(l, z.T()); err != nil && !isConditionErr(err) {
		return nil, modesErrorf(opSolve, ErrSingularMass)
	}
	// Symmetrize: the two solves introduce round-off asymmetry on the order
	// of machine epsilon, while EigenSym requires an exactly symmetric input.
	cs := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cs.SetSym(i, j, 0.5*(c.At(i, j)+c.At(j, i)))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(cs, true); !ok {
		return nil, modesErrorf(opSolve, ErrEigenFailed)
	}
	omega2 := es.Values(nil) // ascending by the EigenSym contract
	var y mat.Dense
	es.VectorsTo(&y)

	// Stage 3: back-transform V = L⁻ᵀ·Y and normalize columns.
	var v mat.Dense
	if err = v.Solve(l.T(), &y); err != nil && !isConditionErr(err) {
		return nil, modesErrorf(opSolve, ErrSingularMass)
	}
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		mat.Col(col, j, &v)
		nrm := floats.Norm(col, 2)
		if nrm == 0 {
			// A zero column cannot come out of a nonsingular back-substitution.
			return nil, modesErrorf(opSolve, ErrEigenFailed)
		}
		floats.Scale(1/nrm, col)
		if opt.signCanon {
			canonicalizeSign(col)
		}
		v.SetCol(j, col)
	}

	if opt.snapZero {
		snapZeros(omega2, opt.eps*stiffnessScale(k))
	}

	res := &Result{Omega2: omega2, Shapes: &v}
	if opt.residCheck {
		worst, rErr := Residual(k, m, res)
		if rErr != nil {
			return nil, modesErrorf(opSolve, rErr)
		}
		if worst > opt.eps {
			return nil, modesErrorf(opSolve,
				validatorErrorf(fmt.Sprintf("max relative residual %.3e", worst), ErrEigenFailed))
		}
	}

	return res, nil
}

// isConditionErr reports whether err is gonum's mat.Condition marker: the
// solve succeeded but the operand is ill-conditioned. The factor L of a
// positive-definite M is nonsingular, so the solution is still valid and
// only genuine failures abort the pipeline.
func isConditionErr(err error) bool {
	var cond mat.Condition

	return errors.As(err, &cond)
}

// canonicalizeSign flips col in place so that its largest-magnitude
// component is positive. Ties resolve to the earliest index, keeping the
// rule deterministic. Complexity: O(n).
func canonicalizeSign(col []float64) {
	pivot := 0
	for i := 1; i < len(col); i++ {
		if math.Abs(col[i]) > math.Abs(col[pivot]) {
			pivot = i
		}
	}
	if col[pivot] < 0 {
		floats.Scale(-1, col)
	}
}

// snapZeros rounds every |λ| ≤ tol to exactly 0 in place. Complexity: O(n).
func snapZeros(vals []float64, tol float64) {
	for i, v := range vals {
		if math.Abs(v) <= tol {
			vals[i] = 0
		}
	}
}

// stiffnessScale returns max(1, ‖K‖F), the scale against which eigenvalue
// noise and residuals are judged. The floor of 1 keeps the tolerance
// meaningful for the all-zero stiffness of a single free mass.
// Complexity: O(n²).
func stiffnessScale(k mat.Symmetric) float64 {
	return math.Max(1, mat.Norm(k, 2))
}
