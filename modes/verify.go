// SPDX-License-Identifier: MIT
// Package modes: residual diagnostics for solved mode sets.

package modes

import (
	"gonum.org/v1/gonum/mat"
)

// Residual measures how well a Result satisfies the generalized eigenproblem
// it came from: for every mode i it evaluates the relative residual
//
//	‖K·vᵢ − λᵢ·M·vᵢ‖₂ / (max(1, ‖K‖F)·‖vᵢ‖₂)
//
// and returns the worst (largest) value across all modes.
//
// Implementation:
//   - Stage 1: validate the (K, M) pair and the Result shape against it.
//   - Stage 2: one matrix-vector pass per mode in ascending mode order.
//
// Behavior highlights:
//   - Pure diagnostic: no inputs are mutated, no state is kept.
//   - The ‖K‖F floor of 1 keeps the ratio finite for the zero stiffness of
//     a single free mass.
//
// Inputs:
//   - k, m: the exact matrices the Result was solved from.
//   - r   : a Result from Solve (or any candidate eigenpair set to audit).
//
// Returns:
//   - float64: the maximum relative residual over all modes; 0 for a
//     perfect solve.
//
// Errors:
//   - ErrNilMatrix          — k, m, r, or r.Shapes is nil.
//   - ErrEmptySystem        — dimension < 1.
//   - ErrDimensionMismatch  — k/m dimensions disagree with each other or
//     with the Result.
//
// Determinism:
//   - Fixed mode order and accumulation order; stable across runs.
//
// Complexity:
//   - Time O(n³) (n modes × O(n²) mat-vec), Space O(n).
//
// AI-Hints:
//   - A healthy double-precision solve of a well-conditioned system lands
//     around 1e-15..1e-12; treat anything above 1e-9 as suspect input.
func Residual(k, m mat.Symmetric, r *Result) (float64, error) {
	n, err := validatePair(k, m)
	if err != nil {
		return 0, modesErrorf(opResidual, err)
	}
	if r == nil || r.Shapes == nil {
		return 0, modesErrorf(opResidual, ErrNilMatrix)
	}
	rows, cols := r.Shapes.Dims()
	if len(r.Omega2) != n || rows != n || cols != n {
		return 0, modesErrorf(opResidual, ErrDimensionMismatch)
	}

	scale := stiffnessScale(k)
	var (
		kv, mv, diff mat.VecDense
		worst        float64
	)
	for i := 0; i < n; i++ {
		shape := r.Shapes.ColView(i)
		kv.MulVec(k, shape)                       // K·v
		mv.MulVec(m, shape)                       // M·v
		diff.AddScaledVec(&kv, -r.Omega2[i], &mv) // K·v − λ·M·v

		shapeNorm := mat.Norm(shape, 2)
		if shapeNorm == 0 {
			return 0, modesErrorf(opResidual, ErrEigenFailed)
		}
		rel := mat.Norm(&diff, 2) / (scale * shapeNorm)
		if rel > worst {
			worst = rel
		}
	}

	return worst, nil
}
