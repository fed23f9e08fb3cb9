// SPDX-License-Identifier: MIT
// Package modes: mass matrix construction.

package modes

import (
	"gonum.org/v1/gonum/mat"
)

// NewMassMatrix builds the n×n diagonal mass matrix M from an ordered
// sequence of particle masses: M[i,i] = masses[i], zero elsewhere.
// Particles are uncoupled in inertia, so the off-diagonal is structurally
// zero and the result is symmetric positive-definite by construction.
//
// Implementation:
//   - Stage 1: validate the sequence (non-empty, finite, strictly positive).
//   - Stage 2: copy the masses onto the diagonal of a fresh DiagDense.
//
// Behavior highlights:
//   - Pure construction; the input slice is copied, never aliased.
//   - DiagDense implements mat.Symmetric, so the result feeds Solve directly.
//
// Inputs:
//   - masses: one entry per particle, each > 0 and finite.
//
// Returns:
//   - *mat.DiagDense: the mass matrix M.
//
// Errors:
//   - ErrEmptySystem     — zero-length input.
//   - ErrNaNInf          — a non-finite mass.
//   - ErrNonPositiveMass — a mass ≤ 0.
//
// Determinism:
//   - Fixed index order; identical input yields an identical matrix.
//
// Complexity:
//   - Time O(n), Space O(n) (diagonal storage only).
//
// AI-Hints:
//   - Keep masses in consistent units with the spring constants; Solve
//     returns ω² in (spring unit)/(mass unit).
func NewMassMatrix(masses []float64) (*mat.DiagDense, error) {
	if len(masses) == 0 {
		return nil, modesErrorf(opMass, ErrEmptySystem)
	}
	if err := validatePositiveFinite(masses, "mass", ErrNonPositiveMass); err != nil {
		return nil, modesErrorf(opMass, err)
	}

	diag := make([]float64, len(masses))
	copy(diag, masses) // defensive copy: the matrix must not alias caller memory

	return mat.NewDiagDense(len(diag), diag), nil
}
