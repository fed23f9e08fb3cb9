// SPDX-License-Identifier: MIT
// Package modes: stiffness matrix construction for linear chains.

package modes

import (
	"gonum.org/v1/gonum/mat"
)

// NewChainStiffness builds the symmetric n×n stiffness matrix for a linear
// chain of n particles, where springs[i] couples particle i to particle i+1:
//
//	K[i,i]   = springs[i-1] + springs[i]  (only existing neighbors at the ends)
//	K[i,i+1] = K[i+1,i] = −springs[i]
//	all other entries   = 0               (no long-range coupling)
//
// Implementation:
//   - Stage 1: validate n and the spring sequence (count = n−1, each > 0,
//     finite).
//   - Stage 2: delegate assembly to a SpringSystem, connecting consecutive
//     particles in index order.
//
// Behavior highlights:
//   - n = 1 with an empty spring sequence is legal and yields the 1×1 zero
//     matrix (a single free mass).
//   - The result is positive semi-definite with a one-dimensional null
//     space spanned by (1, 1, …, 1) — uniform translation costs no energy.
//
// Inputs:
//   - n      : declared particle count, ≥ 1.
//   - springs: exactly n−1 spring constants, each > 0 and finite.
//
// Returns:
//   - *mat.SymDense: the stiffness matrix K.
//
// Errors:
//   - ErrEmptySystem       — n < 1.
//   - ErrDimensionMismatch — len(springs) != n−1.
//   - ErrNaNInf            — a non-finite constant.
//   - ErrNonPositiveSpring — a constant ≤ 0.
//
// Determinism:
//   - Fixed assembly order; identical input yields an identical matrix.
//
// Complexity:
//   - Time O(n²) (zeroed allocation dominates), Space O(n²).
//
// AI-Hints:
//   - For non-chain topologies (rings, branched molecules) use SpringSystem
//     directly; this helper is the chain special case.
func NewChainStiffness(n int, springs []float64) (*mat.SymDense, error) {
	if n < 1 {
		return nil, modesErrorf(opStiffness, ErrEmptySystem)
	}
	if len(springs) != n-1 {
		return nil, modesErrorf(opStiffness,
			validatorErrorf("want n-1 springs", ErrDimensionMismatch))
	}
	if err := validatePositiveFinite(springs, "spring", ErrNonPositiveSpring); err != nil {
		return nil, modesErrorf(opStiffness, err)
	}

	sys, err := NewSpringSystem(n)
	if err != nil {
		return nil, modesErrorf(opStiffness, err)
	}
	for i, k := range springs {
		// springs are pre-validated; Connect re-checks bounds and positivity
		if err = sys.Connect(i, i+1, k); err != nil {
			return nil, modesErrorf(opStiffness, err)
		}
	}

	return sys.Stiffness(), nil
}
