// SPDX-License-Identifier: MIT
// Package modes: incremental spring-topology builder.

package modes

import (
	"gonum.org/v1/gonum/mat"
)

// SpringSystem accumulates pairwise spring couplings for a system of n
// particles and assembles the symmetric stiffness matrix on demand.
//
// The stiffness matrix follows the standard small-oscillation convention:
// K[i,i] is the sum of all spring constants touching particle i and
// K[i,j] (i≠j) is the negated total constant coupling i and j directly.
// Springs connected in parallel between the same pair simply add.
//
// A SpringSystem is not safe for concurrent mutation; assemble it in one
// goroutine, then share the produced matrix freely.
type SpringSystem struct {
	n        int
	coupling *mat.SymDense // accumulated −K off-diagonal / +K diagonal terms
}

// NewSpringSystem creates an empty builder for n particles with no springs.
//
// Errors:
//   - ErrEmptySystem — n < 1.
//
// Complexity: Time O(n²) for the zeroed backing array, Space O(n²).
func NewSpringSystem(n int) (*SpringSystem, error) {
	if n < 1 {
		return nil, modesErrorf(opConnect, ErrEmptySystem)
	}

	return &SpringSystem{
		n:        n,
		coupling: mat.NewSymDense(n, nil),
	}, nil
}

// Len returns the number of particles the builder was declared with.
// Complexity: O(1).
func (s *SpringSystem) Len() int { return s.n }

// Connect attaches a spring of constant k between distinct particles i and j.
// Repeated calls on the same pair model springs in parallel: constants sum.
//
// Implementation:
//   - Stage 1: validate indices (in range, distinct) and k (> 0, finite).
//   - Stage 2: accumulate +k on both diagonal entries and −k on the
//     symmetric off-diagonal entry.
//
// Inputs:
//   - i, j: particle indices in [0, Len).
//   - k   : spring constant, > 0 and finite.
//
// Errors:
//   - ErrIndexOutOfRange   — i or j outside [0, Len).
//   - ErrSelfCoupling      — i == j.
//   - ErrNaNInf            — non-finite k.
//   - ErrNonPositiveSpring — k ≤ 0.
//
// Determinism:
//   - Pure accumulation; the assembled matrix is independent of call order.
//
// Complexity: Time O(1), Space O(1).
func (s *SpringSystem) Connect(i, j int, k float64) error {
	if err := validateParticleIndex(i, s.n); err != nil {
		return modesErrorf(opConnect, err)
	}
	if err := validateParticleIndex(j, s.n); err != nil {
		return modesErrorf(opConnect, err)
	}
	if i == j {
		return modesErrorf(opConnect, ErrSelfCoupling)
	}
	if isNonFinite(k) {
		return modesErrorf(opConnect, ErrNaNInf)
	}
	if k <= 0 {
		return modesErrorf(opConnect, ErrNonPositiveSpring)
	}

	// Diagonal: every spring touching a particle stiffens its own coordinate.
	s.coupling.SetSym(i, i, s.coupling.At(i, i)+k)
	s.coupling.SetSym(j, j, s.coupling.At(j, j)+k)
	// Off-diagonal: direct coupling enters with a negated sign.
	s.coupling.SetSym(i, j, s.coupling.At(i, j)-k)

	return nil
}

// Stiffness returns a copy of the assembled symmetric stiffness matrix.
// The builder remains usable afterwards; further Connect calls do not
// affect previously returned matrices.
//
// Complexity: Time O(n²), Space O(n²).
func (s *SpringSystem) Stiffness() *mat.SymDense {
	out := mat.NewSymDense(s.n, nil)
	out.CopySym(s.coupling)

	return out
}
