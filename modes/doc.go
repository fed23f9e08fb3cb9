// SPDX-License-Identifier: MIT

// Package modes computes the normal modes of coupled spring–mass systems:
// build a mass matrix and a stiffness matrix, then solve the generalized
// eigenproblem K·v = ω²·M·v for squared mode frequencies and mode shapes.
//
// 🚀 What is a normal mode?
//
//	An independent oscillation pattern in which every particle moves at
//	one common frequency ω. The eigenvalue λ = ω² sets the pitch; the
//	eigenvector (mode shape) sets the relative displacement amplitudes.
//	Classic territory:
//	  • molecular vibrations (the linear triatomic chain below)
//	  • lattice phonons and coupled-pendulum demos
//	  • modal analysis of small mechanical assemblies
//
// ✨ Key features:
//   - NewMassMatrix: validated diagonal SPD mass matrix
//   - NewChainStiffness / SpringSystem: chain or arbitrary spring topology
//   - Solve: Cholesky reduction + symmetric eigensolve — never M⁻¹·K
//   - ascending ω², unit-norm shapes, canonical signs, zero-snapping
//   - Residual: per-mode audit of ‖K·v − λ·M·v‖ against tolerance
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/oscillath/modes"
//
//	m, _ := modes.NewMassMatrix([]float64{1, 2, 1})     // CO₂-like chain
//	k, _ := modes.NewChainStiffness(3, []float64{1, 1}) // two unit springs
//
//	res, err := modes.Solve(k, m)
//	// res.Omega2 → [0, 1, 2]; res.Shapes column 0 ∝ (1, 1, 1)
//
// Errors are package sentinels matched with errors.Is: invalid physical
// parameters surface from the builders (ErrNonPositiveMass,
// ErrNonPositiveSpring, …), a non-SPD mass matrix as ErrSingularMass, and
// eigensolver breakdown as ErrEigenFailed.
//
// Performance:
//
//   - Time:   O(n³) per solve (dense Cholesky + symmetric eigensolver)
//   - Memory: O(n²)
//
// All functions are pure and synchronous; results are immutable after
// return, so sharing them across goroutines needs no locking.
package modes
