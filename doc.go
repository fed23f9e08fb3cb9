// Package oscillath is a compact toolkit for small-oscillation analysis
// of coupled spring–mass systems — build mass and stiffness matrices,
// then extract normal modes through a generalized eigensolve.
//
// 🚀 What is oscillath?
//
//	A focused, deterministic library that brings together:
//		• Mass matrices: diagonal, strictly positive, validated at build time
//		• Stiffness matrices: linear chains + arbitrary spring topologies
//		• Normal modes: K·v = ω²·M·v via Cholesky reduction + symmetric eigensolve
//		• Mode shapes: unit-norm columns with a stable sign convention
//		• Diagnostics: per-mode residual verification against K·v − λ·M·v
//
// ✨ Why choose oscillath?
//
//   - Physically honest – SPD/PSD invariants enforced, never M⁻¹·K
//   - Deterministic – ascending eigenvalues, canonical shape signs
//   - Sentinel errors – every failure matches with errors.Is
//   - Built on gonum – LAPACK-grade Cholesky and symmetric eigensolver
//
// Everything lives in a single subpackage:
//
//	modes/ — builders (mass, stiffness, SpringSystem), Solve, Residual
//
// Quick ASCII example:
//
//	    m₁ ~~k₁~~ m₂ ~~k₂~~ m₃
//
//	a linear triatomic chain: two springs, three masses, three normal
//	modes (one of which is free translation, ω² = 0).
//
// See modes/example_test.go for runnable walkthroughs, starting with the
// classic CO₂-like chain m = (1, 2, 1), k = (1, 1) → ω² = {0, 1, 2}.
//
//	go get github.com/katalvlaran/oscillath/modes
package oscillath
