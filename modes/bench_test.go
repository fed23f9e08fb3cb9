// SPDX-License-Identifier: MIT

package modes_test

import (
	"testing"

	"github.com/katalvlaran/oscillath/modes"
)

// benchmarkChainSolve builds a uniform chain of n particles and times the
// full solve. It resets the timer after setup and fails on unexpected errors.
func benchmarkChainSolve(b *testing.B, n int) {
	masses := make([]float64, n)
	springs := make([]float64, n-1)
	for i := range masses {
		masses[i] = 1 + float64(i%3) // mildly uneven masses, still well-conditioned
	}
	for i := range springs {
		springs[i] = 1 + float64(i%2)
	}

	m, err := modes.NewMassMatrix(masses)
	if err != nil {
		b.Fatalf("NewMassMatrix failed: %v", err)
	}
	k, err := modes.NewChainStiffness(n, springs)
	if err != nil {
		b.Fatalf("NewChainStiffness failed: %v", err)
	}

	b.ResetTimer() // ignore builder time
	for i := 0; i < b.N; i++ {
		if _, err = modes.Solve(k, m); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Chain8 times the solve on a small 8-particle chain.
func BenchmarkSolve_Chain8(b *testing.B) { benchmarkChainSolve(b, 8) }

// BenchmarkSolve_Chain32 times the solve on a medium 32-particle chain.
func BenchmarkSolve_Chain32(b *testing.B) { benchmarkChainSolve(b, 32) }

// BenchmarkSolve_Chain128 times the solve on a large 128-particle chain.
func BenchmarkSolve_Chain128(b *testing.B) { benchmarkChainSolve(b, 128) }

// BenchmarkResidual_Chain32 times the audit alone on a pre-solved system.
func BenchmarkResidual_Chain32(b *testing.B) {
	masses := make([]float64, 32)
	springs := make([]float64, 31)
	for i := range masses {
		masses[i] = 2
	}
	for i := range springs {
		springs[i] = 3
	}

	m, err := modes.NewMassMatrix(masses)
	if err != nil {
		b.Fatalf("NewMassMatrix failed: %v", err)
	}
	k, err := modes.NewChainStiffness(32, springs)
	if err != nil {
		b.Fatalf("NewChainStiffness failed: %v", err)
	}
	res, err := modes.Solve(k, m)
	if err != nil {
		b.Fatalf("Solve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = modes.Residual(k, m, res); err != nil {
			b.Fatalf("Residual failed: %v", err)
		}
	}
}
