// SPDX-License-Identifier: MIT

package modes_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/oscillath/modes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithEpsilon_PanicsOnNonsense verifies the programmer-error contract of
// the option constructor: negative or non-finite tolerances panic.
func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { modes.WithEpsilon(-1e-9) }, "negative eps must panic")
	assert.Panics(t, func() { modes.WithEpsilon(math.NaN()) }, "NaN eps must panic")
	assert.Panics(t, func() { modes.WithEpsilon(math.Inf(1)) }, "+Inf eps must panic")
	assert.NotPanics(t, func() { modes.WithEpsilon(0) }, "zero eps is a legal strict policy")
}

// TestSolve_ZeroSnapPolicy compares the default zero-snapping against
// WithNoZeroSnap: both agree within tolerance, but only the snapped run
// reports an exact 0 for the translation mode.
func TestSolve_ZeroSnapPolicy(t *testing.T) {
	k, m := triatomic(t)

	snapped, err := modes.Solve(k, m)
	require.NoError(t, err)
	raw, err := modes.Solve(k, m, modes.WithNoZeroSnap())
	require.NoError(t, err)

	assert.Equal(t, 0.0, snapped.Omega2[0], "default policy reports a clean zero")
	assert.InDelta(t, 0.0, raw.Omega2[0], 1e-9, "raw policy stays within eigensolver noise")
	assert.InDelta(t, snapped.Omega2[2], raw.Omega2[2], 1e-12,
		"snapping must not disturb nonzero eigenvalues")
}

// TestSolve_SignConventionPolicy verifies that WithNoSignConvention keeps
// the raw eigensolver signs while preserving the component ratios, and that
// the default convention makes the largest-magnitude component positive.
func TestSolve_SignConventionPolicy(t *testing.T) {
	k, m := triatomic(t)

	canon, err := modes.Solve(k, m)
	require.NoError(t, err)
	raw, err := modes.Solve(k, m, modes.WithNoSignConvention())
	require.NoError(t, err)

	for i := 0; i < canon.Len(); i++ {
		_, cShape, cErr := canon.Mode(i)
		require.NoError(t, cErr)
		_, rShape, rErr := raw.Mode(i)
		require.NoError(t, rErr)

		// The canonical column pivot must be positive.
		pivot := 0
		for j := 1; j < len(cShape); j++ {
			if math.Abs(cShape[j]) > math.Abs(cShape[pivot]) {
				pivot = j
			}
		}
		assert.Positive(t, cShape[pivot], "canonical pivot of mode %d", i)

		// Raw and canonical columns agree up to a global ±1 factor.
		sign := 1.0
		if rShape[pivot]*cShape[pivot] < 0 {
			sign = -1.0
		}
		for j := range cShape {
			assert.InDelta(t, cShape[j], sign*rShape[j], 1e-12,
				"mode %d component %d differs beyond a sign flip", i, j)
		}
	}
}

// TestSolve_ResidualCheckOption verifies that WithResidualCheck passes on a
// healthy system; the failure surface is covered through the Residual tests
// (the solver reuses the same audit).
func TestSolve_ResidualCheckOption(t *testing.T) {
	k, m := triatomic(t)

	res, err := modes.Solve(k, m, modes.WithResidualCheck())
	require.NoError(t, err, "healthy system must pass its own audit")
	require.Equal(t, 3, res.Len())
}

// TestSolve_TightEpsilonResidualCheck forces a residual-check failure by
// demanding an impossible tolerance, and checks the ErrEigenFailed surface.
func TestSolve_TightEpsilonResidualCheck(t *testing.T) {
	m, err := modes.NewMassMatrix([]float64{2, 3, 1, 5})
	require.NoError(t, err)
	k, err := modes.NewChainStiffness(4, []float64{4, 1, 7})
	require.NoError(t, err)

	_, err = modes.Solve(k, m, modes.WithEpsilon(0), modes.WithResidualCheck())
	assert.ErrorIs(t, err, modes.ErrEigenFailed,
		"eps=0 cannot be met by floating-point arithmetic")
}
