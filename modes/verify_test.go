// SPDX-License-Identifier: MIT

package modes_test

import (
	"testing"

	"github.com/katalvlaran/oscillath/modes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestResidual_HealthySolve verifies that a fresh solve audits close to
// machine precision.
func TestResidual_HealthySolve(t *testing.T) {
	k, m := triatomic(t)

	res, err := modes.Solve(k, m)
	require.NoError(t, err)

	worst, err := modes.Residual(k, m, res)
	require.NoError(t, err)
	assert.Less(t, worst, 1e-12, "a 3×3 well-conditioned solve should audit near machine epsilon")
}

// TestResidual_DetectsCorruption checks that a deliberately corrupted
// eigenvalue produces a large residual: the audit is not a tautology.
func TestResidual_DetectsCorruption(t *testing.T) {
	k, m := triatomic(t)

	res, err := modes.Solve(k, m)
	require.NoError(t, err)
	res.Omega2[2] += 0.5 // corrupt the symmetric-stretch eigenvalue

	worst, err := modes.Residual(k, m, res)
	require.NoError(t, err)
	assert.Greater(t, worst, 1e-3, "a corrupted eigenpair must fail the audit loudly")
}

// TestResidual_Errors walks the argument sentinels of the audit.
func TestResidual_Errors(t *testing.T) {
	k, m := triatomic(t)

	_, err := modes.Residual(k, m, nil)
	assert.ErrorIs(t, err, modes.ErrNilMatrix, "nil result must error")

	_, err = modes.Residual(nil, m, &modes.Result{})
	assert.ErrorIs(t, err, modes.ErrNilMatrix, "nil stiffness must error")

	// A result of the wrong dimension must be rejected before any mat-vec.
	wrong := &modes.Result{
		Omega2: []float64{0, 1},
		Shapes: mat.NewDense(2, 2, nil),
	}
	_, err = modes.Residual(k, m, wrong)
	assert.ErrorIs(t, err, modes.ErrDimensionMismatch, "2-mode result against a 3×3 pair must error")
}
