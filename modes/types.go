// SPDX-License-Identifier: MIT
// Package modes: result types of the normal-mode solve.

package modes

import (
	"gonum.org/v1/gonum/mat"
)

// Result holds the outcome of one generalized eigensolve K·v = ω²·M·v.
//
// Fields:
//   - Omega2 — squared angular frequencies in ascending order; for a
//     physically valid system all entries are ≥ 0 (the free-translation
//     mode of an unanchored chain sits at exactly 0 when zero-snapping
//     is enabled).
//   - Shapes — n×n matrix whose column i is the unit-norm mode shape
//     paired with Omega2[i]. Component ratios within a column describe
//     the relative displacement of each particle in that mode.
//
// A Result is immutable after Solve returns; concurrent reads are safe.
type Result struct {
	Omega2 []float64
	Shapes *mat.Dense
}

// Len returns the number of modes (the system dimension n).
// Complexity: O(1).
func (r *Result) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Omega2)
}

// Mode returns the i-th eigenpair: the squared frequency and a fresh copy
// of the shape column (callers may mutate the returned slice freely).
//
// Errors:
//   - ErrNilMatrix       — nil receiver or missing shape matrix.
//   - ErrIndexOutOfRange — i outside [0, Len).
//
// Complexity: O(n) for the column copy.
func (r *Result) Mode(i int) (float64, []float64, error) {
	if r == nil || r.Shapes == nil {
		return 0, nil, modesErrorf(opMode, ErrNilMatrix)
	}
	if i < 0 || i >= len(r.Omega2) {
		return 0, nil, modesErrorf(opMode, ErrIndexOutOfRange)
	}

	shape := mat.Col(nil, i, r.Shapes)

	return r.Omega2[i], shape, nil
}
