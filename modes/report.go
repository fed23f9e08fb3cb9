// SPDX-License-Identifier: MIT
// Package modes: textual rendering of solved mode sets.
//
// Presentation only: nothing here participates in the computation, and the
// solver never prints. Callers that want structured access should use
// Result.Mode instead of parsing this output.

package modes

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// String renders the mode set in a compact human-readable form: the
// ascending ω² sequence followed by the shape matrix (one mode per column).
//
// Output layout example for the triatomic chain m=(1,2,1), k=(1,1):
//
//	ω² = [0, 1, 2]
//	shapes (columns) =
//	⎡ 0.5774   0.7071   0.5774⎤
//	⎢ 0.5774   0.0000  -0.5774⎥
//	⎣ 0.5774  -0.7071   0.5774⎦
//
// Complexity: Time O(n²), Space O(n²) for the rendered string.
func (r *Result) String() string {
	if r == nil || r.Shapes == nil {
		return "modes: <empty>"
	}

	var b strings.Builder
	b.WriteString("ω² = [")
	for i, v := range r.Omega2 {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("]\nshapes (columns) =\n")
	fmt.Fprintf(&b, "%.4f", mat.Formatted(r.Shapes, mat.Prefix(""), mat.Squeeze()))

	return b.String()
}
