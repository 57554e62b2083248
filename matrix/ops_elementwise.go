// SPDX-License-Identifier: MIT
// Package matrix - tolerance comparison.
//
// Floating-point Strassen results differ from the naive product by the rounding
// of reordered sums; AllClose is the comparison used for those kinds.

package matrix

import "math"

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - Elements are compared in float64, so integer kinds compare exactly for
//     magnitudes below 2^53.
func AllClose[T Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff, bound float64
	for i := 0; i < a.r; i++ {
		x, y := a.row(i), b.row(i)
		for j := range x {
			diff = math.Abs(float64(x[j]) - float64(y[j]))
			bound = atol + rtol*math.Abs(float64(y[j]))
			if !(diff <= bound) { // NaN never passes
				return false, nil
			}
		}
	}

	return true, nil
}
