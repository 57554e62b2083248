// SPDX-License-Identifier: MIT

// Package matrix - power-of-two padding.
//
// Zero padding preserves products under x+0=x and x·0=0: the top-left r×c block
// of (pad(A)·pad(B)) equals A·B. Strassen recursion relies on this to halve
// evenly at every level.

package matrix

import "fmt"

const ctxPad = "PadToSquare"

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// NextPowerOfTwo returns the smallest power of two ≥ n (1 for n ≤ 1).
// Complexity: O(log n).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// PadToSquare returns a new owned n×n zero matrix with m copied into its
// top-left corner.
// MAIN DESCRIPTION:
//   - Pads with T(0) to the requested square side; m is never mutated.
//
// Implementation:
//   - Stage 1: require n ≥ max(rows, cols).
//   - Stage 2: allocate n×n zeros, copy m row by row.
//
// Inputs:
//   - n: target side, normally NextPowerOfTwo(max(rows, cols)).
//
// Errors:
//   - ErrBadShape when n is smaller than either dimension.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Dense[T]) PadToSquare(n int) (*Dense[T], error) {
	if n < m.r || n < m.c {
		return nil, fmt.Errorf("Dense.%s(%d) on %dx%d: %w", ctxPad, n, m.r, m.c, ErrBadShape)
	}
	res := &Dense[T]{r: n, c: n, stride: n, data: make([]T, n*n)}
	for i := 0; i < m.r; i++ {
		copy(res.row(i), m.row(i))
	}

	return res, nil
}

// PadToPowerOfTwo pads m to the smallest power-of-two square holding it.
// Complexity: O(n²) for the padded side n.
func (m *Dense[T]) PadToPowerOfTwo() (*Dense[T], error) {
	return m.PadToSquare(NextPowerOfTwo(max(m.r, m.c)))
}
