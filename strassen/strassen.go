// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opMultiply        = "Multiply"
	opMultiplyInPlace = "MultiplyInPlace"
	opNaive           = "Naive"
)

// strassenErrorf wraps err with an operation tag, preserving it for errors.Is.
func strassenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Naive returns a·b computed by the triple loop. It is the recursion's base
// case and the oracle the Strassen results are checked against.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·k·n).
func Naive[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	p, err := matrix.Mul(a, b)
	if err != nil {
		return nil, strassenErrorf(opNaive, err)
	}

	return p, nil
}

// Multiply returns a·b computed with Strassen's algorithm.
// MAIN DESCRIPTION:
//   - Pads both operands to the smallest power-of-two square holding
//     max(a.Rows, a.Cols, b.Cols), runs the selected recursion in place on the
//     padded copies and returns the a.Rows×b.Cols top-left block as an owned
//     matrix. a and b are never mutated.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); reject empty operands.
//   - Stage 2: resolve options; pick the variant once from the padded side.
//   - Stage 3: pad, recurse, crop.
//
// Behavior highlights:
//   - All validation happens before any goroutine starts.
//   - Integer kinds match Naive exactly; float kinds match within rounding of
//     the reordered sums.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (a.Cols != b.Rows),
//     matrix.ErrBadShape (an operand with a zero dimension).
//
// Complexity:
//   - Time O(n^log2(7)) for padded side n, Space O(n²) per live recursion level
//     (seven operand pairs per level for Parallel, one for Sequential).
func Multiply[T matrix.Number](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	if a.Rows() == 0 || a.Cols() == 0 || b.Cols() == 0 {
		return nil, strassenErrorf(opMultiply, fmt.Errorf("%dx%d by %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrBadShape))
	}

	o := gatherOptions(opts...)
	n := matrix.NextPowerOfTwo(max(a.Rows(), a.Cols(), b.Cols()))

	pa, err := a.PadToSquare(n)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	pb, err := b.PadToSquare(n)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	if err = newEngine[T](o).run(pa, pb, o.resolve(n)); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	res, err := pa.Crop(a.Rows(), b.Cols())
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	return res, nil
}

// MultiplyInPlace overwrites a with a·b using the selected recursion.
// Both operands must be square with the same power-of-two side; b is only read
// and may alias a.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotPowerOfTwo,
// matrix.ErrDimensionMismatch (different sides). a is untouched on error.
func MultiplyInPlace[T matrix.Number](a, b *matrix.Dense[T], opts ...Option) error {
	if err := matrix.ValidatePowerOfTwo(a); err != nil {
		return strassenErrorf(opMultiplyInPlace, err)
	}
	if err := matrix.ValidatePowerOfTwo(b); err != nil {
		return strassenErrorf(opMultiplyInPlace, err)
	}
	if a.Rows() != b.Rows() {
		return strassenErrorf(opMultiplyInPlace, matrix.ErrDimensionMismatch)
	}

	o := gatherOptions(opts...)
	if err := newEngine[T](o).run(a, b, o.resolve(a.Rows())); err != nil {
		return strassenErrorf(opMultiplyInPlace, err)
	}

	return nil
}
