// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition and subtraction (fresh and
// in-place), the naive matrix product and exact equality on Dense values.
// All functions perform strict fail-fast validation and return clear errors on
// dimension mismatches before touching any operand.
//
// Notes:
//   - Kernels walk rows of the strided buffer, so owned matrices and views share one path.
//   - All kernels use central validators and wrap via matrixErrorf with an op* tag.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMul        = "Mul"
	opAllClose   = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSubInto writes dst = a ± b row by row. Shapes are already validated.
// dst may be a or b (in-place forms), since each cell is read before written.
func addSubInto[T Number](dst, a, b *Dense[T], sub bool) {
	var i, j int
	for i = 0; i < dst.r; i++ {
		d, x, y := dst.row(i), a.row(i), b.row(i)
		if sub {
			for j = range d {
				d[j] = x[j] - y[j]
			}
			continue
		}
		for j = range d {
			d[j] = x[j] + y[j]
		}
	}
}

// addSub computes out = a ± b into a freshly allocated owned Dense.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result.
//   - Stage 2: fixed i→j walk over the rows of both operands.
//
// Behavior highlights:
//   - Inputs remain immutable; views are read through their strides.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, stride: a.c, data: make([]T, a.r*a.c)}
	addSubInto(res, a, b, sub)

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh owned Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh owned Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// AddInPlace performs m += b.
// MAIN DESCRIPTION:
//   - In-place accumulation; when m is a view the parent's window changes.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; m is untouched on error.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	addSubInto(m, m, b, false)

	return nil
}

// SubInPlace performs m -= b. Same contract as AddInPlace.
func (m *Dense[T]) SubInPlace(b *Dense[T]) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	addSubInto(m, m, b, true)

	return nil
}

// Mul performs the naive matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row slices; C[i,j] accumulates A[i,k]*B[k,j] for k = 0..n-1.
//
// Behavior highlights:
//   - Each output cell starts at T(0) and sums its terms in ascending k, the
//     same order as the textbook i→j→k accumulator; integer results are exact.
//   - One allocation for C; operands are never mutated.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := &Dense[T]{r: a.r, c: b.c, stride: b.c, data: make([]T, a.r*b.c)}
	mulInto(res, a, b)

	return res, nil
}

// mulInto accumulates a·b into dst, which must be zero and shaped a.r×b.c.
func mulInto[T Number](dst, a, b *Dense[T]) {
	var i, k, j int
	var av T
	for i = 0; i < a.r; i++ {
		ar, cr := a.row(i), dst.row(i)
		for k = 0; k < a.c; k++ {
			av = ar[k]
			br := b.row(k)
			for j = range cr {
				cr[j] += av * br[j]
			}
		}
	}
}

// Equal reports whether a and b have the same shape and identical elements.
// Nil matrices are equal only to each other.
// Complexity: O(r*c).
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := 0; i < a.r; i++ {
		x, y := a.row(i), b.row(i)
		for j := range x {
			if x[j] != y[j] {
				return false
			}
		}
	}

	return true
}
