// Package matrix provides generic dense matrices with aliasing views.
//
// The matrix package provides:
//
//   - Dense[T], a row-major strided buffer over any Number kind
//     (signed integers, float32, float64).
//   - Views (View, Quadrants) that alias a rectangle of their parent: writing
//     through a view mutates the parent in place.
//   - Copies (Clone, Crop), bulk population (Fill, NewDenseFrom) and
//     write-back (CopyFrom).
//   - Element-wise Add/Sub, their in-place forms, and the naive product Mul.
//   - Power-of-two padding (PadToSquare, NextPowerOfTwo) used by the Strassen
//     engine in package strassen.
//
// Every public operation validates first and returns a sentinel error
// (errors.go) wrapped with context; nothing is mutated on a failed call.
//
//	a, _ := matrix.NewDenseFrom(2, 2, []int64{1, 2, 3, 4})
//	q, _ := a.Quadrants()
//	_ = q[1][1].Set(0, 0, 40) // a is now [[1 2] [3 40]]
package matrix
