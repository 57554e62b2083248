// Package strassen is the root of a small dense-matrix toolkit built around
// Strassen's fast multiplication.
//
// 🚀 What is inside?
//
//	A generic, allocation-aware matrix type and a fast multiplier on top of it:
//		• matrix/   – Dense[T] storage, zero-copy quadrant views, padding,
//		              element-wise add/sub (fresh and in place), naive product
//		• strassen/ – seven-product recursion with Parallel and Sequential
//		              variants, configurable thresholds, bounded fork-join
//		• cmd/strassenbench – timing harness, naive vs Strassen
//
// ✨ Why use it?
//
//   - Generic over int, int8..int64, float32, float64; no interface boxing
//   - Views share storage, so the recursion writes results straight into
//     the parent's quadrants
//   - Integer products agree exactly with the naive triple loop
//   - Sentinel errors checked with errors.Is; no panics on bad input
//
// ⚙️ Quick start:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []int{1, 2, 3, 4})
//	b, _ := matrix.NewDenseFrom(2, 2, []int{5, 6, 7, 8})
//	c, err := strassen.Multiply(a, b)
//
// See the package docs of matrix and strassen for details.
package strassen
