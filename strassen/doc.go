// Package strassen multiplies dense matrices with Strassen's seven-product
// recursion, falling back to the naive triple loop on small blocks.
//
// 🚀 What is Strassen?
//
//	Splitting both operands into 2×2 blocks, seven block products (instead of
//	eight) plus eighteen block additions give the full product. Recursing on
//	the blocks brings the cost from O(n³) down to O(n^2.807).
//
// ✨ Key features:
//   - generic over matrix.Number: int, int8..int64, float32, float64
//   - any shape: operands are zero-padded to a power-of-two square and the
//     result is cropped back
//   - Parallel variant: seven product tasks per level, joined before the
//     recombination, bounded by WithMaxWorkers and WithParallelDepth
//   - Sequential variant: one product subtree at a time, for large inputs
//   - exact agreement with Naive for integer kinds
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFrom(2, 3, []int64{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.NewDenseFrom(3, 1, []int64{1, 0, -1})
//	c, err := strassen.Multiply(a, b)                       // 2×1
//	c, err = strassen.Multiply(a, b, strassen.WithMinRows(1)) // recurse to 1×1
//
// Thresholds:
//
//   - side ≤ MinRows (DefaultMinRows=64): naive base case
//   - padded side ≥ MaxRows (DefaultMaxRows=2048): Auto picks Sequential
//
// The variant is chosen once per call from the padded side; see Select.
package strassen
