package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// ExampleDense_Quadrants shows that quadrant views write through to their parent.
func ExampleDense_Quadrants() {
	m, _ := matrix.NewDenseFrom(4, 4, []int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	q, _ := m.Quadrants()

	ones, _ := matrix.NewDenseFrom(2, 2, []int{100, 100, 100, 100})
	_ = q[1][1].AddInPlace(ones)

	fmt.Print(m)
	// Output:
	// 1 2 3 4
	// 5 6 7 8
	// 9 10 111 112
	// 13 14 115 116
}

// ExampleDense_PadToPowerOfTwo pads a 2×3 matrix to 4×4 with zeros.
func ExampleDense_PadToPowerOfTwo() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{1.5, 2, 3, 4, 5, 6})
	p, _ := m.PadToPowerOfTwo()

	fmt.Print(p)
	// Output:
	// 1.5 2 3 0
	// 4 5 6 0
	// 0 0 0 0
	// 0 0 0 0
}
