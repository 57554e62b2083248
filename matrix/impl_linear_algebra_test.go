// Package matrix_test verifies element-wise arithmetic and the naive product.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddFixture checks A+B on the 4×4 fixture.
func TestAddFixture(t *testing.T) {
	a := mustFrom(t, 4, 4, fixtureA)
	b := mustFrom(t, 4, 4, fixtureB)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []int64{
		28, 214, 38, 182,
		494, 174, 60, 692,
		335, 476, 850, 270,
		993, 136, 58, 386,
	}, flat(t, sum))

	require.Equal(t, fixtureA, flat(t, a), "operands are never mutated")
}

// TestSubFixture checks A-B on the 4×4 fixture.
func TestSubFixture(t *testing.T) {
	a := mustFrom(t, 4, 4, fixtureA)
	b := mustFrom(t, 4, 4, fixtureB)

	diff, err := matrix.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, []int64{
		-6, -210, 30, 40,
		410, -150, 50, -560,
		329, -390, 20, -230,
		-813, 110, 50, -320,
	}, flat(t, diff))
}

// TestMulFixture checks the naive product on the 4×4 fixture.
func TestMulFixture(t *testing.T) {
	a := mustFrom(t, 4, 4, fixtureA)
	b := mustFrom(t, 4, 4, fixtureB)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, []int64{
		100606, 18821, 14608, 49716,
		67951, 122441, 24957, 76652,
		26815, 265965, 182148, 166300,
		36657, 62817, 23517, 108537,
	}, flat(t, p))
}

// TestMulShape verifies the shape law on a rectangular product and the identity.
func TestMulShape(t *testing.T) {
	a := mustDense[float64](t, 3, 5)
	b := mustDense[float64](t, 5, 2)
	fillRand(a, 1)
	fillRand(b, 2)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	r, c := p.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	id, err := matrix.NewIdentity[float64](5)
	require.NoError(t, err)
	same, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, same))
}

// TestArithmeticErrors checks the sentinels for bad operands.
func TestArithmeticErrors(t *testing.T) {
	a := mustDense[int](t, 2, 3)
	b := mustDense[int](t, 3, 2)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.ErrorIs(t, a.AddInPlace(b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.SubInPlace(nil), matrix.ErrNilMatrix)
}

// TestAdditiveIdentity checks A + 0 == A for an integer and a float kind.
func TestAdditiveIdentity(t *testing.T) {
	ai := mustDense[int32](t, 5, 7)
	fillRand(ai, 7)
	zi, err := matrix.ZerosLike(ai)
	require.NoError(t, err)
	si, err := matrix.Sum(ai, zi)
	require.NoError(t, err)
	require.True(t, matrix.Equal(ai, si))

	af := mustDense[float32](t, 4, 3)
	fillRand(af, 8)
	zf, err := matrix.NewZeros[float32](4, 3)
	require.NoError(t, err)
	sf, err := matrix.Add(af, zf)
	require.NoError(t, err)
	require.True(t, matrix.Equal(af, sf))
}

// TestInPlaceThroughView verifies that in-place ops on a quadrant mutate the parent only there.
func TestInPlaceThroughView(t *testing.T) {
	m := mustFrom(t, 2, 2, []int{1, 2, 3, 4})
	q, err := m.Quadrants()
	require.NoError(t, err)

	one := mustFrom(t, 1, 1, []int{10})
	require.NoError(t, q[0][1].AddInPlace(one))
	require.NoError(t, q[1][0].SubInPlace(one))
	require.Equal(t, []int{1, 12, -7, 4}, flat(t, m))
}

// TestAddViewsWithStride checks Add on two views that do not start at row 0.
func TestAddViewsWithStride(t *testing.T) {
	m := mustFrom(t, 4, 4, []int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	q, err := m.Quadrants()
	require.NoError(t, err)

	s, err := matrix.Add(q[1][1], q[0][0])
	require.NoError(t, err)
	require.False(t, s.IsView())
	require.Equal(t, []int{12, 14, 20, 22}, flat(t, s))
}

// TestEqual covers shape and nil handling.
func TestEqual(t *testing.T) {
	a := mustFrom(t, 1, 2, []int{1, 2})
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, mustFrom(t, 2, 1, []int{1, 2})))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal[int](nil, nil))
}
