package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := mustDense[int](t, 4, 4)
	rect := mustDense[int](t, 4, 2)
	odd := mustDense[int](t, 3, 3)

	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.NoError(t, matrix.ValidateSameShape(sq, sq.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidatePowerOfTwo(sq))
	require.ErrorIs(t, matrix.ValidatePowerOfTwo(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidatePowerOfTwo(odd), matrix.ErrNotPowerOfTwo)

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, rect), matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := mustFrom(t, 1, 3, []float64{1, 2, 3})
	b := mustFrom(t, 1, 3, []float64{1, 2, 3 + 1e-12})

	ok, err := matrix.AllClose(a, b, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, mustDense[float64](t, 3, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
