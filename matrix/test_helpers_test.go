// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep fixtures integer-valued so float kinds compare exactly where expected.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// fixtureA and fixtureB are the 4×4 operands used across add/sub/mul tests.
var (
	fixtureA = []int64{
		11, 2, 34, 111,
		452, 12, 55, 66,
		332, 43, 435, 20,
		90, 123, 54, 33,
	}
	fixtureB = []int64{
		17, 212, 4, 71,
		42, 162, 5, 626,
		3, 433, 415, 250,
		903, 13, 4, 353,
	}
)

// mustDense ALLOCATES an r×c zero matrix or fails the test (fatal on error).
func mustDense[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustFrom builds an r×c matrix from row-major values or fails the test.
func mustFrom[T matrix.Number](tb testing.TB, r, c int, values []T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, values)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Number](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// fillRand fills m with small integers in [-50, 50) from a fixed seed, so
// every element kind holds exactly the same values.
func fillRand[T matrix.Number](m *matrix.Dense[T], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ T) T { return T(rng.Intn(100) - 50) })
}

// flat returns the row-major contents of m.
func flat[T matrix.Number](tb testing.TB, m *matrix.Dense[T]) []T {
	tb.Helper()
	out := make([]T, 0, m.Rows()*m.Cols())
	m.Do(func(_, _ int, v T) bool {
		out = append(out, v)
		return true
	})

	return out
}
