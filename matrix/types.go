// SPDX-License-Identifier: MIT

// Package matrix: element-kind constraints.
// This file contains ONLY the compile-time numeric constraints shared by Dense
// and the multiplication engine. Arithmetic on an element kind outside these
// sets is rejected by the compiler; there is no runtime kind dispatch.
package matrix

// SignedInts is the set of signed integer kinds a Dense may hold.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Integers is the set of exact element kinds. Integer products are compared
// exactly against the naive oracle.
type Integers interface {
	SignedInts
}

// Floats is the set of floating-point element kinds. Reordered summation may
// move the last few ulps, so comparisons use AllClose.
type Floats interface {
	~float32 | ~float64
}

// Number is closed under +, -, * and has T(0) as additive identity.
// Every Dense[T] and every kernel in this module is parameterized by it.
type Number interface {
	Integers | Floats
}
