// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Keep shapes in named aliases so each test reads like the math it checks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/s0lst1ce/matrix/dim"
	"github.com/s0lst1ce/matrix/matrix"
	"github.com/s0lst1ce/matrix/scalar"
)

// Shape aliases used across tests.
type (
	int2x2 = matrix.Matrix[scalar.Int, dim.D2, dim.D2]
	int2x3 = matrix.Matrix[scalar.Int, dim.D2, dim.D3]
	int3x2 = matrix.Matrix[scalar.Int, dim.D3, dim.D2]
	int3x3 = matrix.Matrix[scalar.Int, dim.D3, dim.D3]
	u8_3x2 = matrix.Matrix[scalar.Uint8, dim.D3, dim.D2]
	u8_2x3 = matrix.Matrix[scalar.Uint8, dim.D2, dim.D3]
	u8_3x3 = matrix.Matrix[scalar.Uint8, dim.D3, dim.D3]
)

// zeroExtent is a caller-declared, degenerate extent.
type zeroExtent struct{}

func (zeroExtent) N() int { return 0 }

// negExtent is a caller-declared extent that violates the positive contract.
type negExtent struct{}

func (negExtent) N() int { return -1 }

// three is a caller-declared extent equal in size to dim.D3 but a distinct type.
type three struct{}

func (three) N() int { return 3 }

// mustNew BUILDS an R×C matrix from row-major values or fails the test.
func mustNew[T any, R, C dim.Dim](t testing.TB, vals ...T) *matrix.Matrix[T, R, C] {
	t.Helper()
	m, err := matrix.New[T, R, C](vals...)
	require.NoError(t, err)

	return m
}

// ints converts plain ints into scalar.Int values.
func ints(vs ...int) []scalar.Int { return scalar.Cast[scalar.Int](vs...) }

// u8s converts plain ints into scalar.Uint8 values.
func u8s(vs ...int) []scalar.Uint8 { return scalar.Cast[scalar.Uint8](vs...) }

// exampleA is [[1,2],[3,4]].
func exampleA(t testing.TB) *int2x2 {
	return mustNew[scalar.Int, dim.D2, dim.D2](t, ints(1, 2, 3, 4)...)
}

// exampleB is [[5,6],[7,8]].
func exampleB(t testing.TB) *int2x2 {
	return mustNew[scalar.Int, dim.D2, dim.D2](t, ints(5, 6, 7, 8)...)
}

// setup3x2 mirrors the u8 fixture [[1,2],[3,4],[5,6]].
func setup3x2(t testing.TB) *u8_3x2 {
	return mustNew[scalar.Uint8, dim.D3, dim.D2](t, u8s(1, 2, 3, 4, 5, 6)...)
}

// setup2x3 mirrors the u8 fixture [[9,8,7],[6,5,4]].
func setup2x3(t testing.TB) *u8_2x3 {
	return mustNew[scalar.Uint8, dim.D2, dim.D3](t, u8s(9, 8, 7, 6, 5, 4)...)
}

// setup3x3 mirrors the u8 fixture [[1,2,1],[3,4,1],[1,5,6]].
func setup3x3(t testing.TB) *u8_3x3 {
	return mustNew[scalar.Uint8, dim.D3, dim.D3](t, u8s(1, 2, 1, 3, 4, 1, 1, 5, 6)...)
}

// randomInts FILLS an R×C matrix with deterministic small integers in [-9, 9].
// Small magnitudes keep products far from overflow.
func randomInts[R, C dim.Dim](t testing.TB, rng *rand.Rand) *matrix.Matrix[scalar.Int, R, C] {
	t.Helper()
	vals := make([]scalar.Int, dim.Size[R, C]())
	for i := range vals {
		vals[i] = scalar.Int(rng.Intn(19) - 9)
	}

	return mustNew[scalar.Int, R, C](t, vals...)
}
