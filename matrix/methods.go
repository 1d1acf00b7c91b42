// SPDX-License-Identifier: MIT

// Package matrix provides the shape-checked kernels: element-wise addition and
// subtraction, matrix product, transpose, and scalar operations.
//
// Every kernel is total. Shape agreement is a property of the signature
// (identical R, C or a shared inner K) and capability agreement is a property
// of the element constraint, so there is no failure path left to report.
// Operands are never mutated; each result is a freshly allocated matrix.
package matrix

import (
	"github.com/s0lst1ce/matrix/algebra"
	"github.com/s0lst1ce/matrix/dim"
)

// Add returns a new matrix with out[i,j] = a[i,j] + b[i,j].
// Stage 1 (Prepare): allocate result.
// Stage 2 (Execute): single flat loop over the row-major buffers.
// Complexity: O(R·C) time and memory.
func Add[T algebra.Adder[T], R, C dim.Dim](a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	res := alloc[T, R, C]()
	av, bv := a.cells(), b.cells()
	for idx := range res.data {
		res.data[idx] = av[idx].Add(bv[idx])
	}

	return res
}

// Sub returns a new matrix with out[i,j] = a[i,j] - b[i,j].
// Complexity: O(R·C) time and memory.
func Sub[T algebra.Subtracter[T], R, C dim.Dim](a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	res := alloc[T, R, C]()
	av, bv := a.cells(), b.cells()
	for idx := range res.data {
		res.data[idx] = av[idx].Sub(bv[idx])
	}

	return res
}

// Mul returns the matrix product a × b.
//
// The inner dimension K is a single type parameter shared by both operands,
// so a (2,3)×(4,5) product cannot be instantiated.
//
// Cell (i,j) accumulates Zero() + a[i,0]·b[0,j] + … + a[i,K-1]·b[K-1,j] in
// ascending k. Multiplication keeps operand order (a on the left), so
// non-commutative element types are handled correctly.
//
// Stage 1 (Prepare): allocate result R×C.
// Stage 2 (Execute): i→j→k triple loop over flat buffers.
// Complexity: O(R·K·C) time and O(R·C) memory.
func Mul[T algebra.Semiring[T], R, K, C dim.Dim](a *Matrix[T, R, K], b *Matrix[T, K, C]) *Matrix[T, R, C] {
	res := alloc[T, R, C]()
	rows, inner := extents[R, K]()
	cols := dim.Of[C]()
	if len(res.data) == 0 {
		return res
	}
	av, bv := a.cells(), b.cells()
	zero := algebra.Zero[T]()

	var (
		i, j, k    int // loop iterators
		rowOffsetA int // i*inner
		rowOffsetR int // i*cols
		acc        T
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * cols
		for j = 0; j < cols; j++ {
			acc = zero
			for k = 0; k < inner; k++ {
				acc = acc.Add(av[rowOffsetA+k].Mul(bv[k*cols+j]))
			}
			res.data[rowOffsetR+j] = acc
		}
	}

	return res
}

// Transpose returns a new C×R matrix with out[j,i] = m[i,j].
// Capability-free: only moves values.
// Complexity: O(R·C).
func Transpose[T any, R, C dim.Dim](m *Matrix[T, R, C]) *Matrix[T, C, R] {
	res := alloc[T, C, R]()
	rows, cols := extents[R, C]()
	src := m.cells()

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[baseSrc+j]
		}
	}

	return res
}

// Scale returns a new matrix with out[i,j] = m[i,j] · s (s on the right).
// Complexity: O(R·C).
func Scale[T algebra.Multiplier[T], R, C dim.Dim](m *Matrix[T, R, C], s T) *Matrix[T, R, C] {
	res := alloc[T, R, C]()
	src := m.cells()
	for idx := range res.data {
		res.data[idx] = src[idx].Mul(s)
	}

	return res
}

// AddScalar returns a new matrix with out[i,j] = m[i,j] + s.
// Complexity: O(R·C).
func AddScalar[T algebra.Adder[T], R, C dim.Dim](m *Matrix[T, R, C], s T) *Matrix[T, R, C] {
	res := alloc[T, R, C]()
	src := m.cells()
	for idx := range res.data {
		res.data[idx] = src[idx].Add(s)
	}

	return res
}
