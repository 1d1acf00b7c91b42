// SPDX-License-Identifier: MIT
// Package matrix - element-wise and row-level operations.
//
// Purpose:
//   - Hadamard product and element-type mapping (pure, allocate a result).
//   - In-place accumulation (AddInPlace, ScaleInPlace) for callers that own dst.
//   - Elementary row operations: ScaleRow (dilation) and AddRow (transvection);
//     SwapRows (permutation) lives on the type since it needs no capability.
//
// Failure policy:
//   - In-place operations validate everything first and only then write, so a
//     failing call never leaves dst partially updated.

package matrix

import (
	"fmt"

	"github.com/s0lst1ce/matrix/algebra"
	"github.com/s0lst1ce/matrix/dim"
)

// Hadamard returns the element-wise product out[i,j] = a[i,j] · b[i,j].
// Complexity: O(R·C).
func Hadamard[T algebra.Multiplier[T], R, C dim.Dim](a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	res := alloc[T, R, C]()
	av, bv := a.cells(), b.cells()
	for idx := range res.data {
		res.data[idx] = av[idx].Mul(bv[idx])
	}

	return res
}

// Map returns a new matrix of the same shape with out[i,j] = f(m[i,j]).
// The element type may change, e.g. lifting weights into a semiring.
// Complexity: O(R·C).
func Map[T, U any, R, C dim.Dim](m *Matrix[T, R, C], f func(T) U) *Matrix[U, R, C] {
	res := alloc[U, R, C]()
	src := m.cells()
	for idx := range res.data {
		res.data[idx] = f(src[idx])
	}

	return res
}

// AddInPlace performs dst[i,j] = dst[i,j] + src[i,j].
// Errors: ErrNilMatrix when dst is nil. A nil src reads as zeros.
// Complexity: O(R·C).
func AddInPlace[T algebra.Adder[T], R, C dim.Dim](dst, src *Matrix[T, R, C]) error {
	if dst == nil {
		return matrixErrorf(opAddInPlace, ErrNilMatrix)
	}
	sv := src.cells() // read before materialising: src may be dst
	dst.materialise()
	for idx := range dst.data {
		dst.data[idx] = dst.data[idx].Add(sv[idx])
	}

	return nil
}

// ScaleInPlace performs dst[i,j] = dst[i,j] · s.
// Errors: ErrNilMatrix when dst is nil.
// Complexity: O(R·C).
func ScaleInPlace[T algebra.Multiplier[T], R, C dim.Dim](dst *Matrix[T, R, C], s T) error {
	if dst == nil {
		return matrixErrorf(opScaleInPlace, ErrNilMatrix)
	}
	dst.materialise()
	for idx := range dst.data {
		dst.data[idx] = dst.data[idx].Mul(s)
	}

	return nil
}

// ScaleRow multiplies every cell of one row by factor (row dilation).
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrIndexOutOfBounds; on error m is untouched.
// Complexity: O(C).
func ScaleRow[T algebra.Multiplier[T], R, C dim.Dim](m *Matrix[T, R, C], row int, factor T) error {
	if m == nil {
		return matrixErrorf(opScaleRow, ErrNilMatrix)
	}
	if err := ValidateDims[R, C](); err != nil {
		return fmt.Errorf("%s(%d): %w", opScaleRow, row, err)
	}
	r, c := extents[R, C]()
	if err := validateLine(row, r); err != nil {
		return fmt.Errorf("%s(%d): %w", opScaleRow, row, err)
	}
	m.materialise()
	line := m.data[row*c : (row+1)*c]
	for j := range line {
		line[j] = line[j].Mul(factor)
	}

	return nil
}

// AddRow adds row source onto row target, cell by cell (row transvection):
//
//	m[target,j] = m[target,j] + m[source,j]
//
// Adding a row onto itself is rejected with ErrWrongOperation; that is a
// dilation by two and ScaleRow expresses it.
//
// Errors (checked in this order): ErrNilMatrix, ErrInvalidDimensions,
// ErrIndexOutOfBounds, ErrWrongOperation. On error m is untouched.
// Complexity: O(C).
func AddRow[T algebra.Adder[T], R, C dim.Dim](m *Matrix[T, R, C], target, source int) error {
	if m == nil {
		return matrixErrorf(opAddRow, ErrNilMatrix)
	}
	if err := ValidateDims[R, C](); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", opAddRow, target, source, err)
	}
	r, c := extents[R, C]()
	if validateLine(target, r) != nil || validateLine(source, r) != nil {
		return fmt.Errorf("%s(%d,%d): %w", opAddRow, target, source, ErrIndexOutOfBounds)
	}
	if target == source {
		return fmt.Errorf("%s(%d,%d): %w", opAddRow, target, source, ErrWrongOperation)
	}
	m.materialise()
	dst, src := m.data[target*c:(target+1)*c], m.data[source*c:(source+1)*c]
	for j := range dst {
		dst[j] = dst[j].Add(src[j])
	}

	return nil
}
