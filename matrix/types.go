// SPDX-License-Identifier: MIT

// Package matrix: the Matrix type and its shape helpers.
// Shape is carried ONLY by the R and C type parameters; the struct holds the
// cells and nothing else.
package matrix

import "github.com/s0lst1ce/matrix/dim"

// Matrix is an R×C matrix of T stored row-major (offset = i*C + j).
//
// Invariants:
//   - Once materialised, len(data) == R·C.
//   - A nil *Matrix and the zero Matrix value read as all Go-zero cells.
//     Writing through Set materialises the zero value; a nil pointer cannot be written.
//
// Complexity notes: Rows/Cols/Shape are O(1) and allocation-free; Clone is O(R·C).
type Matrix[T any, R, C dim.Dim] struct {
	data []T // row-major cells; nil until materialised
}

// extents returns (rows, cols) of an R×C shape.
func extents[R, C dim.Dim]() (int, int) { return dim.Of[R](), dim.Of[C]() }

// cellCount is R·C clamped to 0 for degenerate (non-positive) extents, so
// internal allocation never panics on caller-declared bad Dims.
func cellCount[R, C dim.Dim]() int {
	r, c := extents[R, C]()
	if r <= 0 || c <= 0 {
		return 0
	}

	return r * c
}

// alloc returns a fresh R×C matrix of Go-zero cells. Callers that need the
// algebraic zero must fill explicitly (e.g. min-plus Zero is +Inf).
func alloc[T any, R, C dim.Dim]() *Matrix[T, R, C] {
	return &Matrix[T, R, C]{data: make([]T, cellCount[R, C]())}
}

// cells returns the backing slice for READING. Unmaterialised matrices yield a
// fresh zero slice so kernels can iterate uniformly. Never write through the
// result unless m is known to be materialised.
func (m *Matrix[T, R, C]) cells() []T {
	n := cellCount[R, C]()
	if m == nil || len(m.data) != n {
		return make([]T, n)
	}

	return m.data
}

// materialise makes m.data writable in place. m must be non-nil.
func (m *Matrix[T, R, C]) materialise() {
	if n := cellCount[R, C](); len(m.data) != n {
		m.data = make([]T, n)
	}
}
