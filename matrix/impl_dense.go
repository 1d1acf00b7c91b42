// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*C + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed i→j loop orders).
//   - Copy on the way in (constructors) and on the way out (Elements/Row/Col/ToRows).
//
// Complexity quicksheet:
//   - New/FromRows: O(R·C) copy; At/Set: O(1); Clone: O(R·C); Row/Col: O(C)/O(R).

package matrix

import (
	"fmt"
	"strings"

	"github.com/s0lst1ce/matrix/dim"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int, dim.D1, dim.D1])(nil)

// New builds an R×C matrix from exactly R·C elements in row-major order.
// MAIN DESCRIPTION:
//   - Runtime-checked constructor for data whose length is only known at run time.
//
// Implementation:
//   - Stage 1: validate R>0 && C>0; else ErrInvalidDimensions.
//   - Stage 2: validate len(elems) == R·C; else ErrShapeMismatch.
//   - Stage 3: copy elems into a fresh buffer (the caller keeps its slice).
//
// Behavior highlights:
//   - Atomic: on error nothing is returned; no partially filled matrix exists.
//   - get(i, j) == elems[i*C + j].
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeMismatch (wrapped with "New").
//
// Complexity:
//   - Time O(R·C), Space O(R·C).
func New[T any, R, C dim.Dim](elems ...T) (*Matrix[T, R, C], error) {
	if err := ValidateDims[R, C](); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if err := ValidateCount[R, C](len(elems)); err != nil {
		return nil, fmt.Errorf("%s: got %d elements, want %d: %w", opNew, len(elems), cellCount[R, C](), err)
	}

	m := alloc[T, R, C]()
	copy(m.data, elems) // deep copy; no aliasing with the caller's slice

	return m, nil
}

// FromRows builds an R×C matrix from R nested rows of C elements each.
// Ragged input, or the wrong number of rows, fails with ErrShapeMismatch.
// Complexity: O(R·C).
func FromRows[T any, R, C dim.Dim](rows [][]T) (*Matrix[T, R, C], error) {
	if err := ValidateDims[R, C](); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if err := ValidateRows[T, R, C](rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	m := alloc[T, R, C]()
	_, c := extents[R, C]()
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Must returns m or panics on err. Intended for fixtures and package-level
// variables whose shape is known to be correct.
func Must[T any, R, C dim.Dim](m *Matrix[T, R, C], err error) *Matrix[T, R, C] {
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns R. Valid on a nil receiver.
// Complexity: O(1).
func (m *Matrix[T, R, C]) Rows() int { return dim.Of[R]() }

// Cols returns C. Valid on a nil receiver.
// Complexity: O(1).
func (m *Matrix[T, R, C]) Cols() int { return dim.Of[C]() }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Matrix[T, R, C]) Shape() (rows, cols int) { return extents[R, C]() }

// indexOf bounds-checks (row, col) and returns the row-major offset.
// Returns the bare sentinel; public methods wrap with coordinates.
func (m *Matrix[T, R, C]) indexOf(row, col int) (int, error) {
	r, c := extents[R, C]()
	if err := validateIndex(row, col, r, c); err != nil {
		return 0, err
	}

	return row*c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read; never panics on bad indices.
//
// Behavior highlights:
//   - A nil or unmaterialised matrix reads as T's Go zero value.
//
// Errors:
//   - ErrIndexOutOfBounds, wrapped as "Matrix.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T, R, C]) At(row, col int) (T, error) {
	var zero T
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, cellErrorf(ctxAt, row, col, err)
	}
	if m == nil || m.data == nil {
		return zero, nil // zero value reads as zeros
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write; the only side effect is the single cell.
//
// Implementation:
//   - Stage 1: reject nil receiver (ErrNilMatrix).
//   - Stage 2: bounds-check via indexOf.
//   - Stage 3: materialise the zero value if needed, then write.
//
// Behavior highlights:
//   - On error the matrix is untouched.
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfBounds (wrapped with coordinates).
//
// Complexity:
//   - Time O(1) (O(R·C) once when materialising a zero value).
func (m *Matrix[T, R, C]) Set(row, col int, v T) error {
	if m == nil {
		return cellErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	m.materialise()
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(R·C).
func (m *Matrix[T, R, C]) Clone() *Matrix[T, R, C] {
	out := alloc[T, R, C]()
	copy(out.data, m.cells())

	return out
}

// Elements returns a row-major copy of all cells.
// Complexity: O(R·C).
func (m *Matrix[T, R, C]) Elements() []T {
	src := m.cells()
	out := make([]T, len(src))
	copy(out, src)

	return out
}

// ToRows returns a nested copy: R slices of C elements.
// Complexity: O(R·C).
func (m *Matrix[T, R, C]) ToRows() [][]T {
	r, c := extents[R, C]()
	if r <= 0 || c <= 0 {
		return nil
	}
	src := m.cells()
	out := make([][]T, r)
	for i := 0; i < r; i++ {
		out[i] = make([]T, c)
		copy(out[i], src[i*c:(i+1)*c])
	}

	return out
}

// Row returns a copy of row i.
// Errors: ErrInvalidDimensions, ErrIndexOutOfBounds (wrapped as "Matrix.Row(i): ...").
// Complexity: O(C).
func (m *Matrix[T, R, C]) Row(i int) ([]T, error) {
	if err := ValidateDims[R, C](); err != nil {
		return nil, lineErrorf(ctxRow, i, err)
	}
	r, c := extents[R, C]()
	if err := validateLine(i, r); err != nil {
		return nil, lineErrorf(ctxRow, i, err)
	}
	out := make([]T, c)
	copy(out, m.cells()[i*c:(i+1)*c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrInvalidDimensions, ErrIndexOutOfBounds (wrapped as "Matrix.Col(j): ...").
// Complexity: O(R).
func (m *Matrix[T, R, C]) Col(j int) ([]T, error) {
	if err := ValidateDims[R, C](); err != nil {
		return nil, lineErrorf(ctxCol, j, err)
	}
	r, c := extents[R, C]()
	if err := validateLine(j, c); err != nil {
		return nil, lineErrorf(ctxCol, j, err)
	}
	src := m.cells()
	out := make([]T, r)
	for i := 0; i < r; i++ {
		out[i] = src[i*c+j]
	}

	return out, nil
}

// SwapRows exchanges rows a and b in place (row permutation).
// Swapping a row with itself is a no-op.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrIndexOutOfBounds; on error m is untouched.
// Complexity: O(C).
func (m *Matrix[T, R, C]) SwapRows(a, b int) error {
	if m == nil {
		return matrixErrorf(opSwapRows, ErrNilMatrix)
	}
	if err := ValidateDims[R, C](); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", opSwapRows, a, b, err)
	}
	r, c := extents[R, C]()
	if validateLine(a, r) != nil || validateLine(b, r) != nil {
		return fmt.Errorf("%s(%d,%d): %w", opSwapRows, a, b, ErrIndexOutOfBounds)
	}
	if a == b {
		return nil
	}
	m.materialise()
	ra, rb := m.data[a*c:(a+1)*c], m.data[b*c:(b+1)*c]
	for j := 0; j < c; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations for
// materialised matrices.
// Complexity: O(R·C).
func (m *Matrix[T, R, C]) Do(f func(i, j int, v T) bool) {
	r, c := extents[R, C]()
	src := m.cells()
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if !f(i, j, src[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each cell with f(i,j,v) in place, in row-major order.
// Errors: ErrNilMatrix on a nil receiver.
// Complexity: O(R·C).
func (m *Matrix[T, R, C]) Apply(f func(i, j int, v T) T) error {
	if m == nil {
		return matrixErrorf(opApply, ErrNilMatrix)
	}
	m.materialise()
	r, c := extents[R, C]()
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return nil
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths.
// Complexity: O(R·C).
func (m *Matrix[T, R, C]) String() string {
	r, c := extents[R, C]()
	src := m.cells()
	var b strings.Builder
	var i, j, base int
	for i = 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * c
		for j = 0; j < c; j++ {
			fmt.Fprint(&b, src[base+j])
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
