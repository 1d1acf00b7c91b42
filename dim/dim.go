// SPDX-License-Identifier: MIT

// Package dim defines the compile-time extents used as matrix shape parameters.
//
// Purpose:
//   - Encode a row or column count as a TYPE, not as a runtime field.
//   - Let the Go type checker reject non-conformable operations: two matrices
//     only unify when their extent types are identical.
//
// Contract:
//   - A Dim is an empty struct type whose N method returns a positive constant.
//   - N must not depend on the receiver value (the zero value is always used).
//   - Distinct types are distinct shapes even when N() agrees; bridging them
//     is a runtime-checked operation (see matrix.As).
//
// Declaring a custom extent:
//
//	type Batch struct{}
//
//	func (Batch) N() int { return 64 }
package dim

// Dim is a compile-time matrix extent.
type Dim interface {
	// N returns the extent. Must be a constant > 0 for usable shapes.
	N() int
}

// Of returns the extent carried by D, or 0 when D is an interface type
// (Dim itself), whose zero value has no method to call.
// Complexity: O(1).
func Of[D Dim]() int {
	var d D // zero value; N never reads the receiver
	if any(d) == nil {
		return 0
	}

	return d.N()
}

// Size returns the cell count R·C of an R×C shape.
// Complexity: O(1).
func Size[R, C Dim]() int {
	return Of[R]() * Of[C]()
}

// Valid reports whether D describes a usable (positive) extent.
func Valid[D Dim]() bool { return Of[D]() > 0 }
