// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the few checks that remain at run time.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing (ValidateRows is O(R)).

package matrix

import "github.com/s0lst1ce/matrix/dim"

// ValidateDims ensures both extents of an R×C shape are positive.
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(1).
func ValidateDims[R, C dim.Dim]() error {
	if !dim.Valid[R]() || !dim.Valid[C]() {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateCount ensures a flat input of n elements fills an R×C shape exactly.
// Assumes dims are already valid.
// Complexity: O(1).
func ValidateCount[R, C dim.Dim](n int) error {
	if n != cellCount[R, C]() {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateRows ensures a nested input is exactly R rows of C elements.
// Complexity: O(R).
func ValidateRows[T any, R, C dim.Dim](rows [][]T) error {
	r, c := extents[R, C]()
	if len(rows) != r {
		return ErrShapeMismatch
	}
	for _, row := range rows {
		if len(row) != c {
			return ErrShapeMismatch // ragged or short row
		}
	}

	return nil
}

// validateIndex bounds-checks (row, col) against an r×c shape.
func validateIndex(row, col, r, c int) error {
	if row < 0 || row >= r || col < 0 || col >= c {
		return ErrIndexOutOfBounds
	}

	return nil
}

// validateLine bounds-checks a single row or column index against n.
func validateLine(idx, n int) error {
	if idx < 0 || idx >= n {
		return ErrIndexOutOfBounds
	}

	return nil
}
