// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All runtime failures are reported with these sentinels, wrapped with call-site
// context via %w; callers match with errors.Is. Shape and capability
// mismatches between operands are compile errors and have no sentinel.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates that runtime data does not fit the static
	// shape: wrong element count, ragged rows, or a failed As/Reshape bridge.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfBounds indicates row ∉ [0,R) or col ∉ [0,C).
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrInvalidDimensions indicates a Dim reporting a non-positive extent.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates a write through a nil *Matrix.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrWrongOperation indicates a row operation better expressed another
	// way (e.g. AddRow of a row onto itself; use ScaleRow).
	ErrWrongOperation = errors.New("matrix: wrong operation")
)

// Operation name constants for unified error wrapping.
const (
	opNew          = "New"
	opFromRows     = "FromRows"
	opFill         = "Fill"
	opZeros        = "Zeros"
	opIdentity     = "Identity"
	opAs           = "As"
	opReshape      = "Reshape"
	opAddInPlace   = "AddInPlace"
	opScaleInPlace = "ScaleInPlace"
	opScaleRow     = "ScaleRow"
	opAddRow       = "AddRow"
	opSwapRows     = "SwapRows"
	opApply        = "Apply"
)

// Method tags used by cell-level wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with the Matrix method and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf wraps an error with the Matrix method and a single row/col index.
func lineErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, idx, err)
}
