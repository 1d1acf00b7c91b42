// Package matrix_test contains unit tests for element-wise and row-level operations.
package matrix_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/s0lst1ce/matrix/dim"
	"github.com/s0lst1ce/matrix/matrix"
	"github.com/s0lst1ce/matrix/scalar"
)

func TestHadamard(t *testing.T) {
	got := matrix.Hadamard(exampleA(t), exampleB(t))
	require.Equal(t, ints(5, 12, 21, 32), got.Elements())
}

// TestMapChangesElementType lifts ints into strings.
func TestMapChangesElementType(t *testing.T) {
	got := matrix.Map(exampleA(t), func(v scalar.Int) string { return strconv.Itoa(int(v)) })
	require.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, got.ToRows())
}

// TestAddInPlace covers the += form, including src aliasing dst.
func TestAddInPlace(t *testing.T) {
	m := setup3x2(t)
	require.NoError(t, matrix.AddInPlace(m, m))
	require.Equal(t, u8s(2, 4, 6, 8, 10, 12), m.Elements())

	a := exampleA(t)
	require.NoError(t, matrix.AddInPlace(a, exampleB(t)))
	require.Equal(t, ints(6, 8, 10, 12), a.Elements())

	var z int2x2
	require.NoError(t, matrix.AddInPlace(&z, exampleA(t)))
	require.Equal(t, ints(1, 2, 3, 4), z.Elements())

	require.ErrorIs(t, matrix.AddInPlace[scalar.Int, dim.D2, dim.D2](nil, a), matrix.ErrNilMatrix)
}

// TestScaleInPlace covers the *= form by a coefficient.
func TestScaleInPlace(t *testing.T) {
	m := setup3x2(t)
	require.NoError(t, matrix.ScaleInPlace(m, 2))
	require.Equal(t, u8s(2, 4, 6, 8, 10, 12), m.Elements())

	require.ErrorIs(t, matrix.ScaleInPlace[scalar.Int, dim.D2, dim.D2](nil, 3), matrix.ErrNilMatrix)
}

// TestScaleRow dilates row 1 by 2.
func TestScaleRow(t *testing.T) {
	m := setup3x3(t)
	require.NoError(t, matrix.ScaleRow(m, 1, 2))
	require.Equal(t, [][]scalar.Uint8{u8s(1, 2, 1), u8s(6, 8, 2), u8s(1, 5, 6)}, m.ToRows())
}

func TestScaleRowErrors(t *testing.T) {
	m := setup3x3(t)
	err := matrix.ScaleRow(m, 4, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.EqualError(t, err, "ScaleRow(4): matrix: index out of bounds")
	require.ErrorIs(t, matrix.ScaleRow(m, -1, 2), matrix.ErrIndexOutOfBounds)
	require.Equal(t, setup3x3(t).Elements(), m.Elements())

	require.ErrorIs(t, matrix.ScaleRow[scalar.Uint8, dim.D3, dim.D3](nil, 0, 2), matrix.ErrNilMatrix)
}

// TestAddRow adds row 1 onto row 0.
func TestAddRow(t *testing.T) {
	m := setup3x3(t)
	require.NoError(t, matrix.AddRow(m, 0, 1))
	require.Equal(t, [][]scalar.Uint8{u8s(4, 6, 2), u8s(3, 4, 1), u8s(1, 5, 6)}, m.ToRows())
}

func TestAddRowErrors(t *testing.T) {
	tests := []struct {
		name           string
		target, source int
		want           error
	}{
		{"target out of range", 3, 0, matrix.ErrIndexOutOfBounds},
		{"source out of range", 0, 3, matrix.ErrIndexOutOfBounds},
		{"negative", -1, 0, matrix.ErrIndexOutOfBounds},
		{"same row", 0, 0, matrix.ErrWrongOperation},
		{"bounds before same row", 5, 5, matrix.ErrIndexOutOfBounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := setup3x3(t)
			require.ErrorIs(t, matrix.AddRow(m, tc.target, tc.source), tc.want)
			require.Equal(t, setup3x3(t).Elements(), m.Elements(), "untouched on error")
		})
	}

	require.ErrorIs(t, matrix.AddRow[scalar.Uint8, dim.D3, dim.D3](nil, 0, 1), matrix.ErrNilMatrix)
}

// TestRowOperationsNegativeExtent rejects row operations whose column
// extent is negative instead of slicing out of range.
func TestRowOperationsNegativeExtent(t *testing.T) {
	m := &matrix.Matrix[scalar.Uint8, dim.D3, negExtent]{}
	require.NotPanics(t, func() {
		err := matrix.ScaleRow(m, 0, 2)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.EqualError(t, err, "ScaleRow(0): matrix: dimensions must be > 0")

		err = matrix.AddRow(m, 0, 1)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.EqualError(t, err, "AddRow(0,1): matrix: dimensions must be > 0")

		require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrInvalidDimensions)
	})
	require.Empty(t, m.Elements())
}

// TestRowOperationsCompose applies permute, dilate and transvect in sequence.
func TestRowOperationsCompose(t *testing.T) {
	m := mustNew[scalar.Int, dim.D2, dim.D2](t, ints(0, 1, 2, 4)...)
	require.NoError(t, m.SwapRows(0, 1))          // [[2,4],[0,1]]
	require.NoError(t, matrix.ScaleRow(m, 1, -4)) // [[2,4],[0,-4]]
	require.NoError(t, matrix.AddRow(m, 1, 0))    // [[2,4],[2,0]]
	require.Equal(t, ints(2, 4, 2, 0), m.Elements())
}
