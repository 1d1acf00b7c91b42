package dim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/s0lst1ce/matrix/dim"
)

// zeroExtent is a degenerate, caller-declared extent.
type zeroExtent struct{}

func (zeroExtent) N() int { return 0 }

// batch is a caller-declared extent larger than the predefined set.
type batch struct{}

func (batch) N() int { return 64 }

func TestPredefinedExtents(t *testing.T) {
	got := []int{
		dim.Of[dim.D1](), dim.Of[dim.D2](), dim.Of[dim.D3](), dim.Of[dim.D4](),
		dim.Of[dim.D5](), dim.Of[dim.D6](), dim.Of[dim.D7](), dim.Of[dim.D8](),
		dim.Of[dim.D9](), dim.Of[dim.D10](), dim.Of[dim.D11](), dim.Of[dim.D12](),
		dim.Of[dim.D13](), dim.Of[dim.D14](), dim.Of[dim.D15](), dim.Of[dim.D16](),
	}
	for i, n := range got {
		require.Equal(t, i+1, n, "D%d", i+1)
	}
}

func TestSize(t *testing.T) {
	require.Equal(t, 6, dim.Size[dim.D2, dim.D3]())
	require.Equal(t, 6, dim.Size[dim.D3, dim.D2]())
	require.Equal(t, 64*3, dim.Size[batch, dim.D3]())
}

func TestValid(t *testing.T) {
	require.True(t, dim.Valid[dim.D1]())
	require.True(t, dim.Valid[batch]())
	require.False(t, dim.Valid[zeroExtent]())
}

// TestInterfaceAsExtent instantiates with Dim itself, whose zero value is nil.
func TestInterfaceAsExtent(t *testing.T) {
	require.NotPanics(t, func() {
		require.Equal(t, 0, dim.Of[dim.Dim]())
		require.False(t, dim.Valid[dim.Dim]())
		require.Equal(t, 0, dim.Size[dim.Dim, dim.D3]())
	})
}
