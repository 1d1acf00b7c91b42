// Package matrix_test contains unit tests for the API facades.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0lst1ce/matrix/dim"
	"github.com/s0lst1ce/matrix/matrix"
	"github.com/s0lst1ce/matrix/scalar"
)

func TestFillAndZeros(t *testing.T) {
	f, err := matrix.Fill[scalar.Int, dim.D2, dim.D3](7)
	require.NoError(t, err)
	require.Equal(t, ints(7, 7, 7, 7, 7, 7), f.Elements())

	z, err := matrix.Zeros[scalar.Float64, dim.D3, dim.D1]()
	require.NoError(t, err)
	require.Equal(t, []scalar.Float64{0, 0, 0}, z.Elements())
}

// tropical is a minimal min-plus element whose additive identity is +Inf.
type tropical float64

func (a tropical) Add(b tropical) tropical { return tropical(math.Min(float64(a), float64(b))) }
func (a tropical) Mul(b tropical) tropical { return a + b }
func (tropical) Zero() tropical            { return tropical(math.Inf(1)) }
func (tropical) One() tropical             { return 0 }

// TestZerosUsesAlgebraicZero checks Zeros asks T for its zero.
func TestZerosUsesAlgebraicZero(t *testing.T) {
	z, err := matrix.Zeros[tropical, dim.D1, dim.D2]()
	require.NoError(t, err)
	for _, v := range z.Elements() {
		require.True(t, math.IsInf(float64(v), 1))
	}

	id, err := matrix.Identity[tropical, dim.D2]()
	require.NoError(t, err)
	require.Equal(t, tropical(0), id.Elements()[0])
	require.True(t, math.IsInf(float64(id.Elements()[1]), 1))
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[scalar.Int, dim.D3]()
	require.NoError(t, err)
	require.Equal(t, [][]scalar.Int{ints(1, 0, 0), ints(0, 1, 0), ints(0, 0, 1)}, id.ToRows())
}

func TestPow(t *testing.T) {
	a := exampleA(t)
	id := matrix.Must(matrix.Identity[scalar.Int, dim.D2]())

	require.True(t, matrix.Equal(id, matrix.Pow(a, 0)))
	require.True(t, matrix.Equal(a, matrix.Pow(a, 1)))
	require.True(t, matrix.Equal(matrix.Mul(a, a), matrix.Pow(a, 2)))
	require.True(t, matrix.Equal(matrix.Mul(matrix.Mul(a, a), matrix.Mul(a, a)), matrix.Pow(a, 4)))

	// [[1,2],[3,4]]^3 = [[37,54],[81,118]]
	require.Equal(t, ints(37, 54, 81, 118), matrix.Pow(a, 3).Elements())
	require.Equal(t, ints(1, 2, 3, 4), a.Elements(), "operand untouched")
}

// TestPowFibonacciBigInt raises the Fibonacci Q-matrix past int64 range.
func TestPowFibonacciBigInt(t *testing.T) {
	one := scalar.NewBigInt(1)
	q := mustNew[scalar.BigInt, dim.D2, dim.D2](t, one, one, one, scalar.NewBigInt(0))

	got := matrix.Pow(q, 100) // [[F101, F100], [F100, F99]]

	want := make([]scalar.BigInt, 0, 4)
	for _, s := range []string{
		"573147844013817084101", "354224848179261915075",
		"354224848179261915075", "218922995834555169026",
	} {
		v, ok := scalar.ParseBigInt(s)
		require.True(t, ok)
		want = append(want, v)
	}
	wantM := mustNew[scalar.BigInt, dim.D2, dim.D2](t, want...)

	require.True(t, matrix.EqualFunc(wantM, got, scalar.BigInt.Equal), "got\n%v", got)
}

func TestTrace(t *testing.T) {
	require.Equal(t, scalar.Int(5), matrix.Trace(exampleA(t)))
	require.Equal(t, scalar.Uint8(11), matrix.Trace(setup3x3(t)))

	var n *int2x2
	require.Equal(t, scalar.Int(0), matrix.Trace(n))
}

func TestEqual(t *testing.T) {
	a := exampleA(t)
	assert.True(t, matrix.Equal(a, a.Clone()))
	assert.False(t, matrix.Equal(a, exampleB(t)))

	var z int2x2
	var n *int2x2
	assert.True(t, matrix.Equal(&z, n), "zero value and nil both read as zeros")

	near := func(x, y scalar.Float64) bool { return math.Abs(float64(x-y)) < 1e-9 }
	f := mustNew[scalar.Float64, dim.D1, dim.D2](t, 0.1+0.2, 1)
	g := mustNew[scalar.Float64, dim.D1, dim.D2](t, 0.3, 1)
	assert.True(t, matrix.EqualFunc(f, g, near))
}

// TestAsBridgesEqualExtents converts between distinct Dim types of equal size.
func TestAsBridgesEqualExtents(t *testing.T) {
	m := mustNew[scalar.Int, three, dim.D1](t, ints(1, 2, 3)...)

	as, err := matrix.As[dim.D3, dim.D1](m)
	require.NoError(t, err)
	require.Equal(t, ints(1, 2, 3), as.Elements())

	// now it conforms with a D1×D3 operand
	row := mustNew[scalar.Int, dim.D1, dim.D3](t, ints(1, 1, 1)...)
	require.Equal(t, ints(6), matrix.Mul(row, as).Elements())

	require.NoError(t, as.Set(0, 0, 9))
	require.Equal(t, ints(1, 2, 3), m.Elements(), "As returns a copy")

	_, err = matrix.As[dim.D2, dim.D1](m)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.EqualError(t, err, "As: 3x1 as 2x1: matrix: shape mismatch")
}

func TestReshape(t *testing.T) {
	m := mustNew[scalar.Int, dim.D2, dim.D3](t, ints(1, 2, 3, 4, 5, 6)...)

	r, err := matrix.Reshape[dim.D3, dim.D2](m)
	require.NoError(t, err)
	require.Equal(t, [][]scalar.Int{ints(1, 2), ints(3, 4), ints(5, 6)}, r.ToRows())

	flat, err := matrix.Reshape[dim.D1, dim.D6](m)
	require.NoError(t, err)
	require.Equal(t, m.Elements(), flat.Elements())

	_, err = matrix.Reshape[dim.D2, dim.D2](m)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.Reshape[zeroExtent, dim.D2](m)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAliases checks each alias matches its canonical kernel.
func TestAliases(t *testing.T) {
	a, b := exampleA(t), exampleB(t)
	require.True(t, matrix.Equal(matrix.Add(a, b), matrix.Sum(a, b)))
	require.True(t, matrix.Equal(matrix.Sub(a, b), matrix.Diff(a, b)))
	require.True(t, matrix.Equal(matrix.Mul(a, b), matrix.Product(a, b)))
	require.True(t, matrix.Equal(matrix.Transpose(a), matrix.T(a)))
	require.True(t, matrix.Equal(matrix.Scale(a, 2), matrix.ScaleBy(a, 2)))
}
