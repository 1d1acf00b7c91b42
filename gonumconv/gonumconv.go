// SPDX-License-Identifier: MIT

// Package gonumconv bridges shape-typed matrices and gonum's *mat.Dense.
//
// Conversion towards gonum is total: the static shape always fits. Conversion
// from gonum is runtime-checked, because a mat.Matrix only knows its shape at
// run time; a mismatch is reported as matrix.ErrShapeMismatch.
//
// The package also provides seeded random fills (gonum/stat/distuv) and
// tolerance-based comparison (gonum/floats/scalar) for floating point results.
package gonumconv

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	fscalar "gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/s0lst1ce/matrix/dim"
	"github.com/s0lst1ce/matrix/matrix"
)

// Real is the set of element types convertible to and from float64.
type Real interface {
	constraints.Integer | constraints.Float
}

// Float is the set of element types Random can sample.
type Float interface {
	~float32 | ~float64
}

const (
	opFromMatrix = "FromMatrix"
	opRandom     = "Random"
)

// ToDense copies m into a new R×C *mat.Dense. A matrix with degenerate
// extents converts to an empty mat.Dense.
// Complexity: O(R·C).
func ToDense[T Real, R, C dim.Dim](m *matrix.Matrix[T, R, C]) *mat.Dense {
	r, c := m.Shape()
	if r <= 0 || c <= 0 {
		return &mat.Dense{}
	}
	src := m.Elements()
	data := make([]float64, len(src))
	for i, v := range src {
		data[i] = float64(v)
	}

	return mat.NewDense(r, c, data)
}

// FromMatrix copies src into a new R×C matrix, converting each cell with a
// Go conversion from float64 to T (integers truncate toward zero).
// Errors: matrix.ErrInvalidDimensions, matrix.ErrShapeMismatch when src.Dims()
// differs from R×C.
// Complexity: O(R·C).
func FromMatrix[T Real, R, C dim.Dim](src mat.Matrix) (*matrix.Matrix[T, R, C], error) {
	if err := matrix.ValidateDims[R, C](); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromMatrix, err)
	}
	r, c := dim.Of[R](), dim.Of[C]()
	sr, sc := src.Dims()
	if sr != r || sc != c {
		return nil, fmt.Errorf("%s: %dx%d into %dx%d: %w", opFromMatrix, sr, sc, r, c, matrix.ErrShapeMismatch)
	}

	elems := make([]T, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			elems = append(elems, T(src.At(i, j)))
		}
	}

	return matrix.New[T, R, C](elems...)
}

// Random returns an R×C matrix of values drawn from Uniform[min, max).
// Options: WithBounds, WithSeed. The same seed always yields the same matrix.
// Errors: matrix.ErrInvalidDimensions.
// Complexity: O(R·C).
func Random[T Float, R, C dim.Dim](opts ...Option) (*matrix.Matrix[T, R, C], error) {
	if err := matrix.ValidateDims[R, C](); err != nil {
		return nil, fmt.Errorf("%s: %w", opRandom, err)
	}
	o := gatherOptions(opts...)
	dist := distuv.Uniform{
		Min: o.min,
		Max: o.max,
		Src: rand.NewSource(o.seed),
	}

	vals := make([]T, dim.Size[R, C]())
	for idx := range vals {
		vals[idx] = T(dist.Rand())
	}

	return matrix.New[T, R, C](vals...)
}

// ApproxEqual reports whether every pair of cells is equal within the
// absolute or relative tolerance (gonum floats/scalar.EqualWithinAbsOrRel).
// Options: WithAbsTol, WithRelTol.
// Complexity: O(R·C).
func ApproxEqual[T Real, R, C dim.Dim](a, b *matrix.Matrix[T, R, C], opts ...Option) bool {
	o := gatherOptions(opts...)

	return matrix.EqualFunc(a, b, func(x, y T) bool {
		return fscalar.EqualWithinAbsOrRel(float64(x), float64(y), o.absTol, o.relTol)
	})
}

// Formatted returns a fmt.Formatter printing m the way gonum prints a
// mat.Matrix, e.g. fmt.Printf("%v", gonumconv.Formatted(m, mat.Squeeze())).
func Formatted[T Real, R, C dim.Dim](m *matrix.Matrix[T, R, C], opts ...mat.FormatOption) fmt.Formatter {
	return mat.Formatted(ToDense(m), opts...)
}
