// SPDX-License-Identifier: MIT

// Package scalar adapts Go's built-in numeric types to the algebra capabilities.
//
// Every type here satisfies algebra.UnitalSemiring and algebra.Subtracter, so
// matrices over them support the full operation set. Arithmetic follows the
// underlying Go type exactly: integers wrap on overflow (Uint8 mirrors u8
// coefficient matrices), floats follow IEEE-754.
package scalar

import (
	"golang.org/x/exp/constraints"

	"github.com/s0lst1ce/matrix/algebra"
)

// Number is the set of plain real Go numerics accepted by Cast.
// Complex values are excluded: Go has no real<->complex conversion.
type Number interface {
	constraints.Integer | constraints.Float
}

// Cast converts plain Go numbers into a scalar slice, e.g.
//
//	scalar.Cast[scalar.Float64](1, 2, 3)
//
// Conversion follows Go conversion rules between the underlying types.
// Complexity: O(len(vs)).
func Cast[S, N Number](vs ...N) []S {
	out := make([]S, len(vs))
	for i, v := range vs {
		out[i] = S(v)
	}

	return out
}

type (
	// Int is a machine int element.
	Int int
	// Int64 is a 64-bit signed element.
	Int64 int64
	// Uint8 is an 8-bit unsigned element with wrapping arithmetic.
	Uint8 uint8
	// Float32 is a single-precision element.
	Float32 float32
	// Float64 is a double-precision element.
	Float64 float64
	// Complex128 is a double-precision complex element.
	Complex128 complex128
)

// Compile-time assertions: all scalars expose the full capability set.
var (
	_ algebra.UnitalSemiring[Int]        = Int(0)
	_ algebra.UnitalSemiring[Int64]      = Int64(0)
	_ algebra.UnitalSemiring[Uint8]      = Uint8(0)
	_ algebra.UnitalSemiring[Float32]    = Float32(0)
	_ algebra.UnitalSemiring[Float64]    = Float64(0)
	_ algebra.UnitalSemiring[Complex128] = Complex128(0)

	_ algebra.Subtracter[Int]        = Int(0)
	_ algebra.Subtracter[Int64]      = Int64(0)
	_ algebra.Subtracter[Uint8]      = Uint8(0)
	_ algebra.Subtracter[Float32]    = Float32(0)
	_ algebra.Subtracter[Float64]    = Float64(0)
	_ algebra.Subtracter[Complex128] = Complex128(0)
)

func (a Int) Add(b Int) Int { return a + b }
func (a Int) Sub(b Int) Int { return a - b }
func (a Int) Mul(b Int) Int { return a * b }
func (Int) Zero() Int       { return 0 }
func (Int) One() Int        { return 1 }

func (a Int64) Add(b Int64) Int64 { return a + b }
func (a Int64) Sub(b Int64) Int64 { return a - b }
func (a Int64) Mul(b Int64) Int64 { return a * b }
func (Int64) Zero() Int64         { return 0 }
func (Int64) One() Int64          { return 1 }

func (a Uint8) Add(b Uint8) Uint8 { return a + b }
func (a Uint8) Sub(b Uint8) Uint8 { return a - b }
func (a Uint8) Mul(b Uint8) Uint8 { return a * b }
func (Uint8) Zero() Uint8         { return 0 }
func (Uint8) One() Uint8          { return 1 }

func (a Float32) Add(b Float32) Float32 { return a + b }
func (a Float32) Sub(b Float32) Float32 { return a - b }
func (a Float32) Mul(b Float32) Float32 { return a * b }
func (Float32) Zero() Float32           { return 0 }
func (Float32) One() Float32            { return 1 }

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (Float64) Zero() Float64           { return 0 }
func (Float64) One() Float64            { return 1 }

func (a Complex128) Add(b Complex128) Complex128 { return a + b }
func (a Complex128) Sub(b Complex128) Complex128 { return a - b }
func (a Complex128) Mul(b Complex128) Complex128 { return a * b }
func (Complex128) Zero() Complex128              { return 0 }
func (Complex128) One() Complex128               { return 1 }
