// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide constructors with intention-revealing names (Zeros, Identity, Fill).
//   - Compose kernels into common derived operations (Pow, Trace).
//   - Bridge between distinct Dim types at run time (As, Reshape).
//   - Offer discoverability aliases; each delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.
//   - Constructors validate dims once; kernels never re-validate.

package matrix

import (
	"fmt"

	"github.com/s0lst1ce/matrix/algebra"
	"github.com/s0lst1ce/matrix/dim"
)

// ---------- Constructors ----------

// Fill returns an R×C matrix with every cell set to v.
// Errors: ErrInvalidDimensions.
// Complexity: O(R·C).
func Fill[T any, R, C dim.Dim](v T) (*Matrix[T, R, C], error) {
	if err := ValidateDims[R, C](); err != nil {
		return nil, matrixErrorf(opFill, err)
	}

	return filled[T, R, C](v), nil
}

// Zeros returns the R×C matrix of T's additive identity.
// For most scalars this equals the Go zero value; for algebras such as
// min-plus it does not (Zero is +Inf), which is why Zero() is used.
// Errors: ErrInvalidDimensions.
// Complexity: O(R·C).
func Zeros[T algebra.Zeroer[T], R, C dim.Dim]() (*Matrix[T, R, C], error) {
	if err := ValidateDims[R, C](); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return filled[T, R, C](algebra.Zero[T]()), nil
}

// Identity returns I_N: One() on the diagonal, Zero() elsewhere.
// Errors: ErrInvalidDimensions.
// Complexity: O(N²).
func Identity[T interface {
	algebra.Zeroer[T]
	algebra.Oner[T]
}, N dim.Dim]() (*Matrix[T, N, N], error) {
	if err := ValidateDims[N, N](); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return identity[T, N](), nil
}

// filled allocates and fills without validation (dims trusted or degenerate).
func filled[T any, R, C dim.Dim](v T) *Matrix[T, R, C] {
	m := alloc[T, R, C]()
	for idx := range m.data {
		m.data[idx] = v
	}

	return m
}

// identity builds I_N without validation.
func identity[T interface {
	algebra.Zeroer[T]
	algebra.Oner[T]
}, N dim.Dim]() *Matrix[T, N, N] {
	m := filled[T, N, N](algebra.Zero[T]())
	if len(m.data) == 0 {
		return m
	}
	n := dim.Of[N]()
	one := algebra.One[T]()
	for i := 0; i < n; i++ { // fixed i order
		m.data[i*n+i] = one
	}

	return m
}

// ---------- Derived algebra ----------

// Pow returns a^k by binary exponentiation; Pow(a, 0) is the identity.
// Only square matrices have powers, so N appears twice in the signature.
// Complexity: O(N³·log k).
func Pow[T algebra.UnitalSemiring[T], N dim.Dim](a *Matrix[T, N, N], k uint) *Matrix[T, N, N] {
	result := identity[T, N]()
	base := a.Clone()
	for k > 0 {
		if k&1 == 1 {
			result = Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = Mul(base, base) // square only while bits remain
		}
	}

	return result
}

// Trace returns the sum of the diagonal of a square matrix.
// Complexity: O(N).
func Trace[T interface {
	algebra.Adder[T]
	algebra.Zeroer[T]
}, N dim.Dim](a *Matrix[T, N, N]) T {
	src := a.cells()
	acc := algebra.Zero[T]()
	if len(src) == 0 {
		return acc
	}
	n := dim.Of[N]()
	for i := 0; i < n; i++ {
		acc = acc.Add(src[i*n+i])
	}

	return acc
}

// ---------- Comparison ----------

// Equal reports whether a and b hold identical cells (==).
// Complexity: O(R·C).
func Equal[T comparable, R, C dim.Dim](a, b *Matrix[T, R, C]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether eq holds cell by cell. Use for element types
// that are not comparable by value with == (e.g. scalar.BigInt).
// Complexity: O(R·C).
func EqualFunc[T any, R, C dim.Dim](a, b *Matrix[T, R, C], eq func(x, y T) bool) bool {
	av, bv := a.cells(), b.cells()
	for idx := range av {
		if !eq(av[idx], bv[idx]) {
			return false
		}
	}

	return true
}

// ---------- Runtime-checked shape bridges ----------

// As re-types m as R2×C2 when both extents agree at run time, e.g. a
// caller-declared Dim with N()==3 and dim.D3. The result is a copy.
// Errors: ErrShapeMismatch when R2.N()!=R.N() or C2.N()!=C.N().
// Complexity: O(R·C).
func As[R2, C2 dim.Dim, T any, R, C dim.Dim](m *Matrix[T, R, C]) (*Matrix[T, R2, C2], error) {
	r, c := extents[R, C]()
	r2, c2 := extents[R2, C2]()
	if r != r2 || c != c2 {
		return nil, fmt.Errorf("%s: %dx%d as %dx%d: %w", opAs, r, c, r2, c2, ErrShapeMismatch)
	}
	out := alloc[T, R2, C2]()
	copy(out.data, m.cells())

	return out, nil
}

// Reshape reinterprets m's row-major cells as an R2×C2 matrix.
// Errors: ErrInvalidDimensions for a degenerate target; ErrShapeMismatch
// when R2·C2 != R·C.
// Complexity: O(R·C).
func Reshape[R2, C2 dim.Dim, T any, R, C dim.Dim](m *Matrix[T, R, C]) (*Matrix[T, R2, C2], error) {
	if err := ValidateDims[R2, C2](); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	if cellCount[R, C]() != cellCount[R2, C2]() {
		r, c := extents[R, C]()
		r2, c2 := extents[R2, C2]()
		return nil, fmt.Errorf("%s: %dx%d to %dx%d: %w", opReshape, r, c, r2, c2, ErrShapeMismatch)
	}
	out := alloc[T, R2, C2]()
	copy(out.data, m.cells())

	return out, nil
}

// ---------- Discoverability aliases (delegate 1:1) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T algebra.Adder[T], R, C dim.Dim](a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	return Add(a, b)
}

// Diff is an alias for Sub: element-wise a − b.
func Diff[T algebra.Subtracter[T], R, C dim.Dim](a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	return Sub(a, b)
}

// Product is an alias for Mul: matrix product a × b.
func Product[T algebra.Semiring[T], R, K, C dim.Dim](a *Matrix[T, R, K], b *Matrix[T, K, C]) *Matrix[T, R, C] {
	return Mul(a, b)
}

// T is an alias for Transpose. Good for chaining.
func T[E any, R, C dim.Dim](m *Matrix[E, R, C]) *Matrix[E, C, R] { return Transpose(m) }

// ScaleBy is an alias for Scale: m · s.
func ScaleBy[T algebra.Multiplier[T], R, C dim.Dim](m *Matrix[T, R, C], s T) *Matrix[T, R, C] {
	return Scale(m, s)
}
