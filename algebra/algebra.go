// SPDX-License-Identifier: MIT

// Package algebra declares the element capabilities matrix operations ask for.
//
// Each interface names exactly one operation. Matrix kernels constrain their
// element type with the smallest set they use, so an operation simply does not
// exist (fails to type-check) for an element type that lacks the capability.
//
// Capabilities are methods, not operators: Go operators cannot be used through
// a method-based constraint, and a type-set constraint (~int | ~float64 ...)
// would exclude non-numeric algebras such as min-plus or boolean semirings.
// Package scalar wraps the built-in numerics; package semiring provides the
// non-numeric ones.
package algebra

// Adder supports a + b.
type Adder[T any] interface {
	Add(T) T
}

// Subtracter supports a - b.
type Subtracter[T any] interface {
	Sub(T) T
}

// Multiplier supports a · b. Order matters for non-commutative T:
// a.Mul(b) is a on the left.
type Multiplier[T any] interface {
	Mul(T) T
}

// Zeroer yields the additive identity. The receiver value is ignored.
type Zeroer[T any] interface {
	Zero() T
}

// Oner yields the multiplicative identity. The receiver value is ignored.
type Oner[T any] interface {
	One() T
}

// Semiring is the capability set of the matrix product: accumulate
// products with Add, starting from Zero.
type Semiring[T any] interface {
	Adder[T]
	Multiplier[T]
	Zeroer[T]
}

// UnitalSemiring adds a multiplicative identity (identity matrices, powers).
type UnitalSemiring[T any] interface {
	Semiring[T]
	Oner[T]
}

// Zero returns the additive identity of T.
func Zero[T Zeroer[T]]() T {
	var z T

	return z.Zero()
}

// One returns the multiplicative identity of T.
func One[T Oner[T]]() T {
	var o T

	return o.One()
}

// Sum folds xs with Add starting from Zero. Empty input yields Zero.
// Complexity: O(len(xs)).
func Sum[T interface {
	Adder[T]
	Zeroer[T]
}](xs ...T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Dot returns Σ a[k]·b[k]. Panics if the lengths differ (programmer error).
// Complexity: O(len(a)).
func Dot[T Semiring[T]](a, b []T) T {
	if len(a) != len(b) {
		panic("algebra: Dot: length mismatch")
	}
	acc := Zero[T]()
	for k := range a {
		acc = acc.Add(a[k].Mul(b[k]))
	}

	return acc
}
