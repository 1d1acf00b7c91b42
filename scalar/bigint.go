// SPDX-License-Identifier: MIT

package scalar

import (
	"math/big"

	"github.com/s0lst1ce/matrix/algebra"
)

// BigInt is an arbitrary-precision integer element with value semantics.
//
// Every operation allocates a fresh big.Int; the wrapped value is never
// mutated after construction, so BigInt values may be copied and shared
// freely. The zero value reads as 0.
type BigInt struct {
	v *big.Int // nil means 0
}

var (
	_ algebra.UnitalSemiring[BigInt] = BigInt{}
	_ algebra.Subtracter[BigInt]     = BigInt{}
)

// NewBigInt returns x as a BigInt.
func NewBigInt(x int64) BigInt { return BigInt{v: big.NewInt(x)} }

// BigIntFrom copies x into a BigInt. A nil x reads as 0.
func BigIntFrom(x *big.Int) BigInt {
	if x == nil {
		return BigInt{}
	}

	return BigInt{v: new(big.Int).Set(x)}
}

// ParseBigInt parses a base-10 integer literal.
func ParseBigInt(s string) (BigInt, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, false
	}

	return BigInt{v: v}, true
}

// val returns the wrapped value, treating nil as a shared zero (read-only).
func (a BigInt) val() *big.Int {
	if a.v == nil {
		return bigZero
	}

	return a.v
}

var bigZero = new(big.Int)

func (a BigInt) Add(b BigInt) BigInt { return BigInt{v: new(big.Int).Add(a.val(), b.val())} }
func (a BigInt) Sub(b BigInt) BigInt { return BigInt{v: new(big.Int).Sub(a.val(), b.val())} }
func (a BigInt) Mul(b BigInt) BigInt { return BigInt{v: new(big.Int).Mul(a.val(), b.val())} }
func (BigInt) Zero() BigInt          { return BigInt{v: new(big.Int)} }
func (BigInt) One() BigInt           { return BigInt{v: big.NewInt(1)} }

// Int returns a copy of the value as *big.Int.
func (a BigInt) Int() *big.Int { return new(big.Int).Set(a.val()) }

// Cmp compares a and b like big.Int.Cmp.
func (a BigInt) Cmp(b BigInt) int { return a.val().Cmp(b.val()) }

// Equal reports a == b by value.
func (a BigInt) Equal(b BigInt) bool { return a.Cmp(b) == 0 }

// String renders the value in base 10.
func (a BigInt) String() string { return a.val().String() }
