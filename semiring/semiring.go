// SPDX-License-Identifier: MIT

// Package semiring provides non-numeric element algebras for matrices and the
// path-closure algorithms they enable.
//
// A matrix over a semiring other than (+, ·) answers graph questions with the
// ordinary matrix product:
//
//   - MinPlus (min, +): shortest path lengths.
//   - MaxMin (max, min): widest (bottleneck) path capacities.
//   - Boolean (or, and): reachability.
//
// All three are idempotent (a ⊕ a = a), so the closure I ⊕ A ⊕ A² ⊕ … converges
// after N−1 products and Floyd–Warshall computes it in place.
package semiring

import (
	"math"

	"github.com/s0lst1ce/matrix/algebra"
)

// Compile-time assertions for capability conformance.
var (
	_ algebra.UnitalSemiring[MinPlus] = MinPlus(0)
	_ algebra.UnitalSemiring[MaxMin]  = MaxMin(0)
	_ algebra.UnitalSemiring[Boolean] = Boolean(false)
)

// MinPlus is the tropical semiring over float64: Add is min, Mul is +.
// Zero (+Inf) means "no path"; One (0) is the empty path.
type MinPlus float64

// Add returns min(a, b).
func (a MinPlus) Add(b MinPlus) MinPlus {
	if b < a {
		return b
	}

	return a
}

// Mul returns a + b; +Inf absorbs any finite weight.
func (a MinPlus) Mul(b MinPlus) MinPlus { return a + b }

// Zero returns +Inf.
func (MinPlus) Zero() MinPlus { return MinPlus(math.Inf(1)) }

// One returns 0.
func (MinPlus) One() MinPlus { return 0 }

// Reachable reports whether a is a finite path length.
func (a MinPlus) Reachable() bool { return !math.IsInf(float64(a), 1) }

// MaxMin is the bottleneck semiring over float64: Add is max, Mul is min.
// Zero (-Inf) means "no path"; One (+Inf) is the unconstrained empty path.
type MaxMin float64

// Add returns max(a, b).
func (a MaxMin) Add(b MaxMin) MaxMin {
	if b > a {
		return b
	}

	return a
}

// Mul returns min(a, b).
func (a MaxMin) Mul(b MaxMin) MaxMin {
	if b < a {
		return b
	}

	return a
}

// Zero returns -Inf.
func (MaxMin) Zero() MaxMin { return MaxMin(math.Inf(-1)) }

// One returns +Inf.
func (MaxMin) One() MaxMin { return MaxMin(math.Inf(1)) }

// Boolean is the two-element semiring: Add is or, Mul is and.
type Boolean bool

func (a Boolean) Add(b Boolean) Boolean { return a || b }
func (a Boolean) Mul(b Boolean) Boolean { return a && b }
func (Boolean) Zero() Boolean           { return false }
func (Boolean) One() Boolean            { return true }
