// SPDX-License-Identifier: MIT
// Package: semiring
//
// Purpose:
//   - Dense path closure (Floyd–Warshall) over any idempotent semiring with a
//     deterministic k → i → j loop order.
//   - Adapters from numeric adjacency matrices to MinPlus, MaxMin and Boolean
//     path matrices, plus the one-call facades built on them.
//
// Contract:
//   - Square matrices only; the type system enforces it (N appears twice).
//   - Zero() denotes "no path"; the diagonal should hold One() before closing.

package semiring

import (
	"fmt"
	"math"

	"github.com/s0lst1ce/matrix/algebra"
	"github.com/s0lst1ce/matrix/dim"
	"github.com/s0lst1ce/matrix/matrix"
	"github.com/s0lst1ce/matrix/scalar"
)

// closable is the capability set of FloydWarshall: a semiring whose values
// can be compared with Zero to skip absorbed candidates.
type closable[T any] interface {
	algebra.Semiring[T]
	comparable
}

// floydWarshallInPlace runs the closure on a flat row-major n×n buffer:
//
//	d[i,j] = d[i,j] ⊕ (d[i,k] ⊗ d[k,j])   for k, then i, then j
//
// Zero absorbs under ⊗, so a Zero d[i,k] or d[k,j] cannot change d[i,j].
// Time: O(n³); Extra space: O(1).
func floydWarshallInPlace[T closable[T]](data []T, n int) {
	zero := algebra.Zero[T]()

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for K and I in the flat buffer
		ik, kj       T   // d[i,k], d[k,j]
	)
	for k = 0; k < n; k++ { // outer: intermediate vertex k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if ik == zero { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if kj == zero { // k cannot reach j
					continue
				}
				data[baseI+j] = data[baseI+j].Add(ik.Mul(kj))
			}
		}
	}
}

// FloydWarshall closes m in place: afterwards m[i,j] is the ⊕-sum over all
// paths i→j of the ⊗-product of their edge values (shortest length for
// MinPlus, widest capacity for MaxMin, reachability for Boolean).
//
// Contract:
//   - T must be idempotent (a ⊕ a = a); non-idempotent semirings such as
//     ordinary (+, ·) do not converge and are not closed correctly.
//   - Put One() on the diagonal first (DistancesFromAdjacency does).
//
// Errors: matrix.ErrNilMatrix for a nil m.
// Complexity: Time O(N³), Space O(N²) for the working copy.
func FloydWarshall[T closable[T], N dim.Dim](m *matrix.Matrix[T, N, N]) error {
	if m == nil {
		return semiringErrorf(opFloydWarshall, matrix.ErrNilMatrix)
	}
	n := dim.Of[N]()
	d := m.Elements()
	if len(d) == 0 {
		return nil
	}
	floydWarshallInPlace(d, n)

	return m.Apply(func(i, j int, _ T) T { return d[i*n+j] })
}

// Closure returns (I ⊕ A)^(N−1), the reflexive path closure computed with
// the ordinary matrix product. For an idempotent T without improving cycles
// it equals FloydWarshall applied to I ⊕ A.
// Complexity: O(N³·log N).
func Closure[T algebra.UnitalSemiring[T], N dim.Dim](a *matrix.Matrix[T, N, N]) (*matrix.Matrix[T, N, N], error) {
	id, err := matrix.Identity[T, N]()
	if err != nil {
		return nil, err
	}
	k := uint(0)
	if n := dim.Of[N](); n > 1 {
		k = uint(n - 1)
	}

	return matrix.Pow(matrix.Add(id, a), k), nil
}

// validateWeights rejects NaN and -Inf cells; +Inf is allowed ("no edge").
func validateWeights[N dim.Dim](adj *matrix.Matrix[scalar.Float64, N, N]) error {
	var bad error
	adj.Do(func(i, j int, v scalar.Float64) bool {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), -1) {
			bad = fmt.Errorf("(%d,%d)=%v: %w", i, j, float64(v), ErrInvalidWeight)
			return false
		}
		return true
	})

	return bad
}

// DistancesFromAdjacency converts a weighted adjacency matrix into a MinPlus
// distance matrix:
//
//	diag = One (0); off-diagonal 0 or +Inf → Zero (+Inf, no edge); w → w.
//
// Errors: ErrInvalidWeight for NaN or -Inf cells.
// Complexity: O(N²).
func DistancesFromAdjacency[N dim.Dim](adj *matrix.Matrix[scalar.Float64, N, N]) (*matrix.Matrix[MinPlus, N, N], error) {
	if err := validateWeights(adj); err != nil {
		return nil, semiringErrorf(opDistances, err)
	}
	out := matrix.Map(adj, func(v scalar.Float64) MinPlus { return MinPlus(v) })
	if err := out.Apply(func(i, j int, v MinPlus) MinPlus {
		switch {
		case i == j:
			return v.One()
		case v == 0:
			return v.Zero()
		default:
			return v
		}
	}); err != nil {
		return nil, semiringErrorf(opDistances, err)
	}

	return out, nil
}

// ShortestPaths returns all-pairs shortest path lengths for a weighted
// adjacency matrix (0 off-diagonal = no edge). Unreachable pairs hold +Inf.
// Negative weights are allowed; a negative cycle is an error.
// Errors: ErrInvalidWeight, ErrNegativeCycle.
// Complexity: O(N³).
func ShortestPaths[N dim.Dim](adj *matrix.Matrix[scalar.Float64, N, N]) (*matrix.Matrix[MinPlus, N, N], error) {
	d, err := DistancesFromAdjacency(adj)
	if err != nil {
		return nil, semiringErrorf(opShortestPaths, err)
	}
	if err = FloydWarshall(d); err != nil {
		return nil, semiringErrorf(opShortestPaths, err)
	}
	n := dim.Of[N]()
	for i := 0; i < n; i++ {
		if v, _ := d.At(i, i); v < 0 {
			return nil, fmt.Errorf("%s: through vertex %d: %w", opShortestPaths, i, ErrNegativeCycle)
		}
	}

	return d, nil
}

// WidestPaths returns all-pairs bottleneck capacities for a capacity matrix
// (0 off-diagonal = no edge). Unreachable pairs hold -Inf, the diagonal +Inf.
// Errors: ErrInvalidWeight for NaN or -Inf cells.
// Complexity: O(N³).
func WidestPaths[N dim.Dim](capacity *matrix.Matrix[scalar.Float64, N, N]) (*matrix.Matrix[MaxMin, N, N], error) {
	if err := validateWeights(capacity); err != nil {
		return nil, semiringErrorf(opWidestPaths, err)
	}
	w := matrix.Map(capacity, func(v scalar.Float64) MaxMin { return MaxMin(v) })
	if err := w.Apply(func(i, j int, v MaxMin) MaxMin {
		switch {
		case i == j:
			return v.One()
		case v == 0:
			return v.Zero()
		default:
			return v
		}
	}); err != nil {
		return nil, semiringErrorf(opWidestPaths, err)
	}
	if err := FloydWarshall(w); err != nil {
		return nil, semiringErrorf(opWidestPaths, err)
	}

	return w, nil
}

// Reachability returns the reflexive-transitive closure of adj: cell (i,j)
// is true when j can be reached from i. Any cell different from T's Go zero
// value is an edge.
// Complexity: O(N³).
func Reachability[T comparable, N dim.Dim](adj *matrix.Matrix[T, N, N]) (*matrix.Matrix[Boolean, N, N], error) {
	var none T
	r := matrix.Map(adj, func(v T) Boolean { return v != none })
	if err := r.Apply(func(i, j int, v Boolean) Boolean { return v || i == j }); err != nil {
		return nil, semiringErrorf(opReachability, err)
	}
	if err := FloydWarshall(r); err != nil {
		return nil, semiringErrorf(opReachability, err)
	}

	return r, nil
}
