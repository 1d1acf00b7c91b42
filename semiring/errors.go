// SPDX-License-Identifier: MIT
// Package semiring: sentinel error set.

package semiring

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeight indicates a NaN or -Inf adjacency weight.
	ErrInvalidWeight = errors.New("semiring: weight must not be NaN or -Inf")

	// ErrNegativeCycle indicates a cycle of negative total weight, for which
	// shortest path lengths are undefined.
	ErrNegativeCycle = errors.New("semiring: negative cycle")
)

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opDistances     = "DistancesFromAdjacency"
	opShortestPaths = "ShortestPaths"
	opWidestPaths   = "WidestPaths"
	opReachability  = "Reachability"
)

// semiringErrorf wraps an underlying error with the given operation tag.
func semiringErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
