// SPDX-License-Identifier: MIT

// Package gonumconv: functional configuration for random fills and
// approximate comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness is always seeded.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package gonumconv

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMin is the inclusive lower bound of Random.
	DefaultMin = 0.0

	// DefaultMax is the exclusive upper bound of Random.
	DefaultMax = 1.0

	// DefaultSeed seeds Random when WithSeed is not given.
	DefaultSeed uint64 = 1

	// DefaultAbsTol is the absolute tolerance of ApproxEqual.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the relative tolerance of ApproxEqual.
	DefaultRelTol = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBoundsInvalid = "gonumconv: WithBounds: bounds must be finite with min < max"
	panicAbsTolInvalid = "gonumconv: WithAbsTol: tolerance must be finite, non-negative"
	panicRelTolInvalid = "gonumconv: WithRelTol: tolerance must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	min, max float64 // Random bounds; DefaultMin, DefaultMax
	seed     uint64  // DefaultSeed

	absTol float64 // >= 0; DefaultAbsTol
	relTol float64 // >= 0; DefaultRelTol
}

// WithBounds sets the half-open interval [lo, hi) sampled by Random.
// Panics if either bound is NaN or infinite, or if lo >= hi.
func WithBounds(lo, hi float64) Option {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		panic(panicBoundsInvalid)
	}

	return func(o *Options) {
		o.min, o.max = lo, hi
	}
}

// WithSeed seeds the uniform source of Random.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
	}
}

// WithAbsTol sets the absolute tolerance of ApproxEqual.
// Panics if tol is NaN, infinite or negative.
func WithAbsTol(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) {
		o.absTol = tol
	}
}

// WithRelTol sets the relative tolerance of ApproxEqual.
// Panics if tol is NaN, infinite or negative.
func WithRelTol(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) {
		o.relTol = tol
	}
}

// defaultOptions returns the zero-config baseline.
func defaultOptions() Options {
	return Options{
		min:    DefaultMin,
		max:    DefaultMax,
		seed:   DefaultSeed,
		absTol: DefaultAbsTol,
		relTol: DefaultRelTol,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
