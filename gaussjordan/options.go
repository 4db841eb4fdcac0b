// SPDX-License-Identifier: MIT

// Package gaussjordan: functional configuration for the elimination core.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Defaults reproduce the classic algorithm exactly: exact-zero pivot test,
//     leftmost-column/topmost-row pivot choice.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package gaussjordan

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot zero threshold: an entry v counts as
	// nonzero when |v| > eps. Zero reproduces the exact `!= 0` test.
	DefaultEpsilon = 0.0

	// DefaultPartialPivoting keeps the topmost-row tie-break in the pivot column.
	DefaultPartialPivoting = false

	// DefaultInstabilityThreshold flags a run as numerically unstable when the
	// smallest raw pivot magnitude falls below it. It never fails a call.
	DefaultInstabilityThreshold = 1e-12
)

const (
	panicEpsilonInvalid   = "gaussjordan: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "gaussjordan: WithInstabilityThreshold: threshold must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps                  float64 // >= 0; DefaultEpsilon
	partialPivoting      bool    // DefaultPartialPivoting
	instabilityThreshold float64 // >= 0; DefaultInstabilityThreshold
}

// WithEpsilon sets the pivot zero threshold (|v| <= eps is treated as zero).
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPartialPivoting selects, inside the leftmost nonzero column, the row
// with the largest magnitude instead of the topmost one (ties → topmost).
// The pivot column order, and therefore the staircase, is unchanged.
func WithPartialPivoting() Option {
	return func(o *Options) { o.partialPivoting = true }
}

// WithInstabilityThreshold sets the raw-pivot magnitude below which a
// Report is marked Unstable. Panics if t is NaN, ±Inf or negative.
func WithInstabilityThreshold(t float64) Option {
	if isNonFinite(t) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.instabilityThreshold = t }
}

// gatherOptions applies user options over the documented defaults.
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:                  DefaultEpsilon,
		partialPivoting:      DefaultPartialPivoting,
		instabilityThreshold: DefaultInstabilityThreshold,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
