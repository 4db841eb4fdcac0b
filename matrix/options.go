// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each default impacts behavior and is covered by tests.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by tests and by callers
	// that want a "close enough" check (AllClose, residual checks).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// Formatting defaults for Format/Print.
const (
	// DefaultPrecision is the number of digits after the decimal point.
	DefaultPrecision = 6
)
