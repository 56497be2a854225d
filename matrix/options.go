// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy and the
// linear-solve capability. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and on
	// solver input.
	DefaultValidateNaNInf = true

	// DefaultConditionLimit is the largest condition number a solver accepts before
	// reporting ErrSingular. It mirrors gonum's own mat.ConditionTolerance, past
	// which a factorization is numerically meaningless in float64.
	DefaultConditionLimit = mat.ConditionTolerance
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicConditionLimitInvalid = "matrix: WithConditionLimit: limit must be finite and >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	conditionLimit float64 // DefaultConditionLimit
}

// WithConditionLimit sets the condition-number ceiling used by the solver.
// Implementation:
//   - Stage 1: validate limit is finite and ≥ 1 (every matrix has cond ≥ 1).
//   - Stage 2: return a setter that writes the limit.
//
// Errors:
//   - Panics with a stable message when limit is invalid.
//
// AI-Hints:
//   - Tighten (e.g. 1e10) when a near-singular fit should be rejected rather than
//     returning wildly oscillating nodal values.
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 1 {
		panic(panicConditionLimitInvalid)
	}

	return func(o *Options) { o.conditionLimit = limit }
}

// WithValidateNaNInf enables strict finite-value validation of solver input.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation of solver input.
// NaN/Inf then flow into the factorization and surface as a singular or
// meaningless result; use only for trusted, pre-validated data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters are applied in order (last-writer-wins).
// Complexity: Time O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		conditionLimit: DefaultConditionLimit,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
