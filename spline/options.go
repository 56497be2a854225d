// SPDX-License-Identifier: MIT

package spline

import "github.com/katalvlaran/lvspline/matrix"

// DefaultBoundary is the boundary family of a Spline built without WithBoundary.
const DefaultBoundary = Natural

// DefaultPrintStep is the sampling step Print uses when given zero.
const DefaultPrintStep = 1e-4

// MaxSamples caps the number of points Samples and Print produce in one call.
const MaxSamples = 1 << 24

// DefaultPeriodicTolerance is the relative tolerance within which Interpolate
// accepts y[0] and y[n-1] as equal under the Periodic boundary.
const DefaultPeriodicTolerance = 1e-9

const panicBoundaryInvalid = "spline: WithBoundary: unknown boundary condition"

// Option configures a Spline at construction time.
type Option func(*Spline)

// WithBoundary selects the boundary family. Panics on a value outside the
// enumeration (programmer error); use SetBoundary for runtime values.
func WithBoundary(b Boundary) Option {
	if !b.Valid() {
		panic(panicBoundaryInvalid)
	}

	return func(s *Spline) { s.bc = b }
}

// WithSolver replaces the linear-solve capability used by Interpolate and Fit.
// A nil solver keeps the default.
func WithSolver(solver matrix.Solver) Option {
	return func(s *Spline) {
		if solver != nil {
			s.solver = solver
		}
	}
}
