// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

// Sentinel errors. All are prefixed with "spline: " and matched with errors.Is.
// Context is attached with splineErrorf at the method boundary.
var (
	// ErrInvalidGrid indicates grid parameters violate ordering (max <= min,
	// non-positive step, non-finite values) or would yield fewer than two points.
	ErrInvalidGrid = errors.New("spline: invalid grid")

	// ErrNoGrid indicates an operation that needs a grid ran before one was built.
	ErrNoGrid = errors.New("spline: grid not generated")

	// ErrShapeMismatch indicates input/output vectors of incompatible lengths.
	ErrShapeMismatch = errors.New("spline: vector length mismatch")

	// ErrNotReady indicates evaluation before nodal values and second
	// derivatives were populated by Interpolate, Fit or SetSplineData.
	ErrNotReady = errors.New("spline: spline data not set")

	// ErrInvalidBoundary indicates a Boundary outside the closed enumeration.
	ErrInvalidBoundary = errors.New("spline: unknown boundary condition")

	// ErrNotPeriodic indicates periodic interpolation of data whose first and
	// last values differ.
	ErrNotPeriodic = errors.New("spline: first and last values differ under periodic boundary")

	// ErrSingular indicates the assembled interpolation or fit system could not
	// be solved. The solver's own error is wrapped alongside it.
	ErrSingular = errors.New("spline: singular system")

	// ErrInvalidStep indicates a non-positive or non-finite sampling step.
	ErrInvalidStep = errors.New("spline: invalid sampling step")

	// ErrOutOfRange indicates a grid index outside [0, Len()).
	ErrOutOfRange = errors.New("spline: index out of range")

	// ErrNonFinite indicates NaN or ±Inf in input data.
	ErrNonFinite = errors.New("spline: NaN or Inf in input")
)

// Operation tags for error wrapping.
const (
	opGenerateGrid  = "GenerateGrid"
	opSetGrid       = "SetGrid"
	opGridPoint     = "GridPoint"
	opBasis         = "Basis"
	opInterpolate   = "Interpolate"
	opFit           = "Fit"
	opCalculate     = "Calculate"
	opCalculateAll  = "CalculateAll"
	opSetSplineData = "SetSplineData"
	opSetBoundary   = "SetBoundary"
	opAddToFit      = "AddToFitMatrix"
	opAddBC         = "AddBCToFitMatrix"
	opPrint         = "Print"
	opResiduals     = "Residuals"
)

// splineErrorf wraps err with an operation tag, preserving it for errors.Is.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
