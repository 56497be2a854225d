// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvspline/matrix"
)

// Interpolate builds the spline passing exactly through (x[k], y[k]).
// x becomes the grid and f = y; f2 is solved from the constraint rows of
// AddBCToFitMatrix with the f-block moved to the right-hand side.
//
// Behavior highlights:
//   - Natural: the n constraint rows form the square system for f2.
//   - Periodic: y[0] and y[n-1] must agree within DefaultPeriodicTolerance
//     (relative); the value-tie row is then satisfied by the data and the
//     remaining n rows form the system.
//   - On any error the spline is left exactly as it was.
//
// Errors:
//   - ErrShapeMismatch when len(x) != len(y) (checked first).
//   - ErrInvalidGrid when x has fewer than two points, is not strictly
//     increasing, or is non-finite; ErrNonFinite for NaN/Inf in y.
//   - ErrNotPeriodic (Periodic only).
//   - ErrSingular wrapping the solver failure.
//
// Complexity: Time O(n³) with the default dense solver, Space O(n²).
func (s *Spline) Interpolate(x, y []float64) error {
	if len(x) != len(y) {
		return splineErrorf(opInterpolate, fmt.Errorf("len(x)=%d len(y)=%d: %w", len(x), len(y), ErrShapeMismatch))
	}
	if err := validateGrid(x); err != nil {
		return splineErrorf(opInterpolate, err)
	}
	if !allFinite(y) {
		return splineErrorf(opInterpolate, ErrNonFinite)
	}
	n := len(x)
	first := 0
	if s.bc == Periodic {
		if !periodicMatch(y[0], y[n-1]) {
			return splineErrorf(opInterpolate, fmt.Errorf("y[0]=%g y[%d]=%g: %w", y[0], n-1, y[n-1], ErrNotPeriodic))
		}
		first = 1
	}

	// Assemble on a scratch instance so a failed solve leaves s untouched.
	tmp := &Spline{grid: cloneVec(x), bc: s.bc}
	sys, err := matrix.NewDense(tmp.ConstraintRows(), tmp.Unknowns())
	if err != nil {
		return splineErrorf(opInterpolate, err)
	}
	if err = tmp.AddBCToFitMatrix(sys, 0, 0); err != nil {
		return splineErrorf(opInterpolate, err)
	}

	fBlock, err := sys.View(first, 0, n, n)
	if err != nil {
		return splineErrorf(opInterpolate, err)
	}
	f2Block, err := sys.View(first, n, n, n)
	if err != nil {
		return splineErrorf(opInterpolate, err)
	}
	rhs, err := matrix.MatVec(fBlock, y)
	if err != nil {
		return splineErrorf(opInterpolate, err)
	}
	for i := range rhs {
		rhs[i] = -rhs[i]
	}

	f2, err := s.solver.Solve(f2Block, rhs)
	if err != nil {
		return solveErrorf(opInterpolate, err)
	}
	s.grid = tmp.grid
	s.install(cloneVec(y), f2)

	return nil
}

// Fit computes the least-squares spline through noisy samples on the current
// grid. The unknowns p = [f; f2] minimize ||S·p - y||² subject to the
// constraint rows C·p = 0 of AddBCToFitMatrix, which hold exactly; only the
// sample rows are fit.
//
// Errors:
//   - ErrNoGrid before GenerateGrid/SetGrid.
//   - ErrShapeMismatch when len(x) != len(y) or there are no samples.
//   - ErrNonFinite for NaN/Inf samples.
//   - ErrSingular when the samples do not determine the spline (for example an
//     interval without samples that the constraints cannot bridge).
//
// Complexity: Time O(m·n² + n³) for m samples and n grid points, Space O(m·n + n²).
func (s *Spline) Fit(x, y []float64) error {
	n := len(s.grid)
	if n < 2 {
		return splineErrorf(opFit, ErrNoGrid)
	}
	if len(x) != len(y) || len(x) == 0 {
		return splineErrorf(opFit, fmt.Errorf("len(x)=%d len(y)=%d: %w", len(x), len(y), ErrShapeMismatch))
	}
	if !allFinite(x) || !allFinite(y) {
		return splineErrorf(opFit, ErrNonFinite)
	}

	samples, err := matrix.NewDense(len(x), s.Unknowns())
	if err != nil {
		return splineErrorf(opFit, err)
	}
	if err = s.AddToFitMatrixArray(samples, x, 0, 0); err != nil {
		return splineErrorf(opFit, err)
	}
	k := s.ConstraintRows()
	cons, err := matrix.NewDense(k, s.Unknowns())
	if err != nil {
		return splineErrorf(opFit, err)
	}
	if err = s.AddBCToFitMatrix(cons, 0, 0); err != nil {
		return splineErrorf(opFit, err)
	}

	p, err := matrix.ConstrainedLeastSquares(s.solver, samples, y, cons, make([]float64, k))
	if err != nil {
		return solveErrorf(opFit, err)
	}
	s.install(cloneVec(p[:n]), cloneVec(p[n:]))

	return nil
}

// periodicMatch compares the end values relative to their magnitude, with an
// absolute floor of DefaultPeriodicTolerance near zero.
func periodicMatch(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= DefaultPeriodicTolerance*scale
}

// solveErrorf maps a solver failure onto ErrSingular, keeping the cause.
func solveErrorf(tag string, err error) error {
	if errors.Is(err, matrix.ErrSingular) {
		return fmt.Errorf("%s: %w: %w", tag, ErrSingular, err)
	}

	return splineErrorf(tag, err)
}
