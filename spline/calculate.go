// SPDX-License-Identifier: MIT

package spline

import "fmt"

// Calculate returns S(x). Points outside the grid are extrapolated with the
// polynomial of the nearest end interval; that is not an error.
// Errors: ErrNotReady before Interpolate, Fit or SetSplineData.
// Complexity: O(log n).
func (s *Spline) Calculate(x float64) (float64, error) {
	if !s.ready {
		return 0, splineErrorf(opCalculate, ErrNotReady)
	}

	return s.basisAt(x).Combine(s.f, s.f2), nil
}

// CalculateDerivative returns S'(x).
func (s *Spline) CalculateDerivative(x float64) (float64, error) {
	if !s.ready {
		return 0, splineErrorf(opCalculate, ErrNotReady)
	}

	return s.basisDerivativeAt(x).Combine(s.f, s.f2), nil
}

// CalculateSecondDerivative returns S''(x), the linear interpolant of f2.
func (s *Spline) CalculateSecondDerivative(x float64) (float64, error) {
	if !s.ready {
		return 0, splineErrorf(opCalculate, ErrNotReady)
	}
	b := s.basisAt(x)

	return b.A*s.f2[b.Interval] + b.B*s.f2[b.Interval+1], nil
}

// CalculateAll writes S(xs[k]) into ys[k].
// Errors: ErrShapeMismatch (before any write), ErrNotReady.
// Complexity: O(m log n) for m = len(xs).
func (s *Spline) CalculateAll(xs, ys []float64) error {
	return s.evalInto(xs, ys, s.basisAt)
}

// CalculateDerivativeAll writes S'(xs[k]) into ys[k].
func (s *Spline) CalculateDerivativeAll(xs, ys []float64) error {
	return s.evalInto(xs, ys, s.basisDerivativeAt)
}

func (s *Spline) evalInto(xs, ys []float64, basis func(float64) Basis) error {
	if len(xs) != len(ys) {
		return splineErrorf(opCalculateAll, fmt.Errorf("len(x)=%d len(y)=%d: %w", len(xs), len(ys), ErrShapeMismatch))
	}
	if !s.ready {
		return splineErrorf(opCalculateAll, ErrNotReady)
	}
	for k, x := range xs {
		ys[k] = basis(x).Combine(s.f, s.f2)
	}

	return nil
}
