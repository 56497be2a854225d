// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Residuals returns S(x[k]) - y[k] for every sample, the quantity Fit
// minimizes in the least-squares sense.
// Errors: ErrShapeMismatch, ErrNotReady.
// Complexity: O(m log n).
func (s *Spline) Residuals(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, splineErrorf(opResiduals, fmt.Errorf("len(x)=%d len(y)=%d: %w", len(x), len(y), ErrShapeMismatch))
	}
	r := make([]float64, len(x))
	if err := s.CalculateAll(x, r); err != nil {
		return nil, splineErrorf(opResiduals, err)
	}
	floats.Sub(r, y)

	return r, nil
}

// RMS returns the root-mean-square residual over the samples. With no samples
// it returns 0.
func (s *Spline) RMS(x, y []float64) (float64, error) {
	r, err := s.Residuals(x, y)
	if err != nil {
		return 0, err
	}
	if len(r) == 0 {
		return 0, nil
	}

	return floats.Norm(r, 2) / math.Sqrt(float64(len(r))), nil
}
