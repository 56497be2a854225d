// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspline/spline"
)

// TestResiduals_Interpolant: an interpolant has zero residual at its nodes.
func TestResiduals_Interpolant(t *testing.T) {
	x := []float64{0, 0.5, 1.5, 2}
	s := mustInterpolate(t, x, math.Cos)
	r, err := s.Residuals(x, apply(x, math.Cos))
	require.NoError(t, err)
	for k, v := range r {
		assert.InDelta(t, 0, v, 1e-12, "node %d", k)
	}
}

// TestRMS_NoisyFit: the RMS residual of a smoothing fit is close to the noise level.
func TestRMS_NoisyFit(t *testing.T) {
	s := mustGrid(t, 0, 2*math.Pi, math.Pi/10)
	xs, ys := noisySin(400, 0.01, 1)
	require.NoError(t, s.Fit(xs, ys))

	rms, err := s.RMS(xs, ys)
	require.NoError(t, err)
	assert.Greater(t, rms, 0.005)
	assert.Less(t, rms, 0.015)

	rms, err = s.RMS(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, rms)
}

// TestResiduals_Errors covers the shape and readiness checks.
func TestResiduals_Errors(t *testing.T) {
	_, err := spline.New().Residuals([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, spline.ErrNotReady)

	s := mustInterpolate(t, []float64{0, 1}, math.Exp)
	_, err = s.Residuals([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, spline.ErrShapeMismatch)
	_, err = s.RMS([]float64{1}, nil)
	assert.ErrorIs(t, err, spline.ErrShapeMismatch)
}
