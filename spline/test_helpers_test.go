// SPDX-License-Identifier: MIT
// Package spline_test contains shared fixtures.
//
// Purpose:
//   - Build grids and sampled data deterministically.
//   - Recompute one-sided derivatives from F/F2 independently of the package,
//     so continuity checks do not trust the code under test.

package spline_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspline/matrix"
	"github.com/katalvlaran/lvspline/spline"
)

// approx compares float slices with a combined absolute/relative tolerance.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(tol, tol)
}

// linspace returns n evenly spaced points on [a, b], endpoints exact.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	out[n-1] = b

	return out
}

// apply maps fn over xs.
func apply(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}

	return out
}

// mustGrid returns a spline with a generated grid or aborts the test.
func mustGrid(t testing.TB, min, max, h float64, opts ...spline.Option) *spline.Spline {
	t.Helper()
	s := spline.New(opts...)
	_, err := s.GenerateGrid(min, max, h)
	require.NoError(t, err)

	return s
}

// mustInterpolate returns an interpolating spline through (x, fn(x)).
func mustInterpolate(t testing.TB, x []float64, fn func(float64) float64, opts ...spline.Option) *spline.Spline {
	t.Helper()
	s := spline.New(opts...)
	require.NoError(t, s.Interpolate(x, apply(x, fn)))

	return s
}

// leftSlope is S' at x_{k} computed from interval k-1.
func leftSlope(grid, f, f2 []float64, k int) float64 {
	h := grid[k] - grid[k-1]

	return (f[k]-f[k-1])/h + h/6*f2[k-1] + h/3*f2[k]
}

// rightSlope is S' at x_{k} computed from interval k.
func rightSlope(grid, f, f2 []float64, k int) float64 {
	h := grid[k+1] - grid[k]

	return (f[k+1]-f[k])/h - h/3*f2[k] - h/6*f2[k+1]
}

// maxDeviation returns max |S(x) - fn(x)| over xs.
func maxDeviation(t testing.TB, s *spline.Spline, xs []float64, fn func(float64) float64) float64 {
	t.Helper()
	var worst float64
	for _, x := range xs {
		y, err := s.Calculate(x)
		require.NoError(t, err)
		worst = math.Max(worst, math.Abs(y-fn(x)))
	}

	return worst
}

// constraintResidual returns C·[f; f2] for the spline's own constraint rows.
func constraintResidual(t testing.TB, s *spline.Spline) []float64 {
	t.Helper()
	c, err := matrix.NewDense(s.ConstraintRows(), s.Unknowns())
	require.NoError(t, err)
	require.NoError(t, s.AddBCToFitMatrix(c, 0, 0))
	r, err := matrix.MatVec(c, append(s.F(), s.F2()...))
	require.NoError(t, err)

	return r
}

// failingSolver reports every system as singular.
type failingSolver struct{}

var errStubSingular = errors.New("stub: zero pivot")

func (failingSolver) Solve(matrix.Accessor, []float64) ([]float64, error) {
	return nil, errors.Join(matrix.ErrSingular, errStubSingular)
}

func (failingSolver) LeastSquares(matrix.Accessor, []float64) ([]float64, error) {
	return nil, errors.Join(matrix.ErrSingular, errStubSingular)
}

func (failingSolver) Inverse(matrix.Accessor) (*matrix.Dense, error) {
	return nil, errors.Join(matrix.ErrSingular, errStubSingular)
}

// failingWriter rejects every write.
type failingWriter struct{}

var errWrite = errors.New("stub: write refused")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }
