// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspline/spline"
)

var nonUniform = []float64{-1, -0.4, 0.3, 0.35, 1.2, 2}

// mustBasis returns the weights at x or aborts the test.
func mustBasis(t testing.TB, s *spline.Spline, x float64) spline.Basis {
	t.Helper()
	b, err := s.Basis(x)
	require.NoError(t, err)

	return b
}

// TestBasis_NoGrid checks that the weights are refused before a grid exists.
func TestBasis_NoGrid(t *testing.T) {
	s := spline.New()
	b, err := s.Basis(0.5)
	assert.ErrorIs(t, err, spline.ErrNoGrid)
	assert.Equal(t, spline.Basis{}, b)

	_, err = s.BasisDerivative(0.5)
	assert.ErrorIs(t, err, spline.ErrNoGrid)

	require.NoError(t, s.SetGrid([]float64{0, 1}))
	s.Reset()
	_, err = s.Basis(0.5)
	assert.ErrorIs(t, err, spline.ErrNoGrid, "after Reset")
}

// TestBasis_Nodes checks the weights at grid points: S(x_i) = f_i.
func TestBasis_Nodes(t *testing.T) {
	s := spline.New()
	require.NoError(t, s.SetGrid(nonUniform))

	n := len(nonUniform)
	for i := 0; i < n-1; i++ {
		b := mustBasis(t, s, nonUniform[i])
		assert.Equal(t, spline.Basis{Interval: i, A: 1}, b, "left end of interval %d", i)
	}
	b := mustBasis(t, s, nonUniform[n-1])
	assert.Equal(t, n-2, b.Interval)
	assert.InDelta(t, 0, b.A, 1e-15)
	assert.InDelta(t, 1, b.B, 1e-15)
	assert.InDelta(t, 0, b.C, 1e-15)
	assert.InDelta(t, 0, b.D, 1e-15)
}

// TestBasis_PartitionOfUnity checks A + B = 1 everywhere, including outside the grid.
func TestBasis_PartitionOfUnity(t *testing.T) {
	s := spline.New()
	require.NoError(t, s.SetGrid(nonUniform))
	for _, x := range linspace(-3, 4, 71) {
		b := mustBasis(t, s, x)
		assert.InDelta(t, 1, b.A+b.B, 1e-12, "x=%g", x)
	}
}

// TestBasisDerivative_MatchesFiniteDifference compares the closed-form
// derivatives with central differences of Basis inside each interval.
func TestBasisDerivative_MatchesFiniteDifference(t *testing.T) {
	s := spline.New()
	require.NoError(t, s.SetGrid(nonUniform))

	const eps = 1e-6
	for i := 0; i < len(nonUniform)-1; i++ {
		lo, hi := nonUniform[i], nonUniform[i+1]
		for _, frac := range []float64{0.2, 0.5, 0.8} {
			x := lo + frac*(hi-lo)
			d, err := s.BasisDerivative(x)
			require.NoError(t, err)
			p, m := mustBasis(t, s, x+eps), mustBasis(t, s, x-eps)
			require.Equal(t, i, d.Interval)
			assert.InDelta(t, (p.A-m.A)/(2*eps), d.A, 1e-6, "A' at %g", x)
			assert.InDelta(t, (p.B-m.B)/(2*eps), d.B, 1e-6, "B' at %g", x)
			assert.InDelta(t, (p.C-m.C)/(2*eps), d.C, 1e-6, "C' at %g", x)
			assert.InDelta(t, (p.D-m.D)/(2*eps), d.D, 1e-6, "D' at %g", x)
		}
	}
}

// TestCalculate_NotReady ensures evaluation without data is reported.
func TestCalculate_NotReady(t *testing.T) {
	for name, s := range map[string]*spline.Spline{
		"no-grid": spline.New(),
		"no-data": mustGrid(t, 0, 1, 0.5),
	} {
		_, err := s.Calculate(0.5)
		assert.ErrorIs(t, err, spline.ErrNotReady, name)
		_, err = s.CalculateDerivative(0.5)
		assert.ErrorIs(t, err, spline.ErrNotReady, name)
		_, err = s.CalculateSecondDerivative(0.5)
		assert.ErrorIs(t, err, spline.ErrNotReady, name)
		assert.ErrorIs(t, s.CalculateAll([]float64{1}, []float64{0}), spline.ErrNotReady, name)
	}
}

// TestCalculate_LinearData checks that zero curvature gives a straight line,
// continued past both ends of the grid.
func TestCalculate_LinearData(t *testing.T) {
	s := spline.New()
	require.NoError(t, s.SetGrid(nonUniform))
	f := apply(nonUniform, func(x float64) float64 { return 2*x - 3 })
	require.NoError(t, s.SetSplineData(f, make([]float64, len(f))))

	for _, x := range []float64{-5, -1, 0, 0.32, 1.9, 2, 7.5} {
		y, err := s.Calculate(x)
		require.NoError(t, err)
		assert.InDelta(t, 2*x-3, y, 1e-12, "S(%g)", x)

		d, err := s.CalculateDerivative(x)
		require.NoError(t, err)
		assert.InDelta(t, 2, d, 1e-12, "S'(%g)", x)
	}
}

// TestCalculateSecondDerivative_Nodes checks S''(x_i) == f2_i.
func TestCalculateSecondDerivative_Nodes(t *testing.T) {
	s := mustInterpolate(t, nonUniform, math.Sin)
	f2 := s.F2()
	for i, x := range nonUniform {
		d2, err := s.CalculateSecondDerivative(x)
		require.NoError(t, err)
		assert.InDelta(t, f2[i], d2, 1e-12, "node %d", i)
	}
}

// TestCalculateAll covers the vector forms and their shape check.
func TestCalculateAll(t *testing.T) {
	s := mustInterpolate(t, linspace(0, 3, 7), math.Exp)
	xs := []float64{0.1, 1.4, 2.9}

	ys := make([]float64, len(xs))
	require.NoError(t, s.CalculateAll(xs, ys))
	ds := make([]float64, len(xs))
	require.NoError(t, s.CalculateDerivativeAll(xs, ds))
	for k, x := range xs {
		y, err := s.Calculate(x)
		require.NoError(t, err)
		assert.Equal(t, y, ys[k])
		d, err := s.CalculateDerivative(x)
		require.NoError(t, err)
		assert.Equal(t, d, ds[k])
	}

	short := []float64{42}
	assert.ErrorIs(t, s.CalculateAll(xs, short), spline.ErrShapeMismatch)
	assert.ErrorIs(t, s.CalculateDerivativeAll(xs, short), spline.ErrShapeMismatch)
	assert.Equal(t, []float64{42}, short, "no write on shape mismatch")
}

// TestSetSplineData covers copying and validation.
func TestSetSplineData(t *testing.T) {
	s := spline.New()
	assert.ErrorIs(t, s.SetSplineData([]float64{1}, []float64{1}), spline.ErrNoGrid)

	_, err := s.GenerateGrid(0, 1, 0.5)
	require.NoError(t, err)
	assert.ErrorIs(t, s.SetSplineData([]float64{1, 2}, []float64{0, 0, 0}), spline.ErrShapeMismatch)
	assert.ErrorIs(t, s.SetSplineData([]float64{1, math.NaN(), 3}, []float64{0, 0, 0}), spline.ErrNonFinite)
	assert.False(t, s.Ready())

	f := []float64{1, 2, 3}
	require.NoError(t, s.SetSplineData(f, []float64{0, 1, 0}))
	f[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, s.F(), "f is copied in")
	got := s.F2()
	got[1] = 99
	assert.Equal(t, []float64{0, 1, 0}, s.F2(), "F2 returns a copy")
	assert.True(t, s.Ready())
}
