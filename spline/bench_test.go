// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvspline/spline"
)

// benchmarkFit fits m noisy sin samples on a grid with n intervals.
func benchmarkFit(b *testing.B, n, m int) {
	s := spline.New()
	if _, err := s.GenerateGrid(0, 2*math.Pi, 2*math.Pi/float64(n)); err != nil {
		b.Fatalf("GenerateGrid: %v", err)
	}
	xs, ys := noisySin(m, 0.01, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Fit(xs, ys); err != nil {
			b.Fatalf("Fit: %v", err)
		}
	}
}

func BenchmarkFit_20x400(b *testing.B)  { benchmarkFit(b, 20, 400) }
func BenchmarkFit_50x2000(b *testing.B) { benchmarkFit(b, 50, 2000) }

// BenchmarkInterpolate_200 builds a 200-point natural interpolant.
func BenchmarkInterpolate_200(b *testing.B) {
	x := linspace(0, 10, 200)
	y := apply(x, math.Sin)
	s := spline.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Interpolate(x, y); err != nil {
			b.Fatalf("Interpolate: %v", err)
		}
	}
}

// BenchmarkCalculate measures a single evaluation (binary search + basis).
func BenchmarkCalculate(b *testing.B) {
	x := linspace(0, 10, 1000)
	s := spline.New()
	if err := s.Interpolate(x, apply(x, math.Sin)); err != nil {
		b.Fatalf("Interpolate: %v", err)
	}
	var sink float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := s.Calculate(float64(i%10000) * 1e-3)
		sink += v
	}
	_ = sink
}
