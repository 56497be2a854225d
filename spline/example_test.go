// SPDX-License-Identifier: MIT

package spline_test

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/lvspline/matrix"
	"github.com/katalvlaran/lvspline/spline"
)

// ExampleSpline_Interpolate interpolates y = x² on a quarter grid.
func ExampleSpline_Interpolate() {
	s := spline.New()
	n, err := s.GenerateGrid(0, 1, 0.25)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x := s.Grid()
	y := make([]float64, n)
	for i, v := range x {
		y[i] = v * v
	}
	if err = s.Interpolate(x, y); err != nil {
		fmt.Println("error:", err)

		return
	}
	v, _ := s.Calculate(0.6)
	fmt.Printf("grid=%v\nS(0.6)=%.4f\n", x, v)
	// Output:
	// grid=[0 0.25 0.5 0.75 1]
	// S(0.6)=0.3591
}

// ExampleSpline_Fit fits samples of a straight line; the line lies in the
// spline space, so the fit recovers it.
func ExampleSpline_Fit() {
	s := spline.New()
	if _, err := s.GenerateGrid(0, 2, 0.5); err != nil {
		fmt.Println("error:", err)

		return
	}
	xs := []float64{0, 0.3, 0.6, 0.9, 1.2, 1.5, 1.8, 2}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 1 - 0.5*x
	}
	if err := s.Fit(xs, ys); err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, x := range []float64{0.25, 1, 1.75} {
		v, _ := s.Calculate(x)
		fmt.Printf("S(%.2f)=%.3f\n", x, v)
	}
	// Output:
	// S(0.25)=0.875
	// S(1.00)=0.500
	// S(1.75)=0.125
}

// ExampleSpline_Print writes "x S(x)" lines.
func ExampleSpline_Print() {
	s := spline.New()
	_ = s.SetGrid([]float64{0, 1})
	_ = s.SetSplineData([]float64{1, 3}, []float64{0, 0})
	_ = s.Print(os.Stdout, 0.5)
	// Output:
	// 0 1
	// 0.5 2
}

// ExampleSpline_AddToFitMatrix writes basis rows into a caller-owned matrix;
// the row dotted with [f; f2] is S(x).
func ExampleSpline_AddToFitMatrix() {
	s := spline.New()
	_ = s.SetGrid([]float64{0, 1, 2})
	m, _ := matrix.NewDense(1, s.Unknowns())
	_ = s.AddToFitMatrix(m, 0.5, 0, 0, 1)
	row, _ := m.RawRow(0)
	fmt.Printf("%.4f\n", row)

	_ = s.SetSplineData([]float64{0, 1, 0}, []float64{0, -2, 0})
	p := append(s.F(), s.F2()...)
	got, _ := matrix.MatVec(m, p)
	want, _ := s.Calculate(0.5)
	fmt.Println(math.Abs(got[0]-want) < 1e-15)
	// Output:
	// [0.5000 0.5000 0.0000 -0.0625 -0.0625 0.0000]
	// true
}
