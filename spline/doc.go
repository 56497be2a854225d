// Package spline implements piecewise cubic splines on an arbitrary strictly
// increasing grid, parametrized by nodal values f and nodal second
// derivatives f2.
//
// On interval i (x_i ≤ x < x_{i+1}) with h = x_{i+1}-x_i and t = x-x_i:
//
//	S(x) = A·f_i + B·f_{i+1} + C·f2_i + D·f2_{i+1}
//	A = 1 - t/h
//	B = t/h
//	C = t²/2 - t³/(6h) - t·h/3
//	D = t³/(6h) - t·h/6
//
// S is linear in (f, f2), which is what the package is built around:
//
//   - Interpolate passes exactly through samples and solves for f2.
//   - Fit solves a least-squares problem for both f and f2 on a fixed grid,
//     with continuity of S' and the boundary conditions enforced exactly.
//   - AddToFitMatrix, AddToFitMatrixArray and AddBCToFitMatrix write basis rows
//     and constraint rows into caller-owned matrices (or matrix.MatrixView
//     windows of a larger system), so several splines and extra regression
//     terms can be fit jointly.
//
// Outside the grid, S continues the polynomial of the first or last interval.
//
// Quick start:
//
//	s := spline.New()
//	if _, err := s.GenerateGrid(0, 1, 0.25); err != nil { ... }
//	if err := s.Fit(xs, ys); err != nil { ... }
//	y, _ := s.Calculate(0.6)
//
// A Spline is not safe for concurrent mutation; distinct instances may be used
// from distinct goroutines.
package spline
