// Package lvspline is a small numerical toolkit around piecewise cubic splines:
// interpolation of sampled data, least-squares smoothing of noisy data with
// controllable boundary conditions, and basis rows that drop into larger
// caller-owned linear systems.
//
// Subpackages:
//
//	matrix/   Accessor/Matrix interfaces, row-major Dense, no-copy MatrixView
//	          windows, validators, small kernels and the gonum-backed Solver
//	spline/   grid builder, interval locator, basis evaluator, Interpolate/Fit,
//	          fit-matrix row writers, sampling and printing
//
// Quick start:
//
//	s := spline.New()                       // natural boundaries
//	_, _ = s.GenerateGrid(0, 2*math.Pi, 0.3)
//	if err := s.Fit(xs, ys); err != nil { ... }
//	y, _ := s.Calculate(1.2)
//
// Joint systems: give each spline its own column window of one matrix.Dense,
// call AddToFitMatrixArray / AddBCToFitMatrix on the windows, and solve with
// matrix.ConstrainedLeastSquares. See examples/ for a spline plus covariate fit.
//
// Pure Go; the only runtime dependency is gonum for factorizations.
package lvspline
