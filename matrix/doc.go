// Package matrix offers the dense linear-algebra surface the spline engine is
// built on.
//
// The matrix package provides:
//
//   - Accessor / Matrix: bounds-checked 2-D read/write interfaces. Row writers
//     and kernels are written once against Accessor.
//   - Dense: row-major float64 storage with a finite-value policy, plus
//     MatrixView, a no-copy window used to fill one block of a larger system.
//   - Kernels: Mul, Transpose, MatVec.
//   - Solver: the linear-solve capability (Solve, LeastSquares, Inverse) with a
//     gonum-backed default, LUSolver, and ConstrainedLeastSquares on top of it.
//
// Every solver call works on a private copy of its input and reports singular or
// ill-conditioned systems as ErrSingular.
//
// See the examples in this package and in spline for usage patterns.
package matrix
