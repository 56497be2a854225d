// SPDX-License-Identifier: MIT

package spline

// Basis returns the interval holding x and the weights A, B, C, D with
// S(x) = A·f_i + B·f_{i+1} + C·f2_i + D·f2_{i+1}.
// Outside the grid the weights of the nearest end interval are extrapolated.
// Errors: ErrNoGrid before GenerateGrid/SetGrid.
func (s *Spline) Basis(x float64) (Basis, error) {
	if len(s.grid) < 2 {
		return Basis{}, splineErrorf(opBasis, ErrNoGrid)
	}

	return s.basisAt(x), nil
}

// BasisDerivative returns the x-derivatives of the Basis weights, so that
// S'(x) = A'·f_i + B'·f_{i+1} + C'·f2_i + D'·f2_{i+1}.
// Errors: ErrNoGrid before GenerateGrid/SetGrid.
func (s *Spline) BasisDerivative(x float64) (Basis, error) {
	if len(s.grid) < 2 {
		return Basis{}, splineErrorf(opBasis, ErrNoGrid)
	}

	return s.basisDerivativeAt(x), nil
}

// basisAt is Basis without the grid check; the grid has at least two points.
func (s *Spline) basisAt(x float64) Basis {
	i := s.Interval(x)
	h := s.grid[i+1] - s.grid[i]
	t := x - s.grid[i]
	t3h := t * t * t / (6 * h)

	return Basis{
		Interval: i,
		A:        1 - t/h,
		B:        t / h,
		C:        t*t/2 - t3h - t*h/3,
		D:        t3h - t*h/6,
	}
}

func (s *Spline) basisDerivativeAt(x float64) Basis {
	i := s.Interval(x)
	h := s.grid[i+1] - s.grid[i]
	t := x - s.grid[i]
	t2h := t * t / (2 * h)

	return Basis{
		Interval: i,
		A:        -1 / h,
		B:        1 / h,
		C:        t - t2h - h/3,
		D:        t2h - h/6,
	}
}

// leftPrime is BasisDerivative of interval i evaluated at its right end x_{i+1}.
func (s *Spline) leftPrime(i int) Basis {
	h := s.grid[i+1] - s.grid[i]

	return Basis{Interval: i, A: -1 / h, B: 1 / h, C: h / 6, D: h / 3}
}

// rightPrime is BasisDerivative of interval i evaluated at its left end x_i.
func (s *Spline) rightPrime(i int) Basis {
	h := s.grid[i+1] - s.grid[i]

	return Basis{Interval: i, A: -1 / h, B: 1 / h, C: -h / 3, D: -h / 6}
}
