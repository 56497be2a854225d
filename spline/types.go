// SPDX-License-Identifier: MIT

package spline

// Boundary selects the boundary-condition family applied at the two ends of
// the grid. The set is closed; values outside it are rejected with
// ErrInvalidBoundary.
type Boundary int

const (
	// Natural pins the second derivative to zero at both ends: f2_0 = f2_{n-1} = 0.
	Natural Boundary = iota

	// Periodic ties the ends together: f_0 = f_{n-1}, f2_0 = f2_{n-1}, and the
	// first derivative is continuous across the wrap.
	Periodic
)

// String returns the lower-case boundary name.
func (b Boundary) String() string {
	switch b {
	case Natural:
		return "natural"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// Valid reports whether b is a member of the enumeration.
func (b Boundary) Valid() bool {
	return b == Natural || b == Periodic
}

// Basis holds the four piecewise-polynomial weights (or their derivatives) for
// one abscissa, together with the grid interval they belong to:
//
//	S(x) = A·f[i] + B·f[i+1] + C·f2[i] + D·f2[i+1],  i = Interval
type Basis struct {
	Interval   int
	A, B, C, D float64
}

// Combine applies the weights to nodal values f and second derivatives f2.
// Callers guarantee len(f) == len(f2) > Interval+1.
func (b Basis) Combine(f, f2 []float64) float64 {
	i := b.Interval

	return b.A*f[i] + b.B*f[i+1] + b.C*f2[i] + b.D*f2[i+1]
}

// Point is one (x, S(x)) sample produced by Samples.
type Point struct {
	X, Y float64
}
