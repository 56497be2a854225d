// SPDX-License-Identifier: MIT

package spline

import (
	"github.com/katalvlaran/lvspline/matrix"
)

// Spline owns a grid, the nodal values f and second derivatives f2 on it, the
// boundary family, and the linear-solve capability used to compute f/f2.
//
// Invariant: len(f) == len(f2) == len(grid) whenever a grid is present.
type Spline struct {
	grid   []float64
	f      []float64
	f2     []float64
	bc     Boundary
	solver matrix.Solver
	ready  bool // f/f2 populated by Interpolate, Fit or SetSplineData
}

// New returns an empty Spline (no grid) configured by opts.
// Defaults: DefaultBoundary, matrix.NewLUSolver().
func New(opts ...Option) *Spline {
	s := &Spline{bc: DefaultBoundary}
	for _, opt := range opts {
		opt(s)
	}
	if s.solver == nil {
		s.solver = matrix.NewLUSolver()
	}

	return s
}

// Boundary returns the active boundary family.
func (s *Spline) Boundary() Boundary { return s.bc }

// SetBoundary switches the boundary family used by subsequent Interpolate,
// Fit and AddBCToFitMatrix calls. Existing f/f2 are kept as they are.
func (s *Spline) SetBoundary(b Boundary) error {
	if !b.Valid() {
		return splineErrorf(opSetBoundary, ErrInvalidBoundary)
	}
	s.bc = b

	return nil
}

// Reset drops the grid and all spline data. Boundary and solver are kept.
func (s *Spline) Reset() {
	s.grid, s.f, s.f2 = nil, nil, nil
	s.ready = false
}

// Ready reports whether f and f2 hold a computed or supplied spline.
func (s *Spline) Ready() bool { return s.ready }

// F returns a copy of the nodal values.
func (s *Spline) F() []float64 { return cloneVec(s.f) }

// F2 returns a copy of the nodal second derivatives.
func (s *Spline) F2() []float64 { return cloneVec(s.f2) }

// SetSplineData installs caller-supplied nodal values and second derivatives
// on the current grid. Both slices are copied.
func (s *Spline) SetSplineData(f, f2 []float64) error {
	n := len(s.grid)
	if n == 0 {
		return splineErrorf(opSetSplineData, ErrNoGrid)
	}
	if len(f) != n || len(f2) != n {
		return splineErrorf(opSetSplineData, ErrShapeMismatch)
	}
	if !allFinite(f) || !allFinite(f2) {
		return splineErrorf(opSetSplineData, ErrNonFinite)
	}
	s.f = cloneVec(f)
	s.f2 = cloneVec(f2)
	s.ready = true

	return nil
}

// Unknowns is the number of spline parameters, 2n: n nodal values followed by
// n second derivatives. It is the column width of every assembled row.
func (s *Spline) Unknowns() int { return 2 * len(s.grid) }

// ConstraintRows is the number of rows AddBCToFitMatrix writes: n for
// Natural, n+1 for Periodic (the extra row ties S' across the wrap).
func (s *Spline) ConstraintRows() int {
	n := len(s.grid)
	if n == 0 {
		return 0
	}
	if s.bc == Periodic {
		return n + 1
	}

	return n
}

// install replaces the spline parameters from a solved vector p = [f; f2].
func (s *Spline) install(f, f2 []float64) {
	s.f = f
	s.f2 = f2
	s.ready = true
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
