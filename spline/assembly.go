// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/lvspline/matrix"
)

// Column layout of one spline block (width Unknowns() = 2n), anchored at col:
//
//	col + i       f_i
//	col + n + i   f2_i
//
// Row writers only touch the cells they own; the rest of the caller's matrix
// is left as it is, so a freshly allocated (zero) block is expected.

// AddToFitMatrix accumulates scale·(A, B, C, D) at x into row `row` of m.
// Several splines (or one spline evaluated at several abscissas) can add into
// the same row, which is how sums of spline terms are fit jointly.
//
// Errors:
//   - ErrNoGrid without a grid.
//   - matrix.ErrOutOfRange (wrapped) when the 1×Unknowns() block at (row, col)
//     does not fit in m; ErrNonFinite (with matrix.ErrNaNInf) when x, scale or
//     an accumulated cell is NaN/Inf. Nothing is written in either case.
//
// Complexity: O(log n).
func (s *Spline) AddToFitMatrix(m matrix.Accessor, x float64, row, col int, scale float64) error {
	if err := s.checkBlock(m, row, col, 1); err != nil {
		return splineErrorf(opAddToFit, err)
	}
	if !allFinite([]float64{x, scale}) {
		return splineErrorf(opAddToFit, fmt.Errorf("x=%g scale=%g: %w", x, scale, errNonFiniteCell))
	}
	b := s.basisAt(x)
	cells := s.basisCells(b, col)
	sums := [4]float64{scale * b.A, scale * b.B, scale * b.C, scale * b.D}
	for k, c := range cells {
		cur, err := m.At(row, c)
		if err != nil {
			return splineErrorf(opAddToFit, err)
		}
		sums[k] += cur
	}
	if !allFinite(sums[:]) {
		return splineErrorf(opAddToFit, fmt.Errorf("x=%g scale=%g: %w", x, scale, errNonFiniteCell))
	}
	for k, c := range cells {
		if err := m.Set(row, c, sums[k]); err != nil {
			return splineErrorf(opAddToFit, err)
		}
	}

	return nil
}

// AddToFitMatrixArray assigns one basis row per abscissa: row row+k receives
// (A, B, C, D) at xs[k]. Unlike AddToFitMatrix it overwrites the four cells.
//
// Errors: ErrNoGrid; matrix.ErrOutOfRange (wrapped) when the
// len(xs)×Unknowns() block does not fit; ErrNonFinite (with matrix.ErrNaNInf)
// when an abscissa or its weights are NaN/Inf. All are checked before the
// first write.
// Complexity: O(m log n) for m = len(xs).
func (s *Spline) AddToFitMatrixArray(m matrix.Accessor, xs []float64, row, col int) error {
	if err := s.checkBlock(m, row, col, len(xs)); err != nil {
		return splineErrorf(opAddToFit, err)
	}
	bases := make([]Basis, len(xs))
	for k, x := range xs {
		bases[k] = s.basisAt(x)
		if !allFinite([]float64{x, bases[k].A, bases[k].B, bases[k].C, bases[k].D}) {
			return splineErrorf(opAddToFit, fmt.Errorf("xs[%d]=%g: %w", k, x, errNonFiniteCell))
		}
	}
	for k, b := range bases {
		cells := s.basisCells(b, col)
		w := [4]float64{b.A, b.B, b.C, b.D}
		for j, c := range cells {
			if err := m.Set(row+k, c, w[j]); err != nil {
				return splineErrorf(opAddToFit, err)
			}
		}
	}

	return nil
}

// AddBCToFitMatrix writes the ConstraintRows() homogeneous constraint rows of
// this spline, starting at row `row`, with unknowns anchored at `col`:
//
//	row+0        boundary: f2_0 = 0 (Natural) | f_0 - f_{n-1} = 0 (Periodic)
//	row+1..n-2   S' continuous at interior node x_1..x_{n-2}
//	row+n-1      boundary: f2_{n-1} = 0 (Natural) | f2_0 - f2_{n-1} = 0 (Periodic)
//	row+n        Periodic only: S'(x_{n-1}) of the last interval = S'(x_0) of the first
//
// The right-hand side of every row is zero.
//
// Errors: ErrNoGrid; matrix.ErrOutOfRange (wrapped) when the
// ConstraintRows()×Unknowns() block does not fit, checked before the first write.
// Complexity: O(n).
func (s *Spline) AddBCToFitMatrix(m matrix.Accessor, row, col int) error {
	if err := s.checkBlock(m, row, col, s.ConstraintRows()); err != nil {
		return splineErrorf(opAddBC, err)
	}
	n := len(s.grid)

	// Interior continuity: S'_left(x_{i+1}) - S'_right(x_{i+1}) = 0.
	var l, r Basis
	for i := 0; i < n-2; i++ {
		l, r = s.leftPrime(i), s.rightPrime(i+1)
		cells := []cell{
			{col + i, l.A},
			{col + i + 1, l.B - r.A},
			{col + i + 2, -r.B},
			{col + n + i, l.C},
			{col + n + i + 1, l.D - r.C},
			{col + n + i + 2, -r.D},
		}
		if err := setCells(m, row+i+1, cells); err != nil {
			return splineErrorf(opAddBC, err)
		}
	}

	var err error
	switch s.bc {
	case Natural:
		if err = m.Set(row, col+n, 1); err == nil {
			err = m.Set(row+n-1, col+2*n-1, 1)
		}
	case Periodic:
		err = s.addPeriodicRows(m, row, col)
	}
	if err != nil {
		return splineErrorf(opAddBC, err)
	}

	return nil
}

// addPeriodicRows writes the value tie, the second-derivative tie and the
// wrap derivative row. For n <= 3 the wrap row hits some columns twice, so
// its cells are cleared and then accumulated.
func (s *Spline) addPeriodicRows(m matrix.Accessor, row, col int) error {
	n := len(s.grid)
	if err := setCells(m, row, []cell{{col, 1}, {col + n - 1, -1}}); err != nil {
		return err
	}
	if err := setCells(m, row+n-1, []cell{{col + n, 1}, {col + 2*n - 1, -1}}); err != nil {
		return err
	}

	l, r := s.leftPrime(n-2), s.rightPrime(0)
	wrap := []cell{
		{col + n - 2, l.A},
		{col + n - 1, l.B},
		{col + 2*n - 2, l.C},
		{col + 2*n - 1, l.D},
		{col, -r.A},
		{col + 1, -r.B},
		{col + n, -r.C},
		{col + n + 1, -r.D},
	}
	for _, c := range wrap {
		if err := m.Set(row+n, c.col, 0); err != nil {
			return err
		}
	}
	for _, c := range wrap {
		if err := addAt(m, row+n, c.col, c.v); err != nil {
			return err
		}
	}

	return nil
}

// errNonFiniteCell reports an abscissa or scale whose weights cannot be stored.
var errNonFiniteCell = fmt.Errorf("%w: %w", ErrNonFinite, matrix.ErrNaNInf)

// cell is one (column, value) write within a row.
type cell struct {
	col int
	v   float64
}

func setCells(m matrix.Accessor, row int, cells []cell) error {
	for _, c := range cells {
		if err := m.Set(row, c.col, c.v); err != nil {
			return err
		}
	}

	return nil
}

func addAt(m matrix.Accessor, row, col int, v float64) error {
	cur, err := m.At(row, col)
	if err != nil {
		return err
	}

	return m.Set(row, col, cur+v)
}

// basisCells returns the four columns the weights of b land in.
func (s *Spline) basisCells(b Basis, col int) [4]int {
	n, i := len(s.grid), b.Interval

	return [4]int{col + i, col + i + 1, col + n + i, col + n + i + 1}
}

// checkBlock validates that a rows×Unknowns() block anchored at (row, col)
// fits in m.
func (s *Spline) checkBlock(m matrix.Accessor, row, col, rows int) error {
	if len(s.grid) < 2 {
		return ErrNoGrid
	}
	if err := matrix.ValidateBlock(m, row, col, rows, s.Unknowns()); err != nil {
		return fmt.Errorf("%d rows at (%d,%d): %w", rows, row, col, err)
	}

	return nil
}
