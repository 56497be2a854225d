// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
	"sort"
)

// gridCountSlack absorbs representation error in (max-min)/h so that a range
// that is an exact multiple of h in decimal (e.g. 2π with h = π/10) does not
// lose its last regular point to floor().
const gridCountSlack = 1e-9

// GenerateGrid builds the uniform grid min, min+h, min+2h, ... with the last
// point forced to exactly max, and returns the number of points.
//
// Behavior highlights:
//   - n = 1 + floor((max-min)/h); point i is computed as min + i*h, so the
//     spacing does not drift. The final interval may be shorter (or, by at most
//     the slack, longer) than h.
//   - f and f2 are resized to n and zeroed; the spline is no longer Ready.
//
// Errors (returned before any state is touched):
//   - ErrInvalidGrid when max <= min, h <= 0, any argument is NaN/Inf, or the
//     step is wider than the range (fewer than two points).
//
// Complexity: Time O(n), Space O(n).
func (s *Spline) GenerateGrid(min, max, h float64) (int, error) {
	if !allFinite([]float64{min, max, h}) {
		return 0, splineErrorf(opGenerateGrid, fmt.Errorf("non-finite argument: %w", ErrInvalidGrid))
	}
	if max <= min || h <= 0 {
		return 0, splineErrorf(opGenerateGrid, fmt.Errorf("min=%g max=%g h=%g: %w", min, max, h, ErrInvalidGrid))
	}
	steps := math.Floor((max-min)/h + gridCountSlack)
	if steps < 1 {
		return 0, splineErrorf(opGenerateGrid, fmt.Errorf("step %g wider than range [%g, %g]: %w", h, min, max, ErrInvalidGrid))
	}
	if steps > math.MaxInt32 {
		return 0, splineErrorf(opGenerateGrid, fmt.Errorf("%g points: %w", steps, ErrInvalidGrid))
	}

	n := int(steps) + 1
	grid := make([]float64, n)
	for i := 0; i < n-1; i++ {
		grid[i] = min + float64(i)*h
	}
	grid[n-1] = max
	s.resetTo(grid)

	return n, nil
}

// SetGrid installs a caller-supplied grid (copied). Like GenerateGrid it
// zeroes f/f2 and clears Ready.
// Errors: ErrInvalidGrid when xs has fewer than two points, holds NaN/Inf, or
// is not strictly increasing.
func (s *Spline) SetGrid(xs []float64) error {
	if err := validateGrid(xs); err != nil {
		return splineErrorf(opSetGrid, err)
	}
	s.resetTo(cloneVec(xs))

	return nil
}

// Grid returns a copy of the grid points.
func (s *Spline) Grid() []float64 { return cloneVec(s.grid) }

// Len returns the number of grid points (0 before a grid exists).
func (s *Spline) Len() int { return len(s.grid) }

// GridPoint returns grid point i.
func (s *Spline) GridPoint(i int) (float64, error) {
	if i < 0 || i >= len(s.grid) {
		return 0, splineErrorf(opGridPoint, fmt.Errorf("index %d, len %d: %w", i, len(s.grid), ErrOutOfRange))
	}

	return s.grid[i], nil
}

// Interval returns the index i of the grid interval [x_i, x_{i+1}) holding x.
//
// Behavior highlights:
//   - x below the grid maps to 0; x at or beyond x_{n-2} maps to n-2, so the
//     last interval is closed on the right and points outside the grid use the
//     polynomial of the nearest end interval. NaN maps to n-2.
//   - Binary search: O(log n).
//
// Interval requires a grid; without one it returns 0.
func (s *Spline) Interval(x float64) int {
	n := len(s.grid)
	if n < 2 || x < s.grid[0] {
		return 0
	}
	last := n - 2
	if !(x < s.grid[last]) {
		return last
	}
	// first index with grid[i] > x; grid[0] <= x guarantees i >= 1
	i := sort.Search(last+1, func(k int) bool { return s.grid[k] > x }) - 1
	if i > last {
		i = last
	}

	return i
}

// resetTo installs grid and zeroed f/f2 of matching length.
func (s *Spline) resetTo(grid []float64) {
	s.grid = grid
	s.f = make([]float64, len(grid))
	s.f2 = make([]float64, len(grid))
	s.ready = false
}

// validateGrid checks the grid invariants: n >= 2, finite, strictly increasing.
func validateGrid(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("%d points: %w", len(xs), ErrInvalidGrid)
	}
	if !allFinite(xs) {
		return fmt.Errorf("non-finite point: %w", ErrInvalidGrid)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return fmt.Errorf("x[%d]=%g <= x[%d]=%g: %w", i, xs[i], i-1, xs[i-1], ErrInvalidGrid)
		}
	}

	return nil
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
