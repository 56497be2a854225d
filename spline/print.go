// SPDX-License-Identifier: MIT

package spline

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Samples evaluates S on x = x_0 + k·step for every such x < x_{n-1}.
// A zero step selects DefaultPrintStep. Abscissas are computed as x_0 + k·step,
// not by repeated addition.
//
// Errors: ErrInvalidStep (negative, NaN or Inf step, or one that yields more
// than MaxSamples points), ErrNotReady.
// Complexity: O(m log n) for m = (x_{n-1}-x_0)/step samples.
func (s *Spline) Samples(step float64) ([]Point, error) {
	step, err := s.sampleStep(step)
	if err != nil {
		return nil, err
	}
	x0, end := s.grid[0], s.grid[len(s.grid)-1]
	count := math.Ceil((end - x0) / step)
	if count > MaxSamples {
		return nil, splineErrorf(opPrint, fmt.Errorf("step %g gives %g samples over [%g, %g], limit %d: %w",
			step, count, x0, end, MaxSamples, ErrInvalidStep))
	}
	out := make([]Point, 0, int(count)+1)
	for k := 0; ; k++ {
		x := x0 + float64(k)*step
		if !(x < end) {
			break
		}
		out = append(out, Point{X: x, Y: s.basisAt(x).Combine(s.f, s.f2)})
	}

	return out, nil
}

// Print writes one "x S(x)" line per sample of Samples(step) to w.
func (s *Spline) Print(w io.Writer, step float64) error {
	pts, err := s.Samples(step)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	var line []byte
	for _, p := range pts {
		line = strconv.AppendFloat(line[:0], p.X, 'g', -1, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.Y, 'g', -1, 64)
		line = append(line, '\n')
		if _, err = bw.Write(line); err != nil {
			return splineErrorf(opPrint, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return splineErrorf(opPrint, err)
	}

	return nil
}

func (s *Spline) sampleStep(step float64) (float64, error) {
	if step == 0 {
		step = DefaultPrintStep
	}
	if step < 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0, splineErrorf(opPrint, fmt.Errorf("step %g: %w", step, ErrInvalidStep))
	}
	if !s.ready {
		return 0, splineErrorf(opPrint, ErrNotReady)
	}

	return step, nil
}
