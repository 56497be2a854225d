// SPDX-License-Identifier: MIT
// Package matrix provides small dense kernels over any Accessor: matrix
// multiplication, transpose and matrix-vector products. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Supply the building blocks the solver facades need to assemble normal
//     equations and KKT systems (AᵀA, Aᵀb).
//   - Define operation tags shared by kernels and solvers for uniform error reporting.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for dot products and similar accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opMatVec       = "MatVec"
	opInverse      = "Inverse"
	opSolve        = "Solve"
	opLeastSquares = "LeastSquares"
	opConstrained  = "ConstrainedLeastSquares"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast-path i→k→j on *Dense operands (row-major friendly);
//     fallback uses At with the same loop order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation); accessor errors (fallback).
//
// Determinism:
//   - Fixed i→k→j order; identical inputs give bit-identical output.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Accessor) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var aik float64
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var baseA, baseB, baseR int
		for i = 0; i < rows; i++ {
			baseA = i * inner
			baseR = i * cols
			for k = 0; k < inner; k++ {
				aik = da.data[baseA+k]
				if aik == 0 { // spline systems are sparse: skip empty cells
					continue
				}
				baseB = k * cols
				for j = 0; j < cols; j++ {
					res.data[baseR+j] += aik * db.data[baseB+j]
				}
			}
		}

		return res, nil
	}

	// Fallback: interface loop via At.
	var bkj float64
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if aik == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*cols+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated.
// Errors: ErrNilMatrix; accessor errors (fallback).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Accessor) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Accessor, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
