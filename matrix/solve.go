// SPDX-License-Identifier: MIT

// Package matrix - linear-solve capability.
//
// Purpose:
//   - Expose the numerical collaborator the spline engine calls into: square
//     solves, least-squares solves, inversion, and equality-constrained least
//     squares built on top of them.
//   - Delegate factorization to gonum (LU with partial pivoting, Householder QR),
//     keeping this package's Accessor/Dense surface and sentinel errors.
//
// Copy-on-call contract:
//   - Every Solver method copies its inputs into gonum scratch storage before
//     factorizing. Caller matrices and vectors are never aliased or mutated, and
//     returned slices/matrices are freshly allocated.
//
// Failure contract:
//   - A singular or ill-conditioned system (condition number above the configured
//     limit) is reported as ErrSingular, wrapping the gonum error when there is
//     one. No result is returned alongside the error.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solver is the linear-solve capability consumed by higher-level fitters.
// Implementations must be safe for concurrent use when they hold no mutable state.
type Solver interface {
	// Solve returns x with a*x = b for a square, non-singular a.
	Solve(a Accessor, b []float64) ([]float64, error)

	// LeastSquares returns x minimizing ||a*x - b||₂ for a.Rows() >= a.Cols().
	LeastSquares(a Accessor, b []float64) ([]float64, error)

	// Inverse returns a⁻¹ for a square, non-singular a.
	Inverse(a Accessor) (*Dense, error)
}

// LUSolver is the default Solver backed by gonum/mat.
// It holds only immutable options and may be shared across goroutines.
type LUSolver struct {
	opts Options
}

var _ Solver = (*LUSolver)(nil)

// NewLUSolver constructs a gonum-backed solver.
// Options: WithConditionLimit, WithValidateNaNInf / WithNoValidateNaNInf.
func NewLUSolver(opts ...Option) *LUSolver {
	return &LUSolver{opts: gatherOptions(opts...)}
}

// Solve returns x with a*x = b via LU factorization with partial pivoting.
// MAIN DESCRIPTION:
//   - Square solve on a private copy of a; the caller's storage is untouched.
//
// Implementation:
//   - Stage 1: ValidateSquare(a), ValidateVecLen(b, n), optional finite check.
//   - Stage 2: copy into *mat.Dense, factorize (mat.LU), check the condition estimate.
//   - Stage 3: solve into a fresh vector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrNaNInf (numeric policy).
//   - ErrSingular (exactly singular or condition number above the limit).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Indefinite systems (KKT saddle points) have zero diagonal blocks and
//     need the row pivoting done here.
func (s *LUSolver) Solve(a Accessor, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	ga, err := s.load(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	gb, err := s.loadVec(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var lu mat.LU
	lu.Factorize(ga)
	if err = s.checkCondition(lu.Cond()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := mat.NewVecDense(n, nil)
	if err = s.accept(lu.SolveVecTo(x, false, gb)); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return vecData(x), nil
}

// LeastSquares returns x minimizing ||a*x - b||₂ via Householder QR.
// Requires a.Rows() >= a.Cols() (ErrUnderdetermined otherwise); a rank-deficient
// a yields ErrSingular.
// Complexity: Time O(r*c²), Space O(r*c).
func (s *LUSolver) LeastSquares(a Accessor, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if err := ValidateVecLen(b, rows); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if rows < cols {
		return nil, matrixErrorf(opLeastSquares, ErrUnderdetermined)
	}
	ga, err := s.load(a)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	gb, err := s.loadVec(b)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}

	var qr mat.QR
	qr.Factorize(ga)
	if err = s.checkCondition(qr.Cond()); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	x := mat.NewVecDense(cols, nil)
	if err = s.accept(qr.SolveVecTo(x, false, gb)); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}

	return vecData(x), nil
}

// Inverse returns a⁻¹ computed by gonum on a private copy of a.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func (s *LUSolver) Inverse(a Accessor) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	ga, err := s.load(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var inv mat.Dense
	if err = s.accept(inv.Inverse(ga)); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return fromGonum(&inv), nil
}

// ConstrainedLeastSquares solves  min ||a*x - b||₂  subject to  c*x = d.
// MAIN DESCRIPTION:
//   - Equality constraints are honored exactly; only the rows of a are fit.
//
// Implementation:
//   - Stage 1: validate shapes (a.Cols == c.Cols, len(b) == a.Rows, len(d) == c.Rows).
//   - Stage 2: assemble the KKT system
//     [ aᵀa  cᵀ ] [x]   [aᵀb]
//     [ c    0  ] [λ] = [ d ]
//   - Stage 3: solve it with s.Solve and return the first a.Cols entries.
//
// Behavior highlights:
//   - A nil/empty constraint block degrades to s.LeastSquares(a, b).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1); anything s.Solve reports,
//     in particular ErrSingular when the constraints are dependent or the data
//     does not determine the unknowns left free by the constraints.
//
// Complexity:
//   - Time O(r*n² + (n+k)³), Space O((n+k)²) for n unknowns and k constraints.
func ConstrainedLeastSquares(s Solver, a Accessor, b []float64, c Accessor, d []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}
	if c == nil || c.Rows() == 0 {
		x, err := s.LeastSquares(a, b)
		if err != nil {
			return nil, matrixErrorf(opConstrained, err)
		}

		return x, nil
	}
	if c.Cols() != a.Cols() {
		return nil, matrixErrorf(opConstrained, fmt.Errorf("constraint columns %d != %d: %w", c.Cols(), a.Cols(), ErrDimensionMismatch))
	}
	if err := ValidateVecLen(d, c.Rows()); err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}

	n, k := a.Cols(), c.Rows()
	at, err := Transpose(a)
	if err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}
	ata, err := Mul(at, a)
	if err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}
	atb, err := MatVec(at, b)
	if err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}

	kkt, err := NewDense(n+k, n+k)
	if err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}
	rhs := make([]float64, n+k)

	var i, j int
	var v float64
	dim := n + k
	for i = 0; i < n; i++ { // upper-left block: aᵀa
		copy(kkt.data[i*dim:i*dim+n], ata.data[i*n:(i+1)*n])
		rhs[i] = atb[i]
	}
	for i = 0; i < k; i++ { // constraint blocks: c below, cᵀ to the right
		for j = 0; j < n; j++ {
			if v, err = c.At(i, j); err != nil {
				return nil, matrixErrorf(opConstrained, err)
			}
			kkt.data[(n+i)*dim+j] = v
			kkt.data[j*dim+n+i] = v
		}
		rhs[n+i] = d[i]
	}

	sol, err := s.Solve(kkt, rhs)
	if err != nil {
		return nil, matrixErrorf(opConstrained, err)
	}

	return sol[:n:n], nil
}

// load copies a into a fresh gonum matrix, enforcing the numeric policy.
func (s *LUSolver) load(a Accessor) (*mat.Dense, error) {
	if s.opts.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, err
		}
	}
	rows, cols := a.Rows(), a.Cols()
	if rows == 0 || cols == 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)
	if d, ok := a.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var (
			i, j int
			err  error
		)
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if buf[i*cols+j], err = a.At(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// loadVec copies b into a fresh gonum vector, enforcing the numeric policy.
func (s *LUSolver) loadVec(b []float64) (*mat.VecDense, error) {
	if s.opts.validateNaNInf {
		if err := ValidateFiniteVec(b); err != nil {
			return nil, err
		}
	}
	buf := make([]float64, len(b))
	copy(buf, b)

	return mat.NewVecDense(len(buf), buf), nil
}

// checkCondition rejects factorizations whose condition estimate exceeds the limit.
func (s *LUSolver) checkCondition(cond float64) error {
	if math.IsNaN(cond) || cond > s.opts.conditionLimit {
		return fmt.Errorf("%w: condition number %g exceeds %g", ErrSingular, cond, s.opts.conditionLimit)
	}

	return nil
}

// accept maps gonum solve errors onto ErrSingular. A mat.Condition within a
// caller-raised limit is tolerated, since gonum still produced the solution.
func (s *LUSolver) accept(err error) error {
	if err == nil {
		return nil
	}
	var cond mat.Condition
	if errors.As(err, &cond) && float64(cond) <= s.opts.conditionLimit {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrSingular, err)
}

// vecData returns the entries of a freshly allocated gonum vector.
func vecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// fromGonum copies a gonum matrix into a Dense, bypassing the Set policy since
// the values come out of a successful factorization.
func fromGonum(g *mat.Dense) *Dense {
	rows, cols := g.Dims()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = g.At(i, j)
		}
	}

	return out
}
