// SPDX-License-Identifier: MIT

// Package matrix: storage-facing interfaces.
// Accessor is the 2-D read/write surface every kernel, solver and row writer is
// written against once; Matrix adds ownership (Clone). Both are satisfied by
// *Dense, and Accessor also by the no-copy *MatrixView window.
package matrix

// Accessor is a bounds-checked two-dimensional array of float64 values.
//
// Row writers (e.g. the spline fit-matrix helpers) only need an Accessor, so a
// caller can hand them either a whole *Dense or a *MatrixView block of a larger
// system without copying.
//
// Complexity notes: all methods are expected O(1).
type Accessor interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf under the numeric policy.
	Set(i, j int, v float64) error
}

// Matrix is an Accessor that owns its storage and can be deep-copied.
type Matrix interface {
	Accessor

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
