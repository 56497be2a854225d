// SPDX-License-Identifier: MIT

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Returns (true, nil) if every element satisfies the relation, (false, nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are taken by magnitude.
//   - A NaN element never compares close.
//
// Complexity: Time O(r*c), Space O(1). Early exit on the first violation.
func AllClose(a, b Accessor, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range da.data {
			if !within(da.data[idx], db.data[idx], rtol, atol) {
				return false, nil
			}
		}

		return true, nil
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !within(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// within reports |a-b| <= atol + rtol*|b|; false when either side is NaN.
func within(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
