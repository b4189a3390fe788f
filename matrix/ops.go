package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opMul = "Mul"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching the underlying sentinel.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the elementwise sum C = A + B into a fresh Dense result.
// Inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Fast path: both operands *Dense → a single flat 0..n-1 loop.
// Fallback: generic At/Set with fixed i→j order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped, match via errors.Is).
// Complexity: O(r·c) time, O(r·c) space.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, opErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, opErrorf(opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, opErrorf(opAdd, err)
			}
		}
	}

	return res, nil
}

// Mul performs standard dense matrix multiplication C = A × B (no aliasing).
// A must be r×n and B n×c; the result is a fresh r×c Dense.
//
// Fast path: both operands *Dense → i→k→j loops over the flat backing
// slices with zero-skip on A[i,k]. Fallback: generic At with fixed i→j→k
// order. Both orders are fixed, so results are reproducible bit-for-bit.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped, match via errors.Is).
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Fast path for two Dense matrices: row-major i→k→j accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var av float64
			var rowA, rowB, rowR int
			for i := 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k := 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowB = k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	var av, bv, acc float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			acc = 0
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, opErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, opErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, opErrorf(opMul, err)
			}
		}
	}

	return res, nil
}
