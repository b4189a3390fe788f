package matrix

import "errors"

var (
	// ErrBadShape indicates that requested matrix dimensions are non-positive.
	ErrBadShape = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this rather than panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates that a [][]float64 input has rows of differing lengths.
	ErrRaggedRows = errors.New("matrix: all rows must have the same length")
)
