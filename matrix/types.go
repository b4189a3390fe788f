package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// The interface is deliberately minimal: the expression packages only need
// shape queries, element access and deep copies. Kernels in this package
// accept any Matrix but detect *Dense operands for a flat fast path.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r·c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
