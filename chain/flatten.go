package chain

import (
	"fmt"

	"github.com/katalvlaran/matexpr/expr"
)

// Flatten returns the ordered operand sequence of the maximal contiguous
// multiplicative run rooted at e. It descends into children only while they
// are themselves Product nodes; any other child — a Leaf or a whole Sum
// sub-tree — is kept as a single opaque operand.
//
// The input is not mutated. The result always has length ≥ 2: a Product
// whose both children are non-products yields exactly its two operands.
//
// Errors: ErrNilExpr for a nil input, ErrMalformedChain when e is not a
// Product node.
// Complexity: O(n) for a run of n operands.
func Flatten(e expr.Expr) ([]expr.Expr, error) {
	if e == nil {
		return nil, fmt.Errorf("Flatten: %w", expr.ErrNilExpr)
	}
	p, ok := e.(*expr.Product)
	if !ok {
		return nil, fmt.Errorf("Flatten: %T is not a product: %w", e, ErrMalformedChain)
	}

	ops := appendRun(nil, p.Left())

	return appendRun(ops, p.Right()), nil
}

// appendRun walks e in left-to-right order, splicing nested products into
// ops and appending anything else as an opaque operand.
func appendRun(ops []expr.Expr, e expr.Expr) []expr.Expr {
	if p, ok := e.(*expr.Product); ok {
		ops = appendRun(ops, p.Left())

		return appendRun(ops, p.Right())
	}

	return append(ops, e)
}

// Dims derives the boundary dimension sequence p[0..n] for a chain of n
// operands, where operand i (1-indexed) has shape (p[i-1], p[i]).
//
// Adjacent compatibility is re-checked defensively: operand sequences
// produced by Flatten always pass, because every adjacent pair came from a
// shape-checked Product node.
//
// Errors: ErrMalformedChain for fewer than two operands, ErrNilExpr for a
// nil operand, ErrBadBoundary when adjacent shapes do not line up.
// Complexity: O(n).
func Dims(ops []expr.Expr) ([]int, error) {
	if len(ops) < 2 {
		return nil, fmt.Errorf("Dims: %d operands: %w", len(ops), ErrMalformedChain)
	}
	for i, op := range ops {
		if op == nil {
			return nil, fmt.Errorf("Dims: operand %d: %w", i+1, expr.ErrNilExpr)
		}
	}

	dims := make([]int, 0, len(ops)+1)
	dims = append(dims, ops[0].Rows())
	for i, op := range ops {
		if op.Rows() != dims[i] {
			return nil, fmt.Errorf("Dims: operand %d rows %d != previous cols %d: %w",
				i+1, op.Rows(), dims[i], ErrBadBoundary)
		}
		dims = append(dims, op.Cols())
	}

	return dims, nil
}
