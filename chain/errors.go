package chain

import "errors"

var (
	// ErrMalformedChain indicates a chain invariant violation: flattening a
	// non-product node, or rebuilding with an operand count that does not
	// match the plan. Unreachable from valid trees; signals a programming
	// error rather than a recoverable condition.
	ErrMalformedChain = errors.New("chain: malformed multiplicative chain")

	// ErrBadBoundary indicates a malformed boundary dimension sequence:
	// fewer than two entries, a non-positive dimension, or adjacent operands
	// whose shapes do not line up.
	ErrBadBoundary = errors.New("chain: malformed boundary dimension sequence")

	// ErrTableRange indicates a cost/split table lookup outside 1 ≤ i ≤ j ≤ n.
	ErrTableRange = errors.New("chain: table index out of range")
)
