package expr

import "errors"

var (
	// ErrShapeMismatch indicates that a Product or Sum constructor was given
	// operands whose shapes violate the node's invariant.
	ErrShapeMismatch = errors.New("expr: operand shapes are incompatible")

	// ErrNilExpr indicates that a nil expression (or nil leaf matrix) was
	// passed where a value is required.
	ErrNilExpr = errors.New("expr: nil expression")

	// ErrUnsupportedConstruct indicates an Expr implementation outside the
	// closed {Leaf, Product, Sum} set. Consumers return it from the default
	// arm of their type switches; it signals a programming error, not bad
	// numeric input.
	ErrUnsupportedConstruct = errors.New("expr: unsupported expression construct")
)
