package expr

import (
	"fmt"

	"github.com/katalvlaran/matexpr/matrix"
)

// Expr is a node of an immutable matrix-expression tree. The variant set is
// closed: *Leaf, *Product and *Sum are the only implementations (the sealed
// method prevents foreign ones), so type switches over Expr are exhaustive.
type Expr interface {
	// Rows returns the row count of the value this expression evaluates to.
	Rows() int

	// Cols returns the column count of the value this expression evaluates to.
	Cols() int

	// String returns a deterministic rendering of the tree, stable for
	// identical trees: leaves by label (or a [r×c] placeholder), composite
	// nodes as `(left * right)` / `(left + right)`.
	String() string

	// sealed restricts the variant set to this package.
	sealed()
}

// Leaf is a terminal node owning a concrete matrix and an optional display
// label. Its shape is the matrix's own shape.
type Leaf struct {
	m     matrix.Matrix
	label string
}

// Product is the multiplication node a×b with the invariant
// a.Cols == b.Rows; its shape is (a.Rows, b.Cols).
type Product struct {
	left, right Expr
	rows, cols  int
}

// Sum is the elementwise addition node a+b with the invariant that both
// operands share a shape; its shape is that shape.
type Sum struct {
	left, right Expr
	rows, cols  int
}

// NewLeaf wraps a concrete matrix as a terminal expression. The matrix is
// stored by reference (never cloned); the caller must not mutate it
// afterwards. label may be empty, in which case String renders a [r×c]
// placeholder. Returns ErrNilExpr for a nil matrix.
func NewLeaf(m matrix.Matrix, label string) (*Leaf, error) {
	if m == nil {
		return nil, fmt.Errorf("NewLeaf: %w", ErrNilExpr)
	}

	return &Leaf{m: m, label: label}, nil
}

// NewProduct builds the multiplication node a×b.
// Returns ErrNilExpr for nil operands and ErrShapeMismatch unless
// a.Cols == b.Rows. The error carries both shapes for diagnostics.
func NewProduct(a, b Expr) (*Product, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("NewProduct: %w", ErrNilExpr)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("NewProduct: %dx%d * %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}

	return &Product{left: a, right: b, rows: a.Rows(), cols: b.Cols()}, nil
}

// NewSum builds the elementwise addition node a+b.
// Returns ErrNilExpr for nil operands and ErrShapeMismatch unless the
// operand shapes are identical.
func NewSum(a, b Expr) (*Sum, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("NewSum: %w", ErrNilExpr)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, fmt.Errorf("NewSum: %dx%d + %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}

	return &Sum{left: a, right: b, rows: a.Rows(), cols: a.Cols()}, nil
}

// Rows returns the leaf matrix's row count.
func (l *Leaf) Rows() int { return l.m.Rows() }

// Cols returns the leaf matrix's column count.
func (l *Leaf) Cols() int { return l.m.Cols() }

// Matrix returns the wrapped matrix (shared reference, read-only by contract).
func (l *Leaf) Matrix() matrix.Matrix { return l.m }

// Label returns the optional display label ("" when unset).
func (l *Leaf) Label() string { return l.label }

// String renders the leaf by label, or as [r×c] when unlabeled.
func (l *Leaf) String() string {
	if l.label != "" {
		return l.label
	}

	return fmt.Sprintf("[%dx%d]", l.m.Rows(), l.m.Cols())
}

func (l *Leaf) sealed() {}

// Rows returns the product's row count (left operand's rows).
func (p *Product) Rows() int { return p.rows }

// Cols returns the product's column count (right operand's cols).
func (p *Product) Cols() int { return p.cols }

// Left returns the left sub-expression.
func (p *Product) Left() Expr { return p.left }

// Right returns the right sub-expression.
func (p *Product) Right() Expr { return p.right }

// String renders the product as `(left * right)`.
func (p *Product) String() string {
	return fmt.Sprintf("(%s * %s)", p.left, p.right)
}

func (p *Product) sealed() {}

// Rows returns the sum's row count.
func (s *Sum) Rows() int { return s.rows }

// Cols returns the sum's column count.
func (s *Sum) Cols() int { return s.cols }

// Left returns the left sub-expression.
func (s *Sum) Left() Expr { return s.left }

// Right returns the right sub-expression.
func (s *Sum) Right() Expr { return s.right }

// String renders the sum as `(left + right)`.
func (s *Sum) String() string {
	return fmt.Sprintf("(%s + %s)", s.left, s.right)
}

func (s *Sum) sealed() {}
