package eval

import "errors"

// ErrShapeDrift indicates that an evaluated sub-expression produced a matrix
// whose shape disagrees with the shape its node declared at construction
// time. Construction-time checks make this unreachable for trees built
// through the expr constructors; seeing it means a defect in the rewrite or
// evaluation machinery, not malformed caller input.
var ErrShapeDrift = errors.New("eval: realized shape disagrees with declared shape")
