package derivative

import "math/cmplx"

// Eval evaluates the expression at x. Evaluation never fails: division by
// zero and arguments outside a function's domain yield complex values with
// infinite or NaN components per IEEE complex arithmetic.
func (e *Expr) Eval(x complex128) complex128 {
	return e.n.eval(x)
}

// EvalString is a shortcut to parse a string expression and evaluate it at
// a single point.
func EvalString(src string, x complex128) (complex128, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(x), nil
}

// eval computes the node's value at x by recursive descent. Power takes
// the principal branch of u^v; its result inherits the branch cut of the
// complex logarithm along the negative real axis.
func (n *node) eval(x complex128) complex128 {
	switch n.kind {
	case nodeConst:
		return complex(n.value, 0)
	case nodeVar:
		return x
	case nodeAdd:
		return n.left.eval(x) + n.right.eval(x)
	case nodeSub:
		return n.left.eval(x) - n.right.eval(x)
	case nodeMul:
		return n.left.eval(x) * n.right.eval(x)
	case nodeDiv:
		return n.left.eval(x) / n.right.eval(x)
	case nodePow:
		return cmplx.Pow(n.left.eval(x), n.right.eval(x))
	case nodeCall:
		return n.fn.eval(n.left.eval(x))
	default:
		panic("derivative: invalid AST node " + n.kind.String())
	}
}
