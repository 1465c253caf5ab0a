package derivative

// Deriv returns the symbolic derivative of the expression with respect to
// x. The receiver is not modified; the derivative tree shares unmodified
// sub-trees with it. No simplification is performed, so repeated
// differentiation grows the tree.
func (e *Expr) Deriv() *Expr {
	return &Expr{n: e.n.deriv()}
}

// deriv builds a new tree for the node's derivative, one calculus rule per
// node kind.
//
// Exponentiation uses the generalized power rule
//
//	d(u^v) = u^v * (v'*log(u) + v*(u'/u))
//
// uniformly, with no special case for constant exponents. For a base
// crossing the negative real axis or equal to zero this introduces the
// branch-cut behavior of log where the elementary power rule would have
// none; that matches the system this package reimplements and is kept
// deliberately.
func (n *node) deriv() *node {
	switch n.kind {
	case nodeConst:
		return num(0)
	case nodeVar:
		return num(1)
	case nodeAdd:
		// (f + g)' = f' + g'
		return add(n.left.deriv(), n.right.deriv())
	case nodeSub:
		// (f - g)' = f' - g'
		return sub(n.left.deriv(), n.right.deriv())
	case nodeMul:
		// (f * g)' = f'*g + f*g'
		return add(mul(n.left.deriv(), n.right), mul(n.left, n.right.deriv()))
	case nodeDiv:
		// (f / g)' = (f'*g - f*g') / g^2
		return div(
			sub(mul(n.left.deriv(), n.right), mul(n.left, n.right.deriv())),
			pow(n.right, num(2)),
		)
	case nodePow:
		u, v := n.left, n.right
		return mul(
			pow(u, v),
			add(mul(v.deriv(), call("log", u)), mul(v, div(u.deriv(), u))),
		)
	case nodeCall:
		// (f∘g)' = g' * f'(g)
		return mul(n.left.deriv(), n.fn.deriv(n.left))
	default:
		panic("derivative: invalid AST node " + n.kind.String())
	}
}
