package derivative

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Nodes are
// never modified after construction, so a derivative tree may point at
// sub-trees of the tree it was derived from.
type node struct {
	kind nodeKind

	// value is the magnitude of a nodeConst.
	value float64
	// name and fn identify the function of a nodeCall.
	name string
	fn   *function

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // complex(value, 0)
	nodeVar   // the free variable x

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // left raised to right, principal branch

	nodeCall // apply fn to left
)

var kindNames = [...]string{"None", "Const", "Var", "Add", "Sub", "Mul", "Div", "Pow", "Call"}

func (k nodeKind) String() string {
	if 0 <= int(k) && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// Constructors used by the parser and the differentiator.

func num(v float64) *node {
	return &node{kind: nodeConst, value: v}
}

func add(l, r *node) *node {
	return &node{kind: nodeAdd, left: l, right: r}
}

func sub(l, r *node) *node {
	return &node{kind: nodeSub, left: l, right: r}
}

func mul(l, r *node) *node {
	return &node{kind: nodeMul, left: l, right: r}
}

func div(l, r *node) *node {
	return &node{kind: nodeDiv, left: l, right: r}
}

func pow(base, exp *node) *node {
	return &node{kind: nodePow, left: base, right: exp}
}

// call builds a function application. The name must be in the function
// table; the differentiator only ever builds calls to known functions.
func call(name string, arg *node) *node {
	fn := funcs[name]
	if fn == nil {
		panic("derivative: call to unknown function " + strconv.Quote(name))
	}
	return &node{kind: nodeCall, name: name, fn: fn, left: arg}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the tree. Trees built by
// the parser render to strings that reparse to equal trees; derivative
// trees may contain negative constants, which the grammar cannot express.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(strconv.FormatFloat(n.value, 'g', -1, 64))
	case nodeVar:
		b.WriteByte('x')
	case nodeAdd:
		n.fmtBinary(b, " + ")
	case nodeSub:
		n.fmtBinary(b, " - ")
	case nodeMul:
		n.fmtBinary(b, " * ")
	case nodeDiv:
		n.fmtBinary(b, " / ")
	case nodePow:
		n.fmtBinary(b, "^")
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	default:
		panic("derivative: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtBinary(b *strings.Builder, op string) {
	b.WriteByte('(')
	n.left.fmt(b)
	b.WriteString(op)
	n.right.fmt(b)
	b.WriteByte(')')
}
