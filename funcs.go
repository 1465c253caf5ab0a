package derivative

import "math/cmplx"

// function describes a recognized unary function: how to evaluate it at a
// complex argument and how to build the tree of its outer derivative. The
// chain rule multiplies the outer derivative by the argument's derivative.
type function struct {
	eval  func(complex128) complex128
	deriv func(arg *node) *node
}

// funcs is the table of recognized function names. The grammar admits no
// others, so the table is fixed. Populated in init because the derivative
// builders construct calls through the table itself.
var funcs map[string]*function

func init() {
	funcs = map[string]*function{
		"sin": {
			eval: cmplx.Sin,
			deriv: func(u *node) *node {
				return call("cos", u)
			},
		},
		"cos": {
			eval: cmplx.Cos,
			deriv: func(u *node) *node {
				return mul(num(-1), call("sin", u))
			},
		},
		"tan": {
			eval: cmplx.Tan,
			deriv: func(u *node) *node {
				return div(num(1), pow(call("cos", u), num(2)))
			},
		},
		"cot": {
			eval: func(z complex128) complex128 {
				return 1 / cmplx.Tan(z)
			},
			deriv: func(u *node) *node {
				return mul(num(-1), div(num(1), pow(call("sin", u), num(2))))
			},
		},
		"log": {
			eval: cmplx.Log,
			deriv: func(u *node) *node {
				return div(num(1), u)
			},
		},
	}
}
