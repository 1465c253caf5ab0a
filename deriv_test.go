package derivative

import "testing"

func TestDerivLeaves(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *node
	}{
		{"const", "5", &node{kind: nodeConst, value: 0}},
		{"const-frac", "2.75", &node{kind: nodeConst, value: 0}},
		{"var", "x", &node{kind: nodeConst, value: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d := e.Deriv()
			if g, w := d.n.diff(c.want); g != nil || w != nil {
				t.Errorf("deriv of %q is %v, want %v", c.src, d.n, c.want)
			}
		})
	}
}

func TestDerivRuleShapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind nodeKind
	}{
		// Linearity keeps the operator at the root.
		{"add", "x+1", nodeAdd},
		{"sub", "x-1", nodeSub},
		// Product rule roots at the sum of cross terms.
		{"mul", "x*sin(x)", nodeAdd},
		// Quotient rule roots at the division by g^2.
		{"div", "x/cos(x)", nodeDiv},
		// Generalized power rule roots at u^v times the bracket.
		{"pow", "x^3", nodeMul},
		// Chain rule roots at the product with the outer derivative.
		{"call", "sin(x)", nodeMul},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if d := e.Deriv(); d.n.kind != c.kind {
				t.Errorf("deriv of %q has root %v, want %v", c.src, d.n.kind, c.kind)
			}
		})
	}
}

// The generalized power rule applies even to constant integer exponents,
// so the derivative of x^3 routes through log(x).
func TestDerivPowUsesLog(t *testing.T) {
	e, err := Parse("x^3")
	if err != nil {
		t.Fatal(err)
	}
	d := e.Deriv()
	if !d.n.hascall("log") {
		t.Errorf("deriv of x^3 is %v, which has no log call", d.n)
	}
}

func TestDerivOuter(t *testing.T) {
	cases := []struct {
		name string
		src  string
		has  []string
	}{
		{"sin", "sin(x)", []string{"cos"}},
		{"cos", "cos(x)", []string{"sin"}},
		{"tan", "tan(x)", []string{"cos"}},
		{"cot", "cot(x)", []string{"sin"}},
		{"log", "log(x)", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d := e.Deriv()
			for _, fn := range c.has {
				if !d.n.hascall(fn) {
					t.Errorf("deriv of %q is %v, which has no %s call", c.src, d.n, fn)
				}
			}
		})
	}
}

// Differentiation must share unmodified sub-trees rather than copy them.
func TestDerivShares(t *testing.T) {
	e, err := Parse("sin(x)")
	if err != nil {
		t.Fatal(err)
	}
	d := e.Deriv()
	// deriv(sin(u)) = u' * cos(u), with u the original argument node.
	if d.n.kind != nodeMul || d.n.right.kind != nodeCall {
		t.Fatalf("unexpected derivative shape %v", d.n)
	}
	if d.n.right.left != e.n.left {
		t.Error("outer derivative copies the argument instead of sharing it")
	}
}

func TestDerivDoesNotMutate(t *testing.T) {
	e, err := Parse("x^2 * cos(x) + log(x)")
	if err != nil {
		t.Fatal(err)
	}
	before := e.String()
	e.Deriv().Deriv()
	if after := e.String(); after != before {
		t.Errorf("source tree changed:\n\tbefore %s\n\tafter  %s", before, after)
	}
}

func BenchmarkDeriv(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"poly", "x^2 + 3*x"},
		{"trig", "x^2 * cos(x) + log(x) * cos(x - 1)"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			e, err := Parse(c.src)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < b.N; i++ {
				e.Deriv()
			}
		})
	}
}
