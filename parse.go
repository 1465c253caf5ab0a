package derivative

import "strconv"

// expression ::= term (('+' | '-') term)*
// term       ::= factor (('*' | '/') factor)*
// factor     ::= basic ('^' factor)?
// func_call  ::= func_name '(' expression ')'
// basic      ::= constant | variable | func_call | '(' expression ')'
// constant   ::= digit+ ('.' digit+)?
// variable   ::= 'x'
// func_name  ::= "sin" | "cos" | "tan" | "cot" | "log"

// Expr is a parsed expression in the variable x. An Expr is immutable and
// is safe to evaluate concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression. The entire input must form one expression;
// leftover input is a TrailingError. Every error Parse returns implements
// InputError.
func Parse(src string) (*Expr, error) {
	p := parser{scan: lex(src)}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, &TrailingError{Col: tok.pos, Token: tok.text}
	}
	return &Expr{n: n}, nil
}

// String creates a fully parenthesized string representation of the parsed
// expression.
func (e *Expr) String() string {
	return e.n.String()
}

type parser struct {
	scan *lexer
}

// expression parses a sequence of terms joined by + or -, left-associative.
func (p *parser) expression() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		if tok.text == "+" {
			n = add(n, rhs)
		} else {
			n = sub(n, rhs)
		}
	}
}

// term parses a sequence of factors joined by * or /, left-associative.
func (p *parser) term() (*node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		if tok.text == "*" {
			n = mul(n, rhs)
		} else {
			n = div(n, rhs)
		}
	}
}

// factor parses a basic optionally raised to a factor. Exponentiation is
// right-associative, so the exponent recurses into factor rather than
// looping: 2^3^2 parses as 2^(3^2).
func (p *parser) factor() (*node, error) {
	n, err := p.basic()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOp || tok.text != "^" {
		p.scan.push(tok)
		return n, nil
	}
	exp, err := p.factor()
	if err != nil {
		return nil, err
	}
	return pow(n, exp), nil
}

// basic parses a constant, the variable, a function call, or a
// parenthesized expression.
func (p *parser) basic() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return num(v), nil
	case tokenIdent:
		if tok.text == "x" {
			return &node{kind: nodeVar}, nil
		}
		fn := funcs[tok.text]
		if fn == nil {
			return nil, &NameError{Col: tok.pos, Name: tok.text}
		}
		open, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if open.kind != tokenOpen {
			// A function name without an argument list is just as unknown
			// as an arbitrary identifier.
			return nil, &NameError{Col: tok.pos, Name: tok.text}
		}
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.close(); err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.text, fn: fn, left: arg}, nil
	case tokenOpen:
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.close(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
}

// close consumes the ) ending a function call or parenthesized expression.
func (p *parser) close() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	if tok.kind != tokenClose {
		return &BracketError{Col: tok.pos, Token: tok.text}
	}
	return nil
}
