package derivative

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is the variable or a function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

var tokenNames = [...]string{"None", "EOF", "Num", "Ident", "Op", "Open", "Close"}

func (k tokenKind) String() string {
	if 0 <= int(k) && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// operators contains the runes which are considered to be operators.
const operators = "+-*/^"

// lexer scans tokens from an expression string. Positions are 1-based rune
// columns.
type lexer struct {
	src  string
	off  int
	rune int
	p    lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src, rune: 1}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("derivative: double push")
	}
	l.p = tok
}

// next scans the next token from the input. Whitespace between tokens is
// skipped. Once the input is exhausted, next returns EOF tokens forever.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if !unicode.IsSpace(r) {
			break
		}
		l.off += sz
		l.rune++
	}
	tok := lexToken{pos: l.rune}
	if l.off >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.off:])
	switch {
	case '0' <= r && r <= '9':
		tok.text = l.scanNum()
		tok.kind = tokenNum
	case unicode.IsLetter(r):
		tok.text = l.scanIdent()
		tok.kind = tokenIdent
	case strings.ContainsRune(operators, r):
		l.off += sz
		l.rune++
		tok.text = string(r)
		tok.kind = tokenOp
	case r == '(':
		l.off += sz
		l.rune++
		tok.text = "("
		tok.kind = tokenOpen
	case r == ')':
		l.off += sz
		l.rune++
		tok.text = ")"
		tok.kind = tokenClose
	default:
		l.off += sz
		l.rune++
		return tok, &LexError{Text: string(r), Col: tok.pos}
	}
	return tok, nil
}

// scanNum scans a maximal run of digits and decimal points. Runs with more
// than one point survive scanning; numeric conversion rejects them later.
func (l *lexer) scanNum() string {
	start := l.off
	for l.off < len(l.src) {
		c := l.src[l.off]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		l.off++
		l.rune++
	}
	return l.src[start:l.off]
}

// scanIdent scans a maximal run of letters.
func (l *lexer) scanIdent() string {
	start := l.off
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if !unicode.IsLetter(r) {
			break
		}
		l.off += sz
		l.rune++
	}
	return l.src[start:l.off]
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text of the invalid token.
	Text string
	// Kind is the type of token being scanned. This may be "number" or the
	// empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the rune column at which the token started.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
