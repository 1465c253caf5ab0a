package derivative

import "strconv"

// BracketError is an error indicating an unclosed parenthesis. It
// implements InputError.
type BracketError struct {
	// Col is the position at which the close parenthesis was expected.
	Col int
	// Token is the token found instead of the close parenthesis, or the
	// empty string at end of input.
	Token string
}

func (err *BracketError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "missing closing )")
	}
	return errpos(err.Col, "missing closing ) before "+strconv.Quote(err.Token))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier that is neither the
// variable x nor a recognized function name. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that an operand was expected
// but none was found. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression at end of input")
	}
	return errpos(err.Col, "no expression before "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first trailing token.
	Col int
	// Token is the first trailing token.
	Token string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingError)(nil)
)
