package derivative

// Func is an evaluable function of one complex variable.
type Func func(complex128) complex128

// Differentiate parses an expression and returns the parsed function along
// with its first and second symbolic derivatives. The three functions each
// close over their own immutable tree; they may be called any number of
// times, in any order, and concurrently.
func Differentiate(src string) (f, f1, f2 Func, err error) {
	e, err := Parse(src)
	if err != nil {
		return nil, nil, nil, err
	}
	d := e.Deriv()
	dd := d.Deriv()
	return e.Eval, d.Eval, dd.Eval, nil
}
