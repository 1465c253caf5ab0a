// Package derivative parses arithmetic expressions in one variable and
// computes their first and second symbolic derivatives over the complex
// numbers.
//
// An expression like "2 * x^3" is parsed into an immutable tree, and each
// derivative is a new tree produced by algebraic rewriting: linearity for
// sums, the product and quotient rules, the chain rule for sin, cos, tan,
// cot, and log, and the generalized power rule for exponentiation.
// Derivative trees are not simplified, so they grow with each
// differentiation, but they share unmodified sub-trees of their source.
//
// Evaluation uses complex128 throughout with the principal branches of the
// complex logarithm and power. Division by zero and arguments on a branch
// cut produce IEEE infinities and NaNs rather than errors. Note that the
// generalized power rule routes every exponentiation's derivative through
// log of the base, even for constant integer exponents such as x^3, so
// derivative values inherit the branch cut of log along the negative real
// axis where the elementary power rule would not.
package derivative
