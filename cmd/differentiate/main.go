package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arzhanov/derivative"
)

// Version is the semantic version (set by build flags).
var Version = "0.1.0"

var echo bool

var rootCmd = &cobra.Command{
	Use:   `differentiate "expression" real [imag]`,
	Short: "Evaluate an expression and its first two derivatives at a complex point",
	Long: `Differentiate parses an arithmetic expression in the variable x, computes
its first and second symbolic derivatives, and evaluates all three at the
complex point real + imag*i. The imaginary part defaults to 0.

The expression grammar supports numeric constants, the variable x, the
operators + - * / ^, parentheses, and the functions sin, cos, tan, cot,
and log (natural logarithm), all over complex arithmetic.`,
	Example: `  differentiate "2 * x^3" 2 2
  differentiate "sin(x)" 0
  differentiate --echo "log(x)" 1`,
	Args:          cobra.RangeArgs(2, 3),
	RunE:          run,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().BoolVar(&echo, "echo", false, "print the three expression trees")
}

func run(cmd *cobra.Command, args []string) error {
	z, err := parsePoint(args[1:])
	if err != nil {
		return err
	}
	f, f1, f2, err := derivative.Differentiate(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Function: f(x) = %s\n", strings.TrimSpace(args[0]))
	fmt.Fprintf(out, "Point:    z    = %g\n", z)
	fmt.Fprintln(out, strings.Repeat("-", 36))
	if echo {
		e, err := derivative.Parse(args[0])
		if err != nil {
			return err
		}
		d := e.Deriv()
		fmt.Fprintf(out, "f      = %s\n", e)
		fmt.Fprintf(out, "f'     = %s\n", d)
		fmt.Fprintf(out, "f''    = %s\n", d.Deriv())
		fmt.Fprintln(out, strings.Repeat("-", 36))
	}
	fmt.Fprintf(out, "f(z)   = %g\n", f(z))
	fmt.Fprintf(out, "f'(z)  = %g\n", f1(z))
	fmt.Fprintf(out, "f''(z) = %g\n", f2(z))
	return nil
}

// parsePoint parses the real and optional imaginary arguments.
func parsePoint(args []string) (complex128, error) {
	re, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid real part %q", args[0])
	}
	var im float64
	if len(args) == 2 {
		im, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid imaginary part %q", args[1])
		}
	}
	return complex(re, im), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
