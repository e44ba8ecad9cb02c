package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renproject/upp/frac"
)

type fraction = frac.Fraction[int64]

func fracCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "frac [--] <a> <op> <b>",
		Short:   "Evaluate a fraction expression; op is one of + - * / pow",
		Long:    "Evaluate a fraction expression; op is one of + - * / pow.\n\nOperands that start with a minus sign must follow --, otherwise they are read as flags.",
		Example: "  upp frac 1/2 + 1/3\n  upp frac -- -3/4 pow -2",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := evalFrac(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	return cmd
}

func evalFrac(lhs, op, rhs string) (fraction, error) {
	a, err := frac.Parse[int64](lhs)
	if err != nil {
		return fraction{}, err
	}

	if op == "pow" {
		p, err := parseInt64(rhs)
		if err != nil {
			return fraction{}, fmt.Errorf("invalid exponent %q: %w", rhs, err)
		}
		if p < 0 {
			if a, err = a.Inverse(); err != nil {
				return fraction{}, err
			}
			p = -p
		}
		return a.Pow(p), nil
	}

	b, err := frac.Parse[int64](rhs)
	if err != nil {
		return fraction{}, err
	}

	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*", "x":
		return a.Mul(b), nil
	case "/":
		return a.Div(b)
	default:
		return fraction{}, fmt.Errorf("unknown operator %q", op)
	}
}
