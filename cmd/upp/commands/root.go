package commands

import (
	"github.com/spf13/cobra"

	"github.com/renproject/upp/poly"
)

var (
	threshold int
	parallel  int
)

// NewRootCommand builds the upp command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "upp",
		Short:        "Univariate polynomial and fraction arithmetic",
		SilenceUsage: true,
	}

	root.PersistentFlags().IntVar(&threshold, "threshold", poly.DefaultThreshold, "operand length below which Karatsuba uses classical multiplication")
	root.PersistentFlags().IntVar(&parallel, "parallel", 0, "operand length at or above which Karatsuba runs sub-products concurrently (0 disables)")

	root.AddCommand(mulCmd(), benchCmd(), fracCmd())
	return root
}

// Execute runs the upp CLI with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func options() poly.Options {
	return poly.Options{
		Threshold:         threshold,
		ParallelThreshold: parallel,
	}
}
