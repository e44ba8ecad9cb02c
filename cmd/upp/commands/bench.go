package commands

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/renproject/secp256k1"
	"github.com/spf13/cobra"

	"github.com/renproject/upp/field"
	"github.com/renproject/upp/poly/polyutil"
)

func benchCmd() *cobra.Command {
	var (
		degree  int
		trials  int
		seed    int64
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time classical and Karatsuba multiplication of random polynomials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if degree < 0 {
				return fmt.Errorf("degree must be non-negative, got %d", degree)
			}
			if trials < 1 {
				return fmt.Errorf("trials must be positive, got %d", trials)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			rng := rand.New(rand.NewSource(seed))
			opts := options()
			out := cmd.OutOrStdout()

			var classicalTotal, fastTotal time.Duration
			for i := 0; i < trials; i++ {
				a := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, degree)
				b := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, degree)

				start := time.Now()
				classical := a.Mul(b)
				classicalTotal += time.Since(start)

				start = time.Now()
				fast, err := a.KaratsubaContext(ctx, b, opts)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				fastTotal += time.Since(start)

				if !classical.Eq(fast) {
					return fmt.Errorf("trial %d: classical and karatsuba products differ", i)
				}
			}

			n := time.Duration(trials)
			fmt.Fprintf(out, "degree %d, %d trials, seed %d\n", degree, trials, seed)
			fmt.Fprintf(out, "classical: %v per product\n", classicalTotal/n)
			fmt.Fprintf(out, "karatsuba: %v per product\n", fastTotal/n)
			return nil
		},
	}

	cmd.Flags().IntVar(&degree, "degree", 1023, "degree of the random operands")
	cmd.Flags().IntVar(&trials, "trials", 5, "number of products to time")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort Karatsuba multiplication after this long (0 disables)")
	return cmd
}
