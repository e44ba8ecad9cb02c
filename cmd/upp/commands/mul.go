package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/renproject/secp256k1"
	"github.com/spf13/cobra"

	"github.com/renproject/upp/field"
	"github.com/renproject/upp/frac"
	"github.com/renproject/upp/poly"
)

func mulCmd() *cobra.Command {
	var (
		as, bs []string
		ring   string
	)

	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply two polynomials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(as) == 0 || len(bs) == 0 {
				return fmt.Errorf("both --a and --b need at least one coefficient")
			}

			out := cmd.OutOrStdout()
			opts := options()
			switch ring {
			case "int":
				return mulWith[int64, poly.Int[int64]](out, as, bs, parseInt64, opts)
			case "frac":
				return mulWith[frac.Fraction[int64], frac.Ring[int64]](out, as, bs, frac.Parse[int64], opts)
			case "secp256k1":
				return mulWith[secp256k1.Fn, field.Secp256k1](out, as, bs, parseVia[secp256k1.Fn, field.Secp256k1], opts)
			case "ed25519":
				return mulWith[field.Scalar, field.Ed25519](out, as, bs, parseVia[field.Scalar, field.Ed25519], opts)
			default:
				return fmt.Errorf("unknown ring %q: expected int, frac, secp256k1 or ed25519", ring)
			}
		},
	}

	cmd.Flags().StringSliceVar(&as, "a", nil, "coefficients of the first polynomial, lowest degree first")
	cmd.Flags().StringSliceVar(&bs, "b", nil, "coefficients of the second polynomial, lowest degree first")
	cmd.Flags().StringVar(&ring, "ring", "int", "coefficient ring: int, frac, secp256k1 or ed25519")
	return cmd
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseVia parses a decimal integer and maps it into the ring R.
func parseVia[T any, R poly.Ring[T]](s string) (T, error) {
	n, err := parseInt64(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return poly.FromInt64[T, R](n), nil
}

func parsePoly[T any, R poly.Ring[T]](strs []string, parse func(string) (T, error)) (poly.Poly[T, R], error) {
	coeffs := make([]T, len(strs))
	for i, s := range strs {
		c, err := parse(s)
		if err != nil {
			return poly.Poly[T, R]{}, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return poly.New[T, R](coeffs), nil
}

func mulWith[T any, R poly.Ring[T]](out io.Writer, as, bs []string, parse func(string) (T, error), opts poly.Options) error {
	a, err := parsePoly[T, R](as, parse)
	if err != nil {
		return fmt.Errorf("parsing a: %w", err)
	}
	b, err := parsePoly[T, R](bs, parse)
	if err != nil {
		return fmt.Errorf("parsing b: %w", err)
	}

	start := time.Now()
	classical := a.Mul(b)
	classicalTime := time.Since(start)

	start = time.Now()
	fast := a.KaratsubaWithOptions(b, opts)
	fastTime := time.Since(start)

	if !classical.Eq(fast) {
		return fmt.Errorf("classical and karatsuba products differ: %v != %v", classical, fast)
	}

	fmt.Fprintf(out, "a         = %v\n", a)
	fmt.Fprintf(out, "b         = %v\n", b)
	fmt.Fprintf(out, "classical = %v (%v)\n", classical, classicalTime)
	fmt.Fprintf(out, "karatsuba = %v (%v)\n", fast, fastTime)
	return nil
}
