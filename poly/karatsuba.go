package poly

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultThreshold is the operand length below which Karatsuba
// multiplication falls back to classical convolution.
const DefaultThreshold = 4

// Options tunes Karatsuba multiplication.
type Options struct {
	// Threshold is the operand length below which sub-products are computed
	// by classical convolution. Values less than 2 recurse all the way down
	// to single coefficients.
	Threshold int

	// ParallelThreshold is the operand length at or above which the three
	// sub-products are computed on separate goroutines. Zero disables
	// parallelism.
	ParallelThreshold int
}

// DefaultOptions are the options used by Karatsuba.
var DefaultOptions = Options{
	Threshold:         DefaultThreshold,
	ParallelThreshold: 0,
}

// Karatsuba returns the product of the two polynomials computed with the
// Karatsuba algorithm using DefaultOptions. The result is equal to, and has
// the same length as, the result of Mul.
func (p Poly[T, R]) Karatsuba(other Poly[T, R]) Poly[T, R] {
	return p.KaratsubaWithOptions(other, DefaultOptions)
}

// KaratsubaWithOptions is like Karatsuba but with the given options.
//
// Both operands are padded with zero coefficients at the high degree end to
// the smallest power of two n that is at least as large as either of them.
// The product of the padded operands has 2n coefficients and is trimmed
// before being returned.
func (p Poly[T, R]) KaratsubaWithOptions(other Poly[T, R], opts Options) Poly[T, R] {
	// Without a deadline or cancellation the multiplication cannot fail.
	res, _ := p.KaratsubaContext(context.Background(), other, opts)
	return res
}

// KaratsubaContext is like KaratsubaWithOptions, but stops early and returns
// the context's error once ctx is done. The context is checked at every
// level of the recursion above the classical threshold.
func (p Poly[T, R]) KaratsubaContext(ctx context.Context, other Poly[T, R], opts Options) (Poly[T, R], error) {
	n := 1
	for n < len(p.coeffs) || n < len(other.coeffs) {
		n <<= 1
	}

	a, b := pad[T, R](p.coeffs, n), pad[T, R](other.coeffs, n)
	out := make([]T, 2*n)
	k := karatsuba[T, R]{ctx: ctx, threshold: opts.Threshold, parallel: opts.ParallelThreshold}
	if err := k.mul(out, a, b, make([]T, scratchLen(n))); err != nil {
		return Poly[T, R]{}, err
	}

	return Poly[T, R]{coeffs: trim[T, R](out)}, nil
}

// pad returns a copy of coeffs extended with zeros to length n.
func pad[T any, R Ring[T]](coeffs []T, n int) []T {
	var r R
	res := make([]T, n)
	copy(res, coeffs)
	for i := len(coeffs); i < n; i++ {
		res[i] = r.Zero()
	}
	return res
}

// scratchLen is the size of the scratch buffer needed to multiply operands
// of length n. Each level of the recursion uses 2n elements for the sums of
// the halves and the middle product, and passes the rest down.
func scratchLen(n int) int {
	return 4 * n
}

type karatsuba[T any, R Ring[T]] struct {
	ctx       context.Context
	threshold int
	parallel  int
}

// mul writes the product of a and b into out, using scratch for
// intermediate values. The operands must have the same length n, which is
// a power of two, out must have length 2n and scratch must have length at
// least scratchLen(n). The operands are never modified, and out and scratch
// must not overlap each other or the operands.
func (k *karatsuba[T, R]) mul(out, a, b, scratch []T) error {
	var r R
	n := len(a)

	if n == 1 || n < k.threshold {
		convolve[T, R](out, a, b)
		out[2*n-1] = r.Zero()
		return nil
	}
	if err := k.ctx.Err(); err != nil {
		return err
	}

	m := n / 2
	aSum, bSum := scratch[:m], scratch[m:n]
	mid, rest := scratch[n:2*n], scratch[2*n:]
	lo, hi := out[:n], out[n:]

	for i := 0; i < m; i++ {
		aSum[i] = r.Add(a[i], a[m+i])
		bSum[i] = r.Add(b[i], b[m+i])
	}

	// The low and high products land directly in their final positions. Only
	// the middle product needs to be combined afterwards.
	if k.parallel > 0 && n >= k.parallel {
		// A failing branch cancels its siblings through the group context.
		g, ctx := errgroup.WithContext(k.ctx)
		sub := &karatsuba[T, R]{ctx: ctx, threshold: k.threshold, parallel: k.parallel}
		g.Go(func() error {
			return sub.mul(lo, a[:m], b[:m], make([]T, scratchLen(m)))
		})
		g.Go(func() error {
			return sub.mul(hi, a[m:], b[m:], make([]T, scratchLen(m)))
		})
		g.Go(func() error {
			return sub.mul(mid, aSum, bSum, rest)
		})
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		if err := k.mul(lo, a[:m], b[:m], rest); err != nil {
			return err
		}
		if err := k.mul(hi, a[m:], b[m:], rest); err != nil {
			return err
		}
		if err := k.mul(mid, aSum, bSum, rest); err != nil {
			return err
		}
	}

	// (aLo + aHi)(bLo + bHi) - aLo*bLo - aHi*bHi = aLo*bHi + aHi*bLo
	for i := range mid {
		mid[i] = r.Sub(r.Sub(mid[i], lo[i]), hi[i])
	}
	for i := range mid {
		out[m+i] = r.Add(out[m+i], mid[i])
	}
	return nil
}
