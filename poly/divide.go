package poly

import (
	"errors"
	"fmt"
)

// ErrZeroDivisor is returned when dividing by the zero polynomial.
var ErrZeroDivisor = errors.New("division by the zero polynomial")

// Divide computes the division of `a` by `b` over the field F, returning the
// quotient `q` and the remainder `r`. That is, the polynomials satisfy
// `a = bq + r` where either `r` is zero or `deg(r) < deg(b)`, with degrees
// taken after trimming. Neither input is modified.
//
// If `b` is the zero polynomial, ErrZeroDivisor is returned.
func Divide[T any, F Field[T]](a, b Poly[T, F]) (Poly[T, F], Poly[T, F], error) {
	var f F

	b = b.Trim()
	if b.IsZero() {
		return Poly[T, F]{}, Poly[T, F]{}, ErrZeroDivisor
	}

	r := a.Trim()
	d := b.Degree()

	// Short circuit when the division is trivial
	if r.Degree() < d {
		return Zero[T, F](), r, nil
	}

	cInv, err := f.Inverse(b.LeadingCoefficient())
	if err != nil {
		return Poly[T, F]{}, Poly[T, F]{}, fmt.Errorf("inverting leading coefficient: %w", err)
	}

	q := make([]T, r.Degree()-d+1)
	for i := range q {
		q[i] = f.Zero()
	}

	for r.Degree() >= d && !r.IsZero() {
		s := f.Mul(cInv, r.LeadingCoefficient())

		// q = q + sx^(deg(r) - d)
		diff := r.Degree() - d
		q[diff] = s

		// r = r - b sx^(deg(r) - d)
		for i, c := range b.coeffs {
			r.coeffs[diff+i] = f.Sub(r.coeffs[diff+i], f.Mul(s, c))
		}
		if len(r.coeffs) == 1 {
			// The constant term has just been cancelled
			break
		}
		r.coeffs = trim[T, F](r.coeffs[:len(r.coeffs)-1])
	}

	return Poly[T, F]{coeffs: q}, r, nil
}
