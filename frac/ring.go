package frac

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Ring implements the arithmetic of the field of rationals over T, so that
// fractions can be used as polynomial coefficients. It is stateless, and its
// zero value is ready to use.
type Ring[T constraints.Signed] struct{}

// Zero returns 0/1.
func (Ring[T]) Zero() Fraction[T] { return FromInt(T(0)) }

// One returns 1/1.
func (Ring[T]) One() Fraction[T] { return FromInt(T(1)) }

// Add returns a + b.
func (Ring[T]) Add(a, b Fraction[T]) Fraction[T] { return a.Add(b) }

// Sub returns a - b.
func (Ring[T]) Sub(a, b Fraction[T]) Fraction[T] { return a.Sub(b) }

// Mul returns a * b.
func (Ring[T]) Mul(a, b Fraction[T]) Fraction[T] { return a.Mul(b) }

// Eq returns true if a == b.
func (Ring[T]) Eq(a, b Fraction[T]) bool { return a.Eq(b) }

// Inverse returns 1/a, or ErrDivisionByZero if a is zero.
func (Ring[T]) Inverse(a Fraction[T]) (Fraction[T], error) { return a.Inverse() }

// Random returns a random fraction with numerator in [-10, 10] and
// denominator in [1, 10]. The denominators of sums of such fractions stay
// small, so polynomials built from them can be multiplied without
// overflowing int64.
func (Ring[T]) Random(r *rand.Rand) Fraction[T] {
	return random[T](r, 10)
}

// Format renders a fraction, dropping the denominator when it is 1.
func (Ring[T]) Format(a Fraction[T]) string {
	if a.Denominator() == 1 {
		return fmt.Sprintf("%d", a.num)
	}
	return a.String()
}

// random returns a fraction whose numerator lies in [-bound, bound] and whose
// denominator lies in [1, bound].
func random[T constraints.Signed](r *rand.Rand, bound int64) Fraction[T] {
	n := r.Int63n(2*bound+1) - bound
	d := r.Int63n(bound) + 1
	return normalize(T(n), T(d))
}
