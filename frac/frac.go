package frac

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned whenever an operation would produce a
// fraction with a zero denominator: constructing one directly, dividing by a
// zero fraction, or inverting a zero fraction.
var ErrDivisionByZero = errors.New("division by zero")

// Fraction represents an exact rational number over the signed integer type
// T. A Fraction is always stored in lowest terms, with a strictly positive
// denominator and the sign carried by the numerator. The zero value is the
// fraction 0/1 and is ready to use.
//
// Fractions are values: every arithmetic method returns a new Fraction and
// leaves both operands unchanged. The only methods that modify the receiver
// are the *Assign methods, which replace its whole value.
//
// Overflow of T during arithmetic is not detected. Callers that need larger
// intermediate values should pick a wider T.
type Fraction[T constraints.Signed] struct {
	num T
	// denm1 is the denominator minus one, so that the zero value is 0/1 and
	// every value has a single representation.
	denm1 T
}

// reduced builds a fraction from a numerator and denominator that are
// already in lowest terms with d > 0.
func reduced[T constraints.Signed](n, d T) Fraction[T] {
	return Fraction[T]{num: n, denm1: d - 1}
}

// FromInt constructs the fraction n/1.
func FromInt[T constraints.Signed](n T) Fraction[T] {
	return reduced(n, T(1))
}

// New constructs the fraction n/d reduced to lowest terms. The sign of the
// result is the exclusive or of the signs of n and d. If d is zero,
// ErrDivisionByZero is returned.
func New[T constraints.Signed](n, d T) (Fraction[T], error) {
	if d == 0 {
		return Fraction[T]{}, fmt.Errorf("cannot construct %v/%v: %w", n, d, ErrDivisionByZero)
	}
	return normalize(n, d), nil
}

// MustNew is like New, but panics instead of returning an error.
//
// Panics: This function will panic if d is zero.
func MustNew[T constraints.Signed](n, d T) Fraction[T] {
	f, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return f
}

// normalize reduces n/d to lowest terms and moves the sign to the numerator.
// The caller guarantees that d is non-zero.
func normalize[T constraints.Signed](n, d T) Fraction[T] {
	neg := (n < 0) != (d < 0)
	if n < 0 {
		n = -n
	}
	if d < 0 {
		d = -d
	}

	g := gcd(n, d)
	n, d = n/g, d/g
	if neg {
		n = -n
	}
	return reduced(n, d)
}

// gcd returns the greatest common divisor of two non-negative integers, with
// gcd(0, d) = d.
func gcd[T constraints.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of two positive integers.
func lcm[T constraints.Signed](a, b T) T {
	return a / gcd(a, b) * b
}

// Numerator returns the numerator of the fraction in lowest terms.
func (f Fraction[T]) Numerator() T {
	return f.num
}

// Denominator returns the (strictly positive) denominator of the fraction in
// lowest terms.
func (f Fraction[T]) Denominator() T {
	return f.denm1 + 1
}

// IsZero returns true if the fraction is equal to zero.
func (f Fraction[T]) IsZero() bool {
	return f.num == 0
}

// Sign returns -1, 0 or +1 depending on whether the fraction is negative,
// zero or positive.
func (f Fraction[T]) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// Eq returns true if the two fractions are equal. Since fractions are always
// in lowest terms, this is the case exactly when the numerators and the
// denominators are pairwise equal.
func (f Fraction[T]) Eq(other Fraction[T]) bool {
	return f == other
}

// Cmp compares the two fractions and returns -1 if f < other, 0 if they are
// equal and +1 if f > other.
func (f Fraction[T]) Cmp(other Fraction[T]) int {
	lhs, rhs, _ := commonDenominator(f, other)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Less returns true if f < other.
func (f Fraction[T]) Less(other Fraction[T]) bool { return f.Cmp(other) < 0 }

// Greater returns true if f > other.
func (f Fraction[T]) Greater(other Fraction[T]) bool { return f.Cmp(other) > 0 }

// LessEq returns true if f <= other.
func (f Fraction[T]) LessEq(other Fraction[T]) bool { return f.Less(other) || f.Eq(other) }

// GreaterEq returns true if f >= other.
func (f Fraction[T]) GreaterEq(other Fraction[T]) bool { return f.Greater(other) || f.Eq(other) }

// commonDenominator rewrites both fractions over the least common multiple
// of their denominators and returns the two scaled numerators together with
// that multiple.
func commonDenominator[T constraints.Signed](a, b Fraction[T]) (T, T, T) {
	ad, bd := a.Denominator(), b.Denominator()
	d := lcm(ad, bd)
	return a.num * (d / ad), b.num * (d / bd), d
}

// Add returns f + other.
func (f Fraction[T]) Add(other Fraction[T]) Fraction[T] {
	lhs, rhs, d := commonDenominator(f, other)
	return normalize(lhs+rhs, d)
}

// Sub returns f - other.
func (f Fraction[T]) Sub(other Fraction[T]) Fraction[T] {
	lhs, rhs, d := commonDenominator(f, other)
	return normalize(lhs-rhs, d)
}

// Mul returns f * other.
func (f Fraction[T]) Mul(other Fraction[T]) Fraction[T] {
	return normalize(f.num*other.num, f.Denominator()*other.Denominator())
}

// Div returns f / other. If other is zero, ErrDivisionByZero is returned.
func (f Fraction[T]) Div(other Fraction[T]) (Fraction[T], error) {
	if other.num == 0 {
		return Fraction[T]{}, fmt.Errorf("cannot divide %v by %v: %w", f, other, ErrDivisionByZero)
	}
	return normalize(f.num*other.Denominator(), f.Denominator()*other.num), nil
}

// Neg returns -f.
func (f Fraction[T]) Neg() Fraction[T] {
	return reduced(-f.num, f.Denominator())
}

// Abs returns |f|. The denominator is unchanged.
func (f Fraction[T]) Abs() Fraction[T] {
	if f.num < 0 {
		return f.Neg()
	}
	return reduced(f.num, f.Denominator())
}

// Inverse returns 1/f. If f is zero, ErrDivisionByZero is returned.
func (f Fraction[T]) Inverse() (Fraction[T], error) {
	if f.num == 0 {
		return Fraction[T]{}, fmt.Errorf("cannot invert %v: %w", f, ErrDivisionByZero)
	}
	return normalize(f.Denominator(), f.num), nil
}

// Pow returns f raised to the power p. The numerator and denominator are
// each raised to p independently using exact exponentiation by squaring, so
// the result is exact as long as it fits in T.
//
// Panics: This function will panic if p is negative.
func (f Fraction[T]) Pow(p T) Fraction[T] {
	if p < 0 {
		panic(fmt.Sprintf("invalid exponent: expected a non-negative exponent, got %v", p))
	}
	return reduced(ipow(f.num, p), ipow(f.Denominator(), p))
}

func ipow[T constraints.Signed](base, exp T) T {
	res := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}
	return res
}

// AddAssign sets f to f + other.
func (f *Fraction[T]) AddAssign(other Fraction[T]) {
	*f = f.Add(other)
}

// SubAssign sets f to f - other.
func (f *Fraction[T]) SubAssign(other Fraction[T]) {
	*f = f.Sub(other)
}

// MulAssign sets f to f * other.
func (f *Fraction[T]) MulAssign(other Fraction[T]) {
	*f = f.Mul(other)
}

// DivAssign sets f to f / other. If other is zero, f is left unchanged and
// ErrDivisionByZero is returned.
func (f *Fraction[T]) DivAssign(other Fraction[T]) error {
	q, err := f.Div(other)
	if err != nil {
		return err
	}
	*f = q
	return nil
}

// String implements the Stringer interface. Fractions are rendered as
// "numerator/denominator", including when the denominator is 1.
func (f Fraction[T]) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.Denominator())
}
