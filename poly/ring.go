package poly

import (
	"errors"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Ring describes the arithmetic of a coefficient type T. Polynomials never
// inspect their coefficients directly; every operation on coefficients goes
// through a Ring. Implementations are expected to be stateless, so that the
// zero value of the implementing type can be used wherever a ring is needed.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Eq(a, b T) bool
}

// Field is a Ring in which every non-zero element has a multiplicative
// inverse. Inverse returns an error when given zero.
type Field[T any] interface {
	Ring[T]
	Inverse(a T) (T, error)
}

// Sampler is implemented by rings that can produce random elements. It is
// used to generate random polynomials.
type Sampler[T any] interface {
	Random(r *rand.Rand) T
}

// Formatter is implemented by rings that control how their elements are
// rendered when a polynomial is printed. Without it, coefficients are
// rendered with the %v verb.
type Formatter[T any] interface {
	Format(a T) string
}

// ErrNotInvertible is returned by fields when asked to invert zero.
var ErrNotInvertible = errors.New("element is not invertible")

// IsZero returns true if a is the additive identity of the ring R.
func IsZero[T any, R Ring[T]](a T) bool {
	var r R
	return r.Eq(a, r.Zero())
}

// Pow computes x^n in the ring R by repeated squaring, with x^0 = 1.
//
// Panics: This function will panic if n is negative.
func Pow[T any, R Ring[T]](x T, n int) T {
	if n < 0 {
		panic("negative exponent")
	}

	var r R
	res := r.One()
	for n > 0 {
		if n&1 == 1 {
			res = r.Mul(res, x)
		}
		x = r.Mul(x, x)
		n >>= 1
	}
	return res
}

// FromInt64 maps the integer n into the ring R, as n copies of One added
// together, using double and add.
func FromInt64[T any, R Ring[T]](n int64) T {
	var r R
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u
	}

	res, acc := r.Zero(), r.One()
	for u > 0 {
		if u&1 == 1 {
			res = r.Add(res, acc)
		}
		u >>= 1
		if u > 0 {
			acc = r.Add(acc, acc)
		}
	}
	if neg {
		res = r.Sub(r.Zero(), res)
	}
	return res
}

// Int is the ring of machine integers of type T. Arithmetic wraps on
// overflow, exactly as the underlying Go operators do; choosing a type wide
// enough for the products involved is up to the caller.
type Int[T constraints.Integer] struct{}

// Zero returns 0.
func (Int[T]) Zero() T { return 0 }

// One returns 1.
func (Int[T]) One() T { return 1 }

// Add returns a + b.
func (Int[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Int[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Int[T]) Mul(a, b T) T { return a * b }

// Eq returns true if a == b.
func (Int[T]) Eq(a, b T) bool { return a == b }

// Random returns a random integer in [-100, 100] (or [0, 100] for unsigned
// types), small enough that products of moderately sized polynomials do not
// overflow.
func (Int[T]) Random(r *rand.Rand) T {
	var zero T
	if zero-1 > zero {
		return T(r.Intn(101))
	}
	return T(r.Intn(201) - 100)
}
