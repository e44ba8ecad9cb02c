package poly

import (
	"fmt"
	"strings"
)

// Poly represents a dense polynomial with coefficients of type T, whose
// arithmetic is supplied by the ring R. The zero value of R is used for all
// coefficient operations, so R should be a stateless type such as Int[int64].
//
// Coefficients are stored in ascending order of degree: the coefficient at
// index `i` is the coefficient of x^i, so the constant term is index 0. This
// convention is used for construction, arithmetic, evaluation and printing
// alike.
//
// A Poly always has at least one coefficient; the zero polynomial is the
// single coefficient 0. Construction does not remove leading zero
// coefficients (i.e. trailing zeros in the slice), but the results of Mul and
// Karatsuba never have any.
//
// Polynomials have value semantics: constructors copy their input and every
// operation returns a new polynomial, with the exception of ScalarMul which
// modifies the receiver in place.
type Poly[T any, R Ring[T]] struct {
	coeffs []T
}

// New constructs a polynomial from the given coefficients, in ascending order
// of degree. The slice is copied, so it is safe to modify after this call.
//
// Panics: This function will panic if the slice is empty.
func New[T any, R Ring[T]](coeffs []T) Poly[T, R] {
	if len(coeffs) == 0 {
		panic("cannot construct a polynomial with no coefficients")
	}
	cs := make([]T, len(coeffs))
	copy(cs, coeffs)
	return Poly[T, R]{coeffs: cs}
}

// Zero returns the zero polynomial.
func Zero[T any, R Ring[T]]() Poly[T, R] {
	var r R
	return Poly[T, R]{coeffs: []T{r.Zero()}}
}

// Constant returns the degree 0 polynomial with constant term c.
func Constant[T any, R Ring[T]](c T) Poly[T, R] {
	return Poly[T, R]{coeffs: []T{c}}
}

// String implements the Stringer interface. Terms are listed from the
// highest degree down, skipping zero coefficients, for example
// "3x^2 - 4x + 9".
func (p Poly[T, R]) String() string {
	var r R
	format := func(c T) string { return fmt.Sprintf("%v", c) }
	if f, ok := any(r).(Formatter[T]); ok {
		format = f.Format
	}

	var b strings.Builder
	for i := p.Degree(); i >= 0; i-- {
		if r.Eq(p.coeffs[i], r.Zero()) {
			continue
		}

		coeff := format(p.coeffs[i])
		neg := strings.HasPrefix(coeff, "-")
		if neg {
			coeff = coeff[1:]
		}
		switch {
		case b.Len() == 0 && neg:
			b.WriteString("-")
		case b.Len() > 0 && neg:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if coeff != "1" || i == 0 {
			b.WriteString(coeff)
		}

		switch i {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			fmt.Fprintf(&b, "x^%v", i)
		}
	}

	if b.Len() == 0 {
		return format(r.Zero())
	}
	return b.String()
}

// Degree returns the degree of the polynomial, which is one less than the
// number of coefficients. Leading zero coefficients are counted, so a
// polynomial that has not been trimmed may report a degree larger than that
// of its highest non-zero term.
func (p Poly[T, R]) Degree() int {
	return len(p.coeffs) - 1
}

// Size returns the number of coefficients of the polynomial.
func (p Poly[T, R]) Size() int {
	return len(p.coeffs)
}

// Coefficient returns the coefficient of x^i.
//
// NOTE: If `i` is greater than the degree of the polynomial, this function
// will panic.
func (p Poly[T, R]) Coefficient(i int) T {
	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficients of the polynomial in
// ascending order of degree.
func (p Poly[T, R]) Coefficients() []T {
	cs := make([]T, len(p.coeffs))
	copy(cs, p.coeffs)
	return cs
}

// LeadingCoefficient returns the coefficient of the highest degree term, that
// is the coefficient of x^Degree().
func (p Poly[T, R]) LeadingCoefficient() T {
	return p.coeffs[p.Degree()]
}

// IsZero returns true if every coefficient of the polynomial is zero.
func (p Poly[T, R]) IsZero() bool {
	for _, c := range p.coeffs {
		if !IsZero[T, R](c) {
			return false
		}
	}
	return true
}

// Eq returns true if the two polynomials are equal. Equality of polynomials
// is defined as all coefficients being equal, where missing coefficients are
// treated as zero; leading zero coefficients therefore do not affect the
// result.
func (p Poly[T, R]) Eq(other Poly[T, R]) bool {
	var r R
	zero := r.Zero()
	n := max(len(p.coeffs), len(other.coeffs))
	for i := 0; i < n; i++ {
		a, b := zero, zero
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(other.coeffs) {
			b = other.coeffs[i]
		}
		if !r.Eq(a, b) {
			return false
		}
	}
	return true
}

// Trim returns a copy of the polynomial with all leading zero coefficients
// removed, keeping at least the constant term.
func (p Poly[T, R]) Trim() Poly[T, R] {
	return Poly[T, R]{coeffs: trim[T, R](p.Coefficients())}
}

// trim reslices coeffs to drop leading zero coefficients, keeping at least
// one coefficient.
func trim[T any, R Ring[T]](coeffs []T) []T {
	n := len(coeffs)
	for n > 1 && IsZero[T, R](coeffs[n-1]) {
		n--
	}
	return coeffs[:n]
}

// ScalarMul multiplies every coefficient of the polynomial by a, in place.
// Unlike the other arithmetic operations, this modifies the receiver.
//
// NOTE: The result is not trimmed. Scaling by zero leaves a polynomial whose
// coefficients are all zero but whose degree is unchanged; call Trim to get
// the canonical zero polynomial.
func (p *Poly[T, R]) ScalarMul(a T) {
	var r R
	for i := range p.coeffs {
		p.coeffs[i] = r.Mul(p.coeffs[i], a)
	}
}

// Evaluate computes the value of the polynomial at the given point, as the
// sum of c_i * x^i over all coefficients, with x^0 = 1.
func (p Poly[T, R]) Evaluate(x T) T {
	var r R
	res := r.Zero()
	xi := r.One()
	for i, c := range p.coeffs {
		if i > 0 {
			xi = r.Mul(xi, x)
		}
		res = r.Add(res, r.Mul(c, xi))
	}
	return res
}

// Add returns the sum of the two polynomials. The result has as many
// coefficients as the longer operand; the missing coefficients of the shorter
// operand are treated as zero. Leading coefficients that cancel are kept.
func (p Poly[T, R]) Add(other Poly[T, R]) Poly[T, R] {
	var r R
	return Poly[T, R]{coeffs: combine(p.coeffs, other.coeffs, r.Zero(), r.Add)}
}

// Sub returns the difference of the two polynomials, with the same length
// rules as Add.
func (p Poly[T, R]) Sub(other Poly[T, R]) Poly[T, R] {
	var r R
	return Poly[T, R]{coeffs: combine(p.coeffs, other.coeffs, r.Zero(), r.Sub)}
}

// Neg returns the additive inverse of the polynomial.
func (p Poly[T, R]) Neg() Poly[T, R] {
	return Zero[T, R]().Sub(p)
}

// combine applies op coefficient-wise, reading missing coefficients of the
// shorter slice as zero.
func combine[T any](a, b []T, zero T, op func(T, T) T) []T {
	res := make([]T, max(len(a), len(b)))
	for i := range res {
		x, y := zero, zero
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		res[i] = op(x, y)
	}
	return res
}
