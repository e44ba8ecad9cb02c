package polyutil

import (
	"math/rand"

	"github.com/renproject/upp/poly"
)

// Ring is a coefficient ring that can also sample random elements.
type Ring[T any] interface {
	poly.Ring[T]
	poly.Sampler[T]
}

// RandomCoefficients returns n random coefficients sampled from the ring R.
func RandomCoefficients[T any, R Ring[T]](rng *rand.Rand, n int) []T {
	var r R
	coeffs := make([]T, n)
	for i := range coeffs {
		coeffs[i] = r.Random(rng)
	}
	return coeffs
}

// RandomPolynomial returns a random polynomial with the given degree.
// The leading coefficient is guaranteed to be non-zero.
func RandomPolynomial[T any, R Ring[T]](rng *rand.Rand, degree int) poly.Poly[T, R] {
	var r R
	coeffs := RandomCoefficients[T, R](rng, degree+1)

	// Ensure that the leading term is non-zero.
	for poly.IsZero[T, R](coeffs[degree]) {
		coeffs[degree] = r.Random(rng)
	}

	return poly.New[T, R](coeffs)
}

// WithLeadingZeros returns a copy of p extended with n zero coefficients at
// the high degree end.
func WithLeadingZeros[T any, R poly.Ring[T]](p poly.Poly[T, R], n int) poly.Poly[T, R] {
	var r R
	coeffs := p.Coefficients()
	for i := 0; i < n; i++ {
		coeffs = append(coeffs, r.Zero())
	}
	return poly.New[T, R](coeffs)
}
