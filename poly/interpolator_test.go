package poly_test

import (
	"errors"

	"github.com/renproject/secp256k1"
	"github.com/renproject/upp/field"
	"github.com/renproject/upp/frac"
	"github.com/renproject/upp/poly/polyutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/upp/poly"
)

var _ = Describe("Polynomial interpolation", func() {
	Context("when interpolating polynomials", func() {
		It("should compute the correct interpolating polynomial", func() {
			trials := 100
			const maxPoints int = 15

			fn := field.Secp256k1{}

			for i := 0; i < trials; i++ {
				numPoints := rng.Intn(maxPoints) + 1
				degree := rng.Intn(numPoints)

				indices := make([]secp256k1.Fn, numPoints)
				for j := range indices {
					indices[j] = fn.Random(rng)
				}
				interpolator, err := NewInterpolator[secp256k1.Fn, field.Secp256k1](indices)
				Expect(err).ToNot(HaveOccurred())

				// Generate random polynomial and associated values
				poly := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, degree)
				values := make([]secp256k1.Fn, numPoints)
				for j, index := range indices {
					values[j] = poly.Evaluate(index)
				}

				interpPoly := interpolator.Interpolate(values)
				Expect(interpPoly.Eq(poly)).To(BeTrue())
			}
		})

		It("should interpolate over the rationals", func() {
			// Points on x^2 + 1 at x = -1, 0, 1/2
			indices := []Frac{frac.FromInt[int64](-1), frac.FromInt[int64](0), frac.MustNew[int64](1, 2)}
			values := []Frac{frac.FromInt[int64](2), frac.FromInt[int64](1), frac.MustNew[int64](5, 4)}

			interpolator, err := NewInterpolator[Frac, frac.Ring[int64]](indices)
			Expect(err).ToNot(HaveOccurred())

			expected := New[Frac, frac.Ring[int64]]([]Frac{frac.FromInt[int64](1), {}, frac.FromInt[int64](1)})
			Expect(interpolator.Interpolate(values).Eq(expected)).To(BeTrue())
		})

		It("should return an error for duplicate indices", func() {
			indices := []int64{1, 2, 1}
			fracs := make([]Frac, len(indices))
			for i := range indices {
				fracs[i] = frac.FromInt(indices[i])
			}

			_, err := NewInterpolator[Frac, frac.Ring[int64]](fracs)
			Expect(errors.Is(err, ErrDuplicateIndex)).To(BeTrue())
		})
	})
})
