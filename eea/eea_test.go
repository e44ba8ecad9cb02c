package eea_test

import (
	"math/rand"
	"time"

	"github.com/renproject/secp256k1"
	"github.com/renproject/upp/field"
	"github.com/renproject/upp/frac"
	"github.com/renproject/upp/poly"
	"github.com/renproject/upp/poly/polyutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/upp/eea"
)

type FnPoly = poly.Poly[secp256k1.Fn, field.Secp256k1]

var _ = Describe("Extended Euclidean Algorithm", func() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	invariant := func(a, b FnPoly, eea *Stepper[secp256k1.Fn, field.Secp256k1]) bool {
		rem := a.Karatsuba(eea.S()).Add(b.Karatsuba(eea.T()))
		return rem.Eq(eea.Rem())
	}

	Context("when running the extended euclidean algorithm", func() {
		Specify("in each step it should satisfy the invariant relation", func() {
			trials := 1000
			maxDegree := 20

			for i := 0; i < trials; i++ {
				degreeA := rng.Intn(maxDegree + 1)
				degreeB := rng.Intn(maxDegree + 1)
				a := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, degreeA)
				b := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, degreeB)
				eea := NewStepper(a, b)

				Expect(invariant(a, b, eea)).To(BeTrue())

				for {
					done, err := eea.Step()
					Expect(err).ToNot(HaveOccurred())
					Expect(invariant(a, b, eea)).To(BeTrue())
					if done {
						break
					}
				}
			}
		})

		It("should find a common factor", func() {
			trials := 100
			maxDegree := 10

			for i := 0; i < trials; i++ {
				g := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, rng.Intn(maxDegree)+1)
				u := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, rng.Intn(maxDegree+1))
				v := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, rng.Intn(maxDegree+1))
				a, b := g.Karatsuba(u), g.Karatsuba(v)

				gcd, err := NewStepper(a, b).Run()
				Expect(err).ToNot(HaveOccurred())

				// With overwhelming probability u and v are coprime, so the
				// result is g up to a scalar factor.
				Expect(gcd.Degree()).To(Equal(g.Degree()))
				_, r, err := poly.Divide(a, gcd)
				Expect(err).ToNot(HaveOccurred())
				Expect(r.IsZero()).To(BeTrue())
				_, r, err = poly.Divide(b, gcd)
				Expect(err).ToNot(HaveOccurred())
				Expect(r.IsZero()).To(BeTrue())
			}
		})

		It("should work over the rationals", func() {
			type Frac = frac.Fraction[int64]
			fromInts := func(cs ...int64) poly.Poly[Frac, frac.Ring[int64]] {
				fs := make([]Frac, len(cs))
				for i := range cs {
					fs[i] = frac.FromInt(cs[i])
				}
				return poly.New[Frac, frac.Ring[int64]](fs)
			}

			// (x - 1)(x + 2) and (x - 1)(x - 3)
			a := fromInts(-2, 1, 1)
			b := fromInts(3, -4, 1)

			gcd, err := NewStepper(a, b).Run()
			Expect(err).ToNot(HaveOccurred())
			Expect(gcd.Degree()).To(Equal(1))

			// The gcd is a scalar multiple of x - 1, so it vanishes at 1.
			Expect(gcd.Evaluate(frac.FromInt[int64](1)).IsZero()).To(BeTrue())
		})

		It("should return the first input when the second is zero", func() {
			a := polyutil.RandomPolynomial[secp256k1.Fn, field.Secp256k1](rng, 5)
			eea := NewStepper(a, poly.Zero[secp256k1.Fn, field.Secp256k1]())

			done, err := eea.Step()
			Expect(err).ToNot(HaveOccurred())
			Expect(done).To(BeTrue())
			Expect(eea.GCD().Eq(a)).To(BeTrue())
		})
	})
})
