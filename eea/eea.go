package eea

import (
	"github.com/renproject/upp/poly"
)

// Stepper encapsulates the functionality of the Extended Euclidean Algorithm
// for polynomials over the field F. It holds the internal state of the
// algorithm, and allows it to be stepped, and hence allows this state to be
// inspected at points in the algorithm before the canonical termination
// condition.
//
// At every point the state satisfies `s*a + t*b = r`, where a and b are the
// inputs given to Init and r, s and t are the current values returned by
// Rem, S and T.
type Stepper[T any, F poly.Field[T]] struct {
	rPrev, rNext poly.Poly[T, F]
	sPrev, sNext poly.Poly[T, F]
	tPrev, tNext poly.Poly[T, F]
}

// NewStepper constructs a new EEA stepper initialised for the given input
// polynomials. No steps in the algorithm are performed.
func NewStepper[T any, F poly.Field[T]](a, b poly.Poly[T, F]) *Stepper[T, F] {
	eea := &Stepper[T, F]{}
	eea.Init(a, b)
	return eea
}

// Rem returns the current remainder term for the EEA.
func (eea *Stepper[T, F]) Rem() poly.Poly[T, F] {
	return eea.rNext
}

// S returns the current s term for the EEA.
func (eea *Stepper[T, F]) S() poly.Poly[T, F] {
	return eea.sNext
}

// T returns the current t term for the EEA.
func (eea *Stepper[T, F]) T() poly.Poly[T, F] {
	return eea.tNext
}

// GCD returns the last non-zero remainder, which after termination is a
// greatest common divisor of the inputs.
func (eea *Stepper[T, F]) GCD() poly.Poly[T, F] {
	if eea.rNext.IsZero() {
		return eea.rPrev
	}
	return eea.rNext
}

// Init performs the initialisation of the state for the EEA for the given
// input polynomials. No steps in the algorithm are performed.
func (eea *Stepper[T, F]) Init(a, b poly.Poly[T, F]) {
	var f F

	// r0 = a, r1 = b,
	eea.rPrev, eea.rNext = a.Trim(), b.Trim()
	// s0 = 1, s1 = 0,
	eea.sPrev, eea.sNext = poly.Constant[T, F](f.One()), poly.Zero[T, F]()
	// t0 = 0, t1 = 1
	eea.tPrev, eea.tNext = poly.Zero[T, F](), poly.Constant[T, F](f.One())
}

// Step carries out one step of the EEA. It returns true when the state has
// reached the canonical termination condition (r_{k+1} = 0). Stepping a
// terminated state is a no-op that returns true.
func (eea *Stepper[T, F]) Step() (bool, error) {
	if eea.rNext.IsZero() {
		return true, nil
	}

	q, r, err := poly.Divide(eea.rPrev, eea.rNext)
	if err != nil {
		return false, err
	}

	eea.rPrev, eea.rNext = eea.rNext, r

	// sNext, sPrev = sPrev - q * sNext, sNext
	eea.sPrev, eea.sNext = eea.sNext, eea.sPrev.Sub(q.Karatsuba(eea.sNext)).Trim()

	// tNext, tPrev = tPrev - q * tNext, tNext
	eea.tPrev, eea.tNext = eea.tNext, eea.tPrev.Sub(q.Karatsuba(eea.tNext)).Trim()

	return eea.rNext.IsZero(), nil
}

// Run steps the algorithm until termination and returns the greatest common
// divisor of the inputs.
func (eea *Stepper[T, F]) Run() (poly.Poly[T, F], error) {
	for {
		done, err := eea.Step()
		if err != nil {
			return poly.Poly[T, F]{}, err
		}
		if done {
			return eea.GCD(), nil
		}
	}
}
