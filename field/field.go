// Package field provides prime field coefficient rings for polynomials. Every
// type in this package implements poly.Field, poly.Sampler and
// poly.Formatter, and is stateless so that its zero value can be used as the
// ring type parameter of poly.Poly.
package field

import (
	"fmt"
	"math/rand"

	"github.com/renproject/secp256k1"
	"github.com/renproject/upp/poly"
)

// Secp256k1 is the field of integers modulo the order of the secp256k1
// group, with elements represented by secp256k1.Fn.
type Secp256k1 struct{}

// Zero returns 0.
func (Secp256k1) Zero() secp256k1.Fn { return secp256k1.Fn{} }

// One returns 1.
func (Secp256k1) One() secp256k1.Fn {
	var one secp256k1.Fn
	one.SetU16(1)
	return one
}

// Add returns a + b.
func (Secp256k1) Add(a, b secp256k1.Fn) secp256k1.Fn {
	var c secp256k1.Fn
	c.Add(&a, &b)
	return c
}

// Sub returns a - b.
func (Secp256k1) Sub(a, b secp256k1.Fn) secp256k1.Fn {
	var c secp256k1.Fn
	c.Negate(&b)
	c.Add(&a, &c)
	return c
}

// Mul returns a * b.
func (Secp256k1) Mul(a, b secp256k1.Fn) secp256k1.Fn {
	var c secp256k1.Fn
	c.Mul(&a, &b)
	return c
}

// Eq returns true if a == b.
func (Secp256k1) Eq(a, b secp256k1.Fn) bool { return a.Eq(&b) }

// Inverse returns a^-1, or poly.ErrNotInvertible if a is zero.
func (Secp256k1) Inverse(a secp256k1.Fn) (secp256k1.Fn, error) {
	if a.IsZero() {
		return secp256k1.Fn{}, fmt.Errorf("secp256k1: %w", poly.ErrNotInvertible)
	}
	var c secp256k1.Fn
	c.Inverse(&a)
	return c, nil
}

// Random returns a uniformly random field element.
func (Secp256k1) Random(r *rand.Rand) secp256k1.Fn {
	var bs [32]byte
	var c secp256k1.Fn
	// Rejection sampling keeps the distribution uniform.
	for {
		r.Read(bs[:])
		if !c.SetB32(bs[:]) {
			return c
		}
	}
}

// Format renders the canonical integer representative of a.
func (Secp256k1) Format(a secp256k1.Fn) string { return a.Int().String() }

// NewFn returns the secp256k1.Fn equal to the given small integer, with
// negative values mapped to their additive inverse.
func NewFn(i int16) secp256k1.Fn {
	var c secp256k1.Fn
	if i < 0 {
		c.SetU16(uint16(-int32(i)))
		c.Negate(&c)
		return c
	}
	c.SetU16(uint16(i))
	return c
}

// Ed25519 is the scalar field of the ed25519 curve, with elements
// represented by Scalar.
type Ed25519 struct{}

// Zero returns 0.
func (Ed25519) Zero() Scalar { return Scalar{} }

// One returns 1.
func (Ed25519) One() Scalar { return NewScalarFromU64(1) }

// Add returns a + b.
func (Ed25519) Add(a, b Scalar) Scalar {
	var c Scalar
	c.Add(&a, &b)
	return c
}

// Sub returns a - b.
func (Ed25519) Sub(a, b Scalar) Scalar {
	var c Scalar
	c.Sub(&a, &b)
	return c
}

// Mul returns a * b.
func (Ed25519) Mul(a, b Scalar) Scalar {
	var c Scalar
	c.Mul(&a, &b)
	return c
}

// Eq returns true if a == b.
func (Ed25519) Eq(a, b Scalar) bool { return a.Eq(&b) }

// Inverse returns a^-1, or poly.ErrNotInvertible if a is zero.
func (Ed25519) Inverse(a Scalar) (Scalar, error) {
	if a.IsZero() {
		return Scalar{}, fmt.Errorf("ed25519: %w", poly.ErrNotInvertible)
	}
	var c Scalar
	c.Inverse(&a)
	return c, nil
}

// Random returns a uniformly random scalar.
func (Ed25519) Random(r *rand.Rand) Scalar {
	var bs [64]byte
	var c Scalar
	r.Read(bs[:])
	c.SetUniformBytes(bs[:])
	return c
}

// Format renders the canonical integer representative of a.
func (Ed25519) Format(a Scalar) string { return a.String() }
