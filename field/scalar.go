package field

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand"
	"reflect"
	"unsafe"

	"filippo.io/edwards25519"
	"github.com/renproject/surge"
)

// Scalar is an element of the scalar field of the ed25519 curve, that is the
// integers modulo the prime group order l = 2^252 + 27742317777372353535851937790883648493.
// The zero value is the zero element.
type Scalar struct {
	inner edwards25519.Scalar
}

// ScalarSizeMarshalled is the number of bytes in a marshalled Scalar.
const ScalarSizeMarshalled = 32

// ScalarSize is the number of bytes needed to represent a Scalar in memory.
const ScalarSize int = int(unsafe.Sizeof(Scalar{}))

// NewScalarFromU64 returns the scalar equal to i.
func NewScalarFromU64(i uint64) Scalar {
	var s Scalar
	s.SetU64(i)
	return s
}

// SetU64 sets the scalar to be equal to i.
func (s *Scalar) SetU64(i uint64) {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:], i)
	if _, err := s.inner.SetCanonicalBytes(b[:]); err != nil {
		panic(fmt.Sprintf("cannot set uint64 value to ed25519 scalar: %v", err))
	}
}

// SetUniformBytes sets the scalar to the reduction of the 64 byte little
// endian integer in bs.
//
// Panics: This function will panic if bs does not have length 64.
func (s *Scalar) SetUniformBytes(bs []byte) {
	if _, err := s.inner.SetUniformBytes(bs); err != nil {
		panic(fmt.Sprintf("invalid slice length: length needs to be 64, got %v", len(bs)))
	}
}

// Eq returns true if the two scalars are equal.
func (s *Scalar) Eq(other *Scalar) bool {
	return s.inner.Equal(&other.inner) == 1
}

// IsZero returns true if the scalar is zero.
func (s *Scalar) IsZero() bool {
	var zero Scalar
	return s.Eq(&zero)
}

// Add sets s = a + b mod l.
func (s *Scalar) Add(a, b *Scalar) {
	s.inner.Add(&a.inner, &b.inner)
}

// Sub sets s = a - b mod l.
func (s *Scalar) Sub(a, b *Scalar) {
	s.inner.Subtract(&a.inner, &b.inner)
}

// Mul sets s = a * b mod l.
func (s *Scalar) Mul(a, b *Scalar) {
	s.inner.Multiply(&a.inner, &b.inner)
}

// Inverse sets s = a^-1 mod l, or zero if a is zero.
func (s *Scalar) Inverse(a *Scalar) {
	s.inner.Invert(&a.inner)
}

// Int returns the canonical integer representative of the scalar.
func (s Scalar) Int() *big.Int {
	le := s.inner.Bytes()
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	return new(big.Int).SetBytes(be)
}

// String implements the Stringer interface.
func (s Scalar) String() string {
	return s.Int().String()
}

// Generate implements the quick.Generator interface.
func (s Scalar) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Ed25519{}.Random(rand))
}

// SizeHint implements the surge.SizeHinter interface.
func (s Scalar) SizeHint() int { return ScalarSizeMarshalled }

// Marshal implements the surge.Marshaler interface.
func (s Scalar) Marshal(buf []byte, rem int) ([]byte, int, error) {
	if len(buf) < ScalarSizeMarshalled || rem < ScalarSizeMarshalled {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}

	copy(buf, s.inner.Bytes())

	return buf[ScalarSizeMarshalled:], rem - ScalarSizeMarshalled, nil
}

// Unmarshal implements the surge.Unmarshaler interface. The encoding must be
// the canonical little endian encoding of the scalar.
func (s *Scalar) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	if len(buf) < ScalarSizeMarshalled || rem < ScalarSize {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}

	if _, err := s.inner.SetCanonicalBytes(buf[:ScalarSizeMarshalled]); err != nil {
		return buf, rem, fmt.Errorf("unable to set canonical bytes for scalar: %v", err)
	}

	return buf[ScalarSizeMarshalled:], rem - ScalarSize, nil
}
