package poly

import (
	"errors"
	"math/rand"
	"reflect"
	"unsafe"

	"github.com/renproject/surge"
)

// ErrEmptyPolynomial is returned when unmarshalling a polynomial with no
// coefficients.
var ErrEmptyPolynomial = errors.New("polynomial has no coefficients")

// Generate implements the quick.Generator interface. The ring R must
// implement Sampler[T].
func (p Poly[T, R]) Generate(rng *rand.Rand, size int) reflect.Value {
	var r R
	sampler, ok := any(r).(Sampler[T])
	if !ok {
		panic("ring cannot sample random elements")
	}
	coeffs := make([]T, rng.Intn(size+1)+1)
	for i := range coeffs {
		coeffs[i] = sampler.Random(rng)
	}
	return reflect.ValueOf(Poly[T, R]{coeffs: coeffs})
}

// SizeHint implements the surge.SizeHinter interface.
func (p Poly[T, R]) SizeHint() int {
	size := surge.SizeHintU32
	for _, c := range p.coeffs {
		size += surge.SizeHint(c)
	}
	return size
}

// Marshal implements the surge.Marshaler interface.
func (p Poly[T, R]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU32(uint32(len(p.coeffs)), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	for _, c := range p.coeffs {
		buf, rem, err = surge.Marshal(c, buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface.
func (p *Poly[T, R]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var zero T
	var l uint32
	buf, rem, err := surge.UnmarshalU32(&l, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if l == 0 {
		return buf, rem, ErrEmptyPolynomial
	}

	// Each coefficient takes at least one byte, and the allocation must fit
	// in the remaining memory quota.
	elemSize := int(unsafe.Sizeof(zero))
	if int(l) > len(buf) || elemSize == 0 || int(l) > rem/elemSize {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}
	rem -= int(l) * elemSize

	coeffs := make([]T, l)
	for i := range coeffs {
		buf, rem, err = surge.Unmarshal(&coeffs[i], buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	p.coeffs = coeffs
	return buf, rem, nil
}
