package frac

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/renproject/surge"
)

// SizeHintFraction is the number of bytes needed to marshal a fraction,
// independent of T: the numerator and denominator are both encoded as
// 64-bit integers.
const SizeHintFraction = 2 * surge.SizeHintI64

// Generate implements the quick.Generator interface.
func (f Fraction[T]) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(random[T](r, 100))
}

// SizeHint implements the surge.SizeHinter interface.
func (f Fraction[T]) SizeHint() int { return SizeHintFraction }

// Marshal implements the surge.Marshaler interface.
func (f Fraction[T]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalI64(int64(f.num), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return surge.MarshalI64(int64(f.Denominator()), buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface. The encoded
// denominator must be positive and both components must fit in T; the
// result is reduced to lowest terms.
func (f *Fraction[T]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var n, d int64
	buf, rem, err := surge.UnmarshalI64(&n, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.UnmarshalI64(&d, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if d == 0 {
		return buf, rem, fmt.Errorf("invalid denominator: %w", ErrDivisionByZero)
	}
	if d < 0 {
		return buf, rem, fmt.Errorf("invalid denominator: expected a positive value, got %v", d)
	}
	if int64(T(n)) != n || int64(T(d)) != d {
		return buf, rem, fmt.Errorf("fraction %v/%v overflows %T", n, d, f.num)
	}
	*f = normalize(T(n), T(d))
	return buf, rem, nil
}
