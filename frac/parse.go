package frac

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Parse parses a fraction written as "n" or "n/d", where n and d are decimal
// integers that fit in T. The result is reduced to lowest terms.
func Parse[T constraints.Signed](s string) (Fraction[T], error) {
	numStr, denStr, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	n, err := parseInt[T](numStr)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("invalid numerator in %q: %w", s, err)
	}
	if !hasDen {
		return FromInt(n), nil
	}
	d, err := parseInt[T](denStr)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("invalid denominator in %q: %w", s, err)
	}
	return New(n, d)
}

func parseInt[T constraints.Signed](s string) (T, error) {
	var zero T
	x, err := strconv.ParseInt(strings.TrimSpace(s), 10, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return zero, err
	}
	return T(x), nil
}
