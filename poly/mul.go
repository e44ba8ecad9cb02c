package poly

// Convolve computes the coefficients of the product of the polynomials with
// coefficients a and b using the classical O(len(a)*len(b)) algorithm. The
// result has length len(a) + len(b) - 1 and is not trimmed.
//
// NOTE: This function will panic if either slice is empty.
func Convolve[T any, R Ring[T]](a, b []T) []T {
	dst := make([]T, len(a)+len(b)-1)
	convolve[T, R](dst, a, b)
	return dst
}

// convolve writes the product of a and b into dst[:len(a)+len(b)-1]. The rest
// of dst is left untouched.
func convolve[T any, R Ring[T]](dst, a, b []T) {
	var r R
	n := len(a) + len(b) - 1
	zero := r.Zero()
	for k := 0; k < n; k++ {
		dst[k] = zero
	}
	for i := range a {
		for j := range b {
			dst[i+j] = r.Add(dst[i+j], r.Mul(a[i], b[j]))
		}
	}
}

// Mul returns the product of the two polynomials computed by classical
// convolution. The result is trimmed, so the product of any polynomial with
// the zero polynomial is the single coefficient 0.
func (p Poly[T, R]) Mul(other Poly[T, R]) Poly[T, R] {
	return Poly[T, R]{coeffs: trim[T, R](Convolve[T, R](p.coeffs, other.coeffs))}
}
