package poly

import (
	"errors"
	"fmt"
)

// ErrDuplicateIndex is returned when constructing an interpolator from a set
// of indices that contains the same index more than once.
var ErrDuplicateIndex = errors.New("duplicate interpolation index")

// Interpolator can perform polynomial interpolation over the field F. That
// is, the act of taking a set of points on a polynomial and finding a
// polynomial that passes through all of those points. This is encapsulated in
// an object because when interpolating multiple sets of points, all of which
// have the same set of corresponding x coordinates, each interpolation can
// use the same setup.
type Interpolator[T any, F Field[T]] struct {
	basis []Poly[T, F]
}

// NewInterpolator constructs a new polynomial interpolator for the given set
// of indices. The indices represent the x coordinates of the points that will
// be interpolated. That is, if the set of indices is `{x0, x1, ..., xn}`, then
// the constructed interpolator will be able to interpolate any set of points
// of the form `{(x0, y0), (x1, y1), ..., (xn, yn)}` for any `y0, y1, ..., yn`.
//
// If two of the indices are equal, ErrDuplicateIndex is returned.
func NewInterpolator[T any, F Field[T]](indices []T) (Interpolator[T, F], error) {
	var f F

	// One Lagrange basis polynomial for each index, each of degree equal to
	// the number of indices minus one
	basis := make([]Poly[T, F], len(indices))
	for i := range basis {
		basis[i] = Constant[T, F](f.One())

		for j := range indices {
			if i == j {
				continue
			}

			// Denominator xi - xj
			denominator := f.Sub(indices[i], indices[j])
			if IsZero[T, F](denominator) {
				return Interpolator[T, F]{}, fmt.Errorf("indices %v and %v: %w", i, j, ErrDuplicateIndex)
			}
			inv, err := f.Inverse(denominator)
			if err != nil {
				return Interpolator[T, F]{}, err
			}

			// (x - xj)/(xi - xj)
			numerator := New[T, F]([]T{f.Sub(f.Zero(), indices[j]), f.One()})
			numerator.ScalarMul(inv)

			basis[i] = basis[i].Karatsuba(numerator)
		}
	}

	return Interpolator[T, F]{basis}, nil
}

// Interpolate takes a set of values representing polynomial evaluations, and
// returns a polynomial that interpolates these values. It is assumed that the
// values are in corresponding order to the indices that were used to
// construct the interpolator. That is, if the interpolator was constructed
// using the set of indices `{x0, x1, ..., xn}`, then calling this function
// with the values `{y0, y1, ..., yn}` will find the interpolating polynomial
// for the set of points `{(x0, y0), (x1, y1), ..., (xn, yn)}`.
//
// Panics: This function will panic if there are fewer values than indices.
func (interp Interpolator[T, F]) Interpolate(values []T) Poly[T, F] {
	// Polynomial is a linear combination of the Lagrange basis
	res := Zero[T, F]()
	for i, b := range interp.basis {
		term := New[T, F](b.coeffs)
		term.ScalarMul(values[i])
		res = res.Add(term)
	}
	return res.Trim()
}
