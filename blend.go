package nurbs

import (
	"fmt"

	. "github.com/alexozer/nurbs/internal"
)

// FillStyle selects how FillSurface spreads the boundary curves into the
// interior of the patch. Every style reproduces the boundaries exactly.
type FillStyle int

const (
	// CoonsStyle is the bilinearly blended Coons patch: the two ruled
	// surfaces between opposite boundaries minus the bilinear corner surface.
	CoonsStyle FillStyle = iota

	// StretchStyle fades the boundary deviations quadratically, so the
	// interior stays closer to the bilinear surface through the corners and
	// comes out flatter than CoonsStyle.
	StretchStyle

	// CurvedStyle blends with cubic Hermite functions whose slope vanishes at
	// both ends, giving a smoother, fuller interior.
	CurvedStyle
)

func (this FillStyle) String() string {
	switch this {
	case CoonsStyle:
		return "coons"
	case StretchStyle:
		return "stretch"
	case CurvedStyle:
		return "curved"
	}

	return fmt.Sprintf("FillStyle(%d)", int(this))
}

// ParseFillStyle maps the names returned by String back to styles.
func ParseFillStyle(name string) (FillStyle, error) {
	for _, style := range []FillStyle{CoonsStyle, StretchStyle, CurvedStyle} {
		if style.String() == name {
			return style, nil
		}
	}

	return 0, fmt.Errorf("nurbs: unknown fill style %q", name)
}

// blends returns the pair of blending functions of the style. phi0 is 1 at
// s = 0 and 0 at s = 1, phi1 the other way round.
func (this FillStyle) blends() (phi0, phi1 polynomial, ok bool) {
	switch this {
	case CoonsStyle:
		return polynomial{1, -1}, polynomial{0, 1}, true
	case StretchStyle:
		return polynomial{1, -2, 1}, polynomial{0, 0, 1}, true
	case CurvedStyle:
		return polynomial{1, 0, -3, 2}, polynomial{0, 0, 3, -2}, true
	}

	return nil, nil, false
}

// polynomial holds monomial coefficients, constant term first.
type polynomial []float64

func (this polynomial) degree() int {
	return len(this) - 1
}

func (this polynomial) value(s float64) float64 {
	var sum float64
	for k := len(this) - 1; k >= 0; k-- {
		sum = sum*s + this[k]
	}

	return sum
}

// bsplineCoefficients returns the coefficients c_i with
// p(s) = sum_i c_i N_i,degree(s) over knots, degree >= p.degree().
//
// Each c_i is the blossom of p evaluated at the knots t_(i+1) .. t_(i+degree).
// The blossom of s^k in degree variables is e_k / C(degree, k), e_k being the
// k-th elementary symmetric polynomial of its arguments.
func (this polynomial) bsplineCoefficients(degree int, knots KnotVec) []float64 {
	coefficients := make([]float64, len(knots)-degree-1)
	sym := make([]float64, degree+1)
	choose := pascalRow(degree)

	for i := range coefficients {
		elementarySymmetric(sym, knots[i+1:i+degree+1])

		var c float64
		for k, a := range this {
			c += a * sym[k] / choose[k]
		}
		coefficients[i] = c
	}

	return coefficients
}

// elementarySymmetric fills e with the elementary symmetric polynomials
// e_0 .. e_len(xs) of xs.
func elementarySymmetric(e []float64, xs []float64) {
	for k := range e {
		e[k] = 0
	}
	e[0] = 1

	for n, x := range xs {
		for k := n + 1; k >= 1; k-- {
			e[k] += x * e[k-1]
		}
	}
}

// pascalRow returns the binomial coefficients C(n, 0) .. C(n, n).
func pascalRow(n int) []float64 {
	row := make([]float64, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		for k := i; k > 0; k-- {
			row[k] += row[k-1]
		}
	}

	return row
}
