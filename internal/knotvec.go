package internal

import (
	"math"
)

// KnotVec is a flat, nondecreasing knot sequence with repeated values
// standing in for multiplicities.
type KnotVec []float64

func (this KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), this...)
}

// Bounds returns the first and last knot values.
func (this KnotVec) Bounds() (min, max float64) {
	return this[0], this[len(this)-1]
}

// Find the span on the knot vector without supplying n
//
// **params**
// + integer degree of function
// + float parameter
//
// **returns**
// + the index of the knot span
//
func (this KnotVec) Span(degree int, u float64) int {
	m := len(this) - 1
	n := m - degree - 1

	return this.SpanGivenN(n, degree, u)
}

// Find the span on the knot vector of the given parameter
// (corresponds to algorithm 2.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// A parameter equal to the last knot value resolves to the last non-empty
// span, so evaluation at the end of a clamped domain never indexes past the
// control points.
//
// **params**
// + integer number of basis functions - 1 = knots.length - degree - 2
// + integer degree of function
// + parameter
//
// **returns**
// + the index of the knot span
//
func (this KnotVec) SpanGivenN(n int, degree int, u float64) int {
	if u >= this[n+1] {
		return n
	}

	if u < this[degree] {
		return degree
	}

	low, high := degree, n+1
	mid := (low + high) / 2

	for u < this[mid] || u >= this[mid+1] {
		if u < this[mid] {
			high = mid
		} else {
			low = mid
		}

		mid = (low + high) / 2
	}

	return mid
}

// Multiplicities groups equal knot values into (value, multiplicity) pairs.
func (this KnotVec) Multiplicities() []KnotMultiplicity {
	mults := []KnotMultiplicity{{this[0], 0}}

	var currI int
	for _, knot := range this {
		if math.Abs(knot-mults[currI].Knot) > Epsilon {
			mults = append(mults, KnotMultiplicity{knot, 0})
			currI++
		}

		mults[currI].Mult++
	}

	return mults
}

// IsValid reports whether the vector is nondecreasing and clamped, beginning
// and ending with degree + 1 repeats.
func (this KnotVec) IsValid(degree int) bool {
	if len(this) == 0 {
		return false
	}

	if len(this) < (degree+1)*2 {
		return false
	}

	rep := this[0]

	for _, knot := range this[:degree+1] {
		if math.Abs(knot-rep) > Epsilon {
			return false
		}
	}

	rep = this[len(this)-1]

	for _, knot := range this[len(this)-degree-1:] {
		if math.Abs(knot-rep) > Epsilon {
			return false
		}
	}

	return this.IsNonDecreasing()
}

func (this KnotVec) IsNonDecreasing() bool {
	rep := this[0]
	for _, knot := range this[1:] {
		if knot < rep-Epsilon {
			return false
		}
		rep = knot
	}
	return true
}

// Reversed mirrors the knots about the middle of the domain, k -> min + max - k,
// so that it matches a curve traversed backwards over the same domain. The
// end values are kept exact.
func (this KnotVec) Reversed() KnotVec {
	min, max := this.Bounds()

	l := make(KnotVec, len(this))
	for i := range l {
		switch knot := this[len(this)-1-i]; knot {
		case max:
			l[i] = min
		case min:
			l[i] = max
		default:
			l[i] = min + max - knot
		}
	}

	return l
}

// Normalized maps the knots affinely onto [0, 1]. The end values are
// assigned directly so they carry no rounding error.
func (this KnotVec) Normalized() KnotVec {
	min, max := this.Bounds()
	span := max - min

	l := make(KnotVec, len(this))
	for i, knot := range this {
		switch {
		case math.Abs(knot-min) <= Epsilon:
			l[i] = 0
		case math.Abs(knot-max) <= Epsilon:
			l[i] = 1
		default:
			l[i] = (knot - min) / span
		}
	}

	return l
}

// Greville returns the Greville abscissae of the basis of the given degree,
// the averages of degree consecutive interior knots. They are the control
// coefficients that reproduce the identity function f(u) = u.
func (this KnotVec) Greville(degree int) []float64 {
	numBasis := len(this) - degree - 1
	abscissae := make([]float64, numBasis)
	if degree == 0 {
		for i := range abscissae {
			abscissae[i] = (this[i] + this[i+1]) / 2
		}
		return abscissae
	}

	for i := range abscissae {
		var sum float64
		for _, knot := range this[i+1 : i+degree+1] {
			sum += knot
		}
		abscissae[i] = sum / float64(degree)
	}

	return abscissae
}

type KnotMultiplicity struct {
	Knot float64
	Mult int
}
