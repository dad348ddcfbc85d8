package nurbs

import (
	"fmt"
	"math"

	. "github.com/alexozer/nurbs/internal"
)

// Knot is a distinct knot value and the number of times it repeats.
type Knot struct {
	Value float64
	Mult  int
}

// KnotVector is a sequence of strictly increasing knot values with their
// multiplicities.
type KnotVector []Knot

// ClampedKnotVector builds the clamped knot vector of a B-spline with
// numControlPoints control points and the given degree.
//
// The vector has numControlPoints - degree + 1 distinct values spread evenly
// over [0, 1]. The two end values repeat degree + 1 times and the interior
// values once, so the spline passes through its first and last control
// points. With numControlPoints == degree + 1 this is the Bezier knot vector.
func ClampedKnotVector(numControlPoints, degree int) (KnotVector, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: degree %d is negative", ErrInvalidDegree, degree)
	}
	if numControlPoints < degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs at least %d control points, got %d",
			ErrInvalidDegree, degree, degree+1, numControlPoints)
	}

	last := numControlPoints - degree
	knots := make(KnotVector, last+1)

	for i := range knots {
		knots[i] = Knot{float64(i) / float64(last), 1}
	}

	// computed directly so the ends are exact
	knots[0] = Knot{0, degree + 1}
	knots[last] = Knot{1, degree + 1}

	return knots, nil
}

// Len is the number of knots counting multiplicity.
func (this KnotVector) Len() int {
	var n int
	for _, knot := range this {
		n += knot.Mult
	}

	return n
}

// Domain returns the first and last knot values.
func (this KnotVector) Domain() (min, max float64) {
	return this[0].Value, this[len(this)-1].Value
}

// Values returns the distinct knot values.
func (this KnotVector) Values() []float64 {
	values := make([]float64, len(this))
	for i, knot := range this {
		values[i] = knot.Value
	}

	return values
}

// Mults returns the knot multiplicities.
func (this KnotVector) Mults() []int {
	mults := make([]int, len(this))
	for i, knot := range this {
		mults[i] = knot.Mult
	}

	return mults
}

// Flatten expands the vector into a nondecreasing sequence with each value
// repeated by its multiplicity.
func (this KnotVector) Flatten() []float64 {
	flat := make([]float64, 0, this.Len())
	for _, knot := range this {
		for i := 0; i < knot.Mult; i++ {
			flat = append(flat, knot.Value)
		}
	}

	return flat
}

func (this KnotVector) check(numControlPoints, degree int) error {
	if len(this) < 2 {
		return fmt.Errorf("%w: need at least two distinct values, got %d", ErrInvalidKnots, len(this))
	}

	for i, knot := range this {
		if math.IsNaN(knot.Value) || math.IsInf(knot.Value, 0) {
			return fmt.Errorf("%w: knot %d is not finite", ErrInvalidKnots, i)
		}
		if knot.Mult < 1 || knot.Mult > degree+1 {
			return fmt.Errorf("%w: knot %d has multiplicity %d, want 1..%d",
				ErrInvalidKnots, i, knot.Mult, degree+1)
		}
		if i > 0 && knot.Value <= this[i-1].Value {
			return fmt.Errorf("%w: knot values must be strictly increasing at %d", ErrInvalidKnots, i)
		}
	}

	if !KnotVec(this.Flatten()).IsValid(degree) {
		return fmt.Errorf("%w: end multiplicities %d and %d, want %d (clamped)",
			ErrInvalidKnots, this[0].Mult, this[len(this)-1].Mult, degree+1)
	}

	if n := this.Len(); n != numControlPoints+degree+1 {
		return fmt.Errorf("%w: %d knots for %d control points of degree %d, want %d",
			ErrInvalidKnots, n, numControlPoints, degree, numControlPoints+degree+1)
	}

	return nil
}

func knotVectorOf(knots KnotVec) KnotVector {
	mults := knots.Multiplicities()
	result := make(KnotVector, len(mults))
	for i, mult := range mults {
		result[i] = Knot{mult.Knot, mult.Mult}
	}

	return result
}
