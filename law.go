package nurbs

import (
	"fmt"
	"math"

	. "github.com/alexozer/nurbs/internal"
)

// Law is a scalar B-spline function of one parameter, an evolution law
// such as a thickness or twist distribution along a curve. Its poles are
// plain numbers and it is never rational.
//
// Poles can be replaced in place with SetPole under the single writer rule
// of NurbsCurve.
type Law struct {
	degree int
	poles  []float64
	knots  KnotVec
}

// LawSample is one tabulated value of a law.
type LawSample struct {
	U, Value float64
}

// NewLaw builds a law from its poles and knot vector. The poles are copied.
func NewLaw(degree int, poles []float64, knots KnotVector) (*Law, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: degree %d is negative", ErrInvalidDegree, degree)
	}
	if len(poles) < degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs at least %d poles, got %d",
			ErrInvalidDegree, degree, degree+1, len(poles))
	}
	if err := knots.check(len(poles), degree); err != nil {
		return nil, err
	}

	return &Law{
		degree: degree,
		poles:  append([]float64(nil), poles...),
		knots:  knots.Flatten(),
	}, nil
}

// NewClampedLaw builds a law over the clamped knot vector from
// ClampedKnotVector.
func NewClampedLaw(degree int, poles []float64) (*Law, error) {
	knots, err := ClampedKnotVector(len(poles), degree)
	if err != nil {
		return nil, err
	}

	return NewLaw(degree, poles, knots)
}

func (this *Law) Degree() int {
	return this.degree
}

func (this *Law) NumPoles() int {
	return len(this.poles)
}

func (this *Law) Poles() []float64 {
	return append([]float64(nil), this.poles...)
}

func (this *Law) Knots() KnotVector {
	return knotVectorOf(this.knots)
}

func (this *Law) Domain() (min, max float64) {
	return this.knots.Bounds()
}

func (this *Law) Pole(i int) (float64, error) {
	if i < 0 || i >= len(this.poles) {
		return 0, fmt.Errorf("%w: pole %d of %d", ErrIndex, i, len(this.poles))
	}

	return this.poles[i], nil
}

// SetPole replaces pole i and returns its previous value.
func (this *Law) SetPole(i int, value float64) (float64, error) {
	prev, err := this.Pole(i)
	if err != nil {
		return 0, err
	}

	this.poles[i] = value
	return prev, nil
}

// Value evaluates the law at u.
func (this *Law) Value(u float64) (float64, error) {
	min, max := this.Domain()
	if math.IsNaN(u) || u < min || u > max {
		return 0, fmt.Errorf("%w: u = %v outside [%v, %v]", ErrDomain, u, min, max)
	}

	return this.value(u), nil
}

func (this *Law) value(u float64) float64 {
	span, basis := this.knots.Basis(this.degree, u)

	var sum float64
	for j, b := range basis {
		sum += b * this.poles[span-this.degree+j]
	}

	return sum
}

// Sample tabulates the law at count equally spaced parameters over its
// domain, both ends included.
func (this *Law) Sample(count int) ([]LawSample, error) {
	params, err := sampleParams(this.knots, count)
	if err != nil {
		return nil, err
	}

	samples := make([]LawSample, len(params))
	for i, u := range params {
		samples[i] = LawSample{u, this.value(u)}
	}

	return samples, nil
}
