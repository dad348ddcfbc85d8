package nurbs

import (
	"fmt"
	"math"

	. "github.com/alexozer/nurbs/internal"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

type (
	CurvePoint struct {
		U  float64
		Pt vec3.T
	}
)

// NurbsCurve is a rational B-spline curve.
//
// Control points and weights can be replaced in place with SetControlPoint
// and SetWeight. A curve has a single writer: concurrent reads are safe, but
// no read may overlap a write. Callers sharing a curve across goroutines must
// serialize mutation themselves.
type NurbsCurve struct {
	// degree of curve
	degree int

	// slice of control points, each a homogeneous coordinate
	controlPoints []HomoPoint

	// slice of nondecreasing knot values
	knots KnotVec
}

// NewNurbsCurve builds a curve from its control points, optional weights and
// knot vector. A nil weights slice makes the curve polynomial (all weights 1).
// The inputs are copied.
func NewNurbsCurve(degree int, controlPoints []vec3.T, weights []float64, knots KnotVector) (*NurbsCurve, error) {
	if err := checkControlPolygon(degree, controlPoints, weights); err != nil {
		return nil, err
	}

	if err := knots.check(len(controlPoints), degree); err != nil {
		return nil, err
	}

	return NewNurbsCurveUnchecked(degree, controlPoints, weights, knots.Flatten()), nil
}

// NewClampedCurve builds a curve over the clamped, uniformly spaced knot
// vector from ClampedKnotVector.
func NewClampedCurve(degree int, controlPoints []vec3.T, weights []float64) (*NurbsCurve, error) {
	knots, err := ClampedKnotVector(len(controlPoints), degree)
	if err != nil {
		return nil, err
	}

	return NewNurbsCurve(degree, controlPoints, weights, knots)
}

// NewNurbsCurveUnchecked builds a curve from a flat knot sequence without
// validating anything. It is meant for constructors whose output is valid by
// construction.
func NewNurbsCurveUnchecked(degree int, controlPoints []vec3.T, weights []float64, knots []float64) *NurbsCurve {
	return &NurbsCurve{degree, Homogenize1d(controlPoints, weights), KnotVec(knots).Clone()}
}

func checkControlPolygon(degree int, controlPoints []vec3.T, weights []float64) error {
	if degree < 0 {
		return fmt.Errorf("%w: degree %d is negative", ErrInvalidDegree, degree)
	}

	if len(controlPoints) < degree+1 {
		return fmt.Errorf("%w: degree %d needs at least %d control points, got %d",
			ErrInvalidDegree, degree, degree+1, len(controlPoints))
	}

	if weights == nil {
		return nil
	}

	if len(weights) != len(controlPoints) {
		return fmt.Errorf("%w: %d weights for %d control points", ErrInvalidWeight, len(weights), len(controlPoints))
	}

	for i, w := range weights {
		if err := checkWeight(w); err != nil {
			return fmt.Errorf("weight %d: %w", i, err)
		}
	}

	return nil
}

func checkWeight(w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v is not a positive finite number", ErrInvalidWeight, w)
	}

	return nil
}

func (this *NurbsCurve) Degree() int {
	return this.degree
}

func (this *NurbsCurve) NumControlPoints() int {
	return len(this.controlPoints)
}

func (this *NurbsCurve) ControlPoints() []vec3.T {
	return Dehomogenize1d(this.controlPoints)
}

func (this *NurbsCurve) Weights() []float64 {
	return Weight1d(this.controlPoints)
}

// Knots returns the knot vector as distinct values with multiplicities.
func (this *NurbsCurve) Knots() KnotVector {
	return knotVectorOf(this.knots)
}

// FlatKnots returns the knot vector with every value repeated by its
// multiplicity.
func (this *NurbsCurve) FlatKnots() []float64 {
	return []float64(this.knots.Clone())
}

func (this *NurbsCurve) checkIndex(i int) error {
	if i < 0 || i >= len(this.controlPoints) {
		return fmt.Errorf("%w: control point %d of %d", ErrIndex, i, len(this.controlPoints))
	}

	return nil
}

func (this *NurbsCurve) ControlPoint(i int) (vec3.T, error) {
	if err := this.checkIndex(i); err != nil {
		return vec3.Zero, err
	}

	return this.controlPoints[i].Dehomogenized(), nil
}

func (this *NurbsCurve) Weight(i int) (float64, error) {
	if err := this.checkIndex(i); err != nil {
		return 0, err
	}

	return this.controlPoints[i].W, nil
}

// SetControlPoint moves control point i to pt, keeping its weight, and
// returns the previous position. The knot vector is unaffected; later
// evaluations whose basis support covers i see the new point.
func (this *NurbsCurve) SetControlPoint(i int, pt vec3.T) (vec3.T, error) {
	if err := this.checkIndex(i); err != nil {
		return vec3.Zero, err
	}

	prev := this.controlPoints[i].Dehomogenized()
	this.controlPoints[i] = Homogenized(pt, this.controlPoints[i].W)

	return prev, nil
}

// SetWeight replaces the weight of control point i, keeping its position,
// and returns the previous weight.
func (this *NurbsCurve) SetWeight(i int, w float64) (float64, error) {
	if err := this.checkIndex(i); err != nil {
		return 0, err
	}
	if err := checkWeight(w); err != nil {
		return 0, err
	}

	prev := this.controlPoints[i].W
	this.controlPoints[i] = Homogenized(this.controlPoints[i].Dehomogenized(), w)

	return prev, nil
}

// clone makes a deep copy, for internal algorithms that rewrite control
// points or knots.
func (this *NurbsCurve) clone() *NurbsCurve {
	return &NurbsCurve{
		degree:        this.degree,
		controlPoints: append([]HomoPoint(nil), this.controlPoints...),
		knots:         this.knots.Clone(),
	}
}

// Domain returns the parameter range of the curve.
func (this *NurbsCurve) Domain() (min, max float64) {
	return this.knots.Bounds()
}

func (this *NurbsCurve) checkParam(u float64) error {
	min, max := this.Domain()
	if math.IsNaN(u) || u < min || u > max {
		return fmt.Errorf("%w: u = %v outside [%v, %v]", ErrDomain, u, min, max)
	}

	return nil
}

// Point evaluates the curve at u.
//
// The basis functions of degree p that are non-zero at u weigh the
// homogeneous control points; the sum is projected back by its weight.
// With all weights equal this is plain B-spline evaluation.
func (this *NurbsCurve) Point(u float64) (vec3.T, error) {
	if err := this.checkParam(u); err != nil {
		return vec3.Zero, err
	}

	return this.point(u), nil
}

func (this *NurbsCurve) point(u float64) vec3.T {
	homoPt := this.homoPoint(u)
	return homoPt.Dehomogenized()
}

// Compute a point on the curve in homogeneous space
// (corresponds to algorithm 4.1 from The NURBS book, Piegl & Tiller 2nd edition)
func (this *NurbsCurve) homoPoint(u float64) HomoPoint {
	n := len(this.knots) - this.degree - 2

	if !areValidRelations(this.degree, len(this.controlPoints), len(this.knots)) {
		panic("Invalid relations between control points, knot vector, and n")
	}

	knotSpanIndex := this.knots.SpanGivenN(n, this.degree, u)
	basisValues := this.knots.BasisInSpan(knotSpanIndex, this.degree, u)
	var position HomoPoint

	for j, basis := range basisValues {
		position.AddScaled(&this.controlPoints[knotSpanIndex-this.degree+j], basis)
	}

	return position
}

// Sample evaluates the curve at count equally spaced parameters covering the
// whole domain, both ends included.
func (this *NurbsCurve) Sample(count int) ([]CurvePoint, error) {
	params, err := sampleParams(this.knots, count)
	if err != nil {
		return nil, err
	}

	samples := make([]CurvePoint, len(params))
	for i, u := range params {
		samples[i] = CurvePoint{u, this.point(u)}
	}

	return samples, nil
}

// sampleParams spans the knot domain with count parameters. The end values
// are copied from the knots so they never fall outside the domain.
func sampleParams(knots KnotVec, count int) ([]float64, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrDomain, count)
	}

	min, max := knots.Bounds()
	params := floats.Span(make([]float64, count), min, max)
	params[0], params[count-1] = min, max

	return params, nil
}

// Reverse returns a copy of the curve traversed in the opposite direction
// over the same domain.
func (this *NurbsCurve) Reverse() *NurbsCurve {
	reversed := NurbsCurve{
		degree:        this.degree,
		controlPoints: make([]HomoPoint, 0, len(this.controlPoints)),
		knots:         this.knots.Reversed(),
	}

	for i := len(this.controlPoints) - 1; i >= 0; i-- {
		reversed.controlPoints = append(reversed.controlPoints, this.controlPoints[i])
	}

	return &reversed
}

// Transform returns a copy of the curve with every control point mapped by
// mat. Weights and knots are kept.
func (this *NurbsCurve) Transform(mat *mat4.T) *NurbsCurve {
	pts := Dehomogenize1d(this.controlPoints)

	for i := range pts {
		pts[i] = mat.MulVec3(&pts[i])
	}

	return &NurbsCurve{
		this.degree,
		Homogenize1d(pts, Weight1d(this.controlPoints)),
		this.knots.Clone(),
	}
}

// Confirm the relations between degree (p), number of control points(n+1), and the number of knots (m+1)
// via The NURBS Book (section 3.2, Second Edition)
func areValidRelations(degree, numControlPoints, knotsLength int) bool {
	return numControlPoints+degree+1 == knotsLength
}

func (this *NurbsCurve) start() HomoPoint {
	return this.controlPoints[0]
}

func (this *NurbsCurve) end() HomoPoint {
	return this.controlPoints[len(this.controlPoints)-1]
}
