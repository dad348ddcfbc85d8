package nurbs

import (
	"fmt"
	"math"

	. "github.com/alexozer/nurbs/internal"

	"github.com/ungerik/go3d/float64/vec3"
)

// BoundaryTolerance is the largest distance at which two boundary endpoints
// are taken to be the same corner.
const BoundaryTolerance = 1e-6

// FillSurface builds a surface patch bounded by three or four curves.
//
// Cyclically consecutive boundaries must share an endpoint; each curve may
// run either way and is reoriented into a closed loop starting with the
// first boundary as given (or reversed when only that closes the loop). With
// four boundaries the loop maps to the v = 0, u = 1, v = 1 and u = 0 edges in
// that order. With three, the u = 0 edge collapses onto the start of the
// first boundary.
//
// The returned surface reproduces every boundary exactly, whatever the
// style. Its degrees are at least the degree of the style's blending
// functions and its knots are the union of the boundary knots rescaled to
// [0, 1]. Rational boundaries are blended in homogeneous space and must have
// equal weights at both ends.
func FillSurface(boundaries []*NurbsCurve, style FillStyle) (*NurbsSurface, error) {
	phi0, phi1, ok := style.blends()
	if !ok {
		return nil, fmt.Errorf("nurbs: unknown fill style %d", int(style))
	}

	if n := len(boundaries); n != 3 && n != 4 {
		return nil, fmt.Errorf("%w: need 3 or 4 boundaries, got %d", ErrGeometry, n)
	}
	for i, boundary := range boundaries {
		if err := checkBoundary(boundary); err != nil {
			return nil, fmt.Errorf("boundary %d: %w", i, err)
		}
	}

	loop, err := orientLoop(boundaries)
	if err != nil {
		return nil, err
	}

	south, east, north := loop[0], loop[1], loop[2].Reverse()

	var west *NurbsCurve
	if len(loop) == 4 {
		west = loop[3].Reverse()
	} else {
		corner := south.start()
		west = &NurbsCurve{1, []HomoPoint{corner, corner}, KnotVec{0, 0, 1, 1}}
	}

	return coonsPatch(south, north, west, east, phi0, phi1), nil
}

// RuledSurface builds the surface swept by the straight segments joining
// points of equal parameter on c1 (v = 0) and c2 (v = 1).
func RuledSurface(c1, c2 *NurbsCurve) (*NurbsSurface, error) {
	if err := checkBoundary(c1); err != nil {
		return nil, err
	}
	if err := checkBoundary(c2); err != nil {
		return nil, err
	}

	unified := unifyCurves([]*NurbsCurve{c1, c2}, 1)
	c1, c2 = unified[0], unified[1]

	controlPoints := make([][]HomoPoint, len(c1.controlPoints))
	for i := range controlPoints {
		controlPoints[i] = []HomoPoint{c1.controlPoints[i], c2.controlPoints[i]}
	}

	return &NurbsSurface{
		c1.degree, 1,
		controlPoints,
		c1.knots, KnotVec{0, 0, 1, 1},
	}, nil
}

// checkBoundary rejects curves that cannot be degree elevated exactly.
func checkBoundary(curve *NurbsCurve) error {
	if curve == nil {
		return fmt.Errorf("%w: missing curve", ErrGeometry)
	}
	if curve.degree < 1 {
		return fmt.Errorf("%w: boundary curves must have degree 1 or more", ErrInvalidDegree)
	}

	return nil
}

func pointsMeet(a, b vec3.T) bool {
	return vec3.Distance(&a, &b) <= BoundaryTolerance
}

func (this *NurbsCurve) startPoint() vec3.T {
	start := this.start()
	return start.Dehomogenized()
}

func (this *NurbsCurve) endPoint() vec3.T {
	end := this.end()
	return end.Dehomogenized()
}

// orientLoop chains the boundaries head to tail and scales each one so its
// end weights are 1.
func orientLoop(boundaries []*NurbsCurve) ([]*NurbsCurve, error) {
	loop, err := chainFrom(boundaries[0], boundaries[1:])
	if err != nil {
		var errReversed error
		loop, errReversed = chainFrom(boundaries[0].Reverse(), boundaries[1:])
		if errReversed != nil {
			return nil, err
		}
	}

	for i, curve := range loop {
		scale := 1 / curve.start().W
		end := curve.end()
		if math.Abs(end.W*scale-1) > 1e-9 {
			return nil, fmt.Errorf("%w: boundary %d has end weights %v and %v",
				ErrGeometry, i, curve.start().W, end.W)
		}

		if scale != 1 {
			scaled := curve.clone()
			for j := range scaled.controlPoints {
				scaled.controlPoints[j].Scale(scale)
			}
			loop[i] = scaled
		}
	}

	return loop, nil
}

func chainFrom(first *NurbsCurve, rest []*NurbsCurve) ([]*NurbsCurve, error) {
	loop := []*NurbsCurve{first}
	tail := first.endPoint()

	for i, curve := range rest {
		switch {
		case pointsMeet(curve.startPoint(), tail):
		case pointsMeet(curve.endPoint(), tail):
			curve = curve.Reverse()
		default:
			return nil, fmt.Errorf("%w: boundary %d does not meet boundary %d", ErrGeometry, i+1, i)
		}

		loop = append(loop, curve)
		tail = curve.endPoint()
	}

	if !pointsMeet(tail, first.startPoint()) {
		return nil, fmt.Errorf("%w: boundary %d does not meet boundary 0, the loop is not closed",
			ErrGeometry, len(rest))
	}

	return loop, nil
}

// coonsPatch blends four boundaries running south and north in u, west and
// east in v, sharing the corners a = S(0) = W(0), b = S(1) = E(0),
// d = N(0) = W(1), c = N(1) = E(1):
//
//	P(u,v) = L(u,v) + phi0(v) dS(u) + phi1(v) dN(u) + phi0(u) dW(v) + phi1(u) dE(v)
//
// where L is the bilinear surface through the corners and dX is the
// deviation of boundary X from the chord between its ends. With the linear
// blending pair this is the classical Coons patch. Every term is a product of
// a function of u and a function of v, so the control net is the product of
// their B-spline coefficients over the shared knot vectors.
func coonsPatch(south, north, west, east *NurbsCurve, phi0, phi1 polynomial) *NurbsSurface {
	blendDegree := phi0.degree()
	if phi1.degree() > blendDegree {
		blendDegree = phi1.degree()
	}

	unifiedU := unifyCurves([]*NurbsCurve{south, north}, blendDegree)
	unifiedV := unifyCurves([]*NurbsCurve{west, east}, blendDegree)
	south, north = unifiedU[0], unifiedU[1]
	west, east = unifiedV[0], unifiedV[1]

	degreeU, knotsU := south.degree, south.knots
	degreeV, knotsV := west.degree, west.knots

	xi := knotsU.Greville(degreeU)
	eta := knotsV.Greville(degreeV)
	phi0U, phi1U := phi0.bsplineCoefficients(degreeU, knotsU), phi1.bsplineCoefficients(degreeU, knotsU)
	phi0V, phi1V := phi0.bsplineCoefficients(degreeV, knotsV), phi1.bsplineCoefficients(degreeV, knotsV)

	a, b := south.start(), south.end()
	d, c := north.start(), north.end()

	dS := chordDeviation(south, a, b, xi)
	dN := chordDeviation(north, d, c, xi)
	dW := chordDeviation(west, a, d, eta)
	dE := chordDeviation(east, b, c, eta)

	controlPoints := make([][]HomoPoint, len(xi))
	for i := range controlPoints {
		ab := HomoInterpolated(&a, &b, xi[i])
		dc := HomoInterpolated(&d, &c, xi[i])

		row := make([]HomoPoint, len(eta))
		for j := range row {
			pt := HomoInterpolated(&ab, &dc, eta[j])
			pt.AddScaled(&dS[i], phi0V[j])
			pt.AddScaled(&dN[i], phi1V[j])
			pt.AddScaled(&dW[j], phi0U[i])
			pt.AddScaled(&dE[j], phi1U[i])
			row[j] = pt
		}

		controlPoints[i] = row
	}

	return &NurbsSurface{degreeU, degreeV, controlPoints, knotsU, knotsV}
}

// chordDeviation returns the control points of curve minus the chord from
// `from` to `to`, the chord being expressed in the curve's own basis through
// the Greville abscissae.
func chordDeviation(curve *NurbsCurve, from, to HomoPoint, greville []float64) []HomoPoint {
	deviation := make([]HomoPoint, len(curve.controlPoints))
	for i, pt := range curve.controlPoints {
		chord := HomoInterpolated(&from, &to, greville[i])
		deviation[i] = pt
		deviation[i].Sub(&chord)
	}

	return deviation
}
