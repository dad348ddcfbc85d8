package make

import (
	"fmt"
	"math"

	"github.com/alexozer/nurbs"
	"github.com/alexozer/nurbs/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate the control points, weights, and knots of an arbitrary arc
// (Corresponds to Algorithm A7.1 from Piegl & Tiller)
//
// **params**
// + the center of the arc
// + the xaxis of the arc
// + orthogonal yaxis of the arc
// + radius of the arc
// + start angle of the arc, between 0 and 2pi
// + end angle of the arc, between 0 and 2pi, greater than the start angle
//
// **returns**
// + a rational quadratic NurbsCurve
func Arc(center *vec3.T, xaxis, yaxis *vec3.T, radius float64, startAngle, endAngle float64) *nurbs.NurbsCurve {
	xaxisScaled, yaxisScaled := xaxis.Normalized(), yaxis.Normalized()
	xaxisScaled.Scale(radius)
	yaxisScaled.Scale(radius)
	return EllipseArc(center, &xaxisScaled, &yaxisScaled, startAngle, endAngle)
}

// Create a circle
//
// **params**
// + the center of the circle
// + the xaxis
// + the perpendicular yaxis
// + radius of the circle
func Circle(center *vec3.T, xaxis, yaxis *vec3.T, radius float64) *nurbs.NurbsCurve {
	return Arc(center, xaxis, yaxis, radius, 0, 2*math.Pi)
}

func Ellipse(center *vec3.T, xaxis, yaxis *vec3.T) *nurbs.NurbsCurve {
	return EllipseArc(center, xaxis, yaxis, 0, 2*math.Pi)
}

func ellipsePoint(center, xaxis, yaxis *vec3.T, xradius, yradius, angle float64) vec3.T {
	xCompon := xaxis.Scaled(xradius * math.Cos(angle))
	yCompon := yaxis.Scaled(yradius * math.Sin(angle))
	pt := vec3.Add(&xCompon, &yCompon)
	return vec3.Add(center, &pt)
}

func ellipseTangent(xaxis, yaxis *vec3.T, xradius, yradius, angle float64) vec3.T {
	temp0 := yaxis.Scaled(yradius * math.Cos(angle))
	temp1 := xaxis.Scaled(xradius * math.Sin(angle))
	return vec3.Sub(&temp0, &temp1)
}

// EllipseArc builds the arc of the ellipse center + cos(t)*xaxis +
// sin(t)*yaxis for t from startAngle to endAngle, as a rational quadratic
// curve over [0, 1]. The arc is split into at most four equal pieces of no
// more than a quarter turn, each an exact conic segment whose middle control
// point is where the end tangents meet. An end angle below the start angle
// gives the full ellipse; an end angle equal to it gives a curve collapsed
// onto the start point.
// (Corresponds to Algorithm A7.1 from Piegl & Tiller)
func EllipseArc(center *vec3.T, xaxis, yaxis *vec3.T, startAngle, endAngle float64) *nurbs.NurbsCurve {
	xradius, yradius := xaxis.Length(), yaxis.Length()
	xdir, ydir := xaxis.Normalized(), yaxis.Normalized()

	if endAngle < startAngle {
		endAngle = startAngle + 2*math.Pi
	}
	sweep := endAngle - startAngle
	if sweep == 0 {
		pt := ellipsePoint(center, &xdir, &ydir, xradius, yradius, startAngle)
		return nurbs.NewNurbsCurveUnchecked(2, []vec3.T{pt, pt, pt}, nil, []float64{0, 0, 0, 1, 1, 1})
	}

	numArcs := int(math.Ceil(sweep / (math.Pi / 2)))
	numArcs = max(1, min(numArcs, 4))
	step := sweep / float64(numArcs)
	midWeight := math.Cos(step / 2)

	at := func(angle float64) (pt, tangent vec3.T) {
		return ellipsePoint(center, &xdir, &ydir, xradius, yradius, angle),
			ellipseTangent(&xdir, &ydir, xradius, yradius, angle)
	}

	controlPoints := make([]vec3.T, 0, 2*numArcs+1)
	weights := make([]float64, 0, 2*numArcs+1)
	knots := []float64{0, 0, 0}

	start, startTangent := at(startAngle)
	controlPoints = append(controlPoints, start)
	weights = append(weights, 1)

	for arc := 1; arc <= numArcs; arc++ {
		end, endTangent := at(startAngle + float64(arc)*step)

		t, _, ok := internal.Ray{Origin: start, Dir: startTangent}.Intersect(internal.Ray{Origin: end, Dir: endTangent})
		if !ok {
			panic(fmt.Sprintf("make: parallel tangents on a %v radian arc", step))
		}
		mid := internal.Ray{Origin: start, Dir: startTangent}.At(t)

		controlPoints = append(controlPoints, mid, end)
		weights = append(weights, midWeight, 1)

		if arc < numArcs {
			knot := float64(arc) / float64(numArcs)
			knots = append(knots, knot, knot)
		}

		start, startTangent = end, endTangent
	}
	knots = append(knots, 1, 1, 1)

	return nurbs.NewNurbsCurveUnchecked(2, controlPoints, weights, knots)
}

// BezierCurve builds the Bezier curve of degree len(controlPoints) - 1.
// weights may be nil for a polynomial curve.
func BezierCurve(controlPoints []vec3.T, weights []float64) (*nurbs.NurbsCurve, error) {
	if len(controlPoints) == 0 {
		return nil, fmt.Errorf("%w: a bezier curve needs at least one control point", nurbs.ErrInvalidDegree)
	}

	return nurbs.NewClampedCurve(len(controlPoints)-1, controlPoints, weights)
}
