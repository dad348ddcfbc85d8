package make

import (
	"fmt"

	"github.com/alexozer/nurbs"
	"github.com/ungerik/go3d/float64/vec3"
)

// Line builds the degree 1 curve from first to last.
func Line(first, last *vec3.T) (*nurbs.NurbsCurve, error) {
	return Polyline([]vec3.T{*first, *last})
}

// Polyline builds the degree 1 curve through pts. Each interior knot is the
// fraction of the total length travelled when reaching that point, so the
// parameter runs at constant speed over [0, 1].
func Polyline(pts []vec3.T) (*nurbs.NurbsCurve, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: a polyline needs at least 2 points, got %d", nurbs.ErrInvalidDegree, len(pts))
	}

	travelled := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		travelled[i] = travelled[i-1] + vec3.Distance(&pts[i-1], &pts[i])
	}

	total := travelled[len(pts)-1]
	if total == 0 {
		return nil, fmt.Errorf("%w: polyline points all coincide", nurbs.ErrGeometry)
	}

	// end knots doubled, the last set exactly to 1
	knots := make([]float64, 0, len(pts)+2)
	knots = append(knots, 0)
	for _, d := range travelled[:len(pts)-1] {
		knots = append(knots, d/total)
	}
	knots = append(knots, 1, 1)

	return nurbs.NewNurbsCurveUnchecked(1, pts, nil, knots), nil
}
