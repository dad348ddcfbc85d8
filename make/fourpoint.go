package make

import (
	"fmt"

	"github.com/alexozer/nurbs"
	"github.com/ungerik/go3d/float64/vec3"
)

// FourPointSurface builds the bilinear patch through four corners, given
// counter-clockwise, as a Bezier patch of the given degree in both
// directions. p1 lands at uv (0, 0), p2 at (1, 0), p3 at (1, 1) and p4 at
// (0, 1).
func FourPointSurface(p1, p2, p3, p4 *vec3.T, degree int) (*nurbs.NurbsSurface, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: four point surface degree %d", nurbs.ErrInvalidDegree, degree)
	}

	// sampling a bilinear map at i/degree gives its exact Bezier net
	net := make([][]vec3.T, degree+1)
	for i := range net {
		u := float64(i) / float64(degree)
		bottom, top := vec3.Interpolate(p1, p2, u), vec3.Interpolate(p4, p3, u)

		net[i] = make([]vec3.T, degree+1)
		for j := range net[i] {
			net[i][j] = vec3.Interpolate(&bottom, &top, float64(j)/float64(degree))
		}
	}

	return nurbs.NewClampedSurface(degree, degree, net, nil)
}

// BezierSurface builds the tensor product Bezier patch over a control net
// indexed [u][v]. weights may be nil.
func BezierSurface(controlPoints [][]vec3.T, weights [][]float64) (*nurbs.NurbsSurface, error) {
	if len(controlPoints) == 0 || len(controlPoints[0]) == 0 {
		return nil, fmt.Errorf("%w: empty control net", nurbs.ErrInvalidControlNet)
	}

	return nurbs.NewClampedSurface(len(controlPoints)-1, len(controlPoints[0])-1, controlPoints, weights)
}
