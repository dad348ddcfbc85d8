package make

import (
	"github.com/alexozer/nurbs"
	"github.com/ungerik/go3d/float64/vec3"
)

// ExtrudedSurface sweeps profile along axis by length. The u direction is a
// straight quadratic: the translated profile sits at u = 0 and the profile
// itself at u = 1. v follows the profile's parameterization.
func ExtrudedSurface(axis *vec3.T, length float64, profile *nurbs.NurbsCurve) *nurbs.NurbsSurface {
	profilePts, profileWeights := profile.ControlPoints(), profile.Weights()
	offsets := []float64{1, 0.5, 0}

	controlPoints := make([][]vec3.T, len(offsets))
	weights := make([][]float64, len(offsets))
	for i, offset := range offsets {
		shift := axis.Scaled(length * offset)

		row := make([]vec3.T, len(profilePts))
		for j := range profilePts {
			row[j] = vec3.Add(&profilePts[j], &shift)
		}

		controlPoints[i] = row
		weights[i] = profileWeights
	}

	return nurbs.NewNurbsSurfaceUnchecked(
		2, profile.Degree(),
		controlPoints, weights,
		[]float64{0, 0, 0, 1, 1, 1}, profile.FlatKnots(),
	)
}

// CylindricalSurface extrudes a circle of radius around base, in the plane
// spanned by xaxis and axis x xaxis, by height along the normalized axis.
func CylindricalSurface(axis, xaxis *vec3.T, base *vec3.T, height, radius float64) *nurbs.NurbsSurface {
	yaxis := vec3.Cross(axis, xaxis)
	return ExtrudedSurface(axis, height, Circle(base, xaxis, &yaxis, radius))
}
