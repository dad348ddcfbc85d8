package internal

import "github.com/ungerik/go3d/float64/vec3"

// HomoPoint is a control point in homogeneous form (w*p, w).
type HomoPoint struct {
	Vec3 vec3.T
	W    float64
}

func (this *HomoPoint) Sub(pt *HomoPoint) *HomoPoint {
	this.Vec3.Sub(&pt.Vec3)
	this.W -= pt.W

	return this
}

func (this *HomoPoint) Scale(scale float64) *HomoPoint {
	this.Vec3.Scale(scale)
	this.W *= scale

	return this
}

// AddScaled accumulates scale * pt without allocating a temporary.
func (this *HomoPoint) AddScaled(pt *HomoPoint, scale float64) *HomoPoint {
	this.Vec3[0] += pt.Vec3[0] * scale
	this.Vec3[1] += pt.Vec3[1] * scale
	this.Vec3[2] += pt.Vec3[2] * scale
	this.W += pt.W * scale

	return this
}

func Homogenized(pt vec3.T, w float64) HomoPoint {
	return HomoPoint{pt.Scaled(w), w}
}

// Homogenize1d pairs each point with its weight. A nil weight slice is
// treated as all ones.
func Homogenize1d(pts []vec3.T, weights []float64) []HomoPoint {
	homoPts := make([]HomoPoint, len(pts))
	for i := range pts {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		homoPts[i] = Homogenized(pts[i], w)
	}

	return homoPts
}

// Homogenize2d is Homogenize1d applied row by row; weights may be nil.
func Homogenize2d(pts [][]vec3.T, weights [][]float64) [][]HomoPoint {
	homoPts := make([][]HomoPoint, len(pts))
	for i := range homoPts {
		var row []float64
		if weights != nil {
			row = weights[i]
		}
		homoPts[i] = Homogenize1d(pts[i], row)
	}

	return homoPts
}

// Dehomogenized projects (w*p, w) back to p.
func (this *HomoPoint) Dehomogenized() vec3.T {
	return this.Vec3.Scaled(1 / this.W)
}

func mapPoints[T any](homoPoints []HomoPoint, f func(*HomoPoint) T) []T {
	result := make([]T, len(homoPoints))
	for i := range homoPoints {
		result[i] = f(&homoPoints[i])
	}
	return result
}

func mapRows[T any](homoPoints [][]HomoPoint, f func([]HomoPoint) []T) [][]T {
	result := make([][]T, len(homoPoints))
	for i, row := range homoPoints {
		result[i] = f(row)
	}
	return result
}

func weightOf(pt *HomoPoint) float64 { return pt.W }

// Dehomogenize1d returns the cartesian control points.
func Dehomogenize1d(homoPoints []HomoPoint) []vec3.T {
	return mapPoints(homoPoints, (*HomoPoint).Dehomogenized)
}

func Dehomogenize2d(homoPoints [][]HomoPoint) [][]vec3.T {
	return mapRows(homoPoints, Dehomogenize1d)
}

// Weight1d returns the weights of the control points.
func Weight1d(homoPoints []HomoPoint) []float64 {
	return mapPoints(homoPoints, weightOf)
}

func Weight2d(homoPoints [][]HomoPoint) [][]float64 {
	return mapRows(homoPoints, Weight1d)
}

// HomoInterpolated returns (1-t)*hpt0 + t*hpt1, weights included.
func HomoInterpolated(hpt0, hpt1 *HomoPoint, t float64) HomoPoint {
	return HomoPoint{
		vec3.Interpolate(&hpt0.Vec3, &hpt1.Vec3, t),
		(1-t)*hpt0.W + t*hpt1.W,
	}
}
