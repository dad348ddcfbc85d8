package nurbs

import (
	"fmt"
	"math"

	. "github.com/alexozer/nurbs/internal"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

type UV [2]float64

type SurfacePoint struct {
	UV    UV
	Point vec3.T
}

// NurbsSurface is a tensor product rational B-spline surface.
//
// The same single writer rule as NurbsCurve applies to SetControlPoint and
// SetWeight.
type NurbsSurface struct {
	// integer degree of surface in u direction
	degreeU int

	// integer degree of surface in v direction
	degreeV int

	// 2d array of control points, the vertical direction (u) increases from top to bottom, the v direction from left to right
	controlPoints [][]HomoPoint

	// array of nondecreasing knot values in u direction
	knotsU KnotVec

	// array of nondecreasing knot values in v direction
	knotsV KnotVec
}

// NewNurbsSurfaceUnchecked builds a surface from flat knot sequences without
// validation. weights may be nil.
func NewNurbsSurfaceUnchecked(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64, knotsU, knotsV []float64) *NurbsSurface {
	return &NurbsSurface{
		degreeU, degreeV,
		Homogenize2d(controlPoints, weights),
		KnotVec(knotsU).Clone(), KnotVec(knotsV).Clone(),
	}
}

// NewNurbsSurface builds a surface from a control grid indexed [u][v], an
// optional weight grid of the same shape and one knot vector per direction.
func NewNurbsSurface(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64, knotsU, knotsV KnotVector) (*NurbsSurface, error) {
	if err := checkControlNet(degreeU, degreeV, controlPoints, weights); err != nil {
		return nil, err
	}

	if err := knotsU.check(len(controlPoints), degreeU); err != nil {
		return nil, fmt.Errorf("u direction: %w", err)
	}
	if err := knotsV.check(len(controlPoints[0]), degreeV); err != nil {
		return nil, fmt.Errorf("v direction: %w", err)
	}

	return NewNurbsSurfaceUnchecked(degreeU, degreeV, controlPoints, weights, knotsU.Flatten(), knotsV.Flatten()), nil
}

// NewClampedSurface builds a surface over clamped, uniformly spaced knot
// vectors in both directions.
func NewClampedSurface(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64) (*NurbsSurface, error) {
	if err := checkControlNet(degreeU, degreeV, controlPoints, weights); err != nil {
		return nil, err
	}

	knotsU, err := ClampedKnotVector(len(controlPoints), degreeU)
	if err != nil {
		return nil, fmt.Errorf("u direction: %w", err)
	}
	knotsV, err := ClampedKnotVector(len(controlPoints[0]), degreeV)
	if err != nil {
		return nil, fmt.Errorf("v direction: %w", err)
	}

	return NewNurbsSurfaceUnchecked(degreeU, degreeV, controlPoints, weights, knotsU.Flatten(), knotsV.Flatten()), nil
}

func checkControlNet(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64) error {
	if len(controlPoints) == 0 || len(controlPoints[0]) == 0 {
		return fmt.Errorf("%w: empty control grid", ErrInvalidControlNet)
	}

	cols := len(controlPoints[0])
	for i, row := range controlPoints {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d points, want %d", ErrInvalidControlNet, i, len(row), cols)
		}
	}

	if degreeU < 0 || degreeV < 0 {
		return fmt.Errorf("%w: degrees (%d, %d) must not be negative", ErrInvalidDegree, degreeU, degreeV)
	}
	if len(controlPoints) < degreeU+1 {
		return fmt.Errorf("%w: degreeU %d needs at least %d rows, got %d",
			ErrInvalidDegree, degreeU, degreeU+1, len(controlPoints))
	}
	if cols < degreeV+1 {
		return fmt.Errorf("%w: degreeV %d needs at least %d columns, got %d",
			ErrInvalidDegree, degreeV, degreeV+1, cols)
	}

	if weights == nil {
		return nil
	}

	if len(weights) != len(controlPoints) {
		return fmt.Errorf("%w: %d weight rows for %d control rows", ErrInvalidWeight, len(weights), len(controlPoints))
	}
	for i, row := range weights {
		if len(row) != cols {
			return fmt.Errorf("%w: weight row %d has %d entries, want %d", ErrInvalidWeight, i, len(row), cols)
		}
		for j, w := range row {
			if err := checkWeight(w); err != nil {
				return fmt.Errorf("weight (%d, %d): %w", i, j, err)
			}
		}
	}

	return nil
}

func (this *NurbsSurface) DegreeU() int {
	return this.degreeU
}

func (this *NurbsSurface) DegreeV() int {
	return this.degreeV
}

// Size returns the number of control points in the u and v directions.
func (this *NurbsSurface) Size() (numU, numV int) {
	return len(this.controlPoints), len(this.controlPoints[0])
}

func (this *NurbsSurface) ControlPoints() [][]vec3.T {
	return Dehomogenize2d(this.controlPoints)
}

func (this *NurbsSurface) Weights() [][]float64 {
	return Weight2d(this.controlPoints)
}

func (this *NurbsSurface) KnotsU() KnotVector {
	return knotVectorOf(this.knotsU)
}

func (this *NurbsSurface) KnotsV() KnotVector {
	return knotVectorOf(this.knotsV)
}

func (this *NurbsSurface) checkIndex(i, j int) error {
	numU, numV := this.Size()
	if i < 0 || i >= numU || j < 0 || j >= numV {
		return fmt.Errorf("%w: control point (%d, %d) of %dx%d", ErrIndex, i, j, numU, numV)
	}

	return nil
}

func (this *NurbsSurface) ControlPoint(i, j int) (vec3.T, error) {
	if err := this.checkIndex(i, j); err != nil {
		return vec3.Zero, err
	}

	return this.controlPoints[i][j].Dehomogenized(), nil
}

func (this *NurbsSurface) Weight(i, j int) (float64, error) {
	if err := this.checkIndex(i, j); err != nil {
		return 0, err
	}

	return this.controlPoints[i][j].W, nil
}

// SetControlPoint moves control point (i, j) to pt, keeping its weight, and
// returns the previous position.
func (this *NurbsSurface) SetControlPoint(i, j int, pt vec3.T) (vec3.T, error) {
	if err := this.checkIndex(i, j); err != nil {
		return vec3.Zero, err
	}

	prev := this.controlPoints[i][j].Dehomogenized()
	this.controlPoints[i][j] = Homogenized(pt, this.controlPoints[i][j].W)

	return prev, nil
}

// SetWeight replaces the weight of control point (i, j) and returns the
// previous weight.
func (this *NurbsSurface) SetWeight(i, j int, w float64) (float64, error) {
	if err := this.checkIndex(i, j); err != nil {
		return 0, err
	}
	if err := checkWeight(w); err != nil {
		return 0, err
	}

	prev := this.controlPoints[i][j].W
	this.controlPoints[i][j] = Homogenized(this.controlPoints[i][j].Dehomogenized(), w)

	return prev, nil
}

func (this *NurbsSurface) DomainU() (min, max float64) {
	return this.knotsU.Bounds()
}

func (this *NurbsSurface) DomainV() (min, max float64) {
	return this.knotsV.Bounds()
}

// Point evaluates the surface at uv.
func (this *NurbsSurface) Point(uv UV) (vec3.T, error) {
	minU, maxU := this.DomainU()
	minV, maxV := this.DomainV()

	if math.IsNaN(uv[0]) || uv[0] < minU || uv[0] > maxU {
		return vec3.Zero, fmt.Errorf("%w: u = %v outside [%v, %v]", ErrDomain, uv[0], minU, maxU)
	}
	if math.IsNaN(uv[1]) || uv[1] < minV || uv[1] > maxV {
		return vec3.Zero, fmt.Errorf("%w: v = %v outside [%v, %v]", ErrDomain, uv[1], minV, maxV)
	}

	return this.point(uv), nil
}

func (this *NurbsSurface) point(uv UV) vec3.T {
	homoPt := this.homoPoint(uv)
	return homoPt.Dehomogenized()
}

// Compute a point on the surface in homogeneous space
// (corresponds to algorithm 4.3 from The NURBS book, Piegl & Tiller 2nd edition)
//
// The u basis is applied along each of the degreeV + 1 contributing columns,
// and the resulting u isoline points are combined with the v basis.
func (this *NurbsSurface) homoPoint(uv UV) HomoPoint {
	degreeU := this.degreeU
	degreeV := this.degreeV
	controlPoints := this.controlPoints

	if !areValidRelations(degreeU, len(controlPoints), len(this.knotsU)) ||
		!areValidRelations(degreeV, len(controlPoints[0]), len(this.knotsV)) {
		panic("Invalid relations between control points, knot vector, and n")
	}

	knotSpanIndexU, uBasisVals := this.knotsU.Basis(degreeU, uv[0])
	knotSpanIndexV, vBasisVals := this.knotsV.Basis(degreeV, uv[1])
	uind := knotSpanIndexU - degreeU
	var position HomoPoint

	for l := 0; l <= degreeV; l++ {
		var temp HomoPoint
		vind := knotSpanIndexV - degreeV + l

		// sample u isoline
		for k := 0; k <= degreeU; k++ {
			temp.AddScaled(&controlPoints[uind+k][vind], uBasisVals[k])
		}

		// add point from u isoline
		position.AddScaled(&temp, vBasisVals[l])
	}

	return position
}

// SampleGrid evaluates the surface on a countU x countV grid of equally
// spaced parameters covering the whole domain. The result is indexed [u][v].
func (this *NurbsSurface) SampleGrid(countU, countV int) ([][]SurfacePoint, error) {
	us, err := sampleParams(this.knotsU, countU)
	if err != nil {
		return nil, fmt.Errorf("u direction: %w", err)
	}
	vs, err := sampleParams(this.knotsV, countV)
	if err != nil {
		return nil, fmt.Errorf("v direction: %w", err)
	}

	grid := make([][]SurfacePoint, len(us))
	for i, u := range us {
		grid[i] = make([]SurfacePoint, len(vs))
		for j, v := range vs {
			uv := UV{u, v}
			grid[i][j] = SurfacePoint{uv, this.point(uv)}
		}
	}

	return grid, nil
}

// Transform returns a copy of the surface with every control point mapped by
// mat.
func (this *NurbsSurface) Transform(mat *mat4.T) *NurbsSurface {
	pts := Dehomogenize2d(this.controlPoints)

	for i := range pts {
		for j := range pts[i] {
			pts[i][j] = mat.MulVec3(&pts[i][j])
		}
	}

	return &NurbsSurface{
		this.degreeU,
		this.degreeV,

		Homogenize2d(pts, Weight2d(this.controlPoints)),

		this.knotsU.Clone(),
		this.knotsV.Clone(),
	}
}

// Boundaries extracts the four edge curves of the surface: v = min and
// v = max running in u, then u = min and u = max running in v.
func (this *NurbsSurface) Boundaries() []*NurbsCurve {
	numU, numV := this.Size()

	column := func(j int) []HomoPoint {
		pts := make([]HomoPoint, numU)
		for i := range pts {
			pts[i] = this.controlPoints[i][j]
		}
		return pts
	}

	return []*NurbsCurve{
		{this.degreeU, column(0), this.knotsU.Clone()},
		{this.degreeU, column(numV - 1), this.knotsU.Clone()},
		{this.degreeV, append([]HomoPoint(nil), this.controlPoints[0]...), this.knotsV.Clone()},
		{this.degreeV, append([]HomoPoint(nil), this.controlPoints[numU-1]...), this.knotsV.Clone()},
	}
}
