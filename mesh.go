package nurbs

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

type Tri [3]int

// Mesh is a triangulation of a surface. Points and UVs are parallel; faces
// index into them and wind counter-clockwise in parameter space.
type Mesh struct {
	Faces  []Tri
	Points []vec3.T
	UVs    []UV
}

// BoundingBox returns the box enclosing every mesh point.
func (this *Mesh) BoundingBox() BoundingBox {
	var bb BoundingBox
	bb.AddRange(this.Points)
	return bb
}

//
// Tessellate the surface on equally spaced intervals of its parametric
// domain, two triangles per grid cell.
//
// **params**
// + number of divisions in the u direction
// + number of divisions in the v direction
//
// **returns**
// + Mesh with (divsU+1)*(divsV+1) points and 2*divsU*divsV faces
//
func (this *NurbsSurface) Tessellate(divsU, divsV int) (*Mesh, error) {
	if divsU < 1 || divsV < 1 {
		return nil, fmt.Errorf("%w: need at least one division per direction, got %dx%d", ErrDomain, divsU, divsV)
	}

	grid, err := this.SampleGrid(divsU+1, divsV+1)
	if err != nil {
		return nil, err
	}

	numPoints := (divsU + 1) * (divsV + 1)
	mesh := &Mesh{
		Faces:  make([]Tri, 0, 2*divsU*divsV),
		Points: make([]vec3.T, 0, numPoints),
		UVs:    make([]UV, 0, numPoints),
	}

	for _, row := range grid {
		for _, sample := range row {
			mesh.Points = append(mesh.Points, sample.Point)
			mesh.UVs = append(mesh.UVs, sample.UV)
		}
	}

	for i := 0; i < divsU; i++ {
		for j := 0; j < divsV; j++ {
			ai := i*(divsV+1) + j
			bi := (i+1)*(divsV+1) + j
			ci := bi + 1
			di := ai + 1

			mesh.Faces = append(mesh.Faces, Tri{ai, bi, ci}, Tri{ai, ci, di})
		}
	}

	return mesh, nil
}

// BoundingBox is an axis aligned box. The zero value is empty and ready to
// use.
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Add grows the box to include point.
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point {
		this.Min[i] = math.Min(this.Min[i], val)
		this.Max[i] = math.Max(this.Max[i], val)
	}

	return this
}

func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

func (this *BoundingBox) IsEmpty() bool {
	return !this.initialized
}

// Get length of given axis, 0 for an axis index out of range.
func (this *BoundingBox) AxisLength(i int) float64 {
	if i < 0 || i > len(this.Min)-1 {
		return 0
	}
	return math.Abs(this.Min[i] - this.Max[i])
}

// Get longest axis of bounding box
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range this.Min {
		l := this.AxisLength(i)
		if l > max {
			max = l
			id = i
		}
	}

	return id
}
