package export

import (
	"io"
	"log/slog"

	"github.com/alexozer/nurbs"
	"github.com/hschendel/stl"
	"github.com/ungerik/go3d/float64/vec3"
)

func toVec3(v *vec3.T) stl.Vec3 {
	return stl.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Solid converts triangulated meshes into one STL solid. Facet normals are
// taken from the winding of each triangle; degenerate triangles get a zero
// normal.
func Solid(name string, meshes ...*nurbs.Mesh) *stl.Solid {
	solid := &stl.Solid{Name: name}

	for _, mesh := range meshes {
		for _, face := range mesh.Faces {
			a, b, c := &mesh.Points[face[0]], &mesh.Points[face[1]], &mesh.Points[face[2]]

			ab, ac := vec3.Sub(b, a), vec3.Sub(c, a)
			normal := vec3.Cross(&ab, &ac)
			if normal.Length() > 0 {
				normal.Normalize()
			}

			solid.Triangles = append(solid.Triangles, stl.Triangle{
				Normal:   toVec3(&normal),
				Vertices: [3]stl.Vec3{toVec3(a), toVec3(b), toVec3(c)},
			})
		}
	}

	return solid
}

// WriteSTL writes the meshes as a binary STL stream.
func WriteSTL(w io.Writer, name string, meshes ...*nurbs.Mesh) error {
	return Solid(name, meshes...).WriteAll(w)
}

// SaveSTL writes the meshes as a binary STL file at path.
func SaveSTL(path, name string, meshes ...*nurbs.Mesh) error {
	solid := Solid(name, meshes...)
	if err := solid.WriteFile(path); err != nil {
		return err
	}

	slog.Info("wrote mesh", "path", path, "triangles", len(solid.Triangles))
	return nil
}
