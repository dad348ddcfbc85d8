package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/alexozer/nurbs"
	"github.com/alexozer/nurbs/export"
	mk "github.com/alexozer/nurbs/make"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

type demo struct {
	name, short string
	run         func(ctx context.Context, cfg *Config) error
}

var demos = []demo{
	{"law", "tabulate and plot a cubic B-spline evolution law", runLaw},
	{"curve", "sample a clamped cubic B-spline curve", runCurve},
	{"nurbs-surface", "rational biquadratic B-spline surface", runNurbsSurface},
	{"bezier-surface", "degree (4, 2) Bezier surface", runBezierSurface},
	{"rational-bezier", "quarter cylinders from a rational Bezier patch, rotated and mirrored", runRationalBezier},
	{"coons4", "fill four Bezier boundaries", runCoons4},
	{"coons3", "fill three Bezier boundaries", runCoons3},
	{"ruled", "ruled surface between two cubic Bezier curves", runRuled},
	{"circle", "circle of radius pi and a filled disk", runCircle},
	{"square", "unit square filled from its four edges", runSquare},
	{"perforated-disk", "annulus between circles of radius 2 and 1", runPerforatedDisk},
}

// writeCurve tabulates a curve to <name>.csv and plots its x-y projection
// to <name>.png.
func writeCurve(cfg *Config, name string, curve *nurbs.NurbsCurve) error {
	samples, err := curve.Sample(cfg.Samples)
	if err != nil {
		return err
	}

	csvPath, err := cfg.outputPath(name + ".csv")
	if err != nil {
		return err
	}
	if err := export.SaveSamplesCSV(csvPath, samples); err != nil {
		return err
	}

	pngPath, err := cfg.outputPath(name + ".png")
	if err != nil {
		return err
	}
	return export.PlotCurve(pngPath, name, samples)
}

// logMesh reports the size and extent of one tessellated surface.
func logMesh(name string, index int, mesh *nurbs.Mesh) {
	bb := mesh.BoundingBox()
	if bb.IsEmpty() {
		slog.Warn("empty mesh", "name", name, "surface", index)
		return
	}

	axis := bb.LongestAxis()
	slog.Info("tessellated", "name", name, "surface", index,
		"triangles", len(mesh.Faces), "min", bb.Min, "max", bb.Max,
		"longestAxis", axis, "length", bb.AxisLength(axis))
}

// writeSurfaces tessellates the surfaces into <name>.stl and opens the
// viewer on it.
func writeSurfaces(ctx context.Context, cfg *Config, name string, surfaces ...*nurbs.NurbsSurface) error {
	meshes := make([]*nurbs.Mesh, len(surfaces))

	for i, surface := range surfaces {
		mesh, err := surface.Tessellate(cfg.DivisionsU, cfg.DivisionsV)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logMesh(name, i, mesh)
		meshes[i] = mesh
	}

	path, err := cfg.outputPath(name + ".stl")
	if err != nil {
		return err
	}
	if err := export.SaveSTL(path, name, meshes...); err != nil {
		return err
	}

	return export.LaunchViewer(ctx, cfg.Viewer, path)
}

func runLaw(ctx context.Context, cfg *Config) error {
	law, err := nurbs.NewClampedLaw(3, []float64{0, 2, 3, 1, 1})
	if err != nil {
		return err
	}
	slog.Info("law", "degree", law.Degree(), "poles", law.Poles())

	prev, err := law.SetPole(1, 1.0)
	if err != nil {
		return err
	}
	slog.Info("moved pole", "index", 1, "from", prev, "poles", law.Poles())

	knots := law.Knots()
	slog.Info("law knots", "values", knots.Values(), "mults", knots.Mults())

	samples, err := law.Sample(cfg.Samples)
	if err != nil {
		return err
	}

	csvPath, err := cfg.outputPath("bspline_law.csv")
	if err != nil {
		return err
	}
	if err := export.SaveLawCSV(csvPath, samples); err != nil {
		return err
	}

	pngPath, err := cfg.outputPath("bspline_law.png")
	if err != nil {
		return err
	}
	return export.PlotLaw(pngPath, "B-spline law", samples)
}

func runCurve(ctx context.Context, cfg *Config) error {
	pts := []vec3.T{
		{0.00, 0.0, 0.0},
		{0.25, -0.5, 0.0},
		{0.50, 0.0, 0.0},
		{0.75, 0.0, 0.0},
		{1.00, 0.0, 0.0},
		{0.50, 0.5, 0.0},
		{0.00, 0.5, 0.0},
	}

	curve, err := nurbs.NewClampedCurve(3, pts, nil)
	if err != nil {
		return err
	}

	knots := curve.Knots()
	slog.Info("curve", "degree", curve.Degree(), "poles", curve.NumControlPoints(), "knots", knots.Values())

	if err := writeCurve(cfg, "bspline_curve", curve); err != nil {
		return err
	}

	// close the curve with a straight edge back to its start
	closing, err := mk.Line(&pts[len(pts)-1], &pts[0])
	if err != nil {
		return err
	}
	return writeCurve(cfg, "bspline_curve_closing", closing)
}

// surfaceGrid is the 5x3 control net shared by the surface demos.
func surfaceGrid() [][]vec3.T {
	grid := make([][]vec3.T, 5)
	for i := range grid {
		x := 0.25 * float64(i)
		grid[i] = []vec3.T{{x, 0, 0}, {x, 0.5, 1}, {x, 1, 0}}
	}
	grid[0][1][2], grid[4][1][2] = 0, 0

	return grid
}

func runNurbsSurface(ctx context.Context, cfg *Config) error {
	weights := [][]float64{{1, 1, 1}, {1, 2, 1}, {1, 1, 1}, {1, 2, 1}, {1, 1, 1}}

	surface, err := nurbs.NewClampedSurface(2, 2, surfaceGrid(), weights)
	if err != nil {
		return err
	}

	return writeSurfaces(ctx, cfg, "nurbs_surface", surface)
}

func runBezierSurface(ctx context.Context, cfg *Config) error {
	surface, err := mk.BezierSurface(surfaceGrid(), nil)
	if err != nil {
		return err
	}

	uMin, uMax := surface.DomainU()
	vMin, vMax := surface.DomainV()
	slog.Info("bezier surface", "degreeU", surface.DegreeU(), "degreeV", surface.DegreeV(),
		"u", []float64{uMin, uMax}, "v", []float64{vMin, vMax})

	return writeSurfaces(ctx, cfg, "bezier_surface", surface)
}

func runRationalBezier(ctx context.Context, cfg *Config) error {
	pts := [][]vec3.T{
		{{1, 0, 0}, {1, 0, 2}},
		{{1, 1, 0}, {1, 1, 2}},
		{{0, 1, 0}, {0, 1, 2}},
	}
	// this middle weight makes each row a 90 degree circular arc
	w := math.Sqrt2 / 2
	weights := [][]float64{{1, 1}, {w, w}, {1, 1}}

	quarter, err := mk.BezierSurface(pts, weights)
	if err != nil {
		return err
	}

	var rotation mat4.T
	rotation.AssignZRotation(math.Pi / 2)
	rotated := quarter.Transform(&rotation)

	mirror := mat4.T{{1, 0, 0, 0}, {0, -1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}

	return writeSurfaces(ctx, cfg, "bezier_rational_surface",
		quarter, rotated, quarter.Transform(&mirror), rotated.Transform(&mirror))
}

func bezier(pts ...vec3.T) *nurbs.NurbsCurve {
	curve, err := mk.BezierCurve(pts, nil)
	if err != nil {
		panic(err)
	}
	return curve
}

func fill(ctx context.Context, cfg *Config, name string, boundaries ...*nurbs.NurbsCurve) error {
	style, err := nurbs.ParseFillStyle(cfg.FillStyle)
	if err != nil {
		return err
	}

	surface, err := nurbs.FillSurface(boundaries, style)
	if err != nil {
		return err
	}

	numU, numV := surface.Size()
	slog.Info("filled", "demo", name, "style", style, "poles", []int{numU, numV},
		"degreeU", surface.DegreeU(), "degreeV", surface.DegreeV())

	return writeSurfaces(ctx, cfg, name, surface)
}

func runCoons4(ctx context.Context, cfg *Config) error {
	south := bezier(vec3.T{0, 0, 0}, vec3.T{0.5, -0.2, 0.5}, vec3.T{1, 0, 0})
	north := bezier(vec3.T{0, 1, 0}, vec3.T{0.5, 0.8, 0.5}, vec3.T{1, 1, 0})
	west := bezier(vec3.T{0, 0, 0}, vec3.T{-0.2, 0.5, 0.5}, vec3.T{0, 1, 0})
	east := bezier(vec3.T{1, 0, 0}, vec3.T{1.2, 0.5, 0.5}, vec3.T{1, 1, 0})

	return fill(ctx, cfg, "coons_surface_4", south, east, north, west)
}

func runCoons3(ctx context.Context, cfg *Config) error {
	c, s := math.Cos(math.Pi/3), math.Sin(math.Pi/3)

	a, b, d := vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{1 - c, s, 0}

	return fill(ctx, cfg, "coons_surface_3",
		bezier(a, vec3.T{0.5, 0, 0.5}, b),
		bezier(b, vec3.T{1 - 0.5*c, 0.5 * s, 0.5}, d),
		bezier(d, vec3.T{0.5 * c, 0.5 * s, 0.5}, a),
	)
}

func runRuled(ctx context.Context, cfg *Config) error {
	upper := bezier(vec3.T{0, 0, 0}, vec3.T{0.33, 1, 0.5}, vec3.T{0.66, 1, -0.5}, vec3.T{1, 0, 0})
	lower := bezier(vec3.T{0, 0, 0}, vec3.T{0.33, -1, -0.5}, vec3.T{0.66, -1, 0.5}, vec3.T{1, 0, 0})

	surface, err := nurbs.RuledSurface(upper, lower)
	if err != nil {
		return err
	}

	return writeSurfaces(ctx, cfg, "ruled_surface", surface)
}

func runCircle(ctx context.Context, cfg *Config) error {
	center, xaxis, yaxis := vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0}

	circle := mk.Circle(&center, &xaxis, &yaxis, math.Pi)
	if err := writeCurve(cfg, "circle", circle); err != nil {
		return err
	}

	// a second circle with the radius changed to e
	resized := mk.Circle(&center, &xaxis, &yaxis, math.E)
	start, err := circle.Point(0)
	if err != nil {
		return err
	}
	resizedStart, err := resized.Point(0)
	if err != nil {
		return err
	}
	slog.Info("circle radius", "original", start.Length(), "modified", resizedStart.Length())

	// the disk is filled from four quarter arcs
	quarters := make([]*nurbs.NurbsCurve, 4)
	for i := range quarters {
		start := float64(i) * math.Pi / 2
		quarters[i] = mk.Arc(&center, &xaxis, &yaxis, math.Pi, start, start+math.Pi/2)
	}

	return fill(ctx, cfg, "circle", quarters...)
}

func runSquare(ctx context.Context, cfg *Config) error {
	corners := []vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

	edges := make([]*nurbs.NurbsCurve, len(corners))
	for i := range corners {
		edge, err := mk.Line(&corners[i], &corners[(i+1)%len(corners)])
		if err != nil {
			return err
		}
		edges[i] = edge
	}

	return fill(ctx, cfg, "square", edges...)
}

// runPerforatedDisk rules the annulus between the outer and inner circles.
// The ring of small holes around r = 1.5 would need trimmed faces and is
// left out.
func runPerforatedDisk(ctx context.Context, cfg *Config) error {
	center, xaxis, yaxis := vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0}

	outer := mk.Circle(&center, &xaxis, &yaxis, 2)
	inner := mk.Circle(&center, &xaxis, &yaxis, 1)

	surface, err := nurbs.RuledSurface(outer, inner)
	if err != nil {
		return err
	}

	return writeSurfaces(ctx, cfg, "perforated_disk", surface)
}
