package nurbs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func bezier(t *testing.T, pts ...vec3.T) *NurbsCurve {
	return mustCurve(t, len(pts)-1, pts, nil)
}

// coons4 returns the boundaries of the four sided fill demo, each running in
// the direction of increasing u or v.
func coons4(t *testing.T) (south, east, north, west *NurbsCurve) {
	south = bezier(t, vec3.T{0, 0, 0}, vec3.T{0.5, -0.2, 0.5}, vec3.T{1, 0, 0})
	north = bezier(t, vec3.T{0, 1, 0}, vec3.T{0.5, 0.8, 0.5}, vec3.T{1, 1, 0})
	west = bezier(t, vec3.T{0, 0, 0}, vec3.T{-0.2, 0.5, 0.5}, vec3.T{0, 1, 0})
	east = bezier(t, vec3.T{1, 0, 0}, vec3.T{1.2, 0.5, 0.5}, vec3.T{1, 1, 0})
	return
}

// assertEdges checks that the surface reproduces the boundaries along
// v = 0, u = 1, v = 1 and u = 0.
func assertEdges(t *testing.T, surface *NurbsSurface, south, east, north, west *NurbsCurve) {
	t.Helper()
	for _, s := range params(21) {
		assertNear(t, mustPoint(t, south, s), mustSurfacePoint(t, surface, s, 0), "south %v", s)
		assertNear(t, mustPoint(t, east, s), mustSurfacePoint(t, surface, 1, s), "east %v", s)
		assertNear(t, mustPoint(t, north, s), mustSurfacePoint(t, surface, s, 1), "north %v", s)
		assertNear(t, mustPoint(t, west, s), mustSurfacePoint(t, surface, 0, s), "west %v", s)
	}
}

func TestFillFourBoundaries(t *testing.T) {
	south, east, north, west := coons4(t)

	for _, style := range allStyles {
		t.Run(style.String(), func(t *testing.T) {
			surface, err := FillSurface([]*NurbsCurve{south, east, north, west}, style)
			require.NoError(t, err)
			assertEdges(t, surface, south, east, north, west)

			// the surface's own edge curves are the boundaries too
			edges := surface.Boundaries()
			for _, s := range params(11) {
				assertNear(t, mustPoint(t, south, s), mustPoint(t, edges[0], s))
				assertNear(t, mustPoint(t, north, s), mustPoint(t, edges[1], s))
				assertNear(t, mustPoint(t, west, s), mustPoint(t, edges[2], s))
				assertNear(t, mustPoint(t, east, s), mustPoint(t, edges[3], s))
			}
		})
	}
}

func TestFillAnyOrientation(t *testing.T) {
	south, east, north, west := coons4(t)

	// loop order with the first and third curves flipped
	surface, err := FillSurface([]*NurbsCurve{south.Reverse(), west, north.Reverse(), east}, CoonsStyle)
	require.NoError(t, err)

	// the loop now starts at (1, 0) and runs west first
	for _, s := range params(11) {
		assertNear(t, mustPoint(t, south, 1-s), mustSurfacePoint(t, surface, s, 0))
		assertNear(t, mustPoint(t, west, s), mustSurfacePoint(t, surface, 1, s))
		assertNear(t, mustPoint(t, north, 1-s), mustSurfacePoint(t, surface, s, 1))
		assertNear(t, mustPoint(t, east, s), mustSurfacePoint(t, surface, 0, s))
	}
}

func TestFillMixedDegrees(t *testing.T) {
	_, east, north, west := coons4(t)
	south := bezier(t, vec3.T{0, 0, 0}, vec3.T{0.3, 0.1, 0.2}, vec3.T{0.6, -0.1, -0.2}, vec3.T{1, 0, 0})

	// a clamped B-spline with interior knots on the north side
	north = mustCurve(t, 2, []vec3.T{{0, 1, 0}, {0.3, 0.9, 0.3}, {0.7, 1.1, -0.3}, {1, 1, 0}}, []float64{1, 2, 0.5, 1})

	for _, style := range allStyles {
		surface, err := FillSurface([]*NurbsCurve{south, east, north, west}, style)
		require.NoError(t, err)
		assertEdges(t, surface, south, east, north, west)
	}
}

func TestFillStretchIsFlatter(t *testing.T) {
	south, east, north, west := coons4(t)
	boundaries := []*NurbsCurve{south, east, north, west}

	height := func(style FillStyle) float64 {
		surface, err := FillSurface(boundaries, style)
		require.NoError(t, err)
		return mustSurfacePoint(t, surface, 0.5, 0.5)[2]
	}

	// each boundary bulges 0.25 at its middle
	assert.InDelta(t, 0.5, height(CoonsStyle), tolerance)
	assert.InDelta(t, 0.25, height(StretchStyle), tolerance)
	assert.InDelta(t, 0.5, height(CurvedStyle), tolerance)
}

func TestFillRationalDisk(t *testing.T) {
	w := math.Sqrt2 / 2
	arc := func(a, b, c vec3.T) *NurbsCurve {
		return mustCurve(t, 2, []vec3.T{a, b, c}, []float64{1, w, 1})
	}

	quarters := []*NurbsCurve{
		arc(vec3.T{1, 0, 0}, vec3.T{1, 1, 0}, vec3.T{0, 1, 0}),
		arc(vec3.T{0, 1, 0}, vec3.T{-1, 1, 0}, vec3.T{-1, 0, 0}),
		arc(vec3.T{-1, 0, 0}, vec3.T{-1, -1, 0}, vec3.T{0, -1, 0}),
		arc(vec3.T{0, -1, 0}, vec3.T{1, -1, 0}, vec3.T{1, 0, 0}),
	}

	for _, style := range allStyles {
		surface, err := FillSurface(quarters, style)
		require.NoError(t, err)

		assertEdges(t, surface, quarters[0], quarters[1], quarters[2].Reverse(), quarters[3].Reverse())

		grid, err := surface.SampleGrid(9, 9)
		require.NoError(t, err)
		for _, row := range grid {
			for _, sample := range row {
				assert.InDelta(t, 0, sample.Point[2], tolerance)
			}
		}

		// opposite deviations cancel at the middle of the patch
		assertNear(t, vec3.T{0, 0, 0}, mustSurfacePoint(t, surface, 0.5, 0.5), style.String())
	}
}

func TestFillTriangle(t *testing.T) {
	a, b, c := vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0.5, math.Sqrt(3) / 2, 0}
	ab, bc, ca := bezier(t, a, b), bezier(t, b, c), bezier(t, c, a)

	for _, style := range allStyles {
		surface, err := FillSurface([]*NurbsCurve{ab, bc, ca}, style)
		require.NoError(t, err)

		for _, s := range params(11) {
			assertNear(t, mustPoint(t, ab, s), mustSurfacePoint(t, surface, s, 0))
			assertNear(t, mustPoint(t, bc, s), mustSurfacePoint(t, surface, 1, s))
			assertNear(t, mustPoint(t, ca, 1-s), mustSurfacePoint(t, surface, s, 1))
			assertNear(t, a, mustSurfacePoint(t, surface, 0, s))
		}

		grid, err := surface.SampleGrid(11, 11)
		require.NoError(t, err)
		for _, row := range grid {
			for _, sample := range row {
				assertInTriangle(t, a, b, c, sample.Point)
			}
		}
	}
}

// assertInTriangle checks that pt is in the plane of abc and inside it.
func assertInTriangle(t *testing.T, a, b, c, pt vec3.T) {
	t.Helper()
	ab, ac, ap := vec3.Sub(&b, &a), vec3.Sub(&c, &a), vec3.Sub(&pt, &a)
	normal := vec3.Cross(&ab, &ac)
	area := normal.Length()

	assert.InDelta(t, 0, vec3.Dot(&normal, &ap)/area, tolerance, "%v off the plane", pt)

	edges := [][2]vec3.T{{a, b}, {b, c}, {c, a}}
	for _, edge := range edges {
		e, p := vec3.Sub(&edge[1], &edge[0]), vec3.Sub(&pt, &edge[0])
		cross := vec3.Cross(&e, &p)
		assert.GreaterOrEqual(t, vec3.Dot(&cross, &normal)/area, -tolerance, "%v outside edge %v", pt, edge)
	}
}

func TestFillErrors(t *testing.T) {
	south, east, north, west := coons4(t)

	_, err := FillSurface([]*NurbsCurve{south, east}, CoonsStyle)
	assert.ErrorIs(t, err, ErrGeometry)

	_, err = FillSurface([]*NurbsCurve{south, east, north, west, south}, CoonsStyle)
	assert.ErrorIs(t, err, ErrGeometry)

	_, err = FillSurface([]*NurbsCurve{south, east, nil, west}, CoonsStyle)
	assert.ErrorIs(t, err, ErrGeometry)

	// swapping two boundaries breaks the loop
	_, err = FillSurface([]*NurbsCurve{south, north, east, west}, CoonsStyle)
	assert.ErrorIs(t, err, ErrGeometry)

	gap := bezier(t, vec3.T{0, 0, 0}, vec3.T{0.5, -0.2, 0.5}, vec3.T{1, 0.001, 0})
	_, err = FillSurface([]*NurbsCurve{gap, east, north, west}, CoonsStyle)
	assert.ErrorIs(t, err, ErrGeometry)

	uneven := mustCurve(t, 2, []vec3.T{{0, 0, 0}, {0.5, -0.2, 0.5}, {1, 0, 0}}, []float64{1, 1, 2})
	_, err = FillSurface([]*NurbsCurve{uneven, east, north, west}, CoonsStyle)
	assert.ErrorIs(t, err, ErrGeometry)

	constant := mustCurve(t, 0, []vec3.T{{0, 0, 0}, {1, 0, 0}}, nil)
	_, err = FillSurface([]*NurbsCurve{constant, east, north, west}, CoonsStyle)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	_, err = FillSurface([]*NurbsCurve{south, east, north, west}, FillStyle(5))
	assert.Error(t, err)
}

func TestRuledSurface(t *testing.T) {
	upper := bezier(t, vec3.T{0, 0, 0}, vec3.T{0.33, 1, 0.5}, vec3.T{0.66, 1, -0.5}, vec3.T{1, 0, 0})
	lower := bezier(t, vec3.T{0, 0, 0}, vec3.T{0.33, -1, -0.5}, vec3.T{0.66, -1, 0.5}, vec3.T{1, 0, 0})

	surface, err := RuledSurface(upper, lower)
	require.NoError(t, err)
	assert.Equal(t, 1, surface.DegreeV())

	for _, u := range params(11) {
		p0, p1 := mustPoint(t, upper, u), mustPoint(t, lower, u)
		mid := vec3.Interpolate(&p0, &p1, 0.5)

		assertNear(t, p0, mustSurfacePoint(t, surface, u, 0))
		assertNear(t, p1, mustSurfacePoint(t, surface, u, 1))
		assertNear(t, mid, mustSurfacePoint(t, surface, u, 0.5))
	}
}

func TestRuledSurfaceMixedDegrees(t *testing.T) {
	line := bezier(t, vec3.T{0, 0, 1}, vec3.T{1, 0, 1})
	curve := mustCurve(t, 3, demoPoints(), []float64{1, 2, 1, 1, 3, 1, 1})

	surface, err := RuledSurface(line, curve)
	require.NoError(t, err)
	assert.Equal(t, 3, surface.DegreeU())

	for _, u := range params(11) {
		assertNear(t, mustPoint(t, line, u), mustSurfacePoint(t, surface, u, 0))
		assertNear(t, mustPoint(t, curve, u), mustSurfacePoint(t, surface, u, 1))
	}

	_, err = RuledSurface(line, nil)
	assert.ErrorIs(t, err, ErrGeometry)
}
