package make

import (
	"math"
	"testing"

	"github.com/alexozer/nurbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

const tolerance = 1e-9

func params(count int) []float64 {
	us := make([]float64, count)
	for i := range us {
		us[i] = float64(i) / float64(count-1)
	}
	return us
}

func point(t *testing.T, curve *nurbs.NurbsCurve, u float64) vec3.T {
	t.Helper()
	pt, err := curve.Point(u)
	require.NoError(t, err)
	return pt
}

func assertNear(t *testing.T, want, got vec3.T) {
	t.Helper()
	assert.InDelta(t, 0, vec3.Distance(&want, &got), tolerance, "want %v, got %v", want, got)
}

func TestPolyline(t *testing.T) {
	pts := []vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 3, 0}}
	curve, err := Polyline(pts)
	require.NoError(t, err)

	assert.Equal(t, 1, curve.Degree())
	diff := curve.FlatKnots()
	assert.InDeltaSlice(t, []float64{0, 0, 0.25, 1, 1}, diff, tolerance)

	assertNear(t, pts[0], point(t, curve, 0))
	assertNear(t, pts[1], point(t, curve, 0.25))
	assertNear(t, vec3.T{1, 1.5, 0}, point(t, curve, 0.625))
	assertNear(t, pts[2], point(t, curve, 1))

	_, err = Polyline(pts[:1])
	assert.ErrorIs(t, err, nurbs.ErrInvalidDegree)

	_, err = Polyline([]vec3.T{{1, 1, 1}, {1, 1, 1}})
	assert.ErrorIs(t, err, nurbs.ErrGeometry)
}

func TestLine(t *testing.T) {
	line, err := Line(&vec3.T{0, 0, 0}, &vec3.T{2, 4, 6})
	require.NoError(t, err)
	assertNear(t, vec3.T{1, 2, 3}, point(t, line, 0.5))
}

func TestCircle(t *testing.T) {
	center, xaxis, yaxis := vec3.T{1, 2, 3}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0}

	circle := Circle(&center, &xaxis, &yaxis, math.Pi)
	assert.Equal(t, 2, circle.Degree())
	assert.Equal(t, 9, circle.NumControlPoints())

	for _, u := range params(37) {
		pt := point(t, circle, u)
		offset := vec3.Sub(&pt, &center)
		assert.InDelta(t, math.Pi, offset.Length(), tolerance, "u = %v", u)
		assert.InDelta(t, 0, offset[2], tolerance)
	}

	assertNear(t, vec3.T{1 + math.Pi, 2, 3}, point(t, circle, 0))
	assertNear(t, vec3.T{1, 2 + math.Pi, 3}, point(t, circle, 0.25))
	assertNear(t, vec3.T{1 + math.Pi, 2, 3}, point(t, circle, 1))
}

func TestArc(t *testing.T) {
	center, xaxis, yaxis := vec3.T{0, 0, 0}, vec3.T{2, 0, 0}, vec3.T{0, 0, 1}

	for _, sweep := range []float64{math.Pi / 3, math.Pi, 1.2 * math.Pi, 1.9 * math.Pi} {
		arc := Arc(&center, &xaxis, &yaxis, 2, 0.5, 0.5+sweep)

		assertNear(t, vec3.T{2 * math.Cos(0.5), 0, 2 * math.Sin(0.5)}, point(t, arc, 0))
		assertNear(t, vec3.T{2 * math.Cos(0.5+sweep), 0, 2 * math.Sin(0.5+sweep)}, point(t, arc, 1))

		for _, u := range params(13) {
			pt := point(t, arc, u)
			assert.InDelta(t, 2, pt.Length(), tolerance)
		}
	}
}

func TestArcZeroSweep(t *testing.T) {
	center, xaxis, yaxis := vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0}

	var arc *nurbs.NurbsCurve
	require.NotPanics(t, func() { arc = Arc(&center, &xaxis, &yaxis, 1, 1, 1) })

	start := vec3.T{math.Cos(1), math.Sin(1), 0}
	for _, u := range params(5) {
		assertNear(t, start, point(t, arc, u))
	}
}

func TestEllipse(t *testing.T) {
	center, xaxis, yaxis := vec3.T{0, 0, 0}, vec3.T{3, 0, 0}, vec3.T{0, 1, 0}
	ellipse := Ellipse(&center, &xaxis, &yaxis)

	for _, u := range params(25) {
		pt := point(t, ellipse, u)
		assert.InDelta(t, 1, pt[0]*pt[0]/9+pt[1]*pt[1], 1e-9)
	}
}

func TestBezierCurve(t *testing.T) {
	pts := []vec3.T{{0, 0, 0}, {1, 2, 0}, {2, 0, 0}}
	curve, err := BezierCurve(pts, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, curve.Degree())
	assertNear(t, vec3.T{1, 1, 0}, point(t, curve, 0.5))

	_, err = BezierCurve(nil, nil)
	assert.ErrorIs(t, err, nurbs.ErrInvalidDegree)

	_, err = BezierCurve(pts, []float64{1, 0, 1})
	assert.ErrorIs(t, err, nurbs.ErrInvalidWeight)
}

func TestFourPointSurface(t *testing.T) {
	p1, p2, p3, p4 := vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{1, 1, 1}, vec3.T{0, 1, 0}

	for _, degree := range []int{1, 3} {
		surface, err := FourPointSurface(&p1, &p2, &p3, &p4, degree)
		require.NoError(t, err)

		for _, u := range params(5) {
			for _, v := range params(5) {
				pt, err := surface.Point(nurbs.UV{u, v})
				require.NoError(t, err)
				// bilinear through the corners
				assertNear(t, vec3.T{u, v, u * v}, pt)
			}
		}
	}

	_, err := FourPointSurface(&p1, &p2, &p3, &p4, 0)
	assert.ErrorIs(t, err, nurbs.ErrInvalidDegree)
}

func TestBezierSurface(t *testing.T) {
	grid := [][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 1}, {1, 1, 1}},
		{{2, 0, 0}, {2, 1, 0}},
	}
	surface, err := BezierSurface(grid, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, surface.DegreeU())
	assert.Equal(t, 1, surface.DegreeV())

	pt, err := surface.Point(nurbs.UV{0.5, 0.5})
	require.NoError(t, err)
	assertNear(t, vec3.T{1, 0.5, 0.5}, pt)

	_, err = BezierSurface(nil, nil)
	assert.ErrorIs(t, err, nurbs.ErrInvalidControlNet)
}

func TestCylindricalSurface(t *testing.T) {
	axis, xaxis, base := vec3.T{0, 0, 1}, vec3.T{1, 0, 0}, vec3.T{0, 0, 0}
	cylinder := CylindricalSurface(&axis, &xaxis, &base, 5, 2)

	for _, u := range params(5) {
		for _, v := range params(9) {
			pt, err := cylinder.Point(nurbs.UV{u, v})
			require.NoError(t, err)
			assert.InDelta(t, 2, math.Hypot(pt[0], pt[1]), tolerance)
			assert.InDelta(t, 5*(1-u), pt[2], tolerance)
		}
	}
}
