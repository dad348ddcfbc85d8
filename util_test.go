package nurbs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

const tolerance = 1e-9

var approx = cmpopts.EquateApprox(0, tolerance)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got vec3.T, msgAndArgs ...any) {
	t.Helper()
	if vec3.Distance(&want, &got) > tolerance {
		assert.Fail(t, "points differ", "want %v, got %v %v", want, got, msgAndArgs)
	}
}

// params returns count evenly spaced values on [0, 1].
func params(count int) []float64 {
	us := make([]float64, count)
	for i := range us {
		us[i] = float64(i) / float64(count-1)
	}
	return us
}

func mustPoint(t *testing.T, curve *NurbsCurve, u float64) vec3.T {
	t.Helper()
	pt, err := curve.Point(u)
	require.NoError(t, err)
	return pt
}

func mustSurfacePoint(t *testing.T, surface *NurbsSurface, u, v float64) vec3.T {
	t.Helper()
	pt, err := surface.Point(UV{u, v})
	require.NoError(t, err)
	return pt
}

// demoPoints are the control points of the cubic curve demo.
func demoPoints() []vec3.T {
	return []vec3.T{
		{0.00, 0.0, 0.0},
		{0.25, -0.5, 0.0},
		{0.50, 0.0, 0.0},
		{0.75, 0.0, 0.0},
		{1.00, 0.0, 0.0},
		{0.50, 0.5, 0.0},
		{0.00, 0.5, 0.0},
	}
}

func mustCurve(t *testing.T, degree int, pts []vec3.T, weights []float64) *NurbsCurve {
	t.Helper()
	curve, err := NewClampedCurve(degree, pts, weights)
	require.NoError(t, err)
	return curve
}
