package nurbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampedKnotVectorScenarios(t *testing.T) {
	tests := []struct {
		name             string
		numControlPoints int
		degree           int
		values           []float64
		mults            []int
	}{
		{"cubic seven poles", 7, 3, []float64{0, 0.25, 0.5, 0.75, 1}, []int{4, 1, 1, 1, 4}},
		{"cubic five poles", 5, 3, []float64{0, 0.5, 1}, []int{4, 1, 4}},
		{"bezier", 4, 3, []float64{0, 1}, []int{4, 4}},
		{"degree zero", 3, 0, []float64{0, 1.0 / 3, 2.0 / 3, 1}, []int{1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			knots, err := ClampedKnotVector(tt.numControlPoints, tt.degree)
			require.NoError(t, err)
			diff(t, tt.values, knots.Values(), approx)
			diff(t, tt.mults, knots.Mults())
		})
	}
}

func TestClampedKnotVectorProperties(t *testing.T) {
	for numControlPoints := 1; numControlPoints <= 12; numControlPoints++ {
		for degree := 0; degree < numControlPoints; degree++ {
			knots, err := ClampedKnotVector(numControlPoints, degree)
			require.NoError(t, err)

			assert.Equal(t, numControlPoints+degree+1, knots.Len())

			min, max := knots.Domain()
			assert.Equal(t, 0.0, min)
			assert.Equal(t, 1.0, max)

			mults := knots.Mults()
			assert.Equal(t, degree+1, mults[0])
			assert.Equal(t, degree+1, mults[len(mults)-1])
			for _, mult := range mults[1 : len(mults)-1] {
				assert.Equal(t, 1, mult)
			}

			assert.NoError(t, knots.check(numControlPoints, degree))
			assert.Len(t, knots.Flatten(), knots.Len())
		}
	}
}

func TestClampedKnotVectorErrors(t *testing.T) {
	_, err := ClampedKnotVector(4, -1)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	_, err = ClampedKnotVector(3, 3)
	assert.ErrorIs(t, err, ErrInvalidDegree)
}

func TestKnotVectorFlatten(t *testing.T) {
	knots, err := ClampedKnotVector(5, 3)
	require.NoError(t, err)
	diff(t, []float64{0, 0, 0, 0, 0.5, 1, 1, 1, 1}, knots.Flatten())
}

func TestKnotVectorCheck(t *testing.T) {
	tests := []struct {
		name  string
		knots KnotVector
	}{
		{"single value", KnotVector{{0, 6}}},
		{"decreasing", KnotVector{{0, 3}, {0.6, 1}, {0.5, 1}, {1, 3}}},
		{"repeated value", KnotVector{{0, 3}, {0.5, 1}, {0.5, 1}, {1, 3}}},
		{"unclamped", KnotVector{{0, 2}, {0.3, 1}, {0.6, 2}, {1, 3}}},
		{"too long", KnotVector{{0, 3}, {0.3, 1}, {0.6, 1}, {1, 3}}},
		{"multiplicity too high", KnotVector{{0, 3}, {0.5, 4}, {1, 3}}},
		{"zero multiplicity", KnotVector{{0, 3}, {0.5, 0}, {0.7, 1}, {1, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.knots.check(4, 2), ErrInvalidKnots)
		})
	}

	assert.NoError(t, KnotVector{{0, 3}, {0.3, 1}, {1, 3}}.check(4, 2))
}
