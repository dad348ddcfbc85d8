package nurbs

import "errors"

// Errors returned by curve, surface and fill construction and queries. They
// are wrapped with detail; match them with errors.Is.
var (
	// ErrInvalidDegree reports a negative degree or a degree that exceeds the
	// number of control points minus one.
	ErrInvalidDegree = errors.New("nurbs: invalid degree")

	// ErrInvalidWeight reports a weight that is not strictly positive, or a
	// weight net whose shape differs from the control net.
	ErrInvalidWeight = errors.New("nurbs: invalid weight")

	// ErrInvalidKnots reports a caller supplied knot vector that is not
	// clamped, not increasing or of the wrong length.
	ErrInvalidKnots = errors.New("nurbs: invalid knot vector")

	// ErrInvalidControlNet reports an empty or ragged control grid.
	ErrInvalidControlNet = errors.New("nurbs: invalid control net")

	// ErrDomain reports an evaluation parameter outside the knot domain, or a
	// sample count below two.
	ErrDomain = errors.New("nurbs: parameter out of domain")

	// ErrIndex reports a control point or weight index out of range.
	ErrIndex = errors.New("nurbs: index out of range")

	// ErrGeometry reports fill boundaries that do not close into a loop, or a
	// boundary count other than 3 or 4.
	ErrGeometry = errors.New("nurbs: invalid boundary geometry")
)
