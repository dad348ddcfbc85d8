package internal

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

type Ray struct {
	Origin, Dir vec3.T
}

// At returns Origin + t*Dir.
func (this Ray) At(t float64) vec3.T {
	offset := this.Dir.Scaled(t)
	return vec3.Add(&this.Origin, &offset)
}

// Intersect finds the parameters of the closest points of two rays. ok is
// false when the rays are parallel.
//
// Minimizing |o0 + u0*d0 - (o1 + u1*d1)| gives the normal equations
//
//	(d0.d0) u0 - (d0.d1) u1 = d0.(o1 - o0)
//	(d0.d1) u0 - (d1.d1) u1 = d1.(o1 - o0)
func (this Ray) Intersect(other Ray) (u0, u1 float64, ok bool) {
	d0d0 := vec3.Dot(&this.Dir, &this.Dir)
	d0d1 := vec3.Dot(&this.Dir, &other.Dir)
	d1d1 := vec3.Dot(&other.Dir, &other.Dir)

	det := d0d0*d1d1 - d0d1*d0d1
	if math.Abs(det) < Epsilon || d0d0 < Epsilon {
		return 0, 0, false
	}

	diff := vec3.Sub(&other.Origin, &this.Origin)
	u0, u1 = Mat2Solve(
		d0d0, -d0d1,
		d0d1, -d1d1,
		vec3.Dot(&this.Dir, &diff), vec3.Dot(&other.Dir, &diff),
	)

	return u0, u1, true
}

// Mat2Solve solves the 2x2 system
//
//	| a b | |x|   |f|
//	| c d | |y| = |s|
//
// by Cramer's rule. The determinant must be non-zero.
func Mat2Solve(a, b, c, d, f, s float64) (x, y float64) {
	det := a*d - b*c
	return (f*d - b*s) / det, (a*s - c*f) / det
}
