// Package nurbs builds and evaluates rational B-spline curves, surfaces and
// scalar laws over clamped knot vectors, and fills closed loops of three or
// four boundary curves with Coons style patches.
//
// Knot vectors come from ClampedKnotVector: end values repeated degree + 1
// times and evenly spaced simple interior knots on [0, 1]. Curves and
// surfaces are stored in homogeneous form and evaluated with the Cox-de Boor
// recurrence restricted to the non-zero basis functions.
//
// Curves, surfaces and laws may be read from several goroutines at once.
// Their Set methods are not synchronized: mutate from a single goroutine and
// never while another goroutine evaluates the same value.
package nurbs
