package nurbs

import (
	"math"

	. "github.com/alexozer/nurbs/internal"
)

// Insert a collection of knots on a curve
//
// Corresponds to Algorithm A5.4 (Piegl & Tiller)
//
// **params**
// + nondecreasing knots to insert, inside the curve domain
//
// **returns**
// + a new curve with the same shape over the refined knot vector
//
func (this *NurbsCurve) knotRefine(knotsToInsert KnotVec) *NurbsCurve {
	if len(knotsToInsert) == 0 {
		return this.clone()
	}

	degree := this.degree
	controlPoints := this.controlPoints
	knots := this.knots

	n := len(controlPoints) - 1
	m := n + degree + 1
	r := len(knotsToInsert) - 1
	a := knots.Span(degree, knotsToInsert[0])
	b := knots.Span(degree, knotsToInsert[r]) + 1

	controlPointsPost := make([]HomoPoint, n+r+2)
	knotsPost := make(KnotVec, m+r+2)

	// untouched control points
	copy(controlPointsPost, controlPoints[:a-degree+1])
	for i := b - 1; i <= n; i++ {
		controlPointsPost[i+r+1] = controlPoints[i]
	}

	// untouched knots
	copy(knotsPost, knots[:a+1])
	for i := b + degree; i <= m; i++ {
		knotsPost[i+r+1] = knots[i]
	}

	i := b + degree - 1
	k := b + degree + r

	for j := r; j >= 0; j-- {
		for knotsToInsert[j] <= knots[i] && i > a {
			controlPointsPost[k-degree-1] = controlPoints[i-degree-1]
			knotsPost[k] = knots[i]
			k--
			i--
		}

		controlPointsPost[k-degree-1] = controlPointsPost[k-degree]

		for l := 1; l <= degree; l++ {
			ind := k - degree + l
			alfa := knotsPost[k+l] - knotsToInsert[j]

			if math.Abs(alfa) < Epsilon {
				controlPointsPost[ind-1] = controlPointsPost[ind]
				continue
			}

			alfa /= knotsPost[k+l] - knots[i-degree+l]
			controlPointsPost[ind-1] = HomoInterpolated(&controlPointsPost[ind], &controlPointsPost[ind-1], alfa)
		}

		knotsPost[k] = knotsToInsert[j]
		k--
	}

	return &NurbsCurve{degree, controlPointsPost, knotsPost}
}

// Decompose the curve into Bezier segments by raising every interior knot
// to multiplicity degree + 1. Each segment keeps its own slice of the
// refined knot vector.
func (this *NurbsCurve) decomposeIntoBeziers() []*NurbsCurve {
	degree := this.degree
	reqMult := degree + 1

	var knotsToInsert KnotVec
	for _, knotmult := range this.knots.Multiplicities() {
		for i := knotmult.Mult; i < reqMult; i++ {
			knotsToInsert = append(knotsToInsert, knotmult.Knot)
		}
	}

	refined := this.knotRefine(knotsToInsert)
	knots, controlPoints := refined.knots, refined.controlPoints

	crvKnotLength := reqMult * 2
	crvs := make([]*NurbsCurve, 0, len(controlPoints)/reqMult)

	for i := 0; i < len(controlPoints); i += reqMult {
		kts := knots[i : i+crvKnotLength : i+crvKnotLength]
		pts := controlPoints[i : i+reqMult : i+reqMult]

		crvs = append(crvs, &NurbsCurve{degree, pts, kts})
	}

	return crvs
}

// elevateBezier raises the degree of a Bezier control polygon by one:
//
//	Q_i = i/(p+1) P_(i-1) + (1 - i/(p+1)) P_i
func elevateBezier(pts []HomoPoint) []HomoPoint {
	p := len(pts) - 1
	elevated := make([]HomoPoint, p+2)
	elevated[0] = pts[0]
	elevated[p+1] = pts[p]

	for i := 1; i <= p; i++ {
		alfa := float64(i) / float64(p+1)
		elevated[i] = HomoInterpolated(&pts[i], &pts[i-1], alfa)
	}

	return elevated
}

// elevateDegree represents the curve exactly with degree finalDegree. Every
// Bezier segment is elevated on its own and the segments are joined with
// interior knots of multiplicity finalDegree, which keeps the curve C0 at the
// joins regardless of its original continuity.
func (this *NurbsCurve) elevateDegree(finalDegree int) *NurbsCurve {
	if finalDegree <= this.degree {
		return this.clone()
	}

	beziers := this.decomposeIntoBeziers()
	controlPoints := make([]HomoPoint, 0, len(beziers)*finalDegree+1)
	knots := make(KnotVec, 0, (len(beziers)+1)*finalDegree+2)

	for i, bezier := range beziers {
		pts := bezier.controlPoints
		for d := this.degree; d < finalDegree; d++ {
			pts = elevateBezier(pts)
		}

		if i == 0 {
			controlPoints = append(controlPoints, pts...)
			knots = append(knots, bezier.knots[0])
		} else {
			controlPoints = append(controlPoints, pts[1:]...)
		}

		start := bezier.knots[0]
		for j := 0; j < finalDegree; j++ {
			knots = append(knots, start)
		}
	}

	end := beziers[len(beziers)-1].knots
	for j := 0; j <= finalDegree; j++ {
		knots = append(knots, end[len(end)-1])
	}

	return &NurbsCurve{finalDegree, controlPoints, knots}
}

// unifyCurves rewrites the curves over one shared knot vector on [0, 1] and
// one shared degree of at least minDegree, without changing their shapes.
func unifyCurves(curves []*NurbsCurve, minDegree int) []*NurbsCurve {
	maxDegree := minDegree
	for _, curve := range curves {
		if curve.degree > maxDegree {
			maxDegree = curve.degree
		}
	}

	// elevate all curves to the same degree
	unified := make([]*NurbsCurve, len(curves))
	for i, curve := range curves {
		normalized := &NurbsCurve{curve.degree, curve.controlPoints, curve.knots.Normalized()}
		unified[i] = normalized.elevateDegree(maxDegree)
	}

	// merge all of the knot vectors
	mergedKnotSet := Set(unified[0].knots)
	for _, curve := range unified[1:] {
		mergedKnotSet = mergedKnotSet.SortedUnion(Set(curve.knots))
	}

	// knot refinement on each curve
	for i, curve := range unified {
		rem := KnotVec(mergedKnotSet.SortedSub(Set(curve.knots)))
		unified[i] = curve.knotRefine(rem)
	}

	return unified
}
