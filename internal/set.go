package internal

import "math"

// Set is a sorted multiset of knot values. Values closer than Epsilon are
// considered equal.
type Set []float64

// SortedUnion merges two sorted multisets. A value repeated a times in this
// and b times in set appears max(a, b) times in the result, which is the
// knot vector both curves can be refined to.
func (this Set) SortedUnion(set Set) Set {
	merged := make(Set, 0, len(this)+len(set))

	var i, j int
	for i < len(this) && j < len(set) {
		diff := this[i] - set[j]

		switch {
		case math.Abs(diff) < Epsilon:
			merged = append(merged, this[i])
			i++
			j++
		case diff > 0:
			merged = append(merged, set[j])
			j++
		default:
			merged = append(merged, this[i])
			i++
		}
	}

	merged = append(merged, this[i:]...)
	return append(merged, set[j:]...)
}

// SortedSub removes the values of set from this. this must be a superset of
// set; the result holds the knots to insert to turn set into this.
func (this Set) SortedSub(set Set) Set {
	result := make(Set, 0, len(this))

	var j int
	for _, val := range this {
		if j < len(set) && math.Abs(val-set[j]) < Epsilon {
			j++
			continue
		}

		result = append(result, val)
	}

	return result
}
