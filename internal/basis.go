package internal

// Basis finds the knot span holding u and the degree + 1 B-spline basis
// functions that are non-zero there. values[i] weighs control point
// span - degree + i.
func (this KnotVec) Basis(degree int, u float64) (span int, values []float64) {
	span = this.Span(degree, u)
	return span, this.BasisInSpan(span, degree, u)
}

// BasisInSpan evaluates the non-zero basis functions of a known span with the
// Cox-de Boor recurrence, raising the degree one step at a time in place.
// Quotients with a zero-length knot interval count as zero.
func (this KnotVec) BasisInSpan(span, degree int, u float64) []float64 {
	values := make([]float64, degree+1)
	values[0] = 1

	for k := 1; k <= degree; k++ {
		// values[0..k-1] hold N(span-k+1+m, k-1); overwrite from the top so
		// every step still reads the lower degree
		for i := k; i >= 0; i-- {
			first := span - k + i
			var v float64

			if i > 0 {
				if width := this[first+k] - this[first]; width > 0 {
					v += (u - this[first]) / width * values[i-1]
				}
			}
			if i < k {
				if width := this[first+k+1] - this[first+1]; width > 0 {
					v += (this[first+k+1] - u) / width * values[i]
				}
			}

			values[i] = v
		}
	}

	return values
}
