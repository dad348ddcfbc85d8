// Package export writes sampled curves, laws and tessellated surfaces to
// files a plotting tool or mesh viewer can open, and launches such a viewer.
package export
