package metric

import (
	"gonum.org/v1/gonum/floats"

	"github.com/siddharthsheth/greedytree/point"
)

// Metric is the contract every other package in greedytree consumes (spec §6).
//
// Dist must be a true metric: nonnegative, symmetric, Dist(a, a) == 0, and must
// satisfy the triangle inequality. CompareDist must be a monotone transform of
// Dist — CompareDist(a,b) <= CompareDist(c,e) iff Dist(a,b) <= Dist(c,e) — used
// wherever only relative ordering matters, to let an implementation skip
// expensive transforms (e.g. a square root) that do not change ordering.
// Implementations are not required to validate the triangle inequality; a
// metric that violates it silently produces non-covering ball-tree radii
// (spec §7).
type Metric interface {
	Dist(a, b point.Point) float64
	CompareDist(a, b point.Point) float64
}

// L1 is the Manhattan (taxicab) metric. Its compare-distance is its own
// distance: the sum of absolute per-coordinate differences is already the
// monotone-cheapest representation, so there is nothing to save by deferring
// an expensive transform.
type L1 struct{}

// Dist returns the L1 (Manhattan) distance between a and b.
func (L1) Dist(a, b point.Point) float64 {
	return floats.Distance(a.Coords(), b.Coords(), 1)
}

// CompareDist returns the same value as Dist; kept distinct so callers can
// use the Metric interface uniformly regardless of which metric they hold.
func (L1) CompareDist(a, b point.Point) float64 {
	return floats.Distance(a.Coords(), b.Coords(), 1)
}

// L2 is the Euclidean metric. CompareDist skips the square root Dist pays
// for, since ordering by squared distance agrees with ordering by distance.
type L2 struct{}

// Dist returns the Euclidean distance between a and b.
func (L2) Dist(a, b point.Point) float64 {
	return floats.Distance(a.Coords(), b.Coords(), 2)
}

// CompareDist returns the squared Euclidean distance between a and b: a
// monotone transform of Dist that avoids the square root.
func (L2) CompareDist(a, b point.Point) float64 {
	ac, bc := a.Coords(), b.Coords()
	diff := make([]float64, len(ac))
	floats.SubTo(diff, ac, bc)

	return floats.Dot(diff, diff)
}
