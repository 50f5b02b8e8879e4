package cell

import (
	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

// Cell represents one region of a NeighborGraph's partition: a center point
// (by index into the shared point slice) and the points it currently owns.
//
// Points and Distances are kept parallel and in lockstep: Distances[k] caches
// CompareDist(center, points[Points[k]]). Points[0]/Distances[0] always
// describe the farthest owned point, maintained by UpdateRadius — this lets
// PopFarthest and the two-hop neighbor discovery avoid rescanning every point.
type Cell struct {
	Center int // index into the shared point slice

	Points    []int     // indices of owned points (excludes Center)
	Distances []float64 // Distances[k] = CompareDist(center, points[Points[k]])
	Radius    float64   // true Dist(center, farthest owned point); 0 if empty

	Nbrs []int // indices of neighbor cells; always contains Self

	pts []point.Point
	m   metric.Metric
}

// New creates a cell centered at pts[centerIdx] with no owned points.
func New(centerIdx int, pts []point.Point, m metric.Metric) *Cell {
	return &Cell{
		Center: centerIdx,
		pts:    pts,
		m:      m,
	}
}

// Self is the index this cell occupies in the owning NeighborGraph's cell
// slice; it is assigned once by the caller after the cell is appended, and is
// used only to keep Nbrs reflexive (every cell is its own neighbor).
type Self = int

// SetSelf records this cell's own index and seeds Nbrs with it.
func (c *Cell) SetSelf(self Self) {
	c.Nbrs = append(c.Nbrs, self)
}

// CenterPoint returns the point this cell is centered on.
func (c *Cell) CenterPoint() point.Point {
	return c.pts[c.Center]
}

// Dist returns the true metric distance from this cell's center to pi.
func (c *Cell) Dist(pi int) float64 {
	return c.m.Dist(c.pts[c.Center], c.pts[pi])
}

// CompareDist returns the compare-distance from this cell's center to pi.
func (c *Cell) CompareDist(pi int) float64 {
	return c.m.CompareDist(c.pts[c.Center], c.pts[pi])
}

// CenterDist returns the true distance between two cells' centers.
func (c *Cell) CenterDist(other *Cell) float64 {
	return c.m.Dist(c.pts[c.Center], c.pts[other.Center])
}

// Size returns the number of points this cell owns (excluding its center).
func (c *Cell) Size() int {
	return len(c.Points)
}

// Add appends a point this cell now owns, with its already-known
// compare-distance to the center. Callers that have not precomputed the
// distance should use AddComputed instead.
func (c *Cell) Add(pi int, compareDist float64) {
	c.Points = append(c.Points, pi)
	c.Distances = append(c.Distances, compareDist)
}

// AddComputed appends pi, computing its compare-distance to the center.
func (c *Cell) AddComputed(pi int) {
	c.Add(pi, c.CompareDist(pi))
}

// UpdateRadius scans Distances for the farthest owned point, swaps it (and
// its cached distance) to index 0, and recomputes Radius as the true
// distance to that point. O(size). If the cell owns no points, Radius is 0.
func (c *Cell) UpdateRadius() {
	if len(c.Points) == 0 {
		c.Radius = 0

		return
	}

	farIdx := 0
	for i, d := range c.Distances {
		if d > c.Distances[farIdx] {
			farIdx = i
		}
	}
	c.Points[0], c.Points[farIdx] = c.Points[farIdx], c.Points[0]
	c.Distances[0], c.Distances[farIdx] = c.Distances[farIdx], c.Distances[0]

	c.Radius = c.Dist(c.Points[0])
}

// PopFarthest removes and returns the farthest owned point (always at
// Points[0]), restoring the invariant by moving the last element into its
// place and recomputing the radius. O(size).
func (c *Cell) PopFarthest() int {
	farthest := c.Points[0]
	last := len(c.Points) - 1
	c.Points[0] = c.Points[last]
	c.Distances[0] = c.Distances[last]
	c.Points = c.Points[:last]
	c.Distances = c.Distances[:last]
	c.UpdateRadius()

	return farthest
}

// RebalanceResult reports what happened when points were moved from one
// cell into another during NeighborGraph point location.
type RebalanceResult struct {
	Moved         bool // at least one point moved out of src
	FarthestMoved bool // src's farthest owned point (Points[0] at call time) moved
}

// Rebalance moves into dst every point p owned by src such that
// CompareDist(dst.center, p) < src's cached compare-distance to p, using a single-pass Lomuto-style partition over src's
// Points/Distances: points that stay are compacted toward the front as
// src is scanned once; points that move carry their freshly computed
// compare-distance to dst directly into dst's Distances, so it is never
// recomputed. The caller is responsible for invoking src.UpdateRadius()
// when FarthestMoved is true, and for leaving it alone otherwise (dst's
// own radius must be established afterward by the caller, once all
// rebalances into dst for this step are complete).
func Rebalance(dst, src *Cell) RebalanceResult {
	keep := 0
	result := RebalanceResult{}

	for i, p := range src.Points {
		distToSrc := src.Distances[i]
		distToDst := dst.CompareDist(p)

		if distToDst < distToSrc {
			dst.Add(p, distToDst)
			result.Moved = true
			if i == 0 {
				result.FarthestMoved = true
			}

			continue
		}

		src.Points[keep] = p
		src.Distances[keep] = distToSrc
		keep++
	}

	src.Points = src.Points[:keep]
	src.Distances = src.Distances[:keep]

	return result
}
