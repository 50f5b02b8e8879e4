// Package cell defines the Cell type: the unit of partition a NeighborGraph
// builds and maintains. A Cell owns a center point and a set of points
// closer to it than to any other live cell's center, cached with their
// compare-distance to the center so the radius and the farthest point can be
// recovered without rescanning (see UpdateRadius, PopFarthest).
//
// Rebalance implements the point-location step of Clarkson's incremental
// construction: moving points from one cell to a newer, closer one.
package cell
