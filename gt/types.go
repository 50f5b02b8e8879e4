package gt

import "github.com/siddharthsheth/greedytree/point"

// AuxEntry records the radius and subtree size of one split along a point's
// ancestor chain. Aux[0..] for a chain is ordered root-to-leaf: coarser
// splits (larger radius) come first, the final entry in every chain is
// always the degenerate {Radius: 0, NumPts: 1} leaf sentinel.
type AuxEntry struct {
	Radius float64
	NumPts int
}

// GPoint is one entry of the flat point array: the point itself, plus the
// index into Aux where its ancestor chain begins.
type GPoint struct {
	Center   point.Point
	AuxIndex int
}

// Index is the flat GT encoding of a ball tree: Points holds one entry per
// point (the head of each left chain, in the order Build visits them), Aux
// holds each chain's splits followed by its leaf entry, 2n-1 entries in all. ApxNN and ApxRange consume an Index directly; Build
// produces one from a *balltree.Node.
type Index struct {
	Points []GPoint
	Aux    []AuxEntry
}

// Range names a contiguous, already-resolved run of Points: every point at
// index [Start, Start+NumPts) is within the query's answer.
type Range struct {
	Start  int
	NumPts int
}

// edge tracks a candidate neighbor while a search lazily expands it: idx
// names the neighbor's position in its own Index, rad/pts are its current
// (not yet fully split) radius and subtree size, splits is the Aux index of
// that radius/pts pair.
type edge struct {
	idx    int
	dist   float64
	rad    float64
	pts    int
	splits int
}
