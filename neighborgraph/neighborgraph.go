package neighborgraph

import (
	"container/heap"

	"github.com/siddharthsheth/greedytree/cell"
	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

// NeighborGraph owns an append-only vector of cells, a lazy max-heap of
// (cell index, cached radius) pairs, and the scratch buffers used during
// AddCell. It is built incrementally, one cell per AddCell call, and
// produces the greedy permutation once exhausted (see GetPermutation).
type NeighborGraph struct {
	pts   []point.Point
	m     metric.Metric
	cells []*cell.Cell
	h     cellHeap

	// preds[i] is the cell index that cells[i] was carved out of; preds[0] is
	// NoPredecessor since the root cell has no parent.
	preds []int

	// scratch, cleared at the start of every AddCell; never exposed.
	affected   []int
	inAffected []bool

	consumed bool
}

// NoPredecessor marks the root cell in Predecessors, which has no parent.
const NoPredecessor = -1

// New builds a NeighborGraph over pts using m, seeding a single root cell
// centered at pts[seedIdx] that owns every other point. Callers that do not
// care which point seeds the permutation should pass 0 (spec §9: seed
// selection is fixed to the first input point by default; see DESIGN.md).
// Empty input yields a graph with no cells and HeapTopIndex() == NoCell.
func New(pts []point.Point, m metric.Metric, seedIdx int) (*NeighborGraph, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if len(pts) > 0 && (seedIdx < 0 || seedIdx >= len(pts)) {
		return nil, ErrSeedOutOfRange
	}

	g := &NeighborGraph{
		pts: pts,
		m:   m,
	}
	if len(pts) == 0 {
		return g, nil
	}

	root := cell.New(seedIdx, pts, m)
	for i := range pts {
		if i != seedIdx {
			root.AddComputed(i)
		}
	}
	root.UpdateRadius()

	g.cells = append(g.cells, root)
	root.SetSelf(0)
	g.preds = append(g.preds, NoPredecessor)
	heap.Push(&g.h, heapEntry{idx: 0, radius: root.Radius})
	g.inAffected = make([]bool, 1)

	return g, nil
}

// Len returns the number of cells built so far (1 after New on nonempty
// input, n after n-1 further AddCell calls).
func (g *NeighborGraph) Len() int {
	return len(g.cells)
}

// Cell exposes the i-th cell for inspection (used by the greedy driver and
// by tests asserting the invariants of spec §3 and §8).
func (g *NeighborGraph) Cell(i int) *cell.Cell {
	return g.cells[i]
}

// Consumed reports whether GetPermutation(true) has already been called.
func (g *NeighborGraph) Consumed() bool {
	return g.consumed
}

// HeapTopIndex returns the index of the cell with the current largest
// radius, lazily discarding stale heap entries (spec §4.1.4). Returns NoCell
// if the graph holds no cells or has been consumed.
func (g *NeighborGraph) HeapTopIndex() int {
	if g.consumed {
		return NoCell
	}

	for g.h.Len() > 0 {
		top := g.h[0]
		trueRadius := g.cells[top.idx].Radius
		if top.radius > trueRadius {
			heap.Pop(&g.h)
			heap.Push(&g.h, heapEntry{idx: top.idx, radius: trueRadius})

			continue
		}

		return top.idx
	}

	return NoCell
}

// isCloseEnough implements the packing-radius test of spec §4.1.2: both
// radii must be strictly positive, and the centers' distance must fall
// within the packing radius r_i + r_j + max(r_i, r_j).
func (g *NeighborGraph) isCloseEnough(i, j int) bool {
	ci, cj := g.cells[i], g.cells[j]
	ri, rj := ci.Radius, cj.Radius
	if ri <= 0 || rj <= 0 {
		return false
	}

	maxR := ri
	if rj > maxR {
		maxR = rj
	}

	return ci.CenterDist(cj) <= ri+rj+maxR
}

func (g *NeighborGraph) markAffected(i int) {
	if i >= len(g.inAffected) {
		grown := make([]bool, len(g.cells))
		copy(grown, g.inAffected)
		g.inAffected = grown
	}
	if g.inAffected[i] {
		return
	}
	g.inAffected[i] = true
	g.affected = append(g.affected, i)
}

func (g *NeighborGraph) clearAffected() {
	for _, i := range g.affected {
		g.inAffected[i] = false
	}
	g.affected = g.affected[:0]
}

// addEdge records a's and j's mutual neighborliness. Self-edges are never
// duplicated: a cell's self-membership in Nbrs is seeded once, at creation.
func (g *NeighborGraph) addEdge(a, j int) {
	if a == j {
		return
	}
	g.cells[a].Nbrs = append(g.cells[a].Nbrs, j)
	g.cells[j].Nbrs = append(g.cells[j].Nbrs, a)
}

// AddCell performs one step of Clarkson's incremental construction: pop the
// largest-radius cell, carve its farthest point into a new cell, relocate
// points from the parent and its neighbors into the new cell (point
// location), discover the new cell's candidate neighbors via a two-hop
// traversal of the affected cells' neighbor lists, and prune every affected
// cell's (and the new cell's) neighbor list down to those that still satisfy
// the packing-radius test. A no-op once the graph is empty or consumed.
func (g *NeighborGraph) AddCell() {
	if g.consumed || len(g.cells) == 0 {
		return
	}

	parIdx := g.HeapTopIndex()
	if parIdx == NoCell {
		return
	}
	par := g.cells[parIdx]

	newCenter := par.PopFarthest()
	a := cell.New(newCenter, g.pts, g.m)

	g.clearAffected()

	// Point location: rebalance the new cell against the parent and every
	// one of its current neighbors (par.Nbrs always contains parIdx itself).
	parNbrs := append([]int(nil), par.Nbrs...)
	for _, bIdx := range parNbrs {
		b := g.cells[bIdx]
		res := cell.Rebalance(a, b)
		if res.FarthestMoved {
			b.UpdateRadius()
		}
		if res.Moved {
			g.markAffected(bIdx)
		}
	}
	g.markAffected(parIdx)

	a.UpdateRadius()

	aIdx := len(g.cells)
	g.cells = append(g.cells, a)
	a.SetSelf(aIdx)
	g.preds = append(g.preds, parIdx)
	g.inAffected = append(g.inAffected, false)

	// Neighbor discovery: union, over affected cells, of their neighbors
	// that pass the packing-radius test against the new cell.
	candidates := make(map[int]struct{})
	for _, bIdx := range g.affected {
		for _, j := range g.cells[bIdx].Nbrs {
			if g.isCloseEnough(aIdx, j) {
				candidates[j] = struct{}{}
			}
		}
	}
	for j := range candidates {
		g.addEdge(aIdx, j)
	}

	// Edge pruning: one-sided, over every affected cell plus the new one.
	// Self is always kept regardless of is_close_enough (spec §3: nbrs
	// always contains self; a radius-0 cell would otherwise prune itself).
	toPrune := append(append([]int(nil), g.affected...), aIdx)
	for _, i := range toPrune {
		ci := g.cells[i]
		kept := ci.Nbrs[:0]
		for _, j := range ci.Nbrs {
			if j == i || g.isCloseEnough(i, j) {
				kept = append(kept, j)
			}
		}
		ci.Nbrs = kept
	}

	heap.Push(&g.h, heapEntry{idx: aIdx, radius: a.Radius})
}

// Predecessors returns, for each cell i, the index of the cell it was carved
// out of (NoPredecessor for the root cell at index 0). The slice is indexed
// the same way as GetPermutation's result: Predecessors()[i] names the
// permutation position of the cell that preceded cell i, not a point index.
func (g *NeighborGraph) Predecessors() []int {
	out := make([]int, len(g.preds))
	copy(out, g.preds)
	return out
}

// GetPermutation returns the greedy permutation built so far: the i-th
// element is the center point of the i-th cell created. If move is true, the
// graph is marked consumed and all further HeapTopIndex/AddCell calls become
// no-ops returning the sentinel; a consumed graph's GetPermutation returns
// nil.
func (g *NeighborGraph) GetPermutation(move bool) []point.Point {
	if g.consumed {
		return nil
	}

	out := make([]point.Point, len(g.cells))
	for i, c := range g.cells {
		out[i] = g.pts[c.Center]
	}

	if move {
		g.consumed = true
	}

	return out
}
