package gt

import (
	"container/heap"

	"github.com/siddharthsheth/greedytree/balltree"
	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

// Build flattens a ball tree into its GT encoding via the same left-chain
// stack traversal as heaporder.Traversal. Every stack-frame pop starts a new
// ancestor chain: Points gets one entry for the chain's first node, and Aux
// gets one entry per internal node along the chain's left spine followed by
// a {0, 1} entry for the leaf that ends the chain, so Aux holds 2n-1 entries
// for n points and every chain ends in a leaf entry.
func Build(root *balltree.Node) Index {
	if root == nil {
		return Index{}
	}

	idx := Index{
		Points: make([]GPoint, 0, root.Size),
		Aux:    make([]AuxEntry, 0, 2*root.Size-1),
	}

	stack := []*balltree.Node{root}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx.Points = append(idx.Points, GPoint{Center: curr.Center, AuxIndex: len(idx.Aux)})

		for curr.Left != nil {
			idx.Aux = append(idx.Aux, AuxEntry{Radius: curr.Radius, NumPts: curr.Size})
			stack = append(stack, curr.Right)
			curr = curr.Left
		}
		idx.Aux = append(idx.Aux, AuxEntry{Radius: 0, NumPts: 1})
	}

	return idx
}

// ApxRange returns the runs of idx.Points within rad of q, expanding a
// point's ancestor chain only as far as needed to either exclude its whole
// subtree, include it whole, or hit the eps-absorption bound: a subtree of
// radius at most eps*rad/2 is accepted without resolving it down to
// individual leaves.
func ApxRange(idx Index, q point.Point, rad float64, m metric.Metric, eps float64) ([]Range, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if len(idx.Points) == 0 {
		return nil, nil
	}

	var output []Range
	i := 0
	for i < len(idx.Points) {
		p := idx.Points[i]
		j := p.AuxIndex
		pDist := m.Dist(p.Center, q)
		for {
			a := idx.Aux[j]
			switch {
			case pDist > rad+a.Radius:
				i += a.NumPts
			case pDist <= rad-a.Radius || a.Radius <= eps*rad/2:
				output = append(output, Range{Start: i, NumPts: a.NumPts})
				i += a.NumPts
			default:
				j++
				continue
			}
			break
		}
	}

	return output, nil
}

// ApxRangePoints is ApxRange flattened to individual point indices into
// idx.Points.
func ApxRangePoints(idx Index, q point.Point, rad float64, m metric.Metric, eps float64) ([]int, error) {
	ranges, err := ApxRange(idx, q, rad, m, eps)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, r := range ranges {
		for k := r.Start; k < r.Start+r.NumPts; k++ {
			out = append(out, k)
		}
	}
	return out, nil
}

// ApxRangeDual finds, for every point in idxA, the runs of idxB within
// queryRadius, descending both indexes' ancestor chains in lockstep: at each
// step the side with the coarser (larger) remaining radius is the one that
// gets split next, mirroring dualtree.AllRange's viability-graph strategy but
// over the flat GT arrays instead of ball-tree traversals. output has one
// entry per idxA point; all points sharing an unresolved A-subtree share the
// same (possibly nil) result slice until that subtree is split further.
func ApxRangeDual(idxA, idxB Index, queryRadius float64, m metric.Metric, eps float64) ([][]Range, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if len(idxA.Points) == 0 || len(idxB.Points) == 0 {
		return nil, nil
	}

	type frame struct {
		aIdx     int
		nbrs     []edge
		absorbed []Range
	}

	rootAux := idxB.Aux[0]
	output := make([][]Range, len(idxA.Points))
	stack := []frame{{
		aIdx: 0,
		nbrs: []edge{{idx: 0, rad: rootAux.Radius, pts: rootAux.NumPts, splits: 0}},
	}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		aIdx := top.aIdx
		nbrs := top.nbrs
		absorbed := top.absorbed

		aPoint := idxA.Points[aIdx]
		aCtr := aPoint.Center
		aSplits := aPoint.AuxIndex
		aAux := idxA.Aux[aSplits]
		aRad, aPts := aAux.Radius, aAux.NumPts

		for i := range nbrs {
			nbrs[i].dist = m.Dist(aCtr, idxB.Points[nbrs[i].idx].Center)
		}

		var newNbrs []edge
		for len(nbrs) > 0 {
			for len(nbrs) > 0 {
				e := nbrs[len(nbrs)-1]
				nbrs = nbrs[:len(nbrs)-1]
				switch {
				case e.dist > queryRadius+aRad+e.rad:
					// pruned: whole B subtree is out of range of whole A subtree.
				case e.dist <= queryRadius-aRad-e.rad:
					absorbed = append(absorbed, Range{Start: e.idx, NumPts: e.pts})
				case e.rad > aRad:
					if e.rad <= eps*queryRadius/4 {
						absorbed = append(absorbed, Range{Start: e.idx, NumPts: e.pts})
						continue
					}
					e.splits++
					be := idxB.Aux[e.splits]
					e.rad, e.pts = be.Radius, be.NumPts
					bj := e.idx + e.pts
					bjPoint := idxB.Points[bj]
					bjAux := idxB.Aux[bjPoint.AuxIndex]
					bjDist := m.Dist(aCtr, bjPoint.Center)
					if bjDist <= queryRadius+aRad+bjAux.Radius {
						nbrs = append(nbrs, edge{idx: bj, dist: bjDist, rad: bjAux.Radius, pts: bjAux.NumPts, splits: bjPoint.AuxIndex})
					}
					nbrs = append(nbrs, e)
				default:
					newNbrs = append(newNbrs, e)
				}
			}
			nbrs, newNbrs = newNbrs, nbrs[:0]

			if len(nbrs) > 0 {
				aSplits++
				aAux = idxA.Aux[aSplits]
				aRad, aPts = aAux.Radius, aAux.NumPts
				stack = append(stack, frame{
					aIdx:     aIdx + aPts,
					nbrs:     append([]edge(nil), nbrs...),
					absorbed: append([]Range(nil), absorbed...),
				})
			}
		}

		for i := aIdx; i < aIdx+aPts; i++ {
			output[i] = absorbed
		}
	}

	return output, nil
}

// ApxRangeDualPoints flattens ApxRangeDual's per-point Range lists into
// individual point indices into idxB.Points.
func ApxRangeDualPoints(idxA, idxB Index, queryRadius float64, m metric.Metric, eps float64) ([][]int, error) {
	ranges, err := ApxRangeDual(idxA, idxB, queryRadius, m, eps)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(ranges))
	for i, rs := range ranges {
		var pts []int
		for _, r := range rs {
			for k := r.Start; k < r.Start+r.NumPts; k++ {
				pts = append(pts, k)
			}
		}
		out[i] = pts
	}
	return out, nil
}

// edgeHeap is a max-heap on rad, matching the priority order the C++
// EdgeComparator gives a std::priority_queue: the candidate with the
// largest unresolved radius is always examined first, since it is the one
// whose subtree extent is least certain.
type edgeHeap []edge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].rad > h[j].rad }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(edge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// ApxNN returns the index into idx.Points of an approximate nearest
// neighbor of q: the search maintains a max-heap of not-yet-fully-resolved
// candidate subtrees and only splits the one with the largest remaining
// radius, so a subtree is never explored once it can no longer beat the
// best distance found so far.
func ApxNN(idx Index, q point.Point, m metric.Metric) (int, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	if len(idx.Points) == 0 {
		return 0, ErrEmptyIndex
	}

	root := idx.Points[0]
	rootAux := idx.Aux[root.AuxIndex]
	nnDist := m.Dist(root.Center, q)
	nn := 0

	h := &edgeHeap{{idx: 0, dist: nnDist, rad: rootAux.Radius, pts: rootAux.NumPts, splits: root.AuxIndex}}
	heap.Init(h)

	for h.Len() > 0 {
		top := heap.Pop(h).(edge)
		if top.dist >= nnDist+top.rad {
			// This edge can no longer beat the best distance found so far,
			// but a smaller-radius edge further down the heap still might:
			// the heap orders by radius, not by the lower bound dist-rad,
			// so dropping this one edge and draining the rest is required.
			continue
		}

		top.splits++
		be := idx.Aux[top.splits]
		top.rad, top.pts = be.Radius, be.NumPts

		bi := top.idx + top.pts
		bPoint := idx.Points[bi]
		bDist := m.Dist(q, bPoint.Center)
		if bDist < nnDist {
			nnDist = bDist
			nn = bi
		}
		bAux := idx.Aux[bPoint.AuxIndex]

		heap.Push(h, edge{idx: bi, dist: bDist, rad: bAux.Radius, pts: bAux.NumPts, splits: bPoint.AuxIndex})
		heap.Push(h, top)
	}

	return nn, nil
}

// ApxNNDual returns, for every point in idxA, the index into idxB.Points of
// an approximate nearest neighbor, descending idxA's ancestor chains and
// maintaining a shared shrinking candidate set from idxB the same way
// ApxRangeDual does for range queries. eps trades accuracy for speed: a
// subtree of idxB is accepted as "close enough" once its own radius is
// small enough relative to the gap between the current best distance and
// twice A's remaining radius.
func ApxNNDual(idxA, idxB Index, m metric.Metric, eps float64) ([]int, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if len(idxA.Points) == 0 || len(idxB.Points) == 0 {
		return nil, nil
	}

	type frame struct {
		aIdx int
		nbrs []edge
	}

	rootAux := idxB.Aux[0]
	output := make([]int, len(idxA.Points))
	stack := []frame{{
		aIdx: 0,
		nbrs: []edge{{idx: 0, rad: rootAux.Radius, pts: rootAux.NumPts, splits: 0}},
	}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		aIdx := top.aIdx
		nbrs := edgeHeap(top.nbrs)

		aPoint := idxA.Points[aIdx]
		aCtr := aPoint.Center
		aSplits := aPoint.AuxIndex
		aAux := idxA.Aux[aSplits]
		aRad, aPts := aAux.Radius, aAux.NumPts

		nnDist := 0.0
		nn := 0
		first := true
		for i := range nbrs {
			nbrs[i].dist = m.Dist(aCtr, idxB.Points[nbrs[i].idx].Center)
			if first || nbrs[i].dist < nnDist {
				nnDist = nbrs[i].dist
				nn = nbrs[i].idx
				first = false
			}
		}
		heap.Init(&nbrs)

		for nbrs.Len() > 0 {
			e := nbrs[0]
			if e.rad > aRad {
				heap.Pop(&nbrs)
				if e.dist <= nnDist+2*aRad+e.rad {
					e.splits++
					be := idxB.Aux[e.splits]
					e.rad, e.pts = be.Radius, be.NumPts

					bj := e.idx + e.pts
					bjPoint := idxB.Points[bj]
					bjAux := idxB.Aux[bjPoint.AuxIndex]
					newDist := m.Dist(aCtr, bjPoint.Center)
					if newDist < nnDist {
						nnDist = newDist
						nn = bj
					}

					heap.Push(&nbrs, edge{idx: bj, dist: newDist, rad: bjAux.Radius, pts: bjAux.NumPts, splits: bjPoint.AuxIndex})
					heap.Push(&nbrs, e)
				}
			} else {
				if nnDist*eps >= (3+2*eps)*aRad {
					break
				}
				aSplits++
				aAux = idxA.Aux[aSplits]
				aRad, aPts = aAux.Radius, aAux.NumPts
				stack = append(stack, frame{
					aIdx: aIdx + aPts,
					nbrs: append([]edge(nil), []edge(nbrs)...),
				})
			}
		}

		for i := aIdx; i < aIdx+aPts; i++ {
			output[i] = nn
		}
	}

	return output, nil
}
