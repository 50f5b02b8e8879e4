package balltree

import (
	"container/heap"
	"math"

	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

// Build wires a ball tree from a greedy permutation and its predecessor
// slice: perm[0] seeds the root, and for i > 0, perm[i] is attached as the
// new right child of the leaf currently holding perm[pred[i]], with that
// leaf's old position becoming the new left child. Radii are left at zero;
// call ComputeRadii before running Nearest/Farthest/Range.
//
// pred[0] is ignored (the root has no predecessor); pred[i] for i > 0 must
// satisfy 0 <= pred[i] < i.
func Build(perm []point.Point, pred []int) (*Node, error) {
	if len(perm) != len(pred) {
		return nil, ErrLengthMismatch
	}
	if len(perm) == 0 {
		return nil, nil
	}

	root := &Node{Center: perm[0], Size: 1}
	leaf := make([]*Node, len(perm))
	leaf[0] = root

	for i := 1; i < len(perm); i++ {
		p := pred[i]
		if p < 0 || p >= i {
			return nil, ErrBadPredecessor
		}

		node := leaf[p]
		node.Left = &Node{Center: perm[p], Size: 1}
		node.Right = &Node{Center: perm[i], Size: 1}
		leaf[p] = node.Left
		leaf[i] = node.Right
	}

	return root, nil
}

// ComputeRadii computes a 2-approximate radius and subtree size for every
// internal node, bottom-up, via an explicit-stack post-order traversal (no
// recursion, so depth is bounded only by available memory, not the call
// stack). A leaf's radius is always 0 and its size is always 1.
func ComputeRadii(root *Node, m metric.Metric) error {
	if root == nil {
		return nil
	}
	if m == nil {
		return ErrNilMetric
	}

	type frame struct {
		node    *Node
		visited bool
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node == nil || top.node.IsLeaf() {
			continue
		}
		if top.visited {
			n := top.node
			rightReach := n.Dist(n.Right.Center, m) + n.Right.Radius
			n.Radius = n.Left.Radius
			if rightReach > n.Radius {
				n.Radius = rightReach
			}
			n.Size = n.Left.Size + n.Right.Size

			continue
		}

		stack = append(stack, frame{node: top.node, visited: true})
		stack = append(stack, frame{node: top.node.Right})
		stack = append(stack, frame{node: top.node.Left})
	}

	return nil
}

// Dist returns the distance from n's center to p under m.
func (n *Node) Dist(p point.Point, m metric.Metric) float64 {
	return m.Dist(n.Center, p)
}

// Points returns every point held in n's subtree, via an explicit-stack
// traversal (no recursion).
func (n *Node) Points() []point.Point {
	if n == nil {
		return nil
	}

	out := make([]point.Point, 0, n.Size)
	stack := []*Node{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if curr.IsLeaf() {
			out = append(out, curr.Center)
			continue
		}
		stack = append(stack, curr.Right, curr.Left)
	}

	return out
}

type nodeEntry struct {
	node *Node
	dist float64
}

type nodeHeap []nodeEntry

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	return h[i].node.Radius > h[j].node.Radius
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(nodeEntry)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// genericSearch drives Nearest, Farthest, and Range atop one shared
// branch-and-bound traversal: nodes are explored in order of decreasing
// radius via a max-heap (the largest balls are examined first, since they
// are the ones most likely to still contain a better answer or to be
// absorbable whole). update runs on every popped node, not just leaves, and
// reports whether that node is fully resolved — a leaf answer, or (for
// Range) an internal node whose whole subtree is provably inside the query
// ball — in which case its children are never pushed. isViable decides
// whether a not-yet-resolved node's subtree can still hold a better answer,
// pruning it without ever calling update.
func genericSearch(root *Node, query point.Point, m metric.Metric, update func(*Node, float64) bool, isViable func(*Node, float64) bool) {
	if root == nil {
		return
	}

	h := &nodeHeap{{node: root, dist: m.Dist(root.Center, query)}}
	for h.Len() > 0 {
		top := heap.Pop(h).(nodeEntry)
		if !isViable(top.node, top.dist) {
			continue
		}
		if resolved := update(top.node, top.dist); resolved || top.node.IsLeaf() {
			continue
		}

		l, r := top.node.Left, top.node.Right
		heap.Push(h, nodeEntry{node: l, dist: m.Dist(l.Center, query)})
		heap.Push(h, nodeEntry{node: r, dist: m.Dist(r.Center, query)})
	}
}

// Nearest returns the point in root's subtree closest to query.
func Nearest(root *Node, query point.Point, m metric.Metric) (point.Point, error) {
	if root == nil {
		return point.Point{}, ErrEmptyTree
	}
	if m == nil {
		return point.Point{}, ErrNilMetric
	}

	var (
		best     point.Point
		bestDist = math.Inf(1)
	)
	update := func(n *Node, d float64) bool {
		if !n.IsLeaf() {
			// n's center is a leaf copy that will be visited again at its
			// own leaf node (see Build); nothing to record here, keep
			// descending.
			return false
		}
		if d < bestDist {
			bestDist = d
			best = n.Center
		}
		return true
	}
	isViable := func(n *Node, d float64) bool {
		return d-n.Radius < bestDist
	}

	genericSearch(root, query, m, update, isViable)

	return best, nil
}

// Farthest returns the point in root's subtree farthest from query.
func Farthest(root *Node, query point.Point, m metric.Metric) (point.Point, error) {
	if root == nil {
		return point.Point{}, ErrEmptyTree
	}
	if m == nil {
		return point.Point{}, ErrNilMetric
	}

	var (
		best     point.Point
		bestDist = math.Inf(-1)
	)
	update := func(n *Node, d float64) bool {
		if !n.IsLeaf() {
			return false
		}
		if d > bestDist {
			bestDist = d
			best = n.Center
		}
		return true
	}
	isViable := func(n *Node, d float64) bool {
		return d+n.Radius > bestDist
	}

	genericSearch(root, query, m, update, isViable)

	return best, nil
}

// Range returns subtrees of root that lie inside the ball of radius around
// query: a node is returned when its center's distance to query plus its
// 2-approximate radius is at most radius (possibly a single leaf), and its
// descendants are then not visited, so no returned node's ancestor is also
// returned. A subtree whose points all lie in the ball but whose radius
// bound overshoots it comes back as several smaller subtrees. Call
// (*Node).Points on each result to flatten to the covered points.
func Range(root *Node, query point.Point, radius float64, m metric.Metric) ([]*Node, error) {
	if root == nil {
		return nil, ErrEmptyTree
	}
	if m == nil {
		return nil, ErrNilMetric
	}

	var out []*Node
	update := func(n *Node, d float64) bool {
		if d+n.Radius <= radius {
			out = append(out, n)
			return true
		}
		return false
	}
	isViable := func(n *Node, d float64) bool {
		return d-n.Radius <= radius
	}

	genericSearch(root, query, m, update, isViable)

	return out, nil
}
