package heaporder

import "github.com/siddharthsheth/greedytree/point"

// Entry is one node of a flattened ball-tree traversal.
//
// ParentIndex is the index, into the same Entry slice, of the entry for this
// node's parent in the ball tree (the root's ParentIndex is its own index,
// 0). LeftRadius holds the same value as Radius: when a dual-tree search
// consumes Entry i, it overwrites the radius it had on record for
// Entry[i].ParentIndex with Entry[i].LeftRadius.
type Entry struct {
	Center      point.Point
	Radius      float64
	ParentIndex int
	LeftRadius  float64
}
