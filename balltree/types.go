package balltree

import "github.com/siddharthsheth/greedytree/point"

// Node is a ball-tree node: a center point, a 2-approximate covering radius
// around Center (every point in its subtree lies within it; see
// ComputeRadii), the number of points in the subtree, and left/right
// children. A leaf has Left == nil == Right and
// Radius == 0.
type Node struct {
	Center point.Point
	Radius float64
	Size   int
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil
}
