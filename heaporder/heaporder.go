package heaporder

import "github.com/siddharthsheth/greedytree/balltree"

type stackFrame struct {
	node        *balltree.Node
	parentIndex int
}

// Traversal flattens root in left-chain preorder: starting at the root, it
// emits each node and follows its left child directly, pushing the right
// child onto an explicit stack to resume later, and repeats once a leaf is
// reached and the stack is popped. Every node gets one entry (2n-1 for n
// leaves); the entries are not sorted by radius. gt.Build walks the tree
// with the same left-chain/right-child-stack shape.
func Traversal(root *balltree.Node) []Entry {
	if root == nil {
		return nil
	}

	var out []Entry
	stack := []stackFrame{{node: root, parentIndex: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		curr := top.node
		parentIdx := top.parentIndex
		for {
			idx := len(out)
			out = append(out, Entry{
				Center:      curr.Center,
				Radius:      curr.Radius,
				ParentIndex: parentIdx,
				LeftRadius:  curr.Radius,
			})
			if curr.IsLeaf() {
				break
			}

			stack = append(stack, stackFrame{node: curr.Right, parentIndex: idx})
			parentIdx = idx
			curr = curr.Left
		}
	}

	return out
}
