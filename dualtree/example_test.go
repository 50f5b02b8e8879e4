package dualtree_test

import (
	"fmt"

	"github.com/siddharthsheth/greedytree/balltree"
	"github.com/siddharthsheth/greedytree/dualtree"
	"github.com/siddharthsheth/greedytree/greedy"
	"github.com/siddharthsheth/greedytree/heaporder"
	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

// ExampleAllRange finds, for a small set of query points, every point of a
// second set within a fixed radius.
func ExampleAllRange() {
	a := []point.Point{point.New(0, 0), point.New(1, 2), point.New(5, 6)}
	b := []point.Point{point.New(2, 1), point.New(6, 5), point.New(20, 20)}
	m := metric.L1{}

	build := func(pts []point.Point) []heaporder.Entry {
		perm, pred, _ := greedy.Permutation(pts, m)
		root, _ := balltree.Build(perm, pred)
		_ = balltree.ComputeRadii(root, m)
		return heaporder.Traversal(root)
	}

	gA, gB := build(a), build(b)
	viable, err := dualtree.AllRange(gA, gB, 5, m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	count := 0
	for _, nbrs := range viable {
		count += len(nbrs)
	}
	fmt.Println(count > 0)
	// Output: true
}
