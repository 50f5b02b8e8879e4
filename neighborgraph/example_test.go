package neighborgraph_test

import (
	"fmt"

	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/neighborgraph"
	"github.com/siddharthsheth/greedytree/point"
)

// ExampleNeighborGraph_AddCell builds the full cell partition for a tiny
// point set by popping the largest cell one at a time, mirroring how
// greedy.Permutation drives the graph internally.
func ExampleNeighborGraph_AddCell() {
	pts := []point.Point{
		point.New(0, 0),
		point.New(1, 2),
		point.New(5, 6),
		point.New(15, 0),
		point.New(8, 5),
	}
	g, err := neighborgraph.New(pts, metric.L1{}, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 1; i < len(pts); i++ {
		g.AddCell()
	}
	fmt.Println(g.Len())
	// Output: 5
}
