package gonzalez_test

import (
	"math/rand"
	"testing"

	"github.com/siddharthsheth/greedytree/gonzalez"
	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

func randomPoints(n, dim int, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	coords := make([]float64, dim)
	for i := range pts {
		for j := range coords {
			coords[j] = r.Float64()
		}
		pts[i] = point.New(coords...)
	}

	return pts
}

// BenchmarkPermutation is deliberately run on a small n (300, against 2000
// in greedy.BenchmarkPermutation): the O(n²) cost grows fast enough that
// this benchmark exists mainly to document the contrast with greedy's
// construction, not to scale it up.
func BenchmarkPermutation(b *testing.B) {
	pts := randomPoints(300, 4, 1)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = gonzalez.Permutation(pts, metric.L2{})
	}
}
