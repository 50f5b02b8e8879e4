package gonzalez

import (
	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

// Permutation runs the naive farthest-point traversal: at each step, the
// point farthest from its current nearest chosen center is selected next,
// and every remaining point's nearest-center distance is updated against the
// newly chosen center. Unlike greedy.Permutation, this never builds a cell
// partition: it is a direct O(n²) computation kept as an independent check
// on greedy's incremental result.
//
// perm[i] is the i-th point chosen (perm[0] is pts[SeedIndex]); pred[i] is
// the index, into perm, of the nearest already-chosen center when perm[i]
// was selected, or NoPredecessor for i == 0.
func Permutation(pts []point.Point, m metric.Metric, opts ...Option) ([]point.Point, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, nil, ErrNilMetric
	}

	n := len(pts)
	if n == 0 {
		return nil, nil, nil
	}
	if cfg.SeedIndex < 0 || cfg.SeedIndex >= n {
		return nil, nil, ErrBadSeedIndex
	}

	work := make([]point.Point, n)
	copy(work, pts)
	work[0], work[cfg.SeedIndex] = work[cfg.SeedIndex], work[0]

	pred := make([]int, n)
	predDist := make([]float64, n)
	pred[0] = NoPredecessor
	for i := 1; i < n; i++ {
		pred[i] = 0
		predDist[i] = m.Dist(work[i], work[0])
	}

	for i := 1; i < n; i++ {
		// a. find the point farthest from its current nearest center.
		maxDist := predDist[i]
		farI := i
		for j := i + 1; j < n; j++ {
			if predDist[j] > maxDist {
				farI = j
				maxDist = predDist[j]
			}
		}

		work[i], work[farI] = work[farI], work[i]
		pred[i], pred[farI] = pred[farI], pred[i]
		predDist[i], predDist[farI] = predDist[farI], predDist[i]

		// b. the newly chosen center may be nearer to a remaining point
		// than its current nearest center.
		for j := i + 1; j < n; j++ {
			d := m.Dist(work[j], work[i])
			if d < predDist[j] {
				predDist[j] = d
				pred[j] = i
			}
		}
	}

	return work, pred, nil
}
