package greedy

import (
	"errors"
	"fmt"

	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/neighborgraph"
	"github.com/siddharthsheth/greedytree/point"
)

// Permutation runs Clarkson's incremental construction to completion and
// returns the greedy permutation of pts together with each point's
// predecessor in that permutation.
//
// perm[i] is the i-th point chosen (perm[0] is pts[SeedIndex]); pred[i] is
// the index, into perm, of the cell perm[i] was carved out of, or
// NoPredecessor for i == 0.
//
// Returns ErrNilMetric if m is nil, ErrBadSeedIndex if the configured seed
// index falls outside [0, len(pts)) for nonempty input. Empty input returns
// two empty slices and a nil error.
func Permutation(pts []point.Point, m metric.Metric, opts ...Option) ([]point.Point, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := neighborgraph.New(pts, m, cfg.SeedIndex)
	if err != nil {
		switch {
		case errors.Is(err, neighborgraph.ErrNilMetric):
			return nil, nil, ErrNilMetric
		case errors.Is(err, neighborgraph.ErrSeedOutOfRange):
			return nil, nil, ErrBadSeedIndex
		default:
			return nil, nil, fmt.Errorf("greedy: %w", err)
		}
	}

	for g.Len() < len(pts) {
		g.AddCell()
	}

	perm := g.GetPermutation(true)
	pred := g.Predecessors()

	return perm, pred, nil
}
