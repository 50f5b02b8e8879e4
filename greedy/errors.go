package greedy

import "errors"

// Sentinel errors returned by Permutation.
var (
	// ErrNilMetric indicates that a nil metric.Metric was supplied.
	ErrNilMetric = errors.New("greedy: metric is nil")

	// ErrBadSeedIndex indicates that WithSeedIndex was given a negative
	// index, or that Permutation's seed index falls outside the input.
	ErrBadSeedIndex = errors.New("greedy: seed index out of range")
)
