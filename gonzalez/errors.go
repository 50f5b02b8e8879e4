package gonzalez

import "errors"

// Sentinel errors returned by Permutation.
var (
	// ErrNilMetric indicates that a nil metric.Metric was supplied.
	ErrNilMetric = errors.New("gonzalez: metric is nil")

	// ErrBadSeedIndex indicates that the seed index falls outside the input.
	ErrBadSeedIndex = errors.New("gonzalez: seed index out of range")
)
