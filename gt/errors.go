package gt

import "errors"

// ErrNilMetric is returned when a nil metric.Metric is passed to a search
// function that needs to compute distances.
var ErrNilMetric = errors.New("gt: metric must not be nil")

// ErrEmptyIndex is returned when a search is attempted against an Index
// built from zero points.
var ErrEmptyIndex = errors.New("gt: index has no points")
