package dualtree

import "errors"

// ErrNilMetric is returned when a nil metric.Metric is supplied to AllRange.
var ErrNilMetric = errors.New("dualtree: metric is nil")
