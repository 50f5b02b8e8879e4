// Package neighborgraph implements the incremental Clarkson construction: a
// partition of points into cells connected by a packing-radius neighbor
// graph, built one cell at a time by popping the largest cell off a lazy
// max-heap, relocating points to the new cell (point location), discovering
// its candidate neighbors (two-hop traversal of its parent's neighbors), and
// pruning stale edges.
//
// Complexity: each AddCell touches O(1) cells in expectation under low-
// dimensional assumptions (the number of neighbors any cell accumulates is
// bounded by the packing property), making construction near-linear in n.
package neighborgraph

import "errors"

// ErrNilMetric is returned when a nil metric.Metric is supplied to New.
var ErrNilMetric = errors.New("neighborgraph: metric is nil")

// ErrSeedOutOfRange is returned when New is given a seed index outside
// [0, len(pts)) for a nonempty point set.
var ErrSeedOutOfRange = errors.New("neighborgraph: seed index out of range")

// NoCell is the sentinel cell index returned when the graph holds no cells
// or has been marked consumed via GetPermutation.
const NoCell = -1
