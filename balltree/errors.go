package balltree

import "errors"

// Sentinel errors returned by Build and the search functions.
var (
	// ErrLengthMismatch indicates that perm and pred have different lengths.
	ErrLengthMismatch = errors.New("balltree: permutation and predecessor length mismatch")

	// ErrBadPredecessor indicates that some pred[i] (i > 0) does not refer to
	// an earlier position in perm, so the tree cannot be constructed.
	ErrBadPredecessor = errors.New("balltree: predecessor index out of range")

	// ErrEmptyTree indicates that a query was run against a nil tree.
	ErrEmptyTree = errors.New("balltree: tree is empty")

	// ErrNilMetric indicates that a nil metric.Metric was supplied.
	ErrNilMetric = errors.New("balltree: metric is nil")
)
