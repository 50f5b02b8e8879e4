// Package greedy drives the incremental Clarkson construction to completion,
// producing a greedy permutation of an input point set together with the
// predecessor of each point in that permutation.
//
// Complexity:
//
//   - Time:  near-linear under the low-dimensional packing assumption used
//     throughout package neighborgraph (each AddCell touches O(1) cells
//     in expectation).
//   - Space: O(n), dominated by the underlying NeighborGraph's cells.
//
// Options:
//
//   - WithSeedIndex: which input point seeds the root cell (default 0).
package greedy
