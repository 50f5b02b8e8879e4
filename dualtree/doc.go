// Package dualtree answers an all-pairs range query between two ball trees
// at once: given heap-order traversals of A and B and a query radius, it
// builds a viability graph between the two trees' nodes and incrementally
// splits whichever side currently has the larger radius, pruning edges whose
// centers can no longer be within range and marking nodes finished once
// every remaining edge is already guaranteed to be within range.
//
// Complexity: each split processes one traversal entry and its current
// neighbor list; the number of live edges at any point is bounded by the
// packing property of the two trees, so total work stays near-linear in
// practice despite the worst-case quadratic edge count.
package dualtree
