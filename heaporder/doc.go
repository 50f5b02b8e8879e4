// Package heaporder flattens a ball tree into a linear traversal consumed by
// package dualtree: each entry names a node's center and radius along with
// enough bookkeeping (ParentIndex, LeftRadius) for a dual-tree search to
// reconstruct, incrementally, which node a given entry split off from and
// what radius its parent chain shrinks to once that split happens.
//
// Complexity: O(n) time and space, one entry per ball-tree node, built via
// an explicit-stack traversal (no recursion).
package heaporder
