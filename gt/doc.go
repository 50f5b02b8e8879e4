// Package gt encodes a ball tree into the flat GT representation used for
// cache-efficient approximate search: a preorder array of points (Points)
// paired with an auxiliary array (Aux) recording the radius and subtree size
// at every split along each point's ancestor chain. Search routines walk
// this representation lazily, splitting a chain only as far as the current
// query's pruning bound demands, rather than materializing the whole tree.
//
// Complexity:
//
//   - Build: O(n) time and space (one Points entry per point, one Aux entry
//     per internal node plus one leaf entry per chain, 2n-1 Aux entries total).
//   - ApxNN / ApxRange: no worst-case guarantee better than O(n), but under
//     the packing assumption each query expands only the splits its epsilon
//     slack requires, which is typically far fewer than the full tree.
package gt
