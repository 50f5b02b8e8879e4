// Package balltree builds a binary ball tree from a greedy permutation and
// its predecessor slice (as produced by package greedy or package gonzalez),
// computes 2-approximate radii bottom-up, and answers Nearest, Farthest, and
// Range queries via a shared heap-guided branch-and-bound search.
//
// Complexity:
//
//   - Build: O(n) to wire the tree, O(n) to compute radii (each node visited
//     once via an explicit-stack post-order traversal).
//   - Search: each of Nearest/Farthest/Range drives the same generic
//     traversal, exploring nodes in order of decreasing radius and pruning
//     subtrees whose bound cannot improve the current answer; worst case
//     O(n) but near-logarithmic in practice under the packing assumption.
package balltree
