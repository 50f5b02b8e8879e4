// Package metric defines the distance contract consumed by every query and
// construction routine in greedytree (Dist, CompareDist), and provides L1
// and L2 implementations over gonum's floats package.
//
// Complexity: both Dist and CompareDist are O(dim) per call.
package metric
