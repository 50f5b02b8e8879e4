// Package gonzalez implements the naive O(n²) farthest-point traversal as an
// independent test oracle for package greedy's incremental construction: both
// produce a (permutation, predecessor) pair from the same seed, and on
// inputs where no two candidate distances tie the two select the same points
// in the same order even though gonzalez never builds a NeighborGraph. Where
// distances tie, the two may break the tie differently.
//
// Complexity:
//
//   - Time:  O(n²) — for each of the n-1 non-seed points, a full linear scan
//     finds the farthest-from-its-predecessor point, then a second linear
//     scan updates every remaining point's predecessor.
//   - Space: O(n)
package gonzalez
