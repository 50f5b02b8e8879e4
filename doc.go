// Package greedytree is a hierarchical spatial index library for Go, built
// around Clarkson's greedy permutation algorithm and the ball trees it
// produces.
//
// What is greedytree?
//
//	A library that builds a metric-space index incrementally, then exposes
//	it through three interchangeable shapes:
//
//	  • greedy/gonzalez — the ordered permutation and predecessor tree
//	  • balltree        — a pointer-linked binary ball tree over that order
//	  • heaporder/gt    — flat array encodings of the same tree for
//	    cache-efficient dual-tree queries
//
// Under the hood, everything is organized under focused subpackages:
//
//	point/        — immutable coordinate vectors
//	metric/       — the Dist/CompareDist contract, with L1 and L2 built in
//	cell/         — a single step of Clarkson's incremental construction
//	neighborgraph/ — the incremental driver maintaining the live permutation
//	greedy/       — the public Clarkson permutation API
//	gonzalez/     — a naive O(n^2) reference oracle for cross-checking greedy
//	balltree/     — the binary ball tree and its nearest/farthest/range search
//	heaporder/    — a flattened preorder traversal of a ball tree
//	dualtree/     — viability-graph range search between two traversals
//	gt/           — the flat-array GT index and its approximate queries
//
//	go get github.com/siddharthsheth/greedytree
package greedytree
