package dualtree

// nbrPair names a viability-graph neighbor on the other side (Idx) and the
// cached center-to-center distance that justified keeping the edge.
type nbrPair struct {
	idx  int
	dist float64
}
