package neighborgraph

// heapEntry is a lazy (cell index, cached radius) pair. Entries may go
// stale as a cell's true radius shrinks; stale entries are discarded and
// re-pushed with the current radius the next time they reach the top (see
// heapTopIndex). cachedRadius >= the cell's true radius is the loop
// invariant: radii only shrink as points are moved away, so an entry can be
// stale-high but never stale-low.
type heapEntry struct {
	idx    int
	radius float64
}

// cellHeap is a max-heap over heapEntry, keyed on radius and tie-broken by
// ascending cell index, implementing container/heap.Interface.
type cellHeap []heapEntry

func (h cellHeap) Len() int { return len(h) }

func (h cellHeap) Less(i, j int) bool {
	if h[i].radius != h[j].radius {
		return h[i].radius > h[j].radius // max-heap: larger radius first
	}

	return h[i].idx < h[j].idx
}

func (h cellHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cellHeap) Push(x interface{}) {
	*h = append(*h, x.(heapEntry))
}

func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
