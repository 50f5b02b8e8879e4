package greedy

// NoPredecessor marks the seed point in a permutation's predecessor slice: it
// has no predecessor since it was not carved out of any other cell.
const NoPredecessor = -1

// Options configures Permutation.
//
// SeedIndex – index, into the input point slice, of the point that seeds the
// root cell. Must lie in [0, len(pts)) for nonempty input. Default is 0.
type Options struct {
	SeedIndex int
}

// Option is a functional option for Permutation.
type Option func(*Options)

// WithSeedIndex sets which input point seeds the root cell. Panics if i < 0;
// Permutation itself rejects an out-of-range index once it knows len(pts).
func WithSeedIndex(i int) Option {
	if i < 0 {
		panic(ErrBadSeedIndex.Error())
	}

	return func(o *Options) {
		o.SeedIndex = i
	}
}

// DefaultOptions returns the default configuration: seed from the first
// input point.
func DefaultOptions() Options {
	return Options{SeedIndex: 0}
}
