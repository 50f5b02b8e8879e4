// Package point is the shared, minimal vector type: immutable, component-wise
// equal, carrying no distance logic (see package metric for that).
package point
