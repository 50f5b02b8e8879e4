package point

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two points of different length are compared.
var ErrDimensionMismatch = errors.New("point: dimension mismatch")

// Point is an immutable vector of d float64 coordinates.
type Point struct {
	coords []float64
}

// New copies coords into a new Point. The caller's slice is never aliased.
func New(coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)

	return Point{coords: c}
}

// Dim returns the number of coordinates.
func (p Point) Dim() int {
	return len(p.coords)
}

// Coords returns a defensive copy of the underlying coordinates.
func (p Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)

	return c
}

// At returns the i-th coordinate.
func (p Point) At(i int) float64 {
	return p.coords[i]
}

// Equal reports whether p and q have identical coordinates, component-wise.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i, v := range p.coords {
		if v != q.coords[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	return New(p.coords...)
}

// CheckSameDim returns ErrDimensionMismatch if p and q have different dimensions.
func CheckSameDim(p, q Point) error {
	if p.Dim() != q.Dim() {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, p.Dim(), q.Dim())
	}

	return nil
}

// String renders p for debugging/test failure messages.
func (p Point) String() string {
	return fmt.Sprint(p.coords)
}
