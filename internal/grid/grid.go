package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidShape is returned when an extent is not positive or the
	// cell count does not fit in an int.
	ErrInvalidShape = errors.New("invalid grid shape")
	// ErrShapeMismatch is returned when a plane or shift vector does not
	// match the extents of the grid it is applied to.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrIndexOutOfRange is returned for a plane index outside the axis-2 extent.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Plane is a 2-D slice of a Grid taken at a fixed axis-2 index.
// Rows run along axis 0, columns along axis 1.
type Plane[T any] [][]T

// Dims returns the row and column counts. A ragged plane reports the
// width of its first row.
func (p Plane[T]) Dims() (rows, cols int) {
	if len(p) == 0 {
		return 0, 0
	}
	return len(p), len(p[0])
}

// Rectangular reports whether every row has the same length.
func (p Plane[T]) Rectangular() bool {
	_, cols := p.Dims()
	for _, row := range p {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// Grid is a three-dimensional array with immutable extents.
// Element (i, j, k) lives at cells[(i*n1+j)*n2+k].
type Grid[T any] struct {
	n0, n1, n2 int
	cells      []T
}

// New allocates a zero-valued grid of shape (n0, n1, n2).
func New[T any](n0, n1, n2 int) (*Grid[T], error) {
	if n0 <= 0 || n1 <= 0 || n2 <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidShape, n0, n1, n2)
	}
	if n0 > math.MaxInt/n1 || n0*n1 > math.MaxInt/n2 {
		return nil, fmt.Errorf("%w: (%d, %d, %d) overflows cell count", ErrInvalidShape, n0, n1, n2)
	}
	return &Grid[T]{n0: n0, n1: n1, n2: n2, cells: make([]T, n0*n1*n2)}, nil
}

// Shape returns the extents along axes 0, 1 and 2.
func (g *Grid[T]) Shape() (int, int, int) { return g.n0, g.n1, g.n2 }

// InBounds reports whether (i, j, k) addresses a cell of g.
func (g *Grid[T]) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.n0 && j >= 0 && j < g.n1 && k >= 0 && k < g.n2
}

// Idx maps (i, j, k) to the flat storage index. It does not bounds-check:
// an out-of-range j or k aliases another cell. Use InBounds first when the
// indices are not already known to be valid.
func (g *Grid[T]) Idx(i, j, k int) int { return (i*g.n1+j)*g.n2 + k }

// At returns the element at (i, j, k). Unchecked, see Idx.
func (g *Grid[T]) At(i, j, k int) T { return g.cells[g.Idx(i, j, k)] }

// Set stores v at (i, j, k). Unchecked, see Idx.
func (g *Grid[T]) Set(i, j, k int, v T) { g.cells[g.Idx(i, j, k)] = v }

// Plane copies out g[:, :, k].
func (g *Grid[T]) Plane(k int) (Plane[T], error) {
	if k < 0 || k >= g.n2 {
		return nil, fmt.Errorf("%w: plane %d of %d", ErrIndexOutOfRange, k, g.n2)
	}
	p := make(Plane[T], g.n0)
	for i := range p {
		row := make([]T, g.n1)
		for j := range row {
			row[j] = g.cells[g.Idx(i, j, k)]
		}
		p[i] = row
	}
	return p, nil
}

// SetPlane overwrites g[:, :, k] with p. The grid is left untouched when
// p does not match the grid's axis-0 and axis-1 extents.
func (g *Grid[T]) SetPlane(k int, p Plane[T]) error {
	if k < 0 || k >= g.n2 {
		return fmt.Errorf("%w: plane %d of %d", ErrIndexOutOfRange, k, g.n2)
	}
	rows, cols := p.Dims()
	if rows != g.n0 || cols != g.n1 || !p.Rectangular() {
		return fmt.Errorf("%w: plane is %dx%d, grid expects %dx%d", ErrShapeMismatch, rows, cols, g.n0, g.n1)
	}
	for i, row := range p {
		for j, v := range row {
			g.cells[g.Idx(i, j, k)] = v
		}
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{n0: g.n0, n1: g.n1, n2: g.n2, cells: cells}
}

// Label formats the digit-concatenated label for (i, j, k), e.g. "123".
func Label(i, j, k int) string {
	return strconv.Itoa(i) + strconv.Itoa(j) + strconv.Itoa(k)
}

// Labeled builds a grid whose elements are their own Label.
func Labeled(n0, n1, n2 int) (*Grid[string], error) {
	g, err := New[string](n0, n1, n2)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n0; i++ {
		for j := 0; j < n1; j++ {
			for k := 0; k < n2; k++ {
				g.Set(i, j, k, Label(i, j, k))
			}
		}
	}
	return g, nil
}
