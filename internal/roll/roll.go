package roll

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/banshee-data/axisroll/internal/grid"
	"github.com/banshee-data/axisroll/internal/monitoring"
)

// ErrShapeMismatch is returned when a shift vector length does not match
// the extent of the axis it is paired with, or a plane is ragged.
var ErrShapeMismatch = grid.ErrShapeMismatch

// Lattice velocity components of the D2Q9 model, indexed by population.
var (
	d2q9X = [...]int{0, 0, 1, 1, 1, 0, -1, -1, -1}
	d2q9Y = [...]int{0, 1, 1, 0, -1, -1, -1, 0, 1}
)

// D2Q9X returns a fresh copy of the D2Q9 x velocities, the column shifts
// of the streaming step.
func D2Q9X() []int { return append([]int(nil), d2q9X[:]...) }

// D2Q9Y returns a fresh copy of the D2Q9 y velocities, the row shifts of
// the streaming step.
func D2Q9Y() []int { return append([]int(nil), d2q9Y[:]...) }

// Normalize maps any shift onto [0, n). n must be positive.
func Normalize(s, n int) int {
	m := s % n
	if m < 0 {
		m += n
	}
	return m
}

// Roll returns a copy of p with every row circularly shifted by s columns:
// out[r][c] = p[r][(c-s) mod cols]. Positive s moves elements toward higher
// column indices. p must be rectangular.
func Roll[T any](p grid.Plane[T], s int) grid.Plane[T] {
	_, cols := p.Dims()
	out := make(grid.Plane[T], len(p))
	if cols == 0 {
		for r := range p {
			out[r] = []T{}
		}
		return out
	}
	s = Normalize(s, cols)
	for r, row := range p {
		dst := make([]T, cols)
		// Two copies cover the wrap.
		copy(dst[s:], row[:cols-s])
		copy(dst[:s], row[cols-s:])
		out[r] = dst
	}
	return out
}

// RollRows returns a copy of p with its rows circularly shifted by s:
// out[r] = p[(r-s) mod rows]. This is a roll along axis 0 of the plane.
func RollRows[T any](p grid.Plane[T], s int) grid.Plane[T] {
	out := make(grid.Plane[T], len(p))
	if len(p) == 0 {
		return out
	}
	s = Normalize(s, len(p))
	for r, row := range p {
		out[(r+s)%len(p)] = append([]T(nil), row...)
	}
	return out
}

// RollChecked is Roll with a rectangularity check instead of a panic.
func RollChecked[T any](p grid.Plane[T], s int) (grid.Plane[T], error) {
	if !p.Rectangular() {
		return nil, fmt.Errorf("%w: ragged plane", ErrShapeMismatch)
	}
	return Roll(p, s), nil
}

func checkShifts[T any](g *grid.Grid[T], name string, shifts []int) error {
	if _, _, n2 := g.Shape(); len(shifts) != n2 {
		return fmt.Errorf("%w: %d %s for axis 2 of extent %d", ErrShapeMismatch, len(shifts), name, n2)
	}
	return nil
}

// planeFunc transforms the plane at axis-2 index k.
type planeFunc[T any] func(k int, p grid.Plane[T]) grid.Plane[T]

func columnRoll[T any](shifts []int) planeFunc[T] {
	return func(k int, p grid.Plane[T]) grid.Plane[T] { return Roll(p, shifts[k]) }
}

func latticeRoll[T any](xs, ys []int) planeFunc[T] {
	return func(k int, p grid.Plane[T]) grid.Plane[T] { return RollRows(Roll(p, xs[k]), ys[k]) }
}

func applyPlane[T any](g *grid.Grid[T], k int, fn planeFunc[T]) error {
	p, err := g.Plane(k)
	if err != nil {
		return err
	}
	if err := g.SetPlane(k, fn(k, p)); err != nil {
		return fmt.Errorf("roll plane %d: %w", k, err)
	}
	return nil
}

func applyAll[T any](g *grid.Grid[T], fn planeFunc[T]) error {
	n0, n1, n2 := g.Shape()
	for k := 0; k < n2; k++ {
		if err := applyPlane(g, k, fn); err != nil {
			return err
		}
	}
	monitoring.Logf("[roll] rolled %d planes of %dx%d", n2, n0, n1)
	return nil
}

func applyAllParallel[T any](ctx context.Context, g *grid.Grid[T], workers int, fn planeFunc[T]) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n0, n1, n2 := g.Shape()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for k := 0; k < n2; k++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return applyPlane(g, k, fn)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	monitoring.Logf("[roll] rolled %d planes of %dx%d on %d workers", n2, n0, n1, workers)
	return nil
}

// RollAxis replaces every g[:, :, k] with that plane rolled along axis 1
// by shifts[k], for k in increasing order. The shift vector is validated
// before any plane is touched, so a mismatch leaves g unchanged.
func RollAxis[T any](g *grid.Grid[T], shifts []int) error {
	if err := checkShifts(g, "shifts", shifts); err != nil {
		return err
	}
	return applyAll(g, columnRoll[T](shifts))
}

// RollAxisParallel has the same result as RollAxis but rolls planes
// concurrently on at most workers goroutines (GOMAXPROCS when workers <= 0).
// Each goroutine owns one axis-2 index, so writes never overlap. If ctx is
// cancelled part way through, some planes may already be rolled.
func RollAxisParallel[T any](ctx context.Context, g *grid.Grid[T], shifts []int, workers int) error {
	if err := checkShifts(g, "shifts", shifts); err != nil {
		return err
	}
	return applyAllParallel(ctx, g, workers, columnRoll[T](shifts))
}

// RollLattice is the full streaming step: each g[:, :, k] is rolled by
// xs[k] along axis 1 and then by ys[k] along axis 0. Both vectors are
// validated before any plane is touched.
func RollLattice[T any](g *grid.Grid[T], xs, ys []int) error {
	if err := checkShifts(g, "column shifts", xs); err != nil {
		return err
	}
	if err := checkShifts(g, "row shifts", ys); err != nil {
		return err
	}
	return applyAll(g, latticeRoll[T](xs, ys))
}

// RollLatticeParallel is RollLattice fanned out like RollAxisParallel.
func RollLatticeParallel[T any](ctx context.Context, g *grid.Grid[T], xs, ys []int, workers int) error {
	if err := checkShifts(g, "column shifts", xs); err != nil {
		return err
	}
	if err := checkShifts(g, "row shifts", ys); err != nil {
		return err
	}
	return applyAllParallel(ctx, g, workers, latticeRoll[T](xs, ys))
}
