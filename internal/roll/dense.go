package roll

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RollDense returns a new matrix holding m with its columns circularly
// shifted by s, matching Roll on the same values. m must be non-empty.
func RollDense(m mat.Matrix, s int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	s = Normalize(s, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		out.SetCol((j+s)%c, col)
	}
	return out
}

// Stream rolls each population plane in place by its shift. planes[q] is
// the population moving with lattice velocity shifts[q].
func Stream(planes []*mat.Dense, shifts []int) error {
	if len(planes) != len(shifts) {
		return fmt.Errorf("%w: %d planes for %d shifts", ErrShapeMismatch, len(planes), len(shifts))
	}
	for q, p := range planes {
		if p == nil || p.IsEmpty() {
			return fmt.Errorf("%w: population %d is empty", ErrShapeMismatch, q)
		}
	}
	for q, p := range planes {
		p.Copy(RollDense(p, shifts[q]))
	}
	return nil
}
