// Package render prints grids to a console stream for visual inspection.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/banshee-data/axisroll/internal/grid"
)

// Grid writes g[:rows] in nested-bracket form, one axis-2 vector per line:
//
//	[[['000' '001']
//	  ['010' '011']]
//
//	 [['100' '101']
//	  ['110' '111']]]
//
// rows <= 0 or rows > N0 prints the whole grid.
func Grid(w io.Writer, g *grid.Grid[string], rows int) error {
	n0, n1, n2 := g.Shape()
	if rows <= 0 || rows > n0 {
		rows = n0
	}

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString("\n\n ")
		}
		b.WriteString("[")
		for j := 0; j < n1; j++ {
			if j > 0 {
				b.WriteString("\n  ")
			}
			b.WriteString("[")
			for k := 0; k < n2; k++ {
				if k > 0 {
					b.WriteString(" ")
				}
				fmt.Fprintf(&b, "'%s'", g.At(i, j, k))
			}
			b.WriteString("]")
		}
		b.WriteString("]")
	}
	b.WriteString("]\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Separator writes a line of width '=' characters.
func Separator(w io.Writer, width int) error {
	if width < 0 {
		width = 0
	}
	_, err := fmt.Fprintln(w, strings.Repeat("=", width))
	return err
}
