package renderer

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Cell is one laid-out screen cell of a line.
type Cell struct {
	// X is the cell's column on the line, before horizontal scrolling.
	X int
	// Rune is the primary rune drawn in the cell.
	Rune rune
	// Combining holds zero-width runes drawn on top of Rune.
	Combining []rune
	// Width is the number of screen columns the cell occupies.
	Width int
	// Tab marks an expanded tab, drawn as Width blanks.
	Tab bool
}

// RuneWidth returns the number of screen columns r occupies.
// Control characters and other non-printing runes report 0.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return uniseg.StringWidth(string(r))
}

// LayoutLine lays out a line of runes as cells. Tabs expand to the next
// multiple of tabWidth. Zero-width runes join the preceding cell, and
// control characters with nothing to join are shown as U+FFFD.
//
// The returned slice has one entry per cell, not per rune; use CellColumn
// to map a rune column to a screen column.
func LayoutLine(line []rune, tabWidth int) []Cell {
	if tabWidth < 1 {
		tabWidth = 1
	}
	cells := make([]Cell, 0, len(line))
	x := 0
	for _, r := range line {
		if r == '\t' {
			w := tabWidth - x%tabWidth
			cells = append(cells, Cell{X: x, Rune: ' ', Width: w, Tab: true})
			x += w
			continue
		}
		w := RuneWidth(r)
		if w == 0 {
			if len(cells) > 0 && !unicode.IsControl(r) {
				last := &cells[len(cells)-1]
				last.Combining = append(last.Combining, r)
				continue
			}
			r, w = unicode.ReplacementChar, 1
		}
		cells = append(cells, Cell{X: x, Rune: r, Width: w})
		x += w
	}
	return cells
}

// CellColumn returns the screen column at which rune column col of line
// starts. A column at or past the end of the line maps to the column just
// after the last cell.
func CellColumn(line []rune, col, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	x := 0
	for i, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			x += tabWidth - x%tabWidth
			continue
		}
		w := RuneWidth(r)
		if w == 0 && (i == 0 || unicode.IsControl(r)) {
			w = 1
		}
		x += w
	}
	return x
}

// LineWidth returns the number of screen columns line occupies.
func LineWidth(line []rune, tabWidth int) int {
	return CellColumn(line, len(line), tabWidth)
}
