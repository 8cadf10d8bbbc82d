package mines

import (
	"strconv"
	"strings"
)

// String renders the player's view of the board, one row per line: `-` for
// a closed cell, `*` for a flag, digits for open cells and `#` for a
// revealed hazard. Debug output only; nothing parses it back.
func (g *Grid) String() string {
	var b strings.Builder
	for r := range g.height {
		for c := range g.width {
			cell := g.cells[g.CoordsToIndex(r, c)]
			ch := "-"
			switch {
			case cell.open && cell.hazard:
				ch = "#"
			case cell.open:
				ch = strconv.Itoa(cell.adjacent)
			case cell.flagged:
				ch = "*"
			}
			b.WriteString(ch)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
