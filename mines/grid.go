package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Grid is a minesweeper board: width*height cells in a flat row-major
// array, a fixed number of hazards among them. A Grid is not safe for
// concurrent use; every operation runs to completion on the caller's
// goroutine.
type Grid struct {
	width   int
	height  int
	hazards int
	cells   []Cell
}

// NewGrid creates a board with hazardCount hazards placed by a uniform
// shuffle driven by src. A nil src uses the process-wide random source.
func NewGrid(width, height, hazardCount int, src RandSource) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidArgument, width, height)
	}
	size := width * height
	if hazardCount < 0 || hazardCount > size {
		return nil, fmt.Errorf("%w: hazard count %d does not fit %d cells",
			ErrInvalidArgument, hazardCount, size)
	}
	if src == nil {
		src = defaultSource{}
	}

	g := &Grid{
		width:   width,
		height:  height,
		hazards: hazardCount,
		cells:   make([]Cell, size),
	}

	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < size-1; i++ {
		j := i + int(src.Float64()*float64(size-i))
		perm[i], perm[j] = perm[j], perm[i]
	}
	for _, i := range perm[:hazardCount] {
		g.cells[i].hazard = true
	}
	g.ResetAdjacentCounts()

	Log.WithFields(logrus.Fields{
		"width": width, "height": height, "hazards": hazardCount,
	}).Debug("grid created")
	return g, nil
}

// NewGridWithHazards creates a board with hazards at exactly the given
// indices. Duplicates collapse; the hazard count becomes the number of
// distinct indices.
func NewGridWithHazards(width, height int, hazardIndices []int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidArgument, width, height)
	}
	size := width * height
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, size),
	}
	for _, i := range hazardIndices {
		if i < 0 || i >= size {
			return nil, fmt.Errorf("%w: hazard index %d on a board of %d cells",
				ErrIndexOutOfRange, i, size)
		}
		if !g.cells[i].hazard {
			g.cells[i].hazard = true
			g.hazards++
		}
	}
	g.ResetAdjacentCounts()
	return g, nil
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) Height() int { return g.height }

// Size is the total cell count, width*height.
func (g *Grid) Size() int { return len(g.cells) }

// Hazards is the configured hazard count.
func (g *Grid) Hazards() int { return g.hazards }

// CellAt returns a snapshot of the cell at the given flat index.
func (g *Grid) CellAt(i int) (Cell, error) {
	if err := g.checkIndex(i); err != nil {
		return Cell{}, err
	}
	return g.cells[i], nil
}

func (g *Grid) checkIndex(i int) error {
	if i < 0 || i >= len(g.cells) {
		return fmt.Errorf("%w: %d on a board of %d cells",
			ErrIndexOutOfRange, i, len(g.cells))
	}
	return nil
}

// CoordsToIndex converts a (row, col) pair to a flat cell index.
func (g *Grid) CoordsToIndex(row, col int) int {
	return row*g.width + col
}

// IndexToCoords converts a flat cell index to its (row, col) pair.
func (g *Grid) IndexToCoords(i int) (row, col int) {
	return i / g.width, i % g.width
}

// neighborhood lists the in-bounds cells of the 3x3 block around i,
// optionally including i itself. Up to 8 neighbors depending on edge and
// corner position.
func (g *Grid) neighborhood(i int, includeSelf bool) []int {
	row, col := g.IndexToCoords(i)
	fromRow, toRow := max(0, row-1), min(row+1, g.height-1)
	fromCol, toCol := max(0, col-1), min(col+1, g.width-1)
	indices := make([]int, 0, 9)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if j := g.CoordsToIndex(r, c); j != i || includeSelf {
				indices = append(indices, j)
			}
		}
	}
	return indices
}

// Neighbors lists the up-to-8 in-bounds neighbors of cell i.
func (g *Grid) Neighbors(i int) []int {
	return g.neighborhood(i, false)
}

// ResetAdjacentCounts recomputes every cell's adjacent-hazard count from
// the current hazard placement. Must be called whenever placement changes.
func (g *Grid) ResetAdjacentCounts() {
	for i := range g.cells {
		g.cells[i].adjacent = 0
	}
	for i := range g.cells {
		if !g.cells[i].hazard {
			continue
		}
		for _, j := range g.Neighbors(i) {
			g.cells[j].adjacent++
		}
	}
}

// SetFlag marks or unmarks a closed cell. Flagging an open cell is a
// no-op: flags only make sense on unknown cells.
func (g *Grid) SetFlag(i int, value bool) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	if !g.cells[i].open {
		g.cells[i].flagged = value
	}
	return nil
}

// FlagCount is the number of flags currently placed.
func (g *Grid) FlagCount() (count int) {
	for i := range g.cells {
		if g.cells[i].flagged {
			count++
		}
	}
	return
}

// Restore closes every cell and removes every flag, returning the board to
// its untouched state while keeping the hazard placement.
func (g *Grid) Restore() {
	for i := range g.cells {
		g.cells[i].open = false
		g.cells[i].flagged = false
	}
}

// IsNew reports whether the board is untouched: nothing open, no flags.
func (g *Grid) IsNew() bool {
	for i := range g.cells {
		if g.cells[i].open || g.cells[i].flagged {
			return false
		}
	}
	return true
}

// IsLost reports whether a hazard has been revealed.
func (g *Grid) IsLost() bool {
	for i := range g.cells {
		if g.cells[i].open && g.cells[i].hazard {
			return true
		}
	}
	return false
}

// IsCleared reports a fully finished board: every safe cell open, every
// hazard flagged, no hazard revealed.
func (g *Grid) IsCleared() bool {
	for i := range g.cells {
		c := g.cells[i]
		if c.hazard {
			if c.open || !c.flagged {
				return false
			}
		} else if !c.open {
			return false
		}
	}
	return true
}

// IsOver reports whether the game has ended, in victory or defeat.
func (g *Grid) IsOver() bool {
	return g.IsLost() || g.IsCleared()
}

// IsGoingOn reports a started, unfinished game.
func (g *Grid) IsGoingOn() bool {
	return !g.IsNew() && !g.IsOver()
}

// cleared reports the deduction engine's clearance condition: every
// non-hazard cell open and no hazard cell open. Unlike [Grid.IsCleared] it
// does not require hazards to carry flags.
func (g *Grid) cleared() bool {
	for i := range g.cells {
		if g.cells[i].hazard == g.cells[i].open {
			return false
		}
	}
	return true
}

func (g *Grid) anyOpen() bool {
	for i := range g.cells {
		if g.cells[i].open {
			return true
		}
	}
	return false
}
