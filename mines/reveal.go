package mines

import "github.com/sirupsen/logrus"

// Reveal opens the cell at index i under the default first-click policy:
// hazard relocation is active only while no cell on the board is open yet.
// See [Grid.RevealWith] for the mechanics and the return value.
func (g *Grid) Reveal(i int) ([]int, error) {
	return g.RevealWith(i, !g.anyOpen())
}

// RevealWith opens the cell at index i.
//
// A closed cell is opened. If it holds a hazard and relocateHazard is set,
// the hazard moves to the first closed non-hazard cell (scanning from index
// 0, skipping i), all adjacent counts are recomputed, and the reveal
// proceeds as if the cell had been safe. Without relocation the hazard
// stays revealed; interpreting that as a loss is the caller's business.
//
// Opening a zero-count cell cascades through its empty zone. Revealing an
// already-open nonzero cell whose flagged-neighbor count matches its number
// opens every remaining closed unflagged neighbor (a chord), cascading into
// any zero-count cells among them.
//
// The returned slice holds every index whose open state changed.
func (g *Grid) RevealWith(i int, relocateHazard bool) ([]int, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}

	c := &g.cells[i]
	if !c.open {
		changed := g.openCell(i)
		if c.hazard {
			if !relocateHazard {
				return changed, nil
			}
			g.relocateHazard(i)
		}
		if c.adjacent == 0 {
			changed = append(changed, g.openZone(i)...)
		}
		return changed, nil
	}

	if c.adjacent == 0 || g.flaggedNeighborCount(i) != c.adjacent {
		return nil, nil
	}

	// Chord: the number is fully accounted for by flags, so every other
	// closed neighbor opens.
	var changed []int
	for _, j := range g.Neighbors(i) {
		n := &g.cells[j]
		if n.open || n.flagged {
			continue
		}
		changed = append(changed, g.openCell(j)...)
		if !n.hazard && n.adjacent == 0 {
			changed = append(changed, g.openZone(j)...)
		}
	}
	return changed, nil
}

// openCell opens a single closed cell, dropping any flag it carried.
func (g *Grid) openCell(i int) []int {
	c := &g.cells[i]
	if c.open {
		return nil
	}
	c.open = true
	c.flagged = false
	return []int{i}
}

// openZone flood-opens the empty zone of a zero-count cell and returns the
// indices it actually opened.
func (g *Grid) openZone(seed int) (changed []int) {
	zone, err := g.EmptyZone(seed, false)
	if err != nil {
		// seed comes from a validated index
		panic(err)
	}
	for _, j := range zone {
		changed = append(changed, g.openCell(j)...)
	}
	return
}

// relocateHazard moves the hazard at cell i to the first closed cell that
// holds no hazard, scanning from index 0 and skipping i, then recomputes
// all adjacent counts. With no destination available (every other cell
// already mined or open) the hazard stays put.
func (g *Grid) relocateHazard(i int) {
	for j := range g.cells {
		if j == i || g.cells[j].hazard || g.cells[j].open {
			continue
		}
		g.cells[j].hazard = true
		g.cells[i].hazard = false
		g.ResetAdjacentCounts()
		Log.WithFields(logrus.Fields{"from": i, "to": j}).
			Debug("first-click hazard relocated")
		return
	}
	Log.WithFields(logrus.Fields{"cell": i}).
		Warn("no destination for hazard relocation")
}

func (g *Grid) flaggedNeighborCount(i int) (count int) {
	for _, j := range g.Neighbors(i) {
		if g.cells[j].flagged {
			count++
		}
	}
	return
}
