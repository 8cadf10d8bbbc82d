package mines

// applySink feeds the engine's classifications straight back into the
// grid: safe cells open (cascading as usual), hazardous cells get flags.
type applySink struct {
	g *Grid
}

func (s *applySink) openSafe(cells, _ []int) (changed bool) {
	for _, i := range cells {
		if s.g.cells[i].open {
			// an earlier cascade in the same batch got here first
			continue
		}
		if _, err := s.g.RevealWith(i, false); err != nil {
			panic(err)
		}
		changed = true
	}
	return
}

func (s *applySink) flagHazard(cells, _ []int) (changed bool) {
	for _, i := range cells {
		if s.g.cells[i].closedUnflagged() {
			s.g.cells[i].flagged = true
			changed = true
		}
	}
	return
}

func (s *applySink) halted() bool { return false }

// IsSolvableFrom reports whether the board can be fully cleared by pure
// deduction after revealing the cell at start, with no guessing. The check
// plays the board out destructively: it reveals start (relocating a
// first-click hazard only while the board is untouched, like [Grid.Reveal])
// and then applies every certain deduction until none remain. The board is
// solvable iff that leaves every safe cell open and every hazard closed.
//
// With restore set, all open and flag marks are wiped before returning,
// whatever the outcome, leaving the board as if the check never ran.
func (g *Grid) IsSolvableFrom(start int, restore bool) (bool, error) {
	if err := g.checkIndex(start); err != nil {
		return false, err
	}

	changed, err := g.RevealWith(start, !g.anyOpen())
	if err != nil {
		return false, err
	}

	solvable := false
	switch {
	case g.cells[start].open && g.cells[start].hazard:
		// revealed a hazard: lost, not cleared
	case len(changed) == 1 && g.cells[start].adjacent != 0:
		// a lone number with no cascade leaves the engine nothing to
		// work from
	default:
		d := &deducer{g: g, sink: &applySink{g: g}}
		d.run()
		solvable = g.cleared()
	}

	if restore {
		g.Restore()
	}
	return solvable, nil
}
