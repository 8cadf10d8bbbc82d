package mines

// deductionSink receives the engine's certain classifications. The engine
// itself never touches the grid; the solvability driver plugs in a sink
// that mutates, the hint driver one that only records.
type deductionSink interface {
	// openSafe and flagHazard receive provably-safe and provably-mined
	// cells together with the wider cell context that implied them. They
	// report whether the grid state changed.
	openSafe(cells, context []int) bool
	flagHazard(cells, context []int) bool

	// halted tells the engine to stop mid-pass.
	halted() bool
}

// deducer drives constraint deduction over a grid to a fixed point. Each
// pass rebuilds its working state from scratch: the set of relevant
// constraint cells and all derived groups depend on cell states that the
// previous pass may have changed.
type deducer struct {
	g    *Grid
	sink deductionSink
}

// run repeats passes until one changes nothing or the sink calls a halt.
func (d *deducer) run() {
	for pass := 1; d.pass(); pass++ {
		if d.sink.halted() {
			return
		}
		Log.WithField("pass", pass).Debug("deduction pass produced changes")
	}
}

// pass executes one full deduction round: direct deduction, subset-shift
// inference, disjoint-union inference and the global count closure.
// Reports whether any classification changed the grid; the caller then
// restarts with fresh state.
func (d *deducer) pass() bool {
	changed := false
	groups := newGroupSet()

	// Direct deduction. A number fully explained by flags frees its
	// unknown neighbors; a number equal to its closed-neighbor count
	// condemns them; anything strictly in between is partial knowledge
	// worth keeping as a group.
	for _, i := range d.relevantCells() {
		n, f, u := d.local(i)
		if len(u) == 0 {
			continue
		}
		switch k := n - f; {
		case k == 0:
			changed = d.emit(i, u, false) || changed
		case k == len(u):
			changed = d.emit(i, u, true) || changed
		case 0 < k && k < len(u):
			groups.add(newGroup(k, u))
		}
		if d.sink.halted() {
			return changed
		}
	}
	if changed {
		return true
	}

	if d.subsetShift(groups) {
		return true
	}
	if d.sink.halted() {
		return false
	}

	if d.disjointUnion(groups) {
		return true
	}
	if d.sink.halted() {
		return false
	}

	return d.globalClosure(groups)
}

// subsetShift derives new groups by subtracting a known group from a local
// constraint it is strictly contained in: with a group (k, S) and a
// constraint cell whose unknown neighborhood U strictly contains S, the
// remainder U\S holds exactly n-k-F hazards. Discovery loops in rounds
// until a round adds no group. A remainder count of zero or of the full
// remainder resolves immediately instead of being stored.
func (d *deducer) subsetShift(groups *groupSet) bool {
	changed := false
	for grew := true; grew; {
		grew = false
		for _, i := range d.relevantCells() {
			n, f, u := d.local(i)
			if len(u) == 0 {
				continue
			}
			for _, grp := range groups.all() {
				if len(grp.cells) >= len(u) || !isSubset(grp.cells, u) {
					continue
				}
				k := n - grp.count - f
				rem := subtract(u, grp.cells)
				if k < 0 || k > len(rem) {
					// only reachable through contradictory flags
					continue
				}
				switch {
				case k == 0:
					changed = d.emit(i, rem, false) || changed
				case k == len(rem):
					changed = d.emit(i, rem, true) || changed
				default:
					if groups.add(newGroup(k, rem)) {
						grew = true
					}
				}
				if d.sink.halted() || changed {
					return changed
				}
			}
		}
	}
	return changed
}

// disjointUnion sums, per constraint cell, all known groups that are
// pairwise disjoint subsets of its unknown neighborhood. If the summed
// count plus flags explains the cell's number, the neighbors outside the
// union are safe; if the number additionally requires every outside
// neighbor, they are all hazards.
func (d *deducer) disjointUnion(groups *groupSet) bool {
	changed := false
	for _, i := range d.relevantCells() {
		n, f, u := d.local(i)
		if len(u) == 0 {
			continue
		}
		sum := 0
		var covered []int
		for _, grp := range groups.all() {
			if !isSubset(grp.cells, u) || !disjoint(grp.cells, covered) {
				continue
			}
			sum += grp.count
			covered = append(covered, grp.cells...)
		}
		if len(covered) == 0 || len(covered) == len(u) {
			continue
		}
		outside := subtract(u, covered)
		if sum+f == n {
			changed = d.emit(i, outside, false) || changed
		} else if sum+f+len(outside) == n {
			changed = d.emit(i, outside, true) || changed
		}
		if d.sink.halted() || changed {
			return changed
		}
	}
	return changed
}

// globalClosure reasons over the whole board. Once the flag count reaches
// the hazard count every remaining unknown cell is safe; once the
// remaining hazards equal the remaining unknown cells, they are all
// hazards. Short of either, merging all pairwise-disjoint groups
// board-wide gives a lower bound on remaining hazards; when the bound
// meets the remaining hazard count exactly, every unknown cell outside
// the merged coverage is safe.
func (d *deducer) globalClosure(groups *groupSet) bool {
	unknown := d.unknownCells()
	if len(unknown) == 0 {
		return false
	}

	left := d.g.hazards - d.g.FlagCount()
	if left == 0 {
		return d.emitGlobal(unknown, false)
	}
	if left == len(unknown) {
		return d.emitGlobal(unknown, true)
	}

	sum := 0
	var covered []int
	for _, grp := range groups.all() {
		if !disjoint(grp.cells, covered) {
			continue
		}
		sum += grp.count
		covered = append(covered, grp.cells...)
	}
	if len(covered) == 0 || sum != left {
		return false
	}
	outside := subtract(unknown, covered)
	if len(outside) == 0 {
		return false
	}
	return d.emitGlobal(outside, false)
}

// relevantCells lists every open, nonzero-count cell that still has at
// least one closed neighbor. These carry all usable constraints.
func (d *deducer) relevantCells() (cells []int) {
	for i := range d.g.cells {
		c := d.g.cells[i]
		if !c.open || c.adjacent == 0 {
			continue
		}
		for _, j := range d.g.Neighbors(i) {
			if !d.g.cells[j].open {
				cells = append(cells, i)
				break
			}
		}
	}
	return
}

// local reads the constraint at cell i: its number n, the count f of
// flagged neighbors, and the set u of closed unflagged neighbors.
func (d *deducer) local(i int) (n, f int, u []int) {
	n = d.g.cells[i].adjacent
	for _, j := range d.g.Neighbors(i) {
		switch c := d.g.cells[j]; {
		case c.open:
		case c.flagged:
			f++
		default:
			u = append(u, j)
		}
	}
	return
}

// closedNeighbors is the full implicated neighborhood of a constraint
// cell: every closed neighbor, flagged or not.
func (d *deducer) closedNeighbors(i int) (cells []int) {
	for _, j := range d.g.Neighbors(i) {
		if !d.g.cells[j].open {
			cells = append(cells, j)
		}
	}
	return
}

// emit hands a classification implied by the constraint at cell i to the
// sink. hazard selects between flagging and opening.
func (d *deducer) emit(i int, cells []int, hazard bool) bool {
	if len(cells) == 0 {
		return false
	}
	context := d.closedNeighbors(i)
	if hazard {
		return d.sink.flagHazard(cells, context)
	}
	return d.sink.openSafe(cells, context)
}

// emitGlobal is emit for board-wide deductions, which have no single
// constraint cell: the context is the classified set itself.
func (d *deducer) emitGlobal(cells []int, hazard bool) bool {
	if len(cells) == 0 {
		return false
	}
	if hazard {
		return d.sink.flagHazard(cells, cells)
	}
	return d.sink.openSafe(cells, cells)
}

// unknownCells lists every closed, unflagged cell on the board.
func (d *deducer) unknownCells() (cells []int) {
	for i := range d.g.cells {
		if d.g.cells[i].closedUnflagged() {
			cells = append(cells, i)
		}
	}
	return
}
