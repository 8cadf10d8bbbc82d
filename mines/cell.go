package mines

// Cell is one square of the board. Accessors return snapshots; all
// mutation goes through Grid methods so the adjacency invariant stays
// intact.
type Cell struct {
	hazard   bool
	open     bool
	flagged  bool
	adjacent int
}

func (c Cell) Hazard() bool { return c.hazard }

func (c Cell) Open() bool { return c.open }

func (c Cell) Flagged() bool { return c.flagged }

// Adjacent is the number of hazards among the cell's up-to-8 neighbors.
func (c Cell) Adjacent() int { return c.adjacent }

// closedUnflagged reports whether the cell is still unknown to the player:
// neither opened nor marked with a flag.
func (c Cell) closedUnflagged() bool {
	return !c.open && !c.flagged
}
