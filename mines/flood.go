package mines

import "github.com/gammazero/deque"

// EmptyZone computes the cascade region of a seed cell: the connected
// component of zero-count cells reachable from the seed, plus the ring of
// nonzero cells bordering it. These are exactly the cells that become
// revealed when a zero-count cell is cleared.
//
// By default flagged cells are left out of the closure entirely: they are
// neither returned nor traversed through. With includeFlagged set the
// closure ignores flags, which is what the deduction engine needs when it
// scans constraints.
//
// A seed with a nonzero count yields just the seed itself.
func (g *Grid) EmptyZone(seed int, includeFlagged bool) ([]int, error) {
	if err := g.checkIndex(seed); err != nil {
		return nil, err
	}
	if !includeFlagged && g.cells[seed].flagged {
		return nil, nil
	}

	seen := make(map[int]struct{}, 16)
	seen[seed] = struct{}{}
	zone := []int{seed}

	if g.cells[seed].adjacent != 0 {
		return zone, nil
	}

	var frontier deque.Deque[int]
	frontier.PushBack(seed)
	for frontier.Len() > 0 {
		i := frontier.PopFront()
		for _, j := range g.Neighbors(i) {
			if _, ok := seen[j]; ok {
				continue
			}
			if !includeFlagged && g.cells[j].flagged {
				continue
			}
			seen[j] = struct{}{}
			zone = append(zone, j)
			if g.cells[j].adjacent == 0 {
				frontier.PushBack(j)
			}
		}
	}
	return zone, nil
}
