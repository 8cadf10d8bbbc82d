package mines

import (
	"sort"
	"strconv"
	"strings"
)

// group is one piece of partial knowledge: exactly count of the cells in
// cells are hazards. cells holds closed, unflagged indices in sorted order
// so that equal groups have equal keys.
type group struct {
	count int
	cells []int
}

func newGroup(count int, cells []int) group {
	members := make([]int, len(cells))
	copy(members, cells)
	sort.Ints(members)
	return group{count: count, cells: members}
}

// key is the canonical identity of a group: its count plus the sorted
// member tuple. Used as a hash-map key instead of comparing groups by a
// serialized text form.
func (grp group) key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(grp.count))
	b.WriteByte(':')
	for i, c := range grp.cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// saturated groups carry no partial knowledge: every member is a hazard.
func (grp group) saturated() bool {
	return grp.count == len(grp.cells)
}

// groupSet is a deduplicated collection of groups. Insertion order is kept
// so that fixed-point iteration over discoveries stays deterministic.
type groupSet struct {
	byKey   map[string]struct{}
	ordered []group
}

func newGroupSet() *groupSet {
	return &groupSet{byKey: make(map[string]struct{})}
}

// add stores a group unless an identical one is already present. Reports
// whether the set grew.
func (gs *groupSet) add(grp group) bool {
	k := grp.key()
	if _, ok := gs.byKey[k]; ok {
		return false
	}
	gs.byKey[k] = struct{}{}
	gs.ordered = append(gs.ordered, grp)
	return true
}

// all returns the groups in insertion order. The slice is shared; callers
// only read it.
func (gs *groupSet) all() []group {
	return gs.ordered
}

func (gs *groupSet) len() int {
	return len(gs.ordered)
}
