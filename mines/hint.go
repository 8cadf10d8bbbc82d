package mines

import (
	"sort"
	"strconv"
	"strings"
)

// HintAction says what a hint wants done with its cells.
type HintAction byte

const (
	HintOpen HintAction = 'O'
	HintFlag HintAction = 'F'
)

func (a HintAction) String() string {
	switch a {
	case HintOpen:
		return "open"
	case HintFlag:
		return "flag"
	}
	return "?"
}

// Hint is one deduced directive: open or flag the listed cells.
type Hint struct {
	Action HintAction
	Cells  []int
}

// recordSink collects classifications as hints without touching the grid,
// so a single engine pass sees a frozen board and finds everything that is
// provable right now.
type recordSink struct {
	accurate bool
	onlyOne  bool
	hints    []Hint
	seen     map[string]struct{}
	stop     bool
}

// hintKey identifies a directive for dedup: the same action over the same
// sorted cell set is the same hint, whichever rule produced it.
func hintKey(action HintAction, sorted []int) string {
	var b strings.Builder
	b.WriteByte(byte(action))
	for i, c := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

func (s *recordSink) record(action HintAction, cells, context []int) bool {
	payload := cells
	if !s.accurate {
		payload = context
	}
	if len(payload) == 0 {
		return false
	}

	sorted := make([]int, len(payload))
	copy(sorted, payload)
	sort.Ints(sorted)

	key := hintKey(action, sorted)
	if _, ok := s.seen[key]; !ok {
		s.seen[key] = struct{}{}
		s.hints = append(s.hints, Hint{Action: action, Cells: sorted})
		if s.onlyOne {
			s.stop = true
		}
	}
	return false // the grid never changes in hint mode
}

func (s *recordSink) openSafe(cells, context []int) bool {
	return s.record(HintOpen, cells, context)
}

func (s *recordSink) flagHazard(cells, context []int) bool {
	return s.record(HintFlag, cells, context)
}

func (s *recordSink) halted() bool { return s.stop }

// Hints runs the deduction engine read-only over the current board state
// and reports what it proved. Each hint is tagged open ('O') or flag ('F').
//
// With accurate set, a hint lists exactly the provable target cells, never
// a cell that is already open or flagged. Otherwise it lists the full
// implicated neighborhood of the constraint that produced it, flagged
// companions included. With onlyOne set only the first directive found is
// returned.
//
// An empty result is the normal answer for a board with nothing provable;
// it is not an error.
func (g *Grid) Hints(accurate, onlyOne bool) []Hint {
	sink := &recordSink{
		accurate: accurate,
		onlyOne:  onlyOne,
		seen:     make(map[string]struct{}),
	}
	d := &deducer{g: g, sink: sink}
	d.run()
	return sink.hints
}
