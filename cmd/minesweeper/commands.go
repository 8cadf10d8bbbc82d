package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/noguess-games/minesweeper/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type newParams struct {
	Preset  string `schema:"preset"`
	Width   int    `schema:"width"`
	Height  int    `schema:"height"`
	Hazards int    `schema:"hazards"`
}

type cellParams struct {
	Cell int `schema:"cell,required"`
}

type hintParams struct {
	All  bool `schema:"all"`
	Wide bool `schema:"wide"`
}

type solvableParams struct {
	Cell int  `schema:"cell,required"`
	Keep bool `schema:"keep"`
}

// session is one interactive game. Commands take key=value arguments,
// decoded the same way a query string would be.
type session struct {
	grid *mines.Grid
}

func (s *session) printUsage() {
	fmt.Println(`commands:
  new [preset=beginner|intermediate|expert] [width=W height=H hazards=N]
  open cell=I          reveal a cell
  flag cell=I          place a flag
  unflag cell=I        remove a flag
  hint [all=true] [wide=true]
  solvable cell=I [keep=true]
  show                 print the board
  quit`)
}

func argValues(args []string) (url.Values, error) {
	values := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("malformed argument %q, want key=value", arg)
		}
		values.Set(key, value)
	}
	return values, nil
}

// execute runs one command line. Reports whether the session should end.
func (s *session) execute(line string) bool {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return false
	}

	verb, args := fields[0], fields[1:]
	if verb == "quit" || verb == "exit" {
		return true
	}

	values, err := argValues(args)
	if err != nil {
		log.Error(err)
		return false
	}

	switch verb {
	case "new":
		s.cmdNew(values)
	case "open":
		s.cmdOpen(values)
	case "flag":
		s.cmdFlag(values, true)
	case "unflag":
		s.cmdFlag(values, false)
	case "hint":
		s.cmdHint(values)
	case "solvable":
		s.cmdSolvable(values)
	case "show":
		s.show()
	case "help":
		s.printUsage()
	default:
		log.Errorf("unknown command %q", verb)
	}
	return false
}

func (s *session) cmdNew(values url.Values) {
	params := newParams{Preset: "beginner"}
	if err := decoder.Decode(&params, values); err != nil {
		log.Error("bad arguments: ", err)
		return
	}
	if params.Width == 0 || params.Height == 0 {
		preset, ok := presets[params.Preset]
		if !ok {
			log.Errorf("unknown preset %q", params.Preset)
			return
		}
		params.Width = preset.Width
		params.Height = preset.Height
		params.Hazards = preset.Hazards
	}

	grid, err := mines.NewGrid(params.Width, params.Height, params.Hazards, nil)
	if err != nil {
		log.Error(err)
		return
	}
	s.grid = grid
	s.show()
}

func (s *session) started() bool {
	if s.grid == nil {
		log.Error("no game in progress, start one with `new`")
		return false
	}
	return true
}

func (s *session) cmdOpen(values url.Values) {
	if !s.started() {
		return
	}
	var params cellParams
	if err := decoder.Decode(&params, values); err != nil {
		log.Error("bad arguments: ", err)
		return
	}
	changed, err := s.grid.Reveal(params.Cell)
	if err != nil {
		log.Error(err)
		return
	}
	fmt.Printf("%d cell(s) revealed\n", len(changed))
	s.show()
	switch {
	case s.grid.IsLost():
		fmt.Println("boom! game over")
	case s.grid.IsCleared():
		fmt.Println("board cleared, well played")
	}
}

func (s *session) cmdFlag(values url.Values, value bool) {
	if !s.started() {
		return
	}
	var params cellParams
	if err := decoder.Decode(&params, values); err != nil {
		log.Error("bad arguments: ", err)
		return
	}
	if err := s.grid.SetFlag(params.Cell, value); err != nil {
		log.Error(err)
		return
	}
	s.show()
}

func (s *session) cmdHint(values url.Values) {
	if !s.started() {
		return
	}
	var params hintParams
	if err := decoder.Decode(&params, values); err != nil {
		log.Error("bad arguments: ", err)
		return
	}
	hints := s.grid.Hints(!params.Wide, !params.All)
	if len(hints) == 0 {
		fmt.Println("nothing provable right now")
		return
	}
	for _, h := range hints {
		fmt.Printf("%s %v\n", h.Action, h.Cells)
	}
}

func (s *session) cmdSolvable(values url.Values) {
	if !s.started() {
		return
	}
	var params solvableParams
	if err := decoder.Decode(&params, values); err != nil {
		log.Error("bad arguments: ", err)
		return
	}
	solvable, err := s.grid.IsSolvableFrom(params.Cell, !params.Keep)
	if err != nil {
		log.Error(err)
		return
	}
	if solvable {
		fmt.Println("solvable without guessing")
	} else {
		fmt.Println("not solvable by deduction alone")
	}
	if params.Keep {
		s.show()
	}
}

func (s *session) show() {
	if s.grid == nil {
		return
	}
	fmt.Print(s.grid.String())
	fmt.Printf("%d/%d flags used\n", s.grid.FlagCount(), s.grid.Hazards())
}
