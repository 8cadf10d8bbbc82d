/*
Package mines implements a rectangular minesweeper board together with a
no-guess deduction engine.

The board is a flat, row-major array of cells. On top of the usual reveal
mechanics (cascading zero-region clearing, chording, first-click hazard
relocation) the package can answer two questions by pure logic over the
revealed numbers, with no probabilistic guessing:

  - is the board fully clearable from a given starting cell
    ([Grid.IsSolvableFrom]), and
  - which closed cells are provably safe or provably mined right now
    ([Grid.Hints]).
*/
package mines

import (
	"errors"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Log is the package logger. Replace or reconfigure it to taste; the
// package only writes debug-level diagnostics to it.
var Log = logrus.New()

var (
	// ErrInvalidArgument covers bad construction parameters: non-positive
	// dimensions or a hazard count that does not fit the board.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned for any cell index outside [0, W*H).
	ErrIndexOutOfRange = errors.New("cell index out of range")
)

// RandSource yields uniform values in [0, 1). *math/rand/v2.Rand satisfies
// it; so does anything else with a Float64 method.
type RandSource interface {
	Float64() float64
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
