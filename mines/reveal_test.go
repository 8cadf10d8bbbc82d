package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealCascadeStrip(t *testing.T) {
	g, err := NewGridWithHazards(5, 1, []int{4})
	require.NoError(t, err)

	changed, err := g.Reveal(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, sorted(changed))

	c, err := g.CellAt(4)
	require.NoError(t, err)
	assert.False(t, c.Open())

	assert.False(t, g.IsCleared())
	assert.True(t, g.IsGoingOn())
}

func TestRevealFirstClickRelocation(t *testing.T) {
	g, err := NewGridWithHazards(5, 1, []int{0})
	require.NoError(t, err)

	changed, err := g.Reveal(0)
	require.NoError(t, err)

	c, err := g.CellAt(0)
	require.NoError(t, err)
	assert.True(t, c.Open())
	assert.False(t, c.Hazard(), "first click must never stay on a hazard")

	// the hazard lands on the first free cell, index 1
	moved, err := g.CellAt(1)
	require.NoError(t, err)
	assert.True(t, moved.Hazard())
	assert.Equal(t, []int{0}, changed)
	requireConsistent(t, g)
	assert.False(t, g.IsLost())
}

func TestRevealNoRelocationMidGame(t *testing.T) {
	g, err := NewGridWithHazards(5, 1, []int{4})
	require.NoError(t, err)

	_, err = g.Reveal(0)
	require.NoError(t, err)

	changed, err := g.Reveal(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, changed)
	assert.True(t, g.IsLost())
	requireConsistent(t, g)
}

func TestRevealChord(t *testing.T) {
	g, err := NewGridWithHazards(3, 3, []int{8})
	require.NoError(t, err)

	_, err = g.RevealWith(4, false)
	require.NoError(t, err)
	require.NoError(t, g.SetFlag(8, true))

	changed, err := g.Reveal(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7}, sorted(changed))
	assert.True(t, g.IsCleared())
}

func TestRevealChordIntoHazard(t *testing.T) {
	g, err := NewGridWithHazards(3, 3, []int{8})
	require.NoError(t, err)

	_, err = g.RevealWith(4, false)
	require.NoError(t, err)
	require.NoError(t, g.SetFlag(5, true)) // wrong flag

	changed, err := g.Reveal(4)
	require.NoError(t, err)
	assert.Contains(t, changed, 8)
	assert.True(t, g.IsLost())
}

func TestRevealChordNeedsMatchingFlags(t *testing.T) {
	g, err := NewGridWithHazards(3, 3, []int{8})
	require.NoError(t, err)

	_, err = g.RevealWith(4, false)
	require.NoError(t, err)

	// no flags placed: the chord must not fire
	changed, err := g.Reveal(4)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestRevealOpenZeroCellIsNoop(t *testing.T) {
	g, err := NewGridWithHazards(5, 1, []int{4})
	require.NoError(t, err)
	_, err = g.Reveal(0)
	require.NoError(t, err)

	changed, err := g.Reveal(0)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestRevealOutOfRange(t *testing.T) {
	g, err := NewGridWithHazards(3, 3, nil)
	require.NoError(t, err)
	_, err = g.Reveal(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = g.Reveal(9)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.True(t, g.IsNew(), "failed reveal must not touch the board")
}

func TestRevealKeepsInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	g, err := NewGrid(9, 9, 10, testRand())
	require.NoError(t, err)

	for i := 0; i < g.Size(); i++ {
		_, err := g.Reveal(i)
		require.NoError(t, err)
		requireConsistent(t, g)
	}
}
