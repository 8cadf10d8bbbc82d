package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// countAdjacent recomputes a cell's hazard neighborhood the slow way.
func countAdjacent(t *testing.T, g *Grid, i int) (count int) {
	t.Helper()
	for _, j := range g.Neighbors(i) {
		c, err := g.CellAt(j)
		require.NoError(t, err)
		if c.Hazard() {
			count++
		}
	}
	return
}

// requireConsistent checks the two board invariants: the hazard count
// matches the configuration and every adjacent count matches its
// neighborhood.
func requireConsistent(t *testing.T, g *Grid) {
	t.Helper()
	hazards := 0
	for i := 0; i < g.Size(); i++ {
		c, err := g.CellAt(i)
		require.NoError(t, err)
		if c.Hazard() {
			hazards++
		}
		require.Equal(t, countAdjacent(t, g, i), c.Adjacent(),
			"adjacent count of cell %d", i)
	}
	require.Equal(t, g.Hazards(), hazards, "hazard count")
}

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, hazards int
	}{
		{"zero width", 0, 5, 1},
		{"zero height", 5, 0, 1},
		{"negative width", -3, 5, 1},
		{"negative hazards", 3, 3, -1},
		{"too many hazards", 3, 3, 10},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewGrid(test.width, test.height, test.hazards, testRand())
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewGridPlacement(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, hazards int
	}{
		{"9x9(10)", 9, 9, 10},
		{"9x9(35)", 9, 9, 35},
		{"16x16(99)", 16, 16, 99},
		{"full board", 4, 4, 16},
		{"no hazards", 4, 4, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := NewGrid(test.width, test.height, test.hazards, testRand())
			require.NoError(t, err)
			requireConsistent(t, g)
			assert.True(t, g.IsNew())
		})
	}
}

func TestNewGridWithHazards(t *testing.T) {
	t.Run("explicit placement", func(t *testing.T) {
		g, err := NewGridWithHazards(3, 3, []int{8})
		require.NoError(t, err)
		requireConsistent(t, g)
		c, err := g.CellAt(8)
		require.NoError(t, err)
		assert.True(t, c.Hazard())
		assert.Equal(t, 1, g.Hazards())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		g, err := NewGridWithHazards(3, 3, []int{4, 4, 4})
		require.NoError(t, err)
		assert.Equal(t, 1, g.Hazards())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewGridWithHazards(3, 3, []int{9})
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("bad dimensions", func(t *testing.T) {
		_, err := NewGridWithHazards(0, 3, nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestIndexMath(t *testing.T) {
	g, err := NewGridWithHazards(4, 3, nil)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		row, col := g.IndexToCoords(i)
		assert.Equal(t, i, g.CoordsToIndex(row, col))
	}
	assert.Equal(t, 5, g.CoordsToIndex(1, 1))
}

func TestNeighbors(t *testing.T) {
	g, err := NewGridWithHazards(3, 3, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		cell int
		want []int
	}{
		{"corner", 0, []int{1, 3, 4}},
		{"edge", 1, []int{0, 2, 3, 4, 5}},
		{"center", 4, []int{0, 1, 2, 3, 5, 6, 7, 8}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, g.Neighbors(test.cell))
		})
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	g, err := NewGridWithHazards(2, 2, nil)
	require.NoError(t, err)
	_, err = g.CellAt(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = g.CellAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetFlag(t *testing.T) {
	g, err := NewGridWithHazards(2, 2, []int{3})
	require.NoError(t, err)

	require.NoError(t, g.SetFlag(3, true))
	assert.Equal(t, 1, g.FlagCount())

	require.NoError(t, g.SetFlag(3, false))
	assert.Equal(t, 0, g.FlagCount())

	// flags never land on open cells
	_, err = g.RevealWith(0, false)
	require.NoError(t, err)
	require.NoError(t, g.SetFlag(0, true))
	assert.Equal(t, 0, g.FlagCount())

	assert.ErrorIs(t, g.SetFlag(17, true), ErrIndexOutOfRange)
}

func TestGamePredicates(t *testing.T) {
	g, err := NewGridWithHazards(2, 2, []int{3})
	require.NoError(t, err)

	assert.True(t, g.IsNew())
	assert.False(t, g.IsGoingOn())
	assert.False(t, g.IsOver())

	_, err = g.RevealWith(0, false)
	require.NoError(t, err)
	assert.False(t, g.IsNew())
	assert.True(t, g.IsGoingOn())

	_, err = g.RevealWith(1, false)
	require.NoError(t, err)
	_, err = g.RevealWith(2, false)
	require.NoError(t, err)
	require.NoError(t, g.SetFlag(3, true))
	assert.True(t, g.IsCleared())
	assert.True(t, g.IsOver())
	assert.False(t, g.IsLost())
	assert.False(t, g.IsGoingOn())
}

func TestIsLost(t *testing.T) {
	g, err := NewGridWithHazards(2, 2, []int{3})
	require.NoError(t, err)
	_, err = g.RevealWith(3, false)
	require.NoError(t, err)
	assert.True(t, g.IsLost())
	assert.True(t, g.IsOver())
	assert.False(t, g.IsCleared())
}

func TestRestore(t *testing.T) {
	g, err := NewGridWithHazards(3, 3, []int{8})
	require.NoError(t, err)
	_, err = g.Reveal(0)
	require.NoError(t, err)
	require.NoError(t, g.SetFlag(8, true))
	require.False(t, g.IsNew())

	g.Restore()
	assert.True(t, g.IsNew())
	requireConsistent(t, g)
}

func TestRenderString(t *testing.T) {
	g, err := NewGridWithHazards(3, 1, []int{2})
	require.NoError(t, err)
	_, err = g.RevealWith(1, false)
	require.NoError(t, err)
	require.NoError(t, g.SetFlag(2, true))
	assert.Equal(t, "- 1 * \n", g.String())
}
