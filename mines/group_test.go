package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupKeyNormalization(t *testing.T) {
	a := newGroup(2, []int{7, 3, 5})
	b := newGroup(2, []int{5, 7, 3})
	c := newGroup(1, []int{3, 5, 7})

	assert.Equal(t, a.key(), b.key())
	assert.NotEqual(t, a.key(), c.key())
	assert.Equal(t, []int{3, 5, 7}, a.cells)
}

func TestGroupSetDedup(t *testing.T) {
	gs := newGroupSet()
	assert.True(t, gs.add(newGroup(1, []int{2, 1})))
	assert.False(t, gs.add(newGroup(1, []int{1, 2})))
	assert.True(t, gs.add(newGroup(2, []int{1, 2})))
	assert.Equal(t, 2, gs.len())
}

func TestSetOps(t *testing.T) {
	assert.Equal(t, []int{1, 3}, subtract([]int{1, 2, 3}, []int{2}))
	assert.Nil(t, subtract([]int{1, 2}, []int{1, 2}))

	assert.True(t, isSubset([]int{1, 2}, []int{1, 2, 3}))
	assert.True(t, isSubset(nil, []int{1}))
	assert.False(t, isSubset([]int{4}, []int{1, 2, 3}))

	assert.True(t, disjoint([]int{1, 2}, []int{3, 4}))
	assert.False(t, disjoint([]int{1, 2}, []int{2, 3}))
}
