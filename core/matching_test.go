package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stablematch/core"
)

func TestMatching_Helpers(t *testing.T) {
	m := core.Matching{3: 1, 1: 2, 2: 3}

	assert.Equal(t, []int{1, 2, 3}, m.Hospitals())
	assert.Equal(t, []int{2, 3, 1}, m.Students())
	assert.Equal(t, map[int]int{1: 3, 2: 1, 3: 2}, m.Inverse())
	assert.Equal(t, []core.Pair{{1, 2}, {2, 3}, {3, 1}}, m.Pairs())

	c := m.Clone()
	assert.True(t, m.Equal(c))
	c[1] = 3
	assert.False(t, m.Equal(c))
	assert.Equal(t, 2, m[1], "Clone must not alias")
}

func TestMatching_Empty(t *testing.T) {
	var m core.Matching
	assert.Empty(t, m.Hospitals())
	assert.Empty(t, m.Pairs())
	assert.Empty(t, m.Inverse())
	assert.True(t, m.Equal(core.Matching{}))
}
