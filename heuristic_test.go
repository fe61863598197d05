package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoize(t *testing.T) {
	problem := walledGrid()
	calls := make(map[cell]int)
	var counting Heuristic[cell, string] = func(state cell, p Problem[cell, string]) float64 {
		calls[state]++
		return manhattanTo(problem.goal)(state, p)
	}

	cache := make(map[cell]float64)
	memoized := Memoize(counting, cache)

	plain, err := AStar(problem, manhattanTo(problem.goal))
	require.NoError(t, err)
	cached, err := AStar(problem, memoized)
	require.NoError(t, err)
	assert.Equal(t, plain, cached)

	for state, count := range calls {
		assert.Equal(t, 1, count, "state %v", state)
		assert.Equal(t, manhattanTo(problem.goal)(state, problem), cache[state])
	}

	again, err := AStar(problem, memoized)
	require.NoError(t, err)
	assert.Equal(t, plain, again)
	for state, count := range calls {
		assert.Equal(t, 1, count, "state %v recomputed", state)
	}
}

func TestMemoize_NilInputs(t *testing.T) {
	h := Memoize[string, string](nil, nil)
	assert.Zero(t, h("anything", nil))

	estimate := tableHeuristic(map[string]float64{"x": 4})
	assert.Equal(t, 4.0, Memoize(estimate, nil)("x", nil))
}

func TestNullHeuristic(t *testing.T) {
	assert.Zero(t, NullHeuristic[string, string]("S", shortcutTrap()))
}
