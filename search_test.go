package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_StartIsGoal(t *testing.T) {
	problem := newGraphProblem("A", "A").edge("A", "B", 1)

	results, err := runAll[string, string](problem, nil)
	require.NoError(t, err)

	for strategy, result := range results {
		t.Run(strategy.String(), func(t *testing.T) {
			assert.True(t, result.Found)
			assert.NotNil(t, result.Actions)
			assert.Empty(t, result.Actions)
			assert.Equal(t, []string{"A"}, result.Path)
			assert.Zero(t, result.TotalCost)
			assert.Zero(t, problem.CostOfActions(result.Actions))
		})
	}
}

func TestSearch_NoReachableGoal(t *testing.T) {
	problem := newGraphProblem("A", "Z").
		edge("A", "B", 1).
		edge("B", "C", 1).
		edge("C", "A", 1).
		edge("Z", "A", 1)

	results, err := runAll[string, string](problem, nil)
	require.NoError(t, err)

	for strategy, result := range results {
		t.Run(strategy.String(), func(t *testing.T) {
			assert.False(t, result.Found)
			assert.Nil(t, result.Actions)
			assert.Nil(t, result.Path)
			assert.Equal(t, 3, result.ExpandedNodes)
		})
	}
}

func TestSearch_LinearChain(t *testing.T) {
	problem := newGraphProblem("A", "Goal").
		edge("A", "B", 1).
		edge("B", "C", 1).
		edge("C", "Goal", 1)

	results, err := runAll[string, string](problem, nil)
	require.NoError(t, err)

	for strategy, result := range results {
		t.Run(strategy.String(), func(t *testing.T) {
			require.True(t, result.Found)
			assert.Equal(t, []string{"B", "C", "Goal"}, result.Actions)
			assert.Equal(t, []string{"A", "B", "C", "Goal"}, result.Path)
			assert.Equal(t, 3.0, result.TotalCost)
		})
	}
}

func shortcutTrap() *graphProblem {
	return newGraphProblem("S", "G").
		edge("S", "G", 100).
		edge("S", "X", 1).
		edge("X", "Y", 1).
		edge("Y", "G", 1)
}

func TestSearch_ShortcutTrap(t *testing.T) {
	problem := shortcutTrap()
	admissible := tableHeuristic(map[string]float64{"S": 2, "X": 2, "Y": 1, "G": 0})

	t.Run("breadth first takes the single hop", func(t *testing.T) {
		result, err := BreadthFirst[string, string](problem)
		require.NoError(t, err)
		require.True(t, result.Found)
		assert.Equal(t, []string{"G"}, result.Actions)
		assert.Equal(t, 100.0, problem.CostOfActions(result.Actions))
	})

	t.Run("uniform cost takes the cheap detour", func(t *testing.T) {
		result, err := UniformCost[string, string](problem)
		require.NoError(t, err)
		require.True(t, result.Found)
		assert.Equal(t, []string{"X", "Y", "G"}, result.Actions)
		assert.Equal(t, 3.0, result.TotalCost)
		assert.Equal(t, 3.0, problem.CostOfActions(result.Actions))
	})

	t.Run("astar with admissible heuristic takes the cheap detour", func(t *testing.T) {
		result, err := AStar(problem, admissible)
		require.NoError(t, err)
		require.True(t, result.Found)
		assert.Equal(t, []string{"X", "Y", "G"}, result.Actions)
		assert.Equal(t, 3.0, result.TotalCost)
	})
}

func TestGreedy_NotOptimal(t *testing.T) {
	problem := newGraphProblem("S", "G").
		edge("S", "A", 1).
		edge("S", "B", 1).
		edge("A", "G", 1).
		edge("B", "G", 10)
	misleading := tableHeuristic(map[string]float64{"S": 1, "A": 5, "B": 0, "G": 0})

	greedy, err := Greedy(problem, misleading)
	require.NoError(t, err)
	uniform, err := UniformCost[string, string](problem)
	require.NoError(t, err)

	require.True(t, greedy.Found)
	require.True(t, uniform.Found)
	assert.Equal(t, []string{"B", "G"}, greedy.Actions)
	assert.Equal(t, []string{"A", "G"}, uniform.Actions)
	assert.Greater(t, problem.CostOfActions(greedy.Actions), problem.CostOfActions(uniform.Actions))
}

func TestAStar_ZeroHeuristicMatchesUniformCost(t *testing.T) {
	problem := newGraphProblem("S", "G").
		edge("S", "A", 4).
		edge("S", "B", 1).
		edge("B", "A", 2).
		edge("A", "C", 1).
		edge("B", "C", 5).
		edge("C", "G", 3).
		edge("A", "G", 6)

	uniform, err := UniformCost[string, string](problem)
	require.NoError(t, err)
	astar, err := AStar[string, string](problem, nil)
	require.NoError(t, err)

	require.True(t, uniform.Found)
	require.True(t, astar.Found)
	assert.Equal(t, 7.0, uniform.TotalCost)
	assert.Equal(t, uniform.TotalCost, astar.TotalCost)
	assert.Equal(t, []string{"B", "A", "C", "G"}, uniform.Actions)
}

func TestUniformCost_DecreaseKey(t *testing.T) {
	// C enters the frontier at cost 10 through A and is lowered to 3 through B
	// before it is ever expanded.
	problem := newGraphProblem("S", "G").
		edge("S", "A", 1).
		edge("S", "B", 2).
		edge("A", "C", 9).
		edge("B", "C", 1).
		edge("C", "G", 1)

	var expandedStates []any
	result, err := UniformCost[string, string](problem, WithExpandHook(func(expansion Expansion) {
		expandedStates = append(expandedStates, expansion.State)
	}))
	require.NoError(t, err)

	require.True(t, result.Found)
	assert.Equal(t, []string{"B", "C", "G"}, result.Actions)
	assert.Equal(t, 4.0, result.TotalCost)
	assert.Equal(t, []any{"S", "A", "B", "C", "G"}, expandedStates)
}

func TestSearch_GridOptimality(t *testing.T) {
	problem := walledGrid()

	bfs, err := BreadthFirst[cell, string](problem)
	require.NoError(t, err)
	ucs, err := UniformCost[cell, string](problem)
	require.NoError(t, err)
	astar, err := AStar(problem, manhattanTo(problem.goal))
	require.NoError(t, err)
	dfs, err := DepthFirst[cell, string](problem)
	require.NoError(t, err)
	greedy, err := Greedy(problem, manhattanTo(problem.goal))
	require.NoError(t, err)

	for _, result := range []Result[cell, string]{bfs, ucs, astar, dfs, greedy} {
		require.True(t, result.Found)
		assert.Equal(t, problem.goal, result.Path[len(result.Path)-1])
		assert.Equal(t, float64(len(result.Actions)), problem.CostOfActions(result.Actions))
	}
	assert.Len(t, bfs.Actions, 8)
	assert.Equal(t, 8.0, ucs.TotalCost)
	assert.Equal(t, 8.0, astar.TotalCost)
	assert.LessOrEqual(t, astar.ExpandedNodes, ucs.ExpandedNodes)
	assert.GreaterOrEqual(t, len(dfs.Actions), len(bfs.Actions))
}

func TestAStar_MonotonicExpansion(t *testing.T) {
	problem := walledGrid()

	var priorities []float64
	result, err := AStar(problem, manhattanTo(problem.goal), WithExpandHook(func(expansion Expansion) {
		priorities = append(priorities, expansion.Priority)
	}))
	require.NoError(t, err)
	require.True(t, result.Found)

	require.Len(t, priorities, result.ExpandedNodes)
	for i := 1; i < len(priorities); i++ {
		assert.GreaterOrEqual(t, priorities[i], priorities[i-1], "expansion %d", i)
	}
}

func TestDepthFirst_FollowsFirstBranch(t *testing.T) {
	problem := newGraphProblem("S", "G").
		edge("S", "A", 1).
		edge("S", "B", 1).
		edge("A", "C", 1).
		edge("C", "G", 1).
		edge("B", "G", 1)

	result, err := DepthFirst[string, string](problem)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "C", "G"}, result.Actions)
}

func TestDepthFirst_NeverRevisitsStart(t *testing.T) {
	problem := newGraphProblem("S", "G").
		edge("S", "A", 1).
		edge("A", "S", 1).
		edge("A", "G", 1)

	var expandedStates []any
	result, err := DepthFirst[string, string](problem, WithExpandHook(func(expansion Expansion) {
		expandedStates = append(expandedStates, expansion.State)
	}))
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "G"}, result.Actions)
	assert.Equal(t, []any{"S", "A", "G"}, expandedStates)
}

func TestSearch_Idempotent(t *testing.T) {
	problem := walledGrid()
	heuristic := manhattanTo(problem.goal)

	for _, strategy := range Strategies() {
		t.Run(strategy.String(), func(t *testing.T) {
			first, err := Run(strategy, problem, heuristic)
			require.NoError(t, err)
			second, err := Run(strategy, problem, heuristic)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSearch_EachStateExpandedOnce(t *testing.T) {
	problem := walledGrid()

	for _, strategy := range Strategies() {
		t.Run(strategy.String(), func(t *testing.T) {
			seen := make(map[any]int)
			_, err := Run(strategy, problem, manhattanTo(problem.goal), WithExpandHook(func(expansion Expansion) {
				seen[expansion.State]++
			}))
			require.NoError(t, err)
			for state, count := range seen {
				assert.Equal(t, 1, count, "state %v", state)
			}
		})
	}
}

func TestSearch_Errors(t *testing.T) {
	t.Run("nil problem", func(t *testing.T) {
		_, err := BreadthFirst[string, string](nil)
		assert.ErrorIs(t, err, ErrNilProblem)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := Run[string, string](Strategy("beam"), newGraphProblem("A"), nil)
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("negative cost rejected by cost-aware strategies", func(t *testing.T) {
		problem := newGraphProblem("A", "C").edge("A", "B", -1).edge("B", "C", 1)

		_, err := UniformCost[string, string](problem)
		assert.ErrorIs(t, err, ErrNegativeCost)
		_, err = AStar[string, string](problem, nil)
		assert.ErrorIs(t, err, ErrNegativeCost)

		result, err := BreadthFirst[string, string](problem)
		require.NoError(t, err)
		assert.True(t, result.Found)
	})
}
