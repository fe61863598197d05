package maze

import (
	"math"

	"github.com/pdrpinto/search"
)

// Manhattan returns the grid distance between a and b.
func Manhattan(a, b Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

type goalProblem interface {
	Goal() Point
}

// ManhattanHeuristic estimates the grid distance to the problem's goal. It
// is consistent for unit step costs.
func ManhattanHeuristic(state Point, problem search.Problem[Point, Direction]) float64 {
	if p, ok := problem.(goalProblem); ok {
		return Manhattan(state, p.Goal())
	}
	return 0
}

// EuclideanHeuristic estimates the straight-line distance to the problem's goal.
func EuclideanHeuristic(state Point, problem search.Problem[Point, Direction]) float64 {
	if p, ok := problem.(goalProblem); ok {
		return Euclidean(state, p.Goal())
	}
	return 0
}

// FoodCache memoizes the widest pairwise target distance per remaining-target
// set. It is owned by the caller, grows only, and may be shared between
// searches over the same layout.
type FoodCache struct {
	spread map[uint64]float64
}

// NewFoodCache returns an empty cache.
func NewFoodCache() *FoodCache {
	return &FoodCache{spread: make(map[uint64]float64)}
}

// Len returns the number of memoized target sets.
func (c *FoodCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.spread)
}

// FoodHeuristic estimates the cost of collecting every remaining target as
// the distance to the nearest one plus the largest distance between any two
// of them. Both terms use Manhattan distance, so walls only make the true
// cost larger. A nil cache disables memoization.
func FoodHeuristic(cache *FoodCache) search.Heuristic[FoodState, Direction] {
	return func(state FoodState, problem search.Problem[FoodState, Direction]) float64 {
		foodProblem, ok := problem.(*FoodProblem)
		if !ok || state.Remaining == 0 {
			return 0
		}
		targets := foodProblem.Targets(state.Remaining)

		nearest := math.Inf(1)
		for _, target := range targets {
			nearest = math.Min(nearest, Manhattan(state.Pos, target))
		}
		return nearest + cache.widest(state.Remaining, targets)
	}
}

func (c *FoodCache) widest(mask uint64, targets []Point) float64 {
	if c != nil {
		if spread, ok := c.spread[mask]; ok {
			return spread
		}
	}
	spread := 0.0
	for i := range targets {
		for j := i + 1; j < len(targets); j++ {
			spread = math.Max(spread, Manhattan(targets[i], targets[j]))
		}
	}
	if c != nil {
		c.spread[mask] = spread
	}
	return spread
}
