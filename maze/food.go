package maze

import (
	"math/bits"

	"github.com/pdrpinto/search"
)

// FoodState is the agent position plus the set of targets still to collect,
// one bit per index into Layout.Targets.
type FoodState struct {
	Pos       Point
	Remaining uint64
}

// Left returns the number of targets still to collect.
func (s FoodState) Left() int { return bits.OnesCount64(s.Remaining) }

// FoodProblem asks for the cheapest walk that collects every target.
type FoodProblem struct {
	layout  *Layout
	indexOf map[Point]int
}

var _ search.Problem[FoodState, Direction] = (*FoodProblem)(nil)

// NewFoodProblem builds a collect-all problem over layout.
func NewFoodProblem(layout *Layout) *FoodProblem {
	indexOf := make(map[Point]int, len(layout.Targets))
	for i, target := range layout.Targets {
		indexOf[target] = i
	}
	return &FoodProblem{layout: layout, indexOf: indexOf}
}

// Layout returns the maze the problem is defined on.
func (p *FoodProblem) Layout() *Layout { return p.layout }

// Targets returns the coordinates of the targets still set in mask.
func (p *FoodProblem) Targets(mask uint64) []Point {
	targets := make([]Point, 0, bits.OnesCount64(mask))
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		targets = append(targets, p.layout.Targets[i])
		mask &^= 1 << i
	}
	return targets
}

func (p *FoodProblem) eat(state FoodState) FoodState {
	if i, ok := p.indexOf[state.Pos]; ok {
		state.Remaining &^= 1 << i
	}
	return state
}

func (p *FoodProblem) StartState() FoodState {
	var all uint64
	for i := range p.layout.Targets {
		all |= 1 << i
	}
	return p.eat(FoodState{Pos: p.layout.Start, Remaining: all})
}

func (p *FoodProblem) IsGoal(state FoodState) bool { return state.Remaining == 0 }

func (p *FoodProblem) Successors(state FoodState) []search.Successor[FoodState, Direction] {
	open := p.layout.Open(state.Pos)
	successors := make([]search.Successor[FoodState, Direction], 0, len(open))
	for _, direction := range open {
		next := p.eat(FoodState{Pos: state.Pos.Move(direction), Remaining: state.Remaining})
		successors = append(successors, search.Successor[FoodState, Direction]{
			State:  next,
			Action: direction,
			Cost:   1,
		})
	}
	return successors
}

func (p *FoodProblem) CostOfActions(actions []Direction) float64 {
	current := p.layout.Start
	for _, action := range actions {
		current = current.Move(action)
		if !action.Valid() || p.layout.Wall(current) {
			return IllegalCost
		}
	}
	return float64(len(actions))
}
