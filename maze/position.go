package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/pdrpinto/search"
)

// IllegalCost is the cost reported for an action sequence that walks into a wall.
const IllegalCost = 999999

var (
	ErrNoGoal      = errors.New("layout has no goal: mark one with G or leave exactly one target")
	ErrBlockedCell = errors.New("cell is a wall")
)

// CostFunc prices entering a cell.
type CostFunc func(Point) float64

// UnitCost charges 1 for every step.
func UnitCost(Point) float64 { return 1 }

// StayEastCost makes western cells expensive: entering (x, y) costs 0.5^x.
func StayEastCost(p Point) float64 { return math.Pow(0.5, float64(p.X)) }

// StayWestCost makes eastern cells expensive: entering (x, y) costs 2^x.
func StayWestCost(p Point) float64 { return math.Pow(2, float64(p.X)) }

// PositionProblem asks for a route from the start cell to one goal cell.
type PositionProblem struct {
	layout *Layout
	start  Point
	goal   Point
	cost   CostFunc
}

var _ search.Problem[Point, Direction] = (*PositionProblem)(nil)

// PositionOption configures a PositionProblem.
type PositionOption func(*PositionProblem)

// WithStart overrides the layout's start cell.
func WithStart(start Point) PositionOption {
	return func(p *PositionProblem) { p.start = start }
}

// WithGoal overrides the layout's goal cell.
func WithGoal(goal Point) PositionOption {
	return func(p *PositionProblem) { p.goal = goal }
}

// WithCostFunc sets the step cost; the default is UnitCost.
func WithCostFunc(cost CostFunc) PositionOption {
	return func(p *PositionProblem) { p.cost = cost }
}

// NewPositionProblem builds a routing problem over layout. The goal is the
// layout's G tile, else its only target, unless WithGoal overrides it.
func NewPositionProblem(layout *Layout, options ...PositionOption) (*PositionProblem, error) {
	problem := &PositionProblem{
		layout: layout,
		start:  layout.Start,
		goal:   Point{X: -1, Y: -1},
		cost:   UnitCost,
	}
	switch {
	case layout.HasGoal:
		problem.goal = layout.Goal
	case len(layout.Targets) == 1:
		problem.goal = layout.Targets[0]
	}
	for _, option := range options {
		option(problem)
	}
	if problem.cost == nil {
		problem.cost = UnitCost
	}

	if !layout.InBounds(problem.goal) {
		return nil, ErrNoGoal
	}
	if layout.Wall(problem.goal) {
		return nil, fmt.Errorf("goal %v: %w", problem.goal, ErrBlockedCell)
	}
	if layout.Wall(problem.start) {
		return nil, fmt.Errorf("start %v: %w", problem.start, ErrBlockedCell)
	}
	return problem, nil
}

// Goal returns the cell the agent must reach.
func (p *PositionProblem) Goal() Point { return p.goal }

// Layout returns the maze the problem is defined on.
func (p *PositionProblem) Layout() *Layout { return p.layout }

func (p *PositionProblem) StartState() Point { return p.start }

func (p *PositionProblem) IsGoal(state Point) bool { return state == p.goal }

func (p *PositionProblem) Successors(state Point) []search.Successor[Point, Direction] {
	open := p.layout.Open(state)
	successors := make([]search.Successor[Point, Direction], 0, len(open))
	for _, direction := range open {
		next := state.Move(direction)
		successors = append(successors, search.Successor[Point, Direction]{
			State:  next,
			Action: direction,
			Cost:   p.cost(next),
		})
	}
	return successors
}

func (p *PositionProblem) CostOfActions(actions []Direction) float64 {
	current, total := p.start, 0.0
	for _, action := range actions {
		current = current.Move(action)
		if !action.Valid() || p.layout.Wall(current) {
			return IllegalCost
		}
		total += p.cost(current)
	}
	return total
}

// Walk replays actions from the start and returns every visited cell,
// start included. It stops before the first move into a wall.
func (p *PositionProblem) Walk(actions []Direction) []Point {
	current := p.start
	cells := []Point{current}
	for _, action := range actions {
		next := current.Move(action)
		if !action.Valid() || p.layout.Wall(next) {
			break
		}
		current = next
		cells = append(cells, current)
	}
	return cells
}
