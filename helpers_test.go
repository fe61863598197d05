package search

import "math"

// graphProblem is an explicit weighted digraph. Actions are named after the
// destination state.
type graphProblem struct {
	start string
	goals map[string]bool
	edges map[string][]Successor[string, string]
}

func newGraphProblem(start string, goals ...string) *graphProblem {
	p := &graphProblem{
		start: start,
		goals: make(map[string]bool),
		edges: make(map[string][]Successor[string, string]),
	}
	for _, goal := range goals {
		p.goals[goal] = true
	}
	return p
}

func (p *graphProblem) edge(from, to string, cost float64) *graphProblem {
	p.edges[from] = append(p.edges[from], Successor[string, string]{State: to, Action: to, Cost: cost})
	return p
}

func (p *graphProblem) StartState() string       { return p.start }
func (p *graphProblem) IsGoal(state string) bool { return p.goals[state] }
func (p *graphProblem) Successors(state string) []Successor[string, string] {
	return p.edges[state]
}

func (p *graphProblem) CostOfActions(actions []string) float64 {
	current, total := p.start, 0.0
	for _, action := range actions {
		found := false
		for _, successor := range p.edges[current] {
			if successor.Action == action {
				total += successor.Cost
				current = successor.State
				found = true
				break
			}
		}
		if !found {
			return math.Inf(1)
		}
	}
	return total
}

func tableHeuristic(estimates map[string]float64) Heuristic[string, string] {
	return func(state string, _ Problem[string, string]) float64 { return estimates[state] }
}

type cell [2]int

// gridProblem is a 4-connected grid with unit step costs.
type gridProblem struct {
	width, height int
	walls         map[cell]bool
	start, goal   cell
}

var gridMoves = []struct {
	name  string
	delta cell
}{
	{"N", cell{0, -1}},
	{"S", cell{0, 1}},
	{"E", cell{1, 0}},
	{"W", cell{-1, 0}},
}

func (g *gridProblem) open(c cell) bool {
	return c[0] >= 0 && c[0] < g.width && c[1] >= 0 && c[1] < g.height && !g.walls[c]
}

func (g *gridProblem) StartState() cell       { return g.start }
func (g *gridProblem) IsGoal(state cell) bool { return state == g.goal }

func (g *gridProblem) Successors(state cell) []Successor[cell, string] {
	successors := make([]Successor[cell, string], 0, 4)
	for _, move := range gridMoves {
		next := cell{state[0] + move.delta[0], state[1] + move.delta[1]}
		if g.open(next) {
			successors = append(successors, Successor[cell, string]{State: next, Action: move.name, Cost: 1})
		}
	}
	return successors
}

func (g *gridProblem) CostOfActions(actions []string) float64 {
	current := g.start
	for _, action := range actions {
		for _, move := range gridMoves {
			if move.name == action {
				current = cell{current[0] + move.delta[0], current[1] + move.delta[1]}
			}
		}
		if !g.open(current) {
			return math.Inf(1)
		}
	}
	return float64(len(actions))
}

func manhattanTo(goal cell) Heuristic[cell, string] {
	return func(state cell, _ Problem[cell, string]) float64 {
		return math.Abs(float64(state[0]-goal[0])) + math.Abs(float64(state[1]-goal[1]))
	}
}

// walledGrid builds a 7x5 grid with a wall that forces a detour.
//
//	. . . . . . .
//	. . . # . . .
//	. S . # . G .
//	. . . # . . .
//	. . . . . . .
func walledGrid() *gridProblem {
	return &gridProblem{
		width:  7,
		height: 5,
		walls:  map[cell]bool{{3, 1}: true, {3, 2}: true, {3, 3}: true},
		start:  cell{1, 2},
		goal:   cell{5, 2},
	}
}

func runAll[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) (map[Strategy]Result[S, A], error) {
	results := make(map[Strategy]Result[S, A])
	for _, strategy := range Strategies() {
		result, err := Run(strategy, problem, heuristic)
		if err != nil {
			return nil, err
		}
		results[strategy] = result
	}
	return results, nil
}
