package search

import "fmt"

// engine is the expand-frontier loop shared by every strategy. The strategy
// only picks the frontier discipline, the node priority and the point at
// which states join the explored set.
type engine[S comparable, A any] struct {
	strategy  Strategy
	problem   Problem[S, A]
	heuristic Heuristic[S, A]
	options   Options

	frontier   frontier[S, A]
	explored   map[S]struct{}
	markOnPush bool

	current  *node[S, A]
	expanded int
	done     bool
	result   Result[S, A]
}

func newEngine[S comparable, A any](
	strategy Strategy,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	options Options,
) (*engine[S, A], error) {
	if !strategy.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}
	if problem == nil {
		return nil, ErrNilProblem
	}
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}

	e := &engine[S, A]{
		strategy:   strategy,
		problem:    problem,
		heuristic:  heuristic,
		options:    options,
		frontier:   newFrontier[S, A](strategy),
		explored:   make(map[S]struct{}),
		markOnPush: strategy == StrategyBreadthFirst,
	}

	startNode := &node[S, A]{state: problem.StartState()}
	startNode.priority = e.priority(startNode)
	if e.markOnPush {
		e.explored[startNode.state] = struct{}{}
	}
	e.frontier.Push(startNode)
	return e, nil
}

func (e *engine[S, A]) priority(n *node[S, A]) float64 {
	switch e.strategy {
	case StrategyUniformCost:
		return n.cost
	case StrategyGreedy:
		return e.heuristic(n.state, e.problem)
	case StrategyAStar:
		return n.cost + e.heuristic(n.state, e.problem)
	default:
		return float64(n.depth)
	}
}

// step expands exactly one node, skipping stale frontier entries, or
// finishes the search when the frontier runs dry or a goal is popped.
func (e *engine[S, A]) step() error {
	if e.done {
		return nil
	}

	var current *node[S, A]
	for {
		if e.frontier.Len() == 0 {
			e.finish(nil)
			return nil
		}
		current = e.frontier.Pop()
		if e.markOnPush {
			break
		}
		if _, closed := e.explored[current.state]; !closed {
			e.explored[current.state] = struct{}{}
			break
		}
	}

	e.current = current
	e.expanded++
	if e.options.OnExpand != nil {
		e.options.OnExpand(Expansion{
			State:    current.state,
			Cost:     current.cost,
			Priority: current.priority,
			Depth:    current.depth,
			Index:    e.expanded,
		})
	}

	if e.problem.IsGoal(current.state) {
		e.finish(current)
		return nil
	}

	successors := e.problem.Successors(current.state)
	if e.strategy == StrategyDepthFirst {
		// Reversed so the first successor is popped first, as a recursive
		// walk would visit it.
		for i := len(successors) - 1; i >= 0; i-- {
			if err := e.push(current, successors[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, successor := range successors {
		if err := e.push(current, successor); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine[S, A]) push(parent *node[S, A], successor Successor[S, A]) error {
	if successor.Cost < 0 && e.strategy.CostAware() {
		return fmt.Errorf("%w: %v from %v costs %v", ErrNegativeCost, successor.Action, parent.state, successor.Cost)
	}
	if _, closed := e.explored[successor.State]; closed {
		return nil
	}
	child := parent.child(successor)
	child.priority = e.priority(child)
	if e.markOnPush {
		e.explored[child.state] = struct{}{}
	}
	e.frontier.Push(child)
	return nil
}

func (e *engine[S, A]) finish(goal *node[S, A]) {
	e.done = true
	if goal == nil {
		e.result = Result[S, A]{ExpandedNodes: e.expanded}
		return
	}
	path, actions := goal.solution()
	e.result = Result[S, A]{
		Actions:       actions,
		Path:          path,
		TotalCost:     goal.cost,
		ExpandedNodes: e.expanded,
		Found:         true,
	}
}
