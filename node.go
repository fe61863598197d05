package search

import "github.com/pdrpinto/search/internal"

// node is one entry of a search tree: a state, the action that produced it,
// the accumulated path cost and a link to the parent it was expanded from.
// Nodes are never mutated once pushed; a cheaper path yields a new node.
type node[S comparable, A any] struct {
	state    S
	action   A
	parent   *node[S, A]
	cost     float64
	depth    int
	priority float64
}

func (n *node[S, A]) child(successor Successor[S, A]) *node[S, A] {
	return &node[S, A]{
		state:  successor.State,
		action: successor.Action,
		parent: n,
		cost:   n.cost + successor.Cost,
		depth:  n.depth + 1,
	}
}

// solution unwinds the parent chain into the visited states and the
// actions between them.
func (n *node[S, A]) solution() ([]S, []A) {
	chain := internal.Unwind(n, func(current *node[S, A]) *node[S, A] { return current.parent })
	path := make([]S, 0, len(chain))
	actions := make([]A, 0, len(chain)-1)
	for i, step := range chain {
		path = append(path, step.state)
		if i > 0 {
			actions = append(actions, step.action)
		}
	}
	return path, actions
}
