package search

import "container/heap"

// frontier holds discovered nodes awaiting expansion. Its discipline
// decides the search order.
type frontier[S comparable, A any] interface {
	Push(n *node[S, A])
	Pop() *node[S, A]
	Len() int
	States() []S
}

// lifoFrontier is a stack.
type lifoFrontier[S comparable, A any] struct {
	nodes []*node[S, A]
}

func (f *lifoFrontier[S, A]) Push(n *node[S, A]) { f.nodes = append(f.nodes, n) }

func (f *lifoFrontier[S, A]) Pop() *node[S, A] {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	return n
}

func (f *lifoFrontier[S, A]) Len() int { return len(f.nodes) }

func (f *lifoFrontier[S, A]) States() []S { return statesOf(f.nodes) }

// fifoFrontier is a queue. Popped slots are released and the backing array
// is compacted once the dead prefix outgrows the live part.
type fifoFrontier[S comparable, A any] struct {
	nodes []*node[S, A]
	head  int
}

func (f *fifoFrontier[S, A]) Push(n *node[S, A]) { f.nodes = append(f.nodes, n) }

func (f *fifoFrontier[S, A]) Pop() *node[S, A] {
	n := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++
	if f.head > len(f.nodes)/2 {
		f.nodes = append(f.nodes[:0], f.nodes[f.head:]...)
		f.head = 0
	}
	return n
}

func (f *fifoFrontier[S, A]) Len() int { return len(f.nodes) - f.head }

func (f *fifoFrontier[S, A]) States() []S { return statesOf(f.nodes[f.head:]) }

// priorityFrontier pops the node of lowest priority. With decreaseKey set it
// keeps at most one entry per state and lowers that entry in place when a
// cheaper node for the same state is pushed; otherwise duplicates are kept
// and stale entries are skipped by the engine at pop time.
type priorityFrontier[S comparable, A any] struct {
	queue       priorityQueue[S, A]
	index       map[S]*priorityQueueItem[S, A]
	decreaseKey bool
	sequence    uint64
}

func newPriorityFrontier[S comparable, A any](decreaseKey bool) *priorityFrontier[S, A] {
	f := &priorityFrontier[S, A]{
		queue:       make(priorityQueue[S, A], 0),
		index:       make(map[S]*priorityQueueItem[S, A]),
		decreaseKey: decreaseKey,
	}
	heap.Init(&f.queue)
	return f
}

func (f *priorityFrontier[S, A]) Push(n *node[S, A]) {
	if f.decreaseKey {
		if item, inOpen := f.index[n.state]; inOpen {
			if n.priority < item.node.priority {
				item.node = n
				heap.Fix(&f.queue, item.IndexInQueue)
			}
			return
		}
	}
	item := &priorityQueueItem[S, A]{node: n, sequence: f.sequence}
	f.sequence++
	heap.Push(&f.queue, item)
	if f.decreaseKey {
		f.index[n.state] = item
	}
}

func (f *priorityFrontier[S, A]) Pop() *node[S, A] {
	item := heap.Pop(&f.queue).(*priorityQueueItem[S, A])
	if f.decreaseKey {
		delete(f.index, item.node.state)
	}
	return item.node
}

func (f *priorityFrontier[S, A]) Len() int { return f.queue.Len() }

func (f *priorityFrontier[S, A]) States() []S {
	states := make([]S, 0, len(f.queue))
	for _, item := range f.queue {
		states = append(states, item.node.state)
	}
	return states
}

func statesOf[S comparable, A any](nodes []*node[S, A]) []S {
	states := make([]S, 0, len(nodes))
	for _, n := range nodes {
		states = append(states, n.state)
	}
	return states
}

func newFrontier[S comparable, A any](strategy Strategy) frontier[S, A] {
	switch strategy {
	case StrategyDepthFirst:
		return &lifoFrontier[S, A]{}
	case StrategyBreadthFirst:
		return &fifoFrontier[S, A]{}
	case StrategyGreedy:
		return newPriorityFrontier[S, A](false)
	default:
		return newPriorityFrontier[S, A](true)
	}
}
