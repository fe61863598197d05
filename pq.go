package search

type priorityQueueItem[S comparable, A any] struct {
	node         *node[S, A]
	sequence     uint64
	IndexInQueue int
}

// priorityQueue is a container/heap min-heap on node priority. Equal
// priorities pop in insertion order.
type priorityQueue[S comparable, A any] []*priorityQueueItem[S, A]

func (queue priorityQueue[S, A]) Len() int { return len(queue) }
func (queue priorityQueue[S, A]) Less(i, j int) bool {
	if queue[i].node.priority != queue[j].node.priority {
		return queue[i].node.priority < queue[j].node.priority
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue priorityQueue[S, A]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue[S, A]) Push(x any) {
	item := x.(*priorityQueueItem[S, A])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue[S, A]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
