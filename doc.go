// Package search provides generic graph-search algorithms over an abstract
// search problem.
//
// It exposes five strategies that share one expand-frontier loop:
//
//   - DepthFirst: LIFO frontier, deepest branch first.
//   - BreadthFirst: FIFO frontier, shallowest node first.
//   - UniformCost: min-heap on accumulated path cost.
//   - Greedy: min-heap on the heuristic estimate alone.
//   - AStar: min-heap on path cost plus heuristic estimate.
//
// Run dispatches on a Strategy value, and Stepper iterates any strategy one
// expansion at a time to drive UIs or debugging tools.
//
// The library is generic over state and action types. Searches are
// single-threaded and keep no state between calls.
package search
