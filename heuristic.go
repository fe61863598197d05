package search

// Heuristic returns the estimated remaining cost from state to the nearest goal of problem.
// Estimates must be non-negative; admissible estimates keep UniformCost and AStar results equal.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic estimates zero for every state. With it AStar degenerates
// into UniformCost.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }

// Memoize wraps heuristic with a caller-owned cache keyed by state.
// The cache is only ever appended to; passing a nil cache disables memoization.
func Memoize[S comparable, A any](heuristic Heuristic[S, A], cache map[S]float64) Heuristic[S, A] {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	if cache == nil {
		return heuristic
	}
	return func(state S, problem Problem[S, A]) float64 {
		if estimate, ok := cache[state]; ok {
			return estimate
		}
		estimate := heuristic(state, problem)
		cache[state] = estimate
		return estimate
	}
}
