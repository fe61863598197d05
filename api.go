package search

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Problem is generic over state type S and action type A.
// S must be comparable so it can be used in maps.
type Problem[S comparable, A any] interface {
	// StartState returns the state the search begins from.
	StartState() S
	// IsGoal reports whether state satisfies the goal.
	IsGoal(state S) bool
	// Successors lists the states reachable from state in one step.
	Successors(state S) []Successor[S, A]
	// CostOfActions returns the total cost of a legal action sequence.
	CostOfActions(actions []A) float64
}

// Successor represents a reachable state, the action leading to it and the step cost.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Result contains the outcome of a search.
//
// Found distinguishes "no goal reachable" from "the start is a goal": both
// carry no actions, but only the latter has Found set and Path == [start].
type Result[S comparable, A any] struct {
	Actions       []A
	Path          []S
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

var (
	// ErrNilProblem is returned when a search is started without a problem.
	ErrNilProblem = errors.New("search problem is nil")

	// ErrNegativeCost is returned by the cost-aware strategies when a
	// successor carries a negative step cost.
	ErrNegativeCost = errors.New("negative step cost")

	// ErrUnknownStrategy is returned for strategy names that do not map to
	// one of the five search strategies.
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// Expansion describes one node as it leaves the frontier and is expanded.
type Expansion struct {
	State    any
	Cost     float64
	Priority float64
	Depth    int
	Index    int
}

// Options defines parameters for the search.
type Options struct {
	Logger   *slog.Logger
	OnExpand func(Expansion)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger that receives a debug record per search.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithExpandHook registers a callback invoked for every expanded node, in expansion order.
func WithExpandHook(hook func(Expansion)) Option {
	return func(options *Options) { options.OnExpand = hook }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	return searchOptions
}

// DepthFirst searches the deepest nodes in the search tree first.
func DepthFirst[S comparable, A any](problem Problem[S, A], options ...Option) (Result[S, A], error) {
	return Run(StrategyDepthFirst, problem, nil, options...)
}

// BreadthFirst searches the shallowest nodes in the search tree first.
func BreadthFirst[S comparable, A any](problem Problem[S, A], options ...Option) (Result[S, A], error) {
	return Run(StrategyBreadthFirst, problem, nil, options...)
}

// UniformCost searches the node of least total path cost first.
func UniformCost[S comparable, A any](problem Problem[S, A], options ...Option) (Result[S, A], error) {
	return Run(StrategyUniformCost, problem, nil, options...)
}

// Greedy searches the node with the lowest heuristic estimate first.
// A nil heuristic is replaced by NullHeuristic.
func Greedy[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], options ...Option) (Result[S, A], error) {
	return Run(StrategyGreedy, problem, heuristic, options...)
}

// AStar searches the node with the lowest path cost plus heuristic estimate first.
// A nil heuristic is replaced by NullHeuristic.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], options ...Option) (Result[S, A], error) {
	return Run(StrategyAStar, problem, heuristic, options...)
}

// Run executes the given strategy to completion. The heuristic is ignored by
// the uninformed strategies.
func Run[S comparable, A any](
	strategy Strategy,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[S, A], error) {
	searchOptions := applyOptions(options)

	searchEngine, err := newEngine(strategy, problem, heuristic, searchOptions)
	if err != nil {
		recordError(strategy, err)
		return Result[S, A]{}, err
	}

	startTime := time.Now()
	for !searchEngine.done {
		if err := searchEngine.step(); err != nil {
			recordError(strategy, err)
			searchOptions.Logger.Debug("search aborted",
				slog.String("strategy", strategy.String()),
				slog.Int("expanded", searchEngine.expanded),
				slog.String("error", err.Error()),
			)
			return Result[S, A]{}, fmt.Errorf("%s search: %w", strategy, err)
		}
	}
	elapsed := time.Since(startTime)

	result := searchEngine.result
	recordRun(strategy, result.Found, result.ExpandedNodes, elapsed)
	searchOptions.Logger.Debug("search finished",
		slog.String("strategy", strategy.String()),
		slog.Bool("found", result.Found),
		slog.Int("expanded", result.ExpandedNodes),
		slog.Int("steps", len(result.Actions)),
		slog.Float64("cost", result.TotalCost),
		slog.Duration("elapsed", elapsed),
	)
	return result, nil
}
