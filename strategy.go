package search

import (
	"fmt"
	"strings"
)

// Strategy names one of the five frontier disciplines.
type Strategy string

const (
	StrategyDepthFirst   Strategy = "dfs"
	StrategyBreadthFirst Strategy = "bfs"
	StrategyUniformCost  Strategy = "ucs"
	StrategyGreedy       Strategy = "greedy"
	StrategyAStar        Strategy = "astar"
)

var strategyAliases = map[string]Strategy{
	"dfs":                StrategyDepthFirst,
	"depthfirst":         StrategyDepthFirst,
	"depthfirstsearch":   StrategyDepthFirst,
	"bfs":                StrategyBreadthFirst,
	"breadthfirst":       StrategyBreadthFirst,
	"breadthfirstsearch": StrategyBreadthFirst,
	"ucs":                StrategyUniformCost,
	"uniformcost":        StrategyUniformCost,
	"uniformcostsearch":  StrategyUniformCost,
	"gs":                 StrategyGreedy,
	"greedy":             StrategyGreedy,
	"greedysearch":       StrategyGreedy,
	"astar":              StrategyAStar,
	"a*":                 StrategyAStar,
	"astarsearch":        StrategyAStar,
}

// Strategies returns every strategy in a fixed order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyDepthFirst,
		StrategyBreadthFirst,
		StrategyUniformCost,
		StrategyGreedy,
		StrategyAStar,
	}
}

// ParseStrategy accepts the short names plus their spelled-out forms,
// ignoring case, dashes and underscores.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if strategy, ok := strategyAliases[key]; ok {
		return strategy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) String() string { return string(s) }

// Informed reports whether the strategy consults a heuristic.
func (s Strategy) Informed() bool {
	return s == StrategyGreedy || s == StrategyAStar
}

// CostAware reports whether the strategy orders its frontier by path cost.
func (s Strategy) CostAware() bool {
	return s == StrategyUniformCost || s == StrategyAStar
}

func (s Strategy) valid() bool {
	switch s {
	case StrategyDepthFirst, StrategyBreadthFirst, StrategyUniformCost, StrategyGreedy, StrategyAStar:
		return true
	}
	return false
}
