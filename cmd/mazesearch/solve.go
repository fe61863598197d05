package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/internal/config"
	"github.com/pdrpinto/search/maze"
	"github.com/spf13/cobra"
)

// plan is the strategy-independent view of a result that the CLI prints.
type plan struct {
	found    bool
	actions  []maze.Direction
	cells    []maze.Point
	cost     float64
	expanded int
}

func runSolve(cmd *cobra.Command, cfg config.Config, render bool) error {
	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	file, err := os.Open(cfg.Search.Layout)
	if err != nil {
		return fmt.Errorf("open layout: %w", err)
	}
	defer file.Close()
	layout, err := maze.Parse(file)
	if err != nil {
		return fmt.Errorf("layout %s: %w", cfg.Search.Layout, err)
	}

	strategy, err := search.ParseStrategy(cfg.Search.Strategy)
	if err != nil {
		return err
	}
	logger.Info("solving maze",
		slog.String("layout", cfg.Search.Layout),
		slog.String("problem", cfg.Search.Problem),
		slog.String("strategy", strategy.String()),
		slog.String("heuristic", cfg.Search.Heuristic),
		slog.Int("width", layout.Width),
		slog.Int("height", layout.Height),
		slog.Int("targets", len(layout.Targets)),
	)

	var result plan
	switch cfg.Search.Problem {
	case config.ProblemFood:
		result, err = solveFood(layout, strategy, cfg.Search, logger)
	default:
		result, err = solvePosition(layout, strategy, cfg.Search, logger)
	}
	if err != nil {
		return err
	}

	logger.Info("search finished",
		slog.Bool("found", result.found),
		slog.Float64("cost", result.cost),
		slog.Int("expanded", result.expanded),
	)
	printPlan(cmd.OutOrStdout(), strategy, result)
	if render && result.found {
		fmt.Fprint(cmd.OutOrStdout(), layout.Render(result.cells))
	}
	return nil
}

func solvePosition(layout *maze.Layout, strategy search.Strategy, cfg config.SearchConfig, logger *slog.Logger) (plan, error) {
	costs := map[string]maze.CostFunc{
		config.CostUnit:     maze.UnitCost,
		config.CostStayEast: maze.StayEastCost,
		config.CostStayWest: maze.StayWestCost,
	}
	problem, err := maze.NewPositionProblem(layout, maze.WithCostFunc(costs[cfg.Cost]))
	if err != nil {
		return plan{}, err
	}

	heuristics := map[string]search.Heuristic[maze.Point, maze.Direction]{
		config.HeuristicNull:      search.NullHeuristic[maze.Point, maze.Direction],
		config.HeuristicManhattan: maze.ManhattanHeuristic,
		config.HeuristicEuclidean: maze.EuclideanHeuristic,
	}
	result, err := search.Run(strategy, problem, heuristics[cfg.Heuristic], search.WithLogger(logger))
	if err != nil {
		return plan{}, err
	}
	return plan{
		found:    result.Found,
		actions:  result.Actions,
		cells:    result.Path,
		cost:     result.TotalCost,
		expanded: result.ExpandedNodes,
	}, nil
}

func solveFood(layout *maze.Layout, strategy search.Strategy, cfg config.SearchConfig, logger *slog.Logger) (plan, error) {
	problem := maze.NewFoodProblem(layout)

	var heuristic search.Heuristic[maze.FoodState, maze.Direction]
	if cfg.Heuristic == config.HeuristicFood {
		heuristic = maze.FoodHeuristic(maze.NewFoodCache())
	}
	result, err := search.Run(strategy, problem, heuristic, search.WithLogger(logger))
	if err != nil {
		return plan{}, err
	}
	cells := make([]maze.Point, 0, len(result.Path))
	for _, state := range result.Path {
		cells = append(cells, state.Pos)
	}
	return plan{
		found:    result.Found,
		actions:  result.Actions,
		cells:    cells,
		cost:     result.TotalCost,
		expanded: result.ExpandedNodes,
	}, nil
}

func printPlan(w io.Writer, strategy search.Strategy, result plan) {
	fmt.Fprintf(w, "strategy: %s\n", strategy)
	if !result.found {
		fmt.Fprintf(w, "no path found after expanding %d nodes\n", result.expanded)
		return
	}
	actions := make([]string, 0, len(result.actions))
	for _, action := range result.actions {
		actions = append(actions, string(action))
	}
	fmt.Fprintf(w, "cost: %g\n", result.cost)
	fmt.Fprintf(w, "steps: %d\n", len(result.actions))
	fmt.Fprintf(w, "expanded: %d\n", result.expanded)
	fmt.Fprintf(w, "actions: %s\n", strings.Join(actions, " "))
}
