package main

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/internal/config"
	"github.com/spf13/cobra"
)

var errNoLayout = errors.New("no layout: pass a file or set search.layout")

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

type solveFlags struct {
	problem   string
	strategy  string
	heuristic string
	cost      string
	render    bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:           "mazesearch",
		Short:         "Route an agent through a maze with classical graph search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format (text, json)")

	rootCmd.AddCommand(newSolveCommand(flags), newStrategiesCommand())
	return rootCmd
}

func newSolveCommand(root *rootFlags) *cobra.Command {
	flags := &solveFlags{}
	solveCmd := &cobra.Command{
		Use:   "solve [layout file]",
		Short: "Search a layout and print the plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root, flags, args)
			if err != nil {
				return err
			}
			return runSolve(cmd, cfg, flags.render)
		},
	}
	solveCmd.Flags().StringVarP(&flags.problem, "problem", "p", "", "problem kind (position, food)")
	solveCmd.Flags().StringVarP(&flags.strategy, "strategy", "s", "", "search strategy (dfs, bfs, ucs, greedy, astar)")
	solveCmd.Flags().StringVar(&flags.heuristic, "heuristic", "", "heuristic (null, manhattan, euclidean, food)")
	solveCmd.Flags().StringVar(&flags.cost, "cost", "", "step cost for position problems (unit, stay_east, stay_west)")
	solveCmd.Flags().BoolVar(&flags.render, "render", true, "draw the route over the maze")
	return solveCmd
}

func newStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, strategy := range search.Strategies() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s informed=%-5t cost-aware=%t\n",
					strategy, strategy.Informed(), strategy.CostAware())
			}
		},
	}
}

// loadConfig layers defaults, the config file and explicit flags, in that order.
func loadConfig(cmd *cobra.Command, root *rootFlags, flags *solveFlags, args []string) (config.Config, error) {
	cfg := config.Default()
	if root.configPath != "" {
		loaded, err := config.Load(root.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	overrides := []struct {
		flag   string
		value  string
		target *string
	}{
		{"log-level", root.logLevel, &cfg.Log.Level},
		{"log-format", root.logFormat, &cfg.Log.Format},
		{"problem", flags.problem, &cfg.Search.Problem},
		{"strategy", flags.strategy, &cfg.Search.Strategy},
		{"heuristic", flags.heuristic, &cfg.Search.Heuristic},
		{"cost", flags.cost, &cfg.Search.Cost},
	}
	for _, override := range overrides {
		if cmd.Flags().Changed(override.flag) {
			*override.target = override.value
		}
	}
	if len(args) == 1 {
		cfg.Search.Layout = args[0]
	}
	if cfg.Search.Layout == "" {
		return cfg, errNoLayout
	}
	return cfg, cfg.Validate()
}
