// Package config loads mazesearch settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdrpinto/search"
	"gopkg.in/yaml.v3"
)

// Problem kinds.
const (
	ProblemPosition = "position"
	ProblemFood     = "food"
)

// Heuristic names.
const (
	HeuristicNull      = "null"
	HeuristicManhattan = "manhattan"
	HeuristicEuclidean = "euclidean"
	HeuristicFood      = "food"
)

// Step cost models for position problems.
const (
	CostUnit     = "unit"
	CostStayEast = "stay_east"
	CostStayWest = "stay_west"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the full mazesearch configuration.
type Config struct {
	// Search selects the problem, strategy and heuristic.
	Search SearchConfig `yaml:"search"`

	// Log controls the slog handler.
	Log LogConfig `yaml:"log"`

	// Server configures the step visualiser.
	Server ServerConfig `yaml:"server"`
}

type SearchConfig struct {
	Layout    string `yaml:"layout"`
	Problem   string `yaml:"problem"`
	Strategy  string `yaml:"strategy"`
	Heuristic string `yaml:"heuristic"`
	Cost      string `yaml:"cost"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Problem:   ProblemPosition,
			Strategy:  string(search.StrategyAStar),
			Heuristic: HeuristicManhattan,
			Cost:      CostUnit,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and the combinations between them.
func (c Config) Validate() error {
	if _, err := search.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch c.Search.Problem {
	case ProblemPosition:
		switch c.Search.Heuristic {
		case HeuristicNull, HeuristicManhattan, HeuristicEuclidean:
		default:
			return fmt.Errorf("%w: heuristic %q does not apply to %s problems", ErrInvalidConfig, c.Search.Heuristic, c.Search.Problem)
		}
		switch c.Search.Cost {
		case CostUnit, CostStayEast, CostStayWest:
		default:
			return fmt.Errorf("%w: unknown cost %q", ErrInvalidConfig, c.Search.Cost)
		}
	case ProblemFood:
		switch c.Search.Heuristic {
		case HeuristicNull, HeuristicFood:
		default:
			return fmt.Errorf("%w: heuristic %q does not apply to %s problems", ErrInvalidConfig, c.Search.Heuristic, c.Search.Problem)
		}
		if c.Search.Cost != CostUnit {
			return fmt.Errorf("%w: %s problems only support %s cost", ErrInvalidConfig, ProblemFood, CostUnit)
		}
	default:
		return fmt.Errorf("%w: unknown problem %q", ErrInvalidConfig, c.Search.Problem)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return l, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
	return l, nil
}

// NewLogger builds a slog logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, options)), nil
	}
	return slog.New(slog.NewTextHandler(w, options)), nil
}
