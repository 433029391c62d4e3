package experiments

import (
	"errors"
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/searcher/agent"
	"os"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes a tournament: every match-up is played Games times on a
// fresh Height x Width board.
type Config struct {
	Name         string                `yaml:"name"`
	Games        int                   `yaml:"games"` // Per match up
	Height       int                   `yaml:"height"`
	Width        int                   `yaml:"width"`
	TurnLimit    time.Duration         `yaml:"turn_limit"`
	OpeningPlies int                   `yaml:"opening_plies"`
	Seed         uint64                `yaml:"seed"`
	Workers      int                   `yaml:"workers"` // Games played concurrently
	OutputDir    string                `yaml:"output_dir"`
	Agents       []metrics.AgentConfig `yaml:"agents"`
	MatchUps     [][2]int              `yaml:"match_ups"` // Pairs of AgentConfig.ID
}

// DefaultConfig pits every default agent variant against the random baseline.
func DefaultConfig() Config {
	return Config{
		Name:         "tournament",
		Games:        meta.GAMES,
		Height:       meta.BoardHeight,
		Width:        meta.BoardWidth,
		TurnLimit:    meta.TurnTimeLimit,
		OpeningPlies: meta.OpeningPlies,
		Seed:         1,
		Workers:      1,
		OutputDir:    "results",
		Agents: []metrics.AgentConfig{
			{ID: 0, Random: true},
			{ID: 1, Algorithm: string(searcher.Minimax), Heuristic: string(game.Mobility), Iterative: true},
			{ID: 2, Algorithm: string(searcher.AlphaBeta), Heuristic: string(game.WallPenalizedMobility), Iterative: true},
			{ID: 3, Algorithm: string(searcher.AlphaBeta), Heuristic: string(game.CenterTiebreakMobility), Iterative: true},
			{ID: 4, Algorithm: string(searcher.AlphaBeta), Heuristic: string(game.CenterTiebreakMobility), Depth: agent.DefaultDepth},
		},
		MatchUps: [][2]int{{1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 4}},
	}
}

// LoadConfig reads a YAML tournament file. Fields left out keep their
// DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate rejects configs that would only fail once the games are running.
func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Height, c.Width)
	}
	if c.TurnLimit <= 0 {
		return fmt.Errorf("%w: turn limit must be positive, got %v", ErrInvalidConfig, c.TurnLimit)
	}
	if c.OpeningPlies < 0 {
		return fmt.Errorf("%w: opening plies must not be negative, got %d", ErrInvalidConfig, c.OpeningPlies)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}

	if dups := lo.FindDuplicatesBy(c.Agents, agentID); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, dups[0].ID)
	}
	for _, a := range c.Agents {
		if a.Random {
			continue
		}
		if _, err := game.ParseHeuristic(a.Heuristic); a.Heuristic != "" && err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, a.ID, err)
		}
		if _, err := searcher.ParseAlgorithm(a.Algorithm); a.Algorithm != "" && err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, a.ID, err)
		}
	}

	agents := lo.KeyBy(c.Agents, agentID)
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no match ups", ErrInvalidConfig)
	}
	for _, matchUp := range c.MatchUps {
		for _, id := range matchUp {
			if _, ok := agents[id]; !ok {
				return fmt.Errorf("%w: match up %v refers to unknown agent %d", ErrInvalidConfig, matchUp, id)
			}
		}
	}
	return nil
}

func agentID(a metrics.AgentConfig) int {
	return a.ID
}

// agentConfig looks up an agent by ID; Validate guarantees it exists.
func (c Config) agentConfig(id int) metrics.AgentConfig {
	a, ok := lo.KeyBy(c.Agents, agentID)[id]
	if !ok {
		panic(fmt.Sprintf("unknown agent %d", id))
	}
	return a
}

// createAgent builds a fresh agent for one game, so no state leaks between games.
func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(seed)
	}

	options := []agent.Option{
		agent.WithIterative(config.Iterative),
		agent.WithMetrics(),
	}
	if config.Algorithm != "" {
		options = append(options, agent.WithAlgorithm(searcher.Algorithm(config.Algorithm)))
	}
	if config.Heuristic != "" {
		options = append(options, agent.WithHeuristic(game.Heuristic(config.Heuristic)))
	}
	if config.Depth > 0 {
		options = append(options, agent.WithDepth(config.Depth))
	}
	if config.Threshold > 0 {
		options = append(options, agent.WithThreshold(config.Threshold))
	}

	return agent.NewSearchAgent(options...)
}
