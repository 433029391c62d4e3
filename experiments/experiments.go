package experiments

import (
	"context"
	"fmt"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Results summarizes a finished tournament.
type Results struct {
	Dir      string      // Where the CSV files were written
	Wins     map[int]int // AgentConfig.ID -> games won
	Games    int
	Forfeits int
}

// match is a single scheduled game
type match struct {
	id      int
	matchUp int
	first   metrics.AgentConfig // Plays Player1
	second  metrics.AgentConfig // Plays Player2
}

type played struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every match up of config and stores the records under config.OutputDir.
// Each match up is played config.Games times, alternating which agent moves first.
func Run(ctx context.Context, config Config) (Results, error) {
	err := config.Validate()
	if err != nil {
		return Results{}, err
	}

	matches := schedule(config)
	results := make([]played, len(matches))

	log.Info().Msgf("starting %s experiment with %d games...", config.Name, len(matches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Workers)
	for _, m := range matches {
		m := m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("starting matchup %d of %d game %d: agent %d vs agent %d...",
				m.matchUp+1, len(config.MatchUps), m.id, m.first.ID, m.second.ID)

			results[m.id-1] = runGame(config, m)

			log.Info().Msgf("completed game %d with winner: %s", m.id, game.Player(results[m.id-1].game.Winner))
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return Results{}, fmt.Errorf("experiment %s interrupted: %w", config.Name, err)
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	summary := Results{Wins: make(map[int]int), Games: len(matches)}
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)

		if r.game.Forfeit != "" {
			summary.Forfeits++
		}
		switch game.Player(r.game.Winner) {
		case game.Player1:
			summary.Wins[r.game.Agent1]++
		case game.Player2:
			summary.Wins[r.game.Agent2]++
		}
	}

	dir, err := store(config, gameRecords, moveRecords)
	if err != nil {
		return Results{}, err
	}
	summary.Dir = dir

	for _, a := range config.Agents {
		log.Info().Msgf("agent %d won %d games", a.ID, summary.Wins[a.ID])
	}
	return summary, nil
}

// schedule lists the games of every match up, swapping sides after each game
func schedule(config Config) []match {
	matches := []match{}
	for mi, matchUp := range config.MatchUps {
		a1 := config.agentConfig(matchUp[0])
		a2 := config.agentConfig(matchUp[1])
		for i := 0; i < config.Games; i++ {
			m := match{id: len(matches) + 1, matchUp: mi, first: a1, second: a2}
			if i%2 == 1 {
				m.first, m.second = a2, a1
			}
			matches = append(matches, m)
		}
	}
	return matches
}

// runGame plays a single game on a fresh board
func runGame(config Config, m match) played {
	seed := config.Seed + uint64(m.id)*3
	e := engine.NewLocalEngine(
		game.NewBoard(config.Height, config.Width),
		createAgent(m.first, seed+1),
		createAgent(m.second, seed+2),
		engine.WithTimeLimit(config.TurnLimit),
		engine.WithRandomOpening(config.OpeningPlies, seed),
	)

	_, gameMetric, moveMetrics := e.Run()

	r := played{
		game: metrics.GameRecord{
			ID:         m.id,
			Agent1:     m.first.ID,
			Agent2:     m.second.ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{
			Game:       m.id,
			MoveMetric: mm,
		})
	}
	return r
}

func store(config Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}
