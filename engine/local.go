package engine

import (
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *LocalEngine)

// LocalEngine plays two agents against each other in-process, giving each
// turn a fixed wall clock budget.
type LocalEngine struct {
	state        game.State
	agents       map[game.Player]agent.Agent
	timeLimit    time.Duration
	openingPlies int
	opening      agent.Agent
}

func WithTimeLimit(limit time.Duration) Option {
	return func(e *LocalEngine) {
		if limit > 0 {
			e.timeLimit = limit
		}
	}
}

// WithRandomOpening plays the first plies moves at random before the agents take over.
func WithRandomOpening(plies int, seed uint64) Option {
	return func(e *LocalEngine) {
		if plies > 0 {
			e.openingPlies = plies
			e.opening = agent.NewRandomAgent(seed)
		}
	}
}

// NewLocalEngine starts a game on state; first plays for the player to move.
func NewLocalEngine(state game.State, first, second agent.Agent, options ...Option) *LocalEngine {
	if first == nil || second == nil {
		panic("need two agents")
	}

	starting := state.ActivePlayer()
	e := &LocalEngine{
		state: state,
		agents: map[game.Player]agent.Agent{
			starting:                 first,
			state.Opponent(starting): second,
		},
		timeLimit: meta.TurnTimeLimit,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns the current game state.
func (e *LocalEngine) State() game.State {
	return e.state
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.state.ActivePlayer()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.state.ActivePlayer())

	var winner game.Player
	for step := 1; ; step++ {
		player := e.state.ActivePlayer()
		if len(e.state.LegalMoves()) == 0 {
			winner = e.state.Opponent(player)
			break
		}

		var move game.Move
		var searchMetric metrics.SearchMetric
		var err error
		if step <= e.openingPlies {
			move, searchMetric = e.opening.FindMove(e.state, nil)
		} else {
			move, searchMetric, err = e.playTurn(e.agents[player])
		}
		if err != nil {
			log.Warn().Err(err).Msgf("%s forfeits at step %d", player, step)
			winner = e.state.Opponent(player)
			gameMetric.Forfeit = err.Error()
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		e.state = e.state.Forecast(move)
		log.Debug().Msgf("step %d: %s moved to %v\n%v", step, player, move, e.state)
	}

	gameMetric.Winner = int(winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	return winner, gameMetric, moveMetrics
}

// playTurn asks a to move within the time limit and checks the answer
func (e *LocalEngine) playTurn(a agent.Agent) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	timeLeft := searcher.TimeLeft(func() float64 {
		return float64(e.timeLimit-time.Since(start)) / float64(time.Millisecond)
	})

	move, searchMetric := a.FindMove(e.state, timeLeft)
	if elapsed := time.Since(start); elapsed > e.timeLimit {
		return move, searchMetric, fmt.Errorf("%w: took %v of %v", ErrTurnTimeout, elapsed, e.timeLimit)
	}
	if !slices.Contains(e.state.LegalMoves(), move) {
		return move, searchMetric, fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}
	return move, searchMetric, nil
}
