package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove returns a move and performance metrics (if collected) for the player to move in state
	FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, metrics.SearchMetric)
}
