package engine

import (
	"errors"
	"isolation/experiments/metrics"
	"isolation/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrTurnTimeout = errors.New("turn time limit exceeded")
)

type Engine interface {
	// Run plays a game till one player cannot move or forfeits
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Engine = (*LocalEngine)(nil)
