package searcher

import (
	"errors"
	"fmt"
	"isolation/game"
)

// ErrTimeout aborts a search once the remaining time drops below the threshold.
// It is returned unchanged through every recursive frame.
var ErrTimeout = errors.New("search timed out")

// TimeLeft reports the milliseconds remaining in the current turn
type TimeLeft func() float64

// Result scores a move from the searching player's perspective, whichever
// side is to move at the node that produced it.
type Result struct {
	Score float64
	Move  game.Move
}

type Algorithm string

const (
	Minimax   Algorithm = "minimax"
	AlphaBeta Algorithm = "alphabeta"
)

func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case Minimax, AlphaBeta:
		return a, nil
	default:
		return "", fmt.Errorf("unknown search algorithm %q", name)
	}
}

// MaxPlies bounds how many more moves can be played from state
func MaxPlies(state game.State) int {
	return len(state.BlankSpaces())
}
