package searcher

import (
	"errors"
	"isolation/game"
	"math"

	"github.com/rs/zerolog/log"
)

// Outcome is the result of the deepest fully completed search. A timed out
// search with Depth 0 completed nothing and carries NoMove.
type Outcome struct {
	Result
	Depth    int
	TimedOut bool
}

// Deepen searches state at depth 1, 2, 3, ... until the time runs out or the
// depth reaches the number of plies left in the game, keeping the result of
// the last depth that completed.
func (s *Search) Deepen(state game.State, algorithm Algorithm) Outcome {
	outcome := Outcome{Result: Result{Move: game.NoMove}}
	maxDepth := MaxPlies(state)

	for depth := 1; depth <= maxDepth; depth++ {
		result, err := s.Run(algorithm, state, depth)
		if errors.Is(err, ErrTimeout) {
			outcome.TimedOut = true
			break
		}
		outcome.Result = result
		outcome.Depth = depth
		log.Debug().Msgf("completed depth %d: move %v score %v", depth, result.Move, result.Score)

		// A proven win or loss cannot change at deeper depths
		if math.IsInf(result.Score, 0) {
			break
		}
	}

	if outcome.TimedOut {
		log.Debug().Msgf("timed out after depth %d", outcome.Depth)
	}
	return outcome
}

// Fixed searches state once at depth, falling back to NoMove on timeout.
func (s *Search) Fixed(state game.State, algorithm Algorithm, depth int) Outcome {
	result, err := s.Run(algorithm, state, depth)
	if errors.Is(err, ErrTimeout) {
		log.Debug().Msgf("timed out searching depth %d", depth)
		return Outcome{Result: Result{Move: game.NoMove}, TimedOut: true}
	}
	return Outcome{Result: result, Depth: clampDepth(state, depth)}
}
