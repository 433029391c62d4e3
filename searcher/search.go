package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"math"
)

// DefaultThreshold is the time margin (ms) kept before the turn deadline
const DefaultThreshold = 10.0

type Option func(s *Search)

// Search runs depth-limited adversarial searches on behalf of one player
type Search struct {
	player    game.Player
	timeLeft  TimeLeft
	threshold float64
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithThreshold(threshold float64) Option {
	return func(s *Search) {
		if threshold > 0 {
			s.threshold = threshold
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// New returns a search scoring every node for player.
func New(player game.Player, timeLeft TimeLeft, options ...Option) *Search {
	if timeLeft == nil {
		panic("search requires a time source")
	}
	s := &Search{ // Default values
		player:    player,
		timeLeft:  timeLeft,
		threshold: DefaultThreshold,
		evaluate:  game.DefaultHeuristic.Evaluate(),
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run searches state to depth with the given algorithm, starting on a
// maximizing layer with an open window.
func (s *Search) Run(algorithm Algorithm, state game.State, depth int) (Result, error) {
	depth = clampDepth(state, depth)

	switch algorithm {
	case Minimax:
		return s.Minimax(state, depth, true)
	case AlphaBeta:
		return s.AlphaBeta(state, depth, math.Inf(-1), math.Inf(1), true)
	default:
		panic("unknown search algorithm")
	}
}

// clampDepth bounds depth by the plies left in the game, since no line of
// play can be longer
func clampDepth(state game.State, depth int) int {
	return max(0, min(depth, MaxPlies(state)))
}

// checkTime is the only point where a search can be cancelled
func (s *Search) checkTime() error {
	if s.timeLeft() < s.threshold {
		return ErrTimeout
	}
	return nil
}

// leaf scores terminal and cutoff nodes. Terminal states are detected before
// the depth bound so won and lost games always report their exact utility.
func (s *Search) leaf(state game.State, moves []game.Move, depth int) (Result, bool) {
	if len(moves) == 0 {
		return Result{Score: state.Utility(s.player), Move: game.NoMove}, true
	}
	if depth == 0 {
		return Result{Score: s.evaluate(state, s.player), Move: game.NoMove}, true
	}
	return Result{}, false
}
