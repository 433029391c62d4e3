package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
)

// DefaultDepth is the fixed search depth used when iterative deepening is off
const DefaultDepth = 3

type Option func(a *SearchAgent)

// SearchAgent picks moves with minimax or alpha-beta search under a per-turn
// time budget.
type SearchAgent struct {
	depth     int
	heuristic game.Heuristic
	iterative bool
	algorithm searcher.Algorithm
	threshold float64
	metrics   metrics.Collector
	best      game.Move // Best move of the last fully completed search
}

// WithDepth sets the fixed search depth; it is ignored when iterative deepening is on.
func WithDepth(depth int) Option {
	return func(a *SearchAgent) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithHeuristic(heuristic game.Heuristic) Option {
	return func(a *SearchAgent) {
		if heuristic != "" {
			a.heuristic = heuristic
		}
	}
}

func WithIterative(iterative bool) Option {
	return func(a *SearchAgent) {
		a.iterative = iterative
	}
}

func WithAlgorithm(algorithm searcher.Algorithm) Option {
	return func(a *SearchAgent) {
		if algorithm != "" {
			a.algorithm = algorithm
		}
	}
}

// WithThreshold sets the time (ms) left on the clock at which searches abort.
func WithThreshold(threshold float64) Option {
	return func(a *SearchAgent) {
		if threshold > 0 {
			a.threshold = threshold
		}
	}
}

func WithMetrics() Option {
	return func(a *SearchAgent) {
		a.metrics = metrics.NewCollector()
	}
}

func NewSearchAgent(options ...Option) *SearchAgent {
	a := &SearchAgent{ // Default values
		depth:     DefaultDepth,
		heuristic: game.DefaultHeuristic,
		iterative: true,
		algorithm: searcher.Minimax,
		threshold: searcher.DefaultThreshold,
		metrics:   metrics.NewDummyCollector(),
		best:      game.NoMove,
	}
	for _, option := range options {
		option(a)
	}
	if _, err := game.ParseHeuristic(string(a.heuristic)); err != nil {
		panic(err)
	}
	if _, err := searcher.ParseAlgorithm(string(a.algorithm)); err != nil {
		panic(err)
	}
	return a
}

// FindMove returns the best move found before the time left drops below the
// threshold. It returns NoMove straight away when there are no legal moves,
// and also when the clock runs out before any search depth completes.
func (a *SearchAgent) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, metrics.SearchMetric) {
	a.best = game.NoMove
	if len(state.LegalMoves()) == 0 {
		return a.best, metrics.SearchMetric{}
	}

	a.metrics.Start(string(a.algorithm), string(a.heuristic), a.iterative)
	s := searcher.New(state.ActivePlayer(), timeLeft,
		searcher.WithEvaluationFn(a.heuristic.Evaluate()),
		searcher.WithThreshold(a.threshold),
		searcher.WithMetrics(a.metrics),
	)

	var outcome searcher.Outcome
	if a.iterative {
		outcome = s.Deepen(state, a.algorithm)
	} else {
		outcome = s.Fixed(state, a.algorithm, a.depth)
	}
	a.best = outcome.Move

	if outcome.Depth == 0 {
		log.Warn().Msgf("%s timed out before completing any search depth", state.ActivePlayer())
	}
	log.Debug().Msgf("%s chose %v at depth %d with score %v", state.ActivePlayer(), a.best, outcome.Depth, outcome.Score)

	return a.best, a.metrics.Complete(outcome.Depth, outcome.TimedOut)
}
