package searcher

import (
	"isolation/game"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeepen(t *testing.T) {
	t.Run("searching to the end of the tree with plenty of time", func(t *testing.T) {
		for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
			s := New(game.Player1, plentyOfTime, WithEvaluationFn(evaluateNode))

			got := s.Deepen(newMockState(textbookTree()), algorithm)

			require.Equal(t, Outcome{Result: Result{Score: 3, Move: game.Move{Row: 0, Col: 0}}, Depth: 2}, got,
				"%s should stop at the last ply of the tree", algorithm)
		}
	})

	t.Run("keeping the last completed depth on timeout", func(t *testing.T) {
		// Depth 1 takes exactly four time checks: the root and its three replies
		s := New(game.Player1, budget(4), WithEvaluationFn(evaluateNode))

		got := s.Deepen(newMockState(textbookTree()), AlphaBeta)

		require.Equal(t, Outcome{Result: Result{Score: 9, Move: game.Move{Row: 0, Col: 1}}, Depth: 1, TimedOut: true}, got,
			"Should return the depth 1 move, not a partial depth 2 result")
	})

	t.Run("falling back to no move when no depth completes", func(t *testing.T) {
		s := New(game.Player1, budget(0), WithEvaluationFn(evaluateNode))

		got := s.Deepen(newMockState(textbookTree()), Minimax)

		require.Equal(t, Outcome{Result: Result{Move: game.NoMove}, TimedOut: true}, got)
	})

	t.Run("matching fixed-depth search at the depth reached", func(t *testing.T) {
		board := game.NewBoard(4, 4).
			WithBlocked(game.Move{Row: 0, Col: 3}, game.Move{Row: 3, Col: 0}, game.Move{Row: 1, Col: 1}).
			Forecast(game.Move{Row: 0, Col: 0}).
			Forecast(game.Move{Row: 3, Col: 3})

		for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
			deepened := New(game.Player1, plentyOfTime).Deepen(board, algorithm)
			fixed := New(game.Player1, plentyOfTime).Fixed(board, algorithm, deepened.Depth)

			require.False(t, deepened.TimedOut)
			require.Positive(t, deepened.Depth)
			require.Equal(t, fixed.Result, deepened.Result, "%s should match a single search at depth %d", algorithm, deepened.Depth)
		}
	})

	t.Run("stopping once the game is proven", func(t *testing.T) {
		won := leaf(math.Inf(1))
		deep := branch(0, branch(0, branch(0, leaf(1))))
		s := New(game.Player1, plentyOfTime, WithEvaluationFn(evaluateNode))

		got := s.Deepen(newMockState(branch(0, won, deep)), Minimax)

		require.Equal(t, 1, got.Depth, "A proven win cannot improve at deeper depths")
		require.Equal(t, Result{Score: math.Inf(1), Move: game.Move{Row: 0, Col: 0}}, got.Result)
	})
}

func TestFixed(t *testing.T) {
	t.Run("searching once at the configured depth", func(t *testing.T) {
		s := New(game.Player1, plentyOfTime, WithEvaluationFn(evaluateNode))

		got := s.Fixed(newMockState(textbookTree()), AlphaBeta, 1)

		require.Equal(t, Outcome{Result: Result{Score: 9, Move: game.Move{Row: 0, Col: 1}}, Depth: 1}, got)
	})

	t.Run("falling back to no move on timeout", func(t *testing.T) {
		s := New(game.Player1, budget(5), WithEvaluationFn(evaluateNode))

		got := s.Fixed(newMockState(textbookTree()), Minimax, 2)

		require.Equal(t, Outcome{Result: Result{Move: game.NoMove}, TimedOut: true}, got)
	})
}
