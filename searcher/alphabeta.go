package searcher

import "isolation/game"

// AlphaBeta is Minimax with alpha-beta pruning. alpha is the score the
// maximizing side can already guarantee, beta the score the minimizing side
// can; a layer stops examining moves once its best score falls outside
// (alpha, beta). The root score matches Minimax at the same depth.
func (s *Search) AlphaBeta(state game.State, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	if err := s.checkTime(); err != nil {
		return Result{}, err
	}
	s.metrics.AddNode()

	moves := state.LegalMoves()
	if result, ok := s.leaf(state, moves, depth); ok {
		return result, nil
	}

	var best Result
	for i, move := range moves {
		child, err := s.AlphaBeta(state.Forecast(move), depth-1, alpha, beta, !maximizing)
		if err != nil {
			return Result{}, err
		}
		if i == 0 || improves(child.Score, best.Score, maximizing) {
			best = Result{Score: child.Score, Move: move}
		}

		if maximizing {
			if best.Score >= beta {
				s.metrics.AddPrune()
				return best, nil
			}
			alpha = max(alpha, best.Score)
		} else {
			if best.Score <= alpha {
				s.metrics.AddPrune()
				return best, nil
			}
			beta = min(beta, best.Score)
		}
	}
	return best, nil
}
