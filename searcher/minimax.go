package searcher

import "isolation/game"

// Minimax returns the best score and move for the searching player within
// depth plies. Ties keep the earliest move in the order the state lists them.
func (s *Search) Minimax(state game.State, depth int, maximizing bool) (Result, error) {
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
		// Forecast switches the player to move
		child, err := s.Minimax(state.Forecast(move), depth-1, !maximizing)
		if err != nil {
			return Result{}, err
		}
		if i == 0 || improves(child.Score, best.Score, maximizing) {
			best = Result{Score: child.Score, Move: move}
		}
	}
	return best, nil
}

// improves compares strictly, so earlier moves win ties
func improves(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
