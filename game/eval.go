package game

import (
	"fmt"
	"math"
)

type Heuristic string

const (
	Mobility               Heuristic = "mobility"
	WallPenalizedMobility  Heuristic = "wall-penalized-mobility"
	CenterTiebreakMobility Heuristic = "mobility-with-positional-tiebreak"
)

// DefaultHeuristic is used when an agent is not configured with one.
const DefaultHeuristic = CenterTiebreakMobility

func ParseHeuristic(name string) (Heuristic, error) {
	switch h := Heuristic(name); h {
	case Mobility, WallPenalizedMobility, CenterTiebreakMobility:
		return h, nil
	default:
		return "", fmt.Errorf("unknown heuristic %q", name)
	}
}

// Evaluate returns the evaluation function implementing the heuristic
func (h Heuristic) Evaluate() Evaluate {
	switch h {
	case Mobility:
		return EvaluateMobility
	case WallPenalizedMobility:
		return EvaluateWallPenalized
	case CenterTiebreakMobility:
		return EvaluateCenterTiebreak
	default:
		panic(fmt.Sprintf("unknown heuristic %q", h))
	}
}

// EvaluateMobility scores the difference between player's and the opponent's number of legal moves
func EvaluateMobility(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	own := len(s.MovesFor(player))
	opp := len(s.MovesFor(s.Opponent(player)))
	return float64(own - opp)
}

// EvaluateWallPenalized scores mobility, discounting every move that lands on the outer ring of the board
func EvaluateWallPenalized(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	own := s.MovesFor(player)
	opp := s.MovesFor(s.Opponent(player))
	ownScore := len(own) - countOnWall(s, own)
	oppScore := len(opp) - countOnWall(s, opp)
	return float64(ownScore - oppScore)
}

// EvaluateCenterTiebreak scores mobility, breaking ties by which player sits closer to the center
func EvaluateCenterTiebreak(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	opponent := s.Opponent(player)
	own := len(s.MovesFor(player))
	opp := len(s.MovesFor(opponent))
	if own != opp {
		return float64(own - opp)
	}

	// Stays below 1 in magnitude on boards up to 9x9, so it never outweighs a mobility gap
	ownLoc, oppLoc := s.Location(player), s.Location(opponent)
	if ownLoc == NoMove || oppLoc == NoMove {
		return 0
	}
	center := Move{Row: s.Height() / 2, Col: s.Width() / 2}
	ownDistance := manhattan(ownLoc, center)
	oppDistance := manhattan(oppLoc, center)
	return float64(oppDistance-ownDistance) / 10.
}

// outcome short circuits won and lost games
func outcome(s State, player Player) (float64, bool) {
	if s.IsWinner(player) {
		return math.Inf(1), true
	}
	if s.IsLoser(player) {
		return math.Inf(-1), true
	}
	return 0, false
}

func countOnWall(s State, moves []Move) int {
	count := 0
	for _, m := range moves {
		if m.Row == 0 || m.Row == s.Height()-1 || m.Col == 0 || m.Col == s.Width()-1 {
			count++
		}
	}
	return count
}

func manhattan(a, b Move) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
