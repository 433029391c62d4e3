package game

// mockState reports fixed move lists and locations, so heuristics can be
// checked without constructing a reachable board.
type mockState struct {
	height    int
	width     int
	active    Player
	moves     map[Player][]Move
	locations map[Player]Move
}

func (m mockState) ActivePlayer() Player { return m.active }

func (m mockState) Opponent(player Player) Player {
	if player == Player1 {
		return Player2
	}
	return Player1
}

func (m mockState) LegalMoves() []Move { return m.moves[m.active] }

func (m mockState) MovesFor(player Player) []Move { return m.moves[player] }

func (m mockState) Forecast(move Move) State { return m }

func (m mockState) IsWinner(player Player) bool {
	return player != m.active && len(m.LegalMoves()) == 0
}

func (m mockState) IsLoser(player Player) bool {
	return player == m.active && len(m.LegalMoves()) == 0
}

func (m mockState) Utility(player Player) float64 {
	score, _ := outcome(m, player)
	return score
}

func (m mockState) Location(player Player) Move {
	if loc, ok := m.locations[player]; ok {
		return loc
	}
	return NoMove
}

func (m mockState) Height() int { return m.height }
func (m mockState) Width() int  { return m.width }

func (m mockState) BlankSpaces() []Move { return nil }

func cells(n int, row int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = Move{Row: row, Col: i + 1}
	}
	return moves
}
