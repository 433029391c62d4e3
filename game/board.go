package game

import (
	"math"
	"strings"
)

// Knight offsets, in the order moves are enumerated
var directions = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is an isolation board where players move like chess knights and every
// visited cell becomes blocked.
type Board struct {
	height    int
	width     int
	blocked   []bool // Indexed by row*width + col
	locations [3]Move
	active    Player
	inactive  Player
	plies     int
}

// NewBoard returns an empty board with Player1 to move.
func NewBoard(height, width int) *Board {
	if height <= 0 || width <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		height:    height,
		width:     width,
		blocked:   make([]bool, height*width),
		locations: [3]Move{NoMove, NoMove, NoMove},
		active:    Player1,
		inactive:  Player2,
	}
}

// copy of the Board.
func (b *Board) copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)

	c := *b
	c.blocked = blocked
	return &c
}

// WithBlocked returns a copy of the board with the given cells blocked.
func (b *Board) WithBlocked(cells ...Move) *Board {
	c := b.copy()
	for _, cell := range cells {
		if !c.inBounds(cell) {
			panic("blocked cell is out of bounds")
		}
		c.blocked[c.index(cell)] = true
	}
	return c
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

func (b *Board) ActivePlayer() Player   { return b.active }
func (b *Board) InactivePlayer() Player { return b.inactive }

// Plies is the number of moves played so far.
func (b *Board) Plies() int { return b.plies }

func (b *Board) Opponent(player Player) Player {
	switch player {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic("unknown player")
	}
}

func (b *Board) Location(player Player) Move {
	return b.locations[player]
}

func (b *Board) BlankSpaces() []Move {
	blanks := make([]Move, 0, len(b.blocked))
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if !b.blocked[row*b.width+col] {
				blanks = append(blanks, Move{Row: row, Col: col})
			}
		}
	}
	return blanks
}

func (b *Board) LegalMoves() []Move {
	return b.MovesFor(b.active)
}

// MovesFor returns the moves available to player as if it were to move.
// Unplaced players may move to any blank cell.
func (b *Board) MovesFor(player Player) []Move {
	from := b.locations[player]
	if from == NoMove {
		return b.BlankSpaces()
	}

	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		to := Move{Row: from.Row + d[0], Col: from.Col + d[1]}
		if b.inBounds(to) && !b.blocked[b.index(to)] {
			moves = append(moves, to)
		}
	}
	return moves
}

// Forecast returns a new board with move applied for the active player and the
// turn passed to the opponent. The move is assumed to be legal.
func (b *Board) Forecast(move Move) State {
	c := b.copy()
	c.blocked[c.index(move)] = true
	c.locations[c.active] = move
	c.active, c.inactive = c.inactive, c.active
	c.plies++
	return c
}

func (b *Board) IsLoser(player Player) bool {
	return player == b.active && len(b.LegalMoves()) == 0
}

func (b *Board) IsWinner(player Player) bool {
	return player == b.inactive && len(b.LegalMoves()) == 0
}

func (b *Board) Utility(player Player) float64 {
	if len(b.LegalMoves()) > 0 {
		return 0
	}
	if player == b.inactive {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := Move{Row: row, Col: col}
			switch {
			case cell == b.locations[Player1]:
				sb.WriteByte('1')
			case cell == b.locations[Player2]:
				sb.WriteByte('2')
			case b.blocked[b.index(cell)]:
				sb.WriteByte('X')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

func (b *Board) index(m Move) int {
	return m.Row*b.width + m.Col
}
