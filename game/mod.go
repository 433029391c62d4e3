package game

import "fmt"

// Move is a board cell a player moves to.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when a player has no legal move.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// State should be immutable - Forecast always returns a new copy
type State interface {
	ActivePlayer() Player
	Opponent(player Player) Player
	// LegalMoves returns the moves of the player to move, in a fixed order
	LegalMoves() []Move
	MovesFor(player Player) []Move
	Forecast(move Move) State
	IsWinner(player Player) bool
	IsLoser(player Player) bool
	// Utility is +Inf (-Inf) once the game is won (lost) by player, 0 otherwise
	Utility(player Player) float64
	// Location returns NoMove for a player that has not been placed yet
	Location(player Player) Move
	Height() int
	Width() int
	BlankSpaces() []Move
}

// Evaluates a non-terminal state from the point of view of player. Higher is
// better for player; +Inf and -Inf are reserved for won and lost games.
type Evaluate func(state State, player Player) float64
