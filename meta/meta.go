// meta/meta.go
package meta

import "time"

// BoardHeight defines the default number of board rows.
const BoardHeight = 7

// BoardWidth defines the default number of board columns.
const BoardWidth = 7

// TurnTimeLimit defines the wall clock budget of a single turn.
const TurnTimeLimit = 150 * time.Millisecond

// OpeningPlies defines how many moves are played at random before agents take over.
const OpeningPlies = 2

// GAMES defines the number of games per match-up.
const GAMES = 10
