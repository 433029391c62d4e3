package searcher

import (
	"isolation/game"
	"math"
)

// mockNode is an explicit game tree. Values are from player1's perspective:
// value is the heuristic score at a cutoff, utility the exact score of a node
// without children.
type mockNode struct {
	value    float64
	utility  float64
	children []*mockNode
}

func leaf(score float64) *mockNode {
	return &mockNode{value: score, utility: score}
}

func branch(value float64, children ...*mockNode) *mockNode {
	return &mockNode{value: value, children: children}
}

func (n *mockNode) height() int {
	h := 0
	for _, c := range n.children {
		h = max(h, c.height()+1)
	}
	return h
}

// mockState walks a mockNode tree; move i is Move{Row: 0, Col: i}
type mockState struct {
	node   *mockNode
	active game.Player
}

func newMockState(root *mockNode) mockState {
	return mockState{node: root, active: game.Player1}
}

func (m mockState) ActivePlayer() game.Player { return m.active }

func (m mockState) Opponent(player game.Player) game.Player {
	if player == game.Player1 {
		return game.Player2
	}
	return game.Player1
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i := range moves {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (m mockState) MovesFor(player game.Player) []game.Move {
	if player == m.active {
		return m.LegalMoves()
	}
	return nil
}

func (m mockState) Forecast(move game.Move) game.State {
	return mockState{node: m.node.children[move.Col], active: m.Opponent(m.active)}
}

func (m mockState) IsWinner(player game.Player) bool {
	return len(m.node.children) == 0 && m.Utility(player) > 0
}

func (m mockState) IsLoser(player game.Player) bool {
	return len(m.node.children) == 0 && m.Utility(player) < 0
}

func (m mockState) Utility(player game.Player) float64 {
	if player == game.Player1 {
		return m.node.utility
	}
	return -m.node.utility
}

func (m mockState) Location(player game.Player) game.Move { return game.NoMove }
func (m mockState) Height() int                          { return 1 }
func (m mockState) Width() int                           { return len(m.node.children) }

// BlankSpaces reports one cell per ply left in the tree
func (m mockState) BlankSpaces() []game.Move {
	return make([]game.Move, m.node.height())
}

// evaluateNode reads the heuristic value stored in the tree
func evaluateNode(state game.State, player game.Player) float64 {
	value := state.(mockState).node.value
	if player == game.Player1 {
		return value
	}
	return -value
}

// textbookTree is the two-ply tree from Russell & Norvig, root value 3
func textbookTree() *mockNode {
	return branch(0,
		branch(1, leaf(3), leaf(12), leaf(8)),
		branch(9, leaf(2), leaf(4), leaf(6)),
		branch(4, leaf(14), leaf(5), leaf(2)),
	)
}

// plentyOfTime never runs out
func plentyOfTime() float64 {
	return math.MaxFloat64
}

// budget allows the given number of time checks before running out
func budget(checks int) TimeLeft {
	calls := 0
	return func() float64 {
		calls++
		if calls > checks {
			return 0
		}
		return 1000
	}
}
