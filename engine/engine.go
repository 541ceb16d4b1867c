package engine

import (
	"fmt"

	"isolation/game"
	"isolation/searcher"
)

// Reason tells why a game ended.
type Reason int

const (
	NoMoves     Reason = iota // The loser had no legal move left
	Timeout                   // The loser returned after its clock ran out
	IllegalMove               // The loser returned a move it could not play
)

func (r Reason) String() string {
	switch r {
	case NoMoves:
		return "no-moves"
	case Timeout:
		return "timeout"
	case IllegalMove:
		return "illegal-move"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

type MoveMetrics struct {
	Step   int
	Player game.Player
	Move   game.Position
	searcher.SearchMetrics
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner  game.Player
	Loser   game.Player
	Reason  Reason
	Moves   []game.Position // Moves played, in order
	Metrics []MoveMetrics   // One entry per decision, including the losing one
	Board   *game.Board     // Final position
}
