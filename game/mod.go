package game

import "fmt"

// Position is a cell on the board addressed by column and row.
type Position struct {
	Col int
	Row int
}

// NoPosition marks a player that has not been placed yet, or the absence of a
// legal move.
var NoPosition = Position{Col: -1, Row: -1}

func (p Position) String() string {
	if p == NoPosition {
		return "(-)"
	}
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Player identifies one of the two sides of a game.
type Player int

const (
	First Player = iota
	Second
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	return fmt.Sprintf("player%d", int(p)+1)
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Width() int
	Height() int
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(player Player) Player
	// Location returns NoPosition until the player has been placed
	Location(player Player) Position
	// LegalMoves of the given player, in a stable order; empty when stuck
	LegalMoves(player Player) []Position
	// Moves is LegalMoves of the active player
	Moves() []Position
	// Play returns the state after the active player moves; move must be legal
	Play(move Position) State
	MoveIsLegal(move Position) bool
	IsLoser(player Player) bool
	IsWinner(player Player) bool
	Hash() StateHash
}
