package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

var (
	ErrInvalidSize  = errors.New("board dimensions must be positive")
	ErrOutOfBounds  = errors.New("position is out of bounds")
	ErrCellBlocked  = errors.New("cell is blocked")
	ErrIllegalMove  = errors.New("illegal move")
	ErrAlreadyTaken = errors.New("player is already placed")
)

// knightMoves are the (column, row) displacements tried, in order, from a placed player.
var knightMoves = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is the immutable state of an Isolation game. Every cell a player has
// stood on stays blocked for the rest of the game.
type Board struct {
	width     int
	height    int
	blocked   []bool      // Indexed by row*width + col
	locations [2]Position // NoPosition until placed
	active    Player
	ply       int
}

type BoardOption func(b *Board) error

// WithBlocked blocks cells before the game starts.
func WithBlocked(cells ...Position) BoardOption {
	return func(b *Board) error {
		for _, cell := range cells {
			if !b.inBounds(cell) {
				return fmt.Errorf("blocking %v: %w", cell, ErrOutOfBounds)
			}
			b.blocked[b.index(cell)] = true
		}
		return nil
	}
}

// WithLocation places a player before the game starts. The cell is blocked
// as if the player had moved there.
func WithLocation(player Player, cell Position) BoardOption {
	return func(b *Board) error {
		if !b.inBounds(cell) {
			return fmt.Errorf("placing %v at %v: %w", player, cell, ErrOutOfBounds)
		}
		if b.locations[player] != NoPosition {
			return fmt.Errorf("placing %v at %v: %w", player, cell, ErrAlreadyTaken)
		}
		if b.blocked[b.index(cell)] {
			return fmt.Errorf("placing %v at %v: %w", player, cell, ErrCellBlocked)
		}
		b.blocked[b.index(cell)] = true
		b.locations[player] = cell
		return nil
	}
}

// WithActivePlayer sets the player to move first.
func WithActivePlayer(player Player) BoardOption {
	return func(b *Board) error {
		b.active = player
		return nil
	}
}

// NewBoard returns an empty board with First to move, adjusted by options.
func NewBoard(width, height int, options ...BoardOption) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	b := &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: [2]Position{NoPosition, NoPosition},
		active:    First,
	}
	for _, option := range options {
		if err := option(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)

	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		ply:       b.ply,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Ply() int    { return b.ply }

func (b *Board) ActivePlayer() Player   { return b.active }
func (b *Board) InactivePlayer() Player { return b.active.Opponent() }

func (b *Board) Opponent(player Player) Player {
	return player.Opponent()
}

func (b *Board) Location(player Player) Position {
	return b.locations[player]
}

// IsBlocked reports whether a cell has been visited or blocked from the start.
func (b *Board) IsBlocked(cell Position) bool {
	return b.inBounds(cell) && b.blocked[b.index(cell)]
}

// OpenCells returns every in-bounds cell that is neither blocked nor occupied, row-major.
func (b *Board) OpenCells() []Position {
	cells := make([]Position, 0, len(b.blocked))
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := Position{Col: col, Row: row}
			if b.isOpen(cell) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

func (b *Board) LegalMoves(player Player) []Position {
	from := b.locations[player]
	if from == NoPosition {
		return b.OpenCells()
	}

	moves := make([]Position, 0, len(knightMoves))
	for _, d := range knightMoves {
		to := Position{Col: from.Col + d[0], Row: from.Row + d[1]}
		if b.isOpen(to) {
			moves = append(moves, to)
		}
	}
	return moves
}

func (b *Board) Moves() []Position {
	return b.LegalMoves(b.active)
}

func (b *Board) MoveIsLegal(move Position) bool {
	for _, m := range b.Moves() {
		if m == move {
			return true
		}
	}
	return false
}

// Apply returns the board after the active player moves, leaving b untouched.
func (b *Board) Apply(move Position) (*Board, error) {
	if !b.MoveIsLegal(move) {
		return nil, fmt.Errorf("%v to %v: %w", b.active, move, ErrIllegalMove)
	}
	next := b.Copy()
	next.blocked[next.index(move)] = true
	next.locations[b.active] = move
	next.active = b.active.Opponent()
	next.ply++
	return next, nil
}

func (b *Board) Play(move Position) State {
	next, err := b.Apply(move)
	if err != nil {
		panic(err)
	}
	return next
}

func (b *Board) IsLoser(player Player) bool {
	return player == b.active && len(b.LegalMoves(player)) == 0
}

func (b *Board) IsWinner(player Player) bool {
	return player == b.active.Opponent() && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.width))
	binary.Write(hasher, binary.LittleEndian, int64(b.height))
	binary.Write(hasher, binary.LittleEndian, int64(b.active))

	for _, location := range b.locations {
		binary.Write(hasher, binary.LittleEndian, int64(location.Col))
		binary.Write(hasher, binary.LittleEndian, int64(location.Row))
	}

	for _, blocked := range b.blocked {
		binary.Write(hasher, binary.LittleEndian, blocked)
	}

	return StateHash(hasher.Sum64())
}

// String draws the board with "1" and "2" for the players, "-" for blocked
// cells and " " for open ones.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		sb.WriteString("|")
		for col := 0; col < b.width; col++ {
			cell := Position{Col: col, Row: row}
			switch {
			case cell == b.locations[First]:
				sb.WriteString(" 1 |")
			case cell == b.locations[Second]:
				sb.WriteString(" 2 |")
			case b.blocked[b.index(cell)]:
				sb.WriteString(" - |")
			default:
				sb.WriteString("   |")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) inBounds(cell Position) bool {
	return cell.Col >= 0 && cell.Col < b.width && cell.Row >= 0 && cell.Row < b.height
}

func (b *Board) index(cell Position) int {
	return cell.Row*b.width + cell.Col
}

// isOpen also rules out occupied cells: a player's cell is blocked on arrival.
func (b *Board) isOpen(cell Position) bool {
	return b.inBounds(cell) && !b.blocked[b.index(cell)]
}
