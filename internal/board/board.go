package board

import (
	"math/rand"
	"time"
)

// State is the overall state of a game on a board.
type State int

const (
	// StateInit is a fresh board; mines are placed on the first open.
	StateInit State = iota
	// StatePlaying is a generated board with the game in progress.
	StatePlaying
	// StateLost means a mine was opened.
	StateLost
	// StateWon means every safe cell has been opened.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsOver reports whether the state is terminal.
func (s State) IsOver() bool {
	return s == StateLost || s == StateWon
}

// Board is a square minesweeper grid stored row-major in a flat slice.
type Board struct {
	cells     []Cell
	size      int
	mineCount int
	flags     int
	state     State
	detonated *Position
	rng       *rand.Rand
}

// New creates a board in StateInit with every cell closed and no mines.
// A nil rng is replaced by a time-seeded source.
func New(size, mineCount int, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		cells:     make([]Cell, size*size),
		size:      size,
		mineCount: max(mineCount, 0),
		state:     StateInit,
		rng:       rng,
	}
}

// Size returns the side length of the grid.
func (b *Board) Size() int {
	return b.size
}

// MineCount returns the number of mines. It may shrink once during
// generation if fewer cells are eligible than were requested.
func (b *Board) MineCount() int {
	return b.mineCount
}

// FlagsPlaced returns the number of flagged cells.
func (b *Board) FlagsPlaced() int {
	return b.flags
}

// MinesRemaining returns how many mines are not yet accounted for by flags.
func (b *Board) MinesRemaining() int {
	return max(b.mineCount-b.flags, 0)
}

// State returns the current game state.
func (b *Board) State() State {
	return b.state
}

// Detonated returns the mine that ended the game, if any.
func (b *Board) Detonated() (Position, bool) {
	if b.detonated == nil {
		return Position{}, false
	}
	return *b.detonated, true
}

// Contains reports whether pos lies on the grid.
func (b *Board) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

// Index returns the offset of pos in the flat cell slice.
func (b *Board) Index(pos Position) int {
	return pos.Row*b.size + pos.Col
}

// PositionOf is the inverse of Index.
func (b *Board) PositionOf(index int) Position {
	return Position{Row: index / b.size, Col: index % b.size}
}

// Cell returns a copy of the cell at pos.
func (b *Board) Cell(pos Position) Cell {
	return b.cells[b.Index(pos)]
}

// Neighbors returns the grid-adjacent positions of pos, clipped at the edges.
func (b *Board) Neighbors(pos Position) []Position {
	out := make([]Position, 0, 8)
	b.eachAround(pos, func(p Position) {
		if p != pos {
			out = append(out, p)
		}
	})
	return out
}

// eachAround calls fn for every position in the 3x3 block centred on pos,
// including pos itself, clipped to the grid.
func (b *Board) eachAround(pos Position, fn func(Position)) {
	rowMin, rowMax := max(pos.Row-1, 0), min(pos.Row+1, b.size-1)
	colMin, colMax := max(pos.Col-1, 0), min(pos.Col+1, b.size-1)
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			fn(Position{Row: row, Col: col})
		}
	}
}

// countClosedSafe returns the number of non-mine cells still closed.
func (b *Board) countClosedSafe() int {
	count := 0
	for _, c := range b.cells {
		if !c.Mine && c.Visibility == Closed {
			count++
		}
	}
	return count
}
