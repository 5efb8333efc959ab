// Package game provides the main game loop and input handling.
package game

import "github.com/samdwyer/minesweeper/internal/board"

// Mode represents what the input loop currently accepts.
type Mode int

const (
	// ModePlaying accepts movement, open and flag commands.
	ModePlaying Mode = iota
	// ModeOver shows the revealed board and waits for new game or quit.
	ModeOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Cursor is the highlighted cell, kept inside the grid.
type Cursor struct {
	Row, Col int
	size     int
}

// NewCursor places a cursor at the top-left of a size x size grid.
func NewCursor(size int) Cursor {
	return Cursor{size: size}
}

// Move shifts the cursor, stopping at the grid edges.
func (c *Cursor) Move(dRow, dCol int) {
	c.Row = min(max(c.Row+dRow, 0), c.size-1)
	c.Col = min(max(c.Col+dCol, 0), c.size-1)
}

// Position returns the cursor as a board position.
func (c Cursor) Position() board.Position {
	return board.Position{Row: c.Row, Col: c.Col}
}
