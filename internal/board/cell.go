// Package board implements the minesweeper board engine: the grid model,
// deferred mine placement, neighbor counts and the reveal algorithm.
package board

// Visibility is what the player currently sees of a cell.
type Visibility int

const (
	// Closed cells have not been revealed.
	Closed Visibility = iota
	// Open cells have been revealed.
	Open
	// Flagged cells are closed cells the player has marked as a mine.
	Flagged
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is a single square of the board.
type Cell struct {
	Mine       bool       // Set during generation only
	Visibility Visibility // Changed by open and flag commands
	Neighbors  int        // Mines among the up-to-8 adjacent cells
}

// IsOpen reports whether the cell has been revealed.
func (c Cell) IsOpen() bool {
	return c.Visibility == Open
}

// IsFlagged reports whether the cell carries a flag.
func (c Cell) IsFlagged() bool {
	return c.Visibility == Flagged
}

// Position is a 0-indexed (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}
