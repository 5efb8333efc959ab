package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/board"
)

const (
	closedGlyph = '-'
	flagGlyph   = 'F'
	mineGlyph   = '*'

	helpText = "arrows/wasd move  space open  f flag  n new  q quit"
)

// BoardView is the read-only side of a board that the renderer draws.
type BoardView interface {
	Size() int
	Cell(pos board.Position) board.Cell
	State() board.State
	MineCount() int
	MinesRemaining() int
	Detonated() (board.Position, bool)
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid, the remaining-mines counter, a message line and
// the key help. Each cell is two columns wide.
func (r *Renderer) Render(view BoardView, cursor board.Position, message string) {
	r.screen.Clear()

	state := view.State()
	detonated, hasDetonated := view.Detonated()
	size := view.Size()

	for row := range size {
		for col := range size {
			pos := board.Position{Row: row, Col: col}
			ch, style := r.palette.Glyph(view.Cell(pos), state, hasDetonated && pos == detonated)
			if pos == cursor && !state.IsOver() {
				style = style.Background(r.palette.Cursor)
			}
			r.screen.SetContent(col*2, row, ch, style)
		}
	}

	text := tcell.StyleDefault.Foreground(r.palette.Text).Background(r.palette.Background)
	r.screen.DrawText(0, size, Counter(view.MinesRemaining(), view.MineCount()), text)
	r.screen.DrawText(0, size+1, message, text.Bold(true))
	r.screen.DrawText(0, size+2, helpText, text.Dim(true))

	r.screen.Show()
}

// Counter formats the remaining-mines figure zero-padded to the width of
// the total mine count.
func Counter(remaining, total int) string {
	width := len(strconv.Itoa(total))
	return fmt.Sprintf("%0*d", width, remaining)
}

// Glyph chooses the character and style for a cell. After the game ends
// mines are shown, wrong flags are marked and the mine that was hit is
// highlighted.
func (p *Palette) Glyph(cell board.Cell, state board.State, detonated bool) (rune, tcell.Style) {
	base := tcell.StyleDefault.Background(p.Background)

	switch cell.Visibility {
	case board.Open:
		if cell.Neighbors == 0 {
			return ' ', base
		}
		return rune('0' + cell.Neighbors), base.Foreground(p.Digits[cell.Neighbors-1]).Bold(true)

	case board.Flagged:
		if !state.IsOver() || cell.Mine {
			return flagGlyph, base.Foreground(p.Text).Background(p.Flag)
		}
		return flagGlyph, base.Foreground(p.Flag)

	default:
		if cell.Mine {
			switch {
			case detonated:
				return mineGlyph, base.Foreground(p.Background).Background(p.Mine)
			case state == board.StateLost:
				return mineGlyph, base.Foreground(p.Mine)
			case state == board.StateWon:
				return mineGlyph, base.Foreground(p.Mine).Background(p.Reveal)
			}
		}
		return closedGlyph, base.Foreground(p.Closed)
	}
}
