package board

// ToggleFlag flips the flag on a closed cell and reports whether anything
// changed. Flags can only be placed while playing, never on open cells, and
// never more of them than there are mines.
func (b *Board) ToggleFlag(pos Position) bool {
	if b.state != StatePlaying {
		return false
	}

	cell := &b.cells[b.Index(pos)]
	switch cell.Visibility {
	case Closed:
		if b.flags >= b.mineCount {
			return false
		}
		cell.Visibility = Flagged
		b.flags++
		return true
	case Flagged:
		cell.Visibility = Closed
		b.flags--
		return true
	default:
		return false
	}
}
