package board

import "github.com/gammazero/deque"

// Outcome reports the effect of one open command.
type Outcome struct {
	Changed []Position // Cells whose visibility changed, in reveal order
	State   State      // Board state after the command
}

// Open reveals the cell at pos and cascades into its neighbors.
//
// Zero-count cells always cascade. A user open on a cell that was already
// open chords: when at least as many neighbors are flagged as the cell's
// count, every closed unflagged neighbor is opened. Cascaded opens are
// never user opens, so they do not chord themselves.
//
// A board still in StateInit is generated first with pos as the safe
// position. Opening a flagged cell, or any cell once the game is over,
// changes nothing.
func (b *Board) Open(pos Position, byUser bool) Outcome {
	if b.state == StateInit {
		b.Generate(pos)
	}
	if b.state != StatePlaying {
		return Outcome{State: b.state}
	}

	var out Outcome
	var queue deque.Deque[Position]

	if !b.reveal(pos, byUser, true, &queue, &out) {
		out.State = b.state
		return out
	}
	for queue.Len() > 0 {
		if !b.reveal(queue.PopFront(), false, false, &queue, &out) {
			out.State = b.state
			return out
		}
	}

	if b.countClosedSafe() == 0 {
		b.state = StateWon
	}
	out.State = b.state
	return out
}

// reveal processes a single position of an open command, queueing any
// neighbors it cascades into. It returns false if a mine was hit.
func (b *Board) reveal(pos Position, byUser, initial bool, queue *deque.Deque[Position], out *Outcome) bool {
	cell := &b.cells[b.Index(pos)]

	if cell.Visibility == Flagged {
		return true
	}
	if cell.Mine {
		b.state = StateLost
		b.detonated = &pos
		return false
	}

	isNew := false
	switch {
	case cell.Visibility == Closed:
		cell.Visibility = Open
		isNew = true
		out.Changed = append(out.Changed, pos)
	case !initial:
		// Queued twice; its cascade already ran.
		return true
	}

	neighbors := b.Neighbors(pos)
	flags := 0
	for _, n := range neighbors {
		if b.cells[b.Index(n)].Visibility == Flagged {
			flags++
		}
	}

	chord := byUser && !isNew && flags >= cell.Neighbors
	if cell.Neighbors != 0 && !chord {
		return true
	}
	for _, n := range neighbors {
		if b.cells[b.Index(n)].Visibility == Closed {
			queue.PushBack(n)
		}
	}
	return true
}
