package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RevealSuite struct {
	suite.Suite
}

func TestRevealSuite(t *testing.T) {
	suite.Run(t, new(RevealSuite))
}

func (s *RevealSuite) assertVisibility(b *Board, pos Position, expected Visibility) {
	s.T().Helper()
	s.Equal(expected, b.Cell(pos).Visibility, "visibility at %v", pos)
}

// First open tests

func (s *RevealSuite) TestFirstOpenOnFullSafetyZoneWins() {
	b := New(3, 9, nil)

	out := b.Open(Position{1, 1}, true)

	s.Equal(0, b.MineCount())
	s.Equal(StateWon, out.State)
	s.Equal(StateWon, b.State())
	s.Len(out.Changed, 9)
}

func (s *RevealSuite) TestFirstOpenGeneratesAroundTarget() {
	b := New(9, 30, rand.New(rand.NewSource(99)))

	out := b.Open(Position{4, 4}, true)

	s.NotEqual(StateLost, out.State)
	s.Equal(30, b.MineCount())
	s.assertVisibility(b, Position{4, 4}, Open)
	s.Equal(0, b.Cell(Position{4, 4}).Neighbors)
	s.GreaterOrEqual(len(out.Changed), 9)
}

// Cascade tests

func (s *RevealSuite) TestCascadeFloodsZeroRegion() {
	b := planted(5, Position{4, 4})

	out := b.Open(Position{0, 0}, true)

	s.Len(out.Changed, 24)
	s.Equal(Position{0, 0}, out.Changed[0])
	s.assertVisibility(b, Position{3, 3}, Open)
	s.Equal(1, b.Cell(Position{3, 3}).Neighbors)
	s.assertVisibility(b, Position{4, 4}, Closed)
	s.Equal(StateWon, out.State)
}

func (s *RevealSuite) TestCascadeStopsAtNumberedBoundary() {
	b := planted(5,
		Position{0, 2}, Position{1, 2}, Position{2, 2}, Position{3, 2}, Position{4, 2})

	out := b.Open(Position{0, 0}, true)

	s.Len(out.Changed, 10)
	s.Equal(StatePlaying, out.State)
	for row := range 5 {
		s.assertVisibility(b, Position{row, 0}, Open)
		s.assertVisibility(b, Position{row, 1}, Open)
		s.assertVisibility(b, Position{row, 3}, Closed)
		s.assertVisibility(b, Position{row, 4}, Closed)
	}
}

func (s *RevealSuite) TestCascadeSkipsFlaggedCells() {
	b := planted(5, Position{4, 4})
	s.Require().True(b.ToggleFlag(Position{0, 4}))

	out := b.Open(Position{0, 0}, true)

	s.Len(out.Changed, 23)
	s.assertVisibility(b, Position{0, 4}, Flagged)
	// A flagged safe cell is not closed, so it does not hold back the win.
	s.Equal(StateWon, out.State)
}

func (s *RevealSuite) TestNumberedCellDoesNotCascade() {
	b := planted(4, Position{0, 0})

	out := b.Open(Position{1, 1}, true)

	s.Equal([]Position{{1, 1}}, out.Changed)
	s.Equal(StatePlaying, out.State)
}

// No-op tests

func (s *RevealSuite) TestOpenFlaggedCellIsNoOp() {
	b := planted(4, Position{0, 0})
	s.Require().True(b.ToggleFlag(Position{2, 2}))

	out := b.Open(Position{2, 2}, true)

	s.Empty(out.Changed)
	s.assertVisibility(b, Position{2, 2}, Flagged)
	s.Equal(StatePlaying, out.State)
}

func (s *RevealSuite) TestReopenNumberedCellWithoutChordIsIdempotent() {
	b := planted(4, Position{0, 0})
	b.Open(Position{1, 1}, true)

	out := b.Open(Position{1, 1}, false)
	s.Empty(out.Changed)

	out = b.Open(Position{1, 1}, true)
	s.Empty(out.Changed, "no flags placed, so no chord")
	s.Equal(StatePlaying, out.State)
}

func (s *RevealSuite) TestOpenAfterGameOverIsNoOp() {
	b := planted(3, Position{0, 0})
	b.Open(Position{0, 0}, true)
	s.Require().Equal(StateLost, b.State())

	out := b.Open(Position{2, 2}, true)

	s.Empty(out.Changed)
	s.Equal(StateLost, out.State)
	s.assertVisibility(b, Position{2, 2}, Closed)
}

// Loss tests

func (s *RevealSuite) TestOpeningMineLosesWithoutCascade() {
	b := planted(5, Position{2, 2})

	out := b.Open(Position{2, 2}, true)

	s.Equal(StateLost, out.State)
	s.Empty(out.Changed)
	for i := range b.cells {
		s.Equal(Closed, b.cells[i].Visibility)
	}
	pos, ok := b.Detonated()
	s.True(ok)
	s.Equal(Position{2, 2}, pos)
}

// Chord tests

func (s *RevealSuite) TestChordOpensRemainingNeighbors() {
	b := planted(4, Position{0, 0})
	b.Open(Position{1, 1}, true)
	s.Require().True(b.ToggleFlag(Position{0, 0}))

	out := b.Open(Position{1, 1}, true)

	s.Len(out.Changed, 14)
	s.Equal(StateWon, out.State)
	s.assertVisibility(b, Position{0, 0}, Flagged)
}

func (s *RevealSuite) TestChordRequiresUserOpen() {
	b := planted(4, Position{0, 0})
	b.Open(Position{1, 1}, true)
	s.Require().True(b.ToggleFlag(Position{0, 0}))

	out := b.Open(Position{1, 1}, false)

	s.Empty(out.Changed)
	s.Equal(StatePlaying, out.State)
}

func (s *RevealSuite) TestChordNotTriggeredOnFirstReveal() {
	b := planted(4, Position{0, 0}, Position{3, 3})
	s.Require().True(b.ToggleFlag(Position{0, 0}))

	out := b.Open(Position{1, 1}, true)

	s.Equal([]Position{{1, 1}}, out.Changed)
}

func (s *RevealSuite) TestChordWithExtraFlagsStillOpens() {
	b := planted(4, Position{0, 0}, Position{3, 3})
	b.Open(Position{1, 1}, true)
	s.Require().True(b.ToggleFlag(Position{0, 0}))
	s.Require().True(b.ToggleFlag(Position{0, 1}))

	out := b.Open(Position{1, 1}, true)

	s.NotEmpty(out.Changed)
	s.Equal(StateWon, out.State)
	s.assertVisibility(b, Position{1, 0}, Open)
	s.assertVisibility(b, Position{2, 2}, Open)
	s.assertVisibility(b, Position{0, 1}, Flagged)
}

func (s *RevealSuite) TestChordWithWrongFlagLoses() {
	b := planted(4, Position{0, 0})
	b.Open(Position{1, 1}, true)
	s.Require().True(b.ToggleFlag(Position{0, 1}))

	out := b.Open(Position{1, 1}, true)

	s.Equal(StateLost, out.State)
	pos, ok := b.Detonated()
	s.True(ok)
	s.Equal(Position{0, 0}, pos)
}

// Win tests

func (s *RevealSuite) TestWinOnlyWhenLastSafeCellOpens() {
	b := planted(2, Position{0, 0})

	s.Equal(StatePlaying, b.Open(Position{0, 1}, true).State)
	s.Equal(StatePlaying, b.Open(Position{1, 0}, true).State)
	s.Equal(StateWon, b.Open(Position{1, 1}, true).State)
}

// Property tests

func (s *RevealSuite) TestFlagCountHoldsUnderRandomPlay() {
	rng := rand.New(rand.NewSource(4242))

	for game := range 50 {
		size := 3 + rng.Intn(8)
		b := New(size, rng.Intn(size*size/2+1), rand.New(rand.NewSource(int64(game))))
		b.Open(Position{rng.Intn(size), rng.Intn(size)}, true)

		for range 200 {
			if b.State().IsOver() {
				break
			}
			pos := Position{rng.Intn(size), rng.Intn(size)}
			if rng.Intn(3) == 0 {
				b.Open(pos, true)
			} else {
				b.ToggleFlag(pos)
			}
			s.Require().Equal(countFlagged(b), b.FlagsPlaced())
			s.Require().LessOrEqual(b.FlagsPlaced(), b.MineCount())
		}
	}
}
