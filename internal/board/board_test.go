package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planted returns a board with mines at exactly the given positions.
func planted(size int, mines ...Position) *Board {
	b := New(size, 0, rand.New(rand.NewSource(1)))
	b.Plant(mines)
	return b
}

// countFlagged counts flagged cells by scanning the grid.
func countFlagged(b *Board) int {
	count := 0
	for i := range b.cells {
		if b.cells[i].Visibility == Flagged {
			count++
		}
	}
	return count
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateInit, "init"},
		{StatePlaying, "playing"},
		{StateLost, "lost"},
		{StateWon, "won"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestVisibilityString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "flagged", Flagged.String())
	assert.Equal(t, "unknown", Visibility(7).String())
}

func TestStateIsOver(t *testing.T) {
	assert.False(t, StateInit.IsOver())
	assert.False(t, StatePlaying.IsOver())
	assert.True(t, StateLost.IsOver())
	assert.True(t, StateWon.IsOver())
}

func TestNewBoard(t *testing.T) {
	b := New(6, 5, nil)

	assert.Equal(t, 6, b.Size())
	assert.Equal(t, 5, b.MineCount())
	assert.Equal(t, 0, b.FlagsPlaced())
	assert.Equal(t, StateInit, b.State())

	for row := range 6 {
		for col := range 6 {
			cell := b.Cell(Position{Row: row, Col: col})
			assert.Equal(t, Cell{}, cell, "cell (%d,%d) should be default", row, col)
		}
	}

	_, ok := b.Detonated()
	assert.False(t, ok)
}

func TestNewBoardClampsNegativeMineCount(t *testing.T) {
	b := New(4, -3, nil)
	assert.Equal(t, 0, b.MineCount())
}

func TestIndexRoundTrip(t *testing.T) {
	b := New(7, 0, nil)
	for i := range 49 {
		pos := b.PositionOf(i)
		require.True(t, b.Contains(pos))
		assert.Equal(t, i, b.Index(pos))
	}
	assert.Equal(t, 7*3+4, b.Index(Position{Row: 3, Col: 4}))
}

func TestContains(t *testing.T) {
	b := New(3, 0, nil)

	tests := []struct {
		pos      Position
		expected bool
	}{
		{Position{0, 0}, true},
		{Position{2, 2}, true},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
		{Position{3, 0}, false},
		{Position{0, 3}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, b.Contains(tt.pos), "Contains(%v)", tt.pos)
	}
}

func TestNeighborsClippedAtEdges(t *testing.T) {
	b := New(5, 0, nil)

	tests := []struct {
		name     string
		pos      Position
		expected int
	}{
		{"corner", Position{0, 0}, 3},
		{"far corner", Position{4, 4}, 3},
		{"edge", Position{0, 2}, 5},
		{"side edge", Position{2, 4}, 5},
		{"centre", Position{2, 2}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := b.Neighbors(tt.pos)
			assert.Len(t, neighbors, tt.expected)
			for _, n := range neighbors {
				assert.NotEqual(t, tt.pos, n)
				assert.True(t, b.Contains(n))
			}
		})
	}
}

func TestMinesRemaining(t *testing.T) {
	b := planted(4, Position{0, 0}, Position{3, 3})
	assert.Equal(t, 2, b.MinesRemaining())

	require.True(t, b.ToggleFlag(Position{1, 2}))
	assert.Equal(t, 1, b.MinesRemaining())

	require.True(t, b.ToggleFlag(Position{2, 1}))
	assert.Equal(t, 0, b.MinesRemaining())
}
