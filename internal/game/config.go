package game

import (
	"errors"
	"fmt"
)

// MaxSize bounds the side length of the grid.
const MaxSize = 256

var (
	ErrInvalidSize      = errors.New("board size must be between 1 and 256")
	ErrInvalidMineCount = errors.New("mine count must not be negative")
)

// Config holds game configuration options.
type Config struct {
	// Size is the side length of the square grid.
	Size int
	// Mines is the requested mine count. It is reduced on the first open if
	// the board cannot hold that many outside the safety zone.
	Mines int
	// Seed for mine placement. A seed of 0 means a random seed is used.
	Seed int64
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	if c.Mines < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMineCount, c.Mines)
	}
	return nil
}
