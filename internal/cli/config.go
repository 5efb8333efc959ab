package cli

import (
	"os"
	"strconv"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/logging"
)

// Config holds CLI configuration
type Config struct {
	Size     int // 0 means ask
	Mines    int // negative means ask
	Seed     int64
	LogFile  string
	LogLevel string
}

// DefaultConfig returns a Config with values taken from the environment.
func DefaultConfig() *Config {
	return &Config{
		Size:     getEnvInt("MINESWEEPER_SIZE", 0),
		Mines:    getEnvInt("MINESWEEPER_MINES", -1),
		Seed:     int64(getEnvInt("MINESWEEPER_SEED", 0)),
		LogFile:  os.Getenv("MINESWEEPER_LOG_FILE"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// Game returns the game configuration.
func (c *Config) Game() game.Config {
	return game.Config{Size: c.Size, Mines: c.Mines, Seed: c.Seed}
}

// Logging returns the logger options.
func (c *Config) Logging() logging.Options {
	return logging.Options{Level: c.LogLevel, File: c.LogFile}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt falls back to defaultVal when the variable is unset or not a number.
func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
