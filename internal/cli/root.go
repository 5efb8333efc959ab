// Package cli implements the minesweeper command line.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/logging"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// playFunc runs one interactive session.
type playFunc func(ctx context.Context, cfg game.Config, logger zerolog.Logger) error

func play(ctx context.Context, cfg game.Config, logger zerolog.Logger) error {
	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.Stdin, play)
}

func newRootCmd(in io.Reader, run playFunc) *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Minesweeper in the terminal",
		Long: `minesweeper plays a square Minesweeper board in the terminal.

The first cell you open is always safe, along with its neighbors.
Size and mine count are asked for when not given as flags.

Keys:
  arrows, w a s d   move
  space, enter      open
  f                 flag
  n                 new game (after the game ends)
  q, esc            quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := askMissing(cfg, bufio.NewReader(in), cmd.OutOrStdout()); err != nil {
				return err
			}

			gameCfg := cfg.Game()
			if err := gameCfg.Validate(); err != nil {
				return err
			}

			logger, closer, err := logging.New(cfg.Logging())
			if err != nil {
				return err
			}
			defer closer.Close()

			logger.Info().
				Int("size", gameCfg.Size).
				Int("mines", gameCfg.Mines).
				Int64("seed", gameCfg.Seed).
				Msg("starting")

			if err := run(cmd.Context(), gameCfg, logger); err != nil {
				logger.Error().Err(err).Msg("game failed")
				return fmt.Errorf("run game: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().IntVarP(&cfg.Size, "size", "s", cfg.Size, "Board side length (env: MINESWEEPER_SIZE)")
	rootCmd.Flags().IntVarP(&cfg.Mines, "mines", "m", cfg.Mines, "Number of mines (env: MINESWEEPER_MINES)")
	rootCmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Mine layout seed, 0 for random (env: MINESWEEPER_SEED)")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file (env: MINESWEEPER_LOG_FILE)")
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (env: LOG_LEVEL)")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// askMissing prompts for the size and mine count when they were not given.
func askMissing(cfg *Config, r *bufio.Reader, w io.Writer) error {
	var err error
	if cfg.Size <= 0 {
		if cfg.Size, err = ReadInt(r, w, "Size? "); err != nil {
			return err
		}
	}
	if cfg.Mines < 0 {
		if cfg.Mines, err = ReadInt(r, w, "Mines? "); err != nil {
			return err
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", telemetry.ServiceName, telemetry.ServiceVersion)
		},
	}
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
