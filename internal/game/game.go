package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/ui"
)

const (
	msgLost = "BOOM! You hit a mine.  n: new game  q: quit"
	msgWon  = "All clear, you win!  n: new game  q: quit"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	board    *board.Board
	cursor   Cursor
	mode     Mode
	message  string
	running  bool

	id      uuid.UUID
	started time.Time
	moves   int

	rng    *rand.Rand
	logger zerolog.Logger
	tracer trace.Tracer
}

// New creates a game on the real terminal.
func New(cfg Config, logger zerolog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := NewWithScreen(cfg, screen, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game that draws to an already initialized screen.
func NewWithScreen(cfg Config, screen *ui.Screen, logger zerolog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	palette, err := ui.LoadPalette()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		running:  true,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
		tracer:   telemetry.Tracer("game"),
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	g.newGame(ctx)

	for g.running {
		g.renderer.Render(g.board, g.cursor.Position(), g.message)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// Board returns the board of the current game.
func (g *Game) Board() *board.Board {
	return g.board
}

// Mode returns the current input mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// newGame discards the current board and starts over with the same config.
func (g *Game) newGame(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.new")
	defer span.End()

	g.id = uuid.New()
	g.board = board.New(g.cfg.Size, g.cfg.Mines, g.rng)
	g.cursor = NewCursor(g.cfg.Size)
	g.mode = ModePlaying
	g.message = ""
	g.started = time.Now()
	g.moves = 0

	span.SetAttributes(
		attribute.String("game.id", g.id.String()),
		attribute.Int("board.size", g.cfg.Size),
		attribute.Int("board.mines_requested", g.cfg.Mines),
	)
	g.logger.Info().
		Str("game_id", g.id.String()).
		Int("size", g.cfg.Size).
		Int("mines", g.cfg.Mines).
		Msg("new game")
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.move(-1, 0)
	case tcell.KeyDown:
		g.move(1, 0)
	case tcell.KeyLeft:
		g.move(0, -1)
	case tcell.KeyRight:
		g.move(0, 1)
	case tcell.KeyEnter:
		g.open(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'n', 'N':
			g.newGame(ctx)
		case 'w', 'W':
			g.move(-1, 0)
		case 's', 'S':
			g.move(1, 0)
		case 'a', 'A':
			g.move(0, -1)
		case 'd', 'D':
			g.move(0, 1)
		case ' ':
			g.open(ctx)
		case 'f', 'F':
			g.flag(ctx)
		}
	}
}

// move shifts the cursor while a game is in progress.
func (g *Game) move(dRow, dCol int) {
	if g.mode != ModePlaying {
		return
	}
	g.cursor.Move(dRow, dCol)
}

// open opens the cell under the cursor, generating the board first if
// this is the opening move.
func (g *Game) open(ctx context.Context) {
	if g.mode != ModePlaying {
		return
	}

	pos := g.cursor.Position()
	ctx, span := g.tracer.Start(ctx, "board.open")
	defer span.End()

	if g.board.State() == board.StateInit {
		g.generate(ctx, pos)
	}

	out := g.board.Open(pos, true)
	g.moves++

	span.SetAttributes(
		attribute.String("game.id", g.id.String()),
		attribute.Int("cell.row", pos.Row),
		attribute.Int("cell.col", pos.Col),
		attribute.Int("cells.changed", len(out.Changed)),
		attribute.String("board.state", out.State.String()),
	)
	g.logger.Debug().
		Str("game_id", g.id.String()).
		Int("row", pos.Row).
		Int("col", pos.Col).
		Int("changed", len(out.Changed)).
		Stringer("state", out.State).
		Msg("open")

	if out.State.IsOver() {
		g.endGame(ctx, out.State)
	}
}

// generate lays out the mines around the first opened cell.
func (g *Game) generate(ctx context.Context, safe board.Position) {
	_, span := g.tracer.Start(ctx, "board.generate")
	defer span.End()

	start := time.Now()
	g.board.Generate(safe)

	span.SetAttributes(
		attribute.String("game.id", g.id.String()),
		attribute.Int("board.size", g.board.Size()),
		attribute.Int("board.mines_requested", g.cfg.Mines),
		attribute.Int("board.mines", g.board.MineCount()),
		attribute.Int64("board.generation_us", time.Since(start).Microseconds()),
	)
	if g.board.MineCount() < g.cfg.Mines {
		g.logger.Warn().
			Str("game_id", g.id.String()).
			Int("requested", g.cfg.Mines).
			Int("placed", g.board.MineCount()).
			Msg("mine count reduced to fit the board")
	}
}

// flag toggles the flag under the cursor.
func (g *Game) flag(ctx context.Context) {
	if g.mode != ModePlaying {
		return
	}

	pos := g.cursor.Position()
	_, span := g.tracer.Start(ctx, "board.flag")
	defer span.End()

	applied := g.board.ToggleFlag(pos)
	if applied {
		g.moves++
	}

	span.SetAttributes(
		attribute.String("game.id", g.id.String()),
		attribute.Int("cell.row", pos.Row),
		attribute.Int("cell.col", pos.Col),
		attribute.Bool("flag.applied", applied),
		attribute.Int("board.flags", g.board.FlagsPlaced()),
	)
	g.logger.Debug().
		Str("game_id", g.id.String()).
		Int("row", pos.Row).
		Int("col", pos.Col).
		Bool("applied", applied).
		Msg("flag")
}

// endGame switches to the end screen and records the outcome.
func (g *Game) endGame(ctx context.Context, state board.State) {
	_, span := g.tracer.Start(ctx, "game.end")
	defer span.End()

	g.mode = ModeOver
	if state == board.StateWon {
		g.message = msgWon
	} else {
		g.message = msgLost
	}

	elapsed := time.Since(g.started)
	span.SetAttributes(
		attribute.String("game.id", g.id.String()),
		attribute.String("outcome", state.String()),
		attribute.Int("moves", g.moves),
		attribute.Int("board.mines", g.board.MineCount()),
		attribute.Int64("duration_ms", elapsed.Milliseconds()),
	)
	g.logger.Info().
		Str("game_id", g.id.String()).
		Stringer("outcome", state).
		Int("moves", g.moves).
		Dur("elapsed", elapsed).
		Msg("game over")
}
