package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/term"

	"github.com/samdwyer/catanpg/internal/board"
	"github.com/samdwyer/catanpg/internal/gamedata"
	"github.com/samdwyer/catanpg/internal/render"
	"github.com/samdwyer/catanpg/internal/telemetry"
	"github.com/samdwyer/catanpg/internal/ui"
)

// Game holds the application state.
type Game struct {
	cfg       Config
	logger    *slog.Logger
	palette   *gamedata.Palette
	generator *board.Generator
	board     *board.Board
	out       io.Writer

	screen   *ui.Screen
	renderer *ui.Renderer
	state    State
	status   string
	running  bool
}

// New loads the board tables and palette and prepares a generator.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	registry, palette, err := loadTables(cfg.Tables)
	if err != nil {
		return nil, err
	}
	rules, err := board.RulesByID(registry, cfg.Board)
	if err != nil {
		return nil, fmt.Errorf("board %q: %w", cfg.Board, err)
	}

	return &Game{
		cfg:     cfg,
		logger:  logger,
		palette: palette,
		generator: board.NewGenerator(rules, board.Options{
			Seed:             cfg.Seed,
			OrderedNumbers:   cfg.OrderedNumbers,
			RepairIterations: cfg.RepairIterations,
			MaxAttempts:      cfg.MaxAttempts,
			Logger:           logger,
		}),
		out:     os.Stdout,
		state:   StateBoard,
		running: true,
	}, nil
}

// loadTables reads tables from dir, or the embedded ones when dir is empty.
// A directory without tiles.json keeps the embedded palette.
func loadTables(dir string) (*gamedata.BoardRegistry, *gamedata.Palette, error) {
	if dir == "" {
		registry, err := gamedata.LoadBoardRegistry()
		if err != nil {
			return nil, nil, err
		}
		palette, err := gamedata.LoadPalette()
		return registry, palette, err
	}

	fsys := os.DirFS(dir)
	registry, err := gamedata.LoadBoardRegistryFrom(fsys)
	if err != nil {
		return nil, nil, fmt.Errorf("tables %s: %w", dir, err)
	}
	palette, err := gamedata.LoadPaletteFrom(fsys)
	if errors.Is(err, fs.ErrNotExist) {
		palette, err = gamedata.LoadPalette()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("tables %s: %w", dir, err)
	}
	return registry, palette, nil
}

// SetOutput redirects text output, stdout by default.
func (g *Game) SetOutput(w io.Writer) {
	g.out = w
}

// Board returns the last generated board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Seed returns the seed boards are generated from.
func (g *Game) Seed() int64 {
	return g.generator.Seed()
}

// Generate builds the next board and writes the PNG if an output path is set.
func (g *Game) Generate(ctx context.Context) (*board.Board, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.generate")
	defer span.End()

	b, err := g.generator.Generate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	g.board = b

	if g.cfg.Output != "" {
		if err := g.writePNG(b); err != nil {
			span.RecordError(err)
			return nil, err
		}
		span.SetAttributes(attribute.String("game.output", g.cfg.Output))
	}
	span.SetAttributes(attribute.Int("game.board_index", b.Index))
	return b, nil
}

func (g *Game) writePNG(b *board.Board) error {
	f, err := os.Create(g.cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", g.cfg.Output, err)
	}
	if err := render.PNG(f, b, g.palette); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", g.cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	g.logger.Info("board image written", "path", g.cfg.Output)
	return nil
}

// Summary describes how a board was reached.
func Summary(b *board.Board) string {
	return fmt.Sprintf("%s board converged on the %s attempt after %s repair swaps",
		b.Name, humanize.Ordinal(b.Attempts), humanize.Comma(int64(b.RepairIterations)))
}

// Run generates a board, then shows it in the terminal view when stdout is a
// terminal and the view is enabled, or prints it as text otherwise.
func (g *Game) Run(ctx context.Context) error {
	if _, err := g.Generate(ctx); err != nil {
		return err
	}

	if g.cfg.Interactive && term.IsTerminal(int(os.Stdout.Fd())) {
		return g.runTerminal(ctx)
	}
	return render.Text(g.out, g.board, g.palette)
}

func (g *Game) runTerminal(ctx context.Context) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, g.palette)
	defer g.Close()

	g.status = g.statusLine()
	for g.running {
		g.renderer.Render(g.board, g.state == StateLegend, g.status)
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) statusLine() string {
	return Summary(g.board) + "  [r] regenerate  [l] legend  [q] quit"
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.apply(ctx, commandFor(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func commandFor(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return cmdQuit
		case 'r', 'R':
			return cmdRegenerate
		case 'l', 'L':
			return cmdToggleLegend
		}
	}
	return cmdNone
}

func (g *Game) apply(ctx context.Context, cmd command) {
	switch cmd {
	case cmdQuit:
		g.running = false
	case cmdToggleLegend:
		g.state = g.state.Toggle()
	case cmdRegenerate:
		if _, err := g.Generate(ctx); err != nil {
			g.logger.Error("regenerate failed", "error", err)
			g.status = "generation failed: " + err.Error()
			return
		}
		g.status = g.statusLine()
	}
}

// Close cleans up terminal resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
