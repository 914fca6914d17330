package ui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catanpg/internal/board"
	"github.com/samdwyer/catanpg/internal/gamedata"
	"github.com/samdwyer/catanpg/internal/render"
	"github.com/samdwyer/catanpg/internal/tile"
)

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	g := board.NewGenerator(board.BaseRules(), board.Options{
		Seed:   31,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	b, err := g.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRenderDrawsLabels(t *testing.T) {
	screen, sim, err := NewSimulationScreen(100, 30)
	if err != nil {
		t.Fatalf("NewSimulationScreen error: %v", err)
	}
	defer screen.Close()

	palette := gamedata.MustLoadPalette()
	b := newTestBoard(t)
	NewRenderer(screen, palette).Render(b, true, "press q")

	for _, cell := range render.Layout(b, palette) {
		want := []rune(cell.Label)[0]
		got, _, _, _ := sim.GetContent(boardLeft+cell.Center(), boardTop+cell.Row)
		if got != want {
			t.Errorf("cell %v: screen shows %q, want %q", cell.Coord, got, want)
		}
	}

	if got, _, _, _ := sim.GetContent(boardLeft, 0); got != []rune(b.Name)[0] {
		t.Errorf("header starts with %q", got)
	}
}

func TestTileStyle(t *testing.T) {
	screen, _, err := NewSimulationScreen(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer screen.Close()

	r := NewRenderer(screen, gamedata.MustLoadPalette())

	fg, _, attrs := r.TileStyle(tile.Numbered(tile.Forest, tile.Single(8))).Decompose()
	if fg != tcell.ColorRed || attrs&tcell.AttrBold == 0 {
		t.Errorf("hot number style = %v %v, want bold red", fg, attrs)
	}

	fg, _, _ = r.TileStyle(tile.Numbered(tile.Forest, tile.Single(4))).Decompose()
	if want := gamedata.MustParseHexColor("#008000"); fg != gamedata.ToTCell(want) {
		t.Errorf("forest style foreground = %v", fg)
	}
}
