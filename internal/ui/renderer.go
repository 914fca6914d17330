package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/catanpg/internal/board"
	"github.com/samdwyer/catanpg/internal/gamedata"
	"github.com/samdwyer/catanpg/internal/render"
	"github.com/samdwyer/catanpg/internal/tile"
)

// Board origin on screen, below the title line.
const (
	boardLeft = 2
	boardTop  = 2
	legendGap = 4
)

// Renderer handles drawing boards to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
	title   cases.Caser
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
		title:   cases.Title(language.English),
	}
}

// Render draws the board, the legend when requested, and a status line.
func (r *Renderer) Render(b *board.Board, legend bool, status string) {
	r.screen.Clear()

	header := fmt.Sprintf("%s  seed %d  board #%d", b.Name, b.Seed, b.Index)
	r.screen.DrawText(boardLeft, 0, header, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for _, cell := range render.Layout(b, r.palette) {
		r.screen.DrawText(boardLeft+cell.Center(), boardTop+cell.Row, cell.Label, r.TileStyle(cell.Tile))
	}

	cols, rows := render.LayoutSize(b.Grid.Radius())
	if legend {
		r.renderLegend(b, boardLeft+cols+legendGap, boardTop)
	}

	_, height := r.screen.Size()
	y := boardTop + rows + 1
	if y >= height {
		y = height - 1
	}
	r.RenderMessage(status, y)

	r.screen.Show()
}

// TileStyle returns the style a tile's label is drawn with.
func (r *Renderer) TileStyle(t tile.Tile) tcell.Style {
	style := tcell.StyleDefault
	if def := r.palette.Tile(t.Kind); def != nil {
		style = style.Foreground(def.TCellColor())
	}

	switch {
	case t.IsHarbor():
		style = style.Foreground(gamedata.ToTCell(r.palette.PortColor())).Bold(true)
	case t.HasNumber() && render.Hot(t.Number):
		style = style.Foreground(tcell.ColorRed).Bold(true)
	}
	return style
}

func (r *Renderer) renderLegend(b *board.Board, x, y int) {
	counts := b.KindCounts()
	for _, def := range r.palette.All() {
		n := counts[def.Kind]
		if n == 0 {
			continue
		}
		style := tcell.StyleDefault.Foreground(def.TCellColor())
		next := r.screen.DrawText(x, y, def.Glyph, style)
		r.screen.DrawText(next+2, y, fmt.Sprintf("%-16s %d", r.title.String(def.Name), n),
			tcell.StyleDefault.Foreground(tcell.ColorWhite))
		y++
	}

	y++
	for _, g := range tile.Goods {
		r.screen.DrawText(x, y, fmt.Sprintf("%s  %s harbor", g.Label(), r.title.String(g.String())),
			tcell.StyleDefault.Foreground(gamedata.ToTCell(r.palette.PortColor())))
		y++
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
