// Package render draws finished boards as text and as PNG images.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/catanpg/internal/board"
	"github.com/samdwyer/catanpg/internal/gamedata"
	"github.com/samdwyer/catanpg/internal/hexgrid"
	"github.com/samdwyer/catanpg/internal/tile"
)

// CellWidth is the number of columns one hex takes in text output. Rows are
// staggered by half a cell.
const CellWidth = 6

// TextCell is one hex positioned on a character grid.
type TextCell struct {
	Coord hexgrid.Coord
	Tile  tile.Tile
	Col   int
	Row   int
	Label string
}

var arrows = map[hexgrid.Direction]string{
	hexgrid.East:      "→",
	hexgrid.SouthEast: "↘",
	hexgrid.SouthWest: "↙",
	hexgrid.West:      "←",
	hexgrid.NorthWest: "↖",
	hexgrid.NorthEast: "↗",
}

// Arrow returns the arrow pointing in direction d.
func Arrow(d hexgrid.Direction) string {
	return arrows[d]
}

// Pips returns how many of the 36 two-dice rolls produce n.
func Pips(n int) int {
	if n < 2 || n > 12 {
		return 0
	}
	return 6 - abs(7-n)
}

// Hot reports whether any value of n is one of the most likely rolls.
func Hot(n tile.Number) bool {
	for _, v := range n.Values() {
		if Pips(v) == 5 {
			return true
		}
	}
	return false
}

// Label returns the short text for t: the glyph and number for land and
// fishing grounds, the traded good and facing arrow for harbors.
func Label(t tile.Tile, p *gamedata.Palette) string {
	if t.IsHarbor() {
		return t.Good.Label() + Arrow(t.Orientation)
	}

	glyph := "?"
	if def := p.Tile(t.Kind); def != nil {
		glyph = def.Glyph
	}
	if t.HasNumber() && t.Number.IsSingle() {
		return glyph + t.Number.String()
	}
	return glyph
}

// Layout positions every cell of b on a character grid, two lines per hex
// row.
func Layout(b *board.Board, p *gamedata.Palette) []TextCell {
	r := b.Grid.Radius()
	coords := b.Grid.Coords()

	cells := make([]TextCell, 0, len(coords))
	for _, c := range coords {
		t := b.Tile(c)
		cells = append(cells, TextCell{
			Coord: c,
			Tile:  t,
			Col:   (2*c.X + c.Y + 2*r) * CellWidth / 2,
			Row:   (c.Y + r) * 2,
			Label: Label(t, p),
		})
	}
	return cells
}

// LayoutSize returns the columns and rows Layout uses for a grid of radius r.
func LayoutSize(r int) (cols, rows int) {
	return (4*r)*CellWidth/2 + CellWidth, 4*r + 1
}

// Center returns the column where label starts when centered in its cell.
func (c TextCell) Center() int {
	return c.Col + (CellWidth-uniseg.StringWidth(c.Label))/2
}

// Text writes b as staggered rows of labels followed by a legend.
func Text(w io.Writer, b *board.Board, p *gamedata.Palette) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s  seed %d  board #%d  %016x\n\n", b.Name, b.Seed, b.Index, b.Fingerprint())

	cols, rows := LayoutSize(b.Grid.Radius())
	lines := make([][]string, rows)
	for i := range lines {
		lines[i] = make([]string, cols)
		for j := range lines[i] {
			lines[i][j] = " "
		}
	}

	for _, cell := range Layout(b, p) {
		col := cell.Center()
		g := uniseg.NewGraphemes(cell.Label)
		for g.Next() {
			if col >= cols {
				break
			}
			lines[cell.Row][col] = g.Str()
			// Wide clusters cover the following columns.
			for i := 1; i < g.Width() && col+i < cols; i++ {
				lines[cell.Row][col+i] = ""
			}
			col += g.Width()
		}
	}

	for _, line := range lines {
		fmt.Fprintln(bw, strings.TrimRight(strings.Join(line, ""), " "))
	}

	writeLegend(bw, b, p)
	return bw.Flush()
}

func writeLegend(w io.Writer, b *board.Board, p *gamedata.Palette) {
	title := cases.Title(language.English)
	counts := b.KindCounts()

	fmt.Fprintln(w)
	for _, def := range p.All() {
		n := counts[def.Kind]
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-2s %-16s %d\n", def.Glyph, title.String(def.Name), n)
	}

	for _, c := range b.Grid.Coords() {
		if t := b.Tile(c); t.Kind == tile.Lake {
			fmt.Fprintf(w, "  lake numbers %s\n", t.Number)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
