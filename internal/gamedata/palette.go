package gamedata

import (
	"image/color"
	"io/fs"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/catanpg/internal/tile"
)

// TileDef describes how a tile kind is displayed.
type TileDef struct {
	Kind  tile.Kind `json:"kind"`  // Tile kind (e.g., "forest")
	Name  string    `json:"name"`  // Display name (e.g., "forest")
	Glyph string    `json:"glyph"` // Single character for text output (e.g., "F")
	Color string    `json:"color"` // Hex color code (e.g., "#008000")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// Colorful returns the tile color, or white if it cannot be parsed.
func (d *TileDef) Colorful() colorful.Color {
	c, err := ParseHexColor(d.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// TCellColor returns the color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	return ToTCell(d.Colorful())
}

// RGBA returns the color for image rendering.
func (d *TileDef) RGBA() color.RGBA {
	return ToRGBA(d.Colorful())
}

// PaletteFile represents the structure of tiles.json.
type PaletteFile struct {
	Tiles       []TileDef `json:"tiles"`
	PortColor   string    `json:"portColor"`
	NumberColor string    `json:"numberColor"`
}

// LoadPalette loads the embedded tile palette.
func LoadPalette() (*Palette, error) {
	return LoadPaletteFrom(dataFS)
}

// LoadPaletteFrom loads tiles.json from fsys.
func LoadPaletteFrom(fsys fs.FS) (*Palette, error) {
	file, err := LoadFrom[PaletteFile](fsys, paletteFile)
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// MustLoadPalette loads the embedded palette, panicking on error.
func MustLoadPalette() *Palette {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}
