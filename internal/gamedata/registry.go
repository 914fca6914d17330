package gamedata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/catanpg/internal/tile"
)

var ErrUnknownBoard = errors.New("unknown board")

// BoardRegistry holds loaded board tables and provides lookup utilities.
type BoardRegistry struct {
	boards []BoardDef
}

// NewBoardRegistry creates a registry from loaded board tables.
func NewBoardRegistry(boards []BoardDef) *BoardRegistry {
	return &BoardRegistry{boards: boards}
}

// LoadBoardRegistry loads and creates a registry from the embedded boards.json.
func LoadBoardRegistry() (*BoardRegistry, error) {
	return LoadBoardRegistryFrom(dataFS)
}

// LoadBoardRegistryFrom loads and creates a registry from boards.json in fsys.
func LoadBoardRegistryFrom(fsys fs.FS) (*BoardRegistry, error) {
	boards, err := LoadBoardsFrom(fsys)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, errors.New("no boards loaded from boards.json")
	}
	return NewBoardRegistry(boards), nil
}

// MustLoadBoardRegistry loads a registry, panicking on error.
func MustLoadBoardRegistry() *BoardRegistry {
	registry, err := LoadBoardRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the board with the given ID, or nil if not found.
func (r *BoardRegistry) GetByID(id string) *BoardDef {
	for i := range r.boards {
		if r.boards[i].ID == id {
			return &r.boards[i]
		}
	}
	return nil
}

// Lookup returns the board with the given ID or ErrUnknownBoard.
func (r *BoardRegistry) Lookup(id string) (*BoardDef, error) {
	if def := r.GetByID(id); def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownBoard, id, r.IDs())
}

// IDs returns the board IDs in file order.
func (r *BoardRegistry) IDs() []string {
	ids := make([]string, len(r.boards))
	for i := range r.boards {
		ids[i] = r.boards[i].ID
	}
	return ids
}

// All returns all board tables.
func (r *BoardRegistry) All() []BoardDef {
	return r.boards
}

// Count returns the number of boards in the registry.
func (r *BoardRegistry) Count() int {
	return len(r.boards)
}

// =============================================================================
// Palette
// =============================================================================

// Palette maps tile kinds to their display definitions.
type Palette struct {
	tiles  map[tile.Kind]*TileDef
	all    []TileDef
	port   colorful.Color
	number colorful.Color
}

// NewPalette creates a palette from a loaded palette file.
func NewPalette(file PaletteFile) (*Palette, error) {
	port, err := ParseHexColor(file.PortColor)
	if err != nil {
		return nil, fmt.Errorf("port color: %w", err)
	}
	number, err := ParseHexColor(file.NumberColor)
	if err != nil {
		return nil, fmt.Errorf("number color: %w", err)
	}

	p := &Palette{
		tiles:  make(map[tile.Kind]*TileDef),
		all:    file.Tiles,
		port:   port,
		number: number,
	}
	for i := range p.all {
		if _, err := ParseHexColor(p.all[i].Color); err != nil {
			return nil, fmt.Errorf("%s color: %w", p.all[i].Kind, err)
		}
		p.tiles[p.all[i].Kind] = &p.all[i]
	}
	return p, nil
}

// Tile returns the display definition of kind k, or nil if not found.
func (p *Palette) Tile(k tile.Kind) *TileDef {
	return p.tiles[k]
}

// All returns all tile definitions.
func (p *Palette) All() []TileDef {
	return p.all
}

// PortColor returns the color of harbor ports.
func (p *Palette) PortColor() colorful.Color {
	return p.port
}

// NumberColor returns the fill color of number circles.
func (p *Palette) NumberColor() colorful.Color {
	return p.number
}
