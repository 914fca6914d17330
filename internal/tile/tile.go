// Package tile provides the board tiles stored in hex grid cells.
package tile

import (
	"fmt"

	"github.com/samdwyer/catanpg/internal/hexgrid"
)

// Kind identifies the variant of a tile.
type Kind uint8

const (
	// KindEmpty is the zero value and marks an unset cell.
	KindEmpty Kind = iota
	Forest
	Hills
	Pasture
	Mountains
	Fields
	Desert
	Sea
	Harbor
	// FishingGround is a sea tile with a number (Fishermen of Catan).
	FishingGround
	// Lake is an interior tile carrying four numbers (Fishermen of Catan).
	Lake
)

var kindNames = map[Kind]string{
	KindEmpty:     "empty",
	Forest:        "forest",
	Hills:         "hills",
	Pasture:       "pasture",
	Mountains:     "mountains",
	Fields:        "fields",
	Desert:        "desert",
	Sea:           "sea",
	Harbor:        "harbor",
	FishingGround: "fishing_ground",
	Lake:          "lake",
}

// Kinds lists every non-empty kind in declaration order.
var Kinds = []Kind{Forest, Hills, Pasture, Mountains, Fields, Desert, Sea, Harbor, FishingGround, Lake}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindEmpty, fmt.Errorf("unknown tile kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsNumbered reports whether tiles of this kind carry a number.
func (k Kind) IsNumbered() bool {
	switch k {
	case Forest, Hills, Pasture, Mountains, Fields, FishingGround, Lake:
		return true
	default:
		return false
	}
}

// IsSea reports whether the kind belongs on the sea border.
func (k Kind) IsSea() bool {
	return k == Sea || k == Harbor || k == FishingGround
}

// Tile is a single cell payload. Only the fields relevant to Kind are set:
// Number for numbered kinds, Orientation and Good for harbors.
type Tile struct {
	Kind        Kind
	Number      Number
	Orientation hexgrid.Direction
	Good        Good
}

// Terrain returns an unnumbered tile of the given kind.
func Terrain(k Kind) Tile {
	return Tile{Kind: k}
}

// Numbered returns a tile of kind k carrying n.
func Numbered(k Kind, n Number) Tile {
	return Tile{Kind: k, Number: n}
}

// SeaTile returns a plain sea tile.
func SeaTile() Tile {
	return Tile{Kind: Sea}
}

// NewHarbor returns a harbor trading g whose port faces orientation.
func NewHarbor(g Good, orientation hexgrid.Direction) Tile {
	return Tile{Kind: Harbor, Good: g, Orientation: orientation}
}

// NewFishingGround returns a numbered sea tile.
func NewFishingGround(n int) Tile {
	return Tile{Kind: FishingGround, Number: Single(n)}
}

// NewLake returns a lake tile carrying the given numbers.
func NewLake(n Number) Tile {
	return Tile{Kind: Lake, Number: n}
}

// IsEmpty reports whether the tile is the unset marker.
func (t Tile) IsEmpty() bool {
	return t.Kind == KindEmpty
}

// HasNumber reports whether the tile carries a number.
func (t Tile) HasNumber() bool {
	return t.Kind.IsNumbered() && !t.Number.IsZero()
}

// IsHarbor reports whether the tile is a harbor.
func (t Tile) IsHarbor() bool {
	return t.Kind == Harbor
}

// Rotate turns an oriented tile n steps clockwise. Other tiles are unchanged.
func (t *Tile) Rotate(n int) {
	if t.IsHarbor() {
		t.Orientation = t.Orientation.Rotate(n)
	}
}

// RotateClockwise rotates the tile one step clockwise.
func (t *Tile) RotateClockwise() { t.Rotate(1) }

// RotateCounterClockwise rotates the tile one step counter-clockwise.
func (t *Tile) RotateCounterClockwise() { t.Rotate(-1) }

func (t Tile) String() string {
	switch {
	case t.IsHarbor():
		return fmt.Sprintf("harbor(%s, %s)", t.Good, t.Orientation)
	case t.HasNumber():
		return fmt.Sprintf("%s(%s)", t.Kind, t.Number)
	default:
		return t.Kind.String()
	}
}
