package tile

import (
	"errors"
	"fmt"
)

// BorderLength is the number of cells in one sea border segment.
const BorderLength = 3

var (
	ErrBorderLength = errors.New("sea border overrides must have exactly 3 slots")
	ErrSlotRange    = errors.New("slot index out of range")
)

// Sequence is an ordered run of tiles that is placed and rotated as a unit.
type Sequence struct {
	tiles []Tile
}

// NewSequence creates a sequence holding a copy of tiles.
func NewSequence(tiles []Tile) *Sequence {
	s := &Sequence{tiles: make([]Tile, len(tiles))}
	copy(s.tiles, tiles)
	return s
}

// NewSeaBorder creates a border segment of three sea tiles. overrides must
// hold exactly three slots; a non-empty slot replaces the sea tile there.
func NewSeaBorder(overrides []Tile) (*Sequence, error) {
	if len(overrides) != BorderLength {
		return nil, fmt.Errorf("%w: got %d", ErrBorderLength, len(overrides))
	}
	s := &Sequence{tiles: make([]Tile, BorderLength)}
	for i, t := range overrides {
		if t.IsEmpty() {
			s.tiles[i] = SeaTile()
		} else {
			s.tiles[i] = t
		}
	}
	return s, nil
}

// Len returns the number of tiles.
func (s *Sequence) Len() int {
	return len(s.tiles)
}

// At returns the tile in slot i.
func (s *Sequence) At(i int) Tile {
	return s.tiles[i]
}

// Tiles returns a copy of the tiles in order.
func (s *Sequence) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Replace overwrites slot i.
func (s *Sequence) Replace(i int, t Tile) error {
	if i < 0 || i >= len(s.tiles) {
		return fmt.Errorf("%w: %d of %d", ErrSlotRange, i, len(s.tiles))
	}
	s.tiles[i] = t
	return nil
}

// Rotate turns every oriented tile n steps clockwise.
func (s *Sequence) Rotate(n int) {
	for i := range s.tiles {
		s.tiles[i].Rotate(n)
	}
}

// RotateClockwise rotates the sequence one step clockwise.
func (s *Sequence) RotateClockwise() { s.Rotate(1) }

// RotateCounterClockwise rotates the sequence one step counter-clockwise.
func (s *Sequence) RotateCounterClockwise() { s.Rotate(-1) }
