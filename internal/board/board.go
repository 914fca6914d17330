package board

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/catanpg/internal/hexgrid"
	"github.com/samdwyer/catanpg/internal/tile"
)

// Board is a finished board. The grid is handed to renderers read-only.
type Board struct {
	RunID   uuid.UUID
	RulesID string
	Name    string

	// Seed of the generator that produced the board. Index is the board's
	// position in that generator's sequence; together they reproduce it.
	Seed  int64
	Index int

	Attempts         int
	RepairIterations int

	Grid *Grid

	forbidden []tile.NumberSet
}

// Tile returns the tile at c. It panics if c is outside the board.
func (b *Board) Tile(c hexgrid.Coord) tile.Tile {
	return mustGet(b.Grid, c)
}

// Violation recomputes the number of forbidden adjacencies on the board.
// It is 0 for every board returned by Generate.
func (b *Board) Violation() int {
	return gridViolation(b.Grid, b.forbidden)
}

// KindCounts returns how many tiles of each kind the board holds.
func (b *Board) KindCounts() map[tile.Kind]int {
	counts := make(map[tile.Kind]int)
	for _, c := range b.Grid.Coords() {
		counts[b.Tile(c).Kind]++
	}
	return counts
}

// Fingerprint hashes every cell's kind, number, orientation and good. Two
// boards with the same layout have the same fingerprint.
func (b *Board) Fingerprint() uint64 {
	d := xxhash.New()
	for _, c := range b.Grid.Coords() {
		t := b.Tile(c)
		fmt.Fprintf(d, "%d,%d:%d:%s", c.X, c.Y, t.Kind, t.Number)
		if t.IsHarbor() {
			fmt.Fprintf(d, ":%d:%d", t.Orientation, t.Good)
		}
		d.WriteString(";")
	}
	return d.Sum64()
}
