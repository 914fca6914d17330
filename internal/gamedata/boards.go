package gamedata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samdwyer/catanpg/internal/hexgrid"
	"github.com/samdwyer/catanpg/internal/tile"
)

// interiorRadius is the outermost land ring of a board.
const interiorRadius = 2

var ErrInvalidBoard = errors.New("invalid board table")

// BoardDef is the tile table of one board, loaded from JSON.
type BoardDef struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Terrain maps each interior terrain kind to its quantity.
	Terrain map[tile.Kind]int `json:"terrain"`

	// Numbers is the canonical (rulebook) order of the number tokens.
	Numbers []int `json:"numbers"`

	// ForbiddenAdjacency lists groups of numbers that may not neighbor each other.
	ForbiddenAdjacency []tile.NumberSet `json:"forbiddenAdjacency"`

	// SingleHarbors holds the good of each single-harbor border segment.
	SingleHarbors []tile.Good `json:"singleHarbors"`
	// DoubleHarbors holds the pair of goods of each double-harbor segment.
	DoubleHarbors [][2]tile.Good `json:"doubleHarbors"`

	// FishingGrounds are the numbers of the sea fish tiles, one per segment.
	FishingGrounds []int `json:"fishingGrounds,omitempty"`
	// Lake is the number tuple of the lake tile; zero when the board has none.
	Lake tile.Number `json:"lake"`
}

// HasLake reports whether the board places a lake tile.
func (b *BoardDef) HasLake() bool {
	return !b.Lake.IsZero()
}

// TerrainBag returns the multiset of interior kinds, excluding the lake, in
// kind order so that a seeded shuffle is reproducible.
func (b *BoardDef) TerrainBag() []tile.Kind {
	var bag []tile.Kind
	for _, k := range tile.Kinds {
		for i := 0; i < b.Terrain[k]; i++ {
			bag = append(bag, k)
		}
	}
	return bag
}

// Validate checks that the table fills the interior exactly.
func (b *BoardDef) Validate() error {
	cells := 0
	numbered := 0
	for k, n := range b.Terrain {
		if k.IsSea() || k == tile.Lake || k == tile.KindEmpty {
			return fmt.Errorf("%w %s: %s is not an interior terrain", ErrInvalidBoard, b.ID, k)
		}
		if n < 0 {
			return fmt.Errorf("%w %s: negative quantity for %s", ErrInvalidBoard, b.ID, k)
		}
		cells += n
		if k.IsNumbered() {
			numbered += n
		}
	}
	if b.HasLake() {
		cells++
	}

	if want := hexgrid.CellCount(interiorRadius); cells != want {
		return fmt.Errorf("%w %s: %d interior tiles for %d cells", ErrInvalidBoard, b.ID, cells, want)
	}
	if numbered != len(b.Numbers) {
		return fmt.Errorf("%w %s: %d numbered tiles for %d numbers", ErrInvalidBoard, b.ID, numbered, len(b.Numbers))
	}

	segments := len(b.SingleHarbors) + len(b.DoubleHarbors)
	if len(b.SingleHarbors) != len(b.DoubleHarbors) || segments != 6 {
		return fmt.Errorf("%w %s: need 3 single and 3 double harbor segments, got %d and %d",
			ErrInvalidBoard, b.ID, len(b.SingleHarbors), len(b.DoubleHarbors))
	}
	if len(b.FishingGrounds) != 0 && len(b.FishingGrounds) != segments {
		return fmt.Errorf("%w %s: %d fishing grounds for %d border segments",
			ErrInvalidBoard, b.ID, len(b.FishingGrounds), segments)
	}
	return nil
}

// BoardsFile represents the structure of boards.json.
type BoardsFile struct {
	Boards []BoardDef `json:"boards"`
}

// LoadBoards loads and validates the embedded board tables.
func LoadBoards() ([]BoardDef, error) {
	return LoadBoardsFrom(dataFS)
}

// LoadBoardsFrom loads and validates boards.json from fsys.
func LoadBoardsFrom(fsys fs.FS) ([]BoardDef, error) {
	file, err := LoadFrom[BoardsFile](fsys, boardsFile)
	if err != nil {
		return nil, err
	}
	for i := range file.Boards {
		if err := file.Boards[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Boards, nil
}
