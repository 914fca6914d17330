package gamedata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/samdwyer/catanpg/internal/tile"
)

func TestLoadBoards(t *testing.T) {
	boards, err := LoadBoards()
	if err != nil {
		t.Fatalf("Failed to load boards: %v", err)
	}

	if len(boards) != 2 {
		t.Errorf("Expected 2 boards, got %d", len(boards))
	}

	expectedIDs := map[string]bool{"base": false, "fishermen": false}
	for _, b := range boards {
		if _, ok := expectedIDs[b.ID]; ok {
			expectedIDs[b.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected board %q not found", id)
		}
	}
}

func TestBaseBoardTable(t *testing.T) {
	base := MustLoadBoardRegistry().GetByID("base")
	if base == nil {
		t.Fatal("base board not found")
	}

	want := map[tile.Kind]int{
		tile.Forest: 4, tile.Pasture: 4, tile.Fields: 4,
		tile.Hills: 3, tile.Mountains: 3, tile.Desert: 1,
	}
	for k, n := range want {
		if base.Terrain[k] != n {
			t.Errorf("base %s quantity = %d, want %d", k, base.Terrain[k], n)
		}
	}
	if base.HasLake() {
		t.Error("base board should not have a lake")
	}
	if len(base.Numbers) != 18 {
		t.Errorf("base board has %d numbers, want 18", len(base.Numbers))
	}
	if len(base.ForbiddenAdjacency) != 1 || !base.ForbiddenAdjacency[0].Contains(tile.Single(6)) {
		t.Errorf("base forbidden adjacency = %v", base.ForbiddenAdjacency)
	}
	if base.DoubleHarbors[1] != [2]tile.Good{tile.GoodAny, tile.GoodBrick} {
		t.Errorf("second double harbor = %v", base.DoubleHarbors[1])
	}
}

func TestFishermenBoardTable(t *testing.T) {
	def := MustLoadBoardRegistry().GetByID("fishermen")
	if def == nil {
		t.Fatal("fishermen board not found")
	}

	if _, ok := def.Terrain[tile.Desert]; ok {
		t.Error("fishermen board should not have a desert")
	}
	if def.Lake != tile.Tuple(11, 12, 2, 3) {
		t.Errorf("lake numbers = %v", def.Lake)
	}
	if !def.ForbiddenAdjacency[0].Contains(def.Lake) {
		t.Error("lake numbers should be in the forbidden adjacency set")
	}
	if len(def.FishingGrounds) != 6 {
		t.Errorf("got %d fishing grounds, want 6", len(def.FishingGrounds))
	}
}

func TestTerrainBag(t *testing.T) {
	base := MustLoadBoardRegistry().GetByID("base")
	bag := base.TerrainBag()
	if len(bag) != 19 {
		t.Fatalf("bag holds %d kinds, want 19", len(bag))
	}
	for i := 1; i < len(bag); i++ {
		if bag[i] < bag[i-1] {
			t.Fatalf("bag is not in kind order at %d", i)
		}
	}

	again := base.TerrainBag()
	for i := range bag {
		if bag[i] != again[i] {
			t.Fatal("TerrainBag should be deterministic")
		}
	}
}

func TestBoardValidate(t *testing.T) {
	valid := func() BoardDef {
		return *MustLoadBoardRegistry().GetByID("base")
	}

	tests := []struct {
		name   string
		mutate func(*BoardDef)
	}{
		{"too few tiles", func(b *BoardDef) {
			b.Terrain = map[tile.Kind]int{tile.Forest: 4, tile.Desert: 1}
		}},
		{"number mismatch", func(b *BoardDef) { b.Numbers = b.Numbers[:17] }},
		{"sea in interior", func(b *BoardDef) {
			b.Terrain = map[tile.Kind]int{tile.Forest: 4, tile.Pasture: 4, tile.Fields: 4, tile.Hills: 3, tile.Mountains: 3, tile.Sea: 1}
		}},
		{"missing segment", func(b *BoardDef) { b.SingleHarbors = b.SingleHarbors[:2] }},
		{"fishing ground count", func(b *BoardDef) { b.FishingGrounds = []int{4, 5} }},
	}

	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("base board should validate: %v", err)
	}

	for _, tt := range tests {
		b := valid()
		tt.mutate(&b)
		if err := b.Validate(); !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidBoard", tt.name, err)
		}
	}
}

func TestLoadBoardsFromDisk(t *testing.T) {
	fsys := fstest.MapFS{
		"boards.json": &fstest.MapFile{Data: []byte(`{"boards": [{"id": "broken", "terrain": {"forest": 2}}]}`)},
	}
	if _, err := LoadBoardsFrom(fsys); !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("LoadBoardsFrom(broken) = %v, want ErrInvalidBoard", err)
	}

	if _, err := LoadBoardsFrom(fstest.MapFS{}); err == nil {
		t.Error("LoadBoardsFrom(empty) should fail")
	}
}

func TestBoardRegistryLookup(t *testing.T) {
	registry, err := LoadBoardRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 boards, got %d", registry.Count())
	}

	def, err := registry.Lookup("fishermen")
	if err != nil || def.Name != "Fishermen of Catan" {
		t.Errorf("Lookup(fishermen) = %v, %v", def, err)
	}

	if _, err := registry.Lookup("seafarers"); !errors.Is(err, ErrUnknownBoard) {
		t.Errorf("Lookup(seafarers) error = %v, want ErrUnknownBoard", err)
	}
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for _, k := range tile.Kinds {
		def := palette.Tile(k)
		if def == nil {
			t.Errorf("palette has no entry for %s", k)
			continue
		}
		if def.GlyphRune() == '?' {
			t.Errorf("%s has no glyph", k)
		}
	}

	forest := palette.Tile(tile.Forest).RGBA()
	if forest.R != 0 || forest.G != 0x80 || forest.B != 0 {
		t.Errorf("forest color = %v", forest)
	}
	if palette.Tile(tile.Forest).TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#ffffff", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
