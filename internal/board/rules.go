package board

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/catanpg/internal/gamedata"
	"github.com/samdwyer/catanpg/internal/hexgrid"
	"github.com/samdwyer/catanpg/internal/tile"
)

// lakeMaxRadius keeps the lake off the ring that touches the sea border.
const lakeMaxRadius = 1

// BorderBuilder returns the single-harbor and double-harbor border segments
// before they are shuffled and placed.
type BorderBuilder func(rng *rand.Rand) (single, double []*tile.Sequence, err error)

// PlacementHook fills interior cells before the random terrain placement.
type PlacementHook func(grid *Grid, rng *rand.Rand) error

// SwapPredicate reports whether the tiles at repair and swap may trade numbers.
type SwapPredicate func(grid *Grid, repair, swap hexgrid.Coord) bool

// Rules configure the shared generation algorithm for one board.
type Rules struct {
	ID   string
	Name string

	// Terrain is the multiset of interior kinds placed at random.
	Terrain []tile.Kind
	// Numbers is the canonical order of the number tokens.
	Numbers []int
	// Forbidden lists the groups of numbers that may not be adjacent.
	Forbidden []tile.NumberSet

	BuildBorders BorderBuilder
	// Prepare runs before random placement. Optional.
	Prepare PlacementHook
	// CanSwap filters repair candidates. Optional; nil allows every swap.
	CanSwap SwapPredicate
}

// RulesFromDef builds the rules of a board table. A table with fishing
// grounds gets them injected into the border segments; a table with a lake
// places it first and keeps it inland during repair.
func RulesFromDef(def *gamedata.BoardDef) Rules {
	rules := Rules{
		ID:           def.ID,
		Name:         def.Name,
		Terrain:      def.TerrainBag(),
		Numbers:      append([]int(nil), def.Numbers...),
		Forbidden:    def.ForbiddenAdjacency,
		BuildBorders: harborBorders(def.SingleHarbors, def.DoubleHarbors),
	}
	if len(def.FishingGrounds) > 0 {
		rules.BuildBorders = withFishingGrounds(rules.BuildBorders, def.FishingGrounds)
	}
	if def.HasLake() {
		rules.Prepare = placeLake(def.Lake)
		rules.CanSwap = lakeStaysInland
	}
	return rules
}

// RulesByID returns the rules of the board with the given ID.
func RulesByID(registry *gamedata.BoardRegistry, id string) (Rules, error) {
	def, err := registry.Lookup(id)
	if err != nil {
		return Rules{}, err
	}
	return RulesFromDef(def), nil
}

// BaseRules returns the rules of the base game.
func BaseRules() Rules {
	return mustRules("base")
}

// FishermenRules returns the rules of the Fishermen of Catan variant.
func FishermenRules() Rules {
	return mustRules("fishermen")
}

func mustRules(id string) Rules {
	rules, err := RulesByID(gamedata.MustLoadBoardRegistry(), id)
	if err != nil {
		panic(err)
	}
	return rules
}

func singleHarborBorder(g tile.Good) (*tile.Sequence, error) {
	return tile.NewSeaBorder([]tile.Tile{{}, tile.NewHarbor(g, hexgrid.SouthEast), {}})
}

func doubleHarborBorder(first, second tile.Good) (*tile.Sequence, error) {
	return tile.NewSeaBorder([]tile.Tile{
		tile.NewHarbor(first, hexgrid.SouthEast),
		{},
		tile.NewHarbor(second, hexgrid.SouthWest),
	})
}

// harborBorders builds one segment per single harbor and one per harbor pair.
// Harbors face the land as seen from the top edge; placement rotates them.
func harborBorders(singles []tile.Good, doubles [][2]tile.Good) BorderBuilder {
	return func(*rand.Rand) ([]*tile.Sequence, []*tile.Sequence, error) {
		single := make([]*tile.Sequence, 0, len(singles))
		for _, g := range singles {
			border, err := singleHarborBorder(g)
			if err != nil {
				return nil, nil, err
			}
			single = append(single, border)
		}

		double := make([]*tile.Sequence, 0, len(doubles))
		for _, pair := range doubles {
			border, err := doubleHarborBorder(pair[0], pair[1])
			if err != nil {
				return nil, nil, err
			}
			double = append(double, border)
		}
		return single, double, nil
	}
}

// withFishingGrounds puts one shuffled fishing ground into the spare slot of
// every segment: the last slot of single segments, the middle of doubles.
func withFishingGrounds(next BorderBuilder, numbers []int) BorderBuilder {
	return func(rng *rand.Rand) ([]*tile.Sequence, []*tile.Sequence, error) {
		single, double, err := next(rng)
		if err != nil {
			return nil, nil, err
		}
		if len(numbers) != len(single)+len(double) {
			return nil, nil, fmt.Errorf("%w: %d fishing grounds for %d border segments",
				ErrInconsistentTables, len(numbers), len(single)+len(double))
		}

		grounds := make([]tile.Tile, len(numbers))
		for i, n := range numbers {
			grounds[i] = tile.NewFishingGround(n)
		}
		rng.Shuffle(len(grounds), func(i, j int) { grounds[i], grounds[j] = grounds[j], grounds[i] })

		pop := func() tile.Tile {
			t := grounds[len(grounds)-1]
			grounds = grounds[:len(grounds)-1]
			return t
		}
		for _, border := range single {
			if err := border.Replace(2, pop()); err != nil {
				return nil, nil, err
			}
		}
		for _, border := range double {
			if err := border.Replace(1, pop()); err != nil {
				return nil, nil, err
			}
		}
		return single, double, nil
	}
}

// placeLake puts the lake on the origin or one of the six cells around it,
// chosen uniformly.
func placeLake(numbers tile.Number) PlacementHook {
	return func(grid *Grid, rng *rand.Rand) error {
		pos := hexgrid.Origin
		if choice := rng.Intn(len(hexgrid.Directions) + 1); choice < len(hexgrid.Directions) {
			pos = hexgrid.Corner(hexgrid.Directions[choice], lakeMaxRadius)
		}
		return grid.Set(pos, tile.NewLake(numbers))
	}
}

// lakeStaysInland rejects swaps that would carry the lake to the ring next to
// the sea border.
func lakeStaysInland(grid *Grid, repair, swap hexgrid.Coord) bool {
	return !movesLakeOutward(grid, repair, swap) && !movesLakeOutward(grid, swap, repair)
}

func movesLakeOutward(grid *Grid, from, to hexgrid.Coord) bool {
	return mustGet(grid, from).Kind == tile.Lake && to.Radius() > lakeMaxRadius
}
