// Package board generates Catan board layouts: a sea ring with harbors
// around 19 land tiles whose numbers are repaired until no forbidden pair of
// numbers sits on adjacent tiles.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/catanpg/internal/hexgrid"
	"github.com/samdwyer/catanpg/internal/telemetry"
	"github.com/samdwyer/catanpg/internal/tile"
)

const (
	// Radius is the radius of every board grid (37 cells).
	Radius = 3

	// DefaultRepairIterations is the number of swaps tried before an attempt
	// is discarded and generation restarts from scratch.
	DefaultRepairIterations = 10

	interiorRadius = Radius - 1
	borderSegments = 6
)

var (
	ErrInconsistentTables = errors.New("tile tables do not fill the board")
	ErrAttemptsExhausted  = errors.New("board generation did not converge")

	errNotConverged = errors.New("violation repair did not converge")
)

// Grid is the hex grid a board is built on.
type Grid = hexgrid.Grid[tile.Tile]

// Options configure a Generator.
type Options struct {
	// Seed for random number generation. A seed of 0 means a random seed
	// will be generated.
	Seed int64
	// OrderedNumbers keeps the number tokens in rulebook order.
	OrderedNumbers bool
	// RepairIterations bounds one attempt's repair loop. 0 means DefaultRepairIterations.
	RepairIterations int
	// MaxAttempts caps the number of attempts. 0 means retry until one converges.
	MaxAttempts uint
	// Logger receives progress logs. nil means slog.Default().
	Logger *slog.Logger
}

// Generator runs the board generation algorithm for one set of rules. All
// random draws come from a single source owned by the generator.
type Generator struct {
	rules   Rules
	opts    Options
	seed    int64
	rng     *rand.Rand
	logger  *slog.Logger
	tracer  trace.Tracer
	phase   Phase
	counter int
}

// NewGenerator creates a generator for rules.
func NewGenerator(rules Rules, opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.RepairIterations <= 0 {
		opts.RepairIterations = DefaultRepairIterations
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		rules:  rules,
		opts:   opts,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger.With("board", rules.ID),
		tracer: telemetry.Tracer("board"),
	}
}

// Seed returns the seed of the generator's random source.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Phase returns the phase the generator is in.
func (g *Generator) Phase() Phase {
	return g.phase
}

// Generate builds a board. Attempts whose repair does not converge are
// discarded and restarted until one succeeds or MaxAttempts is reached.
func (g *Generator) Generate(ctx context.Context) (*Board, error) {
	ctx, span := g.tracer.Start(ctx, "board.generate")
	defer span.End()

	startTime := time.Now()
	runID := uuid.New()
	logger := g.logger.With("run", runID.String())

	attempts := 0
	repairs := 0
	grid, err := backoff.Retry(ctx, func() (*Grid, error) {
		attempts++
		grid, iterations, err := g.attempt(ctx, attempts, logger)
		repairs += iterations
		if errors.Is(err, errNotConverged) {
			logger.Info("restarting board generation", "attempt", attempts, "repair_iterations", iterations)
			return nil, err
		}
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return grid, nil
	},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxElapsedTime(0),
		backoff.WithMaxTries(g.opts.MaxAttempts),
	)
	if err != nil {
		if errors.Is(err, errNotConverged) {
			err = fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, attempts)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	g.counter++
	b := &Board{
		RunID:            runID,
		RulesID:          g.rules.ID,
		Name:             g.rules.Name,
		Seed:             g.seed,
		Index:            g.counter,
		Attempts:         attempts,
		RepairIterations: repairs,
		Grid:             grid,
		forbidden:        g.rules.Forbidden,
	}

	span.SetAttributes(
		attribute.String("board.rules", g.rules.ID),
		attribute.Int64("board.seed", g.seed),
		attribute.Int("board.attempts", attempts),
		attribute.Int("board.repair_iterations", repairs),
		attribute.String("board.fingerprint", fmt.Sprintf("%016x", b.Fingerprint())),
		attribute.Int64("board.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.Info("board generated",
		"attempts", attempts,
		"repair_iterations", repairs,
		"fingerprint", fmt.Sprintf("%016x", b.Fingerprint()),
	)
	return b, nil
}

// attempt runs one full generation attempt on a fresh grid. It returns
// errNotConverged when the repair budget runs out.
func (g *Generator) attempt(ctx context.Context, n int, logger *slog.Logger) (*Grid, int, error) {
	_, span := g.tracer.Start(ctx, "board.attempt", trace.WithAttributes(attribute.Int("board.attempt", n)))
	defer span.End()

	g.enter(span, PhaseInitializing)
	grid := hexgrid.NewGrid[tile.Tile](Radius)

	if err := g.placeBorders(grid); err != nil {
		return nil, 0, err
	}
	g.enter(span, PhaseBordersPlaced)

	if err := g.placeInterior(grid); err != nil {
		return nil, 0, err
	}
	g.enter(span, PhaseTilesPlaced)

	g.enter(span, PhaseRepairing)
	iterations, converged := g.repair(grid, logger)
	span.SetAttributes(
		attribute.Int("board.repair_iterations", iterations),
		attribute.Bool("board.converged", converged),
	)
	if !converged {
		g.enter(span, PhaseInitializing)
		return nil, iterations, errNotConverged
	}

	g.enter(span, PhaseDone)
	return grid, iterations, nil
}

func (g *Generator) enter(span trace.Span, p Phase) {
	g.phase = p
	span.AddEvent(p.String())
}

// placeBorders shuffles the single and double harbor segments independently
// and lays them around the outer ring alternately, starting at the north
// west corner and going clockwise. Segment i is rotated by i so its harbors
// face the land.
func (g *Generator) placeBorders(grid *Grid) error {
	single, double, err := g.rules.BuildBorders(g.rng)
	if err != nil {
		return err
	}
	if len(single) != len(double) || len(single)+len(double) != borderSegments {
		return fmt.Errorf("%w: %d single and %d double border segments",
			ErrInconsistentTables, len(single), len(double))
	}

	g.rng.Shuffle(len(single), func(i, j int) { single[i], single[j] = single[j], single[i] })
	g.rng.Shuffle(len(double), func(i, j int) { double[i], double[j] = double[j], double[i] })

	corner := hexgrid.NorthWest
	heading := hexgrid.East
	for i := 0; i < borderSegments; i++ {
		segment := single[i/2]
		if i%2 == 1 {
			segment = double[i/2]
		}
		if segment.Len() != tile.BorderLength {
			return fmt.Errorf("%w: border segment of %d tiles", ErrInconsistentTables, segment.Len())
		}

		segment.Rotate(i)
		start := hexgrid.Corner(corner, Radius)
		for j, t := range segment.Tiles() {
			mustSet(grid, start.Move(heading, j), t)
		}
		corner = corner.Clockwise()
		heading = heading.Clockwise()
	}
	return nil
}

// placeInterior fills the free interior cells in spiral order, center last,
// drawing terrain kinds and numbers from shuffled stacks.
func (g *Generator) placeInterior(grid *Grid) error {
	if g.rules.Prepare != nil {
		if err := g.rules.Prepare(grid, g.rng); err != nil {
			return err
		}
	}

	numbers := make([]int, len(g.rules.Numbers))
	for i, n := range g.rules.Numbers {
		numbers[len(numbers)-1-i] = n
	}
	if !g.opts.OrderedNumbers {
		g.rng.Shuffle(len(numbers), func(i, j int) { numbers[i], numbers[j] = numbers[j], numbers[i] })
	}

	kinds := append([]tile.Kind(nil), g.rules.Terrain...)
	g.rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	for _, c := range interiorCoords {
		if !mustIsFree(grid, c) {
			continue
		}
		if len(kinds) == 0 {
			return fmt.Errorf("%w: ran out of terrain at %v", ErrInconsistentTables, c)
		}
		k := kinds[len(kinds)-1]
		kinds = kinds[:len(kinds)-1]

		t := tile.Terrain(k)
		if k.IsNumbered() {
			if len(numbers) == 0 {
				return fmt.Errorf("%w: ran out of numbers at %v", ErrInconsistentTables, c)
			}
			t = tile.Numbered(k, tile.Single(numbers[len(numbers)-1]))
			numbers = numbers[:len(numbers)-1]
		}
		mustSet(grid, c, t)
	}

	if len(kinds) != 0 || len(numbers) != 0 {
		return fmt.Errorf("%w: %d terrain tiles and %d numbers left over",
			ErrInconsistentTables, len(kinds), len(numbers))
	}
	return nil
}

func mustGet(grid *Grid, c hexgrid.Coord) tile.Tile {
	t, err := grid.Get(c)
	if err != nil {
		panic(err)
	}
	return t
}

func mustSet(grid *Grid, c hexgrid.Coord, t tile.Tile) {
	if err := grid.Set(c, t); err != nil {
		panic(err)
	}
}

func mustIsFree(grid *Grid, c hexgrid.Coord) bool {
	free, err := grid.IsFree(c)
	if err != nil {
		panic(err)
	}
	return free
}
