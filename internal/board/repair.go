package board

import (
	"log/slog"
	"math/rand"

	"github.com/samdwyer/catanpg/internal/hexgrid"
	"github.com/samdwyer/catanpg/internal/tile"
)

// interiorCoords are the land cells in spiral order, center last.
var interiorCoords = hexgrid.Spiral(hexgrid.East, interiorRadius)

// cellViolation counts, for every forbidden set holding the number at c, the
// numbered neighbors whose number is in the same set.
func cellViolation(grid *Grid, forbidden []tile.NumberSet, c hexgrid.Coord) int {
	t := mustGet(grid, c)
	if !t.HasNumber() {
		return 0
	}

	count := 0
	for _, set := range forbidden {
		if !set.Contains(t.Number) {
			continue
		}
		for _, near := range grid.Neighbors(c) {
			if near.HasNumber() && set.Contains(near.Number) {
				count++
			}
		}
	}
	return count
}

// gridViolation sums the violation of every interior cell.
func gridViolation(grid *Grid, forbidden []tile.NumberSet) int {
	total := 0
	for _, c := range interiorCoords {
		total += cellViolation(grid, forbidden, c)
	}
	return total
}

// rouletteSelect returns an index with probability proportional to its
// weight. Zero weights are never selected; at least one weight must be
// positive.
func rouletteSelect(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w < 0 {
			panic("board: negative roulette weight")
		}
		total += w
	}
	if total == 0 {
		panic("board: roulette selection without positive weights")
	}

	roll := rng.Intn(total) + 1
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll <= cumulative {
			return i
		}
	}

	// Unreachable: roll never exceeds total.
	return len(weights) - 1
}

// selectViolating picks a violating interior cell weighted by its violation.
func (g *Generator) selectViolating(grid *Grid) hexgrid.Coord {
	weights := make([]int, len(interiorCoords))
	for i, c := range interiorCoords {
		weights[i] = cellViolation(grid, g.rules.Forbidden, c)
	}
	return interiorCoords[rouletteSelect(g.rng, weights)]
}

// swapNumbers exchanges the numbers of the tiles at a and b; the kinds stay
// in place. A lake carries its numbers with it, so it trades places whole.
// Applying the same swap twice restores the grid.
func swapNumbers(grid *Grid, a, b hexgrid.Coord) {
	ta := mustGet(grid, a)
	tb := mustGet(grid, b)
	if ta.Kind == tile.Lake || tb.Kind == tile.Lake {
		mustSet(grid, a, tb)
		mustSet(grid, b, ta)
		return
	}
	ta.Number, tb.Number = tb.Number, ta.Number
	mustSet(grid, a, ta)
	mustSet(grid, b, tb)
}

// repair runs the bounded local search. Each iteration picks a violating
// cell, evaluates swapping its number with every other numbered interior
// cell, and commits one of the swaps with the lowest resulting violation,
// chosen uniformly. It reports the iterations spent and whether the grid
// ended with no violation.
func (g *Generator) repair(grid *Grid, logger *slog.Logger) (int, bool) {
	violation := gridViolation(grid, g.rules.Forbidden)
	logger.Info("initial violation", "violation", violation)

	iterations := 0
	for violation > 0 && iterations < g.opts.RepairIterations {
		target := g.selectViolating(grid)

		best := -1
		var candidates []hexgrid.Coord
		for _, c := range interiorCoords {
			if c == target || !mustGet(grid, c).HasNumber() {
				continue
			}
			if g.rules.CanSwap != nil && !g.rules.CanSwap(grid, target, c) {
				continue
			}

			swapNumbers(grid, target, c)
			v := gridViolation(grid, g.rules.Forbidden)
			swapNumbers(grid, target, c)

			switch {
			case best < 0 || v < best:
				best = v
				candidates = append(candidates[:0], c)
			case v == best:
				candidates = append(candidates, c)
			}
		}
		iterations++

		if len(candidates) == 0 {
			logger.Warn("no swap candidates", "target", target.String())
			break
		}

		swapNumbers(grid, target, candidates[g.rng.Intn(len(candidates))])
		violation = best
		logger.Debug("repair iteration",
			"iteration", iterations,
			"target", target.String(),
			"candidates", len(candidates),
			"violation", violation,
		)
	}
	// Reaching 0 on the last allowed swap still counts as converged.
	return iterations, violation == 0
}
