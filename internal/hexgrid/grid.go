package hexgrid

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange     = errors.New("coordinate outside hex grid")
	ErrRadiusTooLarge = errors.New("radius larger than hex grid")
)

// Grid is a hexagon of cells around the origin. Every coordinate with
// |x|, |y|, |x+y| <= radius maps to exactly one cell, initially unset.
// The radius is fixed at construction.
type Grid[T any] struct {
	radius   int
	cells    [][]T
	occupied [][]bool
}

// NewGrid creates an empty grid of the given radius.
func NewGrid[T any](radius int) *Grid[T] {
	size := 2*radius + 1
	cells := make([][]T, size)
	occupied := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]T, size)
		occupied[i] = make([]bool, size)
	}
	return &Grid[T]{
		radius:   radius,
		cells:    cells,
		occupied: occupied,
	}
}

// Radius returns the grid radius.
func (g *Grid[T]) Radius() int {
	return g.radius
}

// Len returns the number of cells in the grid.
func (g *Grid[T]) Len() int {
	return CellCount(g.radius)
}

// Contains reports whether c addresses a cell of the grid.
func (g *Grid[T]) Contains(c Coord) bool {
	return abs(c.X) <= g.radius && abs(c.Y) <= g.radius && abs(c.Z()) <= g.radius
}

func (g *Grid[T]) check(c Coord) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %v (radius %d)", ErrOutOfRange, c, g.radius)
	}
	return nil
}

// Set stores v in the cell at c.
func (g *Grid[T]) Set(c Coord, v T) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[c.X+g.radius][c.Y+g.radius] = v
	g.occupied[c.X+g.radius][c.Y+g.radius] = true
	return nil
}

// Get returns the value at c, or the zero value if the cell is unset.
func (g *Grid[T]) Get(c Coord) (T, error) {
	if err := g.check(c); err != nil {
		var zero T
		return zero, err
	}
	return g.cells[c.X+g.radius][c.Y+g.radius], nil
}

// IsFree reports whether the cell at c is unset.
func (g *Grid[T]) IsFree(c Coord) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	return !g.occupied[c.X+g.radius][c.Y+g.radius], nil
}

// Corner returns the furthest corner of the grid in direction d.
func (g *Grid[T]) Corner(d Direction) Coord {
	return Corner(d, g.radius)
}

// NeighborCoords returns the in-range neighbors of c in direction order.
func (g *Grid[T]) NeighborCoords(c Coord) []Coord {
	result := make([]Coord, 0, 6)
	for _, n := range c.Neighbors() {
		if g.Contains(n) {
			result = append(result, n)
		}
	}
	return result
}

// Neighbors returns the contents of the in-range neighbors of c.
func (g *Grid[T]) Neighbors(c Coord) []T {
	coords := g.NeighborCoords(c)
	result := make([]T, len(coords))
	for i, n := range coords {
		result[i] = g.cells[n.X+g.radius][n.Y+g.radius]
	}
	return result
}

// Ring returns the contents of the ring of the given radius in ring order.
func (g *Grid[T]) Ring(start Direction, radius int) ([]T, error) {
	if radius > g.radius {
		return nil, fmt.Errorf("%w: %d > %d", ErrRadiusTooLarge, radius, g.radius)
	}
	return g.collect(Ring(start, radius))
}

// Spiral returns the contents of the grid up to the given radius in spiral
// order, outermost ring first.
func (g *Grid[T]) Spiral(start Direction, radius int) ([]T, error) {
	if radius > g.radius {
		return nil, fmt.Errorf("%w: %d > %d", ErrRadiusTooLarge, radius, g.radius)
	}
	return g.collect(Spiral(start, radius))
}

func (g *Grid[T]) collect(coords []Coord) ([]T, error) {
	result := make([]T, 0, len(coords))
	for _, c := range coords {
		v, err := g.Get(c)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// Coords returns every coordinate of the grid in spiral order from East.
func (g *Grid[T]) Coords() []Coord {
	return Spiral(East, g.radius)
}

// Clone returns a copy of the grid. Values are copied, not deep-cloned.
func (g *Grid[T]) Clone() *Grid[T] {
	clone := NewGrid[T](g.radius)
	for i := range g.cells {
		copy(clone.cells[i], g.cells[i])
		copy(clone.occupied[i], g.occupied[i])
	}
	return clone
}
