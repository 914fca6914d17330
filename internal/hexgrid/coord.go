// Package hexgrid provides axial-coordinate hex geometry and a bounded
// hexagonal grid container.
//
// Coordinates are axial (x, y) with the implicit third cube coordinate
// z = -x - y. Directions are ordered clockwise starting at East.
package hexgrid

import "fmt"

// Direction is one of the six hex directions.
type Direction int

const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
)

// Directions lists every direction in clockwise order starting at East.
var Directions = [6]Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}

var directionVectors = [6]Coord{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// Angles are counter-clockwise from the positive x axis of the rendered image.
var directionAngles = [6]float64{0, 300, 240, 180, 120, 60}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case SouthEast:
		return "southeast"
	case SouthWest:
		return "southwest"
	case West:
		return "west"
	case NorthWest:
		return "northwest"
	case NorthEast:
		return "northeast"
	default:
		return "unknown"
	}
}

// Vector returns the unit coordinate delta of the direction.
func (d Direction) Vector() Coord {
	return directionVectors[d.normalized()]
}

// Angle returns the rendering angle of the direction in degrees.
func (d Direction) Angle() float64 {
	return directionAngles[d.normalized()]
}

// Rotate returns the direction n steps clockwise (counter-clockwise for negative n).
func (d Direction) Rotate(n int) Direction {
	return Direction(int(d) + n).normalized()
}

// Clockwise returns the next direction clockwise.
func (d Direction) Clockwise() Direction { return d.Rotate(1) }

// CounterClockwise returns the next direction counter-clockwise.
func (d Direction) CounterClockwise() Direction { return d.Rotate(-1) }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return d.Rotate(3) }

func (d Direction) normalized() Direction {
	return Direction((int(d)%6 + 6) % 6)
}

// Coord is an axial hex coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin is the center of every grid.
var Origin = Coord{}

// Z returns the implicit third cube coordinate.
func (c Coord) Z() int {
	return -c.X - c.Y
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Move returns the coordinate n steps away along direction d.
func (c Coord) Move(d Direction, n int) Coord {
	v := d.Vector()
	return Coord{X: c.X + v.X*n, Y: c.Y + v.Y*n}
}

// Step returns the adjacent coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	return c.Move(d, 1)
}

// Mirror returns the point reflection of c through the origin.
func (c Coord) Mirror() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Radius returns the ring index of c, its distance to the origin.
func (c Coord) Radius() int {
	return Distance(c, Origin)
}

// Neighbors returns the six adjacent coordinates indexed by direction.
// They are not filtered by any grid bounds.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, d := range Directions {
		result[i] = c.Step(d)
	}
	return result
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Corner returns the corner of the ring of the given radius in direction d.
func Corner(d Direction, radius int) Coord {
	return Origin.Move(d, radius)
}

// Distance returns the hex distance between a and b.
func Distance(a, b Coord) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	sum := abs(dx) + abs(dx+dy) + abs(dy)
	if sum%2 != 0 {
		panic(fmt.Sprintf("hexgrid: non-integer distance between %v and %v", a, b))
	}
	return sum / 2
}

// Ring returns the 6*radius coordinates at exactly the given radius, starting
// at the corner in direction start and walking clockwise one edge at a time.
// Radius 0 yields the origin alone. It panics on a negative radius.
func Ring(start Direction, radius int) []Coord {
	if radius < 0 {
		panic(fmt.Sprintf("hexgrid: negative ring radius %d", radius))
	}
	if radius == 0 {
		return []Coord{Origin}
	}
	ring := make([]Coord, 0, 6*radius)
	cur := Corner(start, radius)
	for side := 0; side < 6; side++ {
		dir := start.Rotate(side + 2)
		for step := 0; step < radius; step++ {
			ring = append(ring, cur)
			cur = cur.Step(dir)
		}
	}
	return ring
}

// Spiral concatenates the rings from maxRadius down to 0, so the origin is
// always last.
func Spiral(start Direction, maxRadius int) []Coord {
	spiral := make([]Coord, 0, CellCount(maxRadius))
	for r := maxRadius; r >= 0; r-- {
		spiral = append(spiral, Ring(start, r)...)
	}
	return spiral
}

// CellCount returns the number of cells in a hexagon of the given radius.
func CellCount(radius int) int {
	return 1 + 3*radius*(radius+1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
