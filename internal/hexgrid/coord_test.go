package hexgrid

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestDirectionAngle(t *testing.T) {
	tests := []struct {
		dir  Direction
		want float64
	}{
		{East, 0},
		{NorthEast, 60},
		{NorthWest, 120},
		{West, 180},
		{SouthWest, 240},
		{SouthEast, 300},
	}

	for _, tt := range tests {
		if got := tt.dir.Angle(); got != tt.want {
			t.Errorf("%v.Angle() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		from Coord
		dir  Direction
		n    int
		want Coord
	}{
		{Coord{0, 0}, East, 2, Coord{2, 0}},
		{Coord{2, 3}, West, 4, Coord{-2, 3}},
		{Coord{-1, 1}, SouthEast, 3, Coord{-1, 4}},
		{Coord{-1, -1}, SouthWest, 1, Coord{-2, 0}},
		{Coord{-1, -1}, NorthEast, 5, Coord{4, -6}},
		{Coord{2, 1}, NorthWest, 10, Coord{2, -9}},
	}

	for _, tt := range tests {
		if got := tt.from.Move(tt.dir, tt.n); got != tt.want {
			t.Errorf("%v.Move(%v, %d) = %v, want %v", tt.from, tt.dir, tt.n, got, tt.want)
		}
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		from Coord
		dir  Direction
		want Coord
	}{
		{Coord{2, 3}, East, Coord{3, 3}},
		{Coord{-1, 1}, West, Coord{-2, 1}},
		{Coord{-1, -1}, SouthEast, Coord{-1, 0}},
		{Coord{-1, -1}, SouthWest, Coord{-2, 0}},
		{Coord{2, 1}, NorthEast, Coord{3, 0}},
		{Coord{0, 0}, NorthWest, Coord{0, -1}},
	}

	for _, tt := range tests {
		if got := tt.from.Step(tt.dir); got != tt.want {
			t.Errorf("%v.Step(%v) = %v, want %v", tt.from, tt.dir, got, tt.want)
		}
	}
}

func TestMoveIsReversible(t *testing.T) {
	points := []Coord{{0, 0}, {2, -1}, {-3, 3}, {5, 7}}
	for _, p := range points {
		for _, d := range Directions {
			for n := 0; n <= 4; n++ {
				if got := p.Move(d, n).Move(d.Opposite(), n); got != p {
					t.Errorf("%v.Move(%v, %d) and back = %v", p, d, n, got)
				}
			}
		}
	}
}

func TestCorner(t *testing.T) {
	tests := []struct {
		dir    Direction
		radius int
		want   Coord
	}{
		{East, 4, Coord{4, 0}},
		{West, 3, Coord{-3, 0}},
		{SouthEast, 1, Coord{0, 1}},
		{SouthWest, 5, Coord{-5, 5}},
		{NorthEast, 10, Coord{10, -10}},
		{NorthWest, 2, Coord{0, -2}},
	}

	for _, tt := range tests {
		if got := Corner(tt.dir, tt.radius); got != tt.want {
			t.Errorf("Corner(%v, %d) = %v, want %v", tt.dir, tt.radius, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 2}, 2},
		{Coord{-2, 4}, Coord{1, 1}, 3},
		{Coord{-2, 0}, Coord{4, -2}, 6},
		{Coord{1, 1}, Coord{1, 1}, 0},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistanceMetric(t *testing.T) {
	points := Spiral(East, 3)
	for _, a := range points {
		if Distance(a, a) != 0 {
			t.Errorf("Distance(%v, %v) != 0", a, a)
		}
		for _, b := range points {
			ab := Distance(a, b)
			if ab != Distance(b, a) {
				t.Errorf("Distance(%v, %v) is not symmetric", a, b)
			}
			for _, c := range []Coord{{0, 0}, {3, -1}, {-2, -1}} {
				if Distance(a, c) > ab+Distance(b, c) {
					t.Errorf("triangle inequality broken for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestRadius(t *testing.T) {
	tests := []struct {
		c    Coord
		want int
	}{
		{Coord{2, 0}, 2},
		{Coord{2, -2}, 2},
		{Coord{4, 1}, 5},
		{Coord{0, 0}, 0},
	}

	for _, tt := range tests {
		if got := tt.c.Radius(); got != tt.want {
			t.Errorf("%v.Radius() = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		dir  Direction
		n    int
		want Direction
	}{
		{NorthEast, 0, NorthEast},
		{NorthEast, 1, East},
		{NorthEast, -1, NorthWest},
		{NorthEast, 3, SouthWest},
		{SouthEast, 6, SouthEast},
		{East, 8, SouthWest},
		{East, -8, NorthWest},
	}

	for _, tt := range tests {
		if got := tt.dir.Rotate(tt.n); got != tt.want {
			t.Errorf("%v.Rotate(%d) = %v, want %v", tt.dir, tt.n, got, tt.want)
		}
	}

	if got := East.Clockwise(); got != SouthEast {
		t.Errorf("East.Clockwise() = %v, want southeast", got)
	}
	if got := West.CounterClockwise(); got != SouthWest {
		t.Errorf("West.CounterClockwise() = %v, want southwest", got)
	}
}

func TestOpposite(t *testing.T) {
	want := map[Direction]Direction{
		East:      West,
		SouthEast: NorthWest,
		SouthWest: NorthEast,
		West:      East,
		NorthWest: SouthEast,
		NorthEast: SouthWest,
	}
	for d, o := range want {
		if got := d.Opposite(); got != o {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, o)
		}
	}
}

func TestMirror(t *testing.T) {
	tests := []struct{ c, want Coord }{
		{Coord{2, 0}, Coord{-2, 0}},
		{Coord{1, -4}, Coord{-1, 4}},
		{Coord{-2, 3}, Coord{2, -3}},
		{Coord{0, 0}, Coord{0, 0}},
	}
	for _, tt := range tests {
		if got := tt.c.Mirror(); got != tt.want {
			t.Errorf("%v.Mirror() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestRing(t *testing.T) {
	want := []Coord{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1}}
	if got := Ring(East, 1); !reflect.DeepEqual(got, want) {
		t.Errorf("Ring(East, 1) = %v, want %v", got, want)
	}

	want = []Coord{
		{0, -2}, {1, -2}, {2, -2}, {2, -1}, {2, 0}, {1, 1},
		{0, 2}, {-1, 2}, {-2, 2}, {-2, 1}, {-2, 0}, {-1, -1},
	}
	if got := Ring(NorthWest, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("Ring(NorthWest, 2) = %v, want %v", got, want)
	}

	if got := Ring(SouthEast, 0); !reflect.DeepEqual(got, []Coord{{0, 0}}) {
		t.Errorf("Ring(SouthEast, 0) = %v, want [(0, 0)]", got)
	}
}

func TestRingNegativeRadius(t *testing.T) {
	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "hexgrid: negative ring radius") {
			t.Errorf("Ring(East, -1) panicked with %v, want a negative radius panic", r)
		}
	}()
	Ring(East, -1)
}

func TestRingProperties(t *testing.T) {
	for _, start := range Directions {
		for r := 0; r <= 5; r++ {
			ring := Ring(start, r)
			wantLen := max(1, 6*r)
			if len(ring) != wantLen {
				t.Errorf("Ring(%v, %d) has %d cells, want %d", start, r, len(ring), wantLen)
			}
			seen := make(map[Coord]bool)
			for _, c := range ring {
				if c.Radius() != r {
					t.Errorf("Ring(%v, %d) contains %v at radius %d", start, r, c, c.Radius())
				}
				if seen[c] {
					t.Errorf("Ring(%v, %d) repeats %v", start, r, c)
				}
				seen[c] = true
			}
		}
	}
}

func TestSpiral(t *testing.T) {
	want := []Coord{{-1, 0}, {0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1}, {0, 0}}
	if got := Spiral(West, 1); !reflect.DeepEqual(got, want) {
		t.Errorf("Spiral(West, 1) = %v, want %v", got, want)
	}

	want = []Coord{
		{-2, 2}, {-2, 1}, {-2, 0}, {-1, -1}, {0, -2}, {1, -2}, {2, -2}, {2, -1}, {2, 0}, {1, 1}, {0, 2}, {-1, 2},
		{-1, 1}, {-1, 0}, {0, -1}, {1, -1}, {1, 0}, {0, 1},
		{0, 0},
	}
	if got := Spiral(SouthWest, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("Spiral(SouthWest, 2) = %v, want %v", got, want)
	}

	if got := Spiral(NorthEast, 0); !reflect.DeepEqual(got, []Coord{{0, 0}}) {
		t.Errorf("Spiral(NorthEast, 0) = %v, want [(0, 0)]", got)
	}
}

func TestSpiralMatchesRings(t *testing.T) {
	for _, start := range Directions {
		spiral := Spiral(start, 3)
		if len(spiral) != CellCount(3) {
			t.Fatalf("Spiral(%v, 3) has %d cells, want %d", start, len(spiral), CellCount(3))
		}
		if last := spiral[len(spiral)-1]; last != Origin {
			t.Errorf("Spiral(%v, 3) ends at %v, want origin", start, last)
		}
		prev := 3
		for _, c := range spiral {
			if c.Radius() > prev {
				t.Errorf("Spiral(%v, 3) is not outermost-first at %v", start, c)
			}
			prev = c.Radius()
		}
	}
}

func TestNeighbors(t *testing.T) {
	sorted := func(cs [6]Coord) []Coord {
		out := cs[:]
		sort.Slice(out, func(i, j int) bool {
			if out[i].X != out[j].X {
				return out[i].X < out[j].X
			}
			return out[i].Y < out[j].Y
		})
		return out
	}

	want := []Coord{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}
	if got := sorted(Coord{0, 0}.Neighbors()); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0, 0) = %v, want %v", got, want)
	}

	want = []Coord{{1, -1}, {1, 0}, {2, -2}, {2, 0}, {3, -2}, {3, -1}}
	if got := sorted(Coord{2, -1}.Neighbors()); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(2, -1) = %v, want %v", got, want)
	}
}
