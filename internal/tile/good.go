package tile

import "fmt"

// Good is the resource a harbor trades.
type Good uint8

const (
	// GoodAny is the generic 3:1 harbor.
	GoodAny Good = iota
	GoodWool
	GoodLumber
	GoodOre
	GoodGrain
	GoodBrick
)

// Goods lists every harbor good.
var Goods = []Good{GoodAny, GoodWool, GoodLumber, GoodOre, GoodGrain, GoodBrick}

// String returns the good name.
func (g Good) String() string {
	switch g {
	case GoodAny:
		return "any"
	case GoodWool:
		return "wool"
	case GoodLumber:
		return "lumber"
	case GoodOre:
		return "ore"
	case GoodGrain:
		return "grain"
	case GoodBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Label returns the short label drawn on a port.
func (g Good) Label() string {
	switch g {
	case GoodAny:
		return "3"
	case GoodWool:
		return "W"
	case GoodLumber:
		return "L"
	case GoodOre:
		return "O"
	case GoodGrain:
		return "G"
	case GoodBrick:
		return "B"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Good) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Good) UnmarshalText(text []byte) error {
	for _, candidate := range Goods {
		if candidate.String() == string(text) {
			*g = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown harbor good %q", text)
}
