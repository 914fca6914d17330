package tile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MaxNumbers is the largest tuple a tile can carry.
const MaxNumbers = 4

// Number is either a single dice value or a fixed tuple of values. The zero
// value means "no number". Numbers are comparable with ==.
type Number struct {
	count  uint8
	values [MaxNumbers]int
}

// Single returns a number holding one value.
func Single(v int) Number {
	return Number{count: 1, values: [MaxNumbers]int{v}}
}

// Tuple returns a number holding every value in order. It panics on an empty
// or oversized tuple.
func Tuple(values ...int) Number {
	if len(values) == 0 || len(values) > MaxNumbers {
		panic(fmt.Sprintf("tile: tuple of %d numbers", len(values)))
	}
	n := Number{count: uint8(len(values))}
	copy(n.values[:], values)
	return n
}

// IsZero reports whether the number is unset.
func (n Number) IsZero() bool {
	return n.count == 0
}

// IsSingle reports whether the number holds exactly one value.
func (n Number) IsSingle() bool {
	return n.count == 1
}

// Len returns the number of values held.
func (n Number) Len() int {
	return int(n.count)
}

// Value returns the first value, or 0 if unset.
func (n Number) Value() int {
	if n.count == 0 {
		return 0
	}
	return n.values[0]
}

// Values returns a copy of the held values.
func (n Number) Values() []int {
	out := make([]int, n.count)
	copy(out, n.values[:n.count])
	return out
}

func (n Number) String() string {
	parts := make([]string, n.count)
	for i := range parts {
		parts[i] = strconv.Itoa(n.values[i])
	}
	return strings.Join(parts, "/")
}

// MarshalJSON encodes a single value as a JSON number and a tuple as an array.
func (n Number) MarshalJSON() ([]byte, error) {
	switch n.count {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(n.values[0])
	default:
		return json.Marshal(n.Values())
	}
}

// UnmarshalJSON accepts a JSON number, an array of numbers or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = Number{}
		return nil
	case len(data) > 0 && data[0] == '[':
		var values []int
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		if len(values) == 0 || len(values) > MaxNumbers {
			return fmt.Errorf("number tuple must hold 1 to %d values, got %d", MaxNumbers, len(values))
		}
		*n = Tuple(values...)
		return nil
	default:
		var v int
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*n = Single(v)
		return nil
	}
}

// NumberSet is a group of numbers that may not sit on adjacent tiles.
type NumberSet []Number

// Contains reports whether n is a member of the set.
func (s NumberSet) Contains(n Number) bool {
	for _, m := range s {
		if m == n {
			return true
		}
	}
	return false
}
