// Package game wires configuration, board generation and output together.
package game

// State represents what the terminal view is showing.
type State int

const (
	// StateBoard shows the board alone.
	StateBoard State = iota
	// StateLegend shows the board with the tile legend beside it.
	StateLegend
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateBoard:
		return "board"
	case StateLegend:
		return "legend"
	default:
		return "unknown"
	}
}

// Toggle switches between the board and legend views.
func (s State) Toggle() State {
	if s == StateLegend {
		return StateBoard
	}
	return StateLegend
}

// command is a user action in the terminal view.
type command int

const (
	cmdNone command = iota
	cmdRegenerate
	cmdToggleLegend
	cmdQuit
)
