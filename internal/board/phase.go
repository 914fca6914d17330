package board

// Phase is the state of the generator within one attempt.
type Phase int

const (
	// PhaseInitializing allocates a fresh grid. A failed repair returns here.
	PhaseInitializing Phase = iota
	// PhaseBordersPlaced has the sea ring with its harbors in place.
	PhaseBordersPlaced
	// PhaseTilesPlaced has every interior cell filled with terrain and numbers.
	PhaseTilesPlaced
	// PhaseRepairing swaps numbers until no forbidden adjacency remains.
	PhaseRepairing
	// PhaseDone holds a finished board.
	PhaseDone
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseBordersPlaced:
		return "borders_placed"
	case PhaseTilesPlaced:
		return "tiles_placed"
	case PhaseRepairing:
		return "repairing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
