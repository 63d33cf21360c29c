// Package game runs the turn engine: rolls, persistent effects, cascading
// landing effects, elimination and the closing summary.
package game

import "github.com/samdwyer/dogboard/internal/entity"

// Status represents the current game status.
type Status int

const (
	// StatusInProgress means more turns can be played.
	StatusInProgress Status = iota
	// StatusWon means a landing effect declared a winner.
	StatusWon
	// StatusAllEliminated means every player has lost.
	StatusAllEliminated
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusAllEliminated:
		return "all_eliminated"
	default:
		return "unknown"
	}
}

// Finished returns true for the terminal statuses.
func (s Status) Finished() bool {
	return s == StatusWon || s == StatusAllEliminated
}

// Result describes the game after a turn.
type Result struct {
	Status Status
	Winner *entity.Player // Set when Status is StatusWon
	Turns  int            // Total turns played so far
}
