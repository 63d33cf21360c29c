// Package entity provides the players of a game and their turn order.
package entity

import "fmt"

// PlayerID identifies a player. IDs are assigned in join order and never reused.
type PlayerID int

// Player is one participant's mutable state.
type Player struct {
	ID           PlayerID
	Name         string
	CurrentPlace int // Index on the board
	TotalPlaces  int // Cumulative distance moved, forwards and backwards
	TurnsToSkip  int // Turns still to be skipped
}

// NewPlayer creates a player at the start of the board.
func NewPlayer(id PlayerID, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
	}
}

// Move moves the player by step, clamping to the places 0 through last. It
// returns the step actually applied.
func (p *Player) Move(step, last int) int {
	switch {
	case step > 0:
		if p.CurrentPlace+step > last {
			step = last - p.CurrentPlace
		}
		p.CurrentPlace += step
		p.TotalPlaces += step
	case step < 0:
		if p.CurrentPlace+step < 0 {
			step = -p.CurrentPlace
		}
		p.CurrentPlace += step
		p.TotalPlaces -= step
	}
	return step
}

// SkipTurns adds n turns to skip.
func (p *Player) SkipTurns(n int) {
	if n > 0 {
		p.TurnsToSkip += n
	}
}

// String returns the player as "<name> (<id>)".
func (p *Player) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.ID)
}
