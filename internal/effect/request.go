package effect

import "github.com/samdwyer/dogboard/internal/entity"

// RequestKind identifies a state change an effect asks the engine to make.
type RequestKind int

const (
	// RequestMove moves a player by Steps.
	RequestMove RequestKind = iota
	// RequestSkip adds Turns turns to skip.
	RequestSkip
	// RequestEliminate removes a player from the turn order.
	RequestEliminate
)

// String returns a human-readable request kind.
func (k RequestKind) String() string {
	switch k {
	case RequestMove:
		return "move"
	case RequestSkip:
		return "skip"
	case RequestEliminate:
		return "eliminate"
	default:
		return "unknown"
	}
}

// Request is one state change, applied by the engine in order.
type Request struct {
	Kind   RequestKind
	Player entity.PlayerID
	Steps  int // RequestMove only
	Turns  int // RequestSkip only
}

// Move requests that a player moves by steps.
func Move(id entity.PlayerID, steps int) Request {
	return Request{Kind: RequestMove, Player: id, Steps: steps}
}

// Skip requests that a player skips turns.
func Skip(id entity.PlayerID, turns int) Request {
	return Request{Kind: RequestSkip, Player: id, Turns: turns}
}

// Eliminate requests that a player is removed from the game.
func Eliminate(id entity.PlayerID) Request {
	return Request{Kind: RequestEliminate, Player: id}
}

// Outcome is the result of evaluating an effect.
type Outcome struct {
	Requests []Request

	// Won is set when the lander won the game; Requests is then empty.
	Won    bool
	Winner entity.PlayerID

	// Triggered reports whether a persistent effect fired. Landing effects
	// leave it false.
	Triggered bool
}

// Moved returns the players targeted by move requests, in request order.
// A player moved twice is listed twice.
func (o Outcome) Moved() []entity.PlayerID {
	var ids []entity.PlayerID
	for _, r := range o.Requests {
		if r.Kind == RequestMove {
			ids = append(ids, r.Player)
		}
	}
	return ids
}
