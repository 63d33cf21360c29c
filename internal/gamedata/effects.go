package gamedata

// =============================================================================
// EFFECT SYSTEM DESIGN
// =============================================================================
//
// Overview:
// ---------
// A board is a linear track of places. Any place may carry a landing effect,
// a persistent effect, both, or neither. Effects are data: a kind plus a few
// integer parameters, loaded from JSON and dispatched by the effect resolver.
//
// 1. Landing effects - fire once when a move ends exactly on the place:
//    - move:              move the lander by steps
//    - coin_roll_again:   flip a coin; heads rolls a die and moves the lander that far
//    - coin_move:         flip a coin; heads moves the lander by steps
//    - skip_turns:        the lander skips the next turns turns
//    - jackpot:           roll rolls dice; all equal to target moves everyone else by steps
//    - lose_on_even_roll: roll a die; even eliminates the lander
//    - highest_roll_wins: everyone else rolls, then the lander; a strictly highest
//                         lander wins, otherwise the lander moves by steps
//
// 2. Persistent effects - checked on every turn against the active player's
//    roll, for each place currently occupied by at least one player:
//    - anyone_rolls:      a roll of value moves every active player back value
//    - occupants_advance: a roll of value moves the players on this place by steps
//    - roll_back:         if the active player stands here, they move back by the roll
//
// JSON Schema:
// ------------
// {
//   "name": "classic",
//   "description": "...",
//   "places": [
//     {},
//     {"effect": {"kind": "move", "steps": -2}, "message": "Go back 2 spaces"},
//     {"persistent": {"kind": "anyone_rolls", "value": 2}}
//   ]
// }
//
// Turn Order:
// -----------
// The roller's persistent effects are checked before they move. At most one
// persistent effect fires per turn; when none fires the roller moves by the
// roll. Landing effects then cascade until nobody else moved.

// EffectKind identifies a landing effect variant.
type EffectKind string

const (
	EffectMove            EffectKind = "move"
	EffectCoinRollAgain   EffectKind = "coin_roll_again"
	EffectCoinMove        EffectKind = "coin_move"
	EffectSkipTurns       EffectKind = "skip_turns"
	EffectJackpot         EffectKind = "jackpot"
	EffectLoseOnEvenRoll  EffectKind = "lose_on_even_roll"
	EffectHighestRollWins EffectKind = "highest_roll_wins"
)

// PersistentKind identifies a persistent effect variant.
type PersistentKind string

const (
	PersistentAnyoneRolls      PersistentKind = "anyone_rolls"
	PersistentOccupantsAdvance PersistentKind = "occupants_advance"
	PersistentRollBack         PersistentKind = "roll_back"
)

// EffectDef defines a landing effect loaded from JSON.
type EffectDef struct {
	Kind   EffectKind `json:"kind"`
	Steps  int        `json:"steps,omitempty"`  // Signed move distance
	Turns  int        `json:"turns,omitempty"`  // Turns to skip
	Rolls  int        `json:"rolls,omitempty"`  // Dice rolled by jackpot
	Target int        `json:"target,omitempty"` // Face every jackpot roll must show
}

// PersistentDef defines a persistent effect loaded from JSON.
type PersistentDef struct {
	Kind  PersistentKind `json:"kind"`
	Value int            `json:"value,omitempty"` // Roll that triggers the effect
	Steps int            `json:"steps,omitempty"` // Signed move distance
}
