// Package effect evaluates landing and persistent effects.
//
// Effects never touch the game directly. The resolver draws dice and coins
// through a Dice and describes the result as a list of requests that the
// engine applies in order.
package effect

import (
	"fmt"

	"github.com/samdwyer/dogboard/internal/entity"
	"github.com/samdwyer/dogboard/internal/gamedata"
	"github.com/samdwyer/dogboard/internal/world"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_dice.go github.com/samdwyer/dogboard/internal/effect Dice

// Dice draws on behalf of a player. Implementations record every draw.
type Dice interface {
	// Roll rolls one six-sided die for the player.
	Roll(p *entity.Player) int
	// Flip flips a coin for the player; true is heads.
	Flip(p *entity.Player) bool
}

// Resolver evaluates effects.
type Resolver struct {
	dice Dice
}

// NewResolver creates a resolver drawing from dice.
func NewResolver(dice Dice) *Resolver {
	return &Resolver{dice: dice}
}

// Land evaluates the landing effect of place for the player who just landed
// there. active is the turn order at the time of landing and includes lander.
func (r *Resolver) Land(place *world.Place, lander *entity.Player, active []*entity.Player) (Outcome, error) {
	if place == nil || !place.HasEffect() {
		return Outcome{}, fmt.Errorf("land on place %d: %w", placeID(place), ErrNoEffect)
	}

	e := place.Effect
	switch e.Kind {
	case gamedata.EffectMove:
		return moved(Move(lander.ID, e.Steps)), nil

	case gamedata.EffectCoinRollAgain:
		if !r.dice.Flip(lander) {
			return Outcome{}, nil
		}
		return moved(Move(lander.ID, r.dice.Roll(lander))), nil

	case gamedata.EffectCoinMove:
		if !r.dice.Flip(lander) {
			return Outcome{}, nil
		}
		return moved(Move(lander.ID, e.Steps)), nil

	case gamedata.EffectSkipTurns:
		return Outcome{Requests: []Request{Skip(lander.ID, e.Turns)}}, nil

	case gamedata.EffectJackpot:
		return r.jackpot(e, lander, active), nil

	case gamedata.EffectLoseOnEvenRoll:
		if r.dice.Roll(lander)%2 == 0 {
			return Outcome{Requests: []Request{Eliminate(lander.ID)}}, nil
		}
		return Outcome{}, nil

	case gamedata.EffectHighestRollWins:
		return r.highestRollWins(e, lander, active), nil

	default:
		return Outcome{}, fmt.Errorf("land on place %d: %w: %q", place.ID, ErrUnknownEffect, e.Kind)
	}
}

// jackpot rolls every die before comparing, so each roll is recorded.
func (r *Resolver) jackpot(e *gamedata.EffectDef, lander *entity.Player, active []*entity.Player) Outcome {
	hit := true
	for i := 0; i < e.Rolls; i++ {
		if r.dice.Roll(lander) != e.Target {
			hit = false
		}
	}
	if !hit {
		return Outcome{}
	}

	var out Outcome
	for _, p := range active {
		if p.ID != lander.ID {
			out.Requests = append(out.Requests, Move(p.ID, e.Steps))
		}
	}
	return out
}

// highestRollWins has every other player roll in turn order, then the
// lander. A tie goes against the lander.
func (r *Resolver) highestRollWins(e *gamedata.EffectDef, lander *entity.Player, active []*entity.Player) Outcome {
	others := make([]int, 0, len(active))
	for _, p := range active {
		if p.ID != lander.ID {
			others = append(others, r.dice.Roll(p))
		}
	}
	mine := r.dice.Roll(lander)

	for _, roll := range others {
		if roll >= mine {
			return moved(Move(lander.ID, e.Steps))
		}
	}
	return Outcome{Won: true, Winner: lander.ID}
}

// Persist evaluates the persistent effect of place against the roll of the
// player whose turn it is.
func (r *Resolver) Persist(place *world.Place, roller *entity.Player, roll int, active []*entity.Player) (Outcome, error) {
	if place == nil || !place.HasPersistentEffect() {
		return Outcome{}, fmt.Errorf("persist on place %d: %w", placeID(place), ErrNoPersistentEffect)
	}

	pe := place.Persistent
	switch pe.Kind {
	case gamedata.PersistentAnyoneRolls:
		if roll != pe.Value {
			return Outcome{}, nil
		}
		out := Outcome{Triggered: true}
		for _, p := range active {
			out.Requests = append(out.Requests, Move(p.ID, -pe.Value))
		}
		return out, nil

	case gamedata.PersistentOccupantsAdvance:
		if roll != pe.Value {
			return Outcome{}, nil
		}
		out := Outcome{Triggered: true}
		for _, p := range active {
			if p.CurrentPlace == place.ID {
				out.Requests = append(out.Requests, Move(p.ID, pe.Steps))
			}
		}
		return out, nil

	case gamedata.PersistentRollBack:
		if roller.CurrentPlace != place.ID {
			return Outcome{}, nil
		}
		return Outcome{Requests: []Request{Move(roller.ID, -roll)}, Triggered: true}, nil

	default:
		return Outcome{}, fmt.Errorf("persist on place %d: %w: %q", place.ID, ErrUnknownEffect, pe.Kind)
	}
}

func moved(reqs ...Request) Outcome {
	return Outcome{Requests: reqs}
}

func placeID(p *world.Place) int {
	if p == nil {
		return -1
	}
	return p.ID
}
