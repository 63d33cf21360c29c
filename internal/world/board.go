package world

import (
	"fmt"

	"github.com/samdwyer/dogboard/internal/gamedata"
)

// DieSides is the number of faces on every die rolled in the game.
const DieSides = 6

// Board is a fixed, 0-indexed track of places.
type Board struct {
	Name   string
	places []Place
}

// NewBoard builds a board from its definition, rejecting malformed ones.
func NewBoard(def gamedata.BoardDef) (*Board, error) {
	if err := ValidateBoardDef(def); err != nil {
		return nil, err
	}

	places := make([]Place, len(def.Places))
	for i, pd := range def.Places {
		places[i] = Place{
			ID:      i,
			Message: pd.Message,
		}
		if pd.Effect != nil {
			effect := *pd.Effect
			places[i].Effect = &effect
		}
		if pd.Persistent != nil {
			persistent := *pd.Persistent
			places[i].Persistent = &persistent
		}
	}

	return &Board{
		Name:   def.Name,
		places: places,
	}, nil
}

// Len returns the number of places on the board.
func (b *Board) Len() int {
	return len(b.places)
}

// LastIndex returns the index of the final place.
func (b *Board) LastIndex() int {
	return len(b.places) - 1
}

// Place returns the place at index i, or nil if out of bounds.
func (b *Board) Place(i int) *Place {
	if i < 0 || i >= len(b.places) {
		return nil
	}
	return &b.places[i]
}

// Places returns every place in track order.
func (b *Board) Places() []Place {
	return b.places
}

// ValidateBoardDef checks a board definition for correctness.
func ValidateBoardDef(def gamedata.BoardDef) error {
	if len(def.Places) == 0 {
		return fmt.Errorf("%w: board must have at least one place", ErrMalformedBoard)
	}

	for i, pd := range def.Places {
		if pd.Effect != nil {
			if err := validateEffect(i, len(def.Places), pd.Effect); err != nil {
				return err
			}
		}
		if pd.Persistent != nil {
			if err := validatePersistent(i, pd.Persistent); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateEffect(id, length int, e *gamedata.EffectDef) error {
	switch e.Kind {
	case gamedata.EffectMove, gamedata.EffectCoinMove:
		if e.Steps == 0 {
			return fmt.Errorf("%w: place %d: %s effect needs non-zero steps", ErrMalformedBoard, id, e.Kind)
		}
		if dest := id + e.Steps; dest < 0 || dest >= length {
			return fmt.Errorf("%w: place %d: %s effect points at place %d outside the board (0-%d)",
				ErrMalformedBoard, id, e.Kind, dest, length-1)
		}
	case gamedata.EffectSkipTurns:
		if e.Turns <= 0 {
			return fmt.Errorf("%w: place %d: skip_turns effect needs positive turns, got %d", ErrMalformedBoard, id, e.Turns)
		}
	case gamedata.EffectJackpot:
		if e.Rolls <= 0 {
			return fmt.Errorf("%w: place %d: jackpot effect needs positive rolls, got %d", ErrMalformedBoard, id, e.Rolls)
		}
		if e.Target < 1 || e.Target > DieSides {
			return fmt.Errorf("%w: place %d: jackpot target must be between 1 and %d, got %d",
				ErrMalformedBoard, id, DieSides, e.Target)
		}
		if e.Steps == 0 {
			return fmt.Errorf("%w: place %d: jackpot effect needs non-zero steps", ErrMalformedBoard, id)
		}
	case gamedata.EffectHighestRollWins:
		if dest := id + e.Steps; dest < 0 || dest >= length {
			return fmt.Errorf("%w: place %d: highest_roll_wins effect points at place %d outside the board (0-%d)",
				ErrMalformedBoard, id, dest, length-1)
		}
	case gamedata.EffectCoinRollAgain, gamedata.EffectLoseOnEvenRoll:
	default:
		return fmt.Errorf("%w: place %d: unknown effect kind %q", ErrMalformedBoard, id, e.Kind)
	}
	return nil
}

func validatePersistent(id int, p *gamedata.PersistentDef) error {
	switch p.Kind {
	case gamedata.PersistentAnyoneRolls:
		if p.Value < 1 || p.Value > DieSides {
			return fmt.Errorf("%w: place %d: anyone_rolls value must be between 1 and %d, got %d",
				ErrMalformedBoard, id, DieSides, p.Value)
		}
	case gamedata.PersistentOccupantsAdvance:
		if p.Value < 1 || p.Value > DieSides {
			return fmt.Errorf("%w: place %d: occupants_advance value must be between 1 and %d, got %d",
				ErrMalformedBoard, id, DieSides, p.Value)
		}
		if p.Steps == 0 {
			return fmt.Errorf("%w: place %d: occupants_advance effect needs non-zero steps", ErrMalformedBoard, id)
		}
	case gamedata.PersistentRollBack:
	default:
		return fmt.Errorf("%w: place %d: unknown persistent effect kind %q", ErrMalformedBoard, id, p.Kind)
	}
	return nil
}
