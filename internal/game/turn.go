package game

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/dogboard/internal/effect"
	"github.com/samdwyer/dogboard/internal/entity"
	"github.com/samdwyer/dogboard/internal/eventlog"
	"github.com/samdwyer/dogboard/internal/world"
)

// Step plays one turn for the player at the current offset.
//
// A skipping player uses up one skipped turn without rolling. Otherwise the
// player rolls, the persistent effects of occupied places are checked against
// the roll, and if none fired the player moves by the roll. Landing effects
// then cascade over every moved player. The offset advances unless the game
// ended during the turn.
func (g *Game) Step(ctx context.Context) (Result, error) {
	if g.status.Finished() {
		return g.Result(), ErrGameOver
	}
	g.start()

	_, span := g.tracer.Start(ctx, "game.turn")
	defer span.End()

	g.turns++
	g.emit(eventlog.NewTurn(g.turns))

	current := g.roster.Current()
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int("turn", g.turns),
		attribute.Int("player.id", int(current.ID)),
	)

	if current.TurnsToSkip > 0 {
		current.TurnsToSkip--
		g.log.Debug("turn skipped",
			zap.Int("turn", g.turns),
			zap.Stringer("player", current),
			zap.Int("turns_to_skip", current.TurnsToSkip),
		)
		g.roster.Advance()
		return g.endTurn(span)
	}

	roll := dice{g}.Roll(current)
	span.SetAttributes(attribute.Int("roll", roll))

	moved, triggered, err := g.resolvePersistent(current, roll)
	if err != nil {
		return g.Result(), err
	}
	if !triggered {
		moved = g.apply([]effect.Request{effect.Move(current.ID, roll)})
	}

	if err := g.cascade(moved); err != nil {
		return g.Result(), err
	}

	switch {
	case g.status == StatusWon:
		g.log.Debug("player won", zap.Int("turn", g.turns), zap.Stringer("player", g.winner))
	case g.roster.Empty():
		g.status = StatusAllEliminated
	default:
		g.roster.Advance()
	}
	return g.endTurn(span)
}

func (g *Game) endTurn(span trace.Span) (Result, error) {
	span.SetAttributes(attribute.String("status", g.status.String()))
	return g.Result(), g.events.Err()
}

// resolvePersistent checks the persistent effects of every place occupied by
// an active player, in turn order, and stops at the first one that fires.
func (g *Game) resolvePersistent(current *entity.Player, roll int) ([]entity.PlayerID, bool, error) {
	for _, place := range g.persistentCandidates() {
		out, err := g.resolver.Persist(place, current, roll, g.roster.Active())
		if err != nil {
			return nil, false, fmt.Errorf("turn %d: %w", g.turns, err)
		}
		if out.Triggered {
			g.log.Debug("persistent effect fired",
				zap.Int("turn", g.turns),
				zap.Int("place", place.ID),
				zap.String("kind", string(place.Persistent.Kind)),
				zap.Int("roll", roll),
			)
			return g.apply(out.Requests), true, nil
		}
	}
	return nil, false, nil
}

// persistentCandidates returns the occupied places with a persistent effect,
// each once, in the turn order of their first occupant.
func (g *Game) persistentCandidates() []*world.Place {
	var places []*world.Place
	seen := make(map[int]bool)
	for _, p := range g.roster.Active() {
		place := g.board.Place(p.CurrentPlace)
		if place == nil || !place.HasPersistentEffect() || seen[place.ID] {
			continue
		}
		seen[place.ID] = true
		places = append(places, place)
	}
	return places
}

// cascade resolves landing effects round by round. Each round visits the
// players moved in the previous one, by ascending ID, skipping eliminated
// players. A win stops the cascade immediately.
func (g *Game) cascade(frontier []entity.PlayerID) error {
	for round := 0; len(frontier) > 0; round++ {
		if round >= g.cascadeLimit {
			return fmt.Errorf("turn %d: %d rounds: %w", g.turns, round, ErrCascadeLimit)
		}

		slices.Sort(frontier)
		frontier = slices.Compact(frontier)

		var next []entity.PlayerID
		for _, id := range frontier {
			if !g.roster.IsActive(id) {
				continue
			}
			p := g.roster.Get(id)
			place := g.board.Place(p.CurrentPlace)
			if !place.HasEffect() {
				continue
			}

			out, err := g.resolver.Land(place, p, g.roster.Active())
			if err != nil {
				return fmt.Errorf("turn %d: %w", g.turns, err)
			}
			g.log.Debug("landing effect",
				zap.Int("turn", g.turns),
				zap.Int("round", round),
				zap.Stringer("player", p),
				zap.Int("place", place.ID),
				zap.String("kind", string(place.Effect.Kind)),
				zap.Int("moves", len(out.Moved())),
			)
			if out.Won {
				g.status = StatusWon
				g.winner = g.roster.Get(out.Winner)
				return nil
			}
			next = append(next, g.apply(out.Requests)...)
		}
		frontier = next
	}
	return nil
}

// apply carries out effect requests in order and returns the moved players.
// Requests for players eliminated earlier in the list are dropped.
func (g *Game) apply(reqs []effect.Request) []entity.PlayerID {
	var moved []entity.PlayerID
	for _, r := range reqs {
		if !g.roster.IsActive(r.Player) {
			continue
		}
		p := g.roster.Get(r.Player)

		switch r.Kind {
		case effect.RequestMove:
			step := p.Move(r.Steps, g.board.LastIndex())
			place := g.board.Place(p.CurrentPlace)
			g.emit(eventlog.NewMove(eventlog.Ref(p), step, place.ID, place.Message))
			moved = append(moved, p.ID)

		case effect.RequestSkip:
			p.SkipTurns(r.Turns)

		case effect.RequestEliminate:
			g.roster.Remove(p.ID)
			g.emit(eventlog.NewLost(eventlog.Ref(p)))
			g.log.Debug("player lost",
				zap.Int("turn", g.turns),
				zap.Stringer("player", p),
				zap.Int("remaining", g.roster.Len()),
			)
		}
	}
	return moved
}
