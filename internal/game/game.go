package game

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/dogboard/internal/common/uuid"
	"github.com/samdwyer/dogboard/internal/effect"
	"github.com/samdwyer/dogboard/internal/entity"
	"github.com/samdwyer/dogboard/internal/eventlog"
	"github.com/samdwyer/dogboard/internal/rng"
	"github.com/samdwyer/dogboard/internal/telemetry"
	"github.com/samdwyer/dogboard/internal/world"
)

// Game holds the entire game state. It is not safe for concurrent use.
type Game struct {
	id       string
	seed     int64
	board    *world.Board
	roster   *entity.Roster
	rng      rng.Source
	resolver *effect.Resolver
	events   *eventlog.Recorder
	log      *zap.Logger
	tracer   trace.Tracer

	maxTurns     int
	cascadeLimit int

	turns   int
	status  Status
	winner  *entity.Player
	started bool
}

// New creates a game with every player on the first place.
func New(cfg Config) (*Game, error) {
	if cfg.Board == nil {
		return nil, ErrNilBoard
	}
	if len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}

	src := cfg.Source
	if src == nil {
		src = rng.New(cfg.Seed)
	}
	out := cfg.Events
	if out == nil {
		out = io.Discard
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}
	cascadeLimit := cfg.CascadeLimit
	if cascadeLimit <= 0 {
		cascadeLimit = DefaultCascadeLimit
	}

	id := ids.NewUUID()
	g := &Game{
		id:           id,
		seed:         cfg.Seed,
		board:        cfg.Board,
		roster:       entity.NewRoster(cfg.Players),
		rng:          src,
		events:       eventlog.NewRecorder(out, cfg.Clock),
		log:          logger.With(zap.String("game_id", id)),
		tracer:       tracer,
		maxTurns:     cfg.MaxTurns,
		cascadeLimit: cascadeLimit,
		status:       StatusInProgress,
	}
	g.resolver = effect.NewResolver(dice{g})

	g.log.Debug("game created",
		zap.Int64("seed", g.seed),
		zap.String("board", g.board.Name),
		zap.Int("places", g.board.Len()),
		zap.Strings("players", cfg.Players),
	)
	return g, nil
}

// Run plays the remaining turns and writes the summary.
func (g *Game) Run(ctx context.Context) (Result, error) {
	ctx, span := g.tracer.Start(ctx, "game.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int64("seed", g.seed),
		attribute.Int("players", len(g.roster.All())),
	)

	if g.status.Finished() {
		return g.Result(), ErrGameOver
	}

	for !g.status.Finished() {
		if g.maxTurns > 0 && g.turns >= g.maxTurns {
			err := fmt.Errorf("after %d turns: %w", g.turns, ErrTurnLimit)
			span.SetStatus(codes.Error, err.Error())
			return g.Result(), err
		}
		if _, err := g.Step(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return g.Result(), err
		}
	}

	g.summarize()
	if err := g.events.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return g.Result(), err
	}

	span.SetAttributes(
		attribute.String("status", g.status.String()),
		attribute.Int("turns", g.turns),
	)
	fields := []zap.Field{
		zap.Stringer("status", g.status),
		zap.Int("turns", g.turns),
		zap.Int("losers", len(g.roster.Lost())),
		zap.Int("events", g.events.Count()),
	}
	if src, ok := g.rng.(interface{ Position() int64 }); ok {
		fields = append(fields, zap.Int64("draws", src.Position()))
	}
	g.log.Info("game finished", fields...)
	return g.Result(), nil
}

// start writes the seed before the first turn.
func (g *Game) start() {
	if g.started {
		return
	}
	g.started = true
	g.emit(eventlog.NewSeed(g.seed))
}

// summarize writes the closing lines: outcome, total turns, losers in
// elimination order and the stats of every player ever, by ID.
func (g *Game) summarize() {
	if g.status == StatusWon {
		g.emit(eventlog.NewWinner(eventlog.Ref(g.winner)))
	} else {
		g.emit(eventlog.NewEveryoneLost())
	}
	g.emit(eventlog.NewTotalTurns(g.turns))

	lost := g.roster.Lost()
	losers := make([]eventlog.PlayerRef, len(lost))
	for i, p := range lost {
		losers[i] = eventlog.Ref(p)
	}
	g.emit(eventlog.NewLosers(losers))

	all := g.roster.All()
	stats := make([]eventlog.PlayerStats, len(all))
	for i, p := range all {
		stats[i] = eventlog.Stats(p)
	}
	g.emit(eventlog.NewStats(stats))
}

// emit writes an event. Write errors stick in the recorder and are
// reported at the end of the turn.
func (g *Game) emit(e eventlog.Event) {
	_ = g.events.Record(e)
}

// Result returns the current status.
func (g *Game) Result() Result {
	return Result{
		Status: g.status,
		Winner: g.winner,
		Turns:  g.turns,
	}
}

// ID returns the game's unique id.
func (g *Game) ID() string {
	return g.id
}

// Seed returns the seed written to the event stream.
func (g *Game) Seed() int64 {
	return g.seed
}

// Board returns the board being played.
func (g *Game) Board() *world.Board {
	return g.board
}

// Roster returns the players and turn order.
func (g *Game) Roster() *entity.Roster {
	return g.roster
}

// dice draws from the game's source and records every draw.
type dice struct {
	g *Game
}

func (d dice) Roll(p *entity.Player) int {
	roll := d.g.rng.Between(1, world.DieSides)
	d.g.emit(eventlog.NewRoll(eventlog.Ref(p), roll))
	return roll
}

func (d dice) Flip(p *entity.Player) bool {
	heads := d.g.rng.Coin()
	d.g.emit(eventlog.NewFlip(eventlog.Ref(p), heads))
	return heads
}

var _ effect.Dice = dice{}
