package game

import (
	"io"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/dogboard/internal/common/clock"
	"github.com/samdwyer/dogboard/internal/common/uuid"
	"github.com/samdwyer/dogboard/internal/rng"
	"github.com/samdwyer/dogboard/internal/world"
)

// DefaultCascadeLimit bounds the rounds of landing effects in a single turn.
const DefaultCascadeLimit = 1000

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. It is written first to the event
	// stream; the same seed, players and board replay the same game.
	Seed int64

	// Players are the names in turn order. IDs are assigned from 0.
	Players []string

	// Board is the track to play on.
	Board *world.Board

	// MaxTurns stops Run with ErrTurnLimit. Zero means no limit.
	MaxTurns int

	// CascadeLimit overrides DefaultCascadeLimit when positive.
	CascadeLimit int

	// Optional dependencies

	Source rng.Source   // Defaults to rng.New(Seed)
	Events io.Writer    // Event stream, defaults to io.Discard
	Clock  clock.Clock  // Event timestamps, defaults to the system clock
	IDs    uuid.UUID    // Game id generator
	Logger *zap.Logger  // Operational log, defaults to a no-op logger
	Tracer trace.Tracer // Defaults to the global "game" tracer
}
