// Package eventlog writes and reads the game's event stream.
//
// The stream is line oriented. Each line is a local timestamp with
// millisecond precision, a space, and a message:
//
//	2024-03-01T12:00:00.123+01:00 die roll by Rex (0): 4
//
// Events are built with the New* constructors, written by a Recorder and
// read back by Parse.
package eventlog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samdwyer/dogboard/internal/entity"
)

// TimeLayout is the timestamp prefix of every line.
const TimeLayout = "2006-01-02T15:04:05.000-07:00"

// Kind identifies an event message.
type Kind int

const (
	KindSeed         Kind = iota // seed: <n>
	KindTurn                     // turn <n>
	KindRoll                     // die roll by <player>: <n>
	KindFlip                     // coin flip by <player>: True|False
	KindMove                     // <player> moved <step> to place <n>[, message: <text>]
	KindLost                     // <player> has lost
	KindWinner                   // winner: <player>
	KindEveryoneLost             // everyone lost
	KindTotalTurns               // total turns: <n>
	KindLosers                   // losers: <player>, <player>...
	KindStats                    // player stats: <json>
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindTurn:
		return "turn"
	case KindRoll:
		return "roll"
	case KindFlip:
		return "flip"
	case KindMove:
		return "move"
	case KindLost:
		return "lost"
	case KindWinner:
		return "winner"
	case KindEveryoneLost:
		return "everyone_lost"
	case KindTotalTurns:
		return "total_turns"
	case KindLosers:
		return "losers"
	case KindStats:
		return "stats"
	default:
		return "unknown"
	}
}

// PlayerRef names a player in a message.
type PlayerRef struct {
	ID   entity.PlayerID
	Name string
}

// Ref returns the reference for a player.
func Ref(p *entity.Player) PlayerRef {
	return PlayerRef{ID: p.ID, Name: p.Name}
}

// String returns the reference as "<name> (<id>)".
func (r PlayerRef) String() string {
	return fmt.Sprintf("%s (%d)", r.Name, r.ID)
}

// PlayerStats is one entry of the closing stats line.
type PlayerStats struct {
	ID           entity.PlayerID `json:"id"`
	Name         string          `json:"name"`
	CurrentPlace int             `json:"current_place"`
	TotalPlaces  int             `json:"total_places"`
}

// Stats returns the stats entry for a player.
func Stats(p *entity.Player) PlayerStats {
	return PlayerStats{
		ID:           p.ID,
		Name:         p.Name,
		CurrentPlace: p.CurrentPlace,
		TotalPlaces:  p.TotalPlaces,
	}
}

// Event is one line of the stream. Only the fields used by Kind are set.
type Event struct {
	Time time.Time
	Kind Kind

	Seed    int64 // KindSeed
	Turn    int   // KindTurn, KindTotalTurns
	Player  PlayerRef
	Roll    int    // KindRoll
	Flip    bool   // KindFlip
	Step    int    // KindMove
	Place   int    // KindMove
	Message string // KindMove, optional place annotation

	Losers []PlayerRef   // KindLosers, elimination order
	Stats  []PlayerStats // KindStats, ascending ID
}

// NewSeed records the seed that drives the game.
func NewSeed(seed int64) Event { return Event{Kind: KindSeed, Seed: seed} }

// NewTurn records the start of turn n, counting from 1.
func NewTurn(n int) Event { return Event{Kind: KindTurn, Turn: n} }

// NewRoll records a die roll.
func NewRoll(p PlayerRef, roll int) Event { return Event{Kind: KindRoll, Player: p, Roll: roll} }

// NewFlip records a coin flip.
func NewFlip(p PlayerRef, heads bool) Event { return Event{Kind: KindFlip, Player: p, Flip: heads} }

// NewMove records a move that ended on place, annotated with the place message.
func NewMove(p PlayerRef, step, place int, message string) Event {
	return Event{Kind: KindMove, Player: p, Step: step, Place: place, Message: message}
}

// NewLost records an elimination.
func NewLost(p PlayerRef) Event { return Event{Kind: KindLost, Player: p} }

// NewWinner records the winner.
func NewWinner(p PlayerRef) Event { return Event{Kind: KindWinner, Player: p} }

// NewEveryoneLost records a game that ended with no active players.
func NewEveryoneLost() Event { return Event{Kind: KindEveryoneLost} }

// NewTotalTurns records the number of turns played.
func NewTotalTurns(n int) Event { return Event{Kind: KindTotalTurns, Turn: n} }

// NewLosers lists the eliminated players in elimination order.
func NewLosers(losers []PlayerRef) Event { return Event{Kind: KindLosers, Losers: losers} }

// NewStats lists the stats of every player, by ascending ID.
func NewStats(stats []PlayerStats) Event { return Event{Kind: KindStats, Stats: stats} }

// Text returns the message part of the line, without timestamp.
func (e Event) Text() string {
	switch e.Kind {
	case KindSeed:
		return fmt.Sprintf("seed: %d", e.Seed)
	case KindTurn:
		return fmt.Sprintf("turn %d", e.Turn)
	case KindRoll:
		return fmt.Sprintf("die roll by %s: %d", e.Player, e.Roll)
	case KindFlip:
		return fmt.Sprintf("coin flip by %s: %s", e.Player, flipText(e.Flip))
	case KindMove:
		text := fmt.Sprintf("%s moved %d to place %d", e.Player, e.Step, e.Place)
		if e.Message != "" {
			text += ", message: " + e.Message
		}
		return text
	case KindLost:
		return fmt.Sprintf("%s has lost", e.Player)
	case KindWinner:
		return fmt.Sprintf("winner: %s", e.Player)
	case KindEveryoneLost:
		return "everyone lost"
	case KindTotalTurns:
		return fmt.Sprintf("total turns: %d", e.Turn)
	case KindLosers:
		names := make([]string, len(e.Losers))
		for i, l := range e.Losers {
			names[i] = l.String()
		}
		return "losers: " + strings.Join(names, ", ")
	case KindStats:
		stats := e.Stats
		if stats == nil {
			stats = []PlayerStats{}
		}
		return "player stats: " + statsJSON(stats)
	default:
		return ""
	}
}

// Line returns the full stream line, without the trailing newline.
func (e Event) Line() string {
	return e.Time.Format(TimeLayout) + " " + e.Text()
}

// statsJSON encodes stats compactly without HTML escaping, so names are
// written as given.
func statsJSON(stats []PlayerStats) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	// Plain structs always encode.
	_ = enc.Encode(stats)
	return strings.TrimSuffix(b.String(), "\n")
}

func flipText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
