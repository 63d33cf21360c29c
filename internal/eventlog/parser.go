package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/dogboard/internal/entity"
)

// ParseError is a custom error type for stream parsing errors
type ParseError string

// Error implements the error interface
func (e ParseError) Error() string {
	return string(e)
}

// ErrMalformedLine is returned for a line that is not part of the vocabulary.
const ErrMalformedLine ParseError = "malformed event line"

// maxLineSize bounds a single line; the stats line grows with the player count.
const maxLineSize = 1 << 20

const ref = `(.+?) \((\d+)\)`

var (
	seedRe       = regexp.MustCompile(`^seed: (-?\d+)$`)
	turnRe       = regexp.MustCompile(`^turn (\d+)$`)
	rollRe       = regexp.MustCompile(`^die roll by ` + ref + `: (\d+)$`)
	flipRe       = regexp.MustCompile(`^coin flip by ` + ref + `: (True|False)$`)
	moveRe       = regexp.MustCompile(`^` + ref + ` moved (-?\d+) to place (\d+)(?:, message: (.*))?$`)
	lostRe       = regexp.MustCompile(`^` + ref + ` has lost$`)
	winnerRe     = regexp.MustCompile(`^winner: ` + ref + `$`)
	totalTurnsRe = regexp.MustCompile(`^total turns: (\d+)$`)
	loserRe      = regexp.MustCompile(ref + `(?:, |$)`)
)

const (
	everyoneLostText = "everyone lost"
	losersPrefix     = "losers: "
	statsPrefix      = "player stats: "
)

// Parse reads every line of r. Blank lines are skipped.
func Parse(r io.Reader) ([]Event, error) {
	var events []Event

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return events, fmt.Errorf("line %d: %w", n, err)
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return events, fmt.Errorf("read event stream: %w", err)
	}
	return events, nil
}

// ParseLine parses one line, timestamp included.
func ParseLine(line string) (Event, error) {
	stamp, text, ok := strings.Cut(line, " ")
	if !ok {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	ts, err := time.Parse(TimeLayout, stamp)
	if err != nil {
		return Event{}, fmt.Errorf("%w: timestamp %q: %v", ErrMalformedLine, stamp, err)
	}

	e, err := parseText(text)
	if err != nil {
		return Event{}, err
	}
	e.Time = ts
	return e, nil
}

func parseText(text string) (Event, error) {
	switch {
	case text == everyoneLostText:
		return NewEveryoneLost(), nil

	case strings.HasPrefix(text, statsPrefix):
		var stats []PlayerStats
		if err := json.Unmarshal([]byte(strings.TrimPrefix(text, statsPrefix)), &stats); err != nil {
			return Event{}, fmt.Errorf("%w: player stats: %v", ErrMalformedLine, err)
		}
		return NewStats(stats), nil

	case strings.HasPrefix(text, losersPrefix):
		return parseLosers(strings.TrimPrefix(text, losersPrefix))
	}

	if m := seedRe.FindStringSubmatch(text); m != nil {
		seed, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Event{}, fmt.Errorf("%w: seed: %v", ErrMalformedLine, err)
		}
		return NewSeed(seed), nil
	}
	if m := turnRe.FindStringSubmatch(text); m != nil {
		return NewTurn(atoi(m[1])), nil
	}
	if m := rollRe.FindStringSubmatch(text); m != nil {
		return NewRoll(playerRef(m[1], m[2]), atoi(m[3])), nil
	}
	if m := flipRe.FindStringSubmatch(text); m != nil {
		return NewFlip(playerRef(m[1], m[2]), m[3] == "True"), nil
	}
	if m := moveRe.FindStringSubmatch(text); m != nil {
		return NewMove(playerRef(m[1], m[2]), atoi(m[3]), atoi(m[4]), m[5]), nil
	}
	if m := lostRe.FindStringSubmatch(text); m != nil {
		return NewLost(playerRef(m[1], m[2])), nil
	}
	if m := winnerRe.FindStringSubmatch(text); m != nil {
		return NewWinner(playerRef(m[1], m[2])), nil
	}
	if m := totalTurnsRe.FindStringSubmatch(text); m != nil {
		return NewTotalTurns(atoi(m[1])), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrMalformedLine, text)
}

func parseLosers(list string) (Event, error) {
	if list == "" {
		return NewLosers(nil), nil
	}

	var losers []PlayerRef
	consumed := 0
	for _, m := range loserRe.FindAllStringSubmatchIndex(list, -1) {
		if m[0] != consumed {
			break
		}
		losers = append(losers, playerRef(list[m[2]:m[3]], list[m[4]:m[5]]))
		consumed = m[1]
	}
	if consumed != len(list) {
		return Event{}, fmt.Errorf("%w: losers %q", ErrMalformedLine, list)
	}
	return NewLosers(losers), nil
}

func playerRef(name, id string) PlayerRef {
	return PlayerRef{ID: entity.PlayerID(atoi(id)), Name: name}
}

// atoi converts digits already matched by a pattern.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
