package eventlog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samdwyer/dogboard/internal/common/clock/mocks"
)

var (
	rex   = PlayerRef{ID: 0, Name: "Rex"}
	fido  = PlayerRef{ID: 1, Name: "Fido"}
	fixed = time.Date(2024, 3, 1, 12, 0, 0, 123_000_000, time.FixedZone("CET", 3600))
)

func TestEventText(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewSeed(-42), "seed: -42"},
		{NewTurn(7), "turn 7"},
		{NewRoll(rex, 4), "die roll by Rex (0): 4"},
		{NewFlip(fido, true), "coin flip by Fido (1): True"},
		{NewFlip(fido, false), "coin flip by Fido (1): False"},
		{NewMove(rex, 4, 4, "Go back 2 spaces"), "Rex (0) moved 4 to place 4, message: Go back 2 spaces"},
		{NewMove(rex, -2, 2, ""), "Rex (0) moved -2 to place 2"},
		{NewMove(rex, 0, 48, ""), "Rex (0) moved 0 to place 48"},
		{NewLost(fido), "Fido (1) has lost"},
		{NewWinner(rex), "winner: Rex (0)"},
		{NewEveryoneLost(), "everyone lost"},
		{NewTotalTurns(93), "total turns: 93"},
		{NewLosers([]PlayerRef{fido, rex}), "losers: Fido (1), Rex (0)"},
		{NewLosers(nil), "losers: "},
		{NewStats(nil), "player stats: []"},
		{
			NewStats([]PlayerStats{{ID: 0, Name: "Rex", CurrentPlace: 48, TotalPlaces: 71}}),
			`player stats: [{"id":0,"name":"Rex","current_place":48,"total_places":71}]`,
		},
		{
			NewStats([]PlayerStats{{ID: 3, Name: "<Zoë&>", CurrentPlace: 1, TotalPlaces: 1}}),
			`player stats: [{"id":3,"name":"<Zoë&>","current_place":1,"total_places":1}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.event.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Text())
		})
	}
}

func TestEventLine(t *testing.T) {
	e := NewTurn(1)
	e.Time = fixed
	assert.Equal(t, "2024-03-01T12:00:00.123+01:00 turn 1", e.Line())
}

func TestRecorderUsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(fixed).Times(2)

	var buf bytes.Buffer
	rec := NewRecorder(&buf, clk)

	require.NoError(t, rec.Record(NewSeed(5)))
	require.NoError(t, rec.Record(NewRoll(rex, 3)))

	assert.Equal(t,
		"2024-03-01T12:00:00.123+01:00 seed: 5\n"+
			"2024-03-01T12:00:00.123+01:00 die roll by Rex (0): 3\n",
		buf.String())
	assert.Equal(t, 2, rec.Count())
	assert.NoError(t, rec.Err())
}

func TestRecorderKeepsEventTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl) // no calls expected

	var buf bytes.Buffer
	e := NewTurn(2)
	e.Time = fixed
	require.NoError(t, NewRecorder(&buf, clk).Record(e))

	assert.Equal(t, "2024-03-01T12:00:00.123+01:00 turn 2\n", buf.String())
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestRecorderErrorIsSticky(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(fixed).AnyTimes()

	w := &failingWriter{}
	rec := NewRecorder(w, clk)

	err := rec.Record(NewTurn(1))
	require.Error(t, err)
	assert.Equal(t, err, rec.Record(NewTurn(2)))
	assert.Equal(t, err, rec.Err())
	assert.Equal(t, 1, w.writes, "no writes after the first failure")
	assert.Zero(t, rec.Count())
}

func TestRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(fixed).AnyTimes()

	events := []Event{
		NewSeed(8675309),
		NewTurn(1),
		NewRoll(rex, 4),
		NewMove(rex, 4, 4, "Go back 2 spaces"),
		NewMove(rex, -2, 2, "pretty good"),
		NewFlip(fido, true),
		NewMove(PlayerRef{ID: 2, Name: "Mr (Bones)"}, 1, 16, "If anyone rolls a 3, everyone goes back three spaces"),
		NewLost(fido),
		NewWinner(rex),
		NewTotalTurns(1),
		NewLosers([]PlayerRef{fido}),
		NewStats([]PlayerStats{
			{ID: 0, Name: "Rex", CurrentPlace: 2, TotalPlaces: 6},
			{ID: 1, Name: "Fido", CurrentPlace: 0, TotalPlaces: 0},
			{ID: 2, Name: "<Zoë&>", CurrentPlace: 5, TotalPlaces: 9},
		}),
		NewEveryoneLost(),
		NewLosers(nil),
	}

	var buf bytes.Buffer
	rec := NewRecorder(&buf, clk)
	for _, e := range events {
		require.NoError(t, rec.Record(e))
	}

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, len(events))

	for i, got := range parsed {
		want := events[i]
		assert.True(t, fixed.Equal(got.Time), "event %d time", i)
		got.Time = time.Time{}
		if want.Kind == KindLosers && len(want.Losers) == 0 {
			assert.Empty(t, got.Losers)
			continue
		}
		assert.Equal(t, want, got, "event %d", i)
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	stream := "2024-03-01T12:00:00.123+01:00 turn 1\n\n2024-03-01T12:00:00.124+01:00 turn 2\r\n"

	events, err := Parse(strings.NewReader(stream))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 2, events[1].Turn)
}

func TestParseLineErrors(t *testing.T) {
	tests := []string{
		"",
		"no-timestamp",
		"yesterday turn 1",
		"2024-03-01T12:00:00.123+01:00 something else entirely",
		"2024-03-01T12:00:00.123+01:00 coin flip by Rex (0): maybe",
		"2024-03-01T12:00:00.123+01:00 player stats: {not json",
		"2024-03-01T12:00:00.123+01:00 losers: Rex, Fido",
	}

	for _, line := range tests {
		_, err := ParseLine(line)
		assert.ErrorIs(t, err, ErrMalformedLine, "line %q", line)
	}
}

func TestParseReportsLineNumber(t *testing.T) {
	stream := "2024-03-01T12:00:00.123+01:00 turn 1\n2024-03-01T12:00:00.123+01:00 bogus\n"

	events, err := Parse(strings.NewReader(stream))

	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
	assert.Len(t, events, 1)
}
