package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		step        int
		wantApplied int
		wantPlace   int
	}{
		{"forward", 0, 4, 4, 4},
		{"backward", 10, -3, -3, 7},
		{"zero", 5, 0, 0, 5},
		{"clamp at last place", 45, 6, 3, 48},
		{"already at last place", 48, 2, 0, 48},
		{"clamp at start", 3, -20, -3, 0},
		{"already at start", 0, -2, 0, 0},
		{"exact last place", 42, 6, 6, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, "rex")
			p.CurrentPlace = tt.start
			p.TotalPlaces = 100

			applied := p.Move(tt.step, 48)

			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantPlace, p.CurrentPlace)
			assert.Equal(t, 100+abs(tt.wantApplied), p.TotalPlaces)
		})
	}
}

func TestPlayerMoveStaysOnBoard(t *testing.T) {
	const last = 49
	p := NewPlayer(0, "fido")
	total := 0

	for step := -60; step <= 60; step += 7 {
		before := p.TotalPlaces
		applied := p.Move(step, last)

		require.GreaterOrEqual(t, p.CurrentPlace, 0)
		require.LessOrEqual(t, p.CurrentPlace, last)
		require.Equal(t, before+abs(applied), p.TotalPlaces)
		total += abs(applied)
	}

	assert.Equal(t, total, p.TotalPlaces)
}

func TestPlayerSkipTurns(t *testing.T) {
	p := NewPlayer(1, "spot")
	p.SkipTurns(1)
	p.SkipTurns(2)
	p.SkipTurns(-4)

	assert.Equal(t, 3, p.TurnsToSkip)
}

func TestPlayerString(t *testing.T) {
	assert.Equal(t, "Lassie (3)", NewPlayer(3, "Lassie").String())
}

func TestNewRoster(t *testing.T) {
	r := NewRoster([]string{"a", "b", "c"})

	require.Equal(t, 3, r.Len())
	for i, p := range r.All() {
		assert.Equal(t, PlayerID(i), p.ID)
		assert.Zero(t, p.CurrentPlace)
	}
	assert.Equal(t, "a", r.Current().Name)
	assert.Empty(t, r.Lost())
}

func TestRosterAdvanceWraps(t *testing.T) {
	r := NewRoster([]string{"a", "b", "c"})

	var order []string
	for i := 0; i < 5; i++ {
		order = append(order, r.Current().Name)
		r.Advance()
	}

	assert.Equal(t, []string{"a", "b", "c", "a", "b"}, order)
}

func TestRosterRemove(t *testing.T) {
	tests := []struct {
		name        string
		offset      int
		remove      PlayerID
		wantActive  []string
		wantCurrent string // current right after removal
		wantNext    string // current after the end-of-turn advance
	}{
		{"current in the middle", 1, 1, []string{"a", "c"}, "a", "c"},
		{"current at the start", 0, 0, []string{"b", "c"}, "c", "b"},
		{"current at the end", 2, 2, []string{"a", "b"}, "b", "a"},
		{"before current", 2, 0, []string{"b", "c"}, "c", "b"},
		{"after current", 0, 2, []string{"a", "b"}, "a", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRoster([]string{"a", "b", "c"})
			for i := 0; i < tt.offset; i++ {
				r.Advance()
			}

			require.True(t, r.Remove(tt.remove))

			var names []string
			for _, p := range r.Active() {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantActive, names)
			assert.Equal(t, tt.wantCurrent, r.Current().Name)
			assert.Less(t, r.Offset(), r.Len())

			r.Advance()
			assert.Equal(t, tt.wantNext, r.Current().Name)
		})
	}
}

func TestRosterRemoveKeepsHistory(t *testing.T) {
	r := NewRoster([]string{"a", "b"})

	require.True(t, r.Remove(1))
	assert.False(t, r.Remove(1), "a player can only be removed once")
	assert.False(t, r.IsActive(1))
	assert.True(t, r.IsActive(0))

	assert.Len(t, r.All(), 2)
	assert.Equal(t, "b", r.Get(1).Name)
	require.Len(t, r.Lost(), 1)
	assert.Equal(t, PlayerID(1), r.Lost()[0].ID)
}

func TestRosterRemoveLastPlayer(t *testing.T) {
	r := NewRoster([]string{"solo"})

	require.True(t, r.Remove(0))

	assert.True(t, r.Empty())
	assert.Nil(t, r.Current())
	r.Advance() // must not divide by zero
	assert.Equal(t, 0, r.Offset())
}

func TestRosterGetOutOfRange(t *testing.T) {
	r := NewRoster([]string{"a"})
	assert.Nil(t, r.Get(-1))
	assert.Nil(t, r.Get(1))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
