package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dogboard/internal/config"
	"github.com/samdwyer/dogboard/internal/eventlog"
)

func testConfig() config.Config {
	return config.Config{Board: "classic", LogLevel: "error"}
}

func runCommand(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := newCommand(cfg)
	cmd.Writer = &stdout
	err := cmd.Run(context.Background(), append([]string{"dogboard"}, args...))
	return stdout.String(), err
}

func TestRunWritesEventStream(t *testing.T) {
	out := filepath.Join(t.TempDir(), "game.log")

	_, err := runCommand(t, testConfig(), "--seed", "42", "--out", out, "--max-turns", "100000", "Rex", "Fido")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	events, err := eventlog.Parse(f)
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, eventlog.KindSeed, events[0].Kind)
	assert.Equal(t, int64(42), events[0].Seed)
	last := events[len(events)-1]
	assert.Equal(t, eventlog.KindStats, last.Kind)
	require.Len(t, last.Stats, 2)
	assert.Equal(t, "Rex", last.Stats[0].Name)
	assert.Equal(t, "Fido", last.Stats[1].Name)
}

func TestRunReplaysFromSeed(t *testing.T) {
	stream := func() string {
		out, err := runCommand(t, testConfig(), "-s", "7", "--board", "sprint", "a", "b", "c")
		require.NoError(t, err)
		return strings.Join(messages(t, out), "\n")
	}

	first := stream()
	assert.True(t, strings.HasPrefix(first, "seed: 7\n"))
	assert.Equal(t, first, stream())
}

func messages(t *testing.T, stream string) []string {
	t.Helper()
	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(stream), "\n") {
		_, msg, ok := strings.Cut(line, " ")
		require.True(t, ok)
		msgs = append(msgs, msg)
	}
	return msgs
}

func TestRunZeroSeedIsUsed(t *testing.T) {
	out, err := runCommand(t, testConfig(), "--seed", "0", "--board", "sprint", "a", "b")
	require.NoError(t, err)

	assert.Equal(t, "seed: 0", messages(t, out)[0])
}

func TestRunSeedFromConfig(t *testing.T) {
	seed := int64(5)
	cfg := testConfig()
	cfg.Seed = &seed

	out, err := runCommand(t, cfg, "--board", "sprint", "a")
	require.NoError(t, err)
	assert.Equal(t, "seed: 5", messages(t, out)[0])

	out, err = runCommand(t, cfg, "--seed", "9", "--board", "sprint", "a")
	require.NoError(t, err)
	assert.Equal(t, "seed: 9", messages(t, out)[0], "the flag wins over the environment")
}

func TestRunPlayersFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Players = []string{"Lassie"}

	out, err := runCommand(t, cfg, "--seed", "3", "--board", "sprint")

	require.NoError(t, err)
	assert.Contains(t, out, "Lassie (0)")
}

func TestRunWithoutPlayers(t *testing.T) {
	_, err := runCommand(t, testConfig(), "--seed", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "player")
}

func TestRunUnknownBoard(t *testing.T) {
	_, err := runCommand(t, testConfig(), "--board", "moon", "a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown board "moon"`)
}

func TestListBoards(t *testing.T) {
	out, err := runCommand(t, testConfig(), "--list-boards")

	require.NoError(t, err)
	assert.Contains(t, out, "classic\t49 places")
	assert.Contains(t, out, "sprint\t14 places")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := newLogger("chatty")
	assert.Error(t, err)

	logger, err := newLogger("DEBUG")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
