// Package main is the entry point for dogboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samdwyer/dogboard/internal/config"
	"github.com/samdwyer/dogboard/internal/game"
	"github.com/samdwyer/dogboard/internal/gamedata"
	"github.com/samdwyer/dogboard/internal/rng"
	"github.com/samdwyer/dogboard/internal/telemetry"
	"github.com/samdwyer/dogboard/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := newCommand(cfg).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dogboard: %v\n", err)
		os.Exit(1)
	}
}

// newCommand builds the root command. Flag defaults come from cfg.
func newCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "dogboard",
		Usage:     "simulate the dog board game",
		ArgsUsage: "PLAYER [PLAYER...]",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "random seed; picked at random when unset",
			},
			&cli.StringFlag{
				Name:    "board",
				Aliases: []string{"b"},
				Usage:   "embedded board name or path to a board .json file",
				Value:   cfg.Board,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "event stream file; empty writes to stdout",
				Value:   cfg.EventLog,
			},
			&cli.IntFlag{
				Name:  "max-turns",
				Usage: "abort after this many turns; 0 means no limit",
				Value: cfg.MaxTurns,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "operational log level (debug, info, warn, error)",
				Value: cfg.LogLevel,
			},
			&cli.BoolFlag{
				Name:  "list-boards",
				Usage: "list the embedded boards and exit",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			registry, err := gamedata.LoadBoardRegistry()
			if err != nil {
				return err
			}
			if cmd.Bool("list-boards") {
				return listBoards(cmd.Root().Writer, registry)
			}

			players := cmd.Args().Slice()
			if len(players) == 0 {
				players = cfg.Players
			}
			if len(players) == 0 {
				return errors.New("at least one player name is required")
			}

			logger, err := newLogger(cmd.String("log-level"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cfg.Telemetry.Enabled {
				shutdown := setupTelemetry(ctx, cfg.Telemetry, logger)
				defer shutdown()
			}

			seed := cfg.Seed
			if cmd.IsSet("seed") {
				s := cmd.Int64("seed")
				seed = &s
			}

			return run(ctx, runOptions{
				seed:     seed,
				board:    cmd.String("board"),
				out:      cmd.String("out"),
				maxTurns: cmd.Int("max-turns"),
				players:  players,
				stdout:   cmd.Root().Writer,
				registry: registry,
				logger:   logger,
			})
		},
	}
}

type runOptions struct {
	seed     *int64
	board    string
	out      string
	maxTurns int
	players  []string
	stdout   io.Writer
	registry *gamedata.BoardRegistry
	logger   *zap.Logger
}

// run plays one game and writes its event stream.
func run(ctx context.Context, opts runOptions) error {
	def, err := opts.registry.Resolve(opts.board)
	if err != nil {
		return err
	}
	board, err := world.NewBoard(def)
	if err != nil {
		return fmt.Errorf("board %s: %w", opts.board, err)
	}

	var seed int64
	if opts.seed != nil {
		seed = *opts.seed
	} else if seed, err = rng.NewSeed(); err != nil {
		return err
	}

	events := opts.stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create event log: %w", err)
		}
		defer f.Close()
		events = f
	}

	g, err := game.New(game.Config{
		Seed:     seed,
		Players:  opts.players,
		Board:    board,
		MaxTurns: opts.maxTurns,
		Events:   events,
		Logger:   opts.logger,
	})
	if err != nil {
		return err
	}

	res, err := g.Run(ctx)
	if err != nil {
		return fmt.Errorf("game %s: %w", g.ID(), err)
	}

	fields := []zap.Field{
		zap.String("game_id", g.ID()),
		zap.Int64("seed", seed),
		zap.Stringer("status", res.Status),
		zap.Int("turns", res.Turns),
	}
	if res.Winner != nil {
		fields = append(fields, zap.Stringer("winner", res.Winner))
	}
	opts.logger.Debug("run complete", fields...)
	return nil
}

func listBoards(w io.Writer, registry *gamedata.BoardRegistry) error {
	for _, name := range registry.Names() {
		board := registry.GetByName(name)
		line := fmt.Sprintf("%s\t%d places", name, len(board.Places))
		if board.Description != "" {
			line += "\t" + board.Description
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// newLogger builds a production logger writing to stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// setupTelemetry starts trace export. Failures are logged and the game runs
// without traces.
func setupTelemetry(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) func() {
	if err := telemetry.ConfigureHoneycomb(cfg.APIKey, cfg.Dataset); err != nil {
		logger.Warn("honeycomb configuration failed", zap.Error(err))
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", zap.Error(err))
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}
}
