package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/balaramesht/chess-Game/internal/arena"
	"github.com/balaramesht/chess-Game/pkg/engine"
)

func main() {
	var (
		concurrency = flag.Int("concurrency", 4, "games played in parallel")
		depthA      = flag.Int("deptha", 3, "search depth of engine A")
		depthB      = flag.Int("depthb", 2, "search depth of engine B")
		moveTime    = flag.Duration("movetime", 500*time.Millisecond, "time budget per move")
	)
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	var a = &arena.Arena{
		Concurrency: *concurrency,
		OptionsA:    engine.Options{MaxDepth: *depthA, MoveTime: *moveTime},
		OptionsB:    engine.Options{MaxDepth: *depthB, MoveTime: *moveTime},
		Logger:      logger,
	}
	if err := a.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("arena failed")
	}
}
