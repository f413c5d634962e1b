package main

import (
	"log"
	"os"
	"time"

	"github.com/balaramesht/chess-Game/internal/config"
	"github.com/balaramesht/chess-Game/pkg/game"
	"github.com/balaramesht/chess-Game/shell"
)

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags)

	var cfg, err = config.InitConfig()
	if err != nil {
		logger.Fatalln(err)
	}

	var search = game.SearchConfig{
		MaxDepth: cfg.Depth,
		MoveTime: time.Duration(cfg.MoveTimeMs) * time.Millisecond,
	}
	var session = game.NewSession(
		game.SideConfig{Human: cfg.WhiteHuman, Search: search},
		game.SideConfig{Human: cfg.BlackHuman, Search: search},
	)

	var console = shell.New(session, game.NewScheduler(), cfg, logger)
	console.Run()
}
