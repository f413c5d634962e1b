package arena

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/balaramesht/chess-Game/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    int
	comment  string
	result   int
}

// Arena plays engine A against engine B over a fixed opening set, each
// opening once per color, with games fanned out across workers.
type Arena struct {
	Concurrency int
	OptionsA    engine.Options
	OptionsB    engine.Options
	Logger      zerolog.Logger
	openings    []string
}

func (a *Arena) Run(ctx context.Context) error {
	var g, gctx = errgroup.WithContext(ctx)

	if len(a.openings) == 0 {
		a.openings = getOpenings()
	}

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return loadGames(gctx, a.openings, gameInfos)
	})

	g.Go(func() error {
		return showResults(gctx, a.Logger, gameResults)
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < a.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(gctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

func loadGames(ctx context.Context, openings []string, gameInfos chan<- gameInfo) error {
	var gameNumber = 0
	for _, opening := range openings {
		for _, aIsWhite := range []bool{true, false} {
			gameNumber++
			var info = gameInfo{
				opening:        opening,
				engineAIsWhite: aIsWhite,
				gameNumber:     gameNumber,
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
	}
	return nil
}

func (a *Arena) playGames(ctx context.Context,
	gameInfos <-chan gameInfo, gameResults chan<- gameResult) error {
	for info := range gameInfos {
		var res, err = a.playGame(ctx, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
