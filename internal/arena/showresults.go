package arena

import (
	"context"
	"math"

	"github.com/rs/zerolog"
)

func showResults(ctx context.Context, logger zerolog.Logger,
	gameResults <-chan gameResult) error {
	var wins, losses, draws int
	for result := range gameResults {
		if result.result == gameResultDraw {
			draws++
		} else if result.result == gameResultWhiteWins && result.gameInfo.engineAIsWhite ||
			result.result == gameResultBlackWins && !result.gameInfo.engineAIsWhite {
			wins++
		} else {
			losses++
		}
		var stat = computeStat(wins, losses, draws)
		logger.Info().
			Int("game", result.gameInfo.gameNumber).
			Str("result", gameResultString(result.result)).
			Str("method", result.comment).
			Int("plies", result.moves).
			Msg("game finished")
		logger.Info().
			Int("wins", wins).
			Int("losses", losses).
			Int("draws", draws).
			Float64("score", stat.winningFraction).
			Float64("elo", stat.eloDifference).
			Msg("standings")
	}
	return nil
}

type gameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) gameStatistics {
	var games = wins + losses + draws
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return gameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}

func gameResultString(result int) string {
	switch result {
	case gameResultWhiteWins:
		return "1-0"
	case gameResultBlackWins:
		return "0-1"
	}
	return "1/2-1/2"
}
