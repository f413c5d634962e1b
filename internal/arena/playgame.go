package arena

import (
	"context"
	"fmt"

	"github.com/notnil/chess"

	"github.com/balaramesht/chess-Game/pkg/engine"
)

// maxPlies caps runaway games; shallow engines can shuffle forever before
// the 75-move rule fires.
const maxPlies = 300

func (a *Arena) playGame(ctx context.Context, info gameInfo) (gameResult, error) {
	var fenOption, err = chess.FEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}
	var g = chess.NewGame(fenOption)

	for g.Outcome() == chess.NoOutcome {
		if len(g.Moves()) >= maxPlies {
			return gameResult{gameInfo: info, moves: len(g.Moves()),
				comment: "move cap", result: gameResultDraw}, nil
		}
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}

		var options = a.OptionsB
		if (g.Position().Turn() == chess.White) == info.engineAIsWhite {
			options = a.OptionsA
		}
		var eng = engine.NewEngine(options)

		snapshot, err := chess.FEN(g.Position().String())
		if err != nil {
			return gameResult{}, err
		}
		var searchInfo = eng.ChooseMove(ctx, chess.NewGame(snapshot).Position())
		if searchInfo.Move == nil {
			return gameResult{}, fmt.Errorf("no move in non-terminal game %v", info.gameNumber)
		}
		if !applyByCoordinates(g, searchInfo.Move) {
			return gameResult{}, fmt.Errorf("illegal engine move %v in game %v",
				searchInfo.Move, info.gameNumber)
		}
	}

	return gameResult{
		gameInfo: info,
		moves:    len(g.Moves()),
		comment:  fmt.Sprintf("%v", g.Method()),
		result:   resultOf(g.Outcome()),
	}, nil
}

// applyByCoordinates matches the proposed move against the game's own
// legal-move set, since the proposal was enumerated on a snapshot position.
func applyByCoordinates(g *chess.Game, move *chess.Move) bool {
	for _, valid := range g.ValidMoves() {
		if valid.S1() == move.S1() && valid.S2() == move.S2() && valid.Promo() == move.Promo() {
			return g.Move(valid) == nil
		}
	}
	return false
}

func resultOf(outcome chess.Outcome) int {
	switch outcome {
	case chess.WhiteWon:
		return gameResultWhiteWins
	case chess.BlackWon:
		return gameResultBlackWins
	}
	return gameResultDraw
}
