package engine

import (
	"math"
	"time"

	"github.com/notnil/chess"
)

var (
	posInfinity = math.Inf(1)
	negInfinity = math.Inf(-1)
)

// alphaBeta is a plain minimax node with alpha-beta bounds. White maximizes,
// Black minimizes. Ties keep the move encountered first in capture-first
// order, so move ordering decides which of several equal moves is reported.
// Past the deadline the node degrades to the static evaluation, and the
// iteration that is underway finishes on heuristic values.
func (e *Engine) alphaBeta(pos *chess.Position, depth int, alpha, beta float64, deadline time.Time) (float64, *chess.Move) {
	if !time.Now().Before(deadline) || depth == 0 || pos.Status() != chess.NoMethod {
		return evaluatePosition(pos), nil
	}
	var moves = pos.ValidMoves()
	if len(moves) == 0 {
		return evaluatePosition(pos), nil
	}
	moves = orderMoves(moves)

	var bestMove *chess.Move
	if pos.Turn() == chess.White {
		var value = negInfinity
		for _, move := range moves {
			e.nodes++
			var score, _ = e.alphaBeta(pos.Update(move), depth-1, alpha, beta, deadline)
			if score > value {
				value = score
				bestMove = move
			}
			if !e.noPrune {
				alpha = math.Max(alpha, value)
				if alpha >= beta {
					break
				}
			}
		}
		return value, bestMove
	}
	var value = posInfinity
	for _, move := range moves {
		e.nodes++
		var score, _ = e.alphaBeta(pos.Update(move), depth-1, alpha, beta, deadline)
		if score < value {
			value = score
			bestMove = move
		}
		if !e.noPrune {
			beta = math.Min(beta, value)
			if alpha >= beta {
				break
			}
		}
	}
	return value, bestMove
}
