package engine

import "github.com/notnil/chess"

// orderMoves partitions captures before quiet moves, keeping enumeration
// order inside each partition. Ordering only affects cutoff rate and which
// of several equal-scoring moves the search reports, never the score.
func orderMoves(moves []*chess.Move) []*chess.Move {
	var ordered = make([]*chess.Move, 0, len(moves))
	for _, move := range moves {
		if isCapture(move) {
			ordered = append(ordered, move)
		}
	}
	for _, move := range moves {
		if !isCapture(move) {
			ordered = append(ordered, move)
		}
	}
	return ordered
}

func isCapture(move *chess.Move) bool {
	return move.HasTag(chess.Capture) || move.HasTag(chess.EnPassant)
}
