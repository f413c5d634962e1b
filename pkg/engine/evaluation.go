package engine

import "github.com/notnil/chess"

// MateScore is the absolute score of a checkmated position; the side to
// move is the side that has been mated.
const MateScore = 100000

const mobilityWeight = 0.1

var pieceValues = [...]float64{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// Evaluate scores a finished or ongoing game from White's perspective.
// Checkmate is ±MateScore; stalemate, insufficient material, the 75-move
// rule and fivefold repetition are exactly 0. Draw-by-history terminals
// only exist at the game level, which is why this entry point takes the
// game rather than a bare position.
func Evaluate(game *chess.Game) float64 {
	switch game.Method() {
	case chess.Checkmate:
		return mateValue(game.Position().Turn())
	case chess.Stalemate,
		chess.InsufficientMaterial,
		chess.SeventyFiveMoveRule,
		chess.FivefoldRepetition:
		return 0
	}
	return evaluatePosition(game.Position())
}

// evaluatePosition is the static evaluator used at search leaves: material
// plus a small mobility term, both from White's perspective. The mobility
// term follows the side to move, so the function is deliberately asymmetric
// around whose turn it is, not merely material-symmetric. Dead draws by
// insufficient material score exactly 0, so the search never trades into
// a position it cannot win.
func evaluatePosition(pos *chess.Position) float64 {
	switch pos.Status() {
	case chess.Checkmate:
		return mateValue(pos.Turn())
	case chess.Stalemate:
		return 0
	}
	var board = pos.Board()
	if insufficientMaterial(board) {
		return 0
	}
	var material float64
	for _, piece := range board.SquareMap() {
		if piece.Color() == chess.White {
			material += pieceValues[piece.Type()]
		} else {
			material -= pieceValues[piece.Type()]
		}
	}
	var mobility = mobilityWeight * float64(len(pos.ValidMoves()))
	if pos.Turn() == chess.Black {
		mobility = -mobility
	}
	return material + mobility
}

// insufficientMaterial reports whether neither side retains mating
// material: bare kings, kings with a single minor piece, or kings with
// bishops that all stand on squares of one color. Mirrors the rule the
// game layer applies for its automatic draw.
func insufficientMaterial(board *chess.Board) bool {
	var knights int
	var darkBishops, lightBishops int
	for sq, piece := range board.SquareMap() {
		switch piece.Type() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			knights++
		case chess.Bishop:
			if (int(sq.File())+int(sq.Rank()))%2 == 0 {
				darkBishops++
			} else {
				lightBishops++
			}
		}
	}
	if knights+darkBishops+lightBishops <= 1 {
		return true
	}
	if knights > 0 {
		return false
	}
	return darkBishops == 0 || lightBishops == 0
}

func mateValue(sideToMove chess.Color) float64 {
	// The mover has no moves and is in check, so the mover lost.
	if sideToMove == chess.White {
		return -MateScore
	}
	return MateScore
}
