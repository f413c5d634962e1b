package shell

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/notnil/chess"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var chessSymbols = map[chess.Color][7]string{
	chess.White: {"", whiteKing, whiteQueen, whiteRook, whiteBishop, whiteKnight, whitePawn},
	chess.Black: {"", blackKing, blackQueen, blackRook, blackBishop, blackKnight, blackPawn},
}

type boardPainter struct {
	lightSq termenv.Color
	darkSq  termenv.Color
	markSq  termenv.Color
	whiteFg termenv.Color
	blackFg termenv.Color
}

func newBoardPainter() *boardPainter {
	var profile = termenv.ColorProfile()
	return &boardPainter{
		lightSq: profile.Color("#f0d9b5"),
		darkSq:  profile.Color("#b58863"),
		markSq:  profile.Color("#f6f669"),
		whiteFg: profile.Color("#f5f5f5"),
		blackFg: profile.Color("#1e1e1e"),
	}
}

// PrintPosition draws the board from White's point of view with the last
// applied move highlighted.
func (bp *boardPainter) PrintPosition(pos *chess.Position, lastMove *chess.Move) {
	var board = pos.Board()
	var sb strings.Builder
	for rank := chess.Rank8; ; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", int(rank)+1))
		for file := chess.FileA; file <= chess.FileH; file++ {
			var sq = chess.Square(int(file) + int(rank)*8)
			sb.WriteString(bp.cell(board.Piece(sq), sq, lastMove))
		}
		sb.WriteString("\n")
		if rank == chess.Rank1 {
			break
		}
	}
	sb.WriteString("  ")
	for file := 'a'; file <= 'h'; file++ {
		sb.WriteString(fmt.Sprintf("%c  ", file))
	}
	fmt.Println(sb.String())
}

func (bp *boardPainter) cell(piece chess.Piece, sq chess.Square, lastMove *chess.Move) string {
	var symbol = " "
	var fg = bp.blackFg
	if piece != chess.NoPiece {
		symbol = chessSymbols[piece.Color()][piece.Type()]
		if piece.Color() == chess.White {
			fg = bp.whiteFg
		}
	}
	var bg = bp.darkSq
	if (int(sq.File())+int(sq.Rank()))%2 == 1 {
		bg = bp.lightSq
	}
	if lastMove != nil && (sq == lastMove.S1() || sq == lastMove.S2()) {
		bg = bp.markSq
	}
	return termenv.String(" " + symbol + " ").Foreground(fg).Background(bg).String()
}
