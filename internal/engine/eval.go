// Package engine implements evaluation, the transposition table and
// the iterative-deepening alpha-beta search.
package engine

import (
	"github.com/eddiemcnally/dolphin-sub001/internal/board"
)

// Piece-square tables, values from
// https://www.chessprogramming.org/Simplified_Evaluation_Function.
// Tables are written visually with rank 8 in the first row; a white
// piece on square sq indexes entry sq.Mirror(), a black piece indexes
// entry sq. Material lives in the board's running totals and is never
// folded into these tables.

var pawnSquareValue = [board.NumSquares]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightSquareValue = [board.NumSquares]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopSquareValue = [board.NumSquares]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookSquareValue = [board.NumSquares]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenSquareValue = [board.NumSquares]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingSquareValue = [board.NumSquares]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// pieceSquareValue maps a PieceType to its table.
var pieceSquareValue = [6]*[board.NumSquares]int{
	&pawnSquareValue,
	&knightSquareValue,
	&bishopSquareValue,
	&rookSquareValue,
	&queenSquareValue,
	&kingSquareValue,
}

// Evaluate scores the board in centipawns from the perspective of the
// given side to move: material difference plus piece-square bonuses.
func Evaluate(b *board.Board, sideToMove board.Color) int {
	score := b.Material(board.White) - b.Material(board.Black)

	for pt := board.Pawn; pt <= board.King; pt++ {
		table := pieceSquareValue[pt]

		white := b.PieceBB(board.NewPiece(pt, board.White))
		for white != 0 {
			score += table[white.PopLSB().Mirror()]
		}

		black := b.PieceBB(board.NewPiece(pt, board.Black))
		for black != 0 {
			score -= table[black.PopLSB()]
		}
	}

	if sideToMove == board.Black {
		return -score
	}
	return score
}
