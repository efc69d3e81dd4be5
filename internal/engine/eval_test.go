package engine

import (
	"testing"

	"github.com/eddiemcnally/dolphin-sub001/internal/board"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	pos := board.StartPosition()

	white := Evaluate(pos.Board(), board.White)
	black := Evaluate(pos.Board(), board.Black)

	if white != 0 {
		t.Errorf("start position evaluates to %d for white, want 0", white)
	}
	if white != -black {
		t.Errorf("negamax symmetry broken: %d vs %d", white, black)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White has an extra rook.
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	score := Evaluate(pos.Board(), board.White)
	if score < board.RookValue-100 || score > board.RookValue+100 {
		t.Errorf("score %d should be roughly a rook for white", score)
	}
	if Evaluate(pos.Board(), board.Black) != -score {
		t.Error("the same board must negate for the other side")
	}
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	// The same structure mirrored for both colours must cancel out.
	white, err := board.ParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	black, err := board.ParseFEN("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if Evaluate(white.Board(), board.White) != Evaluate(black.Board(), board.Black) {
		t.Error("mirror-indexed piece-square values must give both sides the same score")
	}
}

func TestEvaluatePieceSquareBonus(t *testing.T) {
	// A knight in the centre outranks a knight in the corner.
	centre, _ := board.ParseFEN("4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	corner, _ := board.ParseFEN("4k3/8/8/8/8/8/8/N3K3 w - - 0 1")

	if Evaluate(centre.Board(), board.White) <= Evaluate(corner.Board(), board.White) {
		t.Error("a centralised knight must evaluate above a cornered one")
	}
}
