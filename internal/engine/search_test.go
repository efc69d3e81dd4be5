package engine

import (
	"testing"

	"github.com/eddiemcnally/dolphin-sub001/internal/board"
)

func TestSearchFindsMateInTwo(t *testing.T) {
	// 1.Kb6 Kb8 (forced) 2.Qg8#.
	pos, err := board.ParseFEN("k7/8/8/1K6/6Q1/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := NewSearch(1 << 16)
	result := s.Search(pos, 4)

	if result.Move == board.NoMove {
		t.Fatal("search returned no move")
	}
	// Mate in 2: the score is ply-adjusted, so it lands within
	// ScoreMate-4 .. ScoreMate.
	if result.Score < ScoreMate-4 || result.Score > ScoreMate {
		t.Errorf("score = %d, want a mate-in-2 score near %d", result.Score, ScoreMate)
	}
}

func TestSearchMateScorePrefersShorterMate(t *testing.T) {
	// Back-rank mate in one: Ra8#.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := NewSearch(1 << 16)
	result := s.Search(pos, 3)

	if got, want := result.Move.String(), "a1a8"; got != want {
		t.Errorf("best move = %s, want %s", got, want)
	}
	if result.Score != ScoreMate-1 {
		t.Errorf("mate in 1 scores ScoreMate-1, got %d", result.Score)
	}
}

func TestSearchTerminalPositions(t *testing.T) {
	t.Run("checkmate", func(t *testing.T) {
		pos, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
		if err != nil {
			t.Fatal(err)
		}
		s := NewSearch(1 << 10)
		result := s.Search(pos, 2)
		if result.Move != board.NoMove {
			t.Error("mated side has no move to return")
		}
		if result.Score != -ScoreMate {
			t.Errorf("being mated at the root scores -ScoreMate, got %d", result.Score)
		}
	})

	t.Run("stalemate", func(t *testing.T) {
		pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
		if err != nil {
			t.Fatal(err)
		}
		s := NewSearch(1 << 10)
		result := s.Search(pos, 2)
		if result.Score != 0 {
			t.Errorf("stalemate scores 0, got %d", result.Score)
		}
	})
}

// plainNegamax is an unpruned reference: same leaf handling, no
// windows, no transposition table.
func plainNegamax(s *Search, pos *board.Position, depth, ply int) int {
	if depth == 0 {
		return s.quiescence(pos, -ScoreInfinite, ScoreInfinite, ply)
	}

	var ml board.MoveList
	pos.GenerateMoves(&ml)

	best := -ScoreInfinite
	legalMoves := 0
	for i := 0; i < ml.Len(); i++ {
		if pos.MakeMove(ml.Get(i)) == board.Illegal {
			pos.TakeMove()
			continue
		}
		legalMoves++
		score := -plainNegamax(s, pos, depth-1, ply+1)
		pos.TakeMove()
		if score > best {
			best = score
		}
	}

	if legalMoves == 0 {
		if pos.InCheck() {
			return -ScoreMate + ply
		}
		return 0
	}
	return best
}

func TestAlphaBetaAgreesWithPlainNegamax(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		"8/8/3k4/3p4/8/3P4/3K4/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		pruned := NewSearch(1 << 14)
		got := pruned.alphaBeta(pos, -ScoreInfinite, ScoreInfinite, 2, 0)

		reference := NewSearch(1)
		want := plainNegamax(reference, pos, 2, 0)

		if got != want {
			t.Errorf("%s: alpha-beta = %d, plain negamax = %d", fen, got, want)
		}
	}
}

func TestSearchUsesTTMoveOrdering(t *testing.T) {
	pos := board.StartPosition()

	s := NewSearch(1 << 16)
	result := s.Search(pos, 4)

	if result.Move == board.NoMove {
		t.Fatal("no best move at the root")
	}

	// The root entry must exist and carry the returned best move.
	mv, ok := s.TransTable().BestMove(pos.Hash())
	if !ok {
		t.Fatal("root position missing from the transposition table")
	}
	if mv != result.Move {
		t.Errorf("TT best move %v differs from search result %v", mv, result.Move)
	}

	// And the PV must start with it.
	pv := s.PVLine(pos, result.Depth)
	if len(pv) == 0 || pv[0] != result.Move {
		t.Errorf("PV %v should start with %v", pv, result.Move)
	}
}

func TestPVLineRestoresPosition(t *testing.T) {
	pos := board.StartPosition()
	s := NewSearch(1 << 14)
	s.Search(pos, 3)

	before := pos.Hash()
	pv := s.PVLine(pos, 3)
	if len(pv) == 0 {
		t.Fatal("expected a non-empty PV after a depth-3 search")
	}
	if pos.Hash() != before {
		t.Error("PVLine must unwind every move it makes")
	}
	if pos.Ply() != 0 {
		t.Error("PVLine left plies in flight")
	}
}

func TestQuiescenceResolvesHangingCapture(t *testing.T) {
	// White to move can win a queen with a pawn; a depth-0 call must
	// see it rather than trust the static evaluation.
	pos, err := board.ParseFEN("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := NewSearch(1 << 10)
	score := s.quiescence(pos, -ScoreInfinite, ScoreInfinite, 0)

	static := Evaluate(pos.Board(), board.White)
	if score <= static {
		t.Errorf("quiescence %d should improve on stand-pat %d by capturing the queen", score, static)
	}
	if score < static+board.QueenValue-board.PawnValue {
		t.Errorf("score %d should gain roughly a queen over stand-pat %d", score, static)
	}
}
