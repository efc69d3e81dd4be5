package engine

import (
	"github.com/eddiemcnally/dolphin-sub001/internal/board"
)

// Score bounds. Mate scores are offset by the ply at which the mate
// is delivered so shorter mates rank higher; any magnitude of
// ScoreMate-MaxPly or above means a forced mate.
const (
	ScoreInfinite = 30000
	ScoreMate     = 29000
	MaxPly        = 64
)

// ttMoveBonus lifts the transposition table's best move above every
// other ordering heuristic.
const ttMoveBonus = 2000000

// Result is the outcome of one search invocation.
type Result struct {
	Move  board.Move
	Score int
	Depth int
	Nodes uint64
}

// Search owns the transposition table and the per-search state. It is
// strictly single-threaded: every call runs synchronously to
// completion on the caller's position.
type Search struct {
	tt    *TransTable
	nodes uint64

	rootMove board.Move

	// OnIteration, when set, is called after each completed depth of
	// the iterative deepening loop with the principal variation
	// recovered from the transposition table.
	OnIteration func(depth, score int, pv []board.Move)
}

// NewSearch creates a searcher with a transposition table of the
// given capacity in entries.
func NewSearch(ttCapacity int) *Search {
	return &Search{tt: NewTransTable(ttCapacity)}
}

// Nodes returns the number of nodes visited by the last search.
func (s *Search) Nodes() uint64 {
	return s.nodes
}

// TransTable exposes the table, mainly for tests and diagnostics.
func (s *Search) TransTable() *TransTable {
	return s.tt
}

// Search runs iterative deepening from depth 1 to maxDepth with a
// full window at each step and returns the best move found at the
// deepest completed iteration.
func (s *Search) Search(pos *board.Position, maxDepth int) Result {
	s.nodes = 0

	var result Result
	for depth := 1; depth <= maxDepth; depth++ {
		s.rootMove = board.NoMove
		score := s.alphaBeta(pos, -ScoreInfinite, ScoreInfinite, depth, 0)

		result = Result{
			Move:  s.rootMove,
			Score: score,
			Depth: depth,
			Nodes: s.nodes,
		}

		if s.OnIteration != nil {
			s.OnIteration(depth, score, s.PVLine(pos, depth))
		}
	}
	return result
}

// PVLine recovers the principal variation by repeatedly probing the
// transposition table along the best-move chain. A stored move that
// does not appear in the freshly generated list (a collision
// leftover) ends the line; it is an ordering hint, never trusted
// blindly.
func (s *Search) PVLine(pos *board.Position, maxLen int) []board.Move {
	var pv []board.Move
	var ml board.MoveList

	for len(pv) < maxLen {
		mv, ok := s.tt.BestMove(pos.Hash())
		if !ok {
			break
		}
		pos.GenerateMoves(&ml)
		if ml.Find(mv) == -1 {
			break
		}
		if pos.MakeMove(mv) != board.Legal {
			pos.TakeMove()
			break
		}
		pv = append(pv, mv)
	}

	for range pv {
		pos.TakeMove()
	}
	return pv
}

// alphaBeta is a fail-hard negamax search.
//
// Bound classification follows the source convention: the final score
// is compared against the alpha in force when the move loop starts
// (after any tightening from a transposition-table bound), so a node
// whose alpha never moved stores an Upper bound and anything that
// improved it without failing high stores Exact.
func (s *Search) alphaBeta(pos *board.Position, alpha, beta, depth, ply int) int {
	if depth == 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	s.nodes++

	hash := pos.Hash()

	// A stored result deep enough to trust can answer immediately or
	// tighten the window; a shallower hit still seeds move ordering.
	var ttMove board.Move
	if entry, ok := s.tt.Get(hash); ok {
		ttMove = entry.Move
		// Never cut at the root: the caller needs a move, not just
		// a score.
		if entry.Depth >= depth && ply > 0 {
			switch entry.Kind {
			case Exact:
				return entry.Score
			case Lower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case Upper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	var ml board.MoveList
	pos.GenerateMoves(&ml)
	s.scoreMoves(pos, &ml, ttMove)

	origAlpha := alpha
	bestMove := board.NoMove
	legalMoves := 0

	for i := 0; i < ml.Len(); i++ {
		ml.Sort(i)
		mv := ml.Get(i)

		if pos.MakeMove(mv) == board.Illegal {
			pos.TakeMove()
			continue
		}
		legalMoves++

		score := -s.alphaBeta(pos, -beta, -alpha, depth-1, ply+1)
		pos.TakeMove()

		if score >= beta {
			s.tt.Put(hash, Lower, depth, beta, mv)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = mv
			if ply == 0 {
				s.rootMove = mv
			}
		}
	}

	if legalMoves == 0 {
		if pos.InCheck() {
			return -ScoreMate + ply
		}
		return 0
	}

	if alpha != origAlpha {
		s.tt.Put(hash, Exact, depth, alpha, bestMove)
	} else {
		s.tt.Put(hash, Upper, depth, alpha, bestMove)
	}
	return alpha
}

// quiescence extends the leaves along captures and promotions until
// the position is quiet, resolving the tactical horizon before the
// static evaluation is trusted.
func (s *Search) quiescence(pos *board.Position, alpha, beta, ply int) int {
	s.nodes++

	standPat := Evaluate(pos.Board(), pos.SideToMove())
	if ply >= MaxPly {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var ml board.MoveList
	pos.GenerateCaptures(&ml)
	s.scoreMoves(pos, &ml, board.NoMove)

	for i := 0; i < ml.Len(); i++ {
		ml.Sort(i)
		mv := ml.Get(i)

		if pos.MakeMove(mv) == board.Illegal {
			pos.TakeMove()
			continue
		}

		score := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.TakeMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// scoreMoves seeds the ordering scores: the TT move first, then
// captures by most-valuable-victim / least-valuable-attacker, then
// promotions by the promoted piece.
func (s *Search) scoreMoves(pos *board.Position, ml *board.MoveList, ttMove board.Move) {
	b := pos.Board()

	for i := 0; i < ml.Len(); i++ {
		mv := ml.Get(i)

		if mv == ttMove {
			ml.SetScore(i, ttMoveBonus)
			continue
		}

		var score int32
		if mv.IsCapture() {
			victim := board.PawnValue
			if !mv.IsEnPassant() {
				victim = b.PieceAt(mv.To()).Value()
			}
			attacker := b.PieceAt(mv.From()).Value()
			score = int32(victim*10 - attacker)
		}
		if mv.IsPromotion() {
			score += int32(board.PieceValue[mv.Promotion()])
		}
		ml.SetScore(i, score)
	}
}
