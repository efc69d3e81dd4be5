package board

import "fmt"

// MoveLegality is the verdict returned by MakeMove.
type MoveLegality uint8

const (
	Legal MoveLegality = iota
	Illegal
)

// String returns the verdict name.
func (l MoveLegality) String() string {
	if l == Legal {
		return "Legal"
	}
	return "Illegal"
}

// MaxHistory bounds the make/take stack. 1024 plies is far beyond
// any search or game; exceeding it is a bug.
const MaxHistory = 1024

// historyEntry snapshots everything needed to undo one move. The
// board is stored by value, so TakeMove is a handful of assignments
// and never allocates.
type historyEntry struct {
	board     Board
	hash      uint64
	move      Move
	halfMove  int
	enPassant Square
	castling  CastlingRights
	captured  Piece
}

// Position is the full game state: piece placement, side to move,
// en-passant target, castle permissions, move counters, the running
// Zobrist hash, and the history stack that makes every MakeMove
// exactly reversible.
type Position struct {
	board      Board
	sideToMove Color
	enPassant  Square
	castling   CastlingRights
	halfMove   int
	fullMove   int
	hash       uint64

	ply     int
	history [MaxHistory]historyEntry
}

// NewPosition builds a position from its parsed components. The hash
// is computed from scratch here and maintained incrementally after.
func NewPosition(b Board, side Color, castling CastlingRights, enPassant Square, halfMove, fullMove int) *Position {
	p := &Position{
		board:      b,
		sideToMove: side,
		enPassant:  enPassant,
		castling:   castling,
		halfMove:   halfMove,
		fullMove:   fullMove,
	}
	p.hash = p.ComputeHash()
	return p
}

// Board returns the piece placement.
func (p *Position) Board() *Board {
	return &p.board
}

// SideToMove returns the colour to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// EnPassant returns the en-passant target square, or NoSquare.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// CastlingRights returns the current castle permissions.
func (p *Position) CastlingRights() CastlingRights {
	return p.castling
}

// HalfMoveClock returns the fifty-move-rule counter.
func (p *Position) HalfMoveClock() int {
	return p.halfMove
}

// FullMoveNumber returns the full move counter (starts at 1).
func (p *Position) FullMoveNumber() int {
	return p.fullMove
}

// Hash returns the incrementally maintained Zobrist hash.
func (p *Position) Hash() uint64 {
	return p.hash
}

// Ply returns the number of moves currently made but not taken back.
func (p *Position) Ply() int {
	return p.ply
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return IsAttacked(&p.board, p.board.KingSq(p.sideToMove), p.sideToMove.Other())
}

// ComputeHash recalculates the Zobrist hash from scratch. Used at
// construction and by tests to cross-check the incremental updates.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for pc := WhitePawn; pc <= BlackKing; pc++ {
		bb := p.board.PieceBB(pc)
		for bb != 0 {
			hash ^= zobristPiece[pc][bb.PopLSB()]
		}
	}

	if p.sideToMove == Black {
		hash ^= zobristSide
	}

	hash ^= castleHash(p.castling)

	if p.enPassant != NoSquare {
		hash ^= zobristEP[p.enPassant]
	}

	return hash
}

// addPiece, removePiece and movePiece mutate the board and fold the
// matching seeds into the running hash in one step.

func (p *Position) addPiece(pc Piece, sq Square) {
	p.board.AddPiece(pc, sq)
	p.hash ^= zobristPiece[pc][sq]
}

func (p *Position) removePiece(pc Piece, sq Square) {
	p.board.RemovePiece(pc, sq)
	p.hash ^= zobristPiece[pc][sq]
}

func (p *Position) movePiece(from, to Square, pc Piece) {
	p.board.MovePiece(from, to, pc)
	p.hash ^= zobristPiece[pc][from] ^ zobristPiece[pc][to]
}

// Squares the king stands on, crosses and lands on when castling,
// per colour and side; none of them may be attacked.
var (
	whiteKingsidePath  = []Square{E1, F1, G1}
	whiteQueensidePath = []Square{E1, D1, C1}
	blackKingsidePath  = []Square{E8, F8, G8}
	blackQueensidePath = []Square{E8, D8, C8}
)

// MakeMove applies a pseudo-legal move and returns its legality. The
// position always advances by one ply, even for an Illegal verdict,
// so the caller must follow an Illegal result with TakeMove; keeping
// the mutation unconditional means unmake is uniformly one pop.
func (p *Position) MakeMove(m Move) MoveLegality {
	us := p.sideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	kind := m.Kind()

	mover := p.board.PieceAt(from)
	if mover == NoPiece {
		panic(fmt.Sprintf("make move %v: no piece on %v", m, from))
	}

	var captured Piece
	switch {
	case kind == EnPassant:
		captured = NewPiece(Pawn, them)
	case m.IsCapture():
		captured = p.board.PieceAt(to)
	default:
		captured = NoPiece
	}

	// Snapshot the pre-move state.
	if p.ply >= MaxHistory {
		panic("position history overflow")
	}
	p.history[p.ply] = historyEntry{
		board:     p.board,
		hash:      p.hash,
		move:      m,
		halfMove:  p.halfMove,
		enPassant: p.enPassant,
		castling:  p.castling,
		captured:  captured,
	}
	p.ply++

	if us == Black {
		p.fullMove++
	}

	if captured != NoPiece || mover.Type() == Pawn {
		p.halfMove = 0
	} else {
		p.halfMove++
	}

	// Any existing en-passant target lapses unless re-established by
	// a double pawn push below.
	if p.enPassant != NoSquare {
		p.hash ^= zobristEP[p.enPassant]
		p.enPassant = NoSquare
	}

	switch kind {
	case Quiet:
		p.movePiece(from, to, mover)

	case DoublePawnPush:
		p.movePiece(from, to, mover)
		ep := Square((int(from) + int(to)) / 2)
		p.enPassant = ep
		p.hash ^= zobristEP[ep]

	case Capture, PromoteKnightCapture, PromoteBishopCapture,
		PromoteRookCapture, PromoteQueenCapture:
		p.removePiece(captured, to)
		if m.IsPromotion() {
			p.removePiece(mover, from)
			p.addPiece(NewPiece(m.Promotion(), us), to)
		} else {
			p.movePiece(from, to, mover)
		}

	case PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen:
		p.removePiece(mover, from)
		p.addPiece(NewPiece(m.Promotion(), us), to)

	case EnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		p.removePiece(captured, capSq)
		p.movePiece(from, to, mover)

	case KingCastle:
		if us == White {
			p.movePiece(E1, G1, WhiteKing)
			p.movePiece(H1, F1, WhiteRook)
		} else {
			p.movePiece(E8, G8, BlackKing)
			p.movePiece(H8, F8, BlackRook)
		}

	case QueenCastle:
		if us == White {
			p.movePiece(E1, C1, WhiteKing)
			p.movePiece(A1, D1, WhiteRook)
		} else {
			p.movePiece(E8, C8, BlackKing)
			p.movePiece(A8, D8, BlackRook)
		}
	}

	// Castle permissions lapse when the king moves, when a rook
	// leaves its corner, or when a rook is captured on it.
	newRights := p.castling
	if mover.Type() == King {
		newRights = newRights.ClearColor(us)
	}
	for _, edit := range [2]Square{from, to} {
		switch edit {
		case A1:
			newRights = newRights.Clear(WhiteQueenside)
		case H1:
			newRights = newRights.Clear(WhiteKingside)
		case A8:
			newRights = newRights.Clear(BlackQueenside)
		case H8:
			newRights = newRights.Clear(BlackKingside)
		}
	}
	if newRights != p.castling {
		p.hash ^= castleHash(p.castling ^ newRights)
		p.castling = newRights
	}

	legality := Legal
	switch kind {
	case KingCastle:
		path := whiteKingsidePath
		if us == Black {
			path = blackKingsidePath
		}
		if AnyAttacked(&p.board, path, them) {
			legality = Illegal
		}
	case QueenCastle:
		path := whiteQueensidePath
		if us == Black {
			path = blackQueensidePath
		}
		if AnyAttacked(&p.board, path, them) {
			legality = Illegal
		}
	default:
		if IsAttacked(&p.board, p.board.KingSq(us), them) {
			legality = Illegal
		}
	}

	p.sideToMove = them
	p.hash ^= zobristSide

	return legality
}

// TakeMove undoes the most recent MakeMove, restoring the snapshot
// bit-for-bit. Calling it with no move in flight is a bug.
func (p *Position) TakeMove() {
	if p.ply == 0 {
		panic("take move on empty history")
	}
	p.ply--
	e := &p.history[p.ply]

	p.board = e.board
	p.hash = e.hash
	p.halfMove = e.halfMove
	p.enPassant = e.enPassant
	p.castling = e.castling

	p.sideToMove = p.sideToMove.Other()
	if p.sideToMove == Black {
		p.fullMove--
	}
}

// LastMove returns the most recently made move still in flight, or
// NoMove at the root.
func (p *Position) LastMove() Move {
	if p.ply == 0 {
		return NoMove
	}
	return p.history[p.ply-1].move
}

// String renders the board plus the non-board state.
func (p *Position) String() string {
	s := p.board.String()
	s += fmt.Sprintf("\nSide to move: %v\n", p.sideToMove)
	s += fmt.Sprintf("Castling: %v\n", p.castling)
	s += fmt.Sprintf("En passant: %v\n", p.enPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.halfMove)
	s += fmt.Sprintf("Full move: %d\n", p.fullMove)
	s += fmt.Sprintf("Hash: %016x\n", p.hash)
	return s
}
