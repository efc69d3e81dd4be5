package board

// GenerateMoves fills ml with every pseudo-legal move for the side to
// move: the moves obey piece movement and never capture a friendly
// piece, but may leave the mover's king in check. Legality is decided
// by MakeMove.
func (p *Position) GenerateMoves(ml *MoveList) {
	ml.Clear()

	us := p.sideToMove
	enemies := p.board.ColorBB(us.Other())
	occupied := p.board.Occupied()
	targets := ^p.board.ColorBB(us) // enemy or empty

	p.generatePawnMoves(ml, us, enemies, occupied, false)
	p.generateKnightMoves(ml, us, enemies, targets)
	p.generateSliderMoves(ml, us, enemies, occupied, targets)
	p.generateKingMoves(ml, us, enemies, targets)
	p.generateCastleMoves(ml, us, occupied)
}

// GenerateCaptures fills ml with pseudo-legal captures and
// promotions only; this feeds the quiescence search.
func (p *Position) GenerateCaptures(ml *MoveList) {
	ml.Clear()

	us := p.sideToMove
	enemies := p.board.ColorBB(us.Other())
	occupied := p.board.Occupied()

	p.generatePawnMoves(ml, us, enemies, occupied, true)
	p.generateKnightMoves(ml, us, enemies, enemies)
	p.generateSliderMoves(ml, us, enemies, occupied, enemies)
	p.generateKingMoves(ml, us, enemies, enemies)
}

// generatePawnMoves emits pushes, captures, promotions and en
// passant. With capturesOnly set, quiet pushes are skipped but push
// promotions are kept.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard, capturesOnly bool) {
	pawns := p.board.PieceBB(NewPiece(Pawn, us))
	empty := ^occupied

	var push1, push2, capturesWest, capturesEast Bitboard
	var promoRank Bitboard
	var pushDir, westDir, eastDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3BB).North() & empty
		capturesWest = pawns.NorthWest() & enemies
		capturesEast = pawns.NorthEast() & enemies
		promoRank = Rank8BB
		pushDir, westDir, eastDir = 8, 7, 9
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6BB).South() & empty
		capturesWest = pawns.SouthWest() & enemies
		capturesEast = pawns.SouthEast() & enemies
		promoRank = Rank1BB
		pushDir, westDir, eastDir = -8, -9, -7
	}

	if !capturesOnly {
		quiet := push1 &^ promoRank
		for quiet != 0 {
			to := quiet.PopLSB()
			ml.Add(NewQuietMove(Square(int(to)-pushDir), to))
		}

		for push2 != 0 {
			to := push2.PopLSB()
			ml.Add(NewDoublePawnMove(Square(int(to)-2*pushDir), to))
		}
	}

	// Push promotions count as tactical moves either way.
	promoPush := push1 & promoRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}

	for _, side := range [2]struct {
		bb  Bitboard
		dir int
	}{{capturesWest, westDir}, {capturesEast, eastDir}} {
		plain := side.bb &^ promoRank
		for plain != 0 {
			to := plain.PopLSB()
			ml.Add(NewCaptureMove(Square(int(to)-side.dir), to))
		}
		promo := side.bb & promoRank
		for promo != 0 {
			to := promo.PopLSB()
			addPromotions(ml, Square(int(to)-side.dir), to, true)
		}
	}

	if p.enPassant != NoSquare {
		// Pawns attacking the en-passant square can capture onto it.
		attackers := pawnCaptureMasks[us.Other()][p.enPassant] & pawns
		for attackers != 0 {
			ml.Add(NewEnPassantMove(attackers.PopLSB(), p.enPassant))
		}
	}
}

// addPromotions emits the four promotion choices, queen first.
func addPromotions(ml *MoveList, from, to Square, capture bool) {
	ml.Add(NewPromotionMove(from, to, Queen, capture))
	ml.Add(NewPromotionMove(from, to, Rook, capture))
	ml.Add(NewPromotionMove(from, to, Bishop, capture))
	ml.Add(NewPromotionMove(from, to, Knight, capture))
}

func (p *Position) generateKnightMoves(ml *MoveList, us Color, enemies, targets Bitboard) {
	knights := p.board.PieceBB(NewPiece(Knight, us))
	for knights != 0 {
		from := knights.PopLSB()
		addMoves(ml, from, knightMasks[from]&targets, enemies)
	}
}

func (p *Position) generateKingMoves(ml *MoveList, us Color, enemies, targets Bitboard) {
	from := p.board.KingSq(us)
	addMoves(ml, from, kingMasks[from]&targets, enemies)
}

func (p *Position) generateSliderMoves(ml *MoveList, us Color, enemies, occupied, targets Bitboard) {
	bishops := p.board.PieceBB(NewPiece(Bishop, us))
	for bishops != 0 {
		from := bishops.PopLSB()
		addMoves(ml, from, BishopAttacks(from, occupied)&targets, enemies)
	}

	rooks := p.board.PieceBB(NewPiece(Rook, us))
	for rooks != 0 {
		from := rooks.PopLSB()
		addMoves(ml, from, RookAttacks(from, occupied)&targets, enemies)
	}

	queens := p.board.PieceBB(NewPiece(Queen, us))
	for queens != 0 {
		from := queens.PopLSB()
		addMoves(ml, from, QueenAttacks(from, occupied)&targets, enemies)
	}
}

// addMoves splits an attack set into captures and quiets.
func addMoves(ml *MoveList, from Square, attacks, enemies Bitboard) {
	captures := attacks & enemies
	for captures != 0 {
		ml.Add(NewCaptureMove(from, captures.PopLSB()))
	}
	quiets := attacks &^ enemies
	for quiets != 0 {
		ml.Add(NewQuietMove(from, quiets.PopLSB()))
	}
}

// Squares that must be empty between king and rook.
const (
	castleEmptyWK Bitboard = 1<<F1 | 1<<G1
	castleEmptyWQ Bitboard = 1<<B1 | 1<<C1 | 1<<D1
	castleEmptyBK Bitboard = 1<<F8 | 1<<G8
	castleEmptyBQ Bitboard = 1<<B8 | 1<<C8 | 1<<D8
)

// generateCastleMoves emits castles when the permission is held, the
// path is clear and the rook is still in its corner. Whether the king
// moves through an attacked square is checked by MakeMove, not here.
func (p *Position) generateCastleMoves(ml *MoveList, us Color, occupied Bitboard) {
	if us == White {
		rooks := p.board.PieceBB(WhiteRook)
		if p.castling.Has(WhiteKingside) && occupied&castleEmptyWK == 0 && rooks.IsSet(H1) {
			ml.Add(NewKingCastleMove(White))
		}
		if p.castling.Has(WhiteQueenside) && occupied&castleEmptyWQ == 0 && rooks.IsSet(A1) {
			ml.Add(NewQueenCastleMove(White))
		}
	} else {
		rooks := p.board.PieceBB(BlackRook)
		if p.castling.Has(BlackKingside) && occupied&castleEmptyBK == 0 && rooks.IsSet(H8) {
			ml.Add(NewKingCastleMove(Black))
		}
		if p.castling.Has(BlackQueenside) && occupied&castleEmptyBQ == 0 && rooks.IsSet(A8) {
			ml.Add(NewQueenCastleMove(Black))
		}
	}
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var ml MoveList
	p.GenerateMoves(&ml)
	for i := 0; i < ml.Len(); i++ {
		legality := p.MakeMove(ml.Get(i))
		p.TakeMove()
		if legality == Legal {
			return true
		}
	}
	return false
}
