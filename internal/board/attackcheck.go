package board

// IsAttacked reports whether any piece of colour by attacks sq on the
// given board. Checks are ordered cheapest first and return on the
// first hit; this is the inner test behind king-safety validation and
// castling-path checks.
func IsAttacked(b *Board, sq Square, by Color) bool {
	// A pawn of colour `by` attacks sq exactly when it stands on a
	// square that a pawn of the defending colour on sq would attack.
	if pawnCaptureMasks[by.Other()][sq]&b.PieceBB(NewPiece(Pawn, by)) != 0 {
		return true
	}

	if knightMasks[sq]&b.PieceBB(NewPiece(Knight, by)) != 0 {
		return true
	}

	occupied := b.Occupied()

	// Rank/file sliders: any rook or queen sharing a rank or file
	// with sq attacks it when the squares between are empty.
	straight := (b.PieceBB(NewPiece(Rook, by)) | b.PieceBB(NewPiece(Queen, by))) & rookMasks[sq]
	for straight != 0 {
		from := straight.PopLSB()
		if betweenMasks[sq][from]&occupied == 0 {
			return true
		}
	}

	// Diagonal sliders, same idea on the bishop lines.
	diagonal := (b.PieceBB(NewPiece(Bishop, by)) | b.PieceBB(NewPiece(Queen, by))) & bishopMasks[sq]
	for diagonal != 0 {
		from := diagonal.PopLSB()
		if betweenMasks[sq][from]&occupied == 0 {
			return true
		}
	}

	return kingMasks[sq]&b.PieceBB(NewPiece(King, by)) != 0
}

// AnyAttacked reports whether any of the given squares is attacked by
// the given colour. Used for the castling-path test.
func AnyAttacked(b *Board, squares []Square, by Color) bool {
	for _, sq := range squares {
		if IsAttacked(b, sq, by) {
			return true
		}
	}
	return false
}
