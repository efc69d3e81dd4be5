package board

import "fmt"

// Move packs a chess move into 16 bits:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-15: kind
//
// Kind nibble (https://www.chessprogramming.org/Encoding_Moves):
//
//	0000 quiet            0100 capture
//	0001 double pawn push 0101 en passant capture
//	0010 king castle      1000-1011 promotion N/B/R/Q
//	0011 queen castle     1100-1111 promotion N/B/R/Q with capture
//
// Bit 14 set implies a capture, bit 15 a promotion.
type Move uint16

const (
	maskFrom Move = 0x003F
	maskTo   Move = 0x0FC0
	maskKind Move = 0xF000

	shiftTo = 6

	flagCapture Move = 0x4000
	flagPromote Move = 0x8000
)

// MoveKind is the decoded high nibble of a Move.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	_ // 6, 7 undefined
	_
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	PromoteKnightCapture
	PromoteBishopCapture
	PromoteRookCapture
	PromoteQueenCapture
)

// NoMove is the null move value.
const NoMove Move = 0

func newMove(from, to Square, kind MoveKind) Move {
	return Move(from) | Move(to)<<shiftTo | Move(kind)<<12
}

// NewQuietMove encodes a quiet move.
func NewQuietMove(from, to Square) Move {
	return newMove(from, to, Quiet)
}

// NewCaptureMove encodes a capture.
func NewCaptureMove(from, to Square) Move {
	return newMove(from, to, Capture)
}

// NewDoublePawnMove encodes a double pawn push.
func NewDoublePawnMove(from, to Square) Move {
	return newMove(from, to, DoublePawnPush)
}

// NewKingCastleMove encodes a kingside castle for the given colour.
func NewKingCastleMove(c Color) Move {
	if c == White {
		return newMove(E1, G1, KingCastle)
	}
	return newMove(E8, G8, KingCastle)
}

// NewQueenCastleMove encodes a queenside castle for the given colour.
func NewQueenCastleMove(c Color) Move {
	if c == White {
		return newMove(E1, C1, QueenCastle)
	}
	return newMove(E8, C8, QueenCastle)
}

// NewEnPassantMove encodes an en passant capture.
func NewEnPassantMove(from, to Square) Move {
	return newMove(from, to, EnPassant)
}

// NewPromotionMove encodes a promotion to the given piece type,
// optionally combined with a capture.
func NewPromotionMove(from, to Square, promo PieceType, capture bool) Move {
	var kind MoveKind
	switch promo {
	case Knight:
		kind = PromoteKnight
	case Bishop:
		kind = PromoteBishop
	case Rook:
		kind = PromoteRook
	case Queen:
		kind = PromoteQueen
	default:
		panic(fmt.Sprintf("invalid promotion piece type %v", promo))
	}
	m := newMove(from, to, kind)
	if capture {
		m |= flagCapture
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & maskFrom)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & maskTo) >> shiftTo)
}

// Kind decodes the move kind, panicking on the two undefined nibble
// patterns; an unknown kind can only come from a bug or corrupted
// encoding.
func (m Move) Kind() MoveKind {
	k := MoveKind(m >> 12)
	if k == 6 || k == 7 {
		panic(fmt.Sprintf("invalid move kind %#x in move %#x", uint8(k), uint16(m)))
	}
	return k
}

// IsCapture reports whether the move captures (including en passant).
func (m Move) IsCapture() bool {
	return m&flagCapture != 0 || m.Kind() == EnPassant
}

// IsPromotion reports whether the move promotes.
func (m Move) IsPromotion() bool {
	return m&flagPromote != 0
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Kind() == EnPassant
}

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool {
	k := m.Kind()
	return k == KingCastle || k == QueenCastle
}

// IsDoublePawnPush reports whether the move is a double pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Kind() == DoublePawnPush
}

// Promotion returns the promotion piece type; only meaningful when
// IsPromotion is true.
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

// String returns the move in UCI long algebraic form ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()-Knight])
	}
	return s
}

// MaxMoves is the MoveList capacity; no reachable position has more
// than 256 pseudo-legal moves.
const MaxMoves = 256

// MoveList is a fixed-capacity move sequence with a score per slot
// for search ordering. It lives on the stack of each search node; it
// never grows.
type MoveList struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]int32
	count  int
}

// Add appends a move with a zero score.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.scores[ml.count] = 0
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Score returns the ordering score of the move at index i.
func (ml *MoveList) Score(i int) int32 {
	return ml.scores[i]
}

// SetScore sets the ordering score of the move at index i.
func (ml *MoveList) SetScore(i int, score int32) {
	ml.scores[i] = score
}

// Find returns the index of m, or -1 when absent.
func (ml *MoveList) Find(m Move) int {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return i
		}
	}
	return -1
}

// Sort swaps the highest-scored move in [i, len) into slot i. Calling
// it with increasing i performs an incremental selection sort, so the
// search only pays for ordering the moves it actually visits.
func (ml *MoveList) Sort(i int) {
	best := i
	for j := i + 1; j < ml.count; j++ {
		if ml.scores[j] > ml.scores[best] {
			best = j
		}
	}
	if best != i {
		ml.moves[i], ml.moves[best] = ml.moves[best], ml.moves[i]
		ml.scores[i], ml.scores[best] = ml.scores[best], ml.scores[i]
	}
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}
