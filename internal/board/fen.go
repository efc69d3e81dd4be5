package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. Malformed input is
// reported as an error here and never reaches the core invariants.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN %q: need at least 4 fields, got %d", fen, len(parts))
	}

	var b Board
	if err := parsePlacement(&b, parts[0]); err != nil {
		return nil, err
	}
	if b.PieceBB(WhiteKing).PopCount() != 1 || b.PieceBB(BlackKing).PopCount() != 1 {
		return nil, fmt.Errorf("invalid FEN %q: each side needs exactly one king", fen)
	}

	var side Color
	switch parts[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %q", parts[1])
	}

	castling, err := parseCastling(parts[2])
	if err != nil {
		return nil, err
	}

	enPassant := NoSquare
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %q", parts[3])
		}
		enPassant = sq
	}

	halfMove := 0
	if len(parts) > 4 {
		halfMove, err = strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %q", parts[4])
		}
	}

	fullMove := 1
	if len(parts) > 5 {
		fullMove, err = strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %q", parts[5])
		}
	}

	return NewPosition(b, side, castling, enPassant, halfMove, fullMove), nil
}

// StartPosition returns the standard starting position.
func StartPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %q", c)
			}
			b.AddPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("rank %d covers %d squares", rank+1, file)
		}
	}

	return nil
}

func parseCastling(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr = cr.Set(WhiteKingside)
		case 'Q':
			cr = cr.Set(WhiteQueenside)
		case 'k':
			cr = cr.Set(BlackKingside)
		case 'q':
			cr = cr.Set(BlackQueenside)
		default:
			return NoCastling, fmt.Errorf("invalid castling character: %q", c)
		}
	}
	return cr, nil
}

// ToFEN serialises the position back into FEN.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.board.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMove))

	return sb.String()
}
