package board

import "testing"

func TestKnightMask(t *testing.T) {
	tests := []struct {
		sq    Square
		count int
		some  []Square
	}{
		{D4, 8, []Square{B3, B5, C2, C6, E2, E6, F3, F5}},
		{A1, 2, []Square{B3, C2}},
		{H8, 2, []Square{F7, G6}},
	}
	for _, tc := range tests {
		mask := KnightMask(tc.sq)
		if mask.PopCount() != tc.count {
			t.Errorf("knight mask %v has %d squares, want %d", tc.sq, mask.PopCount(), tc.count)
		}
		for _, sq := range tc.some {
			if !mask.IsSet(sq) {
				t.Errorf("knight on %v should attack %v", tc.sq, sq)
			}
		}
	}
}

func TestKingMask(t *testing.T) {
	if KingMask(E4).PopCount() != 8 {
		t.Error("central king attacks 8 squares")
	}
	if KingMask(A1).PopCount() != 3 {
		t.Error("corner king attacks 3 squares")
	}
	if KingMask(E1).PopCount() != 5 {
		t.Error("edge king attacks 5 squares")
	}
}

func TestPawnCaptureMask(t *testing.T) {
	if PawnCaptureMask(White, E4) != SquareBB(D5)|SquareBB(F5) {
		t.Error("white pawn on e4 attacks d5 and f5")
	}
	if PawnCaptureMask(Black, E4) != SquareBB(D3)|SquareBB(F3) {
		t.Error("black pawn on e4 attacks d3 and f3")
	}
	if PawnCaptureMask(White, A2) != SquareBB(B3) {
		t.Error("white pawn on a2 attacks only b3")
	}
	if PawnCaptureMask(Black, H7) != SquareBB(G6) {
		t.Error("black pawn on h7 attacks only g6")
	}
}

func TestLineMasksExcludeOrigin(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		for _, mask := range []Bitboard{
			DiagMask(sq), AntiDiagMask(sq), FileMask(sq), RankMask(sq),
			BishopMask(sq), RookMask(sq), QueenMask(sq),
		} {
			if mask.IsSet(sq) {
				t.Fatalf("mask for %v contains its own origin", sq)
			}
		}
	}
}

func TestLineMaskShapes(t *testing.T) {
	if FileMask(E4).PopCount() != 7 || RankMask(E4).PopCount() != 7 {
		t.Error("file and rank masks hold 7 squares each")
	}
	if !DiagMask(A1).IsSet(H8) {
		t.Error("a1 diagonal reaches h8")
	}
	if !AntiDiagMask(H1).IsSet(A8) {
		t.Error("h1 anti-diagonal reaches a8")
	}
	if RookMask(E4) != FileMask(E4)|RankMask(E4) {
		t.Error("rook mask is the union of file and rank")
	}
	if QueenMask(E4) != RookMask(E4)|BishopMask(E4) {
		t.Error("queen mask is the union of rook and bishop")
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		a, b Square
		want Bitboard
	}{
		{A1, A4, SquareBB(A2) | SquareBB(A3)},
		{A1, H8, SquareBB(B2) | SquareBB(C3) | SquareBB(D4) | SquareBB(E5) | SquareBB(F6) | SquareBB(G7)},
		{E4, G4, SquareBB(F4)},
		{E4, F4, EmptyBB},      // adjacent
		{A1, B3, EmptyBB},      // not aligned
		{C2, C2, EmptyBB},      // same square
	}
	for _, tc := range tests {
		if got := Between(tc.a, tc.b); got != tc.want {
			t.Errorf("Between(%v, %v) = %#x, want %#x", tc.a, tc.b, uint64(got), uint64(tc.want))
		}
		// The table is symmetric.
		if Between(tc.a, tc.b) != Between(tc.b, tc.a) {
			t.Errorf("Between(%v, %v) is not symmetric", tc.a, tc.b)
		}
	}
}

func TestSliderAttacks(t *testing.T) {
	// Empty board: rook on e4 sees both full lines.
	if RookAttacks(E4, EmptyBB) != RookMask(E4) {
		t.Error("rook on an empty board attacks its full mask")
	}
	if BishopAttacks(E4, EmptyBB) != BishopMask(E4) {
		t.Error("bishop on an empty board attacks its full mask")
	}

	// A blocker is reachable, the squares behind it are not.
	occ := SquareBB(E6)
	attacks := RookAttacks(E4, occ)
	if !attacks.IsSet(E5) || !attacks.IsSet(E6) {
		t.Error("rook should reach up to and including the blocker")
	}
	if attacks.IsSet(E7) || attacks.IsSet(E8) {
		t.Error("rook must not see through a blocker")
	}

	// Blocker below the slider, found with the reverse scan.
	occ = SquareBB(C2)
	battacks := BishopAttacks(E4, occ)
	if !battacks.IsSet(D3) || !battacks.IsSet(C2) {
		t.Error("bishop should reach down to the blocker")
	}
	if battacks.IsSet(B1) {
		t.Error("bishop must not see past the blocker")
	}

	if QueenAttacks(E4, EmptyBB) != RookAttacks(E4, EmptyBB)|BishopAttacks(E4, EmptyBB) {
		t.Error("queen attacks are the union of rook and bishop attacks")
	}
}

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		sq       Square
		by       Color
		attacked bool
	}{
		{"pawn attacks diagonally", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", D5, White, true},
		{"pawn does not attack ahead", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", E5, White, false},
		{"black pawn attacks down", "4k3/8/4p3/8/8/8/8/4K3 w - - 0 1", D5, Black, true},
		{"knight", "4k3/8/8/8/8/5N2/8/4K3 w - - 0 1", E5, White, true},
		{"rook on open file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", A8, White, true},
		{"rook blocked", "4k3/8/8/8/N7/8/8/R3K3 w - - 0 1", A8, White, false},
		{"bishop on diagonal", "4k3/8/8/8/8/8/1B6/4K3 w - - 0 1", G7, White, true},
		{"bishop blocked", "4k3/8/8/4p3/8/8/1B6/4K3 w - - 0 1", G7, White, false},
		{"queen straight", "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", A8, White, true},
		{"queen diagonal", "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", H8, White, true},
		{"king adjacency", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", E2, White, true},
		{"king reach limit", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", E3, White, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if got := IsAttacked(pos.Board(), tc.sq, tc.by); got != tc.attacked {
				t.Errorf("IsAttacked(%v, %v) = %v, want %v", tc.sq, tc.by, got, tc.attacked)
			}
		})
	}
}

func TestAnyAttacked(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !AnyAttacked(pos.Board(), []Square{B8, A8}, White) {
		t.Error("a8 is attacked by the rook")
	}
	if AnyAttacked(pos.Board(), []Square{B8, C8}, White) {
		t.Error("neither b8 nor c8 is attacked")
	}
}
