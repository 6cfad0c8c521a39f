package shogi

import "testing"

// occPatterns returns a handful of occupancy bitboards exercising empty
// boards, fully occupied boards, and scattered blockers around sq, to
// drive the magic/qugiy cross-check.
func occPatterns(sq Square) []BitBoard {
	pats := []BitBoard{BbEmpty, BbAll}
	f, r := sq.File(), sq.Rank()
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}} {
		nf, nr := int(f)+d[0], int(r)+d[1]
		if nf < 0 || nf >= 9 || nr < 0 || nr >= 9 {
			continue
		}
		pats = append(pats, bit(Square(nf*9+nr)))
	}
	var scattered BitBoard
	for s := Square(0); s < NumSquares; s += 5 {
		if s != sq {
			scattered = scattered.Or(bit(s))
		}
	}
	pats = append(pats, scattered)
	return pats
}

func TestMagicMatchesQugiyRook(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		for _, occ := range occPatterns(sq) {
			got, want := magicRookAttack(sq, occ), qugiyRookAttack(sq, occ)
			if !got.Equal(want) {
				t.Fatalf("rook at %v, occ=%+v: magic=%+v qugiy=%+v", sq, occ, got, want)
			}
		}
	}
}

func TestMagicMatchesQugiyBishop(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		for _, occ := range occPatterns(sq) {
			got, want := magicBishopAttack(sq, occ), qugiyBishopAttack(sq, occ)
			if !got.Equal(want) {
				t.Fatalf("bishop at %v, occ=%+v: magic=%+v qugiy=%+v", sq, occ, got, want)
			}
		}
	}
}

func TestMagicMatchesQugiyLance(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		for _, col := range [2]Color{Black, White} {
			for _, occ := range occPatterns(sq) {
				got, want := magicLanceAttack(sq, col, occ), qugiyLanceAttack(sq, col, occ)
				if !got.Equal(want) {
					t.Fatalf("lance at %v col=%v, occ=%+v: magic=%+v qugiy=%+v", sq, col, occ, got, want)
				}
			}
		}
	}
}

func TestAttackNeverSetsPhantomSquares(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		for k := KindMinValue; k <= KindMaxValue; k++ {
			bb := Attack(k, Black, sq, BbAll)
			if bb.Hi&^hiMask != 0 {
				t.Errorf("Attack(%v, Black, %v, BbAll) leaks high bits", k, sq)
			}
		}
	}
}
