package shogi

import "testing"

func TestBitBoardHighBitsAlwaysZero(t *testing.T) {
	bbs := []BitBoard{
		BbAll, BbEmpty,
		BbAll.Not(), BbAll.Xor(BbEmpty),
		bit(80).N(), bit(0).S(), bit(40).E(), bit(40).W(),
		bit(40).NE(), bit(40).NW(), bit(40).SE(), bit(40).SW(),
	}
	for _, bb := range bbs {
		if bb.Hi&^hiMask != 0 {
			t.Errorf("high bits leaked: %+v", bb)
		}
	}
}

func TestBitBoardIteration(t *testing.T) {
	want := []Square{3, 17, 40, 80}
	var bb BitBoard
	for _, sq := range want {
		bb = bb.Or(bit(sq))
	}
	var got []Square
	for bb.Any() {
		got = append(got, bb.Next())
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestBitBoardEdgeWraps(t *testing.T) {
	// File 0's squares must not appear on file 8 after an E shift from
	// file 8, and vice versa: shifts must not wrap around the board.
	if FileBb(8).E().Any() {
		t.Errorf("E() from file 8 should fall off the board")
	}
	if FileBb(0).W().Any() {
		t.Errorf("W() from file 0 should fall off the board")
	}
	if RankBb(0).N().Any() {
		t.Errorf("N() from rank 0 should fall off the board")
	}
	if RankBb(8).S().Any() {
		t.Errorf("S() from rank 8 should fall off the board")
	}
}

func TestBitBoardCountAndFirst(t *testing.T) {
	bb := BbAll
	if bb.Count() != 81 {
		t.Errorf("BbAll.Count() = %d, want 81", bb.Count())
	}
	if BbEmpty.First() != SquareNone {
		t.Errorf("BbEmpty.First() = %v, want SquareNone", BbEmpty.First())
	}
	if BbAll.First() != 0 {
		t.Errorf("BbAll.First() = %v, want 0", BbAll.First())
	}
}

func TestFileBbContiguous(t *testing.T) {
	for f := 0; f < 9; f++ {
		fb := FileBb(File(f))
		if fb.Count() != 9 {
			t.Errorf("file %d has %d squares, want 9", f, fb.Count())
		}
		for r := 0; r < 9; r++ {
			if !fb.Has(sq(f, r)) {
				t.Errorf("file %d missing rank %d", f, r)
			}
		}
	}
}
