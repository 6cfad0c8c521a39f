package usi

import (
	"testing"

	"github.com/hayashogi/shogicore/shogi"
)

func TestFormatParseSquareRoundTrip(t *testing.T) {
	for f := 0; f < 9; f++ {
		for r := 0; r < 9; r++ {
			sq, err := shogi.NewSquare(shogi.File(f), shogi.Rank(r))
			if err != nil {
				t.Fatal(err)
			}
			s := FormatSquare(sq)
			got, err := ParseSquare(s)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", s, err)
			}
			if got != sq {
				t.Errorf("round trip %v -> %q -> %v", sq, s, got)
			}
		}
	}
}

func TestParseSquareKnownValues(t *testing.T) {
	data := []struct {
		s  string
		f  int
		r  int
	}{
		{"7g", 2, 6},
		{"1a", 8, 0},
		{"9i", 0, 8},
	}
	for _, d := range data {
		sq, err := ParseSquare(d.s)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", d.s, err)
		}
		want, err := shogi.NewSquare(shogi.File(d.f), shogi.Rank(d.r))
		if err != nil {
			t.Fatal(err)
		}
		if sq != want {
			t.Errorf("ParseSquare(%q) = %v, want %v", d.s, sq, want)
		}
	}
}

func TestParseSquareRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "0a", "9j", "aa", "99", "7"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q): expected an error", s)
		}
	}
}

func TestFormatMoveBoardAndPromotion(t *testing.T) {
	from, _ := shogi.NewSquare(2, 6)
	to, _ := shogi.NewSquare(2, 5)
	m := shogi.MakeMove(from, to, false)
	if got, want := Format(m), "7g7f"; got != want {
		t.Errorf("Format(%v) = %q, want %q", m, got, want)
	}
	mp := shogi.MakeMove(from, to, true)
	if got, want := Format(mp), "7g7f+"; got != want {
		t.Errorf("Format(%v) = %q, want %q", mp, got, want)
	}
}

func TestFormatParseDropRoundTrip(t *testing.T) {
	to, _ := shogi.NewSquare(4, 4)
	m := shogi.MakeDrop(shogi.Pawn, to)
	s := Format(m)
	if want := "P*5e"; s != want {
		t.Errorf("Format(%v) = %q, want %q", m, s, want)
	}
	got, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	if got != m {
		t.Errorf("Parse(Format(%v)) = %v, want %v", m, got, m)
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	b := shogi.Startpos()
	var moves []shogi.Move
	b.GenerateMoves(shogi.Collect(&moves))
	for _, m := range moves {
		s := Format(m)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got != m {
			t.Errorf("Parse(Format(%v)) = %v, want %v", m, got, m)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "xx", "7g7", "X*5e", "7g7f++"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected an error", s)
		}
	}
}
