// Package usi is a thin textual-adjacency layer kept separate from the
// core: Move and Square stringification in USI's wire format. It is
// grounded on zurichess's Move.UCI()/
// SquareFromString/Square.String() (engine/moves.go, engine/basic.go),
// generalized from UCI's <file-letter><rank-digit> squares to USI's
// <file-digit 1..9><rank-letter a..i>, and from chess's single move
// shape to Shogi's two (board move, drop).
package usi

import (
	"fmt"

	"github.com/hayashogi/shogicore/shogi"
)

// FormatSquare renders sq in USI notation: file 1..9, rank a..i. File
// 1 is shogi.Square's File 8 (USI counts files from Black's right).
func FormatSquare(sq shogi.Square) string {
	return sq.String()
}

// ParseSquare parses a USI square like "7g" into a shogi.Square.
func ParseSquare(s string) (shogi.Square, error) {
	if len(s) != 2 {
		return shogi.SquareNone, fmt.Errorf("usi: bad square %q", s)
	}
	if s[0] < '1' || s[0] > '9' {
		return shogi.SquareNone, fmt.Errorf("usi: bad file in %q", s)
	}
	if s[1] < 'a' || s[1] > 'i' {
		return shogi.SquareNone, fmt.Errorf("usi: bad rank in %q", s)
	}
	f, err := shogi.TryFile(9 - int(s[0]-'0'))
	if err != nil {
		return shogi.SquareNone, err
	}
	r, err := shogi.TryRank(int(s[1] - 'a'))
	if err != nil {
		return shogi.SquareNone, err
	}
	return shogi.NewSquare(f, r)
}

var dropLetter = map[shogi.Kind]byte{
	shogi.Pawn: 'P', shogi.Lance: 'L', shogi.Knight: 'N', shogi.Silver: 'S',
	shogi.Gold: 'G', shogi.Bishop: 'B', shogi.Rook: 'R',
}

var letterToDrop = map[byte]shogi.Kind{
	'P': shogi.Pawn, 'L': shogi.Lance, 'N': shogi.Knight, 'S': shogi.Silver,
	'G': shogi.Gold, 'B': shogi.Bishop, 'R': shogi.Rook,
}

// Format renders m as a USI move string: "<from><to>[+]" for a board
// move, "<letter>*<to>" for a drop.
func Format(m shogi.Move) string {
	if m.IsDrop {
		return fmt.Sprintf("%c*%s", dropLetter[m.Kind], FormatSquare(m.To))
	}
	s := FormatSquare(m.From) + FormatSquare(m.To)
	if m.Promote {
		s += "+"
	}
	return s
}

// Parse parses a USI move string into a shogi.Move.
func Parse(s string) (shogi.Move, error) {
	if len(s) >= 4 && s[1] == '*' {
		k, ok := letterToDrop[s[0]]
		if !ok {
			return shogi.Move{}, fmt.Errorf("usi: bad drop kind in %q", s)
		}
		to, err := ParseSquare(s[2:])
		if err != nil {
			return shogi.Move{}, err
		}
		return shogi.MakeDrop(k, to), nil
	}
	if len(s) != 4 && len(s) != 5 {
		return shogi.Move{}, fmt.Errorf("usi: bad move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return shogi.Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return shogi.Move{}, err
	}
	promote := len(s) == 5 && s[4] == '+'
	return shogi.MakeMove(from, to, promote), nil
}
