// bitboard.go implements the 9x9 set-of-squares primitive the rest of
// the package is built on. Squares are numbered file-major
// (square = file*9+rank) so that all nine squares of one file land in a
// contiguous 9-bit run; see basic.go for the Square type itself.
//
// A chess bitboard fits in one machine word. Shogi's 81 squares do not,
// so BitBoard is carried as two uint64 limbs (Lo covers squares 0-63,
// Hi covers 64-80) and every operation is defined limb-wise, with
// carries propagated by hand where the algebra needs them (sub, the
// shifts). This mirrors, two limbs at a time, the single-word
// Bitboard uint64 idiom: LSB/Popcnt/Pop/RankBb/FileBb all have direct
// two-limb analogues below.
package shogi

import "math/bits"

// BitBoard is a set of board squares.
type BitBoard struct {
	Lo uint64 // squares 0..63
	Hi uint64 // squares 64..80 (bits 17..63 of Hi are always zero)
}

// hiMask keeps only the 17 bits of Hi that correspond to real squares
// (64..80). Every constructor and operation below preserves this
// invariant: the unused high bits of Hi stay zero.
const hiMask = uint64(1<<17) - 1

// BbEmpty is the empty set.
var BbEmpty = BitBoard{}

// BbAll is the set of all 81 squares.
var BbAll = BitBoard{Lo: ^uint64(0), Hi: hiMask}

// bit returns the BitBoard with only sq set.
func bit(sq Square) BitBoard {
	if sq < 64 {
		return BitBoard{Lo: 1 << uint(sq)}
	}
	return BitBoard{Hi: 1 << uint(sq-64)}
}

// Bitboard returns a BitBoard with only sq set.
func (sq Square) Bitboard() BitBoard { return bit(sq) }

// Or returns the union of a and b.
func (a BitBoard) Or(b BitBoard) BitBoard {
	return BitBoard{a.Lo | b.Lo, a.Hi | b.Hi}
}

// And returns the intersection of a and b.
func (a BitBoard) And(b BitBoard) BitBoard {
	return BitBoard{a.Lo & b.Lo, a.Hi & b.Hi}
}

// Xor returns the symmetric difference of a and b.
func (a BitBoard) Xor(b BitBoard) BitBoard {
	return BitBoard{a.Lo ^ b.Lo, a.Hi ^ b.Hi}
}

// AndNot returns the squares in a that are not in b (set difference).
func (a BitBoard) AndNot(b BitBoard) BitBoard {
	return BitBoard{a.Lo &^ b.Lo, a.Hi &^ b.Hi}
}

// Not returns the complement of a within the 81-square board, not
// within the full 128-bit word.
func (a BitBoard) Not() BitBoard {
	return BitBoard{^a.Lo, ^a.Hi & hiMask}
}

// Equal reports whether a and b hold the same squares.
func (a BitBoard) Equal(b BitBoard) bool {
	return a.Lo == b.Lo && a.Hi == b.Hi
}

// Empty reports whether the board has no squares set.
func (a BitBoard) Empty() bool {
	return a.Lo == 0 && a.Hi == 0
}

// Any reports whether the board has at least one square set.
func (a BitBoard) Any() bool { return !a.Empty() }

// Has reports whether sq is a member of a.
func (a BitBoard) Has(sq Square) bool {
	return !a.And(bit(sq)).Empty()
}

// Count returns the number of squares set (popcnt).
func (a BitBoard) Count() int {
	return bits.OnesCount64(a.Lo) + bits.OnesCount64(a.Hi)
}

// First returns the lowest-indexed member of a, or SquareNone if a is
// empty.
func (a BitBoard) First() Square {
	if a.Lo != 0 {
		return Square(bits.TrailingZeros64(a.Lo))
	}
	if a.Hi != 0 {
		return Square(64 + bits.TrailingZeros64(a.Hi))
	}
	return SquareNone
}

// LSB returns the BitBoard containing only the lowest-indexed member of
// a, or BbEmpty if a is empty.
func (a BitBoard) LSB() BitBoard {
	sq := a.First()
	if sq == SquareNone {
		return BbEmpty
	}
	return bit(sq)
}

// Next pops and returns the lowest-indexed member of a. It is the
// standard way to iterate a BitBoard:
//
//	for bb := targets; bb.Any(); {
//		sq := bb.Next()
//		...
//	}
func (a *BitBoard) Next() Square {
	sq := a.First()
	if sq == SquareNone {
		return SquareNone
	}
	*a = a.AndNot(bit(sq))
	return sq
}

// sub computes a-b as a two-limb subtraction with borrow, the building
// block for the Qugiy "span to nearest blocker" trick (attack_qugiy.go).
func sub(a, b BitBoard) BitBoard {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return BitBoard{lo, hi & hiMask}
}

// shiftLeft shifts the full 128-bit word left by n bits (n < 128),
// propagating the carry from Lo into Hi. Used by the directional shifts
// below; callers are responsible for masking away wrap-around before
// calling, since the shift itself has no notion of file/rank.
func shiftLeft(a BitBoard, n uint) BitBoard {
	switch {
	case n == 0:
		return a
	case n >= 64:
		return BitBoard{0, (a.Lo << (n - 64)) & hiMask}
	default:
		return BitBoard{a.Lo << n, ((a.Hi << n) | (a.Lo >> (64 - n))) & hiMask}
	}
}

// shiftRight is the mirror of shiftLeft.
func shiftRight(a BitBoard, n uint) BitBoard {
	switch {
	case n == 0:
		return a
	case n >= 64:
		return BitBoard{(a.Hi >> (n - 64)), 0}
	default:
		return BitBoard{(a.Lo >> n) | (a.Hi << (64 - n)), (a.Hi >> n) & hiMask}
	}
}

// fileMasks[f] has every square of file f set. rankMasks[r] has every
// square of rank r set. Both are computed once square by square rather
// than by shift-and-mask, since the file-major layout makes file 7's
// bits straddle the Lo/Hi boundary. They are package variable
// initializers, not an init() body, so they are ready before any init()
// in the package (the magic-table build in attack_magic.go among them)
// reads them.
var fileMasks, rankMasks = buildLineMasks()

func buildLineMasks() (files, ranks [9]BitBoard) {
	for f := 0; f < 9; f++ {
		for r := 0; r < 9; r++ {
			files[f] = files[f].Or(bit(Square(f*9 + r)))
			ranks[r] = ranks[r].Or(bit(Square(f*9 + r)))
		}
	}
	return files, ranks
}

// FileBb returns the set of all squares on file f (0-indexed).
func FileBb(f File) BitBoard { return fileMasks[f] }

// RankBb returns the set of all squares on rank r (0-indexed).
func RankBb(r Rank) BitBoard { return rankMasks[r] }

// N shifts every square one rank towards rank 0 (the far rank from
// Black, i.e. "up" the board as conventionally drawn).
func (a BitBoard) N() BitBoard { return shiftRight(a.AndNot(rankMasks[0]), 1) }

// S shifts every square one rank towards rank 8.
func (a BitBoard) S() BitBoard { return shiftLeft(a.AndNot(rankMasks[8]), 1) }

// E shifts every square one file towards file 8.
func (a BitBoard) E() BitBoard { return shiftLeft(a.AndNot(fileMasks[8]), 9) }

// W shifts every square one file towards file 0.
func (a BitBoard) W() BitBoard { return shiftRight(a.AndNot(fileMasks[0]), 9) }

// NE, NW, SE, SW shift diagonally by one square.
func (a BitBoard) NE() BitBoard {
	return shiftLeft(a.AndNot(fileMasks[8]).AndNot(rankMasks[0]), 8)
}
func (a BitBoard) NW() BitBoard {
	return shiftRight(a.AndNot(fileMasks[0]).AndNot(rankMasks[0]), 10)
}
func (a BitBoard) SE() BitBoard {
	return shiftLeft(a.AndNot(fileMasks[8]).AndNot(rankMasks[8]), 10)
}
func (a BitBoard) SW() BitBoard {
	return shiftRight(a.AndNot(fileMasks[0]).AndNot(rankMasks[8]), 8)
}

// Forward shifts bb one rank in the direction col advances: towards
// rank 0 for Black, towards rank 8 for White.
func Forward(col Color, bb BitBoard) BitBoard {
	if col == Black {
		return bb.N()
	}
	return bb.S()
}

// Backward is the opposite of Forward.
func Backward(col Color, bb BitBoard) BitBoard {
	if col == Black {
		return bb.S()
	}
	return bb.N()
}
