//go:generate stringer -type Color
//go:generate stringer -type Kind

package shogi

import "fmt"

// Square identifies one of the 81 board squares, file-major:
// square = file*9 + rank. File 0 is the leftmost file from Black's
// point of view (the "9" file in USI notation); rank 0 is the farthest
// rank from Black.
type Square int8

// SquareNone is the sentinel returned when there is no square to give,
// e.g. BitBoard.First on an empty set.
const SquareNone Square = -1

// NumSquares is the number of squares on the board.
const NumSquares = 81

// NewSquare builds the square at the given file and rank. Both must be
// in [0, 9); out-of-range input is a checked, reported error, never a
// silently wrapped value.
func NewSquare(f File, r Rank) (Square, error) {
	if f < 0 || f >= 9 || r < 0 || r >= 9 {
		return SquareNone, fmt.Errorf("shogi: file %d rank %d out of range", f, r)
	}
	return Square(int(f)*9 + int(r)), nil
}

// File returns the square's file, 0..8.
func (sq Square) File() File { return File(int(sq) / 9) }

// Rank returns the square's rank, 0..8.
func (sq Square) Rank() Rank { return Rank(int(sq) % 9) }

func (sq Square) String() string {
	if sq == SquareNone {
		return "-"
	}
	return fmt.Sprintf("%d%c", 9-int(sq.File()), 'a'+int(sq.Rank()))
}

// File is a board column, 0..8.
type File int8

// TryFile checks and converts a raw file index.
func TryFile(f int) (File, error) {
	if f < 0 || f >= 9 {
		return 0, fmt.Errorf("shogi: file %d out of range", f)
	}
	return File(f), nil
}

// Offset returns f+delta, saturated to the board edge rather than
// wrapping — useful for scanning outward from a square without having
// to re-check bounds at every step.
func (f File) Offset(delta int) File {
	v := int(f) + delta
	if v < 0 {
		return 0
	}
	if v > 8 {
		return 8
	}
	return File(v)
}

// Rank is a board row, 0..8.
type Rank int8

// TryRank checks and converts a raw rank index.
func TryRank(r int) (Rank, error) {
	if r < 0 || r >= 9 {
		return 0, fmt.Errorf("shogi: rank %d out of range", r)
	}
	return Rank(r), nil
}

// Offset returns r+delta, saturated to the board edge.
func (r Rank) Offset(delta int) Rank {
	v := int(r) + delta
	if v < 0 {
		return 0
	}
	if v > 8 {
		return 8
	}
	return Rank(v)
}

// Color identifies a side.
type Color uint8

const (
	Black Color = iota // sente, moves first
	White              // gote

	ColorArraySize = int(iota)
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return Black + White - c
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// promotionZone[c] is the set of ranks in which a piece of color c may
// promote: the three ranks farthest from c's own start.
var promotionZone = [ColorArraySize]BitBoard{}

func init() {
	for r := Rank(0); r < 3; r++ {
		promotionZone[Black] = promotionZone[Black].Or(RankBb(r))
	}
	for r := Rank(6); r < 9; r++ {
		promotionZone[White] = promotionZone[White].Or(RankBb(r))
	}
}

// PromotionZone returns the set of squares in which a piece of color c
// may promote.
func PromotionZone(c Color) BitBoard { return promotionZone[c] }

// lastRank[c] is the single rank on which c's Pawn/Lance have no legal
// forward move.
var lastRank = [ColorArraySize]Rank{Black: 0, White: 8}

// LastRank returns c's back rank (from its own advancing direction).
func (c Color) LastRank() Rank { return lastRank[c] }

// lastTwoRanks[c] is the pair of ranks on which c's Knight has no legal
// move.
func (c Color) LastTwoRanks() BitBoard {
	if c == Black {
		return RankBb(0).Or(RankBb(1))
	}
	return RankBb(7).Or(RankBb(8))
}

// Kind is a piece type without color. The unpromoted kinds occupy
// 1..8, the promoted kinds 9..14; Promoted/kind arithmetic below
// depends on that contiguity.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King

	PromPawn
	PromLance
	PromKnight
	PromSilver
	PromBishop
	PromRook

	KindArraySize = int(iota)
	KindMinValue  = Pawn
	KindMaxValue  = PromRook
)

// promotes maps an unpromoted kind to its promoted form, or NoKind if
// the kind cannot promote (Gold, King).
var promotes = [KindArraySize]Kind{
	Pawn:   PromPawn,
	Lance:  PromLance,
	Knight: PromKnight,
	Silver: PromSilver,
	Bishop: PromBishop,
	Rook:   PromRook,
}

// demotes is the inverse of promotes, plus the identity for the base
// kinds: it is what a captured piece reverts to.
var demotes = [KindArraySize]Kind{
	Pawn: Pawn, Lance: Lance, Knight: Knight, Silver: Silver,
	Gold: Gold, Bishop: Bishop, Rook: Rook, King: King,
	PromPawn: Pawn, PromLance: Lance, PromKnight: Knight,
	PromSilver: Silver, PromBishop: Bishop, PromRook: Rook,
}

// CanPromote reports whether k has a promoted form.
func (k Kind) CanPromote() bool { return promotes[k] != NoKind }

// IsPromoted reports whether k is already a promoted kind.
func (k Kind) IsPromoted() bool { return k >= PromPawn }

// Promoted returns k's promoted form, or NoKind if k cannot promote.
func (k Kind) Promoted() Kind { return promotes[k] }

// Unpromoted returns the kind a captured piece of kind k reverts to.
func (k Kind) Unpromoted() Kind { return demotes[k] }

// Droppable reports whether a piece of kind k can ever be held in hand
// and dropped (every kind except King and the promoted kinds).
func (k Kind) Droppable() bool {
	return k >= Pawn && k <= Rook
}

var kindToSymbol = [KindArraySize]string{
	Pawn: "P", Lance: "L", Knight: "N", Silver: "S", Gold: "G",
	Bishop: "B", Rook: "R", King: "K",
	PromPawn: "+P", PromLance: "+L", PromKnight: "+N", PromSilver: "+S",
	PromBishop: "+B", PromRook: "+R",
}

func (k Kind) String() string {
	if s := kindToSymbol[k]; s != "" {
		return s
	}
	return "-"
}

// Piece is a Kind owned by a Color, packed as kind<<1|color so that
// NoPiece is the zero value regardless of color.
type Piece uint8

// NoPiece is the empty-square sentinel.
const NoPiece Piece = 0

// NewPiece returns the piece of kind k owned by col.
func NewPiece(col Color, k Kind) Piece {
	return Piece(k)<<1 | Piece(col)
}

// Kind returns the piece's kind.
func (pi Piece) Kind() Kind { return Kind(pi >> 1) }

// Color returns the piece's color. Result is undefined for NoPiece.
func (pi Piece) Color() Color { return Color(pi & 1) }

func (pi Piece) String() string {
	if pi == NoPiece {
		return "."
	}
	s := pi.Kind().String()
	if pi.Color() == White {
		return "v" + s
	}
	return s
}
