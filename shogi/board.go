package shogi

import (
	"fmt"

	myLogging "github.com/hayashogi/shogicore/internal/logging"
)

var log = myLogging.GetLog()

// Board is the authoritative game state: per-color and per-kind
// occupancy bitboards, a mailbox for O(1) piece-at queries, side to
// move, ply, both hands, the incremental zobrist hash, and the cached
// checkers/pinned sets for the side to move. It is grounded on
// zurichess's Position (ByFigure/ByColor bitboard arrays, Put/Remove
// incrementally XORing the zobrist key), generalized from FEN's
// castling/en-passant state to Shogi's hands and reduced from
// zurichess's push/pop states stack to a plain value: Play returns a
// fresh Board by value instead of mutating one in place, so there is
// nothing to undo.
type Board struct {
	byColor [ColorArraySize]BitBoard
	byKind  [KindArraySize]BitBoard
	mailbox [NumSquares]Piece

	SideToMove Color
	Ply        int
	Tsume      bool

	hands [ColorArraySize]Hand
	hash  uint64

	checkers BitBoard
	pinned   BitBoard
}

// Startpos returns the standard Shogi opening position with Black to
// move.
func Startpos() Board {
	var b Board
	backRow := [9]Kind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	for f := 0; f < 9; f++ {
		b.put(NewPiece(White, backRow[f]), sq(f, 0))
		b.put(NewPiece(Black, backRow[f]), sq(f, 8))
		b.put(NewPiece(White, Pawn), sq(f, 2))
		b.put(NewPiece(Black, Pawn), sq(f, 6))
	}
	b.put(NewPiece(White, Rook), sq(1, 1))
	b.put(NewPiece(White, Bishop), sq(7, 1))
	b.put(NewPiece(Black, Bishop), sq(1, 7))
	b.put(NewPiece(Black, Rook), sq(7, 7))
	b.SideToMove = Black
	b.Ply = 1
	b.checkers, b.pinned = b.computeCheckersPinned()
	return b
}

func sq(f, r int) Square { return Square(f*9 + r) }

// put places pi on sq, updating every index and the incremental hash.
// Callers are responsible for the square being empty.
func (b *Board) put(pi Piece, s Square) {
	bb := bit(s)
	b.byColor[pi.Color()] = b.byColor[pi.Color()].Or(bb)
	b.byKind[pi.Kind()] = b.byKind[pi.Kind()].Or(bb)
	b.mailbox[s] = pi
	b.hash ^= pieceKey(pi, s)
}

// remove clears pi from sq. Callers are responsible for pi actually
// being the piece standing there.
func (b *Board) remove(pi Piece, s Square) {
	bb := bit(s)
	b.byColor[pi.Color()] = b.byColor[pi.Color()].AndNot(bb)
	b.byKind[pi.Kind()] = b.byKind[pi.Kind()].AndNot(bb)
	b.mailbox[s] = NoPiece
	b.hash ^= pieceKey(pi, s)
}

func (b *Board) addToHand(col Color, k Kind) {
	before := b.hands[col].Count(k)
	b.hands[col] = b.hands[col].Add(k)
	b.hash ^= handKey(col, k, before) ^ handKey(col, k, before+1)
}

func (b *Board) removeFromHand(col Color, k Kind) {
	before := b.hands[col].Count(k)
	b.hands[col] = b.hands[col].Remove(k)
	b.hash ^= handKey(col, k, before) ^ handKey(col, k, before-1)
}

// Occupied returns the union of both colors' occupancy.
func (b *Board) Occupied() BitBoard { return b.byColor[Black].Or(b.byColor[White]) }

// ByColor returns every square occupied by col.
func (b *Board) ByColor(col Color) BitBoard { return b.byColor[col] }

// ByKind returns every square occupied by a piece of kind k, of
// either color.
func (b *Board) ByKind(k Kind) BitBoard { return b.byKind[k] }

// ByPiece is a shortcut for ByColor(pi.Color()) & ByKind(pi.Kind()).
func (b *Board) ByPiece(pi Piece) BitBoard {
	return b.byColor[pi.Color()].And(b.byKind[pi.Kind()])
}

// PieceAt returns the piece standing on sq, or NoPiece.
func (b *Board) PieceAt(s Square) Piece { return b.mailbox[s] }

// ColorAt returns the color of the piece standing on sq, if any.
func (b *Board) ColorAt(s Square) (Color, bool) {
	pi := b.mailbox[s]
	if pi == NoPiece {
		return Black, false
	}
	return pi.Color(), true
}

// Hand returns col's droppable-piece inventory.
func (b *Board) Hand(col Color) Hand { return b.hands[col] }

// Hash returns the board's incrementally maintained zobrist hash.
func (b *Board) Hash() uint64 { return b.hash }

// Checkers returns the set of enemy pieces giving check to the side to
// move's king.
func (b *Board) Checkers() BitBoard { return b.checkers }

// Pinned returns the set of the side-to-move's own pieces pinned to
// its king.
func (b *Board) Pinned() BitBoard { return b.pinned }

// King returns the square holding col's king, or SquareNone if it has
// none (only possible for Black in Tsume mode).
func (b *Board) King(col Color) Square {
	return b.byColor[col].And(b.byKind[King]).First()
}

// InCheck reports whether the side to move's king is currently
// attacked.
func (b *Board) InCheck() bool { return b.checkers.Any() }

// FullRecomputeHash recomputes the zobrist hash from scratch, the
// ground truth tests check the incrementally maintained hash against.
func (b *Board) FullRecomputeHash() uint64 {
	var h uint64
	for s := Square(0); s < NumSquares; s++ {
		if pi := b.mailbox[s]; pi != NoPiece {
			h ^= pieceKey(pi, s)
		}
	}
	for col := Color(0); col < Color(ColorArraySize); col++ {
		for k := KindMinValue; k <= Rook; k++ {
			h ^= handKey(col, k, b.hands[col].Count(k))
		}
	}
	if b.SideToMove == White {
		h ^= zobristSideToMove
	}
	return h
}

// Verify checks every structural invariant of a well-formed position —
// no square claimed by both colors, exactly one king per side, no two
// unpromoted pawns of one color on a file, the full 40-piece inventory
// accounted for across board and hands — relaxed per Tsume's rules
// when b.Tsume is set. It is a debugging aid, grounded on zurichess's
// Position.Verify, never called on the hot path.
func (b *Board) Verify() error {
	if bb := b.byColor[Black].And(b.byColor[White]); bb.Any() {
		return fmt.Errorf("shogi: square %v claimed by both colors", bb.First())
	}
	for col := Color(0); col < Color(ColorArraySize); col++ {
		kings := b.byColor[col].And(b.byKind[King])
		if kings.Count() > 1 {
			return fmt.Errorf("shogi: %v has more than one king", col)
		}
		if kings.Count() == 0 && !(b.Tsume && col == Black) {
			return fmt.Errorf("shogi: %v is missing a king", col)
		}
	}
	if b.byColor[Black].And(b.byKind[Pawn]).Any() {
		for f := 0; f < 9; f++ {
			n := FileBb(File(f)).And(b.byColor[Black]).And(b.byKind[Pawn]).Count()
			if n > 1 {
				return fmt.Errorf("shogi: nifu: Black has %d pawns on file %d", n, f)
			}
		}
	}
	for f := 0; f < 9; f++ {
		n := FileBb(File(f)).And(b.byColor[White]).And(b.byKind[Pawn]).Count()
		if n > 1 {
			return fmt.Errorf("shogi: nifu: White has %d pawns on file %d", n, f)
		}
	}
	if b.Tsume {
		return nil
	}
	caps := map[Kind]int{Pawn: 18, Lance: 4, Knight: 4, Silver: 4, Gold: 4, Bishop: 2, Rook: 2, King: 2}
	for k, want := range caps {
		total := b.byKind[k].Count()
		if k != King {
			total += b.hands[Black].Count(k) + b.hands[White].Count(k)
		}
		if total != want {
			return fmt.Errorf("shogi: inventory mismatch for %v: have %d want %d", k, total, want)
		}
	}
	return nil
}

// Play applies m to the board and returns the resulting state. It
// never mutates b. It expects a move GenerateMoves produced for this
// exact position and panics with a *MoveError (programmer error
// belongs on the stack, not threaded through every caller as an error
// return) only in these cases: a drop of a kind the hand does not
// hold, a board move from an empty square or from a square holding the
// opponent's piece, and a promotion of a kind that cannot promote.
// Any other illegal move (a blocked path, an occupied drop square, a
// move that leaves the king in check, nifu, and so on) is not detected
// and is applied as given.
func (b Board) Play(m Move) Board {
	nb := b
	stm := b.SideToMove

	if m.IsDrop {
		if !b.hands[stm].Has(m.Kind) {
			panic(&MoveError{Move: m, Reason: EmptyHand})
		}
		nb.removeFromHand(stm, m.Kind)
		nb.put(NewPiece(stm, m.Kind), m.To)
	} else {
		pi := b.mailbox[m.From]
		if pi == NoPiece {
			panic(&MoveError{Move: m, Reason: EmptyFromSquare})
		}
		if pi.Color() != stm {
			panic(&MoveError{Move: m, Reason: WrongColor})
		}
		nb.remove(pi, m.From)
		if captured := b.mailbox[m.To]; captured != NoPiece {
			nb.remove(captured, m.To)
			nb.addToHand(stm, captured.Kind().Unpromoted())
		}
		newKind := pi.Kind()
		if m.Promote {
			if !newKind.CanPromote() {
				panic(&MoveError{Move: m, Reason: CannotPromote})
			}
			newKind = newKind.Promoted()
		}
		nb.put(NewPiece(stm, newKind), m.To)
	}

	nb.SideToMove = stm.Opposite()
	nb.hash ^= zobristSideToMove
	nb.Ply = b.Ply + 1
	nb.checkers, nb.pinned = nb.computeCheckersPinned()
	return nb
}

// NullMove flips the side to move without making a move, only legal
// when the mover is not currently in check. Shogi has no
// en-passant-style state to clear.
func (b Board) NullMove() (Board, bool) {
	if b.checkers.Any() {
		return Board{}, false
	}
	nb := b
	nb.SideToMove = b.SideToMove.Opposite()
	nb.hash ^= zobristSideToMove
	nb.Ply = b.Ply + 1
	nb.checkers, nb.pinned = nb.computeCheckersPinned()
	return nb, true
}

// IsLegal reports whether m is a legal move for the side to move in
// b. It is a convenience built on GenerateMoves, not a hot-path
// primitive.
func (b *Board) IsLegal(m Move) bool {
	found := false
	b.GenerateMoves(func(pm PieceMoves) bool {
		pm.Each(func(mv Move) bool {
			if mv == m {
				found = true
				return false
			}
			return true
		})
		return !found
	})
	return found
}

// attackersTo returns every piece of color attacker that attacks sq,
// given occupancy occ, using the "symmetry of attack" trick: a piece
// of kind k and color attacker standing at s attacks sq iff a piece of
// the same kind, owned by sq's own side, standing at sq would attack
// s. So probing with kind k from sq using the *defending* color's
// movement pattern and intersecting with attacker's pieces of kind k
// finds exactly the attacking squares.
func (b *Board) attackersTo(sqr Square, defender Color, occ BitBoard) BitBoard {
	attacker := defender.Opposite()
	var result BitBoard
	for k := KindMinValue; k <= KindMaxValue; k++ {
		candidates := b.byKind[k].And(b.byColor[attacker])
		if candidates.Empty() {
			continue
		}
		result = result.Or(Attack(k, defender, sqr, occ).And(candidates))
	}
	return result
}

// computeCheckersPinned recomputes checkers/pinned for the (possibly
// absent, in Tsume) king of b.SideToMove, grounded on zurichess's
// GetAttacker "smallest attacking figure" trick generalized to the
// full kind enumeration and to pin detection.
func (b *Board) computeCheckersPinned() (BitBoard, BitBoard) {
	stm := b.SideToMove
	king := b.King(stm)
	if king == SquareNone {
		return BbEmpty, BbEmpty
	}
	occ := b.Occupied()
	checkers := b.attackersTo(king, stm, occ)

	enemy := stm.Opposite()
	var pinned BitBoard
	sliderKinds := [5]Kind{Lance, Bishop, Rook, PromBishop, PromRook}
	enemyOnly := b.byColor[enemy]
	for _, k := range sliderKinds {
		enemySliders := b.byKind[k].And(b.byColor[enemy])
		if enemySliders.Empty() {
			continue
		}
		xray := Attack(k, stm, king, enemyOnly)
		pinners := xray.And(enemySliders)
		for pinners.Any() {
			p := pinners.Next()
			between := squaresBetween(king, p)
			own := between.And(b.byColor[stm])
			if own.Count() == 1 {
				pinned = pinned.Or(own)
			}
		}
	}
	return checkers, pinned
}
