package shogi

import (
	"fmt"
	"strconv"
	"strings"
)

// sfen.go is the SFEN codec, grounded on zurichess's convert.go:
// ParsePiecePlacement/FormatPiecePlacement walk the board rank by
// rank using the same symbol tables
// (symbolToPiece/pieceToSymbol), generalized from FEN's 8 ranks and
// castling/en-passant trailer to SFEN's 9 ranks, the "+" promotion
// prefix, and the hand-count grammar. ParseSideToMove/FormatSideToMove
// carry over almost unchanged (b/w instead of w/b literal symbols).

var kindLetter = [KindArraySize]byte{
	Pawn: 'P', Lance: 'L', Knight: 'N', Silver: 'S', Gold: 'G',
	Bishop: 'B', Rook: 'R', King: 'K',
}

var letterToKind = map[byte]Kind{
	'P': Pawn, 'L': Lance, 'N': Knight, 'S': Silver, 'G': Gold,
	'B': Bishop, 'R': Rook, 'K': King,
}

// pieceSymbol returns the SFEN letter(s) for pi: uppercase for Black,
// lowercase for White, "+" prefixed when promoted.
func pieceSymbol(pi Piece) string {
	k := pi.Kind()
	base := k.Unpromoted()
	letter := string(kindLetter[base])
	if pi.Color() == White {
		letter = strings.ToLower(letter)
	}
	if k.IsPromoted() {
		letter = "+" + letter
	}
	return letter
}

// FromSFEN parses a full SFEN record: placement, side to move, hand,
// ply.
func FromSFEN(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return Board{}, &SfenError{Kind: BadRankCount, Detail: fmt.Sprintf("expected 4 fields, got %d", len(fields))}
	}
	var b Board
	if err := parsePlacement(fields[0], &b); err != nil {
		return Board{}, err
	}
	switch fields[1] {
	case "b":
		b.SideToMove = Black
	case "w":
		b.SideToMove = White
	default:
		return Board{}, &SfenError{Kind: BadSideToMove, Detail: fields[1]}
	}
	if err := parseHand(fields[2], &b); err != nil {
		return Board{}, err
	}
	ply, err := strconv.Atoi(fields[3])
	if err != nil || ply <= 0 {
		return Board{}, &SfenError{Kind: BadPly, Detail: fields[3]}
	}
	b.Ply = ply

	blackKing := b.byColor[Black].And(b.byKind[King]).Any()
	whiteKing := b.byColor[White].And(b.byKind[King]).Any()
	switch {
	case whiteKing && !blackKing:
		b.Tsume = true
		log.Debugf("sfen: no black king, treating %q as a tsume position", s)
		fillTsumeHand(&b)
	case !whiteKing:
		return Board{}, &SfenError{Kind: MissingKing, Detail: "white"}
	}

	if !b.Tsume {
		if err := checkInventory(&b); err != nil {
			return Board{}, err
		}
	}

	b.hash = b.FullRecomputeHash()
	b.checkers, b.pinned = b.computeCheckersPinned()
	return b, nil
}

// parsePlacement fills b's squares from the 9-rank placement field.
// Ranks run top to bottom (rank 0..8); within a rank, files run from
// File 0 up to File 8, left-to-right from Black's view, which is USI
// file 9 down to file 1 as in conventional SFEN.
func parsePlacement(s string, b *Board) error {
	ranks := strings.Split(s, "/")
	if len(ranks) != 9 {
		return &SfenError{Kind: BadRankCount, Detail: fmt.Sprintf("got %d", len(ranks))}
	}
	for r, rankStr := range ranks {
		f := 0
		promoted := false
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			switch {
			case c == '+':
				promoted = true
			case c >= '1' && c <= '9':
				if promoted {
					return &SfenError{Kind: BadPiece, Detail: "'+' before empty-square count"}
				}
				f += int(c - '0')
			default:
				upper := c
				if upper >= 'a' && upper <= 'z' {
					upper -= 'a' - 'A'
				}
				k, ok := letterToKind[upper]
				if !ok {
					return &SfenError{Kind: BadPiece, Detail: string(c)}
				}
				if promoted {
					if k = k.Promoted(); k == NoKind {
						return &SfenError{Kind: BadPiece, Detail: "piece cannot promote: " + string(c)}
					}
				}
				col := Black
				if c >= 'a' && c <= 'z' {
					col = White
				}
				if f > 8 {
					return &SfenError{Kind: BadFileSum, Detail: fmt.Sprintf("rank %d overflows", r)}
				}
				b.put(NewPiece(col, k), sq(f, r))
				f++
				promoted = false
			}
		}
		if f != 9 {
			return &SfenError{Kind: BadFileSum, Detail: fmt.Sprintf("rank %d sums to %d files", r, f)}
		}
	}
	return nil
}

// parseHand fills both hands from the hand field: "-" or a sequence of
// [count]<letter> tokens, uppercase for Black, lowercase for White.
func parseHand(s string, b *Board) error {
	if s == "-" {
		return nil
	}
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		count := 1
		if i > start {
			n, err := strconv.Atoi(s[start:i])
			if err != nil {
				return &SfenError{Kind: BadHand, Detail: s}
			}
			count = n
		}
		if i >= len(s) {
			return &SfenError{Kind: BadHand, Detail: s}
		}
		letter := s[i]
		i++
		upper := letter
		col := Black
		if letter >= 'a' && letter <= 'z' {
			upper -= 'a' - 'A'
			col = White
		}
		k, ok := letterToKind[upper]
		if !ok || !k.Droppable() {
			return &SfenError{Kind: BadHand, Detail: string(letter)}
		}
		for n := 0; n < count; n++ {
			b.addToHand(col, k)
		}
	}
	return nil
}

// fillTsumeHand assigns to White's hand whatever is missing from the
// full inventory once placement and the explicit hand field have been
// parsed, the convention a Tsume (mating-problem) record uses to leave
// the attacker's reserve implicit.
func fillTsumeHand(b *Board) {
	caps := []struct {
		k   Kind
		cap int
	}{
		{Pawn, 18}, {Lance, 4}, {Knight, 4}, {Silver, 4}, {Gold, 4}, {Bishop, 2}, {Rook, 2},
	}
	for _, c := range caps {
		have := b.byKind[c.k].Count() + b.hands[Black].Count(c.k) + b.hands[White].Count(c.k)
		for have < c.cap {
			b.addToHand(White, c.k)
			have++
		}
	}
}

func checkInventory(b *Board) error {
	caps := map[Kind]int{Pawn: 18, Lance: 4, Knight: 4, Silver: 4, Gold: 4, Bishop: 2, Rook: 2, King: 2}
	for k, want := range caps {
		total := b.byKind[k].Count()
		if k != King {
			total += b.hands[Black].Count(k) + b.hands[White].Count(k)
		}
		if total != want {
			return &SfenError{Kind: InventoryMismatch, Detail: fmt.Sprintf("%v: have %d want %d", k, total, want)}
		}
	}
	return nil
}

// SFEN serializes b to its SFEN text form. It is the exact inverse of
// FromSFEN for any board FromSFEN can produce.
func (b *Board) SFEN() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		empties := 0
		for f := 0; f < 9; f++ {
			pi := b.mailbox[sq(f, r)]
			if pi == NoPiece {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteString(pieceSymbol(pi))
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if r != 8 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	sb.WriteString(formatHand(b))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.Ply))
	return sb.String()
}

func formatHand(b *Board) string {
	var sb strings.Builder
	for _, k := range droppableKindsOrder {
		for _, col := range [2]Color{Black, White} {
			n := b.hands[col].Count(k)
			if n == 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			letter := string(kindLetter[k])
			if col == White {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
