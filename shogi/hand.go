package shogi

import "fmt"

// Hand is a per-color multiset of captured, droppable pieces, packed
// into a single integer the way zurichess packs castling rights into
// a bitmask Castle — except each slot here is a small counter rather
// than a single bit. Slot order and widths are fixed at package scope
// so that a Hand can be compared, hashed, and zero-valued for "empty"
// without any allocation.
type Hand uint32

// handSlot describes the bit layout of one droppable kind within a
// packed Hand: its bit offset, its field width, and its cap.
type handSlot struct {
	shift uint
	mask  uint32
	cap   int
}

// handLayout is indexed by Kind; only the seven droppable kinds have a
// non-zero width.
var handLayout = [KindArraySize]handSlot{}

func init() {
	type spec struct {
		kind Kind
		cap  int
	}
	specs := []spec{
		{Pawn, 18},
		{Lance, 4},
		{Knight, 4},
		{Silver, 4},
		{Gold, 4},
		{Bishop, 2},
		{Rook, 2},
	}
	shift := uint(0)
	for _, s := range specs {
		width := bitsFor(s.cap)
		handLayout[s.kind] = handSlot{shift: shift, mask: (uint32(1) << width) - 1, cap: s.cap}
		shift += width
	}
}

// bitsFor returns the number of bits needed to represent 0..n.
func bitsFor(n int) uint {
	w := uint(0)
	for (1 << w) <= n {
		w++
	}
	return w
}

// HandCap returns the maximum number of k a hand may ever hold.
func HandCap(k Kind) int { return handLayout[k].cap }

// Count returns how many of kind k are in the hand.
func (h Hand) Count(k Kind) int {
	s := handLayout[k]
	return int(uint32(h)>>s.shift) & int(s.mask)
}

// Has reports whether the hand holds at least one of kind k.
func (h Hand) Has(k Kind) bool { return h.Count(k) > 0 }

// Empty reports whether the hand holds no pieces at all.
func (h Hand) Empty() bool { return h == 0 }

// Add returns a hand with one more of kind k. Panics if k is not
// droppable or the cap would be exceeded, mirroring the library's
// play-on-illegal-input panic policy: Add is only ever called with a
// piece that was just captured, which can never overflow the fixed
// 18/4/4/4/4/2/2 per-kind inventory of a standard game.
func (h Hand) Add(k Kind) Hand {
	s := handLayout[k]
	n := h.Count(k)
	if n >= s.cap {
		panic(fmt.Sprintf("shogi: hand overflow for %v", k))
	}
	return h &^ Hand(s.mask<<s.shift) | Hand(uint32(n+1)<<s.shift)
}

// Remove returns a hand with one fewer of kind k. Panics if the hand
// holds none, since a caller should have checked Has first (EmptyHand
// is a MoveError, not a panic condition reachable from here).
func (h Hand) Remove(k Kind) Hand {
	s := handLayout[k]
	n := h.Count(k)
	if n <= 0 {
		panic(fmt.Sprintf("shogi: removing %v from empty hand slot", k))
	}
	return h &^ Hand(s.mask<<s.shift) | Hand(uint32(n-1)<<s.shift)
}

// droppableKinds lists the seven kinds a Hand can ever contain, in the
// conventional display order.
var droppableKinds = [...]Kind{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

func (h Hand) String() string {
	if h.Empty() {
		return "-"
	}
	s := ""
	for _, k := range droppableKinds {
		if n := h.Count(k); n > 0 {
			if n > 1 {
				s += fmt.Sprintf("%d", n)
			}
			s += k.String()
		}
	}
	return s
}
