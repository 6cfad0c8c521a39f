// Package tablegen (re)materializes the shogi package's magic-bitboard
// slider tables. It is a pure function of the shogi package's
// exported bitboard/attack primitives: no CLI, no filesystem
// access — a caller (a //go:generate tool, a one-off `go run`, or a
// test) feeds it a ray function and reads back literal tables to
// check into shogi/attack_tables_gen.go.
//
// Grounded on zurichess's wizard/magicInfo/tryMagicNumber/randMagic/
// searchMagic/SearchMagics machinery (engine/attack.go), generalized
// from one 64-bit occupancy word to the two-limb occupancy shogi.
// BitBoard uses for its 81 squares: every occupancy subset, magic
// candidate and hash index is now a (lo, hi) pair, and the perfect-
// hash test folds the two limbs' partial products with XOR instead of
// hashing a single word (see shogi/attack_magic.go for why a single
// combined fold is unsound once a ray crosses the square-64 boundary).
package tablegen

import "math/rand"

// BitBoard mirrors shogi.BitBoard's two-limb layout. tablegen does not
// import the shogi package (it is meant to be usable to bootstrap that
// package's own tables), so it carries its own minimal copy of the
// shape rather than an interface.
type BitBoard struct {
	Lo, Hi uint64
}

// RayFunc computes the true attack set for a slider at sq given
// occupancy occ, ignoring color. It is what the search is fit against
// — typically one of the shogi package's qugiy* functions, called
// through a small adapter so tablegen stays decoupled from shogi.
type RayFunc func(sq int, occ BitBoard) BitBoard

// Magic is one (piece, square) entry: the two masks and two magic
// multipliers used to hash a masked occupancy into an index, plus the
// materialized attack table itself.
type Magic struct {
	MaskLo, MaskHi   uint64
	MagicLo, MagicHi uint64
	IndexBits        uint
	Store            []BitBoard
}

func popcnt64(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

func sub(a, b BitBoard) BitBoard {
	lo := a.Lo - b.Lo
	borrow := uint64(0)
	if a.Lo < b.Lo {
		borrow = 1
	}
	hi := a.Hi - b.Hi - borrow
	return BitBoard{lo, hi}
}

func and(a, b BitBoard) BitBoard   { return BitBoard{a.Lo & b.Lo, a.Hi & b.Hi} }
func empty(a BitBoard) bool        { return a.Lo == 0 && a.Hi == 0 }
func index(lo, hi, ml, mh uint64, bits uint) uint64 {
	prod := lo*ml ^ hi*mh
	return prod >> (64 - bits)
}

// Wizard searches for magic numbers for one slider, the direct
// analogue of zurichess's wizard type: Mask computes the relevant-
// occupancy mask for a square (border squares excluded, since they
// never change the attack set once something blocks them), Ray is the
// ground-truth attack function the search fits against, and Rand
// drives the candidate multiplier draws, seeded by the caller so a
// regenerated table run is reproducible and its seed can be recorded
// alongside it.
type Wizard struct {
	Ray  RayFunc
	Mask func(sq int) BitBoard
	Rand *rand.Rand

	MinIndexBits uint
	MaxIndexBits uint
}

// randMagic draws a sparse 64-bit candidate, the same AND-of-three
// construction zurichess's randMagic uses to bias towards few set
// bits (high-entropy multipliers tend to make poor magics).
func (w *Wizard) randMagic() uint64 {
	r := uint64(w.Rand.Int63())
	r &= uint64(w.Rand.Int63())
	r &= uint64(w.Rand.Int63())
	return r<<1 | 1
}

// enumerate runs the Carry-Rippler subset enumeration of mask and
// returns the reference occupancy/attack pairs the search validates
// candidate magics against.
func (w *Wizard) enumerate(sq int, mask BitBoard) (occs, attacks []BitBoard) {
	occ := BitBoard{}
	for {
		occs = append(occs, occ)
		attacks = append(attacks, w.Ray(sq, occ))
		occ = and(sub(occ, mask), mask)
		if empty(occ) {
			break
		}
	}
	return occs, attacks
}

// trySquare looks for a pair of magics giving a perfect hash at
// indexBits for one square, the generalization of zurichess's
// tryMagicNumber to a two-limb fold.
func (w *Wizard) trySquare(sq int, mask BitBoard, indexBits uint, occs, attacks []BitBoard) (Magic, bool) {
	size := uint64(1) << indexBits
	store := make([]BitBoard, size)
	used := make([]bool, size)

	var magicLo, magicHi uint64
	for {
		magicLo, magicHi = w.randMagic(), w.randMagic()
		if popcnt64((mask.Lo*magicLo)^(mask.Hi*magicHi)) >= 6 {
			break
		}
	}

	for j := range store {
		used[j] = false
	}
	ok := true
	for i, occ := range occs {
		idx := index(occ.Lo, occ.Hi, magicLo, magicHi, indexBits)
		if used[idx] && (store[idx] != attacks[i]) {
			ok = false
			break
		}
		used[idx] = true
		store[idx] = attacks[i]
	}
	if !ok {
		return Magic{}, false
	}
	return Magic{mask.Lo, mask.Hi, magicLo, magicHi, indexBits, store}, true
}

// Search finds a magic for sq, trying index widths from MinIndexBits
// up to MaxIndexBits and keeping the smallest that yields a perfect
// hash within a bounded number of random trials per width — the same
// shrink-then-settle strategy as zurichess's searchMagic, adapted
// from "improve on the current best forever" to "stop at the first
// width that works", since table generation here runs offline once
// rather than as a continuously-improving background search.
func (w *Wizard) Search(sq int) Magic {
	mask := w.Mask(sq)
	occs, attacks := w.enumerate(sq, mask)

	const trialsPerWidth = 2000
	for bits := w.MinIndexBits; bits <= w.MaxIndexBits; bits++ {
		for t := 0; t < trialsPerWidth; t++ {
			if m, ok := w.trySquare(sq, mask, bits, occs, attacks); ok {
				return m
			}
		}
	}
	// Fall back to the widest width with enough trials to all but
	// guarantee success (Carry-Rippler subsets of an n-bit mask need
	// exactly 2^n buckets for a collision-free identity hash).
	bits := uint(popcnt64(mask.Lo) + popcnt64(mask.Hi))
	for {
		if m, ok := w.trySquare(sq, mask, bits, occs, attacks); ok {
			return m
		}
	}
}
