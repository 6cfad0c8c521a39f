// Package perft counts leaf nodes of the legal-move tree to a fixed
// depth, the standard move-generator correctness/benchmark tool. It is
// not part of the hot path the shogi package itself exposes, but the
// counting search here is still written the way zurichess's
// perft/perft.go counts, including its capture/promotion/drop
// breakdown, reporting totals with golang.org/x/text/message the way
// frankkopp/FrankyGo's Attacks type formats large counters for a
// human reader.
package perft

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hayashogi/shogicore/shogi"
)

var printer = message.NewPrinter(language.English)

// Counters tallies leaf-level move categories the way zurichess's
// counters struct does for chess (captures/enpassant/castles/
// promotions), adapted to Shogi's categories (captures/promotions/
// drops).
type Counters struct {
	Nodes      uint64
	Captures   uint64
	Promotions uint64
	Drops      uint64
	Checks     uint64
}

// Add accumulates ot into co.
func (co *Counters) Add(ot Counters) {
	co.Nodes += ot.Nodes
	co.Captures += ot.Captures
	co.Promotions += ot.Promotions
	co.Drops += ot.Drops
	co.Checks += ot.Checks
}

// String formats co with thousands separators, the locale-aware
// formatting frankkopp/FrankyGo's Attacks type uses for large leaf
// counts.
func (co Counters) String() string {
	return printer.Sprintf("nodes=%d captures=%d promotions=%d drops=%d checks=%d",
		co.Nodes, co.Captures, co.Promotions, co.Drops, co.Checks)
}

// Count returns the perft(depth) leaf count from b, with the
// move-category breakdown of the moves played at the last ply (the
// moves that lead to the counted leaves), mirroring zurichess's perft function's structure:
// generate, recurse, backtrack — except here "backtrack" is simply
// discarding the Board value Play returned, since shogi.Board carries
// no undo stack.
func Count(b shogi.Board, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var moves []shogi.Move
	b.GenerateMoves(shogi.Collect(&moves))

	var total Counters
	for _, m := range moves {
		next := b.Play(m)
		if depth == 1 {
			if !m.IsDrop && b.PieceAt(m.To) != shogi.NoPiece {
				total.Captures++
			}
			if !m.IsDrop && m.Promote {
				total.Promotions++
			}
			if m.IsDrop {
				total.Drops++
			}
			if next.InCheck() {
				total.Checks++
			}
		}
		total.Add(Count(next, depth-1))
	}
	return total
}

// Leaves returns only the node count at depth: perft(1) == 30 and
// perft(2) == 900 from the standard starting position are the classic
// sanity checks for a Shogi move generator.
func Leaves(b shogi.Board, depth int) uint64 {
	return Count(b, depth).Nodes
}

// Divide runs perft(depth-1) on every legal child of b and returns a
// map from that move's USI-independent string form to its leaf count,
// the standard debugging tool for isolating a move-generation bug to
// one branch (grounded on zurichess's perft split).
func Divide(b shogi.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	var moves []shogi.Move
	b.GenerateMoves(shogi.Collect(&moves))
	for _, m := range moves {
		next := b.Play(m)
		result[m.String()] = Leaves(next, depth-1)
	}
	return result
}
