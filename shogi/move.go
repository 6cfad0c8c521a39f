package shogi

import "fmt"

// Move is a tagged value: either a board move (From/To/Promote) or a
// drop (Kind/To). Never both; IsDrop selects which fields are live. A
// Move is self-describing and carries no color — the side to move is
// read off the Board it is applied to, the same way zurichess reads
// Position.SideToMove rather than stamping it onto every Move.
type Move struct {
	IsDrop  bool
	From    Square // board moves only
	To      Square
	Promote bool // board moves only
	Kind    Kind // drops only: which piece is dropped
}

// MakeMove builds a board move.
func MakeMove(from, to Square, promote bool) Move {
	return Move{From: from, To: to, Promote: promote}
}

// MakeDrop builds a drop of kind k onto to.
func MakeDrop(k Kind, to Square) Move {
	return Move{IsDrop: true, Kind: k, To: to}
}

func (m Move) String() string {
	if m.IsDrop {
		return fmt.Sprintf("%s*%v", m.Kind, m.To)
	}
	if m.Promote {
		return fmt.Sprintf("%v%v+", m.From, m.To)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// PieceMoves is a dense batch of moves sharing a single origin (board
// moves) or a single dropped kind (drops). It is the unit the legal
// move generator emits and the sink consumes, letting the generator
// avoid materializing one Move value per destination on the hot path.
type PieceMoves struct {
	Piece Piece // moving/dropped piece
	From  Square // SquareNone for drops

	// Targets is the set of destination squares reachable. For board
	// moves that are legal without promotion, ^PromoteMask is implied.
	Targets BitBoard
	// PromoteMask is the subset of Targets for which a promoted arrival
	// is legal. ForceMask is the subset of PromoteMask for which
	// arriving unpromoted would leave the piece with no legal move from
	// its own destination square, so promotion is mandatory and only
	// the promoted Move is emitted.
	PromoteMask BitBoard
	ForceMask   BitBoard
}

// IsDrop reports whether this batch represents drops rather than board
// moves.
func (pm PieceMoves) IsDrop() bool { return pm.From == SquareNone }

// Len returns the number of distinct Move values this batch expands
// to — more than Targets.Count() when some targets yield both a
// promoted and unpromoted Move.
func (pm PieceMoves) Len() int {
	n := pm.Targets.Count()
	n += pm.PromoteMask.AndNot(pm.ForceMask).Count()
	return n
}

// Each calls fn once per Move the batch expands to, stopping early if
// fn returns false. This is the zero-allocation way to consume a
// PieceMoves batch; ForEach over Targets instead of building a slice
// keeps generate_moves allocation-free end to end.
func (pm PieceMoves) Each(fn func(Move) bool) bool {
	targets := pm.Targets
	for targets.Any() {
		to := targets.Next()
		forcedPromote := pm.ForceMask.Has(to)
		canPromote := pm.PromoteMask.Has(to)

		if pm.IsDrop() {
			if !fn(MakeDrop(pm.Piece.Kind(), to)) {
				return false
			}
			continue
		}
		if !forcedPromote {
			if !fn(MakeMove(pm.From, to, false)) {
				return false
			}
		}
		if canPromote {
			if !fn(MakeMove(pm.From, to, true)) {
				return false
			}
		}
	}
	return true
}

// Sink consumes PieceMoves batches as they are produced by
// GenerateMoves/GenerateChecks. Returning false stops generation
// promptly, before any further batch is computed.
type Sink func(PieceMoves) bool

// Collect appends every Move in every batch pushed through the
// returned Sink into *dst. It is the bridge for callers (tests,
// perft) that want a plain slice instead of streaming consumption.
func Collect(dst *[]Move) Sink {
	return func(pm PieceMoves) bool {
		pm.Each(func(m Move) bool {
			*dst = append(*dst, m)
			return true
		})
		return true
	}
}
