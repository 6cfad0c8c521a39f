package shogi

// movegen.go is the legal move generator, grounded on zurichess's
// Position.GenerateMoves/genKnightMoves/genBishopMoves/
// genRookMoves/genKingMovesNear family, folded here into the single
// GenerateMoves function: king moves first, then one loop over the
// board kinds, then one loop over the droppable kinds. Unlike
// zurichess, which generates pseudo-legal moves and lets the search
// filter illegal ones after DoMove, this generator only ever emits
// legal moves: every non-king batch is restricted in advance by the
// checker-interposition mask and the mover's own pin line, so no
// generated move ever needs to be played and unplayed to find out it
// was illegal.

// droppableKindsOrder lists every kind a GenerateMoves call considers
// for dropping, in a fixed, cheap-to-iterate order.
var droppableKindsOrder = [7]Kind{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook}

// boardKindsOrder lists every kind a GenerateMoves call considers for
// board moves, King first so the king's own safety is resolved before
// any check-evasion filtering is applied to the rest.
var boardKindsOrder = [14]Kind{
	King, Gold, Silver, Knight, Lance, Pawn, Bishop, Rook,
	PromPawn, PromLance, PromKnight, PromSilver, PromBishop, PromRook,
}

// forcedPromotionMask returns the subset of targets for which a piece
// of kind k and color col landing there has no legal future move
// unless promoted: Pawn/Lance on the last rank, Knight on the last two
// ranks.
func forcedPromotionMask(k Kind, col Color, targets BitBoard) BitBoard {
	switch k {
	case Pawn, Lance:
		return targets.And(RankBb(col.LastRank()))
	case Knight:
		return targets.And(col.LastTwoRanks())
	default:
		return BbEmpty
	}
}

// promotionMask returns the subset of targets for which a board move
// of kind k, col from `from` may optionally arrive promoted: either
// endpoint lies in the promotion zone.
func promotionMask(k Kind, col Color, from Square, targets BitBoard) BitBoard {
	if !k.CanPromote() {
		return BbEmpty
	}
	zone := PromotionZone(col)
	if !zone.Has(from) {
		targets = targets.And(zone)
	}
	return targets
}

// GenerateMoves streams every legal move of the side to move through
// sink as a sequence of PieceMoves batches. It returns false if sink
// requested an early stop.
func (b *Board) GenerateMoves(sink Sink) bool {
	stm := b.SideToMove
	king := b.King(stm)
	occ := b.Occupied()
	own := b.byColor[stm]

	var kingTargets BitBoard
	if king != SquareNone {
		occNoKing := occ.AndNot(bit(king))
		candidates := Attack(King, stm, king, occ).AndNot(own)
		for candidates.Any() {
			to := candidates.Next()
			if b.attackersTo(to, stm, occNoKing).Empty() {
				kingTargets = kingTargets.Or(bit(to))
			}
		}
		if !sink(PieceMoves{Piece: NewPiece(stm, King), From: king, Targets: kingTargets}) {
			return false
		}
	}

	numCheckers := b.checkers.Count()
	if numCheckers >= 2 {
		// Double check: only the king can move.
		return true
	}

	allowed := BbAll
	if numCheckers == 1 {
		checkerSq := b.checkers.First()
		allowed = squaresBetween(king, checkerSq).Or(bit(checkerSq))
	}

	for _, k := range boardKindsOrder {
		if k == King {
			continue
		}
		pieces := b.byKind[k].And(own)
		for pieces.Any() {
			from := pieces.Next()
			targets := Attack(k, stm, from, occ).AndNot(own)
			if b.pinned.Has(from) {
				targets = targets.And(lineThrough(king, from))
			}
			targets = targets.And(allowed)
			if targets.Empty() {
				continue
			}
			promote := promotionMask(k, stm, from, targets)
			force := forcedPromotionMask(k, stm, targets)
			if !sink(PieceMoves{Piece: NewPiece(stm, k), From: from, Targets: targets, PromoteMask: promote, ForceMask: force}) {
				return false
			}
		}
	}

	if numCheckers >= 1 {
		allowed = squaresBetween(king, b.checkers.First())
	}
	empty := occ.Not()
	for _, k := range droppableKindsOrder {
		if !b.hands[stm].Has(k) {
			continue
		}
		targets := empty.And(allowed)
		switch k {
		case Pawn:
			targets = targets.AndNot(RankBb(stm.LastRank()))
			pawns := b.byKind[Pawn].And(own)
			for f := 0; f < 9; f++ {
				if pawns.And(FileBb(File(f))).Any() {
					targets = targets.AndNot(FileBb(File(f)))
				}
			}
			targets = targets.AndNot(uchiFuZumeSquares(b, stm, targets))
		case Lance:
			targets = targets.AndNot(RankBb(stm.LastRank()))
		case Knight:
			targets = targets.AndNot(stm.LastTwoRanks())
		}
		if targets.Empty() {
			continue
		}
		if !sink(PieceMoves{Piece: NewPiece(stm, k), From: SquareNone, Targets: targets}) {
			return false
		}
	}
	return true
}

// uchiFuZumeSquares returns the subset of candidates at which a Pawn
// drop by stm would deliver an illegal checkmate. It simulates each
// candidate drop that gives check and asks whether the opponent has
// any legal reply at all, the simplest equivalent of the constructive
// flight/capture/block check: this is not hot-path code, since a pawn
// drop giving check at all is rare, so the extra move-generation pass
// is an acceptable cost for a simple, obviously-correct
// implementation.
func uchiFuZumeSquares(b *Board, stm Color, candidates BitBoard) BitBoard {
	enemy := stm.Opposite()
	enemyKing := b.King(enemy)
	if enemyKing == SquareNone {
		return BbEmpty
	}
	checkSq := Attack(Pawn, enemy, enemyKing, b.Occupied())
	drop := candidates.And(checkSq)
	if drop.Empty() {
		return BbEmpty
	}
	to := drop.First()
	next := b.Play(MakeDrop(Pawn, to))
	hasReply := false
	next.GenerateMoves(func(pm PieceMoves) bool {
		if pm.Targets.Any() {
			hasReply = true
			return false
		}
		return true
	})
	if hasReply {
		return BbEmpty
	}
	return bit(to)
}

// GenerateChecks streams every legal move of the side to move that
// places the opponent in check (including discovered checks) through
// sink. It is defined directly in terms of GenerateMoves plus a
// play-and-test pass rather than an attack-set-after-the-move algebra:
// discovered checks (a piece leaving a friendly slider's ray as it
// moves) are exactly the kind of case that sort of algebra gets subtly
// wrong, while "play the move, look at the resulting checkers" is
// correct by construction.
func (b *Board) GenerateChecks(sink Sink) bool {
	var moves []Move
	b.GenerateMoves(Collect(&moves))
	for _, m := range moves {
		next := b.Play(m)
		if next.checkers.Empty() {
			continue
		}
		pi := b.mailbox[m.From]
		from := m.From
		if m.IsDrop {
			pi = NewPiece(b.SideToMove, m.Kind)
			from = SquareNone
		}
		pm := PieceMoves{Piece: pi, From: from, Targets: bit(m.To)}
		if !m.IsDrop && m.Promote {
			pm.PromoteMask = bit(m.To)
			pm.ForceMask = bit(m.To)
		}
		if !sink(pm) {
			return false
		}
	}
	return true
}
