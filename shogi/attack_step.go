package shogi

// attack_step.go precomputes the fixed-offset attack patterns for the
// non-sliding kinds (King, Gold, Silver, Knight, Pawn), the same way
// zurichess precomputes KnightAttack/KingAttack tables indexed by
// square: a table of 81 entries per (kind, color) pair built once in
// init() from a small set of (file,rank) deltas, rather than recomputed
// on every call.

// stepTable[kind][color][sq] is the attack bitboard for a non-sliding
// piece of kind and color standing on sq. Only the entries for Pawn,
// Knight, Silver, Gold (and its promoted-piece aliases) and King are
// populated; sliders are handled by attack_magic.go/attack_qugiy.go.
var stepTable [KindArraySize][ColorArraySize][NumSquares]BitBoard

// goldDeltas are Gold's six candidate steps from Black's perspective
// (forward is decreasing rank): one step in any direction except the
// two backward diagonals.
var goldDeltas = [][2]int{
	{0, -1}, {1, -1}, {-1, -1}, // forward three
	{1, 0}, {-1, 0}, // sideways
	{0, 1}, // straight back
}

var silverDeltas = [][2]int{
	{0, -1}, {1, -1}, {-1, -1}, // forward three
	{1, 1}, {-1, 1}, // backward diagonals
}

var kingDeltas = [][2]int{
	{0, -1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0},
	{0, 1}, {1, 1}, {-1, 1},
}

var knightDeltas = [][2]int{
	{1, -2}, {-1, -2},
}

var pawnDeltas = [][2]int{
	{0, -1},
}

// mirrorDeltas flips a Black-perspective delta set to White's, since
// White advances towards increasing rank.
func mirrorDeltas(ds [][2]int) [][2]int {
	out := make([][2]int, len(ds))
	for i, d := range ds {
		out[i] = [2]int{d[0], -d[1]}
	}
	return out
}

func buildStepTable(k Kind, deltasBlack [][2]int) {
	deltasWhite := mirrorDeltas(deltasBlack)
	for sq := Square(0); sq < NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())
		for _, d := range deltasBlack {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 9 && nr >= 0 && nr < 9 {
				stepTable[k][Black][sq] = stepTable[k][Black][sq].Or(bit(Square(nf*9 + nr)))
			}
		}
		for _, d := range deltasWhite {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 9 && nr >= 0 && nr < 9 {
				stepTable[k][White][sq] = stepTable[k][White][sq].Or(bit(Square(nf*9 + nr)))
			}
		}
	}
}

func init() {
	buildStepTable(Pawn, pawnDeltas)
	buildStepTable(Knight, knightDeltas)
	buildStepTable(Silver, silverDeltas)
	buildStepTable(King, kingDeltas)
	buildStepTable(Gold, goldDeltas)
	// The promoted Pawn/Lance/Knight/Silver all move like Gold.
	stepTable[PromPawn] = stepTable[Gold]
	stepTable[PromLance] = stepTable[Gold]
	stepTable[PromKnight] = stepTable[Gold]
	stepTable[PromSilver] = stepTable[Gold]
}

// kingStepAttack returns the king's single-step attack pattern from sq,
// used both for the King piece itself and as the additional step added
// to a promoted Bishop or Rook.
func kingStepAttack(sq Square) BitBoard {
	return stepTable[King][Black][sq]
}
