package shogi

// attack_qugiy.go implements the on-the-fly slider-attack algorithm
// named after the "Qugiy" subtract-and-xor trick: for a line of
// squares L containing a slider at s, with occupancy o
// restricted to L, the ray from s towards increasing square index is
//
//	(o ^ (o - 2*s)) & L
//
// a direct generalization of Gerd Isenberg's "o-2r" obstruction-
// difference idea from one 64-bit word to this package's two-limb
// BitBoard: sub() already performs correct 128-bit borrow propagation,
// so the identity holds unmodified. Squares below s along L never
// leak into the result because 2*s only ever borrows from bits above
// s's own.
//
// square indices increase file-major (square = file*9+rank), so S, E,
// NE and SE are all "increasing" directions and use the formula above
// directly. N, W, NW and SW are the mirror image: the occupancy, the
// slider bit and the line mask are all point-reflected through the
// board center (reverseBoard), the positive-direction formula is
// applied in the reflected coordinate system, and the result is
// reflected back. This needs no per-direction special casing beyond
// which line each ray lies on.
//
// The magic backend (attack_magic.go) is the default; this backend
// exists to be cross-tested against it and to stand in under the
// qugiy build tag.

// reverseSquare returns the point reflection of sq through the board
// center: file f, rank r maps to file 8-f, rank 8-r.
func reverseSquare(sq Square) Square {
	return NumSquares - 1 - sq
}

// reverseBoard point-reflects every square of bb through the board
// center. It is the identity that lets a single positive-direction
// formula serve both halves of every line.
func reverseBoard(bb BitBoard) BitBoard {
	out := BbEmpty
	for bb.Any() {
		sq := bb.Next()
		out = out.Or(bit(reverseSquare(sq)))
	}
	return out
}

// diagSumMask[k] holds every square with file+rank == k, k in 0..16.
// diagDiffMask[k] holds every square with file-rank == k-8, k in 0..16.
// Like the file/rank masks they are package variable initializers, so
// they are ready before the magic-table build in attack_magic.go's
// init() calls the functions below.
var diagSumMask, diagDiffMask = buildDiagMasks()

func buildDiagMasks() (sum, diff [17]BitBoard) {
	for f := 0; f < 9; f++ {
		for r := 0; r < 9; r++ {
			sq := Square(f*9 + r)
			sum[f+r] = sum[f+r].Or(bit(sq))
			diff[f-r+8] = diff[f-r+8].Or(bit(sq))
		}
	}
	return sum, diff
}

func sumDiagOf(sq Square) BitBoard {
	f, r := int(sq.File()), int(sq.Rank())
	return diagSumMask[f+r]
}

func diffDiagOf(sq Square) BitBoard {
	f, r := int(sq.File()), int(sq.Rank())
	return diagDiffMask[f-r+8]
}

// linePositive returns the ray from s along line, in the direction of
// increasing square index, stopping at and including the first
// blocker in occ.
func linePositive(occ BitBoard, s Square, line BitBoard) BitBoard {
	masked := occ.And(line)
	twoS := shiftLeft(bit(s), 1)
	diff := sub(masked, twoS)
	return masked.Xor(diff).And(line)
}

// lineNegative is linePositive mirrored to the decreasing-index
// direction via point reflection.
func lineNegative(occ BitBoard, s Square, line BitBoard) BitBoard {
	rAttack := linePositive(reverseBoard(occ), reverseSquare(s), reverseBoard(line))
	return reverseBoard(rAttack)
}

// qugiyRookAttack computes rook attacks on the fly: the union of the
// four half-line rays along s's file and rank.
func qugiyRookAttack(s Square, occ BitBoard) BitBoard {
	file := FileBb(s.File())
	rank := RankBb(s.Rank())
	return linePositive(occ, s, file). // S
						Or(lineNegative(occ, s, file)). // N
						Or(linePositive(occ, s, rank)). // E
						Or(lineNegative(occ, s, rank))  // W
}

// qugiyBishopAttack computes bishop attacks on the fly: the union of
// the four half-line rays along s's two diagonals.
func qugiyBishopAttack(s Square, occ BitBoard) BitBoard {
	sum := sumDiagOf(s)
	diff := diffDiagOf(s)
	return linePositive(occ, s, sum). // NE
						Or(lineNegative(occ, s, sum)). // SW
						Or(linePositive(occ, s, diff)). // SE
						Or(lineNegative(occ, s, diff))  // NW
}

// qugiyLanceAttack computes the single forward ray a lance of color
// col slides along from s.
func qugiyLanceAttack(s Square, col Color, occ BitBoard) BitBoard {
	file := FileBb(s.File())
	if col == Black {
		return lineNegative(occ, s, file) // N
	}
	return linePositive(occ, s, file) // S
}
