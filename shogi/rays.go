package shogi

// betweenBB[a][b] holds the squares strictly between a and b along a
// rank, file or diagonal, exclusive of both endpoints. It is empty for
// any pair not aligned on one of those eight directions. Precomputed
// once the way the slider tables are, since both the pin search (§4.6)
// and the checker-interposition mask need the same ray geometry.
var betweenBB [NumSquares][NumSquares]BitBoard

// rayDirs lists the eight (file,rank) unit steps a slider can move
// along, in no particular order — callers that care about a specific
// piece's legal directions filter on their own.
var rayDirs = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{1, -1}, {-1, -1}, {1, 1}, {-1, 1},
}

func init() {
	for a := Square(0); a < NumSquares; a++ {
		af, ar := int(a.File()), int(a.Rank())
		for _, d := range rayDirs {
			var acc BitBoard
			f, r := af+d[0], ar+d[1]
			for f >= 0 && f < 9 && r >= 0 && r < 9 {
				s := Square(f*9 + r)
				betweenBB[a][s] = acc
				acc = acc.Or(bit(s))
				f += d[0]
				r += d[1]
			}
		}
	}
}

// squaresBetween returns the squares strictly between a and b, or
// BbEmpty if the two are not aligned.
func squaresBetween(a, b Square) BitBoard { return betweenBB[a][b] }

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// lineThrough returns every on-board square collinear with a and s,
// running the full length of the board in both directions — the ray a
// pinned piece at s may still slide along, toward or away from a.
func lineThrough(a, s Square) BitBoard {
	af, ar := int(a.File()), int(a.Rank())
	sf, sr := int(s.File()), int(s.Rank())
	df, dr := sign(sf-af), sign(sr-ar)

	var line BitBoard
	for f, r := af, ar; f >= 0 && f < 9 && r >= 0 && r < 9; f, r = f+df, r+dr {
		line = line.Or(bit(Square(f*9 + r)))
	}
	for f, r := af-df, ar-dr; f >= 0 && f < 9 && r >= 0 && r < 9; f, r = f-df, r-dr {
		line = line.Or(bit(Square(f*9 + r)))
	}
	return line
}
