package shogi

import (
	"fmt"
	"strings"

	"github.com/clinaresl/table"
)

// render.go is a debugging aid, grounded on the clinaresl-pgnparser
// example's PgnBoard.String (pgntools), which builds an ASCII chess board with
// github.com/clinaresl/table rather than hand-rolled string
// concatenation. Generalized from an 8x8 board with the usual piece
// letters to a 9x9 board with Shogi's SFEN letters and a "v" prefix
// for White, matching Piece.String().

// Render returns a human-readable 9x9 board, file 9 (our File 0) on
// the left, rank a at the top, the way SFEN orders ranks.
func (b *Board) Render() string {
	spec := "||" + strings.Repeat("c", 9) + "||"
	tab, err := table.NewTable(spec)
	if err != nil {
		log.Errorf("shogi: render: %v", err)
		return b.SFEN()
	}
	tab.AddDoubleRule()
	for r := 0; r < 9; r++ {
		row := make([]any, 9)
		for f := 0; f < 9; f++ {
			pi := b.mailbox[sq(f, r)]
			row[f] = pi.String()
		}
		tab.AddRow(row...)
	}
	tab.AddDoubleRule()
	return fmt.Sprintf("%v\n%s\nto move: %v  black hand: %v  white hand: %v\n",
		tab, b.SFEN(), b.SideToMove, b.hands[Black], b.hands[White])
}
