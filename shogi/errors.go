package shogi

import "fmt"

// SfenErrorKind enumerates the ways an SFEN string can fail to parse.
type SfenErrorKind int

const (
	BadRankCount SfenErrorKind = iota
	BadFileSum
	BadPiece
	BadSideToMove
	BadHand
	BadPly
	InventoryMismatch
	MissingKing
)

var sfenErrorText = map[SfenErrorKind]string{
	BadRankCount:      "expected 9 ranks",
	BadFileSum:        "rank does not sum to 9 files",
	BadPiece:          "unrecognized piece letter",
	BadSideToMove:     "side to move must be 'b' or 'w'",
	BadHand:           "malformed hand field",
	BadPly:            "ply is not a positive integer",
	InventoryMismatch: "piece inventory does not sum to the full set",
	MissingKing:       "position is missing a king outside of Tsume mode",
}

// SfenError reports why an SFEN string could not be parsed.
type SfenError struct {
	Kind   SfenErrorKind
	Detail string
}

func (e *SfenError) Error() string {
	if e.Detail == "" {
		return "shogi: sfen: " + sfenErrorText[e.Kind]
	}
	return fmt.Sprintf("shogi: sfen: %s: %s", sfenErrorText[e.Kind], e.Detail)
}

// MoveReason enumerates why a move was rejected.
type MoveReason int

const (
	NotOnBoard MoveReason = iota
	EmptyFromSquare
	WrongColor
	BlockedByOwnPiece
	LeavesKingInCheck
	Nifu
	UchiFuZume
	LastRankDrop
	CannotPromote
	MustPromote
	EmptyHand
)

var moveReasonText = map[MoveReason]string{
	NotOnBoard:        "square is not on the board",
	EmptyFromSquare:   "source square is empty",
	WrongColor:        "piece does not belong to the side to move",
	BlockedByOwnPiece: "destination is occupied by a piece of the same color",
	LeavesKingInCheck: "move leaves the mover's king in check",
	Nifu:              "two unpromoted pawns of the same color on one file",
	UchiFuZume:        "pawn drop delivers checkmate",
	LastRankDrop:      "drop target has no future legal move for this kind",
	CannotPromote:     "this kind has no promoted form",
	MustPromote:       "this move must be promoted",
	EmptyHand:         "hand holds none of the requested kind",
}

// MoveError reports why play rejected a Move.
type MoveError struct {
	Move   Move
	Reason MoveReason
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("shogi: illegal move %v: %s", e.Move, moveReasonText[e.Reason])
}
