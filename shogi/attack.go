package shogi

// attack.go is the single entry point the rest of the package calls
// to get a piece's attack set: Attack dispatches sliders to the
// chosen backend (magic by default, qugiy under the qugiy build tag;
// see attack_backend.go), looks up the fixed step tables for
// non-sliding kinds, and adds the extra king-step mask a promoted
// Bishop or Rook gains over its unpromoted slide.

// Attack returns the set of squares a piece of kind k and color col
// standing on sq attacks, given the board's full occupancy occ. occ
// must include every piece on the board regardless of color; Attack
// does not filter out same-color targets (the move generator does
// that once it knows which squares are worth considering).
func Attack(k Kind, col Color, sq Square, occ BitBoard) BitBoard {
	switch k {
	case Rook:
		return sliderRook(sq, occ)
	case Bishop:
		return sliderBishop(sq, occ)
	case Lance:
		return sliderLance(sq, col, occ)
	case PromRook:
		return sliderRook(sq, occ).Or(kingStepAttack(sq))
	case PromBishop:
		return sliderBishop(sq, occ).Or(kingStepAttack(sq))
	default:
		return stepTable[k][col][sq]
	}
}
