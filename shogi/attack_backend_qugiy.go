//go:build qugiy

package shogi

// See attack_backend.go: this is the qugiy-tagged counterpart,
// selecting the on-the-fly ray backend instead of the magic lookup.
var (
	sliderRook   = qugiyRookAttack
	sliderBishop = qugiyBishopAttack
	sliderLance  = qugiyLanceAttack
)
