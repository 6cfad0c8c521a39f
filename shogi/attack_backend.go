//go:build !qugiy

package shogi

// attack_backend.go selects which slider implementation Attack calls
// at compile time, via a build-tag feature flag. This file is built by
// default (magic); attack_backend_qugiy.go is built instead under the
// qugiy tag. Both attack_magic.go and attack_qugiy.go are always
// compiled regardless of which file wins, so package tests can
// cross-check one against the other no matter which backend a given
// build uses for its hot path.
var (
	sliderRook   = magicRookAttack
	sliderBishop = magicBishopAttack
	sliderLance  = magicLanceAttack
)
