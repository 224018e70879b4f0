package params

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Fixed algorithm constants shared by every width.
const (
	Alpha         = 5
	FullRounds    = 57
	PartialRounds = 8
)

// Parameters bundles all constants needed by the permutation.
// A Parameters value is never mutated once built and may be shared.
type Parameters struct {
	Width         int
	Alpha         uint64
	FullRounds    int
	PartialRounds int

	// MDS is the Width x Width mixing matrix, row-major.
	MDS [][]fr.Element
	// RoundConstants holds Width constants per round, round-major.
	RoundConstants []fr.Element
}

// Rounds returns the number of rounds in the schedule.
func (p *Parameters) Rounds() int {
	return p.FullRounds + p.PartialRounds
}

// FullRound reports whether round applies the S-box to every slot. The first
// PartialRounds/2 rounds and every round past PartialRounds/2+FullRounds are
// full; the rest only substitute slot 0.
func (p *Parameters) FullRound(round int) bool {
	half := p.PartialRounds / 2
	return round < half || round > half+p.FullRounds
}

// SandwichFullRound is the conventional split: FullRounds/2 full rounds, then
// PartialRounds partial rounds, then the remaining full rounds.
func (p *Parameters) SandwichFullRound(round int) bool {
	half := p.FullRounds / 2
	return round < half || round >= half+p.PartialRounds
}
