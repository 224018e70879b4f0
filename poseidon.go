// Package poseidon implements the Poseidon permutation over the BN254 scalar field.
package poseidon

import (
	"errors"
	"fmt"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/lonerapier/shitty-hash/internal/params"
)

var (
	// ErrRoundConstantsExhausted is returned when a round needs more round
	// constants than the parameter set carries.
	ErrRoundConstantsExhausted = errors.New("poseidon: round constants exhausted")
	// ErrConsumed is returned by Hash on a permutation that already ran.
	ErrConsumed = errors.New("poseidon: permutation already run")
)

// SBoxMode selects how full rounds apply the S-box.
type SBoxMode int

const (
	// SBoxPerSlot raises every slot to the fifth power independently.
	SBoxPerSlot SBoxMode = iota
	// SBoxFromSlotZero reproduces the historical full round: slots are
	// rewritten in order and each one is derived from slot 0 as it stands at
	// that point, so the other slots' own values are discarded.
	SBoxFromSlotZero
)

// Schedule selects which rounds are full rounds.
type Schedule int

const (
	// ScheduleThreshold makes rounds below PartialRounds/2 and above
	// PartialRounds/2+FullRounds full.
	ScheduleThreshold Schedule = iota
	// ScheduleSandwich runs FullRounds/2 full rounds, the partial rounds, then
	// the remaining full rounds.
	ScheduleSandwich
)

func (s Schedule) full(p *params.Parameters, round int) bool {
	if s == ScheduleSandwich {
		return p.SandwichFullRound(round)
	}
	return p.FullRound(round)
}

// Step names a stage of a round, as reported to an observer.
type Step int

const (
	// StepARK follows the addition of the round's constants.
	StepARK Step = iota
	// StepSBox follows the substitution layer.
	StepSBox
	// StepMix follows the MDS multiplication.
	StepMix
)

func (s Step) String() string {
	switch s {
	case StepARK:
		return "ark"
	case StepSBox:
		return "sbox"
	case StepMix:
		return "mix"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

type config struct {
	sbox      SBoxMode
	schedule  Schedule
	truncated bool
	observer  func(round int, step Step, state []fr.Element)
}

// Option configures a Permutation.
type Option func(*config)

// WithSBoxMode selects the full-round S-box. The default is SBoxPerSlot.
func WithSBoxMode(m SBoxMode) Option {
	return func(c *config) { c.sbox = m }
}

// WithSchedule selects the round schedule. The default is ScheduleThreshold.
func WithSchedule(s Schedule) Option {
	return func(c *config) { c.schedule = s }
}

// WithTruncatedRoundConstants loads only the first width round constants, as
// the historical loader did. Hash then fails with ErrRoundConstantsExhausted
// at the first round that runs out.
func WithTruncatedRoundConstants() Option {
	return func(c *config) { c.truncated = true }
}

// WithObserver registers fn to be called after every step of every round.
// The state slice is only valid during the call and must not be modified.
func WithObserver(fn func(round int, step Step, state []fr.Element)) Option {
	return func(c *config) { c.observer = fn }
}

// Permutation owns one state vector and runs the round schedule over it once.
// It is not safe for concurrent use; build one per call.
type Permutation struct {
	params *params.Parameters
	state  []fr.Element
	cfg    config
	done   bool
}

// New builds a permutation of the given width over a copy of state.
func New(width int, state []fr.Element, opts ...Option) (*Permutation, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		p   *params.Parameters
		err error
	)
	if cfg.truncated {
		p, err = params.LoadTruncated(params.Builtin, width)
	} else {
		p, err = params.ForWidth(width)
	}
	if err != nil {
		return nil, err
	}
	return newPermutation(p, state, cfg)
}

func newPermutation(p *params.Parameters, state []fr.Element, cfg config) (*Permutation, error) {
	if len(state) != p.Width {
		return nil, fmt.Errorf("poseidon: state has %d elements, want %d", len(state), p.Width)
	}
	return &Permutation{
		params: p,
		state:  slices.Clone(state),
		cfg:    cfg,
	}, nil
}

// Width returns the number of state slots.
func (p *Permutation) Width() int {
	return p.params.Width
}

// State returns a copy of the current state.
func (p *Permutation) State() []fr.Element {
	return slices.Clone(p.state)
}

// Hash runs every round (constant addition, substitution, mixing) and
// returns the first state slot.
func (p *Permutation) Hash() (fr.Element, error) {
	if p.done {
		return fr.Element{}, ErrConsumed
	}
	p.done = true

	for r := range p.params.Rounds() {
		if err := p.ark(r); err != nil {
			return fr.Element{}, err
		}
		p.observe(r, StepARK)

		if p.cfg.schedule.full(p.params, r) {
			p.fullSBox()
		} else {
			exp5(&p.state[0])
		}
		p.observe(r, StepSBox)

		p.state = mix(p.state, p.params.MDS)
		p.observe(r, StepMix)
	}
	return p.state[0], nil
}

func (p *Permutation) observe(round int, step Step) {
	if p.cfg.observer != nil {
		p.cfg.observer(round, step, p.state)
	}
}

// ark adds the round's constants, one per slot.
func (p *Permutation) ark(round int) error {
	t := p.params.Width
	rc := p.params.RoundConstants
	offset := round * t
	if offset+t > len(rc) {
		return fmt.Errorf("%w: round %d needs constants up to index %d, have %d", ErrRoundConstantsExhausted, round, offset+t-1, len(rc))
	}
	for i := range t {
		p.state[i].Add(&p.state[i], &rc[offset+i])
	}
	return nil
}

func (p *Permutation) fullSBox() {
	if p.cfg.sbox == SBoxFromSlotZero {
		sboxFromSlotZero(p.state)
		return
	}
	fullSBox(p.state)
}

func fullSBox(state []fr.Element) {
	for i := range state {
		exp5(&state[i])
	}
}

func sboxFromSlotZero(state []fr.Element) {
	for i := range state {
		tmp := state[0]
		state[i].Square(&state[0])
		state[i].Square(&state[0])
		state[i].Mul(&state[i], &tmp)
	}
}

// mix returns mds·state in a fresh vector.
func mix(state []fr.Element, mds [][]fr.Element) []fr.Element {
	out := make([]fr.Element, len(state))
	for i := range out {
		var sum fr.Element
		for j := range state {
			var prod fr.Element
			prod.Mul(&state[j], &mds[i][j])
			sum.Add(&sum, &prod)
		}
		out[i] = sum
	}
	return out
}

func exp5(x *fr.Element) {
	var x2, x4 fr.Element
	x2.Square(x)
	x4.Square(&x2)
	x.Mul(&x4, x)
}
