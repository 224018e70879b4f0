package poseidon

import (
	"errors"
	"math/big"
	"slices"

	"github.com/consensys/gnark/frontend"

	"github.com/lonerapier/shitty-hash/internal/params"
)

// circuitPermutation mirrors the native permutation but emits gnark constraints.
type circuitPermutation struct {
	params *params.Parameters
	arc    []*big.Int
	mds    [][]*big.Int
}

// newCircuitPermutation builds a circuit gadget for the provided width.
func newCircuitPermutation(width int) (*circuitPermutation, error) {
	p, err := params.ForWidth(width)
	if err != nil {
		return nil, err
	}
	c := &circuitPermutation{
		params: p,
		arc:    make([]*big.Int, len(p.RoundConstants)),
		mds:    make([][]*big.Int, len(p.MDS)),
	}
	for i := range p.RoundConstants {
		c.arc[i] = p.RoundConstants[i].BigInt(new(big.Int))
	}
	for i, row := range p.MDS {
		c.mds[i] = make([]*big.Int, len(row))
		for j := range row {
			c.mds[i][j] = row[j].BigInt(new(big.Int))
		}
	}
	return c, nil
}

// Hash permutes inputs inside a gnark circuit and returns the first slot. The
// number of inputs selects the width. The gadget follows the native default:
// per-slot full S-box and the threshold round schedule.
func Hash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	if len(inputs) < 1 {
		var zero frontend.Variable
		return zero, errors.New("poseidon: need at least 1 element")
	}
	gadget, err := newCircuitPermutation(len(inputs))
	if err != nil {
		var zero frontend.Variable
		return zero, err
	}
	state := gadget.permute(api, slices.Clone(inputs))
	return state[0], nil
}

func (c *circuitPermutation) permute(api frontend.API, state []frontend.Variable) []frontend.Variable {
	t := c.params.Width
	for r := range c.params.Rounds() {
		circuitAddArcRow(api, state, c.arc, r, t)
		if c.params.FullRound(r) {
			circuitFullSBox(api, state)
		} else {
			state[0] = circuitExp5(api, state[0])
		}
		state = circuitMix(api, state, c.mds)
	}
	return state
}

func circuitAddArcRow(api frontend.API, state []frontend.Variable, arc []*big.Int, row, width int) {
	offset := row * width
	for i := 0; i < width; i++ {
		state[i] = api.Add(state[i], arc[offset+i])
	}
}

func circuitMix(api frontend.API, state []frontend.Variable, matrix [][]*big.Int) []frontend.Variable {
	out := make([]frontend.Variable, len(state))
	for i := range out {
		sum := api.Mul(state[0], matrix[i][0])
		for j := 1; j < len(state); j++ {
			sum = api.Add(sum, api.Mul(state[j], matrix[i][j]))
		}
		out[i] = sum
	}
	return out
}

func circuitFullSBox(api frontend.API, state []frontend.Variable) {
	for i := range state {
		state[i] = circuitExp5(api, state[i])
	}
}

func circuitExp5(api frontend.API, v frontend.Variable) frontend.Variable {
	v2 := api.Mul(v, v)
	v4 := api.Mul(v2, v2)
	return api.Mul(v4, v)
}
