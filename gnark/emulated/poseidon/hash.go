package poseidon

import (
	"errors"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/lonerapier/shitty-hash/internal/params"
)

// Hash computes the permutation over emulated BN254 scalar field elements,
// for circuits whose native field is not BN254's. It returns the first slot.
func Hash(api frontend.API, inputs ...emulated.Element[FrParams]) (emulated.Element[FrParams], error) {
	var zero emulated.Element[FrParams]
	if len(inputs) < 1 {
		return zero, errors.New("poseidon: need at least 1 element")
	}
	p, err := params.ForWidth(len(inputs))
	if err != nil {
		return zero, err
	}

	field, err := emulated.NewField[FrParams](api)
	if err != nil {
		return zero, err
	}

	state := make([]*emulated.Element[FrParams], len(inputs))
	for i := range inputs {
		state[i] = field.NewElement(inputs[i])
	}

	state = permute(field, p, state)
	// Ensure canonical output.
	out := field.Reduce(state[0])
	return *out, nil
}

func permute(field *emulated.Field[FrParams], p *params.Parameters, state []*emulated.Element[FrParams]) []*emulated.Element[FrParams] {
	for r := range p.Rounds() {
		addArcRow(field, p, state, r)
		if p.FullRound(r) {
			for i := range state {
				state[i] = exp5(field, state[i])
			}
		} else {
			state[0] = exp5(field, state[0])
		}
		state = mixLayerMDS(field, p, state)
	}
	return state
}

func addArcRow(field *emulated.Field[FrParams], p *params.Parameters, state []*emulated.Element[FrParams], row int) {
	offset := row * p.Width
	for i := range p.Width {
		state[i] = field.Add(state[i], constElement(field, p.RoundConstants[offset+i]))
	}
}

func mixLayerMDS(field *emulated.Field[FrParams], p *params.Parameters, state []*emulated.Element[FrParams]) []*emulated.Element[FrParams] {
	newState := make([]*emulated.Element[FrParams], p.Width)
	for i := range p.Width {
		sum := field.NewElement(emulated.ValueOf[FrParams](0))
		for j := range p.Width {
			prod := field.Mul(constElement(field, p.MDS[i][j]), state[j])
			sum = field.Add(sum, prod)
		}
		newState[i] = sum
	}
	return newState
}

func exp5(field *emulated.Field[FrParams], x *emulated.Element[FrParams]) *emulated.Element[FrParams] {
	x2 := field.Mul(x, x)
	x4 := field.Mul(x2, x2)
	return field.Mul(x4, x)
}
