package poseidon

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyInput is returned when there is nothing to permute.
var ErrEmptyInput = errors.New("poseidon: need at least 1 element")

// Hash permutes inputs, whose count selects the width, and returns the first
// slot of the output state.
func Hash(inputs ...fr.Element) (fr.Element, error) {
	if len(inputs) == 0 {
		return fr.Element{}, ErrEmptyInput
	}
	perm, err := New(len(inputs), inputs)
	if err != nil {
		return fr.Element{}, err
	}
	return perm.Hash()
}

// HashBatch runs one independent permutation per state, in parallel, and
// returns the outputs in order. Each state may have its own width. An
// observer passed in opts is called from several goroutines.
func HashBatch(ctx context.Context, states [][]fr.Element, opts ...Option) ([]fr.Element, error) {
	out := make([]fr.Element, len(states))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, state := range states {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(state) == 0 {
				return fmt.Errorf("state %d: %w", i, ErrEmptyInput)
			}
			perm, err := New(len(state), state, opts...)
			if err != nil {
				return fmt.Errorf("state %d: %w", i, err)
			}
			h, err := perm.Hash()
			if err != nil {
				return fmt.Errorf("state %d: %w", i, err)
			}
			out[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseElement parses a canonical base-10 field element.
func ParseElement(s string) (fr.Element, error) {
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fr.Element{}, fmt.Errorf("poseidon: invalid decimal element %q", s)
	}
	if bi.Sign() < 0 || bi.Cmp(fr.Modulus()) >= 0 {
		return fr.Element{}, fmt.Errorf("poseidon: element %q out of range", s)
	}
	var e fr.Element
	e.SetBigInt(bi)
	return e, nil
}
