package poseidon

import (
	"context"
	"errors"
	"math/big"
	"reflect"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lonerapier/shitty-hash/internal/params"
)

func mustElement(t *testing.T, s string) fr.Element {
	t.Helper()
	e, err := ParseElement(s)
	if err != nil {
		t.Fatalf("parse element: %v", err)
	}
	return e
}

func elements(vs ...uint64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i].SetUint64(v)
	}
	return out
}

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		name     string
		state    []fr.Element
		opts     []Option
		expected string
	}{
		{
			name:     "width-1-zero",
			state:    elements(0),
			expected: "2418341967184076940468925372955033601142324742825045548253644802376048892012",
		},
		{
			name:     "width-2",
			state:    elements(1, 2),
			expected: "3277880581204907356403356387252603645077605773758239628495603283765358488262",
		},
		{
			name:     "width-3",
			state:    elements(1, 2, 3),
			expected: "3196403962148919096532196744037544836875870751299827771377309126379643564553",
		},
		{
			name:     "width-5-zero",
			state:    elements(0, 0, 0, 0, 0),
			expected: "11226580624146557295978972006952316319407078834401770796718684577412248452949",
		},
		{
			name:     "width-2-slot-zero-sbox",
			state:    elements(1, 2),
			opts:     []Option{WithSBoxMode(SBoxFromSlotZero)},
			expected: "21850457308444434858224137905621725125033616163131884523048335501337009350753",
		},
		{
			name:     "width-2-sandwich",
			state:    elements(1, 2),
			opts:     []Option{WithSchedule(ScheduleSandwich)},
			expected: "1825552646309845447173576843502803097952761576810390970213948581188778922566",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			perm, err := New(len(tc.state), tc.state, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			out, err := perm.Hash()
			if err != nil {
				t.Fatal(err)
			}
			expected := mustElement(t, tc.expected)
			if !out.Equal(&expected) {
				t.Fatalf("mismatch\nexpected %s\ngot      %s", expected.String(), out.String())
			}
		})
	}
}

func TestHashIsDeterministic(t *testing.T) {
	for width := 1; width <= 5; width++ {
		state := make([]fr.Element, width)
		for i := range state {
			state[i].SetUint64(uint64(7*i + 11))
		}
		a, err := Hash(state...)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Hash(state...)
		if err != nil {
			t.Fatal(err)
		}
		if !a.Equal(&b) {
			t.Fatalf("width %d: %s != %s", width, a.String(), b.String())
		}
	}
}

func TestHashNotZero(t *testing.T) {
	out, err := Hash(elements(1, 2)...)
	if err != nil {
		t.Fatal(err)
	}
	if out.IsZero() {
		t.Fatal("permutation of [1, 2] returned zero")
	}
}

func TestHashDoesNotAliasInput(t *testing.T) {
	state := elements(1, 2, 3)
	perm, err := New(3, state)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := perm.Hash(); err != nil {
		t.Fatal(err)
	}
	want := elements(1, 2, 3)
	for i := range state {
		if !state[i].Equal(&want[i]) {
			t.Fatalf("input slot %d modified", i)
		}
	}
	if out := perm.State(); len(out) != perm.Width() {
		t.Fatalf("state has %d slots, want %d", len(out), perm.Width())
	}
}

func TestRoundCount(t *testing.T) {
	for _, schedule := range []Schedule{ScheduleThreshold, ScheduleSandwich} {
		steps := map[Step]int{}
		lastRound := -1
		observer := func(round int, step Step, state []fr.Element) {
			steps[step]++
			if round < lastRound {
				t.Fatalf("round %d observed after %d", round, lastRound)
			}
			lastRound = round
			if len(state) != 2 {
				t.Fatalf("observer saw %d slots", len(state))
			}
		}
		perm, err := New(2, elements(1, 2), WithSchedule(schedule), WithObserver(observer))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := perm.Hash(); err != nil {
			t.Fatal(err)
		}
		want := params.FullRounds + params.PartialRounds
		for _, step := range []Step{StepARK, StepSBox, StepMix} {
			if steps[step] != want {
				t.Fatalf("schedule %d: %s ran %d times, want %d", schedule, step, steps[step], want)
			}
		}
		if lastRound != want-1 {
			t.Fatalf("last round %d, want %d", lastRound, want-1)
		}
	}
}

func TestHashConsumesPermutation(t *testing.T) {
	perm, err := New(2, elements(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := perm.Hash(); err != nil {
		t.Fatal(err)
	}
	if _, err := perm.Hash(); !errors.Is(err, ErrConsumed) {
		t.Fatalf("second Hash: got %v, want ErrConsumed", err)
	}
}

func TestTruncatedRoundConstants(t *testing.T) {
	for _, width := range []int{1, 2, 4} {
		arks := 0
		perm, err := New(width, make([]fr.Element, width),
			WithTruncatedRoundConstants(),
			WithObserver(func(_ int, step Step, _ []fr.Element) {
				if step == StepARK {
					arks++
				}
			}),
		)
		if err != nil {
			t.Fatal(err)
		}
		_, err = perm.Hash()
		if !errors.Is(err, ErrRoundConstantsExhausted) {
			t.Fatalf("width %d: got %v, want ErrRoundConstantsExhausted", width, err)
		}
		if arks != 1 {
			t.Fatalf("width %d: %d rounds added constants before failing, want 1", width, arks)
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(2, elements(1)); err == nil {
		t.Fatal("expected state length error")
	}
	if _, err := New(9, make([]fr.Element, 9)); !errors.Is(err, params.ErrUnsupportedWidth) {
		t.Fatalf("got %v, want ErrUnsupportedWidth", err)
	}
	if _, err := Hash(); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestFullSBoxEqualSlots(t *testing.T) {
	var v, v5 fr.Element
	v.SetUint64(3)
	v5.SetUint64(243)

	state := []fr.Element{v, v, v, v}
	fullSBox(state)
	for i := range state {
		if !state[i].Equal(&v5) {
			t.Fatalf("slot %d = %s, want 243", i, state[i].String())
		}
	}
}

func TestSBoxFromSlotZero(t *testing.T) {
	state := elements(2, 100, 100)
	sboxFromSlotZero(state)

	// Slot 0 becomes 2^5; each later slot is the cube of the updated slot 0.
	want := elements(32, 32768, 32768)
	for i := range state {
		if !state[i].Equal(&want[i]) {
			t.Fatalf("slot %d = %s, want %s", i, state[i].String(), want[i].String())
		}
	}
}

func TestMixIdentityColumn(t *testing.T) {
	p, err := params.New(3)
	if err != nil {
		t.Fatal(err)
	}
	out := mix(elements(1, 0, 0), p.MDS)
	for i := range out {
		if !out[i].Equal(&p.MDS[i][0]) {
			t.Fatalf("row %d: got %s, want first column entry", i, out[i].String())
		}
	}
}

func genElement() gopter.Gen {
	return gen.SliceOfN(4, gen.UInt64()).Map(func(limbs []uint64) fr.Element {
		bi := new(big.Int)
		for _, l := range limbs {
			bi.Lsh(bi, 64)
			bi.Or(bi, new(big.Int).SetUint64(l))
		}
		var e fr.Element
		e.SetBigInt(bi)
		return e
	})
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	p, err := params.New(4)
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("mix is linear", prop.ForAll(
		func(a, b []fr.Element) bool {
			sum := make([]fr.Element, len(a))
			for i := range a {
				sum[i].Add(&a[i], &b[i])
			}
			ma, mb, ms := mix(a, p.MDS), mix(b, p.MDS), mix(sum, p.MDS)
			for i := range ms {
				var s fr.Element
				s.Add(&ma[i], &mb[i])
				if !s.Equal(&ms[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(4, genElement()),
		gen.SliceOfN(4, genElement()),
	))

	properties.Property("exp5 matches big.Int exponentiation", prop.ForAll(
		func(x fr.Element) bool {
			want := new(big.Int).Exp(x.BigInt(new(big.Int)), big.NewInt(5), fr.Modulus())
			exp5(&x)
			return x.BigInt(new(big.Int)).Cmp(want) == 0
		},
		genElement(),
	))

	properties.Property("full S-box of equal slots is v^5 everywhere", prop.ForAll(
		func(v fr.Element) bool {
			state := []fr.Element{v, v, v}
			fullSBox(state)
			want := v
			exp5(&want)
			for i := range state {
				if !state[i].Equal(&want) {
					return false
				}
			}
			return true
		},
		genElement(),
	))

	properties.Property("native matches big.Int reference", prop.ForAll(
		func(state []fr.Element) bool {
			out, err := Hash(state...)
			if err != nil {
				return false
			}
			ref, err := bigIntHash(state, defaultRef)
			if err != nil {
				return false
			}
			return out.BigInt(new(big.Int)).Cmp(ref) == 0
		},
		genState(),
	))

	variants := []struct {
		name string
		opts []Option
		ref  refConfig
	}{
		{"slot-zero S-box", []Option{WithSBoxMode(SBoxFromSlotZero)}, refConfig{full: thresholdRound, slotZero: true}},
		{"sandwich schedule", []Option{WithSchedule(ScheduleSandwich)}, refConfig{full: sandwichRound}},
		{"slot-zero S-box with sandwich schedule", []Option{WithSBoxMode(SBoxFromSlotZero), WithSchedule(ScheduleSandwich)}, refConfig{full: sandwichRound, slotZero: true}},
	}
	for _, v := range variants {
		properties.Property(v.name+" matches big.Int reference", prop.ForAll(
			func(state []fr.Element) bool {
				perm, err := New(len(state), state, v.opts...)
				if err != nil {
					return false
				}
				out, err := perm.Hash()
				if err != nil {
					return false
				}
				ref, err := bigIntHash(state, v.ref)
				if err != nil {
					return false
				}
				return out.BigInt(new(big.Int)).Cmp(ref) == 0
			},
			genState(),
		))
	}

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// genState generates states of every builtin width.
func genState() gopter.Gen {
	return gen.IntRange(1, 5).FlatMap(func(w interface{}) gopter.Gen {
		return gen.SliceOfN(w.(int), genElement())
	}, reflect.TypeOf([]fr.Element{}))
}

func TestHashBatch(t *testing.T) {
	states := [][]fr.Element{
		elements(1, 2),
		elements(1, 2, 3),
		elements(0),
		elements(5, 4, 3, 2, 1),
	}
	out, err := HashBatch(context.Background(), states)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(states) {
		t.Fatalf("got %d outputs, want %d", len(out), len(states))
	}
	for i, state := range states {
		want, err := Hash(state...)
		if err != nil {
			t.Fatal(err)
		}
		if !out[i].Equal(&want) {
			t.Fatalf("state %d: batch %s, single %s", i, out[i].String(), want.String())
		}
	}

	if _, err := HashBatch(context.Background(), [][]fr.Element{elements(1), {}}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := HashBatch(ctx, states); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestParseElement(t *testing.T) {
	e, err := ParseElement("12345")
	if err != nil {
		t.Fatal(err)
	}
	if e.Uint64() != 12345 {
		t.Fatalf("got %s", e.String())
	}
	for _, bad := range []string{"", "0x10", "abc", "-1", fr.Modulus().String()} {
		if _, err := ParseElement(bad); err == nil {
			t.Fatalf("ParseElement(%q) succeeded", bad)
		}
	}
}

// refConfig selects the variant the big.Int reference computes.
type refConfig struct {
	full     func(p *params.Parameters, round int) bool
	slotZero bool
}

func thresholdRound(p *params.Parameters, r int) bool {
	return r < p.PartialRounds/2 || r > p.PartialRounds/2+p.FullRounds
}

func sandwichRound(p *params.Parameters, r int) bool {
	return r < p.FullRounds/2 || r >= p.FullRounds/2+p.PartialRounds
}

var defaultRef = refConfig{full: thresholdRound}

// Reference big.Int implementation of the permutation.
func bigIntHash(inputs []fr.Element, cfg refConfig) (*big.Int, error) {
	p, err := params.New(len(inputs))
	if err != nil {
		return nil, err
	}
	mod := fr.Modulus()
	five, three := big.NewInt(5), big.NewInt(3)
	t := p.Width
	state := elemsToBig(inputs)
	arc := elemsToBig(p.RoundConstants)
	mds := make([][]*big.Int, t)
	for i := range mds {
		mds[i] = elemsToBig(p.MDS[i])
	}

	for r := 0; r < p.Rounds(); r++ {
		for i := 0; i < t; i++ {
			state[i].Add(state[i], arc[r*t+i]).Mod(state[i], mod)
		}
		switch {
		case !cfg.full(p, r):
			state[0].Exp(state[0], five, mod)
		case cfg.slotZero:
			// Slot 0 takes s0^5; every later slot is the cube of that value.
			state[0].Exp(state[0], five, mod)
			for i := 1; i < t; i++ {
				state[i] = new(big.Int).Exp(state[0], three, mod)
			}
		default:
			for i := range state {
				state[i].Exp(state[i], five, mod)
			}
		}
		next := make([]*big.Int, t)
		for i := 0; i < t; i++ {
			sum := big.NewInt(0)
			for j := 0; j < t; j++ {
				sum.Add(sum, new(big.Int).Mul(mds[i][j], state[j]))
			}
			next[i] = sum.Mod(sum, mod)
		}
		state = next
	}
	return state[0], nil
}

func elemsToBig(es []fr.Element) []*big.Int {
	out := make([]*big.Int, len(es))
	for i := range es {
		out[i] = es[i].BigInt(new(big.Int))
	}
	return out
}
