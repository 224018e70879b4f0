package poseidon

import (
	"math/big"
	"os"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/test"
	"github.com/rs/zerolog"

	emposeidon "github.com/lonerapier/shitty-hash/gnark/emulated/poseidon"
	gposeidon "github.com/lonerapier/shitty-hash/gnark/poseidon"
)

func bigOf(e fr.Element) *big.Int {
	return e.BigInt(new(big.Int))
}

// Circuit that permutes two limbs and checks against an expected native result.
type poseidonCircuit struct {
	Inputs   [2]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *poseidonCircuit) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestCircuitMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	inputs := elements(1, 2)
	native, err := Hash(inputs...)
	if err != nil {
		t.Fatal(err)
	}

	witness := poseidonCircuit{
		Inputs:   [2]frontend.Variable{bigOf(inputs[0]), bigOf(inputs[1])},
		Expected: bigOf(native),
	}

	assert.ProverSucceeded(
		&poseidonCircuit{},
		&witness,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

type sizedCircuit struct {
	Inputs   []frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *sizedCircuit) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestCircuitWidths(t *testing.T) {
	for width := 1; width <= 5; width++ {
		inputs := make([]fr.Element, width)
		for i := range inputs {
			inputs[i].SetUint64(uint64(i + 1))
		}
		native, err := Hash(inputs...)
		if err != nil {
			t.Fatal(err)
		}

		witness := &sizedCircuit{Inputs: make([]frontend.Variable, width), Expected: bigOf(native)}
		for i := range inputs {
			witness.Inputs[i] = bigOf(inputs[i])
		}
		circuit := &sizedCircuit{Inputs: make([]frontend.Variable, width)}
		if err := test.IsSolved(circuit, witness, ecc.BN254.ScalarField()); err != nil {
			t.Fatalf("width %d: %v", width, err)
		}

		ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
		if err != nil {
			t.Fatalf("compile width %d: %v", width, err)
		}
		t.Logf("width-%d constraints: %d", width, ccs.GetNbConstraints())
	}
}

func TestCircuitRejectsWrongOutput(t *testing.T) {
	inputs := elements(1, 2)
	native, err := Hash(inputs...)
	if err != nil {
		t.Fatal(err)
	}
	var wrong fr.Element
	wrong.SetOne()
	wrong.Add(&wrong, &native)

	witness := &poseidonCircuit{
		Inputs:   [2]frontend.Variable{bigOf(inputs[0]), bigOf(inputs[1])},
		Expected: bigOf(wrong),
	}
	if err := test.IsSolved(&poseidonCircuit{}, witness, ecc.BN254.ScalarField()); err == nil {
		t.Fatal("circuit accepted a wrong output")
	}
}

func TestCircuitSolveWithLogger(t *testing.T) {
	inputs := elements(3)
	native, err := Hash(inputs...)
	if err != nil {
		t.Fatal(err)
	}

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &sizedCircuit{Inputs: make([]frontend.Variable, 1)})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	w, err := frontend.NewWitness(&sizedCircuit{
		Inputs:   []frontend.Variable{bigOf(inputs[0])},
		Expected: bigOf(native),
	}, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatalf("witness: %v", err)
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(zerolog.WarnLevel)
	if _, err := ccs.Solve(w, solver.WithLogger(zlog)); err != nil {
		t.Fatalf("solve: %v", err)
	}
}

type emuCircuit struct {
	Inputs   [2]emulated.Element[emposeidon.FrParams]
	Expected emulated.Element[emposeidon.FrParams] `gnark:",public"`
}

func (c *emuCircuit) Define(api frontend.API) error {
	field, err := emulated.NewField[emposeidon.FrParams](api)
	if err != nil {
		return err
	}
	out, err := emposeidon.Hash(api, c.Inputs[0], c.Inputs[1])
	if err != nil {
		return err
	}
	field.AssertIsEqual(&out, &c.Expected)
	return nil
}

func TestEmulatedHashMatchesNative(t *testing.T) {
	inputs := elements(1, 2)
	native, err := Hash(inputs...)
	if err != nil {
		t.Fatal(err)
	}

	witness := emuCircuit{
		Inputs:   [2]emulated.Element[emposeidon.FrParams]{emposeidon.ValueOf(inputs[0]), emposeidon.ValueOf(inputs[1])},
		Expected: emposeidon.ValueOf(native),
	}
	if err := test.IsSolved(&emuCircuit{}, &witness, ecc.BLS12_377.ScalarField()); err != nil {
		t.Fatal(err)
	}
}
