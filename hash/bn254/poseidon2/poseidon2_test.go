package poseidon2

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	qt "github.com/frankban/quicktest"
)

func randomFieldElement(c *qt.C) *big.Int {
	b, err := rand.Int(rand.Reader, BN254BaseField)
	c.Assert(err, qt.IsNil)
	return b
}

type poseidon2CompatCircuit struct {
	Inputs   []frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *poseidon2CompatCircuit) Define(api frontend.API) error {
	got, err := Hash(api, c.Inputs...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(got, c.Expected)
	return nil
}

func TestPoseidon2_Go_vs_Circuit(t *testing.T) {
	c := qt.New(t)

	for _, n := range []int{1, 2, 3} {
		inputs := make([]*big.Int, n)
		vars := make([]frontend.Variable, n)
		for i := range inputs {
			inputs[i] = randomFieldElement(c)
			vars[i] = inputs[i]
		}
		native, err := HashFunctionPoseidon2.Hash(inputs...)
		c.Assert(err, qt.IsNil)

		assert := test.NewAssert(t)
		assert.SolvingSucceeded(
			&poseidon2CompatCircuit{Inputs: make([]frontend.Variable, n)},
			&poseidon2CompatCircuit{Inputs: vars, Expected: native},
			test.WithCurves(ecc.BN254),
			test.WithBackends(backend.GROTH16),
		)
	}
}

func TestPoseidon2FixedInputs(t *testing.T) {
	c := qt.New(t)

	h, err := HashFunctionPoseidon2.Hash(big.NewInt(1), big.NewInt(2))
	c.Assert(err, qt.IsNil)
	c.Assert(h.Cmp(BN254BaseField), qt.Equals, -1)
	c.Assert(HashFunctionPoseidon2.String(h), qt.Equals, h.String())

	again, err := HashFunctionPoseidon2.Hash(big.NewInt(1), big.NewInt(2))
	c.Assert(err, qt.IsNil)
	c.Assert(again.Cmp(h), qt.Equals, 0)

	// chaining is order sensitive
	swapped, err := HashFunctionPoseidon2.Hash(big.NewInt(2), big.NewInt(1))
	c.Assert(err, qt.IsNil)
	c.Assert(swapped.Cmp(h), qt.Not(qt.Equals), 0)

	assert := test.NewAssert(t)
	assert.SolvingSucceeded(
		&poseidon2CompatCircuit{Inputs: make([]frontend.Variable, 2)},
		&poseidon2CompatCircuit{Inputs: []frontend.Variable{1, 2}, Expected: h},
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
	assert.SolvingFailed(
		&poseidon2CompatCircuit{Inputs: make([]frontend.Variable, 2)},
		&poseidon2CompatCircuit{Inputs: []frontend.Variable{2, 1}, Expected: h},
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestPoseidon2InvalidInputs(t *testing.T) {
	c := qt.New(t)

	_, err := HashFunctionPoseidon2.Hash()
	c.Assert(err, qt.ErrorMatches, "poseidon2: need 1 to 16 inputs, got 0")

	_, err = HashFunctionPoseidon2.Hash(big.NewInt(1), BN254BaseField)
	c.Assert(err, qt.ErrorMatches, "poseidon2: input 1 is not a field element")

	_, err = HashFunctionPoseidon2.Hash(big.NewInt(-3))
	c.Assert(err, qt.ErrorMatches, "poseidon2: input 0 is not a field element")
}

func TestPoseidon2StringIsCanonical(t *testing.T) {
	c := qt.New(t)

	x := new(big.Int).Sub(BN254BaseField, big.NewInt(1))
	c.Assert(HashFunctionPoseidon2.String(x), qt.Equals, x.String())
	c.Assert(HashFunctionPoseidon2.String(BN254BaseField), qt.Equals, "0")
}
