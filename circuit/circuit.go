// Package circuit checks hash fixtures against their gnark gadgets, so a test
// vector produced by a native library can be used to validate the circuit
// implementation of the same hash.
package circuit

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/vocdoni/poseidon-fixtures/fixture"
)

// ErrUnsatisfied is returned when a fixture does not satisfy its circuit.
var ErrUnsatisfied = errors.New("fixture does not satisfy the circuit")

// FixtureCircuit asserts that Hash is the digest of Inputs. The number of
// inputs is fixed by the length of the Inputs slice at compile time.
type FixtureCircuit struct {
	Inputs []frontend.Variable
	Hash   frontend.Variable `gnark:",public"`
	// HasherName selects the gadget, see HasherByName.
	HasherName string `gnark:"-"`
}

// NewFixtureCircuit returns an empty circuit for nInputs inputs, ready to be
// compiled.
func NewFixtureCircuit(hasherName string, nInputs int) *FixtureCircuit {
	return &FixtureCircuit{
		Inputs:     make([]frontend.Variable, nInputs),
		HasherName: hasherName,
	}
}

func (c *FixtureCircuit) Define(api frontend.API) error {
	hFn, err := HasherByName(c.HasherName)
	if err != nil {
		return err
	}
	h, err := hFn(api, c.Inputs...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(h, c.Hash)
	return nil
}

// Assignment builds the witness assignment of r.
func Assignment(hasherName string, r *fixture.Record) (*FixtureCircuit, error) {
	inputs, err := r.Inputs()
	if err != nil {
		return nil, err
	}
	digest, err := r.Digest()
	if err != nil {
		return nil, err
	}
	assignment := NewFixtureCircuit(hasherName, len(inputs))
	for i, in := range inputs {
		assignment.Inputs[i] = in
	}
	assignment.Hash = digest
	return assignment, nil
}

// Check compiles the fixture circuit over BN254 and checks that the record
// solves it. It returns the number of constraints of the circuit.
func Check(hasherName string, r *fixture.Record) (int, error) {
	if _, err := HasherByName(hasherName); err != nil {
		return 0, err
	}
	assignment, err := Assignment(hasherName, r)
	if err != nil {
		return 0, err
	}
	field := ecc.BN254.ScalarField()
	ccs, err := frontend.Compile(field, r1cs.NewBuilder, NewFixtureCircuit(hasherName, len(assignment.Inputs)))
	if err != nil {
		return 0, fmt.Errorf("compile circuit: %w", err)
	}
	w, err := frontend.NewWitness(assignment, field)
	if err != nil {
		return 0, fmt.Errorf("build witness: %w", err)
	}
	if err := ccs.IsSolved(w); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsatisfied, err)
	}
	return ccs.GetNbConstraints(), nil
}
