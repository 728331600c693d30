package poseidon2

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/permutation/poseidon2"
)

// Hash is the in-circuit version of HashPoseidon2.Hash.
func Hash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	if n := len(inputs); n == 0 || n > MaxInputs {
		return 0, fmt.Errorf("poseidon2: need 1 to %d inputs, got %d", MaxInputs, n)
	}

	perm, err := poseidon2.NewPoseidon2FromParameters(api, width, fullRounds, partialRounds)
	if err != nil {
		return 0, err
	}

	cv := frontend.Variable(0) // CV₀ := 0
	for _, m := range inputs {
		state := []frontend.Variable{cv, m}
		if err := perm.Permutation(state); err != nil {
			return 0, err
		}
		cv = api.Add(state[1], m)
	}
	return cv, nil
}
