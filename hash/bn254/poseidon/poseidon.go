package poseidon

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	circom "github.com/mdehoog/poseidon/circuits/poseidon"
)

// MaxMultihashInputs defines the maximum number of inputs supported by the MultiHash function.
const MaxMultihashInputs = 4096

// Poseidon is the in-circuit counterpart of HashPoseidon. Inputs are buffered
// with Write and hashed by Sum, which uses the circomlib round constants and
// therefore matches the native digest for the same inputs.
type Poseidon struct {
	api  frontend.API
	data []frontend.Variable
}

// Hash returns the hash of the provided inputs using the Poseidon hash
// function. It supports up to MaxInputs inputs and is equivalent to calling
// NewPoseidon and then Write and Sum on the returned object.
func Hash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	h := NewPoseidon(api)
	if err := h.Write(inputs...); err != nil {
		return 0, err
	}
	return h.Sum()
}

// MultiHash returns the hash of up to MaxMultihashInputs inputs. Up to
// MaxInputs it is the same as Hash. Beyond that the inputs are split in
// chunks of MaxInputs, every chunk is hashed and the chunk digests are hashed
// again, recursively if there are more than MaxInputs of them.
func MultiHash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	if l := len(inputs); l <= MaxInputs {
		return Hash(api, inputs...)
	} else if l > MaxMultihashInputs {
		return 0, fmt.Errorf("the maximum number of inputs supported is %d", MaxMultihashInputs)
	}

	numChunks := (len(inputs) + MaxInputs - 1) / MaxInputs
	hashed := make([]frontend.Variable, 0, numChunks)
	hasher := NewPoseidon(api)
	for i := 0; i < len(inputs); i += MaxInputs {
		end := min(i+MaxInputs, len(inputs))
		if err := hasher.Write(inputs[i:end]...); err != nil {
			return 0, err
		}
		sum, err := hasher.Sum()
		if err != nil {
			return 0, err
		}
		hashed = append(hashed, sum)
	}
	return MultiHash(api, hashed...)
}

// NewPoseidon returns a new Poseidon object that can be used to hash inputs.
func NewPoseidon(api frontend.API) Poseidon {
	return Poseidon{
		api:  api,
		data: []frontend.Variable{},
	}
}

// Write adds the provided inputs to the Poseidon object. If the number of
// buffered inputs would exceed MaxInputs, it returns an error.
func (h *Poseidon) Write(data ...frontend.Variable) error {
	if len(h.data)+len(data) > MaxInputs {
		return fmt.Errorf("poseidon hash only supports up to %d inputs, use MultiHash instead", MaxInputs)
	}
	h.data = append(h.data, data...)
	return nil
}

// Reset resets the Poseidon object, removing all written inputs.
func (h *Poseidon) Reset() {
	h.data = []frontend.Variable{}
}

// Sum returns the hash of the written inputs and resets the object.
func (h *Poseidon) Sum() (frontend.Variable, error) {
	if len(h.data) == 0 {
		return 0, fmt.Errorf("poseidon hash needs at least one input")
	}
	out := circom.Hash(h.api, h.data)
	h.Reset()
	return out, nil
}
