package circuit

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/poseidon-fixtures/hash"
	"github.com/vocdoni/poseidon-fixtures/hash/bn254/poseidon"
	"github.com/vocdoni/poseidon-fixtures/hash/bn254/poseidon2"
)

type Hasher func(frontend.API, ...frontend.Variable) (frontend.Variable, error)

// PoseidonHasher hashes the data with the circomlib Poseidon gadget. It
// matches hash.Poseidon.
func PoseidonHasher(api frontend.API, data ...frontend.Variable) (frontend.Variable, error) {
	return poseidon.Hash(api, data...)
}

// Poseidon2Hasher chains the data through the width-2 Poseidon2 permutation.
// It matches hash.Poseidon2.
func Poseidon2Hasher(api frontend.API, data ...frontend.Variable) (frontend.Variable, error) {
	return poseidon2.Hash(api, data...)
}

// HasherByName returns the gadget that computes the same digest as the native
// hasher registered under name.
func HasherByName(name string) (Hasher, error) {
	switch name {
	case hash.Poseidon:
		return PoseidonHasher, nil
	case hash.Poseidon2:
		return Poseidon2Hasher, nil
	default:
		return nil, fmt.Errorf("%w: %q", hash.ErrUnknownHasher, name)
	}
}
