// Package hash groups the native hash functions a fixture can be generated
// with and resolves them by name.
package hash

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vocdoni/poseidon-fixtures/hash/bn254/mimc7"
	"github.com/vocdoni/poseidon-fixtures/hash/bn254/poseidon"
	"github.com/vocdoni/poseidon-fixtures/hash/bn254/poseidon2"
)

const (
	// Poseidon is the circomlib compatible Poseidon over BN254.
	Poseidon = "poseidon"
	// Poseidon2 is the width-2 Poseidon2 chaining over BN254.
	Poseidon2 = "poseidon2"
	// MiMC7 is the iden3 MiMC7 over BN254. It has no circuit counterpart.
	MiMC7 = "mimc7"
	// DefaultHasher is the hash used to generate input/input.json.
	DefaultHasher = Poseidon
)

// ErrUnknownHasher is returned when a hasher name is not registered.
var ErrUnknownHasher = errors.New("unknown hasher")

// Hasher is a native hash over a prime field. Hash takes and returns field
// elements as big integers, String renders a result in the canonical decimal
// form of the field.
type Hasher interface {
	Type() []byte
	Hash(inputs ...*big.Int) (*big.Int, error)
	String(x *big.Int) string
}

var hashers = map[string]Hasher{
	Poseidon:  poseidon.HashFunctionPoseidon,
	Poseidon2: poseidon2.HashFunctionPoseidon2,
	MiMC7:     mimc7.HashFunctionMiMC7,
}

// ByName returns the hasher registered as name.
func ByName(name string) (Hasher, error) {
	h, ok := hashers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
	return h, nil
}
