package poseidon2

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
)

// MaxInputs bounds the number of limbs chained into a single digest.
const MaxInputs = 16

// width-2 Poseidon-2 parameters shared by the native hasher and the gadget
const (
	width         = 2
	fullRounds    = 6
	partialRounds = 50
)

var (
	// TypeHashPoseidon2 identifies the Poseidon2-BN254 hash
	TypeHashPoseidon2 = []byte("poseidon2")
	// HashFunctionPoseidon2 is a ready-to-use native Go implementation
	HashFunctionPoseidon2 HashPoseidon2
	// BN254BaseField is the base field for the BN254 curve.
	BN254BaseField = fr.Modulus()
)

type HashPoseidon2 struct{}

func (HashPoseidon2) Type() []byte { return TypeHashPoseidon2 }

var perm2 = poseidon2.NewPermutation(width, fullRounds, partialRounds)

// Hash chains the inputs through the width-2 permutation, Merkle–Damgård
// style, starting from CV₀ := 0. It returns the same value as the Hash gadget.
func (HashPoseidon2) Hash(inputs ...*big.Int) (*big.Int, error) {
	if n := len(inputs); n == 0 || n > MaxInputs {
		return nil, fmt.Errorf("poseidon2: need 1 to %d inputs, got %d", MaxInputs, n)
	}

	var cv fr.Element
	for i, in := range inputs {
		if in == nil || in.Sign() < 0 || in.Cmp(BN254BaseField) >= 0 {
			return nil, fmt.Errorf("poseidon2: input %d is not a field element", i)
		}
		var m fr.Element
		m.SetBigInt(in)

		st := [...]fr.Element{cv, m} // absorb one limb
		if err := perm2.Permutation(st[:]); err != nil {
			return nil, fmt.Errorf("poseidon2: %w", err)
		}
		cv.Add(&st[1], &m) // CVᵢ₊₁ = S₁ + mᵢ
	}
	return cv.BigInt(new(big.Int)), nil
}

// String renders x as the decimal form of its canonical field representative.
func (HashPoseidon2) String(x *big.Int) string {
	var e fr.Element
	e.SetBigInt(x)
	// Element.String prints small negatives as "-k"
	return e.BigInt(new(big.Int)).String()
}
