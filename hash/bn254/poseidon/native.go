package poseidon

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	hash "github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/iden3/go-iden3-crypto/utils"
)

// MaxInputs is the widest input accepted by a single Poseidon invocation, the
// same limit as circomlib.
const MaxInputs = 16

var (
	// TypeHashPoseidon identifies the circomlib Poseidon-BN254 hash
	TypeHashPoseidon = []byte("poseidon")
	// HashFunctionPoseidon is a ready-to-use native Go implementation
	HashFunctionPoseidon HashPoseidon
)

// HashPoseidon computes the circomlib compatible Poseidon hash over the BN254
// scalar field. The permutation itself is provided by go-iden3-crypto, which
// produces the same digests as circomlibjs buildPoseidon.
type HashPoseidon struct{}

func (HashPoseidon) Type() []byte { return TypeHashPoseidon }

// Hash returns the Poseidon digest of the inputs. Every input must already be
// a canonical field element, values are never reduced silently.
func (HashPoseidon) Hash(inputs ...*big.Int) (*big.Int, error) {
	if n := len(inputs); n == 0 || n > MaxInputs {
		return nil, fmt.Errorf("poseidon: need 1 to %d inputs, got %d", MaxInputs, n)
	}
	for i, in := range inputs {
		if in == nil || in.Sign() < 0 || !utils.CheckBigIntInField(in) {
			return nil, fmt.Errorf("poseidon: input %d is not a field element", i)
		}
	}
	return hash.Hash(inputs)
}

// String renders x as the decimal form of its canonical field representative.
func (HashPoseidon) String(x *big.Int) string {
	var e fr.Element
	e.SetBigInt(x)
	// Element.String prints small negatives as "-k"
	return e.BigInt(new(big.Int)).String()
}
