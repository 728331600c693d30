package mimc7

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/iden3/go-iden3-crypto/mimc7"
	"github.com/iden3/go-iden3-crypto/utils"
)

// maxInputs constant is the maximum number of inputs that the MiMC hash
// function can take. Experimentally, the maximum number of inputs is 62.
const maxInputs = 62

var (
	// TypeHashMiMC7 identifies the iden3 MiMC7 hash over BN254
	TypeHashMiMC7 = []byte("mimc7")
	// HashFunctionMiMC7 is a ready-to-use native Go implementation
	HashFunctionMiMC7 HashMiMC7
)

// HashMiMC7 is the circomlib MiMC7 sponge with a zero key. There is no
// gadget for it in this module, fixtures produced with it can only be
// checked natively.
type HashMiMC7 struct{}

func (HashMiMC7) Type() []byte { return TypeHashMiMC7 }

func (HashMiMC7) Hash(inputs ...*big.Int) (*big.Int, error) {
	if n := len(inputs); n == 0 || n > maxInputs {
		return nil, fmt.Errorf("mimc7: need 1 to %d inputs, got %d", maxInputs, n)
	}
	for i, in := range inputs {
		if in == nil || in.Sign() < 0 || !utils.CheckBigIntInField(in) {
			return nil, fmt.Errorf("mimc7: input %d is not a field element", i)
		}
	}
	return mimc7.Hash(inputs, nil)
}

// String renders x as the decimal form of its canonical field representative.
func (HashMiMC7) String(x *big.Int) string {
	var e fr.Element
	e.SetBigInt(x)
	// Element.String prints small negatives as "-k"
	return e.BigInt(new(big.Int)).String()
}
