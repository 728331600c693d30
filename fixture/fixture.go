// Package fixture builds, validates and stores hash test vectors: a list of
// field element inputs together with their digest, all encoded as decimal
// strings.
package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vocdoni/poseidon-fixtures/hash"
)

// DefaultPath is where the generator writes its fixture, relative to the
// working directory.
const DefaultPath = "input/input.json"

var (
	// ErrInvalidRecord is returned when a record is malformed.
	ErrInvalidRecord = errors.New("invalid fixture record")
	// ErrHashMismatch is returned when a record digest does not match the
	// digest of its inputs.
	ErrHashMismatch = errors.New("fixture hash mismatch")
)

// DefaultInputs returns the inputs of the generated fixture, [1, 2].
func DefaultInputs() []*big.Int {
	return []*big.Int{big.NewInt(1), big.NewInt(2)}
}

// Record is the JSON form of a test vector.
type Record struct {
	In   []string `json:"in"`
	Hash string   `json:"hash"`
}

// New hashes the inputs with h and returns the resulting record.
func New(h hash.Hasher, inputs ...*big.Int) (*Record, error) {
	digest, err := h.Hash(inputs...)
	if err != nil {
		return nil, fmt.Errorf("hash inputs: %w", err)
	}
	in := make([]string, len(inputs))
	for i, x := range inputs {
		in[i] = x.String()
	}
	return &Record{In: in, Hash: h.String(digest)}, nil
}

// Inputs parses the record inputs.
func (r *Record) Inputs() ([]*big.Int, error) {
	if len(r.In) == 0 {
		return nil, fmt.Errorf("%w: no inputs", ErrInvalidRecord)
	}
	inputs := make([]*big.Int, len(r.In))
	for i, s := range r.In {
		x, err := parseElement(s)
		if err != nil {
			return nil, fmt.Errorf("%w: input %d: %w", ErrInvalidRecord, i, err)
		}
		inputs[i] = x
	}
	return inputs, nil
}

// Digest parses the record hash.
func (r *Record) Digest() (*big.Int, error) {
	x, err := parseElement(r.Hash)
	if err != nil {
		return nil, fmt.Errorf("%w: hash: %w", ErrInvalidRecord, err)
	}
	return x, nil
}

// Verify hashes the record inputs with h and compares the result against the
// stored digest.
func (r *Record) Verify(h hash.Hasher) error {
	inputs, err := r.Inputs()
	if err != nil {
		return err
	}
	if _, err := r.Digest(); err != nil {
		return err
	}
	digest, err := h.Hash(inputs...)
	if err != nil {
		return fmt.Errorf("hash inputs: %w", err)
	}
	if got := h.String(digest); got != r.Hash {
		return fmt.Errorf("%w: %s(%v) = %s, fixture has %s",
			ErrHashMismatch, h.Type(), r.In, got, r.Hash)
	}
	return nil
}

// Marshal encodes the record as JSON indented with two spaces.
func (r *Record) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Parse decodes and validates a JSON record. Unknown fields, missing fields
// and values that are not canonical field elements are rejected.
func Parse(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	r := &Record{}
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidRecord)
	}
	if _, err := r.Inputs(); err != nil {
		return nil, err
	}
	if _, err := r.Digest(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseElement accepts only the canonical decimal form of a BN254 scalar
// field element: no sign, no leading zeros and lower than the modulus.
func parseElement(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok || x.String() != s {
		return nil, fmt.Errorf("%q is not a decimal integer", s)
	}
	if x.Sign() < 0 || x.Cmp(fr.Modulus()) >= 0 {
		return nil, fmt.Errorf("%s is out of the field", s)
	}
	return x, nil
}
