// Command checkfixture validates input/input.json: the stored hash must match
// both the native Poseidon hash of the inputs and the Poseidon circuit.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/vocdoni/poseidon-fixtures/circuit"
	"github.com/vocdoni/poseidon-fixtures/fixture"
	"github.com/vocdoni/poseidon-fixtures/hash"
	"github.com/vocdoni/poseidon-fixtures/internal/log"
)

func main() {
	l := log.Init(os.Stderr, zerolog.InfoLevel)
	if err := run(l, hash.DefaultHasher, fixture.DefaultPath, os.Stdout); err != nil {
		l.Fatal().Err(err).Str("path", fixture.DefaultPath).Msg("invalid fixture")
	}
}

func run(l zerolog.Logger, hasherName, path string, out io.Writer) error {
	r, err := fixture.Read(path)
	if err != nil {
		return err
	}
	h, err := hash.ByName(hasherName)
	if err != nil {
		return err
	}
	if err := r.Verify(h); err != nil {
		return err
	}
	nbConstraints, err := circuit.Check(hasherName, r)
	if err != nil {
		return err
	}
	l.Debug().Int("constraints", nbConstraints).Str("hasher", hasherName).Msg("circuit solved")
	_, err = fmt.Fprintf(out, "%s is a valid %s fixture\n", path, hasherName)
	return err
}
