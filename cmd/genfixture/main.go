// Command genfixture writes the Poseidon hash of [1, 2] to input/input.json,
// to be used as a test vector for circuit implementations of the hash.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/vocdoni/poseidon-fixtures/fixture"
	"github.com/vocdoni/poseidon-fixtures/hash"
	"github.com/vocdoni/poseidon-fixtures/internal/log"
)

func main() {
	l := log.Init(os.Stderr, zerolog.InfoLevel)
	if err := run(hash.DefaultHasher, fixture.DefaultPath, os.Stdout); err != nil {
		l.Fatal().Err(err).Str("path", fixture.DefaultPath).Msg("could not generate fixture")
	}
}

func run(hasherName, path string, out io.Writer) error {
	h, err := hash.ByName(hasherName)
	if err != nil {
		return err
	}
	r, err := fixture.New(h, fixture.DefaultInputs()...)
	if err != nil {
		return err
	}
	if err := fixture.Write(path, r); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s generated successfully\n", path)
	return err
}
