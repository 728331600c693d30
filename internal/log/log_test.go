package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	l := Init(&buf, zerolog.InfoLevel)
	l.Debug().Msg("hidden")
	l.Info().Str("path", "input/input.json").Msg("fixture written")

	out := buf.String()
	c.Assert(out, qt.Contains, "INF fixture written")
	c.Assert(out, qt.Contains, "path=input/input.json")
	c.Assert(out, qt.Not(qt.Contains), "hidden")
	c.Assert(out, qt.Not(qt.Contains), "\x1b[")
}

func TestNewRedirectedFile(t *testing.T) {
	c := qt.New(t)

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	c.Assert(err, qt.IsNil)
	defer f.Close()

	l := New(f)
	l.Error().Str("path", "input/input.json").Msg("could not generate fixture")

	data, err := os.ReadFile(f.Name())
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "path=input/input.json")
	c.Assert(string(data), qt.Not(qt.Contains), "\x1b[")
}
