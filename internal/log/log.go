// Package log sets up the console logger shared by the binaries and by the
// gnark compiler.
package log

import (
	"io"
	"os"

	"github.com/consensys/gnark/logger"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a human readable logger writing to w. Output is colored only
// when w is a terminal.
func New(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: !isTerminal(w)}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// Init builds a logger with New and installs it as the gnark logger too, so
// circuit compilation output ends up in the same place.
func Init(w io.Writer, level zerolog.Level) zerolog.Logger {
	l := New(w).Level(level)
	logger.Set(l)
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
