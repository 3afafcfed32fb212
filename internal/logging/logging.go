// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"io"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at a colored console writer on stderr.
// Generated output goes to stdout, so logs never mix with it.
func Setup(debug bool) {
	SetupWriter(colorable.NewColorableStderr(), debug)
}

func SetupWriter(out io.Writer, debug bool) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}
	log.Logger = log.Output(consoleWriter)

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}
