package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newLogger builds a console logger on stderr, honoring the
// MAGICSQUARE_DEBUG environment variable for verbosity.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("MAGICSQUARE_DEBUG") != "" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := newLogger(rootCmd)
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
