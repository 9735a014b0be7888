package cmd

import (
	"fmt"
	"io"
	"time"

	"bazil.org/fuse"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging installs a console logger on w at the named level.
func setupLogging(w io.Writer, level string, fuseDebug bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()

	if fuseDebug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		fuse.Debug = func(msg interface{}) {
			log.Trace().Str("component", "fuse").Msgf("%v", msg)
		}
	}
	return nil
}
