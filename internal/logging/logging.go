// Package logging configures the zerolog logger used for diagnostics.
//
// Hook output must stay off stdout, so every logger writes to the given
// writer (stderr in production). The default level is warn; debug output is
// enabled by the --debug flag or CLAUDE_NOTIFY_DEBUG.
package logging

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// EnvDebug enables debug logging when set to a true value ("1", "true", ...).
const EnvDebug = "CLAUDE_NOTIFY_DEBUG"

// New returns a console logger writing to w.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug || DebugFromEnv() {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// DebugFromEnv reports whether EnvDebug holds a true value.
func DebugFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(EnvDebug))
	return err == nil && v
}
