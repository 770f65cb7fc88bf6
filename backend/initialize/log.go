package initialize

import (
	"io"
	"os"
	"strings"

	"news-app/backend/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// basic zerolog setup: console writer to stdout
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	logger := log.Output(cw)
	global.Logger = logger
}

// SetupLogger points the global logger at path (stdout when empty) and
// applies level. Unknown levels fall back to info.
func SetupLogger(level, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = file
	}
	global.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	SetLevel(level)
	return nil
}

// SetLevel changes the process wide level; safe to call while logging.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
