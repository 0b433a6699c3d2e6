// Package logger builds the process zerolog.Logger from configuration.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const permission = 0o664

type Options struct {
	Level  string
	Format string // console | json
	Path   string
	Writer io.Writer
}

// New returns a timestamped logger and a close func for the log file, if one was opened.
// Writer takes precedence over Path; with neither the logger writes to stdout.
func New(opts Options) (zerolog.Logger, func() error, error) {
	closer := func() error { return nil }

	var w io.Writer = os.Stdout
	switch {
	case opts.Writer != nil:
		w = opts.Writer
	case opts.Path != "":
		f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		w = zerolog.SyncWriter(f)
		closer = f.Close
	}
	if opts.Format == "console" && opts.Path == "" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closer, nil
}
