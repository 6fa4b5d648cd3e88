// Package logging builds the zerolog logger shared by the game components.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to file, or to w through a console writer
// when file is empty. A nil w discards output. The closer releases the
// log file.
func New(level, file string, w io.Writer) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, errors.Wrapf(err, "log level %q", level)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, errors.Wrap(err, "open log file")
		}
		logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
		return logger, f, nil
	}

	if w == nil {
		return zerolog.Nop(), nopCloser{}, nil
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return logger, nopCloser{}, nil
}
