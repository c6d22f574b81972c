package cli

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/go-lazy/internal/config"
)

func newLogger(cfg config.LogConfig, wrt io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "unable to parse log level")
	}

	if cfg.Format == config.FormatConsole {
		wrt = zerolog.ConsoleWriter{Out: wrt, TimeFormat: time.Kitchen}
	}

	return zerolog.New(wrt).Level(level).With().Timestamp().Logger(), nil
}
