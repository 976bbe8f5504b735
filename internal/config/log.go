package config

import (
	"fmt"
	"log/slog"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Log struct {
	Level       slog.Level `env:"LOG_LEVEL"         envDefault:"info"`
	Format      string     `env:"LOG_FORMAT"        envDefault:"text"`
	FieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

func (l Log) validate() error {
	switch l.Format {
	case LogFormatText, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, l.Format)
	}
}
