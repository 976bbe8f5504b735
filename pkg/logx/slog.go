package logx

import (
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// OptionalString logs nil as the literal "null" so that absent and empty
// decoded attributes stay distinguishable.
func OptionalString(name string, value *string) slog.Attr {
	if value == nil {
		return slog.String(name, "null")
	}

	return slog.String(name, *value)
}

const (
	vinVisiblePrefix = 11
	vinMask          = "******"
)

// VIN logs only the descriptor part of a VIN (the first 11 characters). The
// serial and anything beyond it is replaced with a fixed mask.
func VIN(vin string) slog.Attr {
	if runes := []rune(vin); len(runes) > vinVisiblePrefix {
		vin = string(runes[:vinVisiblePrefix]) + vinMask
	}

	return slog.String(FieldVIN, vin)
}
