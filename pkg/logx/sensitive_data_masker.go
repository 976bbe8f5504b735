package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Headers.
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile("(?is)(X-Rapidapi-Key: ).+?(\r)"),
	regexp.MustCompile("(?is)(X-Rapidapi-Proxy-Secret: ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`(?s)("[Aa]pi[Kk]ey":\s?").+?(")`),
}

// The first 11 characters of a VIN describe the vehicle (WMI, VDS, model
// year, plant); the trailing 6 are the production serial that identifies a
// single car.
var vinSerialPattern = regexp.MustCompile(`(?i)\b([A-HJ-NPR-Z0-9]{11})[A-HJ-NPR-Z0-9]{6}\b`) //nolint:gochecknoglobals

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return vinSerialPattern.ReplaceAll(input, []byte("${1}******"))
}
