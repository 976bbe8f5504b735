package value

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"autoinsight/internal/domain"
	"autoinsight/pkg/errcodes"
)

// VINLength is the length of a standard (post-1981) VIN.
const VINLength = 17

const (
	reasonEmpty      = "VIN cannot be empty or whitespace."
	reasonLength     = "VIN must be exactly 17 characters long for standard decoding."
	reasonDisallowed = "VIN contains disallowed character '%c'. VINs do not use I, O, or Q."
)

// I, O and Q are never used in a VIN to avoid confusion with 1 and 0.
var disallowedVINChars = []rune{'I', 'O', 'Q'} //nolint:gochecknoglobals

// VIN is a structurally valid vehicle identification number. The check digit
// is not verified.
type VIN string

func (v VIN) String() string {
	return string(v)
}

// ValidateVIN reports whether s looks like a standard VIN and, if not, why.
func ValidateVIN(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return reasonEmpty, false
	}

	if utf8.RuneCountInString(s) != VINLength {
		return reasonLength, false
	}

	upper := strings.ToUpper(s)

	if c, found := lo.Find(disallowedVINChars, func(c rune) bool {
		return strings.ContainsRune(upper, c)
	}); found {
		return fmt.Sprintf(reasonDisallowed, c), false
	}

	return "", true
}

// ParseVIN keeps s as is on success; the error is an invalid input AppError
// carrying the validation reason.
func ParseVIN(s string) (VIN, error) {
	if reason, ok := ValidateVIN(s); !ok {
		return "", domain.NewError(domain.KindInvalidInput, errcodes.InvalidVINFormat, reason)
	}

	return VIN(s), nil
}
