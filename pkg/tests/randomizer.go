package tests

import (
	"math/rand"
	"strings"
	"time"
)

// VINAlphabet is every character a standard VIN may contain.
const VINAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

type Randomizer struct {
	Intn   func(n int) int
	Bool   func() bool
	String func(alphabet string, length int) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Intn: random.Intn,
		Bool: func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		String: func(alphabet string, length int) string {
			var b strings.Builder

			for range length {
				b.WriteByte(alphabet[random.Intn(len(alphabet))])
			}

			return b.String()
		},
	}
}

// VIN returns a random structurally valid VIN.
func (r Randomizer) VIN() string {
	return r.String(VINAlphabet, 17) //nolint:mnd // VIN length
}
