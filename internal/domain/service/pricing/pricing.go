// Package pricing is a mock resale price model: a flat depreciation from a
// fixed base value, driven only by vehicle age.
package pricing

const (
	baseValue           = 15000
	depreciationPerYear = 800
	minValue            = 500

	maxAge     = 50
	defaultAge = 20

	// MinYear is the oldest model year accepted for an estimate.
	MinYear = 1900
	// MaxYearsAhead is how far past the current year a model year may be.
	MaxYearsAhead = 2
)

// Estimate returns the price for a vehicle of the given model year. Ages
// outside [0, 50] are treated as 20 years rather than rejected.
func Estimate(year, currentYear int) int {
	age := currentYear - year

	if age < 0 || age > maxAge {
		age = defaultAge
	}

	return max(baseValue-age*depreciationPerYear, minValue)
}

// YearInRange reports whether year can be priced in currentYear.
func YearInRange(year, currentYear int) bool {
	return year >= MinYear && year <= currentYear+MaxYearsAhead
}
