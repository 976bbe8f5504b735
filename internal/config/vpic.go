package config

import "time"

type VPIC struct {
	BaseURL string `env:"VPIC_BASE_URL" envDefault:"https://vpic.nhtsa.dot.gov/api/vehicles"`
	// Zero keeps the transport defaults.
	Timeout time.Duration `env:"VPIC_TIMEOUT" envDefault:"0"`
}
