package config

type Metrics struct {
	Enabled       bool   `env:"METRICS_ENABLED"        envDefault:"true"`
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}
