package config

import "time"

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS"      envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"    envDefault:"10s"`
	CORSAllowedOrigin string        `env:"HTTP_CORS_ALLOWED_ORIGIN" envDefault:"*"`
}
