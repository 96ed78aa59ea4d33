package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	Server   Server   `envPrefix:"SNOOP_"`
	Session  Session  `envPrefix:"SNOOP_"`
	Progress Progress `envPrefix:"SNOOP_PROGRESS_"`
}

// Server contains backend gateway parameters.
type Server struct {
	URL     string        `env:"SERVER_URL" envDefault:"http://127.0.0.1:8000"`
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
}

// Session contains persisted-session parameters. An empty TokenFile
// means the default path under the user home directory.
type Session struct {
	TokenFile string `env:"TOKEN_FILE"`
}

// Progress contains reporting-window parameters. Year 0 means the
// current year; the default month matches the reference behavior.
type Progress struct {
	Year  int `env:"YEAR" envDefault:"0"`
	Month int `env:"MONTH" envDefault:"1"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
