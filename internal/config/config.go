package config

import (
	"github.com/caarlos0/env/v11"

	"campaign-dashboard/internal/config/configs"
)

// Config is the full service configuration, read from the environment.
// Each section has its own prefix; defaults live on the section types.
type Config struct {
	// Env names the deployment (prod, dev, ...) and is attached to every
	// log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP     `envPrefix:"HTTP_"`
	Log  configs.Logger   `envPrefix:"LOG_"`
	Psql configs.Postgres `envPrefix:"PSQL_"`
	Auth configs.Auth     `envPrefix:"AUTH_"`
	CORS configs.CORS     `envPrefix:"CORS_"`
}

// Load parses the environment into a Config. It fails when a required
// variable such as AUTH_JWT_SECRET is missing or a value does not parse.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
