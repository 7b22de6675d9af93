// Package config loads service settings from the environment. A .env file in
// the working directory is read first when present.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings of the HTTP service and the CLI defaults.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	UploadDir    string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	MaxLogoBytes int64  `env:"MAX_LOGO_BYTES" envDefault:"1048576"`
	Encoder      string `env:"QR_ENCODER" envDefault:"yeqown"`
	GinMode      string `env:"GIN_MODE" envDefault:"release"`
	DefaultTheme string `env:"DEFAULT_THEME"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}
