package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL" envDefault:"sqlite://linkcraft.db"`
	Port           string        `env:"PORT" envDefault:"8080"`
	Password       string        `env:"PASSWORD"`
	ExportFilename string        `env:"EXPORT_FILENAME" envDefault:"mylinks.html"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"60m"`
}

// Load reads LINKCRAFT_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LINKCRAFT_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
