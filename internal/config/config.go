// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the service reads at startup.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	ImageDir    string `env:"IMAGE_DIR" envDefault:"./images"`
	ImagePrefix string `env:"IMAGE_PREFIX" envDefault:"/images"`

	MaxResultBits int `env:"CALC_MAX_RESULT_BITS" envDefault:"1048576"`

	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"calculator"`
	LogsEnabled bool   `env:"OTEL_LOGS_ENABLED" envDefault:"false"`
	DevLogging  bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("parse config: HTTP_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from the given files, or .env when
// none are given. Missing files are ignored. Existing process environment
// variables are not overridden.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		err := godotenv.Load(name)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}
