package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Host              string   `env:"HOST"                envDefault:"0.0.0.0"`
	Port              int      `env:"PORT"                envDefault:"8000"`
	AllowedOrigins    []string `env:"ALLOWED_ORIGINS"     envDefault:"*"`
	ModelIdentifier   string   `env:"MODEL"               envDefault:"llama3.2"`
	FetchTimeoutMs    int      `env:"FETCH_TIMEOUT_MS"    envDefault:"10000"`
	MaxExtractedChars int      `env:"MAX_EXTRACTED_CHARS" envDefault:"5000"`
	BackendAddress    string   `env:"OLLAMA_HOST"         envDefault:"http://localhost:11434"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err = cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}

func (c Config) validate() error {
	var errs []error

	if c.FetchTimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_TIMEOUT_MS must be positive (got %d)", c.FetchTimeoutMs))
	}
	if c.MaxExtractedChars <= 0 {
		errs = append(errs, fmt.Errorf("MAX_EXTRACTED_CHARS must be positive (got %d)", c.MaxExtractedChars))
	}
	if c.ModelIdentifier == "" {
		errs = append(errs, errors.New("MODEL must not be empty"))
	}
	if c.BackendAddress == "" {
		errs = append(errs, errors.New("OLLAMA_HOST must not be empty"))
	}

	return errors.Join(errs...)
}
