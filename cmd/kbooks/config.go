package main

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
	driverMemory   = "memory"
)

var errInvalidConfig = errors.New("invalid configuration")

// appConfig holds the process-level settings. Infrastructure packages load
// their own Config structs.
type appConfig struct {
	AppName        string        `env:"APP_NAME" envDefault:"kbooks"`
	Env            string        `env:"APP_ENV" envDefault:"development"`
	SecretKey      string        `env:"SECRET_KEY,required"`
	BaseURL        string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	FrontURL       string        `env:"FRONT_URL" envDefault:"http://localhost:3000"`
	LinkTTL        time.Duration `env:"LINK_TTL" envDefault:"24h"`
	StorageDriver  string        `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	MetricsEnabled bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

func (c appConfig) validate() error {
	switch c.StorageDriver {
	case driverPostgres, driverSQLite, driverMemory:
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", errInvalidConfig, c.StorageDriver)
	}
	for name, raw := range map[string]string{"BASE_URL": c.BaseURL, "FRONT_URL": c.FrontURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL, got %q", errInvalidConfig, name, raw)
		}
	}
	return nil
}
