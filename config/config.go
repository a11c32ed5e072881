package config

import (
	"errors"
	"time"

	"ccx-marketplace/util/env"
)

var (
	ErrInvalidHTTPPort = errors.New("HTTP_PORT must be a positive integer")
	ErrGracefulTimeout = errors.New("GRACEFUL_TIMEOUT must be a positive duration")
	ErrDSN             = errors.New("DB_DSN must be set")
	ErrEmptyToken      = errors.New("demo tokens must not be empty")
)

// Config gathers every tunable in one place. The demo tokens feed the access
// control table so tests and deployments can substitute credentials.
type Config struct {
	HTTPPort        int
	GracefulTimeout time.Duration
	DSN             string
	SeedFile        string
	PublicToken     string
	BuyerToken      string
	AdminToken      string
}

func Load() (*Config, error) {
	config := &Config{
		HTTPPort:        env.GetIntDefault("HTTP_PORT", 8090),
		GracefulTimeout: env.GetDurationDefault("GRACEFUL_TIMEOUT", 5*time.Second),
		DSN:             env.Get("DB_DSN"),
		SeedFile:        env.GetDefault("SEED_FILE", "resources/sample_credits.json"),
		PublicToken:     env.GetDefault("PUBLIC_TOKEN", "demo_public_token"),
		BuyerToken:      env.GetDefault("BUYER_TOKEN", "demo_buyer_token"),
		AdminToken:      env.GetDefault("ADMIN_TOKEN", "demo_admin_token"),
	}
	err := config.Validate()
	if err != nil {
		return nil, err
	}
	return config, err
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 {
		return ErrInvalidHTTPPort
	}
	if c.GracefulTimeout <= 0 {
		return ErrGracefulTimeout
	}
	if len(c.DSN) == 0 {
		return ErrDSN
	}
	if c.PublicToken == "" || c.BuyerToken == "" || c.AdminToken == "" {
		return ErrEmptyToken
	}

	return nil
}
