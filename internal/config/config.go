// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

// Package config provides layered configuration for the BFF using Koanf v2.
//
// Precedence (highest wins): environment variables > optional YAML config
// file > built-in defaults. The BFF is configured almost entirely from the
// environment in deployment:
//
//	PORT                 HTTP listen port (default 3001)
//	ACCOUNTS_API_URL     base URL of the accounts/bills upstream
//	BILL_PARSER_API_URL  base URL of the bill-parser upstream
//	ENVIRONMENT          development or production
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the root configuration for the BFF process.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Accounts UpstreamConfig `koanf:"accounts"`
	Parser   UpstreamConfig `koanf:"parser"`
	Upload   UploadConfig   `koanf:"upload"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`

	// Timeout bounds how long the server waits reading/writing a request.
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// UpstreamConfig describes one upstream service the BFF calls.
type UpstreamConfig struct {
	// URL is the upstream base URL, without a trailing slash.
	URL string `koanf:"url"`

	// Timeout bounds each upstream call so a hung upstream cannot block a
	// request indefinitely. No retries are performed on failure.
	Timeout time.Duration `koanf:"timeout"`
}

// UploadConfig bounds multipart image uploads before any upstream call.
type UploadConfig struct {
	// MaxBytes is the maximum accepted image size in bytes.
	MaxBytes int64 `koanf:"max_bytes"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds the zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Validate checks the configuration for values the BFF cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if err := validateUpstreamURL("accounts", c.Accounts.URL); err != nil {
		return err
	}
	if err := validateUpstreamURL("parser", c.Parser.URL); err != nil {
		return err
	}
	if c.Accounts.Timeout <= 0 {
		return fmt.Errorf("accounts timeout must be positive")
	}
	if c.Parser.Timeout <= 0 {
		return fmt.Errorf("parser timeout must be positive")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload max_bytes must be positive")
	}
	return nil
}

// validateUpstreamURL ensures the upstream base URL is a usable absolute URL.
func validateUpstreamURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s upstream URL is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s upstream URL is invalid: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s upstream URL must be http or https, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s upstream URL has no host", name)
	}
	return nil
}
