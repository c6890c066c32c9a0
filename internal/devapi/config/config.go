// Package config handles configuration for the development API server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the development API.
//
// Fields:
//   - ListenAddr: bind address for HTTP.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default
//     outside local development.
//   - TokenLifetime: validity of issued bearer tokens.
//   - Env: "development" or "production"; selects the log format.
type Config struct {
	ListenAddr    string
	SecretKey     string
	TokenLifetime time.Duration
	Env           string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenLifetime = 24 * time.Hour
	c.Env = "development"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
