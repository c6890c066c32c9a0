package config

import "time"

// Config holds runtime settings for the gophfeed client.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the feed API.
//   - DatabasePath: SQLite file holding the stored session.
//   - RequestTimeout: per-request HTTP timeout.
//   - FeedCacheTTL: how long a fetched feed is reused before re-fetching.
//   - RequireBirthDate: reject registration forms without a birth date.
//   - Env: "development" or "production"; selects the log format.
type Config struct {
	ServerBaseURL    string
	DatabasePath     string
	RequestTimeout   time.Duration
	FeedCacheTTL     time.Duration
	RequireBirthDate bool
	Env              string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "gophfeed.db"
	c.RequestTimeout = 10 * time.Second
	c.FeedCacheTTL = time.Minute
	c.RequireBirthDate = true
	c.Env = "development"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args are the program arguments without the
// program name.
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
