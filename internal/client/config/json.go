package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophfeed/internal/flagx"
	"github.com/dmitrijs2005/gophfeed/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they may be written as "10s" or as integer nanoseconds.
// Absent keys leave the corresponding Config field untouched.
type JsonConfig struct {
	ServerBaseURL    string          `json:"server_base_url"`
	DatabasePath     string          `json:"database_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	FeedCacheTTL     *timex.Duration `json:"feed_cache_ttl"`
	RequireBirthDate *bool           `json:"require_birth_date"`
	Env              string          `json:"env"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Without such a flag nothing happens.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.FeedCacheTTL != nil {
		cfg.FeedCacheTTL = jc.FeedCacheTTL.Duration
	}
	if jc.RequireBirthDate != nil {
		cfg.RequireBirthDate = *jc.RequireBirthDate
	}
	if jc.Env != "" {
		cfg.Env = jc.Env
	}
	return nil
}
