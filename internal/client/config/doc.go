// Package config loads runtime configuration for the gophfeed client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the feed API
//	-d string   path to the local SQLite database
//	-t int      request timeout (seconds)
//	-e string   environment: development or production
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "database_path": "gophfeed.db",
//	  "request_timeout": "10s",
//	  "feed_cache_ttl": "1m",
//	  "require_birth_date": true,
//	  "env": "development"
//	}
//
// The package does not read environment variables.
package config
