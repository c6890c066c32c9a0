package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophfeed/internal/flagx"
)

// parseFlags overlays cfg with:
//
//	-a string     listen address
//	-k string     JWT signing secret
//	-l duration   token lifetime (e.g. 30m)
//	-e string     environment
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-l", "-e"})

	fs := flag.NewFlagSet("devapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "listen address")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "JWT signing secret")
	fs.DurationVar(&cfg.TokenLifetime, "l", cfg.TokenLifetime, "token lifetime")
	fs.StringVar(&cfg.Env, "e", cfg.Env, "environment: development or production")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
