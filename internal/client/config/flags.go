package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/devpair/internal/flagx"
)

// parseFlags populates Config from command-line flags:
//
//	-a string     base URL of the DevPair API
//	-s string     path of the local sqlite store
//	-l string     log level
//	-t duration   per-request timeout (e.g. 10s, 0 for none)
//
// Only these flags are parsed (see flagx.FilterArgs); a malformed value
// panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the DevPair API")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local credential store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
