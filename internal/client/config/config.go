package config

import "time"

// Config holds runtime settings for the DevPair CLI.
//
// Fields:
//   - ServerURL: base URL of the DevPair REST API.
//   - StorePath: sqlite file holding the persisted credential pair.
//   - LogLevel: debug, info, warn or error.
//   - RequestTimeout: per-request timeout; zero disables it.
type Config struct {
	ServerURL      string
	StorePath      string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.StorePath = "devpair.db"
	c.LogLevel = "info"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and an optional .env file), a JSON file and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
