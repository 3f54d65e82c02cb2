package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/devpair/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables recognised by parseEnv.
const (
	EnvServerURL      = "DEVPAIR_API_URL"
	EnvStorePath      = "DEVPAIR_STORE"
	EnvLogLevel       = "DEVPAIR_LOG_LEVEL"
	EnvRequestTimeout = "DEVPAIR_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with environment variables. A dotenv file named
// with -e / -env is loaded first, otherwise ./.env when it exists. Values
// already present in the process environment win over the file.
//
// Panics when an explicitly named file cannot be read or when
// DEVPAIR_REQUEST_TIMEOUT is not a valid duration.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg.ServerURL = getEnv(EnvServerURL, cfg.ServerURL)
	cfg.StorePath = getEnv(EnvStorePath, cfg.StorePath)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
