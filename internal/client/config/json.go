package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/devpair/internal/flagx"
	"github.com/dmitrijs2005/devpair/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Absent fields
// leave the current value untouched.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	StorePath      *string         `json:"store_path"`
	LogLevel       *string         `json:"log_level"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with the file named by -c / -config. Without
// either flag it does nothing. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
