// Package config loads runtime configuration for the DevPair CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: DEVPAIR_API_URL, DEVPAIR_STORE, DEVPAIR_LOG_LEVEL,
//     DEVPAIR_REQUEST_TIMEOUT, optionally seeded from a dotenv file
//     (-e / -env, or ./.env).
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     base URL of the DevPair API
//	-s string     path of the local sqlite store
//	-l string     log level
//	-t duration   per-request timeout
//
// # JSON schema
//
//	{
//	  "server_url": "https://devpair.example.com",
//	  "store_path": "/home/me/.devpair.db",
//	  "log_level": "debug",
//	  "request_timeout": "15s"
//	}
package config
