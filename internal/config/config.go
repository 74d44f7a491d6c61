package config

import (
	"os"
	"strconv"
)

// Defaults for unset environment variables.
const (
	DefaultAddr      = ":8000"
	DefaultDBPath    = "itemsvc.sqlite3"
	DefaultPageLimit = 100
)

// Config holds the service settings. Values come from the environment
// with defaults applied; main may override them with flags.
type Config struct {
	AppName   string
	Version   string
	Addr      string
	DBPath    string
	PageLimit int
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		AppName:   "itemsvc",
		Version:   "0.1.0",
		Addr:      DefaultAddr,
		DBPath:    DefaultDBPath,
		PageLimit: DefaultPageLimit,
	}

	if v := os.Getenv("ITEMSVC_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("ITEMSVC_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ITEMSVC_PAGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageLimit = n
		}
	}

	return cfg
}
