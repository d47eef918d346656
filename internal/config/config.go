// Package config loads huffd settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultAddr    = ":8080"
	DefaultMaxBody = 32 << 20
)

type Config struct {
	Addr    string
	MaxBody int64
	Debug   bool
}

// Load reads HUFFD_ADDR, HUFFD_MAX_BODY and HUFFD_DEBUG, falling back to the
// defaults for unset variables.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Addr: DefaultAddr, MaxBody: DefaultMaxBody}

	if v, ok := lookup("HUFFD_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("HUFFD_MAX_BODY"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("HUFFD_MAX_BODY: want a positive byte count, got %q", v)
		}
		cfg.MaxBody = n
	}
	if v, ok := lookup("HUFFD_DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("HUFFD_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	return cfg, nil
}
