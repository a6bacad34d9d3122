// Package config loads the transport's environment-variable
// configuration, in the teacher's own getEnv(key, fallback) idiom
// (ThoDHa-sudoku/api/pkg/config/config.go), extended with the two
// knobs this expanded scope needs: SaveDir (the persistence root for
// spec.md §6.3 files) and an optional RNGSeed override for reproducible
// generation by the HTTP transport (the CLI does not load this config).
package config

import (
	"os"
	"strconv"

	"github.com/jrm-1535/sudoku-lib-sub000/pkg/constants"
)

// Config holds the HTTP transport's runtime configuration.
type Config struct {
	Port    string
	SaveDir string
	// RNGSeed, if non-nil, is the seed the transport's /api/game/random
	// handler uses when a request carries none, instead of the current
	// time — used for reproducible demos/tests.
	RNGSeed *int64
}

// Load reads configuration from environment variables, falling back
// to sensible defaults (no required secret, unlike the teacher's
// JWT_SECRET check: this module has no session-token concept to
// protect, see DESIGN.md).
func Load() *Config {
	cfg := &Config{
		Port:    getEnv("PORT", constants.DefaultPort),
		SaveDir: getEnv("SAVE_DIR", "."),
	}
	if raw := os.Getenv("RNG_SEED"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.RNGSeed = &n
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
