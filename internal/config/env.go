package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays values from environment variables onto the config.
// Only variables that are actually set override earlier layers.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
