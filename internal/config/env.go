package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with QUESTMASTER_-prefixed environment variables
// (QUESTMASTER_DATABASE_PATH, QUESTMASTER_EXPORT_DIR, ...). Unset variables
// leave the current values alone.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "QUESTMASTER_"}); err != nil {
		panic(err)
	}
}
