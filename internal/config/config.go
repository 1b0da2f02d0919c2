package config

// Config holds runtime settings for the QuestMaster CLI.
//
// Fields:
//   - DatabasePath: location of the SQLite quest database; parent
//     directories are created on first open.
//   - ExportDir: where exported quest sheets and QR codes are written.
//   - TemplatesDir: optional directory with user templates; when empty only
//     the built-in template is available.
//   - LogLevel: minimum level for log output (debug, info, warn, error).
type Config struct {
	DatabasePath string `env:"DATABASE_PATH"`
	ExportDir    string `env:"EXPORT_DIR"`
	TemplatesDir string `env:"TEMPLATES_DIR"`
	LogLevel     string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "data/quests.db"
	c.ExportDir = "exports"
	c.TemplatesDir = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
