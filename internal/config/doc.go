// Package config loads runtime configuration for the QuestMaster CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the QUESTMASTER_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the quest database file
//	-e string   directory for exported quest sheets
//	-t string   directory with custom quest sheet templates
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "database_path": "data/quests.db",
//	  "export_dir": "exports",
//	  "templates_dir": "templates",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds all runtime settings
//   - func LoadConfig() *Config      — builds Config by applying the sources in order
//   - func (*Config) LoadDefaults()  — sets sensible defaults
package config
