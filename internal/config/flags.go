package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/questmaster/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the quest database file (default from Config)
//	-e string   export directory for rendered quest sheets
//	-t string   directory with custom templates
//	-l string   log level
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other stages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the quest database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for exported quest sheets")
	fs.StringVar(&cfg.TemplatesDir, "t", cfg.TemplatesDir, "directory with custom templates")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
